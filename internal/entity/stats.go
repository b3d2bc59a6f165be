package entity

// KnowledgeDistribution is the fixed 4-bucket histogram of mastery levels.
type KnowledgeDistribution struct {
	DontKnow      int64 `json:"dontKnow"`
	Know          int64 `json:"know"`
	WellKnow      int64 `json:"wellKnow"`
	PerfectlyKnow int64 `json:"perfectlyKnow"`
}

// LevelCount is the number of ledger rows sitting at one mastery level.
// Level is the raw stored value and may lie outside [0,3].
type LevelCount struct {
	Level int
	Count int64
}

// Add puts n items into the bucket of level, clamping the level into [0,3].
func (d *KnowledgeDistribution) Add(level int, n int64) {
	switch clampMastery(level) {
	case 0:
		d.DontKnow += n
	case 1:
		d.Know += n
	case 2:
		d.WellKnow += n
	default:
		d.PerfectlyKnow += n
	}
}

// Total is the number of items across all buckets.
func (d KnowledgeDistribution) Total() int64 {
	return d.DontKnow + d.Know + d.WellKnow + d.PerfectlyKnow
}

// FoldDistribution folds ledger level counts into the histogram and backfills
// bucket 0 with graded items that have no ledger row yet.
func FoldDistribution(graded int64, groups ...[]LevelCount) KnowledgeDistribution {
	var (
		dist    KnowledgeDistribution
		tracked int64
	)
	for _, rows := range groups {
		for _, row := range rows {
			dist.Add(row.Level, row.Count)
			tracked += row.Count
		}
	}
	if graded > tracked {
		dist.DontKnow += graded - tracked
	}
	return dist
}

// QuestionsCounts splits owned content into strict and non-strict items.
// Language entries always count as strict.
type QuestionsCounts struct {
	Strict    int64 `json:"strict"`
	NonStrict int64 `json:"nonStrict"`
}

// GlobalStats is the unauthenticated dashboard across every user.
type GlobalStats struct {
	TotalUsers             int64                 `json:"totalUsers"`
	TotalThemes            int64                 `json:"totalThemes"`
	TotalQuestions         int64                 `json:"totalQuestions"`
	TotalGamesPlayed       int64                 `json:"totalGamesPlayed"`
	TotalQuestionsAnswered int64                 `json:"totalQuestionsAnswered"`
	KnowledgeDistribution  KnowledgeDistribution `json:"knowledgeDistribution"`
}

// ProfileStats is the per-user dashboard.
type ProfileStats struct {
	TotalGames             int64                 `json:"totalGames"`
	TotalQuestionsAnswered int64                 `json:"totalQuestionsAnswered"`
	BestCorrectInRow       int64                 `json:"bestCorrectInRow"`
	CurrentCorrectInRow    int64                 `json:"currentCorrectInRow"`
	QuestionsCounts        QuestionsCounts       `json:"questionsCounts"`
	KnowledgeDistribution  KnowledgeDistribution `json:"knowledgeDistribution"`
}

// ThemeStats is the per-theme dashboard of the theme owner.
type ThemeStats struct {
	ThemeID               int64                 `json:"themeId"`
	IsLanguageTopic       bool                  `json:"isLanguageTopic"`
	QuestionsCounts       QuestionsCounts       `json:"questionsCounts"`
	KnowledgeDistribution KnowledgeDistribution `json:"knowledgeDistribution"`
}

// SessionTotals aggregates the session summaries of one scope.
type SessionTotals struct {
	Games             int64
	QuestionsAnswered int64
	BestCorrectInRow  int64
	LastCorrectInRow  int64
}

// ContentTotals counts the stored content of one scope.
type ContentTotals struct {
	Users              int64
	Themes             int64
	StrictQuestions    int64
	NonStrictQuestions int64
	Entries            int64
}

// Graded is the number of items that feed the knowledge distribution.
func (c ContentTotals) Graded() int64 {
	return c.StrictQuestions + c.Entries
}
