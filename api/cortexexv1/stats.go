package cortexexv1

type KnowledgeDistribution struct {
	DontKnow      int64 `json:"dontKnow"`
	Know          int64 `json:"know"`
	WellKnow      int64 `json:"wellKnow"`
	PerfectlyKnow int64 `json:"perfectlyKnow"`
}

type QuestionsCounts struct {
	Strict    int64 `json:"strict"`
	NonStrict int64 `json:"nonStrict"`
}

type GetGlobalStatsRequest struct{}

type GlobalStats struct {
	TotalUsers             int64                  `json:"totalUsers"`
	TotalThemes            int64                  `json:"totalThemes"`
	TotalQuestions         int64                  `json:"totalQuestions"`
	TotalGamesPlayed       int64                  `json:"totalGamesPlayed"`
	TotalQuestionsAnswered int64                  `json:"totalQuestionsAnswered"`
	KnowledgeDistribution  *KnowledgeDistribution `json:"knowledgeDistribution"`
}

type GetProfileStatsRequest struct{}

type ProfileStats struct {
	TotalGames             int64                  `json:"totalGames"`
	TotalQuestionsAnswered int64                  `json:"totalQuestionsAnswered"`
	BestCorrectInRow       int64                  `json:"bestCorrectInRow"`
	CurrentCorrectInRow    int64                  `json:"currentCorrectInRow"`
	QuestionsCounts        *QuestionsCounts       `json:"questionsCounts"`
	KnowledgeDistribution  *KnowledgeDistribution `json:"knowledgeDistribution"`
}

type GetThemeStatsRequest struct {
	ThemeID int64 `json:"themeId"`
}

type ThemeStats struct {
	ThemeID               int64                  `json:"themeId"`
	IsLanguageTopic       bool                   `json:"isLanguageTopic"`
	QuestionsCounts       *QuestionsCounts       `json:"questionsCounts"`
	KnowledgeDistribution *KnowledgeDistribution `json:"knowledgeDistribution"`
}
