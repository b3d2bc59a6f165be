package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// maxDistractors is how many wrong words a vocabulary choice question offers.
const maxDistractors = 3

// Mode selects which pool a session is drawn from.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeLanguage Mode = "language"
)

// ParseMode converts an arbitrary string into a Mode.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeClassic, "":
		return ModeClassic, nil
	case ModeLanguage:
		return ModeLanguage, nil
	default:
		return "", entity.ErrInvalidPlayMode
	}
}

// Item is one playable question instance. Stored questions carry
// QuestionID; items synthesized from vocabulary carry EntryID.
type Item struct {
	Key            string              `json:"key"`
	ThemeID        int64               `json:"themeId"`
	QuestionID     *int64              `json:"questionId,omitempty"`
	EntryID        *int64              `json:"entryId,omitempty"`
	Text           string              `json:"text"`
	Type           entity.QuestionType `json:"type"`
	IsStrict       bool                `json:"isStrict"`
	Options        []string            `json:"options,omitempty"`
	Answer         string              `json:"answer,omitempty"`
	CorrectOptions []string            `json:"correctOptions,omitempty"`
}

// Content is everything stored in the themes selected for a session.
type Content struct {
	Themes    []entity.Theme
	Questions []entity.Question
	Entries   []entity.LanguageEntry
}

// Builder assembles question pools and draws random sessions from them.
type Builder struct {
	rnd *rand.Rand
}

// NewBuilder returns a builder drawing from rnd, or from a randomly seeded
// source when rnd is nil.
func NewBuilder(rnd *rand.Rand) *Builder {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Builder{rnd: rnd}
}

// Build assembles the pool for mode and draws min(count, len(pool)) items.
func (b *Builder) Build(content Content, mode Mode, count int) ([]Item, error) {
	if len(content.Themes) == 0 {
		return nil, entity.ErrNoThemesSelected
	}

	var pool []Item
	switch mode {
	case ModeClassic:
		pool = b.ClassicPool(content.Questions, content.Entries)
	case ModeLanguage:
		if !LanguageModeAvailable(content.Themes) {
			return nil, entity.ErrLanguageModeMixed
		}
		pool = b.LanguagePool(content.Entries)
	default:
		return nil, entity.ErrInvalidPlayMode
	}
	return b.Sample(pool, count), nil
}

// LanguageModeAvailable reports whether every selected theme is a language topic.
func LanguageModeAvailable(themes []entity.Theme) bool {
	return len(themes) > 0 && lo.EveryBy(themes, func(t entity.Theme) bool { return t.IsLanguageTopic })
}

// ClassicPool returns every stored question plus one word→translation input
// question per playable entry.
func (b *Builder) ClassicPool(questions []entity.Question, entries []entity.LanguageEntry) []Item {
	pool := make([]Item, 0, len(questions)+len(entries))
	for _, q := range questions {
		pool = append(pool, fromQuestion(q))
	}
	for _, e := range playable(entries) {
		pool = append(pool, forwardInput(e))
	}
	return pool
}

// LanguagePool synthesizes vocabulary drills: a forward input question per
// entry, plus a translation→word choice question when the batch has at least
// two entries, or a reverse input question when it has one.
func (b *Builder) LanguagePool(entries []entity.LanguageEntry) []Item {
	valid := playable(entries)
	pool := make([]Item, 0, 2*len(valid))
	for i, e := range valid {
		pool = append(pool, forwardInput(e))
		if len(valid) < 2 {
			pool = append(pool, reverseInput(e))
			continue
		}
		distractors := b.distractors(valid, i)
		if len(distractors) == 0 {
			pool = append(pool, reverseInput(e))
			continue
		}
		pool = append(pool, b.choice(e, distractors))
	}
	return pool
}

// Sample draws a uniformly shuffled sample of min(n, len(pool)) items without
// replacement and shuffles each item's options for display.
func (b *Builder) Sample(pool []Item, n int) []Item {
	if n <= 0 || len(pool) == 0 {
		return []Item{}
	}
	drawn := slices.Clone(pool)
	shuffle(b.rnd, drawn)
	if n < len(drawn) {
		drawn = drawn[:n]
	}
	for i := range drawn {
		if len(drawn[i].Options) > 0 {
			drawn[i].Options = slices.Clone(drawn[i].Options)
			shuffle(b.rnd, drawn[i].Options)
		}
	}
	return drawn
}

func (b *Builder) distractors(batch []entity.LanguageEntry, self int) []string {
	seen := map[string]struct{}{Normalize(batch[self].Word): {}}
	candidates := make([]string, 0, len(batch)-1)
	for i, other := range batch {
		if i == self {
			continue
		}
		key := Normalize(other.Word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, other.Word)
	}
	shuffle(b.rnd, candidates)
	if len(candidates) > maxDistractors {
		candidates = candidates[:maxDistractors]
	}
	return candidates
}

func (b *Builder) choice(e entity.LanguageEntry, distractors []string) Item {
	options := append(slices.Clone(distractors), e.Word)
	shuffle(b.rnd, options)
	return Item{
		Key:            fmt.Sprintf("entry:%d:choice", e.ID),
		ThemeID:        e.ThemeID,
		EntryID:        lo.ToPtr(e.ID),
		Text:           e.Translation,
		Type:           entity.QuestionTypeRadiobutton,
		IsStrict:       true,
		Options:        options,
		CorrectOptions: []string{e.Word},
	}
}

func shuffle[T any](rnd *rand.Rand, s []T) {
	rnd.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

func playable(entries []entity.LanguageEntry) []entity.LanguageEntry {
	return lo.Filter(entries, func(e entity.LanguageEntry, _ int) bool { return e.Playable() })
}

func fromQuestion(q entity.Question) Item {
	return Item{
		Key:            fmt.Sprintf("question:%d", q.ID),
		ThemeID:        q.ThemeID,
		QuestionID:     lo.ToPtr(q.ID),
		Text:           q.Text,
		Type:           q.Type,
		IsStrict:       q.IsStrict,
		Options:        slices.Clone(q.Options),
		Answer:         q.Answer,
		CorrectOptions: slices.Clone(q.CorrectOptions),
	}
}

func forwardInput(e entity.LanguageEntry) Item {
	return Item{
		Key:      fmt.Sprintf("entry:%d:input", e.ID),
		ThemeID:  e.ThemeID,
		EntryID:  lo.ToPtr(e.ID),
		Text:     e.Word,
		Type:     entity.QuestionTypeInput,
		IsStrict: true,
		Answer:   e.Translation,
	}
}

func reverseInput(e entity.LanguageEntry) Item {
	return Item{
		Key:      fmt.Sprintf("entry:%d:reverse", e.ID),
		ThemeID:  e.ThemeID,
		EntryID:  lo.ToPtr(e.ID),
		Text:     e.Translation,
		Type:     entity.QuestionTypeInput,
		IsStrict: true,
		Answer:   e.Word,
	}
}
