package quiz

import (
	"errors"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ErrSessionFinished is returned when answering past the last item.
var ErrSessionFinished = errors.New("play session already finished")

// PlayState tracks one in-progress session in presentation order. It is
// plain data so callers can persist it between requests and resume.
type PlayState struct {
	Mode     Mode      `json:"mode"`
	Items    []Item    `json:"items"`
	Verdicts []Verdict `json:"verdicts"`
	Answered []bool    `json:"answered"`
	Index    int       `json:"index"`
}

// NewPlayState starts a session over items.
func NewPlayState(mode Mode, items []Item) *PlayState {
	return &PlayState{
		Mode:     mode,
		Items:    items,
		Verdicts: make([]Verdict, len(items)),
		Answered: make([]bool, len(items)),
	}
}

// Current returns the item awaiting an answer.
func (s *PlayState) Current() (Item, bool) {
	if s.Done() {
		return Item{}, false
	}
	return s.Items[s.Index], true
}

// Done reports whether every item was answered or skipped.
func (s *PlayState) Done() bool { return s.Index >= len(s.Items) }

// Answer grades the current item and advances.
func (s *PlayState) Answer(answer Answer) (Verdict, error) {
	item, ok := s.Current()
	if !ok {
		return VerdictUndefined, ErrSessionFinished
	}
	v := Grade(item, answer)
	s.Verdicts[s.Index] = v
	s.Answered[s.Index] = true
	s.Index++
	return v, nil
}

// Skip advances without an answer; the item counts as incorrect.
func (s *PlayState) Skip() error {
	if s.Done() {
		return ErrSessionFinished
	}
	s.Verdicts[s.Index] = VerdictIncorrect
	s.Index++
	return nil
}

// Finish closes the session, treating unanswered items as incorrect, and
// returns the result to record. Ungradable items count as presented but are
// never reported per item.
func (s *PlayState) Finish() entity.SessionResult {
	for i := s.Index; i < len(s.Items); i++ {
		s.Verdicts[i] = VerdictIncorrect
	}
	s.Index = len(s.Items)

	result := entity.SessionResult{
		QuestionsAnswered:    len(s.Items),
		MaxCorrectInRow:      ScanStreak(s.Verdicts).MaxCorrectInRow,
		PerQuestion:          []entity.QuestionOutcome{},
		LanguageEntryResults: []entity.EntryOutcome{},
	}
	for i, item := range s.Items {
		v := s.Verdicts[i]
		if v.Correct() {
			result.CorrectAnswers++
		}
		if v == VerdictUndefined {
			continue
		}
		switch {
		case item.EntryID != nil:
			result.LanguageEntryResults = append(result.LanguageEntryResults, entity.EntryOutcome{
				EntryID:   *item.EntryID,
				IsCorrect: v.Correct(),
			})
		case item.QuestionID != nil:
			result.PerQuestion = append(result.PerQuestion, entity.QuestionOutcome{
				QuestionID: item.QuestionID,
				IsCorrect:  v.Correct(),
			})
		}
	}
	return result
}

// AnsweredCount reports how many items received an explicit answer.
func (s *PlayState) AnsweredCount() int {
	n := 0
	for _, ok := range s.Answered {
		if ok {
			n++
		}
	}
	return n
}
