// Package quiz holds the pure play-time logic: assembling question pools,
// grading answers and scanning streaks. Nothing here touches storage.
package quiz

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// Verdict is the tri-state outcome of grading: correctness can be undefined
// when the question carries no expected answer.
type Verdict uint8

const (
	VerdictUndefined Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// Correct reports whether the verdict counts as a correct answer.
func (v Verdict) Correct() bool { return v == VerdictCorrect }

// Bool returns the verdict as a nullable boolean.
func (v Verdict) Bool() *bool {
	switch v {
	case VerdictCorrect:
		return lo.ToPtr(true)
	case VerdictIncorrect:
		return lo.ToPtr(false)
	default:
		return nil
	}
}

// MarshalJSON renders true, false or null.
func (v Verdict) MarshalJSON() ([]byte, error) {
	switch v {
	case VerdictCorrect:
		return []byte("true"), nil
	case VerdictIncorrect:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts true, false or null.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true":
		*v = VerdictCorrect
	case "false":
		*v = VerdictIncorrect
	default:
		*v = VerdictUndefined
	}
	return nil
}

func verdictOf(ok bool) Verdict {
	if ok {
		return VerdictCorrect
	}
	return VerdictIncorrect
}

// Answer is what a player submitted for one item. Text is used by input
// questions, Selected by radiobutton (first element) and select questions.
type Answer struct {
	Text     string   `json:"text,omitempty"`
	Selected []string `json:"selected,omitempty"`
}

// Normalize prepares a string for comparison: trims, lowercases and folds
// the Cyrillic "ё" into "е". No other letters are folded.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "ё", "е")
}

// Grade evaluates answer against item.
func Grade(item Item, answer Answer) Verdict {
	switch item.Type {
	case entity.QuestionTypeInput:
		return gradeInput(item.Answer, answer.Text)
	case entity.QuestionTypeRadiobutton:
		return gradeRadio(item.CorrectOptions, answer)
	case entity.QuestionTypeSelect:
		return gradeSelect(item.CorrectOptions, answer.Selected)
	default:
		return VerdictUndefined
	}
}

func gradeInput(expected, given string) Verdict {
	if strings.TrimSpace(expected) == "" {
		return VerdictUndefined
	}
	return verdictOf(Normalize(given) == Normalize(expected))
}

func gradeRadio(correct []string, answer Answer) Verdict {
	if len(correct) == 0 {
		return VerdictUndefined
	}
	choice := answer.Text
	if len(answer.Selected) > 0 {
		choice = answer.Selected[0]
	}
	return verdictOf(Normalize(choice) == Normalize(correct[0]))
}

func gradeSelect(correct, selected []string) Verdict {
	if len(correct) == 0 {
		return VerdictUndefined
	}
	if len(selected) == 0 {
		return VerdictIncorrect
	}
	return verdictOf(slices.Equal(normalizedSet(selected), normalizedSet(correct)))
}

func normalizedSet(values []string) []string {
	out := lo.Uniq(lo.Map(values, func(v string, _ int) string { return Normalize(v) }))
	slices.Sort(out)
	return out
}
