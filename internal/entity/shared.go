package entity

import "strings"

// Difficulty grades how hard a theme is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts an arbitrary string into a Difficulty, reporting whether it is known.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// QuestionType is the presentation and grading shape of a question.
type QuestionType string

const (
	QuestionTypeInput       QuestionType = "input"
	QuestionTypeSelect      QuestionType = "select"
	QuestionTypeRadiobutton QuestionType = "radiobutton"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeInput, QuestionTypeSelect, QuestionTypeRadiobutton:
		return true
	default:
		return false
	}
}

// HasOptions reports whether questions of this type are answered by picking options.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeSelect || t == QuestionTypeRadiobutton
}

func trimStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, item := range in {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
