package entity

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// Question is a classic quiz item stored in a non-language theme.
type Question struct {
	ID             int64
	ThemeID        int64
	Text           string
	Type           QuestionType
	IsStrict       bool
	Options        []string
	Answer         string
	CorrectOptions []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Normalize trims user input and drops fields the question type does not use.
func (q *Question) Normalize(now time.Time) {
	q.Text = strings.TrimSpace(q.Text)
	q.Type = QuestionType(strings.ToLower(strings.TrimSpace(string(q.Type))))
	q.Answer = strings.TrimSpace(q.Answer)
	q.Options = trimStrings(q.Options)
	q.CorrectOptions = trimStrings(q.CorrectOptions)
	if q.Type.HasOptions() {
		q.Answer = ""
	} else {
		q.Options = []string{}
		q.CorrectOptions = []string{}
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now
	}
	q.UpdatedAt = now
}

// Validate enforces correct_options ⊆ options and the per-type answer rules.
func (q *Question) Validate() error {
	if q.Text == "" {
		return ErrInvalidQuestionText
	}
	if !q.Type.Valid() {
		return ErrInvalidQuestionType
	}
	if q.Type == QuestionTypeInput {
		if q.Answer == "" {
			return ErrMissingAnswer
		}
		return nil
	}

	if len(q.Options) < 2 {
		return ErrNotEnoughOptions
	}
	if !lo.Every(q.Options, q.CorrectOptions) {
		return ErrCorrectOptionsNotInSet
	}
	switch q.Type {
	case QuestionTypeRadiobutton:
		if len(q.CorrectOptions) != 1 {
			return ErrInvalidCorrectOptions
		}
	case QuestionTypeSelect:
		if len(q.CorrectOptions) == 0 {
			return ErrInvalidCorrectOptions
		}
	}
	return nil
}
