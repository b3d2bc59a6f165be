package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxThemeTitleLength = 255

// Theme is a user-owned topic collection. A theme holds either classic
// questions or language entries, never both; IsLanguageTopic decides which.
type Theme struct {
	ID              int64
	UserID          int64
	Title           string
	Description     string
	Difficulty      Difficulty
	IsLanguageTopic bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Normalize ensures defaults & constraints before persistence.
func (t *Theme) Normalize(now time.Time) {
	t.Title = strings.TrimSpace(t.Title)
	t.Description = strings.TrimSpace(t.Description)
	if t.Difficulty == "" {
		t.Difficulty = DifficultyMedium
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Validate checks the user-supplied attributes.
func (t *Theme) Validate() error {
	if t.Title == "" || utf8.RuneCountInString(t.Title) > maxThemeTitleLength {
		return ErrInvalidThemeTitle
	}
	if _, ok := ParseDifficulty(string(t.Difficulty)); !ok {
		return ErrInvalidDifficulty
	}
	return nil
}

// CheckOwner returns ErrForbidden when the theme belongs to someone else.
func (t *Theme) CheckOwner(userID int64) error {
	if t.UserID != userID {
		return ErrForbidden
	}
	return nil
}

// AcceptsQuestions reports whether classic questions may be stored in the theme.
func (t *Theme) AcceptsQuestions() error {
	if t.IsLanguageTopic {
		return ErrWrongContentKind
	}
	return nil
}

// AcceptsEntries reports whether language entries may be stored in the theme.
func (t *Theme) AcceptsEntries() error {
	if !t.IsLanguageTopic {
		return ErrWrongContentKind
	}
	return nil
}
