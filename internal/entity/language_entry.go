package entity

import (
	"strings"
	"time"
)

// LanguageEntry is one vocabulary item of a language theme.
type LanguageEntry struct {
	ID          int64
	ThemeID     int64
	Word        string
	Description string
	Translation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize ensures defaults & constraints before persistence.
func (e *LanguageEntry) Normalize(now time.Time) {
	e.Word = strings.TrimSpace(e.Word)
	e.Translation = strings.TrimSpace(e.Translation)
	e.Description = strings.TrimSpace(e.Description)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}

// Validate rejects entries whose word or translation is blank.
func (e *LanguageEntry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return ErrInvalidEntryWord
	}
	if strings.TrimSpace(e.Translation) == "" {
		return ErrInvalidTranslation
	}
	return nil
}

// Playable reports whether the entry can be turned into drill questions.
func (e LanguageEntry) Playable() bool {
	return e.Validate() == nil
}
