package entity

import "errors"

// Domain errors for users, themes and their content.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserName    = errors.New("invalid user name")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrDuplicateUserName  = errors.New("user name already taken")
	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrThemeNotFound      = errors.New("theme not found")
	ErrForbidden          = errors.New("theme belongs to another user")
	ErrInvalidThemeTitle  = errors.New("invalid theme title")
	ErrInvalidDifficulty  = errors.New("invalid theme difficulty")
	ErrLanguageFlagLocked = errors.New("language topic flag cannot change after creation")
	ErrWrongContentKind   = errors.New("operation does not match the theme content kind")
)

// Question and vocabulary errors.
var (
	ErrQuestionNotFound       = errors.New("question not found")
	ErrInvalidQuestionText    = errors.New("invalid question text")
	ErrInvalidQuestionType    = errors.New("invalid question type")
	ErrMissingAnswer          = errors.New("input question requires an answer")
	ErrNotEnoughOptions       = errors.New("choice question requires at least two options")
	ErrCorrectOptionsNotInSet = errors.New("correct options must be a subset of options")
	ErrInvalidCorrectOptions  = errors.New("invalid number of correct options")
	ErrEntryNotFound          = errors.New("language entry not found")
	ErrInvalidEntryWord       = errors.New("invalid language entry word")
	ErrInvalidTranslation     = errors.New("invalid language entry translation")
)

// Session and play errors.
var (
	ErrInvalidSessionResult = errors.New("invalid session result")
	ErrNoThemesSelected     = errors.New("no themes selected")
	ErrLanguageModeMixed    = errors.New("language mode requires every selected theme to be a language topic")
	ErrInvalidPlayMode      = errors.New("invalid play mode")
)

// IsValidation reports whether err is a caller input problem.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the referenced record is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrThemeNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrEntryNotFound)
}

var validationErrors = []error{
	ErrInvalidUserName,
	ErrInvalidPassword,
	ErrInvalidUserID,
	ErrInvalidThemeTitle,
	ErrInvalidDifficulty,
	ErrLanguageFlagLocked,
	ErrWrongContentKind,
	ErrInvalidQuestionText,
	ErrInvalidQuestionType,
	ErrMissingAnswer,
	ErrNotEnoughOptions,
	ErrCorrectOptionsNotInSet,
	ErrInvalidCorrectOptions,
	ErrInvalidEntryWord,
	ErrInvalidTranslation,
	ErrInvalidSessionResult,
	ErrNoThemesSelected,
	ErrLanguageModeMixed,
	ErrInvalidPlayMode,
}
