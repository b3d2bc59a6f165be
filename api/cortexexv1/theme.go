package cortexexv1

import "time"

type Theme struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Difficulty      string    `json:"difficulty"`
	IsLanguageTopic bool      `json:"isLanguageTopic"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateThemeRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Difficulty      string `json:"difficulty"`
	IsLanguageTopic bool   `json:"isLanguageTopic"`
}

// UpdateThemeRequest may echo isLanguageTopic; a changed value is rejected.
type UpdateThemeRequest struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Difficulty      string `json:"difficulty"`
	IsLanguageTopic *bool  `json:"isLanguageTopic,omitempty"`
}

type ListThemesRequest struct {
	ListRequest
}

type ListThemesResponse struct {
	Themes     []*Theme            `json:"themes"`
	Pagination *PaginationResponse `json:"pagination"`
}

type Question struct {
	ID             int64     `json:"id"`
	ThemeID        int64     `json:"themeId"`
	Text           string    `json:"text"`
	Type           string    `json:"type"`
	IsStrict       bool      `json:"isStrict"`
	Options        []string  `json:"options"`
	Answer         string    `json:"answer,omitempty"`
	CorrectOptions []string  `json:"correctOptions"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// QuestionRequest creates a question (ID zero) or replaces one (ID set).
// ThemeID is ignored on update.
type QuestionRequest struct {
	ID             int64    `json:"id,omitempty"`
	ThemeID        int64    `json:"themeId"`
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	IsStrict       bool     `json:"isStrict"`
	Options        []string `json:"options,omitempty"`
	Answer         string   `json:"answer,omitempty"`
	CorrectOptions []string `json:"correctOptions,omitempty"`
}

type ListQuestionsRequest struct {
	ListRequest
	ThemeID int64 `json:"themeId"`
}

type ListQuestionsResponse struct {
	Questions  []*Question         `json:"questions"`
	Pagination *PaginationResponse `json:"pagination"`
}

type LanguageEntry struct {
	ID          int64     `json:"id"`
	ThemeID     int64     `json:"themeId"`
	Word        string    `json:"word"`
	Description string    `json:"description"`
	Translation string    `json:"translation"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntryRequest creates an entry (ID zero) or replaces one (ID set).
type EntryRequest struct {
	ID          int64  `json:"id,omitempty"`
	ThemeID     int64  `json:"themeId"`
	Word        string `json:"word"`
	Description string `json:"description"`
	Translation string `json:"translation"`
}

type ListEntriesRequest struct {
	ListRequest
	ThemeID int64 `json:"themeId"`
}

type ListEntriesResponse struct {
	Entries    []*LanguageEntry    `json:"entries"`
	Pagination *PaginationResponse `json:"pagination"`
}
