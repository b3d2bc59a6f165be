package cortexexv1

import "time"

// PlayQuestion is one presented item of a play session. Exactly one of
// questionId and entryId is set.
type PlayQuestion struct {
	Key            string   `json:"key"`
	ThemeID        int64    `json:"themeId"`
	QuestionID     *int64   `json:"questionId,omitempty"`
	EntryID        *int64   `json:"entryId,omitempty"`
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	IsStrict       bool     `json:"isStrict"`
	Options        []string `json:"options,omitempty"`
	Answer         string   `json:"answer,omitempty"`
	CorrectOptions []string `json:"correctOptions,omitempty"`
}

type BuildSessionPoolRequest struct {
	ThemeIDs []int64 `json:"themeIds"`
	Mode     string  `json:"mode"`
	Count    int32   `json:"count"`
}

type BuildSessionPoolResponse struct {
	Questions []*PlayQuestion `json:"questions"`
}

type GradeAnswerRequest struct {
	Question *PlayQuestion `json:"question"`
	Answer   string        `json:"answer,omitempty"`
	Selected []string      `json:"selected,omitempty"`
}

// GradeAnswerResponse carries null when correctness is undefined.
type GradeAnswerResponse struct {
	IsCorrect *bool `json:"isCorrect"`
}

type QuestionResult struct {
	QuestionID *int64 `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
}

type EntryResult struct {
	EntryID   int64 `json:"entryId"`
	IsCorrect bool  `json:"isCorrect"`
}

type RecordSessionResultRequest struct {
	QuestionsAnswered    int32            `json:"questionsAnswered"`
	CorrectAnswers       int32            `json:"correctAnswers"`
	MaxCorrectInRow      int32            `json:"maxCorrectInRow"`
	PerQuestion          []QuestionResult `json:"perQuestion,omitempty"`
	LanguageEntryResults []EntryResult    `json:"languageEntryResults,omitempty"`
}

type RecordSessionResultResponse struct {
	Accepted  bool  `json:"accepted"`
	SessionID int64 `json:"sessionId"`
}

type Session struct {
	ID                int64     `json:"id"`
	QuestionsAnswered int32     `json:"questionsAnswered"`
	CorrectAnswers    int32     `json:"correctAnswers"`
	MaxCorrectInRow   int32     `json:"maxCorrectInRow"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ListSessionsRequest struct {
	ListRequest
}

type ListSessionsResponse struct {
	Sessions   []*Session          `json:"sessions"`
	Pagination *PaginationResponse `json:"pagination"`
}
