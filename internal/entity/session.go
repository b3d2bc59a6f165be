package entity

import "time"

// QuestionOutcome is the graded result of one classic question in a session.
// A nil QuestionID marks a synthesized item that has no ledger row.
type QuestionOutcome struct {
	QuestionID *int64 `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
}

// EntryOutcome is the graded result of one vocabulary drill in a session.
type EntryOutcome struct {
	EntryID   int64 `json:"entryId"`
	IsCorrect bool  `json:"isCorrect"`
}

// SessionResult is the payload submitted when a play session finishes.
type SessionResult struct {
	QuestionsAnswered    int               `json:"questionsAnswered"`
	CorrectAnswers       int               `json:"correctAnswers"`
	MaxCorrectInRow      int               `json:"maxCorrectInRow"`
	PerQuestion          []QuestionOutcome `json:"perQuestion,omitempty"`
	LanguageEntryResults []EntryOutcome    `json:"languageEntryResults,omitempty"`
}

// Validate rejects negative counters.
func (r *SessionResult) Validate() error {
	if r == nil {
		return ErrInvalidSessionResult
	}
	if r.QuestionsAnswered < 0 || r.CorrectAnswers < 0 || r.MaxCorrectInRow < 0 {
		return ErrInvalidSessionResult
	}
	return nil
}

// SessionSummary is the append-only record of one finished session.
type SessionSummary struct {
	ID                int64
	UserID            int64
	QuestionsAnswered int
	CorrectAnswers    int
	MaxCorrectInRow   int
	CreatedAt         time.Time
}

// NewSessionSummary builds the summary row recorded for result.
func NewSessionSummary(userID int64, result *SessionResult, now time.Time) *SessionSummary {
	return &SessionSummary{
		UserID:            userID,
		QuestionsAnswered: result.QuestionsAnswered,
		CorrectAnswers:    result.CorrectAnswers,
		MaxCorrectInRow:   result.MaxCorrectInRow,
		CreatedAt:         now,
	}
}
