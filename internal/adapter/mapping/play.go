package mapping

import (
	"github.com/samber/lo"

	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/quiz"
)

func ToPlayQuestion(in quiz.Item) *cortexexv1.PlayQuestion {
	return &cortexexv1.PlayQuestion{
		Key:            in.Key,
		ThemeID:        in.ThemeID,
		QuestionID:     in.QuestionID,
		EntryID:        in.EntryID,
		Text:           in.Text,
		Type:           string(in.Type),
		IsStrict:       in.IsStrict,
		Options:        in.Options,
		Answer:         in.Answer,
		CorrectOptions: in.CorrectOptions,
	}
}

func ToPlayQuestions(in []quiz.Item) []*cortexexv1.PlayQuestion {
	return lo.Map(in, func(item quiz.Item, _ int) *cortexexv1.PlayQuestion { return ToPlayQuestion(item) })
}

func FromPlayQuestion(in *cortexexv1.PlayQuestion) quiz.Item {
	return quiz.Item{
		Key:            in.Key,
		ThemeID:        in.ThemeID,
		QuestionID:     in.QuestionID,
		EntryID:        in.EntryID,
		Text:           in.Text,
		Type:           entity.QuestionType(in.Type),
		IsStrict:       in.IsStrict,
		Options:        in.Options,
		Answer:         in.Answer,
		CorrectOptions: in.CorrectOptions,
	}
}

func FromRecordSessionResultRequest(in *cortexexv1.RecordSessionResultRequest) *entity.SessionResult {
	return &entity.SessionResult{
		QuestionsAnswered: int(in.QuestionsAnswered),
		CorrectAnswers:    int(in.CorrectAnswers),
		MaxCorrectInRow:   int(in.MaxCorrectInRow),
		PerQuestion: lo.Map(in.PerQuestion, func(r cortexexv1.QuestionResult, _ int) entity.QuestionOutcome {
			return entity.QuestionOutcome{QuestionID: r.QuestionID, IsCorrect: r.IsCorrect}
		}),
		LanguageEntryResults: lo.Map(in.LanguageEntryResults, func(r cortexexv1.EntryResult, _ int) entity.EntryOutcome {
			return entity.EntryOutcome{EntryID: r.EntryID, IsCorrect: r.IsCorrect}
		}),
	}
}

func ToSession(in entity.SessionSummary) *cortexexv1.Session {
	return &cortexexv1.Session{
		ID:                in.ID,
		QuestionsAnswered: int32(in.QuestionsAnswered),
		CorrectAnswers:    int32(in.CorrectAnswers),
		MaxCorrectInRow:   int32(in.MaxCorrectInRow),
		CreatedAt:         in.CreatedAt,
	}
}

func ToSessions(in []entity.SessionSummary) []*cortexexv1.Session {
	return lo.Map(in, func(s entity.SessionSummary, _ int) *cortexexv1.Session { return ToSession(s) })
}
