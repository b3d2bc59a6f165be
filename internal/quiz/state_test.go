package quiz

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

func TestPlayStateFinish(t *testing.T) {
	items := []Item{
		{Key: "question:1", QuestionID: lo.ToPtr(int64(1)), Type: entity.QuestionTypeInput, Answer: "Paris", IsStrict: true},
		{Key: "question:2", QuestionID: lo.ToPtr(int64(2)), Type: entity.QuestionTypeInput, Answer: "Berlin", IsStrict: true},
		{Key: "entry:5:input", EntryID: lo.ToPtr(int64(5)), Type: entity.QuestionTypeInput, Answer: "кот"},
		{Key: "question:3", QuestionID: lo.ToPtr(int64(3)), Type: entity.QuestionTypeInput},
		{Key: "question:4", QuestionID: lo.ToPtr(int64(4)), Type: entity.QuestionTypeInput, Answer: "Rome"},
	}
	state := NewPlayState(ModeClassic, items)

	mustAnswer(t, state, Answer{Text: "paris"}, VerdictCorrect)
	mustAnswer(t, state, Answer{Text: "Bonn"}, VerdictIncorrect)
	mustAnswer(t, state, Answer{Text: "КОТ"}, VerdictCorrect)
	mustAnswer(t, state, Answer{Text: "whatever"}, VerdictUndefined)

	result := state.Finish()
	if result.QuestionsAnswered != 5 || result.CorrectAnswers != 2 || result.MaxCorrectInRow != 1 {
		t.Fatalf("unexpected totals %+v", result)
	}
	if len(result.PerQuestion) != 3 {
		t.Fatalf("expected 3 per-question outcomes, got %+v", result.PerQuestion)
	}
	if last := result.PerQuestion[2]; *last.QuestionID != 4 || last.IsCorrect {
		t.Fatalf("unanswered question must be recorded incorrect: %+v", last)
	}
	if len(result.LanguageEntryResults) != 1 || !result.LanguageEntryResults[0].IsCorrect {
		t.Fatalf("unexpected entry outcomes %+v", result.LanguageEntryResults)
	}
	if state.AnsweredCount() != 4 {
		t.Fatalf("expected 4 explicit answers, got %d", state.AnsweredCount())
	}
	if _, err := state.Answer(Answer{}); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
}

func TestPlayStateSurvivesSerialization(t *testing.T) {
	state := NewPlayState(ModeLanguage, []Item{
		{Key: "entry:1:input", EntryID: lo.ToPtr(int64(1)), Type: entity.QuestionTypeInput, Answer: "кот"},
		{Key: "entry:2:input", EntryID: lo.ToPtr(int64(2)), Type: entity.QuestionTypeInput, Answer: "пёс"},
	})
	mustAnswer(t, state, Answer{Text: "кот"}, VerdictCorrect)

	payload, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var resumed PlayState
	if err := json.Unmarshal(payload, &resumed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	mustAnswer(t, &resumed, Answer{Text: "пес"}, VerdictCorrect)
	result := resumed.Finish()
	if result.CorrectAnswers != 2 || result.MaxCorrectInRow != 2 {
		t.Fatalf("resumed session lost progress: %+v", result)
	}
}

func TestPlayStateSkip(t *testing.T) {
	state := NewPlayState(ModeClassic, []Item{
		{Key: "question:1", QuestionID: lo.ToPtr(int64(1)), Type: entity.QuestionTypeInput, Answer: "a"},
	})
	if err := state.Skip(); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if !state.Done() {
		t.Fatalf("expected session to be done")
	}
	if err := state.Skip(); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("expected ErrSessionFinished, got %v", err)
	}
	if result := state.Finish(); result.CorrectAnswers != 0 || result.PerQuestion[0].IsCorrect {
		t.Fatalf("skipped item must be incorrect: %+v", result)
	}
}

func mustAnswer(t *testing.T, state *PlayState, answer Answer, want Verdict) {
	t.Helper()
	got, err := state.Answer(answer)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != want {
		t.Fatalf("Answer(%+v) = %v, want %v", answer, got, want)
	}
}
