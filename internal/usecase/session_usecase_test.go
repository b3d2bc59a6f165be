package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

type recorderFixture struct {
	uc        *sessionUsecase
	sessions  *fakeSessionRepo
	ledger    *fakeLedger
	themes    *fakeThemeRepo
	questions *fakeQuestionRepo
	entries   *fakeEntryRepo
}

func newRecorderFixture() *recorderFixture {
	themes := newFakeThemeRepo()
	f := &recorderFixture{
		sessions:  &fakeSessionRepo{},
		ledger:    newFakeLedger(),
		themes:    themes,
		questions: newFakeQuestionRepo(),
		entries:   newFakeEntryRepo(themes),
	}
	uc := NewSessionUsecase(f.sessions, f.ledger, f.questions, f.entries, quietLogger()).(*sessionUsecase)
	uc.clock = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	f.uc = uc
	return f
}

func TestRecordSessionResultAppliesLedger(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	capitals := f.themes.add(entity.Theme{UserID: 1, Title: "Capitals"})
	q1 := f.questions.add(entity.Question{ThemeID: capitals.ID, IsStrict: true})
	q2 := f.questions.add(entity.Question{ThemeID: capitals.ID, IsStrict: true})

	summary, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{
		QuestionsAnswered: 2,
		CorrectAnswers:    1,
		MaxCorrectInRow:   1,
		PerQuestion: []entity.QuestionOutcome{
			{QuestionID: &q1.ID, IsCorrect: true},
			{QuestionID: &q2.ID, IsCorrect: false},
		},
	})
	if err != nil {
		t.Fatalf("RecordSessionResult: %v", err)
	}
	if summary.ID == 0 || summary.QuestionsAnswered != 2 || summary.CorrectAnswers != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if got := f.ledger.questions[ledgerKey{1, q1.ID}]; got != 1 {
		t.Fatalf("Q1 level = %d, want 1", got)
	}
	if got, ok := f.ledger.questions[ledgerKey{1, q2.ID}]; !ok || got != 0 {
		t.Fatalf("Q2 level = %d (present %v), want 0", got, ok)
	}
}

func TestRecordSessionResultEmptySessionStillCounts(t *testing.T) {
	f := newRecorderFixture()
	if _, err := f.uc.RecordSessionResult(context.Background(), 1, &entity.SessionResult{}); err != nil {
		t.Fatalf("RecordSessionResult: %v", err)
	}
	if len(f.sessions.items) != 1 {
		t.Fatalf("expected one summary row, got %d", len(f.sessions.items))
	}
	if f.ledger.calls != 0 {
		t.Fatalf("no ledger writes expected, got %d", f.ledger.calls)
	}
}

func TestRecordSessionResultSkipsIneligibleItems(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	mine := f.themes.add(entity.Theme{UserID: 1, Title: "Mine"})
	strict := f.questions.add(entity.Question{ThemeID: mine.ID, IsStrict: true})
	loose := f.questions.add(entity.Question{ThemeID: mine.ID})
	vocab := f.themes.add(entity.Theme{UserID: 1, Title: "Vocab", IsLanguageTopic: true})
	cat := f.entries.add(entity.LanguageEntry{ThemeID: vocab.ID, Word: "cat", Translation: "кот"})
	foreign := f.themes.add(entity.Theme{UserID: 2, Title: "Theirs", IsLanguageTopic: true})
	owl := f.entries.add(entity.LanguageEntry{ThemeID: foreign.ID, Word: "owl", Translation: "сова"})

	_, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{
		QuestionsAnswered: 5,
		PerQuestion: []entity.QuestionOutcome{
			{QuestionID: nil, IsCorrect: true},
			{QuestionID: &strict.ID, IsCorrect: true},
			{QuestionID: &loose.ID, IsCorrect: true},
			{QuestionID: lo.ToPtr(int64(999)), IsCorrect: true},
		},
		LanguageEntryResults: []entity.EntryOutcome{
			{EntryID: cat.ID, IsCorrect: true},
			{EntryID: owl.ID, IsCorrect: true},
		},
	})
	if err != nil {
		t.Fatalf("RecordSessionResult: %v", err)
	}
	if len(f.ledger.questions) != 1 {
		t.Fatalf("only the strict question may be tracked, got %v", f.ledger.questions)
	}
	if _, ok := f.ledger.questions[ledgerKey{1, loose.ID}]; ok {
		t.Fatalf("non-strict question produced a ledger row")
	}
	if len(f.ledger.entries) != 1 || f.ledger.entries[ledgerKey{1, cat.ID}] != 1 {
		t.Fatalf("only the owned entry may be tracked, got %v", f.ledger.entries)
	}
}

func TestRecordSessionResultIsolatesLedgerFailures(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	th := f.themes.add(entity.Theme{UserID: 1, Title: "T"})
	q1 := f.questions.add(entity.Question{ThemeID: th.ID, IsStrict: true})
	q2 := f.questions.add(entity.Question{ThemeID: th.ID, IsStrict: true})
	f.ledger.failOn[q1.ID] = true

	_, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{
		PerQuestion: []entity.QuestionOutcome{
			{QuestionID: &q1.ID, IsCorrect: true},
			{QuestionID: &q2.ID, IsCorrect: true},
		},
	})
	if err != nil {
		t.Fatalf("ledger failures must not fail the call: %v", err)
	}
	if f.ledger.questions[ledgerKey{1, q2.ID}] != 1 {
		t.Fatalf("later items must still be applied: %v", f.ledger.questions)
	}
}

func TestRecordSessionResultEntryStreakScenarios(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	vocab := f.themes.add(entity.Theme{UserID: 1, Title: "Animals", IsLanguageTopic: true})
	cat := f.entries.add(entity.LanguageEntry{ThemeID: vocab.ID, Word: "cat", Translation: "кот"})

	play := func(correct bool) entity.CorrectStreak {
		t.Helper()
		if _, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{
			QuestionsAnswered:    1,
			LanguageEntryResults: []entity.EntryOutcome{{EntryID: cat.ID, IsCorrect: correct}},
		}); err != nil {
			t.Fatalf("RecordSessionResult: %v", err)
		}
		return f.ledger.entries[ledgerKey{1, cat.ID}]
	}

	for range 4 {
		play(true)
	}
	if got := f.ledger.entries[ledgerKey{1, cat.ID}]; got != 3 {
		t.Fatalf("streak after 4 corrects = %d, want 3", got)
	}
	if got := play(false); got != 0 {
		t.Fatalf("streak after a miss = %d, want 0", got)
	}
	if len(f.sessions.items) != 5 {
		t.Fatalf("expected 5 summaries, got %d", len(f.sessions.items))
	}
}

func TestRecordSessionResultValidation(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	cases := []struct {
		name   string
		userID int64
		result *entity.SessionResult
		want   error
	}{
		{name: "nil result", userID: 1, result: nil, want: entity.ErrInvalidSessionResult},
		{name: "negative counter", userID: 1, result: &entity.SessionResult{CorrectAnswers: -1}, want: entity.ErrInvalidSessionResult},
		{name: "no user", userID: 0, result: &entity.SessionResult{}, want: entity.ErrInvalidUserID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.uc.RecordSessionResult(ctx, tc.userID, tc.result); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(f.sessions.items) != 0 {
		t.Fatalf("rejected results must not be stored")
	}

	f.sessions.err = errors.New("disk full")
	if _, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{}); err == nil {
		t.Fatalf("summary insert failure must surface")
	}
}

func TestListSessions(t *testing.T) {
	f := newRecorderFixture()
	ctx := context.Background()
	for i := range 3 {
		if _, err := f.uc.RecordSessionResult(ctx, 1, &entity.SessionResult{CorrectAnswers: i}); err != nil {
			t.Fatalf("RecordSessionResult: %v", err)
		}
	}
	items, total, err := f.uc.ListSessions(ctx, &repository.ListSessionQuery{UserID: 1})
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if total != 3 || items[0].CorrectAnswers != 2 {
		t.Fatalf("expected newest first, got %+v", items)
	}
	if _, _, err := f.uc.ListSessions(ctx, &repository.ListSessionQuery{}); !errors.Is(err, entity.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}
