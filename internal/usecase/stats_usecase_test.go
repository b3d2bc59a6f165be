package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

func newStatsFixture() (StatsUsecase, *fakeStatsRepo, *fakeUserRepo, *fakeThemeRepo) {
	stats := &fakeStatsRepo{}
	users := newFakeUserRepo()
	themes := newFakeThemeRepo()
	return NewStatsUsecase(stats, users, themes, quietLogger()), stats, users, themes
}

func TestGlobalStats(t *testing.T) {
	uc, stats, _, _ := newStatsFixture()
	stats.content = entity.ContentTotals{Users: 3, Themes: 4, StrictQuestions: 5, NonStrictQuestions: 2, Entries: 3}
	stats.sessions = entity.SessionTotals{Games: 7, QuestionsAnswered: 40}
	stats.levels = []entity.LevelCount{{Level: 1, Count: 2}, {Level: 3, Count: 1}}
	stats.streaks = []entity.LevelCount{{Level: 5, Count: 1}, {Level: 0, Count: 1}}

	got, err := uc.GlobalStats(context.Background())
	if err != nil {
		t.Fatalf("GlobalStats: %v", err)
	}
	if got.TotalUsers != 3 || got.TotalThemes != 4 || got.TotalQuestions != 10 {
		t.Fatalf("unexpected content totals %+v", got)
	}
	if got.TotalGamesPlayed != 7 || got.TotalQuestionsAnswered != 40 {
		t.Fatalf("unexpected session totals %+v", got)
	}
	want := entity.KnowledgeDistribution{DontKnow: 1 + 3, Know: 2, PerfectlyKnow: 2}
	if got.KnowledgeDistribution != want {
		t.Fatalf("distribution = %+v, want %+v", got.KnowledgeDistribution, want)
	}
	if scope := stats.scopes[0]; scope.UserID != nil || scope.ThemeID != nil {
		t.Fatalf("global stats must not be scoped: %+v", scope)
	}
}

func TestProfileStats(t *testing.T) {
	uc, stats, users, _ := newStatsFixture()
	u, _ := users.Create(context.Background(), &entity.User{Name: "alice"})
	stats.content = entity.ContentTotals{StrictQuestions: 2, NonStrictQuestions: 4, Entries: 1}
	stats.sessions = entity.SessionTotals{Games: 2, QuestionsAnswered: 9, BestCorrectInRow: 5, LastCorrectInRow: 2}
	stats.levels = []entity.LevelCount{{Level: 2, Count: 3}}

	got, err := uc.ProfileStats(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("ProfileStats: %v", err)
	}
	if got.QuestionsCounts != (entity.QuestionsCounts{Strict: 3, NonStrict: 4}) {
		t.Fatalf("entries must count as strict: %+v", got.QuestionsCounts)
	}
	if got.BestCorrectInRow != 5 || got.CurrentCorrectInRow != 2 {
		t.Fatalf("streak fields must stay distinct: %+v", got)
	}
	if got.KnowledgeDistribution != (entity.KnowledgeDistribution{WellKnow: 3}) {
		t.Fatalf("tracked rows covering every graded item must not backfill: %+v", got.KnowledgeDistribution)
	}
	if scope := stats.scopes[0]; scope.UserID == nil || *scope.UserID != u.ID {
		t.Fatalf("profile stats must be user scoped: %+v", scope)
	}

	if _, err := uc.ProfileStats(context.Background(), 404); !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestThemeStats(t *testing.T) {
	uc, stats, _, themes := newStatsFixture()
	classic := themes.add(entity.Theme{UserID: 1, Title: "Capitals"})
	vocab := themes.add(entity.Theme{UserID: 1, Title: "Animals", IsLanguageTopic: true})
	foreign := themes.add(entity.Theme{UserID: 2, Title: "Theirs"})

	stats.content = entity.ContentTotals{StrictQuestions: 2, NonStrictQuestions: 1}
	stats.levels = []entity.LevelCount{{Level: 1, Count: 1}, {Level: 0, Count: 1}}
	got, err := uc.ThemeStats(context.Background(), 1, classic.ID)
	if err != nil {
		t.Fatalf("ThemeStats: %v", err)
	}
	if got.KnowledgeDistribution != (entity.KnowledgeDistribution{DontKnow: 1, Know: 1}) {
		t.Fatalf("distribution = %+v", got.KnowledgeDistribution)
	}
	if got.QuestionsCounts != (entity.QuestionsCounts{Strict: 2, NonStrict: 1}) {
		t.Fatalf("counts = %+v", got.QuestionsCounts)
	}

	stats.content = entity.ContentTotals{Entries: 4}
	stats.streaks = []entity.LevelCount{{Level: 3, Count: 1}}
	got, err = uc.ThemeStats(context.Background(), 1, vocab.ID)
	if err != nil {
		t.Fatalf("ThemeStats: %v", err)
	}
	if !got.IsLanguageTopic || got.KnowledgeDistribution != (entity.KnowledgeDistribution{DontKnow: 3, PerfectlyKnow: 1}) {
		t.Fatalf("language theme stats = %+v", got)
	}

	if _, err := uc.ThemeStats(context.Background(), 1, foreign.ID); !errors.Is(err, entity.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.ThemeStats(context.Background(), 1, 404); !errors.Is(err, entity.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}
