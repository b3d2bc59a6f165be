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

func newThemeFixture() (*themeUsecase, *fakeThemeRepo, *fakeQuestionRepo, *fakeEntryRepo) {
	themes := newFakeThemeRepo()
	questions := newFakeQuestionRepo()
	entries := newFakeEntryRepo(themes)
	uc := NewThemeUsecase(themes, questions, entries, quietLogger()).(*themeUsecase)
	uc.clock = func() time.Time { return time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC) }
	return uc, themes, questions, entries
}

func TestCreateTheme(t *testing.T) {
	uc, _, _, _ := newThemeFixture()
	ctx := context.Background()

	created, err := uc.CreateTheme(ctx, 1, &entity.Theme{Title: "  Capitals ", Difficulty: "HARD", UserID: 99})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if created.Title != "Capitals" || created.Difficulty != entity.DifficultyHard || created.UserID != 1 {
		t.Fatalf("unexpected theme %+v", created)
	}

	defaulted, err := uc.CreateTheme(ctx, 1, &entity.Theme{Title: "Rivers"})
	if err != nil {
		t.Fatalf("CreateTheme: %v", err)
	}
	if defaulted.Difficulty != entity.DifficultyMedium {
		t.Fatalf("expected medium default, got %q", defaulted.Difficulty)
	}

	cases := []struct {
		name  string
		theme *entity.Theme
		want  error
	}{
		{name: "blank title", theme: &entity.Theme{Title: "  "}, want: entity.ErrInvalidThemeTitle},
		{name: "bad difficulty", theme: &entity.Theme{Title: "x", Difficulty: "insane"}, want: entity.ErrInvalidDifficulty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateTheme(ctx, 1, tc.theme); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUpdateThemeKeepsLanguageFlag(t *testing.T) {
	uc, themes, _, _ := newThemeFixture()
	ctx := context.Background()
	vocab := themes.add(entity.Theme{UserID: 1, Title: "Animals", Difficulty: entity.DifficultyEasy, IsLanguageTopic: true})

	updated, err := uc.UpdateTheme(ctx, 1, ThemeUpdate{ID: vocab.ID, Title: "Pets", Difficulty: "easy", IsLanguageTopic: lo.ToPtr(true)})
	if err != nil {
		t.Fatalf("UpdateTheme: %v", err)
	}
	if updated.Title != "Pets" || !updated.IsLanguageTopic {
		t.Fatalf("unexpected update %+v", updated)
	}

	if _, err := uc.UpdateTheme(ctx, 1, ThemeUpdate{ID: vocab.ID, Title: "Pets", IsLanguageTopic: lo.ToPtr(false)}); !errors.Is(err, entity.ErrLanguageFlagLocked) {
		t.Fatalf("expected ErrLanguageFlagLocked, got %v", err)
	}
	if _, err := uc.UpdateTheme(ctx, 2, ThemeUpdate{ID: vocab.ID, Title: "Mine now"}); !errors.Is(err, entity.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.UpdateTheme(ctx, 1, ThemeUpdate{ID: 404, Title: "x"}); !errors.Is(err, entity.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestQuestionContentKindAndOwnership(t *testing.T) {
	uc, themes, questions, _ := newThemeFixture()
	ctx := context.Background()
	classic := themes.add(entity.Theme{UserID: 1, Title: "Capitals"})
	vocab := themes.add(entity.Theme{UserID: 1, Title: "Animals", IsLanguageTopic: true})

	q, err := uc.CreateQuestion(ctx, 1, &entity.Question{
		ThemeID: classic.ID, Text: "Pick 4", Type: "radiobutton",
		Options: []string{" 3", "4", "4"}, CorrectOptions: []string{"4"}, Answer: "ignored",
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if len(q.Options) != 2 || q.Answer != "" {
		t.Fatalf("options must be trimmed and deduplicated: %+v", q)
	}

	cases := []struct {
		name     string
		userID   int64
		question *entity.Question
		want     error
	}{
		{name: "language theme", userID: 1, question: &entity.Question{ThemeID: vocab.ID, Text: "x", Type: "input", Answer: "y"}, want: entity.ErrWrongContentKind},
		{name: "foreign theme", userID: 2, question: &entity.Question{ThemeID: classic.ID, Text: "x", Type: "input", Answer: "y"}, want: entity.ErrForbidden},
		{name: "missing answer", userID: 1, question: &entity.Question{ThemeID: classic.ID, Text: "x", Type: "input"}, want: entity.ErrMissingAnswer},
		{name: "not subset", userID: 1, question: &entity.Question{ThemeID: classic.ID, Text: "x", Type: "select", Options: []string{"a", "b"}, CorrectOptions: []string{"c"}}, want: entity.ErrCorrectOptionsNotInSet},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.CreateQuestion(ctx, tc.userID, tc.question); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	updated, err := uc.UpdateQuestion(ctx, 1, &entity.Question{ID: q.ID, ThemeID: vocab.ID, Text: "Type it", Type: "input", Answer: "4"})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.ThemeID != classic.ID {
		t.Fatalf("questions must not move between themes: %+v", updated)
	}

	if err := uc.DeleteQuestion(ctx, 2, q.ID); !errors.Is(err, entity.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.DeleteQuestion(ctx, 1, q.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if _, err := questions.GetByID(ctx, q.ID); !errors.Is(err, entity.ErrQuestionNotFound) {
		t.Fatalf("question still present: %v", err)
	}

	if _, _, err := uc.ListQuestions(ctx, 1, &repository.ListQuestionQuery{ThemeID: vocab.ID}); !errors.Is(err, entity.ErrWrongContentKind) {
		t.Fatalf("expected ErrWrongContentKind, got %v", err)
	}
}

func TestEntryLifecycle(t *testing.T) {
	uc, themes, _, _ := newThemeFixture()
	ctx := context.Background()
	classic := themes.add(entity.Theme{UserID: 1, Title: "Capitals"})
	vocab := themes.add(entity.Theme{UserID: 1, Title: "Animals", IsLanguageTopic: true})

	if _, err := uc.CreateEntry(ctx, 1, &entity.LanguageEntry{ThemeID: classic.ID, Word: "cat", Translation: "кот"}); !errors.Is(err, entity.ErrWrongContentKind) {
		t.Fatalf("expected ErrWrongContentKind, got %v", err)
	}
	if _, err := uc.CreateEntry(ctx, 1, &entity.LanguageEntry{ThemeID: vocab.ID, Word: " ", Translation: "кот"}); !errors.Is(err, entity.ErrInvalidEntryWord) {
		t.Fatalf("expected ErrInvalidEntryWord, got %v", err)
	}

	e, err := uc.CreateEntry(ctx, 1, &entity.LanguageEntry{ThemeID: vocab.ID, Word: " cat ", Translation: "кот "})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if e.Word != "cat" || e.Translation != "кот" {
		t.Fatalf("entry not trimmed: %+v", e)
	}

	if _, err := uc.UpdateEntry(ctx, 1, &entity.LanguageEntry{ID: e.ID, Word: "cat", Translation: ""}); !errors.Is(err, entity.ErrInvalidTranslation) {
		t.Fatalf("expected ErrInvalidTranslation, got %v", err)
	}
	items, total, err := uc.ListEntries(ctx, 1, &repository.ListEntryQuery{ThemeID: vocab.ID})
	if err != nil || total != 1 || items[0].ID != e.ID {
		t.Fatalf("ListEntries = %+v, %d, %v", items, total, err)
	}
	if err := uc.DeleteEntry(ctx, 1, e.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := uc.DeleteEntry(ctx, 1, e.ID); !errors.Is(err, entity.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDeleteThemeChecksOwner(t *testing.T) {
	uc, themes, _, _ := newThemeFixture()
	ctx := context.Background()
	th := themes.add(entity.Theme{UserID: 1, Title: "Capitals"})

	if err := uc.DeleteTheme(ctx, 2, th.ID); !errors.Is(err, entity.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := uc.DeleteTheme(ctx, 1, th.ID); err != nil {
		t.Fatalf("DeleteTheme: %v", err)
	}
	if _, err := uc.GetTheme(ctx, 1, th.ID); !errors.Is(err, entity.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}
