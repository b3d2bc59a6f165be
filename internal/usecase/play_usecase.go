package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/config"
	"github.com/Swatkovich/cortexex-sub000/internal/quiz"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

// PoolRequest asks for a play session over the given themes.
type PoolRequest struct {
	ThemeIDs []int64
	Mode     string
	Count    int
}

// PlayUsecase assembles play sessions and grades single answers.
type PlayUsecase interface {
	BuildSessionPool(ctx context.Context, userID int64, req PoolRequest) ([]quiz.Item, error)
	GradeAnswer(item quiz.Item, answer quiz.Answer) quiz.Verdict
}

// NewPlayUsecase wires pool assembly with the content repositories.
func NewPlayUsecase(
	themes repository.ThemeRepository,
	questions repository.QuestionRepository,
	entries repository.LanguageEntryRepository,
	cfg *config.Config,
	logger logrus.FieldLogger,
) PlayUsecase {
	return &playUsecase{
		themes:     themes,
		questions:  questions,
		entries:    entries,
		bounds:     cfg.Quiz,
		logger:     logger,
		newBuilder: func() *quiz.Builder { return quiz.NewBuilder(nil) },
	}
}

type playUsecase struct {
	themes     repository.ThemeRepository
	questions  repository.QuestionRepository
	entries    repository.LanguageEntryRepository
	bounds     config.QuizConfig
	logger     logrus.FieldLogger
	newBuilder func() *quiz.Builder
}

func (u *playUsecase) BuildSessionPool(ctx context.Context, userID int64, req PoolRequest) ([]quiz.Item, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	mode, err := quiz.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	ids := lo.Uniq(req.ThemeIDs)
	if len(ids) == 0 {
		return nil, entity.ErrNoThemesSelected
	}

	themes, err := u.themes.ListOwned(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if len(themes) != len(ids) {
		return nil, entity.ErrThemeNotFound
	}
	if mode == quiz.ModeLanguage && !quiz.LanguageModeAvailable(themes) {
		return nil, entity.ErrLanguageModeMixed
	}

	var classicIDs, languageIDs []int64
	for _, t := range themes {
		if t.IsLanguageTopic {
			languageIDs = append(languageIDs, t.ID)
		} else {
			classicIDs = append(classicIDs, t.ID)
		}
	}

	content := quiz.Content{Themes: themes}
	if len(classicIDs) > 0 {
		if content.Questions, err = u.questions.ListByThemes(ctx, classicIDs); err != nil {
			return nil, err
		}
	}
	if len(languageIDs) > 0 {
		if content.Entries, err = u.entries.ListByThemes(ctx, languageIDs); err != nil {
			return nil, err
		}
	}

	count := u.bounds.ClampCount(req.Count)
	items, err := u.newBuilder().Build(content, mode, count)
	if err != nil {
		return nil, err
	}
	u.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"mode":    string(mode),
		"themes":  len(themes),
		"items":   len(items),
	}).Debug("session pool built")
	return items, nil
}

func (u *playUsecase) GradeAnswer(item quiz.Item, answer quiz.Answer) quiz.Verdict {
	return quiz.Grade(item, answer)
}
