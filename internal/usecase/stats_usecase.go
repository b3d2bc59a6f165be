package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

// StatsUsecase derives the read-only dashboards from content, ledger and
// session history.
type StatsUsecase interface {
	GlobalStats(ctx context.Context) (*entity.GlobalStats, error)
	ProfileStats(ctx context.Context, userID int64) (*entity.ProfileStats, error)
	ThemeStats(ctx context.Context, userID, themeID int64) (*entity.ThemeStats, error)
}

// NewStatsUsecase wires the aggregator.
func NewStatsUsecase(stats repository.StatsRepository, users repository.UserRepository, themes repository.ThemeRepository, logger logrus.FieldLogger) StatsUsecase {
	return &statsUsecase{stats: stats, users: users, themes: themes, logger: logger}
}

type statsUsecase struct {
	stats  repository.StatsRepository
	users  repository.UserRepository
	themes repository.ThemeRepository
	logger logrus.FieldLogger
}

func (u *statsUsecase) GlobalStats(ctx context.Context) (*entity.GlobalStats, error) {
	scope := repository.StatsScope{}
	content, err := u.stats.ContentTotals(ctx, scope)
	if err != nil {
		return nil, err
	}
	sessions, err := u.stats.SessionTotals(ctx, nil)
	if err != nil {
		return nil, err
	}
	dist, err := u.distribution(ctx, scope, content.Graded(), true, true)
	if err != nil {
		return nil, err
	}

	return &entity.GlobalStats{
		TotalUsers:             content.Users,
		TotalThemes:            content.Themes,
		TotalQuestions:         content.StrictQuestions + content.NonStrictQuestions + content.Entries,
		TotalGamesPlayed:       sessions.Games,
		TotalQuestionsAnswered: sessions.QuestionsAnswered,
		KnowledgeDistribution:  dist,
	}, nil
}

func (u *statsUsecase) ProfileStats(ctx context.Context, userID int64) (*entity.ProfileStats, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	if _, err := u.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	scope := repository.StatsScope{UserID: &userID}
	content, err := u.stats.ContentTotals(ctx, scope)
	if err != nil {
		return nil, err
	}
	sessions, err := u.stats.SessionTotals(ctx, &userID)
	if err != nil {
		return nil, err
	}
	dist, err := u.distribution(ctx, scope, content.Graded(), true, true)
	if err != nil {
		return nil, err
	}

	return &entity.ProfileStats{
		TotalGames:             sessions.Games,
		TotalQuestionsAnswered: sessions.QuestionsAnswered,
		BestCorrectInRow:       sessions.BestCorrectInRow,
		CurrentCorrectInRow:    sessions.LastCorrectInRow,
		QuestionsCounts: entity.QuestionsCounts{
			Strict:    content.Graded(),
			NonStrict: content.NonStrictQuestions,
		},
		KnowledgeDistribution: dist,
	}, nil
}

func (u *statsUsecase) ThemeStats(ctx context.Context, userID, themeID int64) (*entity.ThemeStats, error) {
	if userID <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	theme, err := u.themes.GetByID(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if err := theme.CheckOwner(userID); err != nil {
		u.logger.WithFields(logrus.Fields{"user_id": userID, "theme_id": themeID}).Warn("theme stats requested by non-owner")
		return nil, err
	}

	scope := repository.StatsScope{UserID: &userID, ThemeID: &themeID}
	content, err := u.stats.ContentTotals(ctx, scope)
	if err != nil {
		return nil, err
	}

	out := &entity.ThemeStats{ThemeID: theme.ID, IsLanguageTopic: theme.IsLanguageTopic}
	if theme.IsLanguageTopic {
		out.QuestionsCounts = entity.QuestionsCounts{Strict: content.Entries}
		out.KnowledgeDistribution, err = u.distribution(ctx, scope, content.Entries, false, true)
	} else {
		out.QuestionsCounts = entity.QuestionsCounts{Strict: content.StrictQuestions, NonStrict: content.NonStrictQuestions}
		out.KnowledgeDistribution, err = u.distribution(ctx, scope, content.StrictQuestions, true, false)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// distribution folds the selected ledger shapes of scope into the histogram,
// backfilling bucket 0 up to graded.
func (u *statsUsecase) distribution(ctx context.Context, scope repository.StatsScope, graded int64, questions, entries bool) (entity.KnowledgeDistribution, error) {
	var groups [][]entity.LevelCount
	if questions {
		levels, err := u.stats.QuestionLevels(ctx, scope)
		if err != nil {
			return entity.KnowledgeDistribution{}, err
		}
		groups = append(groups, levels)
	}
	if entries {
		streaks, err := u.stats.EntryStreaks(ctx, scope)
		if err != nil {
			return entity.KnowledgeDistribution{}, err
		}
		groups = append(groups, streaks)
	}
	return entity.FoldDistribution(graded, groups...), nil
}
