package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// StatsScope narrows aggregate reads. The zero value covers every user.
// UserID restricts content to that user's themes and ledger rows to that
// user; ThemeID further restricts to one theme.
type StatsScope struct {
	UserID  *int64
	ThemeID *int64
}

// StatsRepository serves the read-only aggregate queries behind the stats views.
type StatsRepository interface {
	ContentTotals(ctx context.Context, scope StatsScope) (entity.ContentTotals, error)
	SessionTotals(ctx context.Context, userID *int64) (entity.SessionTotals, error)
	// QuestionLevels groups ledger rows of strict questions by knowledge level.
	QuestionLevels(ctx context.Context, scope StatsScope) ([]entity.LevelCount, error)
	// EntryStreaks groups entry ledger rows by stored streak, unclamped.
	EntryStreaks(ctx context.Context, scope StatsScope) ([]entity.LevelCount, error)
}
