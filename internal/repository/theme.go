package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ListThemeQuery holds parameters for listing a user's themes.
type ListThemeQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// ThemeRepository abstracts theme persistence. Lookups by id are not owner
// scoped so callers can tell a missing theme from a foreign one.
type ThemeRepository interface {
	Create(ctx context.Context, theme *entity.Theme) (*entity.Theme, error)
	Update(ctx context.Context, theme *entity.Theme) (*entity.Theme, error)
	GetByID(ctx context.Context, id int64) (*entity.Theme, error)
	// ListOwned returns the subset of ids that exist and belong to userID.
	ListOwned(ctx context.Context, userID int64, ids []int64) ([]entity.Theme, error)
	List(ctx context.Context, query *ListThemeQuery) ([]entity.Theme, int64, error)
	// Delete removes the theme and, through cascades, its content and ledger rows.
	Delete(ctx context.Context, id int64) error
}
