package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ListSessionQuery holds parameters for a user's session history.
type ListSessionQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// SessionRepository appends and lists session summaries. Rows are never
// updated or deleted except by the user cascade.
type SessionRepository interface {
	Create(ctx context.Context, summary *entity.SessionSummary) (*entity.SessionSummary, error)
	List(ctx context.Context, query *ListSessionQuery) ([]entity.SessionSummary, int64, error)
}
