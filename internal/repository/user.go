package repository

import (
	"context"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// UserRepository persists registered users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByName returns nil without error when no user has that name.
	FindByName(ctx context.Context, name string) (*entity.User, error)
}
