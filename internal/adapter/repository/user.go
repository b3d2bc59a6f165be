package repository

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/infrastructure/database"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

var userColumns = []string{"id", "name", "credential_hash", "created_at"}

type userRepository struct {
	store
}

// NewUserRepository constructs an ent sql backed user repository.
func NewUserRepository(drv dialect.Driver) repository.UserRepository {
	return &userRepository{store{drv: drv}}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	insert := r.builder().Insert(database.TableUsers).
		Columns("name", "credential_hash", "created_at").
		Values(user.Name, user.CredentialHash, user.CreatedAt.UTC()).
		Returning("id")

	created := *user
	if _, err := r.queryOne(ctx, insert, func(rows *sql.Rows) error {
		return rows.Scan(&created.ID)
	}); err != nil {
		if errors.Is(err, errUniqueViolation) {
			return nil, entity.ErrDuplicateUserName
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := r.findOne(ctx, sql.EQ("id", id))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	if name == "" {
		return nil, nil
	}
	return r.findOne(ctx, sql.EQ("name", name))
}

func (r *userRepository) findOne(ctx context.Context, pred *sql.Predicate) (*entity.User, error) {
	sel := r.builder().Select(userColumns...).From(sql.Table(database.TableUsers)).Where(pred).Limit(1)

	var user entity.User
	found, err := r.queryOne(ctx, sel, func(rows *sql.Rows) error {
		return rows.Scan(&user.ID, &user.Name, &user.CredentialHash, &user.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}
