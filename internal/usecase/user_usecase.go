package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
	"github.com/Swatkovich/cortexex-sub000/internal/repository"
)

const (
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// UserUsecase registers players.
type UserUsecase interface {
	Register(ctx context.Context, name, password string) (*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}

// NewUserUsecase wires registration with the user store.
func NewUserUsecase(users repository.UserRepository, logger logrus.FieldLogger) UserUsecase {
	return &userUsecase{users: users, logger: logger, clock: time.Now, cost: bcrypt.DefaultCost}
}

type userUsecase struct {
	users  repository.UserRepository
	logger logrus.FieldLogger
	clock  func() time.Time
	cost   int
}

func (u *userUsecase) Register(ctx context.Context, name, password string) (*entity.User, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, entity.ErrInvalidPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Name: name, CredentialHash: string(hash), CreatedAt: u.clock()}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	existing, err := u.users.FindByName(ctx, user.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateUserName
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	u.logger.WithField("user_id", created.ID).Info("user registered")
	return created, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, entity.ErrInvalidUserID
	}
	return u.users.GetByID(ctx, id)
}
