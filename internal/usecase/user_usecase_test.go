package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewUserUsecase(users, quietLogger()).(*userUsecase)
	uc.cost = bcrypt.MinCost
	ctx := context.Background()

	u, err := uc.Register(ctx, "  alice ", "s3cret!")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Name != "alice" {
		t.Fatalf("name not trimmed: %q", u.Name)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.CredentialHash), []byte("s3cret!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	cases := []struct {
		name     string
		user     string
		password string
		want     error
	}{
		{name: "duplicate", user: "alice", password: "another1", want: entity.ErrDuplicateUserName},
		{name: "short password", user: "bob", password: "123", want: entity.ErrInvalidPassword},
		{name: "long password", user: "bob", password: strings.Repeat("x", 73), want: entity.ErrInvalidPassword},
		{name: "blank name", user: "   ", password: "password", want: entity.ErrInvalidUserName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Register(ctx, tc.user, tc.password); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	got, err := uc.GetUser(ctx, u.ID)
	if err != nil || got.Name != "alice" {
		t.Fatalf("GetUser = %+v, %v", got, err)
	}
}
