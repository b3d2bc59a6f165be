package entity

import (
	"strings"
	"time"
)

const maxUserNameLength = 64

// User represents a registered player.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	CredentialHash string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// Validate validates the user entity
func (u *User) Validate() error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" || len(u.Name) > maxUserNameLength {
		return ErrInvalidUserName
	}
	if u.CredentialHash == "" {
		return ErrInvalidPassword
	}
	return nil
}
