package mapping

import (
	cortexexv1 "github.com/Swatkovich/cortexex-sub000/api/cortexexv1"
	"github.com/Swatkovich/cortexex-sub000/internal/entity"
)

// ToUser never exposes the credential hash.
func ToUser(in *entity.User) *cortexexv1.User {
	return &cortexexv1.User{ID: in.ID, Name: in.Name, CreatedAt: in.CreatedAt}
}
