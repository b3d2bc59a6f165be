package cortexexv1

import "time"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
