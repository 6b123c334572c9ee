package domain

import "time"

type UserID int64

type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
