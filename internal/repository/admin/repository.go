package admin

import (
	"context"
	"time"
)

// User is an admin dashboard account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, passwordHash string) (*User, error)
}
