package repository

import (
	"context"

	"github.com/geomark-service/internal/domain"
)

// UserRepository persists user credentials.
type UserRepository interface {
	// Create inserts a user and returns the new id.
	// Returns ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, email, passwordHash string) (int64, error)

	// GetByEmail returns the user for a login attempt.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
