package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// UserRepository defines persistence for principals.
type UserRepository interface {
	// Create inserts a user; a duplicate email yields a Conflict error.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
