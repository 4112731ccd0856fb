package ports

import (
	"context"

	"github.com/nexospark/website-api/internal/core/domain"
)

// AuthService is the credential and session model: it mints tokens at
// registration/login and resolves bearer tokens back to principals.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Authenticate verifies a bearer token and resolves its subject. It
	// fails when the signature or expiry check fails, or when the subject
	// no longer exists.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
