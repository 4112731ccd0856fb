package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/domain"
	"github.com/nexospark/website-api/internal/core/ports"
)

// UserContextKey is the echo context key under which the authenticated
// principal is stored.
const UserContextKey = "user"

// Auth requires a valid bearer token and injects the resolved principal
// into the request context. A missing or malformed header is treated
// identically to an invalid token.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the principal when a valid bearer token is
// present and proceeds anonymously otherwise. Used on public routes whose
// visibility rules differ for authenticated callers (draft blog posts).
func OptionalAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return next(c)
			}
			if user, err := auth.Authenticate(c.Request().Context(), token); err == nil {
				c.Set(UserContextKey, user)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", domain.Unauthenticated("you are not logged in")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.Unauthenticated("invalid authorization header")
	}
	return parts[1], nil
}
