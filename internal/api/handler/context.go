package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/api/middleware"
	"github.com/nexospark/website-api/internal/core/domain"
)

// currentUser extracts the principal injected by the Auth middleware.
// Presence proves the middleware ran; its absence on a protected route is
// an authentication failure, not a server bug we should 500 on.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok {
		return nil, domain.Unauthenticated("you are not logged in")
	}
	return user, nil
}

// optionalUser returns the principal when one was resolved, nil otherwise.
func optionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	return user
}
