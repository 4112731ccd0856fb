package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return domain.Unauthenticated("you are not logged in")
			}
			if err := domain.Authorize(user, allowedRoles...); err != nil {
				return err
			}
			return next(c)
		}
	}
}
