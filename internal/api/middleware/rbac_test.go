package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/domain"
)

func newRBACContext(user *domain.User) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(UserContextKey, user)
	}
	return c
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	c := newRBACContext(&domain.User{ID: "u1", Role: domain.RoleEmployee})

	called := false
	handler := RBAC(domain.RoleEmployee, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRBAC_ForbidsUnlistedRole(t *testing.T) {
	c := newRBACContext(&domain.User{ID: "u1", Role: domain.RoleUser})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); domain.KindOf(err) != domain.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRBAC_RequiresPrincipal(t *testing.T) {
	c := newRBACContext(nil)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if err := handler(c); domain.KindOf(err) != domain.KindUnauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
