package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nexospark/website-api/internal/core/domain"
)

// stubAuth resolves exactly one token to one user.
type stubAuth struct {
	token string
	user  *domain.User
}

func (s *stubAuth) Register(context.Context, string, string, string) (*domain.User, string, error) {
	panic("not used")
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.User, string, error) {
	panic("not used")
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*domain.User, error) {
	if token == s.token {
		return s.user, nil
	}
	return nil, domain.Unauthenticated("invalid or expired token")
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	alice := &domain.User{ID: "user-1", Name: "Alice", Role: domain.RoleUser}
	auth := &stubAuth{token: "good-token", user: alice}
	c, rec := newAuthContext("Bearer good-token")

	called := false
	handler := Auth(auth)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserContextKey).(*domain.User)
		if !ok || user.ID != "user-1" {
			t.Fatalf("principal not injected: %v", c.Get(UserContextKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_Rejections(t *testing.T) {
	auth := &stubAuth{token: "good-token", user: &domain.User{ID: "user-1"}}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer bad-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(tc.header)
			handler := Auth(auth)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if domain.KindOf(err) != domain.KindUnauthenticated {
				t.Fatalf("expected unauthenticated, got %v", err)
			}
		})
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	alice := &domain.User{ID: "user-1"}
	auth := &stubAuth{token: "good-token", user: alice}
	c, _ := newAuthContext("bearer good-token")

	called := false
	handler := Auth(auth)(func(c echo.Context) error {
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

func TestOptionalAuth_AnonymousOnInvalidToken(t *testing.T) {
	auth := &stubAuth{token: "good-token", user: &domain.User{ID: "user-1"}}

	for _, header := range []string{"", "Bearer bad-token", "Token junk"} {
		c, _ := newAuthContext(header)
		called := false
		handler := OptionalAuth(auth)(func(c echo.Context) error {
			called = true
			if c.Get(UserContextKey) != nil {
				t.Fatalf("expected anonymous request for header %q", header)
			}
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error for header %q: %v", header, err)
		}
		if !called {
			t.Fatalf("next not called for header %q", header)
		}
	}
}

func TestOptionalAuth_ResolvesValidToken(t *testing.T) {
	alice := &domain.User{ID: "user-1", Role: domain.RoleAdmin}
	auth := &stubAuth{token: "good-token", user: alice}
	c, _ := newAuthContext("Bearer good-token")

	handler := OptionalAuth(auth)(func(c echo.Context) error {
		user, ok := c.Get(UserContextKey).(*domain.User)
		if !ok || user.ID != "user-1" {
			t.Fatalf("principal not injected: %v", c.Get(UserContextKey))
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
