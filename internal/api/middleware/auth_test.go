package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/domain"
)

type stubAuthenticator struct {
	token string
	p     *domain.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.Principal, error) {
	if token != s.token {
		return nil, domain.ErrInvalidToken
	}
	return s.p, nil
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	alice := &domain.Principal{Kind: domain.KindMember, ID: "u1", Username: "alice"}
	c, rec := newContext("Bearer good")

	called := false
	handler := Auth(stubAuthenticator{token: "good", p: alice})(func(c echo.Context) error {
		called = true
		if got := Principal(c); got != alice {
			t.Fatalf("principal not set, got %+v", got)
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

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"missing header", "", domain.ErrNotAuthenticated},
		{"wrong scheme", "Token good", domain.ErrInvalidToken},
		{"no token", "Bearer ", domain.ErrInvalidToken},
		{"bad token", "Bearer nope", domain.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.header)
			handler := Auth(stubAuthenticator{token: "good"})(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			err := handler(c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, domain.ErrUnauthenticated) {
				t.Fatalf("expected unauthenticated category, got %v", err)
			}
		})
	}
}

func TestAuthMiddleware_LowercaseScheme(t *testing.T) {
	c, _ := newContext("bearer good")
	handler := Auth(stubAuthenticator{token: "good", p: &domain.Principal{}})(func(c echo.Context) error {
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}

func TestRequireStaff(t *testing.T) {
	tests := []struct {
		name    string
		p       *domain.Principal
		allowed bool
	}{
		{"no principal", nil, false},
		{"member", &domain.Principal{Kind: domain.KindMember}, false},
		{"staff without roles", &domain.Principal{Kind: domain.KindStaff}, false},
		{"staff with role", &domain.Principal{Kind: domain.KindStaff, Roles: []string{"helper"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext("")
			if tt.p != nil {
				SetPrincipal(c, tt.p)
			}

			called := false
			err := RequireStaff()(func(c echo.Context) error {
				called = true
				return nil
			})(c)

			if called != tt.allowed {
				t.Fatalf("expected allowed=%v, got %v", tt.allowed, called)
			}
			if !tt.allowed && !errors.Is(err, domain.ErrStaffOnly) {
				t.Fatalf("expected ErrStaffOnly, got %v", err)
			}
		})
	}
}
