package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/core/domain"
)

const principalKey = "principal"

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// Auth requires a valid bearer token and stores the resolved principal in
// the request context.
func Auth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrNotAuthenticated
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
				return domain.ErrInvalidToken
			}

			p, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(token))
			if err != nil {
				return err
			}

			SetPrincipal(c, p)
			return next(c)
		}
	}
}

// RequireStaff rejects principals that are not staff holding at least one
// role. It must run after Auth.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !Principal(c).IsStaff() {
				return domain.ErrStaffOnly
			}
			return next(c)
		}
	}
}

// Principal returns the principal stored by Auth, or nil.
func Principal(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// SetPrincipal stores p as the authenticated actor of the request.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}
