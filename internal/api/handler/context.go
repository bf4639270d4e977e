package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/api/middleware"
	"github.com/luminosmc/community-api/internal/core/domain"
)

// messageResponse acknowledges operations that return no resource.
type messageResponse struct {
	Message string `json:"message"`
}

// actor returns the principal injected by the Auth middleware. A missing
// principal means the route was mounted without Auth.
func actor(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return p, nil
}

// bind decodes the request body into v. Field rules are checked by the
// services, so only malformed payloads are rejected here.
func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
