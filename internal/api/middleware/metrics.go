package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/luminosmc/community-api/internal/api/metrics"
)

// Metrics records request latency by route. Errors are rendered through the
// central error handler first so the recorded status is the one sent.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start).Seconds())
			return nil
		}
	}
}
