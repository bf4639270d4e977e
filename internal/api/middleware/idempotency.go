package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/api/metrics"
	"github.com/luminosmc/community-api/internal/core/domain"
	"github.com/luminosmc/community-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients mark a create request as a retry.
const HeaderIdempotencyKey = "Idempotency-Key"

// Idempotency rejects a request whose Idempotency-Key the same caller already
// used successfully. A key is released again when the request fails, so a
// failed submission can be retried with the same key. With a nil guard, or
// without the header, requests pass untouched. Guard failures are logged and
// the request proceeds.
func Idempotency(guard ports.IdempotencyGuard, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if guard == nil {
			return next
		}
		return func(c echo.Context) error {
			key := c.Request().Header.Get(HeaderIdempotencyKey)
			if key == "" {
				return next(c)
			}

			scope := idempotencyScope(c)
			fresh, err := guard.Claim(c.Request().Context(), scope, key)
			if err != nil {
				log.Warn().Err(err).Str("idempotency_key", key).Msg("idempotency check failed, processing anyway")
				return next(c)
			}
			if !fresh {
				metrics.IdempotencyRejectedTotal.Inc()
				log.Debug().Str("idempotency_key", key).Str("scope", scope).Msg("duplicate submission rejected")
				return domain.ErrDuplicateSubmission
			}

			err = next(c)
			if err != nil || c.Response().Status >= http.StatusBadRequest {
				// The request context may already be cancelled.
				if rerr := guard.Release(context.WithoutCancel(c.Request().Context()), scope, key); rerr != nil {
					log.Warn().Err(rerr).Str("idempotency_key", key).Msg("idempotency release failed")
				}
			}
			return err
		}
	}
}

// idempotencyScope keys claims by caller and route. Anonymous callers are
// told apart by client address.
func idempotencyScope(c echo.Context) string {
	caller := "anonymous@" + c.RealIP()
	if p := Principal(c); p != nil {
		caller = string(p.Kind) + ":" + p.ID
	}
	return caller + ":" + c.Path()
}
