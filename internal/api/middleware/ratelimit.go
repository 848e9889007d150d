package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/worldroam/countries-api/internal/api/metrics"
)

// Allower decides whether a request identified by key may proceed.
type Allower interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit counts requests per client IP ahead of all routes. When the
// limiter itself fails (Redis down) the request is let through with a
// warning: availability wins over strict limiting.
func RateLimit(limiter Allower, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitRejectedTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"message": "Too many requests, please try again later",
				})
			}
			return next(c)
		}
	}
}
