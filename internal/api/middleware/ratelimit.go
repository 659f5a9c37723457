package middleware

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dishdash/dish-service/internal/api/metrics"
	"github.com/dishdash/dish-service/internal/core/domain"
	"github.com/dishdash/dish-service/internal/core/ports"
)

// RateLimit gates a route behind a fixed-window limiter keyed by client IP.
// It must be registered after Auth so unauthenticated callers never consume
// budget. Limiter failures fail open: the request proceeds and the error is
// logged.
func RateLimit(limiter ports.RateLimiter, capacity int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if key == "" {
				key = "unknown"
			}

			decision, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				secs := int(math.Ceil(decision.RetryAfter.Seconds()))
				if secs < 0 {
					secs = 0
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				metrics.RateLimitedTotal.Inc()
				return domain.ErrRateLimited
			}

			return next(c)
		}
	}
}
