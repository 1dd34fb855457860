package middleware

import (
	"log/slog"

	"buyhive/internal/delivery/api/response"
	deliverycontext "buyhive/internal/delivery/context"
	domainerrors "buyhive/internal/domain/errors"
	"buyhive/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles expensive routes per user.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a middleware counting requests under scope. The key is the
// authenticated user, or the client IP on routes without one. Limiter
// failures let the request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, ok := GetUserID(c)
			if !ok {
				subject = "ip:" + c.RealIP()
			}

			allowed, err := m.limiter.Allow(c.Request().Context(), scope+":"+subject)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rate limiter unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}
			if !allowed {
				return response.HandleAppError(c, domainerrors.ErrRateLimited)
			}

			return next(c)
		}
	}
}
