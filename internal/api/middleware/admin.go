package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/authgate/accounts-service/internal/api/metrics"
	"github.com/authgate/accounts-service/internal/core/domain"
	"github.com/authgate/accounts-service/internal/core/service"
)

// RequireAdmin lets only admin claims through. Chained without Authenticate
// it rejects every request as unauthenticated.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.Authorize(ClaimsFrom(c)); err != nil {
				reason := "not_admin"
				if errors.Is(err, domain.ErrInvalidToken) {
					reason = "unauthenticated"
				}
				metrics.GateRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}
			return next(c)
		}
	}
}
