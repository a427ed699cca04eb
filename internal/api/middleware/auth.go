package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/authgate/accounts-service/internal/api/metrics"
	"github.com/authgate/accounts-service/internal/core/domain"
	"github.com/authgate/accounts-service/internal/core/service"
)

// DefaultTokenHeader carries the bearer token. Clients send the raw token,
// without a "Bearer" prefix.
const DefaultTokenHeader = "token"

const claimsKey = "claims"

// Authenticate verifies the token from header and stores the claims in the
// echo context. On failure the error goes to the HTTP error handler and next
// is never called.
func Authenticate(gate *service.Gate, header string) echo.MiddlewareFunc {
	if header == "" {
		header = DefaultTokenHeader
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := gate.Authenticate(c.Request().Header.Get(header))
			if err != nil {
				metrics.GateRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by Authenticate, or nil.
func ClaimsFrom(c echo.Context) *domain.Claims {
	claims, _ := c.Get(claimsKey).(*domain.Claims)
	return claims
}
