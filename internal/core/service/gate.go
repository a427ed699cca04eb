package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/authgate/accounts-service/internal/core/domain"
	"github.com/authgate/accounts-service/internal/core/ports"
)

// Gate answers "is this request authenticated".
type Gate struct {
	verifier ports.TokenVerifier
}

func NewGate(verifier ports.TokenVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// Authenticate verifies a bearer token. Every failure wraps
// domain.ErrInvalidToken.
func (g *Gate) Authenticate(token string) (*domain.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", domain.ErrInvalidToken)
	}

	claims, err := g.verifier.Verify(token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	return claims, nil
}

// Authorize answers "does this authenticated user have admin rights". It
// takes the result of Authenticate; nil claims mean the caller never
// authenticated.
func Authorize(claims *domain.Claims) error {
	if claims == nil {
		return fmt.Errorf("%w: not authenticated", domain.ErrInvalidToken)
	}
	if !claims.IsAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}
