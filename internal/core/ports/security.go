package ports

import (
	"time"

	"github.com/authgate/accounts-service/internal/core/domain"
)

// PasswordHasher is a one-way salted hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports a mismatch as (false, nil); errors mean the stored hash
	// is unusable.
	Verify(plain, hash string) (bool, error)
}

type TokenIssuer interface {
	Issue(claims domain.Claims) (token string, expiresAt time.Time, err error)
}

type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
