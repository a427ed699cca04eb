package ports

import (
	"context"

	"github.com/authgate/accounts-service/internal/core/domain"
)

// CredentialStore persists user records keyed by email.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SignupGuard serializes signups for one email. Release must be called once
// the signup finished, successfully or not.
type SignupGuard interface {
	Acquire(ctx context.Context, email string) (release func(context.Context) error, err error)
}
