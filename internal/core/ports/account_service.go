package ports

import (
	"context"
	"time"

	"github.com/authgate/accounts-service/internal/core/domain"
)

// SignupInput is the DTO passed from the transport layer to AccountService.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned by a successful signup or login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type AccountService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}
