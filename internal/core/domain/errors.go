package domain

import "errors"

// Validation failures.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrAdminSelfGrant    = errors.New("admin rights cannot be self-assigned")
	ErrSignupInProgress  = errors.New("signup already in progress")
)

// Auth and authorization failures.
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("admin rights required")
)

// ErrHashing wraps internal password hashing failures.
var ErrHashing = errors.New("password hashing failed")

// Kind groups errors for responses and metrics.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuth          Kind = "auth"
	KindAuthorization Kind = "authorization"
	KindInternal      Kind = "internal"
)

// KindOf classifies err. Anything unrecognised is internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrUserExists),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrIncorrectPassword),
		errors.Is(err, ErrAdminSelfGrant),
		errors.Is(err, ErrSignupInProgress):
		return KindValidation
	case errors.Is(err, ErrInvalidToken):
		return KindAuth
	case errors.Is(err, ErrNotAdmin):
		return KindAuthorization
	default:
		return KindInternal
	}
}
