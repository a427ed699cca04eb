package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/authgate/accounts-service/internal/core/domain"
	"github.com/authgate/accounts-service/internal/core/ports"
)

// AccountService implements signup and login.
type AccountService struct {
	store  ports.CredentialStore
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	guard  ports.SignupGuard
	policy Policy
	log    zerolog.Logger
	now    func() time.Time
}

type Option func(*AccountService)

// WithSignupGuard serializes signups per email through g.
func WithSignupGuard(g ports.SignupGuard) Option {
	return func(s *AccountService) { s.guard = g }
}

func WithPolicy(p Policy) Option {
	return func(s *AccountService) { s.policy = p }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *AccountService) { s.log = log }
}

func NewAccountService(
	store ports.CredentialStore,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	opts ...Option,
) *AccountService {
	s := &AccountService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		policy: DefaultPolicy(),
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup creates an account and returns a token for it. The token claims are
// taken from the record as it was before persistence.
func (s *AccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	email := s.normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}
	if len(in.Password) > domain.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrInvalidInput, domain.MaxPasswordBytes)
	}

	if s.guard != nil {
		release, err := s.guard.Acquire(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrSignupInProgress) {
				return nil, err
			}
			return nil, fmt.Errorf("signup: acquire guard: %w", err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn().Err(err).Str("email", email).Msg("failed to release signup guard")
			}
		}()
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: %w", err)
	}

	// The duplicate check wins over every other field.
	isAdmin, err := s.admitAdminFlag(email, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, exp, err := s.tokens.Issue(domain.ClaimsFromUser(user, s.policy.EmbedPasswordHash))
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("email", email).Bool("is_admin", isAdmin).Msg("user signed up")
	return &ports.AuthResult{Token: token, ExpiresAt: exp, User: created}, nil
}

// Login checks the credentials and returns a token built from the stored
// record.
func (s *AccountService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	email := s.normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return nil, domain.ErrIncorrectPassword
	}

	token, exp, err := s.tokens.Issue(domain.ClaimsFromUser(user, s.policy.EmbedPasswordHash))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("email", email).Msg("user logged in")
	return &ports.AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func (s *AccountService) admitAdminFlag(email string, requested bool) (bool, error) {
	if !requested {
		return false, nil
	}
	switch s.policy.AdminSignup {
	case AdminSignupAllow:
		s.log.Warn().Str("email", email).Msg("self-assigned admin rights accepted at signup")
		return true, nil
	case AdminSignupIgnore:
		s.log.Info().Str("email", email).Msg("admin flag dropped at signup")
		return false, nil
	default:
		return false, domain.ErrAdminSelfGrant
	}
}

// normalizeEmail trims email and, unless the policy preserves case, lowercases
// it so lookups are case-insensitive.
func (s *AccountService) normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if s.policy.PreserveEmailCase {
		return email
	}
	return strings.ToLower(email)
}
