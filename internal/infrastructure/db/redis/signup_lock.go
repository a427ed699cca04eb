package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/authgate/accounts-service/internal/core/domain"
)

const defaultLockTTL = 10 * time.Second

// releaseScript deletes the lock only while it still holds the caller's
// owner id, so an expired lock taken over by another signup is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SignupLock implements ports.SignupGuard with a SET NX lock per email.
// Key format: signup:lock:<email>
type SignupLock struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSignupLock creates a SignupLock. ttl bounds how long a crashed signup
// can block the email; defaultLockTTL is used when ttl <= 0.
func NewSignupLock(client *redis.Client, ttl time.Duration) *SignupLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &SignupLock{client: client, ttl: ttl}
}

// Acquire takes the lock for email or fails with domain.ErrSignupInProgress
// when another signup holds it.
func (l *SignupLock) Acquire(ctx context.Context, email string) (func(context.Context) error, error) {
	key := l.key(email)
	owner := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, owner, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("signup lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrSignupInProgress
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, owner).Err(); err != nil {
			return fmt.Errorf("signup unlock: %w", err)
		}
		return nil
	}, nil
}

func (l *SignupLock) key(email string) string {
	return "signup:lock:" + email
}
