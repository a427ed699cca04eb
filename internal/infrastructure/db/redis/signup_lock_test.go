package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/authgate/accounts-service/internal/core/domain"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

func TestSignupLock_ExclusivePerEmail(t *testing.T) {
	_, client := newTestClient(t)
	lock := NewSignupLock(client, time.Minute)
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)

	_, err = lock.Acquire(ctx, "a@x.com")
	require.ErrorIs(t, err, domain.ErrSignupInProgress)

	other, err := lock.Acquire(ctx, "b@x.com")
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))

	again, err := lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestSignupLock_Expires(t *testing.T) {
	srv, client := newTestClient(t)
	lock := NewSignupLock(client, time.Second)
	ctx := context.Background()

	_, err := lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)

	srv.FastForward(2 * time.Second)

	_, err = lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)
}

func TestSignupLock_ReleaseKeepsForeignLock(t *testing.T) {
	srv, client := newTestClient(t)
	lock := NewSignupLock(client, time.Second)
	ctx := context.Background()

	stale, err := lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)

	srv.FastForward(2 * time.Second)
	_, err = lock.Acquire(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, stale(ctx))
	require.True(t, srv.Exists("signup:lock:a@x.com"), "stale release must not drop the new owner's lock")
}

func TestSignupLock_DefaultTTL(t *testing.T) {
	srv, client := newTestClient(t)
	lock := NewSignupLock(client, 0)

	_, err := lock.Acquire(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, defaultLockTTL, srv.TTL("signup:lock:a@x.com"))
}

func TestSignupLock_BackendDown(t *testing.T) {
	srv, client := newTestClient(t)
	lock := NewSignupLock(client, time.Second)
	srv.Close()

	_, err := lock.Acquire(context.Background(), "a@x.com")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrSignupInProgress)
}

func TestConnect(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()

	client, err := Connect(context.Background(), Config{Addr: addr})
	require.NoError(t, err)
	require.Equal(t, defaultOpTimeout, client.Options().ReadTimeout)
	require.Equal(t, defaultOpTimeout, client.Options().DialTimeout)
	require.NoError(t, client.Close())

	srv.Close()
	_, err = Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond})
	require.ErrorContains(t, err, "signup lock backend")
}
