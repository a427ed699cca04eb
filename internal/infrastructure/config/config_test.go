package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/require"

	"github.com/authgate/accounts-service/internal/core/service"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 60*time.Second, cfg.Token.TTL)
	require.Equal(t, "token", cfg.Token.Header)
	require.Equal(t, 10, cfg.Token.BcryptCost)
	require.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URL)
	require.Equal(t, service.Policy{AdminSignup: service.AdminSignupReject}, cfg.ServicePolicy())
	require.Equal(t, service.UniquenessIndex, cfg.EmailUniqueness())
	require.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":                "s3cret",
		"PORT":                      "3000",
		"ENV":                       "production",
		"MONGODB_URL":               "mongodb://db:27017/auth",
		"TOKEN_TTL":                 "5m",
		"SIGNUP_ADMIN_POLICY":       "allow",
		"EMAIL_UNIQUENESS":          "lock",
		"TOKEN_EMBED_PASSWORD_HASH": "true",
		"EMAIL_PRESERVE_CASE":       "true",
		"SIGNUP_LOCK_TTL":           "3s",
	}))
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "mongodb://db:27017/auth", cfg.Mongo.URL)
	require.Equal(t, 5*time.Minute, cfg.Token.TTL)
	require.Equal(t, 3*time.Second, cfg.Redis.LockTTL)
	require.Equal(t, service.Policy{
		AdminSignup:       service.AdminSignupAllow,
		EmbedPasswordHash: true,
		PreserveEmailCase: true,
	}, cfg.ServicePolicy())
	require.Equal(t, service.UniquenessLock, cfg.EmailUniqueness())
	require.True(t, cfg.IsProduction())
}

func TestLoad_RequiresSecret(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.Error(t, err)
}

func TestLoad_RejectsUnknownPolicies(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":          "s3cret",
		"SIGNUP_ADMIN_POLICY": "sometimes",
	}))
	require.ErrorContains(t, err, "SIGNUP_ADMIN_POLICY")

	_, err = load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":       "s3cret",
		"EMAIL_UNIQUENESS": "hope",
	}))
	require.ErrorContains(t, err, "EMAIL_UNIQUENESS")
}
