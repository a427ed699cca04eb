// @title        Accounts API
// @version      1.0
// @description  Signup, login and role-gated pages backed by bearer tokens.
// @BasePath     /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/authgate/accounts-service/internal/api"
	"github.com/authgate/accounts-service/internal/api/handler"
	"github.com/authgate/accounts-service/internal/api/view"
	"github.com/authgate/accounts-service/internal/core/service"
	"github.com/authgate/accounts-service/internal/infrastructure/config"
	"github.com/authgate/accounts-service/internal/infrastructure/db/mongo"
	"github.com/authgate/accounts-service/internal/infrastructure/db/redis"
	"github.com/authgate/accounts-service/internal/infrastructure/security"
	"github.com/authgate/accounts-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "accounts-service: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "accounts-service",
	})

	// --- Credential store ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URL:      cfg.Mongo.URL,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	uniqueness := cfg.EmailUniqueness()
	users := mongo.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx, uniqueness == service.UniquenessIndex); err != nil {
		return err
	}

	checks := map[string]handler.Check{"mongodb": handler.MongoCheck(db)}
	opts := []service.Option{
		service.WithPolicy(cfg.ServicePolicy()),
		service.WithLogger(log.With().Str("component", "accounts").Logger()),
	}

	// --- Signup lock (lock mode only) ---
	if uniqueness == service.UniquenessLock {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)

		opts = append(opts, service.WithSignupGuard(redis.NewSignupLock(rdb, cfg.Redis.LockTTL)))
		checks["redis"] = handler.RedisCheck(rdb)
	}

	if cfg.Policy.AdminSignup == string(service.AdminSignupAllow) {
		log.Warn().Msg("SIGNUP_ADMIN_POLICY=allow: any caller can sign up as administrator")
	}

	tokens := security.NewTokenService([]byte(cfg.JWTSecret), cfg.Token.TTL)
	accounts := service.NewAccountService(
		users,
		security.NewBcryptHasher(cfg.Token.BcryptCost),
		tokens,
		opts...,
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Accounts:    accounts,
		Gate:        service.NewGate(tokens),
		TokenHeader: cfg.Token.Header,
		Checks:      checks,
		Renderer:    renderer,
		Log:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("email_uniqueness", string(uniqueness)).
			Str("admin_signup", cfg.Policy.AdminSignup).
			Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
