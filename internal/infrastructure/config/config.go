package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/authgate/accounts-service/internal/core/service"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Token  TokenConfig
	Policy PolicyConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type TokenConfig struct {
	TTL        time.Duration `env:"TOKEN_TTL,    default=60s"`
	Header     string        `env:"TOKEN_HEADER, default=token"`
	BcryptCost int           `env:"BCRYPT_COST,  default=10"`
}

type PolicyConfig struct {
	AdminSignup       string `env:"SIGNUP_ADMIN_POLICY,       default=reject"`
	EmailUniqueness   string `env:"EMAIL_UNIQUENESS,          default=index"`
	EmbedPasswordHash bool   `env:"TOKEN_EMBED_PASSWORD_HASH, default=false"`
	PreserveEmailCase bool   `env:"EMAIL_PRESERVE_CASE,       default=false"`
}

type MongoConfig struct {
	URL      string `env:"MONGODB_URL, default=mongodb://localhost:27017"`
	Database string `env:"MONGODB_DB"`
}

// RedisConfig is only used when EMAIL_UNIQUENESS=lock.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	LockTTL  time.Duration `env:"SIGNUP_LOCK_TTL, default=10s"`
}

// Load reads an optional .env file, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values envconfig cannot check by itself.
func (c *Config) Validate() error {
	if _, err := service.ParseAdminSignupPolicy(c.Policy.AdminSignup); err != nil {
		return fmt.Errorf("config: SIGNUP_ADMIN_POLICY: %w", err)
	}
	if _, err := service.ParseEmailUniqueness(c.Policy.EmailUniqueness); err != nil {
		return fmt.Errorf("config: EMAIL_UNIQUENESS: %w", err)
	}
	if c.Token.TTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.Token.TTL)
	}
	if c.Token.Header == "" {
		return errors.New("config: TOKEN_HEADER must not be empty")
	}
	return nil
}

// ServicePolicy converts the validated policy settings.
func (c *Config) ServicePolicy() service.Policy {
	admin, _ := service.ParseAdminSignupPolicy(c.Policy.AdminSignup)
	return service.Policy{
		AdminSignup:       admin,
		EmbedPasswordHash: c.Policy.EmbedPasswordHash,
		PreserveEmailCase: c.Policy.PreserveEmailCase,
	}
}

// EmailUniqueness returns the validated uniqueness mode.
func (c *Config) EmailUniqueness() service.EmailUniqueness {
	u, _ := service.ParseEmailUniqueness(c.Policy.EmailUniqueness)
	return u
}

// IsProduction reports whether the service runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
