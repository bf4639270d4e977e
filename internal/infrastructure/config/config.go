package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureJWTSecret is the signing secret used when JWT_SECRET_KEY is unset.
// Fine for local development only.
const InsecureJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Port            string        `env:"PORT,             default=8000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	JWTSecret       string        `env:"JWT_SECRET_KEY,   default=your-secret-key-change-in-production"`
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=168h"`
	CORSOrigins     []string      `env:"CORS_ORIGINS,     default=*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo MongoConfig
	Redis RedisConfig
	Owner OwnerConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URL, default=mongodb://localhost:27017"`
	Database string `env:"DB_NAME,   default=community"`
}

// RedisConfig is optional: an empty Addr disables the idempotency guard.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// OwnerConfig holds the credentials of the account seeded on first start.
type OwnerConfig struct {
	Username string `env:"OWNER_USERNAME, default=TheMarck_MC"`
	Password string `env:"OWNER_PASSWORD, default=1234"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// InsecureSecret reports whether tokens are signed with the built-in default.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == InsecureJWTSecret
}

// Development reports whether the process runs in the development environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
