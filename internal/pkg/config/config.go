package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=168h"`

	StoreDriver  string `env:"STORE_DRIVER,   default=memory"`
	SeedDemoData bool   `env:"SEED_DEMO_DATA, default=true"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Throttle ThrottleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dog_training"`
}

// RedisConfig enables the login throttle when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type ThrottleConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES,   default=5"`
	Window      time.Duration `env:"LOGIN_LOCKOUT_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreMongo {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreMongo, c.StoreDriver)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// Development reports whether pretty console logging should be used.
func (c *Config) Development() bool {
	return c.Env == "development"
}
