package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=8h"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	// Redis backs the optional login attempt limiter; an empty Addr
	// disables it.
	Redis RedisConfig

	Seed SeedConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// SeedConfig controls demo fixture seeding. Fixtures are a startup option,
// not behavior baked into the stores; the passwords are overridable so the
// defaults never have to reach a real deployment.
type SeedConfig struct {
	DemoData      bool   `env:"SEED_DEMO_DATA,      default=true"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
	UserPassword  string `env:"SEED_USER_PASSWORD,  default=user123"`
}

// Load reads configuration from the environment, with .env applied first
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
