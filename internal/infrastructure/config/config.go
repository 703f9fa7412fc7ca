package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Activity ActivityConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=devconnect"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type ActivityConfig struct {
	Workers int `env:"ACTIVITY_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
// The token-signing secret has no default; a process without one must not
// start.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
