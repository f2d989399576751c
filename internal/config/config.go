// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/hearthfire/story-api/internal/errors"
)

// Config holds everything the process needs to start.
type Config struct {
	RedisAddr            string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RedisMinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	RedisMaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	RedisUseTLS          bool          `env:"REDIS_USE_TLS" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
