// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is the development fallback secret. main logs a
// warning when it is still in use.
const DefaultJWTSecret = "dev-secret-change-me"

// Config contains all server configuration parameters.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"ADDR" envDefault:":4000"`

	// DataFile is the path of the JSON file backing the document store.
	DataFile string `env:"DATA_FILE" envDefault:"data/db.json"`

	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	JWT      JWT      `envPrefix:"JWT_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Throttle Throttle `envPrefix:"LOGIN_THROTTLE_"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string        `env:"SECRET" envDefault:"dev-secret-change-me"`
	Expiry time.Duration `env:"EXPIRY" envDefault:"168h"`
}

// Redis contains connection parameters for the optional Redis instance.
// When Addr is empty the server runs with the in-process login throttle.
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
}

// Throttle contains the login rate limit parameters.
type Throttle struct {
	Limit  int           `env:"LIMIT" envDefault:"10"`
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
