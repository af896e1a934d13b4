package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvOnce guards the one-time attempt to load the default .env file.
// The file is optional; a missing .env is not an error.
var dotenvOnce sync.Once

// Load parses environment variables into the provided configuration struct
// based on `env` field tags. The default .env file is loaded into the process
// environment on first use so local runs behave like the original dotenv setup.
//
// Example:
//
//	type ServerConfig struct {
//		Port int    `env:"PORT" envDefault:"8080"`
//		Env  string `env:"ENVIRONMENT" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
