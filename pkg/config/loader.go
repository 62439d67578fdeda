package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvLoaded guards the one-time .env bootstrap shared by every Load
// call in the process.
var defaultEnvLoaded sync.Once

// Load populates the provided struct from environment variables based on its
// `env` field tags. The first call also loads the default .env file from the
// working directory when one exists, so local runs and deployments go through
// the same code path.
//
// Example:
//
//	type GeneratorConfig struct {
//		Count int    `env:"DICEWARE_COUNT" envDefault:"6"`
//		List  string `env:"DICEWARE_LIST" envDefault:"short"`
//	}
//
//	var cfg GeneratorConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg GeneratorConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
