package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option adjusts how Load parses the environment.
type Option func(*env.Options)

// WithPrefix only reads variables starting with prefix; the prefix is
// prepended to every `env` tag.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// RequireAll treats every field as required unless it has a default.
func RequireAll() Option {
	return func(o *env.Options) { o.RequiredIfNoDef = true }
}

// LoadEnv loads variables from the given .env files, or from ./.env when no
// path is given. Variables already present in the process environment win.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env file: %v", err))
	}
}

// Load parses environment variables into v according to its `env` and
// `envDefault` field tags.
//
// The first call also loads ./.env if it exists; a missing file is not an
// error.
//
// Example:
//
//	type CacheConfig struct {
//		Capacity int `env:"CAPACITY" envDefault:"1024"`
//	}
//
//	var cfg CacheConfig
//	err := config.Load(&cfg, config.WithPrefix("FREQCACHE_"))
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
