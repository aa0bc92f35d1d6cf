// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` for reading `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment using field tags:
//
//	type Config struct {
//	    Capacity int                     `env:"CAPACITY" envDefault:"4"`
//	    Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
//	if err := config.LoadEnv("local.env"); err != nil {
//	    // handle missing file
//	}
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FREQCACHE_")); err != nil {
//	    // handle error
//	}
//
// Load reads the default `.env` file once per process before the first parse.
// Values already set in the process environment always take precedence over
// `.env` files. MustLoad and MustLoadEnv panic instead of returning errors,
// for configuration the process cannot start without.
//
// Errors are joined with the sentinel values ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer so callers can match them with
// errors.Is.
package config
