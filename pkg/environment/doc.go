// Package environment names the deployment environments an application can
// run in (development, staging, production).
//
// Parse normalises raw values and their short aliases, and Environment
// implements encoding.TextUnmarshaler so it can be used directly as a field
// type in structs loaded by the config package:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//
// The logger package uses these values to pick format and level defaults.
package environment
