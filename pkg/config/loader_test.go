package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freqcache/pkg/config"
	"github.com/dmitrymomot/freqcache/pkg/environment"
)

type cacheConfig struct {
	Capacity int                     `env:"CAPACITY" envDefault:"4"`
	Workers  int                     `env:"WORKERS" envDefault:"2"`
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CONFIG_TEST_CAPACITY", "128")
	t.Setenv("CONFIG_TEST_APP_ENV", "prod")

	var cfg cacheConfig
	err := config.Load(&cfg, config.WithPrefix("CONFIG_TEST_"))

	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Capacity)
	assert.Equal(t, 2, cfg.Workers, "unset field should take its default")
	assert.Equal(t, environment.Production, cfg.Env)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg cacheConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, environment.Development, cfg.Env)
}

func TestLoad_InvalidValue(t *testing.T) {
	var cfg cacheConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{"CAPACITY": "many"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_RequireAll(t *testing.T) {
	type strict struct {
		Name string `env:"NAME"`
	}
	var cfg strict
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}), config.RequireAll())
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *cacheConfig
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"REQUIRED_VALUE": "x"}))
	})
}

func TestLoadEnv_CustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("LOADENV_TEST_CAPACITY=64\nLOADENV_TEST_APP_ENV=staging\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("LOADENV_TEST_CAPACITY")
		os.Unsetenv("LOADENV_TEST_APP_ENV")
	})

	require.NoError(t, config.LoadEnv(path))

	var cfg cacheConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("LOADENV_TEST_")))
	assert.Equal(t, 64, cfg.Capacity)
	assert.Equal(t, environment.Staging, cfg.Env)
}

func TestLoadEnv_ProcessEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PRIORITY_TEST_CAPACITY=64\n"), 0o600))
	t.Setenv("PRIORITY_TEST_CAPACITY", "8")

	require.NoError(t, config.LoadEnv(path))

	var cfg cacheConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("PRIORITY_TEST_")))
	assert.Equal(t, 8, cfg.Capacity)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	})
}
