package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freqcache/pkg/environment"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestUnmarshalText(t *testing.T) {
	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("stage")))
	assert.True(t, env.IsStaging())
	assert.False(t, env.IsProduction())
	assert.False(t, env.IsDevelopment())
	assert.Equal(t, "staging", env.String())
}
