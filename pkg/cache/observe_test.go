package cache_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/freqcache/pkg/cache"
	"github.com/dmitrymomot/freqcache/pkg/logger"
)

func TestLogEvictions(t *testing.T) {
	buf := &bytes.Buffer{}
	c := cache.NewLFUCache[string, int](1)
	c.OnEvict(cache.LogEvictions[string, int](logger.New(logger.WithOutput(buf))))

	c.Put("a", 1)
	assert.Empty(t, buf.String())

	c.Put("b", 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DISCARD", entry["msg"])
	assert.Equal(t, "a", entry["key"])
}

func TestLogEvictions_DefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	slog.SetDefault(logger.New(logger.WithOutput(buf)))

	c := cache.NewLFUCache(1, cache.WithEvictFunc(cache.LogEvictions[int, string](nil)))
	c.Put(1, "one")
	c.Put(2, "two")

	assert.Contains(t, buf.String(), `"key":1`)
}
