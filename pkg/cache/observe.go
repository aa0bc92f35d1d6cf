package cache

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/freqcache/pkg/logger"
)

// LogEvictions returns an observer that writes one "DISCARD" record per
// evicted key. A nil logger falls back to slog.Default().
func LogEvictions[K comparable, V any](l *slog.Logger) EvictFunc[K, V] {
	if l == nil {
		l = slog.Default()
	}
	return func(key K, _ V) {
		l.LogAttrs(context.Background(), slog.LevelInfo, "DISCARD", logger.CacheKey(key))
	}
}
