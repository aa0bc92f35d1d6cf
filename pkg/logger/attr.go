package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// CacheKey records a cache key under the key "key".
func CacheKey(key any) slog.Attr {
	return slog.Any("key", key)
}

// Frequency records an access count under the key "frequency".
func Frequency(n int) slog.Attr {
	return slog.Int("frequency", n)
}

// CacheName records the cache instance name under the key "cache".
func CacheName(name string) slog.Attr {
	return slog.String("cache", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Worker records a worker index under the key "worker".
func Worker(id int) slog.Attr {
	return slog.Int("worker", id)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
