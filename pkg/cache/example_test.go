package cache_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/freqcache/pkg/cache"
)

func ExampleLFUCache() {
	c := cache.NewLFUCache[string, int](4)
	c.OnEvict(func(key string, _ int) {
		fmt.Println("evicted", key)
	})

	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)
	c.Put("D", 4)
	c.Get("A")
	c.Get("B")

	c.Put("E", 5)
	c.Put("D", 40)
	c.Put("F", 6)

	fmt.Println(c.Keys())
	// Output:
	// evicted C
	// evicted E
	// [A B D F]
}

func ExampleLogEvictions() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	c := cache.NewLFUCache(1, cache.WithEvictFunc(cache.LogEvictions[string, int](log)))
	c.Put("first", 1)
	c.Put("second", 2)
	// Output:
	// level=INFO msg=DISCARD key=first
}
