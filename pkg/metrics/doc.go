// Package metrics exposes cache counters as Prometheus metrics.
//
// CacheCollector reads a cache's Stats on every scrape and emits them under
// the "freqcache_" namespace with a constant "cache" label, so several caches
// can share one registry. Registration is explicit; nothing is added to the
// global registry and no HTTP handler is started:
//
//	reg := prometheus.NewRegistry()
//	sessions := cache.NewSyncLFUCache[string, Session](1024)
//	if err := metrics.Register(reg, metrics.NewCacheCollector("sessions", sessions)); err != nil {
//	    return err
//	}
package metrics
