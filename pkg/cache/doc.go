// Package cache provides a generic, fixed-capacity LFU (Least Frequently Used)
// cache.
//
// When a new key arrives at a full cache, the entry with the lowest access
// count is evicted. Ties are broken by recency: among entries sharing the
// lowest count, the one touched longest ago goes first. A touch is any
// insert, update or successful lookup.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - O(1) Put and Get using per-frequency buckets
//   - Deterministic eviction order, even among equally frequent entries
//   - Eviction observers for cleanup, logging or metrics
//   - An unsynchronized core (LFUCache) and a mutex-guarded wrapper (SyncLFUCache)
//
// # Usage
//
//	c := cache.NewLFUCache[string, int](4)
//	c.Put("a", 1)
//	if v, ok := c.Get("a"); ok {
//		// v == 1, frequency of "a" is now 2
//	}
//
// # Frequency and Recency
//
// Every key starts with frequency 1. Each Put of a resident key and each
// successful Get adds one and makes the key the most recently touched.
// Peek, Contains, Frequency and Keys inspect the cache without touching it.
// A key that is evicted and later re-inserted starts again at 1.
//
//	c := cache.NewLFUCache[string, int](4)
//	c.Put("A", 1); c.Put("B", 2); c.Put("C", 3); c.Put("D", 4)
//	c.Get("A"); c.Get("B")   // A=2 B=2 C=1 D=1
//	c.Put("E", 5)            // C and D tie at 1, C is older: C is evicted
//
// # Absent Keys and Values
//
// A nil key or value (nil pointer, map, slice, func, chan or interface) is
// treated as absent: Put ignores it and Get reports a miss, neither changes
// any state. Zero values of non-nil-able types such as 0 or "" are ordinary
// values.
//
// # Eviction Observers
//
// Observers registered with OnEvict or WithEvictFunc run synchronously, once
// per eviction, with the victim's key and value. They run before the victim
// is removed and before the incoming key becomes visible:
//
//	c := cache.NewLFUCache[string, *os.File](16,
//		cache.WithEvictFunc(func(name string, f *os.File) { f.Close() }),
//	)
//	c.OnEvict(cache.LogEvictions[string, *os.File](log))
//
// Observers must not call Put, Get or OnEvict on the same cache. LFUCache
// panics with ErrReentrantCall if they do; SyncLFUCache would deadlock.
//
// # Thread Safety
//
// LFUCache is not safe for concurrent use. SyncLFUCache holds one mutex for
// the whole of each operation, eviction included:
//
//	c := cache.NewSyncLFUCache[int, string](1000)
//	go c.Put(1, "one")
//	go c.Get(1)
//
// # Capacity
//
// Capacity is fixed at construction and must be positive. NewLFUCache panics
// otherwise; NewLFUCacheE returns ErrInvalidCapacity.
package cache
