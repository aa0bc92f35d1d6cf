package cache

import "sync"

// SyncLFUCache is an LFUCache guarded by a single mutex.
// Every operation, including the whole eviction sequence of Put, runs inside
// one critical section, so no caller observes a half-removed victim.
//
// Eviction observers run while the lock is held. Calling back into the same
// SyncLFUCache from an observer deadlocks and is not allowed.
type SyncLFUCache[K comparable, V any] struct {
	mu sync.Mutex
	c  *LFUCache[K, V]
}

// NewSyncLFUCache creates a concurrency-safe LFU cache.
// The capacity must be positive, otherwise it panics.
func NewSyncLFUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *SyncLFUCache[K, V] {
	return &SyncLFUCache[K, V]{c: NewLFUCache(capacity, opts...)}
}

// NewSyncLFUCacheE is like NewSyncLFUCache but returns ErrInvalidCapacity
// instead of panicking.
func NewSyncLFUCacheE[K comparable, V any](capacity int, opts ...Option[K, V]) (*SyncLFUCache[K, V], error) {
	c, err := NewLFUCacheE(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncLFUCache[K, V]{c: c}, nil
}

func (s *SyncLFUCache[K, V]) OnEvict(fn EvictFunc[K, V]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.OnEvict(fn)
}

func (s *SyncLFUCache[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Put(key, value)
}

func (s *SyncLFUCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Get(key)
}

func (s *SyncLFUCache[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Peek(key)
}

func (s *SyncLFUCache[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Contains(key)
}

func (s *SyncLFUCache[K, V]) Frequency(key K) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Frequency(key)
}

func (s *SyncLFUCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Keys()
}

func (s *SyncLFUCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Len()
}

// Cap needs no lock: capacity is immutable.
func (s *SyncLFUCache[K, V]) Cap() int { return s.c.Cap() }

func (s *SyncLFUCache[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Stats()
}
