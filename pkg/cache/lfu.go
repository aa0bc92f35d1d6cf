package cache

import (
	"cmp"
	"container/list"
	"fmt"
	"slices"
)

// EvictFunc observes evictions. It receives the victim's key and value before
// the victim's removal is finalized and before the incoming key is visible.
// It must not call Put, Get or OnEvict on the cache that invoked it.
type EvictFunc[K comparable, V any] func(key K, value V)

// Option configures an LFUCache at construction.
type Option[K comparable, V any] func(*LFUCache[K, V])

// WithEvictFunc registers an eviction observer. Nil functions are ignored.
func WithEvictFunc[K comparable, V any](fn EvictFunc[K, V]) Option[K, V] {
	return func(c *LFUCache[K, V]) {
		if fn != nil {
			c.onEvict = append(c.onEvict, fn)
		}
	}
}

type lfuEntry[K comparable, V any] struct {
	key   K
	value V
	freq  int
	stamp uint64 // touch clock value of the last insert, update or fetch
	elem  *list.Element
}

// LFUCache is a fixed-capacity cache evicting the least frequently used entry.
// Among entries sharing the lowest frequency the one touched longest ago goes
// first.
//
// Entries live in per-frequency buckets. A touch always moves an entry to the
// back of the next bucket, so each bucket is ordered by last touch and the
// front of the minimum bucket is the victim. Put and Get are O(1).
//
// LFUCache is not safe for concurrent use; see SyncLFUCache.
type LFUCache[K comparable, V any] struct {
	capacity  int
	items     map[K]*lfuEntry[K, V]
	buckets   map[int]*list.List
	minFreq   int
	clock     uint64
	onEvict   []EvictFunc[K, V]
	notifying bool
	stats     Stats

	checkKey   bool
	checkValue bool
}

// NewLFUCache creates a cache holding at most capacity entries.
// The capacity must be positive, otherwise it panics.
func NewLFUCache[K comparable, V any](capacity int, opts ...Option[K, V]) *LFUCache[K, V] {
	c, err := NewLFUCacheE(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewLFUCacheE is like NewLFUCache but returns ErrInvalidCapacity instead of
// panicking.
func NewLFUCacheE[K comparable, V any](capacity int, opts ...Option[K, V]) (*LFUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	c := &LFUCache[K, V]{
		capacity:   capacity,
		items:      make(map[K]*lfuEntry[K, V], capacity),
		buckets:    make(map[int]*list.List),
		checkKey:   nillable[K](),
		checkValue: nillable[V](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// OnEvict registers an additional eviction observer. Observers fire in
// registration order. Nil functions are ignored.
func (c *LFUCache[K, V]) OnEvict(fn EvictFunc[K, V]) {
	c.guard()
	if fn != nil {
		c.onEvict = append(c.onEvict, fn)
	}
}

// Put inserts or updates key. A nil key or value is silently ignored.
// Updating a resident key bumps its frequency and never evicts. Inserting a
// new key into a full cache evicts exactly one entry first.
func (c *LFUCache[K, V]) Put(key K, value V) {
	c.guard()
	if c.absentKey(key) || (c.checkValue && isNil(value)) {
		return
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		c.touch(e)
		c.stats.Puts++
		return
	}

	if len(c.items) >= c.capacity {
		c.evict()
	}

	e := &lfuEntry[K, V]{key: key, value: value, freq: 1}
	e.elem = c.bucket(1).PushBack(e)
	e.stamp = c.tick()
	c.items[key] = e
	c.minFreq = 1
	c.stats.Puts++
}

// Get returns the value for key, bumping its frequency and recency.
// Misses and nil keys return the zero value and false without changing state.
func (c *LFUCache[K, V]) Get(key K) (V, bool) {
	c.guard()
	if c.absentKey(key) {
		var zero V
		return zero, false
	}

	e, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	c.touch(e)
	return e.value, true
}

// Peek returns the value for key without touching it.
func (c *LFUCache[K, V]) Peek(key K) (V, bool) {
	if e, ok := c.items[key]; ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is resident, without touching it.
func (c *LFUCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Frequency returns the access count of a resident key.
func (c *LFUCache[K, V]) Frequency(key K) (int, bool) {
	if e, ok := c.items[key]; ok {
		return e.freq, true
	}
	return 0, false
}

// Keys returns resident keys ordered by last touch, oldest first.
func (c *LFUCache[K, V]) Keys() []K {
	entries := make([]*lfuEntry[K, V], 0, len(c.items))
	for _, e := range c.items {
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *lfuEntry[K, V]) int {
		return cmp.Compare(a.stamp, b.stamp)
	})

	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

func (c *LFUCache[K, V]) Len() int { return len(c.items) }

func (c *LFUCache[K, V]) Cap() int { return c.capacity }

// Stats returns a snapshot of the cumulative counters.
func (c *LFUCache[K, V]) Stats() Stats {
	s := c.stats
	s.Len = len(c.items)
	s.Cap = c.capacity
	return s
}

func (c *LFUCache[K, V]) absentKey(key K) bool {
	return c.checkKey && isNil(key)
}

func (c *LFUCache[K, V]) guard() {
	if c.notifying {
		panic(ErrReentrantCall)
	}
}

func (c *LFUCache[K, V]) tick() uint64 {
	c.clock++
	return c.clock
}

func (c *LFUCache[K, V]) bucket(freq int) *list.List {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New()
		c.buckets[freq] = b
	}
	return b
}

// unlink drops e from its bucket, discarding the bucket once empty.
func (c *LFUCache[K, V]) unlink(e *lfuEntry[K, V]) {
	b := c.buckets[e.freq]
	b.Remove(e.elem)
	if b.Len() == 0 {
		delete(c.buckets, e.freq)
		if c.minFreq == e.freq {
			c.minFreq++
		}
	}
}

func (c *LFUCache[K, V]) touch(e *lfuEntry[K, V]) {
	c.unlink(e)
	e.freq++
	e.elem = c.bucket(e.freq).PushBack(e)
	e.stamp = c.tick()
}

// evict removes the oldest-touched entry of the lowest frequency.
// Must only be called on a full cache.
func (c *LFUCache[K, V]) evict() {
	b := c.buckets[c.minFreq]
	victim := b.Front().Value.(*lfuEntry[K, V])

	c.notify(victim)

	c.unlink(victim)
	delete(c.items, victim.key)
	c.stats.Evictions++
}

func (c *LFUCache[K, V]) notify(victim *lfuEntry[K, V]) {
	if len(c.onEvict) == 0 {
		return
	}
	c.notifying = true
	defer func() { c.notifying = false }()
	for _, fn := range c.onEvict {
		fn(victim.key, victim.value)
	}
}
