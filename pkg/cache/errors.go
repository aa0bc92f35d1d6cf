package cache

import "errors"

var (
	// ErrInvalidCapacity is returned (or used as the panic value) when a cache is
	// constructed with a non-positive capacity.
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")

	// ErrReentrantCall is the panic value raised when an eviction observer calls
	// back into the cache that is notifying it.
	ErrReentrantCall = errors.New("cache: reentrant call from eviction observer")
)
