// Package store defines the storage abstraction used by asidecache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Set for a key (no metadata,
// no re-encoding, no mutation). Expiry is owned entirely by the store; the
// cache layer never checks entry age itself.
//
// Implementations report connectivity through Available. Operations on an
// unavailable store must be safe to call and behave as miss / no-op / empty;
// they must never block longer than the store's configured timeouts.
package store

import (
	"context"
	"time"
)

// Store is a byte store with TTLs and glob-pattern key enumeration.
// Must be safe for concurrent use.
type Store interface {
	// Available reports whether the backing store is reachable. Callers use
	// it to skip cache work entirely in degraded mode.
	Available() bool

	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err). Callers
	// collapse err and miss to the same branch.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. A non-positive TTL means the
	// implementation's default expiry. Stores without per-entry expiry
	// (store/bigcache) ignore ttl and apply one global life window to
	// every entry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Keys returns all keys matching a glob-style pattern ("wiki:*").
	Keys(ctx context.Context, pattern string) ([]string, error)

	// DeleteMatching removes every key matching pattern and returns the
	// number deleted. 0 when nothing matches or the store is unavailable.
	DeleteMatching(ctx context.Context, pattern string) (int, error)

	// Stats returns aggregate counters as reported by the store.
	Stats(ctx context.Context) (Stats, error)

	// Close releases resources.
	Close(ctx context.Context) error
}

// Stats are aggregate counters reported by a Store. Hits and Misses are
// store-wide (every consumer of the backing store contributes), not scoped to
// a single cache's keyspace.
type Stats struct {
	Addr       string `json:"addr,omitempty"`
	Hits       uint64 `json:"hits"`
	Misses     uint64 `json:"misses"`
	MemoryUsed string `json:"memory_used,omitempty"`
}
