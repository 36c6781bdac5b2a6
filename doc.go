// Package asidecache implements the cache-aside pattern over a remote
// key-value store with fail-open degradation: when the store is unreachable
// every operation collapses to a pass-through (call the source directly) or a
// no-op, never to an error surfaced to the caller. The cache is strictly an
// optimization layer; removing it must never change results, only latency.
//
// Components:
//   - DeriveKey: deterministic key derivation from a namespace plus the call's
//     positional and named arguments (canonical JSON, SHA-256, 12 hex chars).
//   - store.Store: byte store with TTLs and glob-pattern enumeration.
//     Redis-backed (store/redis), or in-process via bigcache (store/bigcache).
//   - Cache.Wrap: wraps a fetch operation; read-through on hit (tagging the
//     result with "_cached": true), invoke-then-write on miss. Results that
//     carry an "error" field are returned but never written.
//   - Reporter: store statistics and glob-pattern purge.
//
// Keys:
//
//	<tag>:<namespace>:<hash12>  e.g. wiki:search:9f86d081884c
//
// Cache-aside pattern:
//
//	fetch := cache.Wrap("search", 0, fetchFromSource)
//	res, err := fetch(ctx, asidecache.Args{"golang"}, nil)
//
// Writes are fire-and-forget and failed reads are misses, so callers must not
// depend on durability of a cache write. Concurrent callers missing on the
// same key all invoke the wrapped operation independently; last write wins.
package asidecache
