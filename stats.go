package asidecache

import (
	"context"
	"time"

	st "github.com/unkn0wn-root/asidecache/store"
)

// Report is the monitoring view of the cache. Status is "connected",
// "disabled" (store never reachable) or "error" (store reachable but the
// stats query failed).
type Report struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Addr        string `json:"addr,omitempty"`
	CachedItems int    `json:"cached_items"`
	Hits        uint64 `json:"total_hits"`
	Misses      uint64 `json:"total_misses"`
	MemoryUsed  string `json:"memory_used,omitempty"`
	TTLSeconds  int    `json:"ttl_seconds"`
}

// Reporter exposes aggregate statistics and bulk purge for one cache's
// keyspace. It holds no state of its own; everything delegates to the store.
type Reporter struct {
	store st.Store
	tag   string
	ttl   time.Duration
	log   Logger
	hooks Hooks
}

// Reporter returns a stats/purge view over this cache's tag.
func (cc *Cache) Reporter() *Reporter {
	return &Reporter{
		store: cc.store,
		tag:   cc.tag,
		ttl:   cc.defaultTTL,
		log:   cc.log,
		hooks: cc.hooks,
	}
}

// Report never fails; degraded states are encoded in Status.
func (r *Reporter) Report(ctx context.Context) Report {
	if !r.store.Available() {
		return Report{Status: "disabled", Message: "store not connected"}
	}

	stats, err := r.store.Stats(ctx)
	if err != nil {
		return Report{Status: "error", Message: err.Error()}
	}
	keys, err := r.store.Keys(ctx, r.tag+":*")
	if err != nil {
		return Report{Status: "error", Message: err.Error()}
	}

	return Report{
		Status:      "connected",
		Addr:        stats.Addr,
		CachedItems: len(keys),
		Hits:        stats.Hits,
		Misses:      stats.Misses,
		MemoryUsed:  stats.MemoryUsed,
		TTLSeconds:  int(r.ttl / time.Second),
	}
}

// Purge deletes every entry matching pattern and returns the count deleted.
// An empty pattern purges this cache's entire keyspace ("<tag>:*").
// Fail-open: store errors yield 0, never an error to the caller.
func (r *Reporter) Purge(ctx context.Context, pattern string) int {
	if pattern == "" {
		pattern = r.tag + ":*"
	}
	n, err := r.store.DeleteMatching(ctx, pattern)
	if err != nil {
		r.log.Error("cache purge error", Fields{"pattern": pattern, "err": err})
		r.hooks.StoreError("delete", err)
		return 0
	}
	if n > 0 {
		r.log.Info("purged cache entries", Fields{"pattern": pattern, "count": n})
	}
	r.hooks.Purged(pattern, n)
	return n
}
