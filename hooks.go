package asidecache

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking. The cache calls them on
// hot paths; wrap with hooks/async if delivery may be slow.
type Hooks interface {
	// A wrapped call was served from the store.
	Hit(namespace, key string)

	// No usable entry; the wrapped operation will run.
	Miss(namespace, key string)

	// A fetched result was not stored.
	// reason ∈ {"error_result", "encode_error"}
	WriteSkipped(namespace, key, reason string)

	// A store or codec operation failed (the cache degraded, the caller
	// did not see the error).
	// op ∈ {"get", "set", "decode", "delete"}
	StoreError(op string, err error)

	// A pattern purge completed, deleting n entries.
	Purged(pattern string, n int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(string, string)                  {}
func (NopHooks) Miss(string, string)                 {}
func (NopHooks) WriteSkipped(string, string, string) {}
func (NopHooks) StoreError(string, error)            {}
func (NopHooks) Purged(string, int)                  {}
