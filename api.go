package asidecache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/asidecache/codec"
	st "github.com/unkn0wn-root/asidecache/store"
)

// Result is the shape every wrapped operation returns: a string-keyed map of
// JSON-compatible values.
type Result = map[string]any

// FetchFunc is a data-fetching operation eligible for wrapping: positional
// and named arguments in, one Result out. Implementations own their own
// timeouts; the cache applies none to the fetch itself.
type FetchFunc func(ctx context.Context, args Args, kwargs Kwargs) (Result, error)

const (
	// DefaultTag is the top-level key namespace when Options.Tag is empty.
	DefaultTag = "wiki"

	// CachedField marks a Result served from the store. It is added at
	// read time and never stored.
	CachedField = "_cached"

	// ErrorField, when present in a Result, signals a domain failure.
	// Such results are returned to the caller but never written.
	ErrorField = "error"
)

// Options tune the cache. Only Store is required; others have sensible
// defaults.
type Options struct {
	// Required
	Store st.Store

	Tag        string          // top-level key namespace; default DefaultTag
	Codec      c.Codec[Result] // if nil, codec.JSON (UTF-8 JSON on the wire)
	Logger     Logger          // if nil, NopLogger is used
	Hooks      Hooks           // if nil, NopHooks is used
	DefaultTTL time.Duration   // 0 => CACHE_TTL env var, falling back to 1h
}

func New(opts Options) (*Cache, error) {
	return newCache(opts)
}
