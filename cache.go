package asidecache

import (
	"context"
	"fmt"
	"time"

	c "github.com/unkn0wn-root/asidecache/codec"
	st "github.com/unkn0wn-root/asidecache/store"
)

// Cache owns the policy side of cache-aside: key derivation, the read-first
// branch, the error-result write exclusion, and fail-open collapse of store
// errors into misses. The store handle is injected and shared; no hidden
// globals.
type Cache struct {
	tag        string
	store      st.Store
	codec      c.Codec[Result]
	log        Logger
	hooks      Hooks
	defaultTTL time.Duration
}

func newCache(opts Options) (*Cache, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("asidecache: store is required")
	}

	cc := &Cache{
		store: opts.Store,
		tag:   coalesce(opts.Tag, DefaultTag),
	}

	// defaults
	if opts.Codec != nil {
		cc.codec = opts.Codec
	} else {
		cc.codec = c.JSON[Result]{}
	}
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cc.defaultTTL = coalesce[time.Duration](opts.DefaultTTL, ttlFromEnv())

	return cc, nil
}

// Tag returns the top-level key namespace this cache writes under.
func (cc *Cache) Tag() string { return cc.tag }

func (cc *Cache) Close(ctx context.Context) error {
	return cc.store.Close(ctx)
}

// Wrap turns fn into a read-through variant with the same signature.
// Per distinct (args, kwargs) the underlying fn runs at most once per TTL
// window for sequential callers; concurrent callers missing on the same key
// all run fn independently (last write wins, no corruption).
//
// ttl == 0 uses the cache default. An error from fn propagates unmodified
// and nothing is written. A Result carrying ErrorField is returned but not
// written. Served-from-store Results carry CachedField = true.
func (cc *Cache) Wrap(namespace string, ttl time.Duration, fn FetchFunc) FetchFunc {
	if ttl <= 0 {
		ttl = cc.defaultTTL
	}
	return func(ctx context.Context, args Args, kwargs Kwargs) (Result, error) {
		if !cc.store.Available() {
			return fn(ctx, args, kwargs)
		}

		key, err := DeriveKey(cc.tag, namespace, args, kwargs)
		if err != nil {
			// not JSON-serializable arguments; this call is not cacheable
			cc.log.Warn("key derivation failed; bypassing cache", Fields{"namespace": namespace, "err": err})
			return fn(ctx, args, kwargs)
		}

		if res, ok := cc.read(ctx, namespace, key); ok {
			return res, nil
		}

		res, err := fn(ctx, args, kwargs)
		if err != nil {
			return res, err
		}
		cc.write(ctx, namespace, key, ttl, res)
		return res, nil
	}
}

// read collapses store errors, decode errors and empty payloads into a miss.
// On hit it returns a copy of the entry with CachedField set; the stored
// payload itself never carries the marker.
func (cc *Cache) read(ctx context.Context, namespace, key string) (Result, bool) {
	raw, ok, err := cc.store.Get(ctx, key)
	if err != nil {
		cc.log.Warn("cache read error", Fields{"key": key, "err": err})
		cc.hooks.StoreError("get", err)
		return nil, false
	}
	if !ok || len(raw) == 0 {
		cc.log.Debug("cache miss", Fields{"key": key})
		cc.hooks.Miss(namespace, key)
		return nil, false
	}

	res, err := cc.codec.Decode(raw)
	if err != nil {
		cc.log.Warn("cache decode error; treating as miss", Fields{"key": key, "err": err})
		cc.hooks.StoreError("decode", err)
		return nil, false
	}
	if len(res) == 0 {
		// an empty stored value is indistinguishable from no entry
		cc.log.Debug("cache miss", Fields{"key": key})
		cc.hooks.Miss(namespace, key)
		return nil, false
	}

	out := make(Result, len(res)+1)
	for k, v := range res {
		out[k] = v
	}
	out[CachedField] = true

	cc.log.Debug("cache hit", Fields{"key": key})
	cc.hooks.Hit(namespace, key)
	return out, true
}

// write is fire-and-forget: every failure is logged and swallowed so the
// caller's result is unaffected.
func (cc *Cache) write(ctx context.Context, namespace, key string, ttl time.Duration, res Result) {
	if _, domainErr := res[ErrorField]; domainErr {
		cc.log.Debug("error result not cached", Fields{"key": key})
		cc.hooks.WriteSkipped(namespace, key, "error_result")
		return
	}

	raw, err := cc.codec.Encode(res)
	if err != nil {
		cc.log.Warn("cache encode error; result not cached", Fields{"key": key, "err": err})
		cc.hooks.WriteSkipped(namespace, key, "encode_error")
		return
	}
	if err := cc.store.Set(ctx, key, raw, ttl); err != nil {
		cc.log.Warn("cache write error", Fields{"key": key, "err": err})
		cc.hooks.StoreError("set", err)
		return
	}
	cc.log.Debug("cached", Fields{"key": key, "ttl": ttl})
}
