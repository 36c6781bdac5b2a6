// Package async decouples hook delivery from the cache's hot path: events
// are queued to a bounded channel and delivered by worker goroutines. When
// the queue is full events are dropped, never blocked on.
//
// usage:
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{HitEvery: 100})
//	hooks := async.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cache, _ := asidecache.New(asidecache.Options{
//	    Store: store,
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package async

import (
	"sync"

	"github.com/unkn0wn-root/asidecache"
)

type Hooks struct {
	inner asidecache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	// mu orders enqueues against close: a send may never race the channel
	// close or it panics.
	mu     sync.RWMutex
	closed bool
}

var _ asidecache.Hooks = (*Hooks)(nil)

func New(inner asidecache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events enqueued after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return // dropped
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Hit(ns, k string)  { h.try(func() { h.inner.Hit(ns, k) }) }
func (h *Hooks) Miss(ns, k string) { h.try(func() { h.inner.Miss(ns, k) }) }
func (h *Hooks) WriteSkipped(ns, k, reason string) {
	h.try(func() { h.inner.WriteSkipped(ns, k, reason) })
}
func (h *Hooks) StoreError(op string, err error) {
	h.try(func() { h.inner.StoreError(op, err) })
}
func (h *Hooks) Purged(pattern string, n int) {
	h.try(func() { h.inner.Purged(pattern, n) })
}
