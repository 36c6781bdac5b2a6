package async

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// recorder collects events behind a mutex so workers can report safely.
type recorder struct {
	mu     sync.Mutex
	hits   int
	misses int
	errs   []error
	purged int
}

func (r *recorder) Hit(string, string)                  { r.mu.Lock(); r.hits++; r.mu.Unlock() }
func (r *recorder) Miss(string, string)                 { r.mu.Lock(); r.misses++; r.mu.Unlock() }
func (r *recorder) WriteSkipped(string, string, string) {}
func (r *recorder) StoreError(_ string, err error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}
func (r *recorder) Purged(_ string, n int) { r.mu.Lock(); r.purged += n; r.mu.Unlock() }

func TestEventsDeliveredBeforeClose(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 2, 64)

	for i := 0; i < 10; i++ {
		h.Hit("search", "k")
		h.Miss("search", "k")
	}
	h.StoreError("set", errors.New("down"))
	h.Purged("wiki:*", 3)

	h.Close() // drains the queue

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.hits != 10 || rec.misses != 10 {
		t.Fatalf("hits=%d misses=%d, want 10/10", rec.hits, rec.misses)
	}
	if len(rec.errs) != 1 || rec.purged != 3 {
		t.Fatalf("errs=%v purged=%d", rec.errs, rec.purged)
	}
}

func TestFullQueueDropsInsteadOfBlocking(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 1, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			h.Hit("search", "k")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("enqueue blocked on a full queue")
	}
	h.Close()
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&recorder{}, 1, 1)
	h.Close()
	h.Close()
}

// TestEventsAfterCloseDropped: a cache may still hold the hooks after they
// were closed; late events must be dropped, never panic.
func TestEventsAfterCloseDropped(t *testing.T) {
	rec := &recorder{}
	h := New(rec, 1, 4)
	h.Close()

	h.Hit("search", "k")
	h.Miss("search", "k")
	h.WriteSkipped("search", "k", "error_result")
	h.StoreError("set", errors.New("down"))
	h.Purged("wiki:*", 1)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.hits != 0 || rec.misses != 0 || len(rec.errs) != 0 || rec.purged != 0 {
		t.Fatalf("events after Close must be dropped: %+v", rec)
	}
}

// TestConcurrentCloseAndEnqueue exercises the enqueue/close race directly.
func TestConcurrentCloseAndEnqueue(t *testing.T) {
	h := New(&recorder{}, 1, 8)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			h.Hit("search", "k")
		}
	}()
	go func() {
		defer wg.Done()
		h.Close()
	}()
	wg.Wait()
}
