package redis

import (
	"context"
	"testing"
)

const statsSection = "# Stats\r\n" +
	"total_connections_received:42\r\n" +
	"keyspace_hits:1205\r\n" +
	"keyspace_misses:37\r\n"

const memorySection = "# Memory\r\n" +
	"used_memory:1264128\r\n" +
	"used_memory_human:1.21M\r\n"

func TestInfoField(t *testing.T) {
	if got := infoField(memorySection, "used_memory_human"); got != "1.21M" {
		t.Fatalf("used_memory_human = %q, want 1.21M", got)
	}
	// must not match used_memory_human when asked for used_memory
	if got := infoField(memorySection, "used_memory"); got != "1264128" {
		t.Fatalf("used_memory = %q, want 1264128", got)
	}
	if got := infoField(statsSection, "absent_field"); got != "" {
		t.Fatalf("absent field = %q, want empty", got)
	}
}

func TestInfoUint(t *testing.T) {
	if got := infoUint(statsSection, "keyspace_hits"); got != 1205 {
		t.Fatalf("keyspace_hits = %d, want 1205", got)
	}
	if got := infoUint(statsSection, "keyspace_misses"); got != 37 {
		t.Fatalf("keyspace_misses = %d, want 37", got)
	}
	if got := infoUint(statsSection, "absent_field"); got != 0 {
		t.Fatalf("absent field = %d, want 0", got)
	}
}

// TestUnavailableStoreIsInert: a store built against an unreachable server
// degrades every operation to miss / no-op without erroring.
func TestUnavailableStoreIsInert(t *testing.T) {
	ctx := context.Background()
	p := &Redis{} // never connected; available stays false

	if p.Available() {
		t.Fatalf("zero store must be unavailable")
	}
	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Get on unavailable store: ok=%v err=%v", ok, err)
	}
	if err := p.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set on unavailable store: %v", err)
	}
	if keys, err := p.Keys(ctx, "*"); keys != nil || err != nil {
		t.Fatalf("Keys on unavailable store: %v %v", keys, err)
	}
	if n, err := p.DeleteMatching(ctx, "*"); n != 0 || err != nil {
		t.Fatalf("DeleteMatching on unavailable store: %d %v", n, err)
	}
	if _, err := p.Stats(ctx); err != ErrUnavailable {
		t.Fatalf("Stats on unavailable store: err=%v, want ErrUnavailable", err)
	}
}
