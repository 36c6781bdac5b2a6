package asidecache

import (
	"fmt"
	"strings"
	"testing"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	args := Args{"golang", 3}
	kwargs := Kwargs{"lang": "en", "limit": 5}

	first, err := DeriveKey("wiki", "search", args, kwargs)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	for i := 0; i < 100; i++ {
		k, err := DeriveKey("wiki", "search", args, kwargs)
		if err != nil {
			t.Fatalf("DeriveKey: %v", err)
		}
		if k != first {
			t.Fatalf("derivation not stable: %q vs %q", k, first)
		}
	}

	if !strings.HasPrefix(first, "wiki:search:") {
		t.Fatalf("key %q missing tag/namespace prefix", first)
	}
	suffix := strings.TrimPrefix(first, "wiki:search:")
	if len(suffix) != hashLen {
		t.Fatalf("hash suffix %q length = %d, want %d", suffix, len(suffix), hashLen)
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Fatalf("suffix %q is not lowercase hex", suffix)
		}
	}
}

func TestDeriveKeyKwargsOrderInsensitive(t *testing.T) {
	a := Kwargs{}
	a["lang"] = "en"
	a["limit"] = 5
	a["section"] = "History"

	b := Kwargs{}
	b["section"] = "History"
	b["limit"] = 5
	b["lang"] = "en"

	ka, err := DeriveKey("wiki", "search", nil, a)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	kb, err := DeriveKey("wiki", "search", nil, b)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if ka != kb {
		t.Fatalf("kwargs insertion order changed the key: %q vs %q", ka, kb)
	}
}

func TestDeriveKeyNilEqualsEmpty(t *testing.T) {
	a, err := DeriveKey("wiki", "search", nil, nil)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	b, err := DeriveKey("wiki", "search", Args{}, Kwargs{})
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if a != b {
		t.Fatalf("nil and empty arguments must derive identically: %q vs %q", a, b)
	}
}

// TestDeriveKeyNoCollisions spot-checks distinctness over a generated input
// set well beyond realistic per-namespace key counts.
func TestDeriveKeyNoCollisions(t *testing.T) {
	seen := make(map[string]string, 12000)
	record := func(desc, key string) {
		if prev, dup := seen[key]; dup {
			t.Fatalf("collision: %s and %s both derive %q", prev, desc, key)
		}
		seen[key] = desc
	}

	for i := 0; i < 10000; i++ {
		desc := fmt.Sprintf("args[%d]", i)
		k, err := DeriveKey("wiki", "search", Args{i}, nil)
		if err != nil {
			t.Fatalf("DeriveKey: %v", err)
		}
		record(desc, k)
	}
	for i := 0; i < 1000; i++ {
		desc := fmt.Sprintf("kwargs[%d]", i)
		k, err := DeriveKey("wiki", "search", nil, Kwargs{"page": i, "lang": "en"})
		if err != nil {
			t.Fatalf("DeriveKey: %v", err)
		}
		record(desc, k)
	}
	// namespace participates too
	for _, ns := range []string{"sections", "content", "summary"} {
		k, err := DeriveKey("wiki", ns, Args{0}, nil)
		if err != nil {
			t.Fatalf("DeriveKey: %v", err)
		}
		record("ns:"+ns, k)
	}
}

func TestDeriveKeyArgOrderSignificant(t *testing.T) {
	a, err := DeriveKey("wiki", "content", Args{"Go", "History"}, nil)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	b, err := DeriveKey("wiki", "content", Args{"History", "Go"}, nil)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	if a == b {
		t.Fatalf("positional order must affect the key")
	}
}

func TestDeriveKeyUnserializable(t *testing.T) {
	if _, err := DeriveKey("wiki", "search", Args{make(chan int)}, nil); err == nil {
		t.Fatalf("channel argument must fail derivation")
	}
}
