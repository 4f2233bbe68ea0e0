package store

import (
	"sort"
	"testing"
)

func TestMemoryGetMissing(t *testing.T) {
	t.Parallel()

	st := NewMemory()
	if _, ok := st.Get("users", "u1"); ok {
		t.Fatal("Get() on empty store must report absent")
	}
}

func TestMemoryPutGet(t *testing.T) {
	t.Parallel()

	st := NewMemory()
	st.Put("users", "u1", "alice")

	v, ok := st.Get("users", "u1")
	if !ok {
		t.Fatal("Get() after Put() must find the record")
	}
	if v != "alice" {
		t.Fatalf("Get() = %v, want alice", v)
	}
}

func TestMemoryPutIsUpsert(t *testing.T) {
	t.Parallel()

	st := NewMemory()
	st.Put("claims", "c1", 1)
	st.Put("claims", "c1", 2)

	v, _ := st.Get("claims", "c1")
	if v != 2 {
		t.Fatalf("Get() after second Put() = %v, want 2", v)
	}
	if got := len(st.Scan("claims")); got != 1 {
		t.Fatalf("Scan() length = %d, want 1", got)
	}
}

func TestMemoryNamespacesAreIsolated(t *testing.T) {
	t.Parallel()

	st := NewMemory()
	st.Put("users", "x", "u")
	st.Put("policies", "x", "p")

	if v, _ := st.Get("users", "x"); v != "u" {
		t.Fatalf("users/x = %v, want u", v)
	}
	if v, _ := st.Get("policies", "x"); v != "p" {
		t.Fatalf("policies/x = %v, want p", v)
	}
	if got := st.Scan("claims"); len(got) != 0 {
		t.Fatalf("Scan(claims) = %#v, want empty", got)
	}
}

func TestMemoryScanReturnsAllEntries(t *testing.T) {
	t.Parallel()

	st := NewMemory()
	st.Put("claims", "c1", "a")
	st.Put("claims", "c2", "b")
	st.Put("claims", "c3", "c")

	entries := st.Scan("claims")
	if len(entries) != 3 {
		t.Fatalf("Scan() length = %d, want 3", len(entries))
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	sort.Strings(keys)
	want := []string{"c1", "c2", "c3"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Scan() keys = %v, want %v", keys, want)
		}
	}
}
