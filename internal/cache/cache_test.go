package cache

import (
	"testing"
	"time"
)

func TestStore_FreshnessWindow(t *testing.T) {
	s := New[[]string]("teste", 5*time.Minute)
	now := time.Now()
	s.SetClock(func() time.Time { return now })

	s.Set("u1", []string{"a"})

	if v, ok := s.Get("u1"); !ok || len(v) != 1 {
		t.Fatalf("want fresh hit, got ok=%v v=%v", ok, v)
	}

	// one second short of the TTL: still fresh
	now = now.Add(5*time.Minute - time.Second)
	if _, ok := s.Get("u1"); !ok {
		t.Fatal("want hit just inside TTL")
	}

	now = now.Add(2 * time.Second)
	if _, ok := s.Get("u1"); ok {
		t.Fatal("want miss past TTL")
	}

	// expired entries stay reachable for degraded reads
	v, storedAt, ok := s.GetStale("u1")
	if !ok || len(v) != 1 {
		t.Fatalf("want stale entry, got ok=%v", ok)
	}
	if storedAt.IsZero() {
		t.Fatal("stale entry missing timestamp")
	}
}

func TestStore_KeysAreIsolated(t *testing.T) {
	s := New[string]("teste", time.Minute)
	s.Set("u1", "dados-u1")
	if _, ok := s.Get("u2"); ok {
		t.Fatal("user u2 must not see u1's entry")
	}
}

func TestStore_SweepEvictsOnlyExpired(t *testing.T) {
	s := New[string]("teste", time.Minute)
	now := time.Now()
	s.SetClock(func() time.Time { return now })

	s.Set("velho", "x")
	now = now.Add(2 * time.Minute)
	s.Set("novo", "y")

	if n := s.Sweep(); n != 1 {
		t.Fatalf("want 1 eviction, got %d", n)
	}
	if _, _, ok := s.GetStale("velho"); ok {
		t.Fatal("expired entry survived sweep")
	}
	if _, ok := s.Get("novo"); !ok {
		t.Fatal("fresh entry lost in sweep")
	}
}

func TestStore_InvalidateAll(t *testing.T) {
	s := New[string]("teste", time.Minute)
	s.Set("u1", "a")
	s.Set("u2", "b")
	s.InvalidateAll()
	if s.Len() != 0 {
		t.Fatalf("want empty store, got %d entries", s.Len())
	}
}
