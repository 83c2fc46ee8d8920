// Package cache is the process-wide read-side cache. One Store per entity,
// keyed by the acting user's id; a user switch misses naturally on the new
// key and never reuses another user's data.
package cache

import (
	"sync"
	"time"

	"github.com/acadpainel/academico-sync/internal/metrics"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

type Store[T any] struct {
	entity string
	ttl    time.Duration

	mu      sync.Mutex
	entries map[string]entry[T]
	now     func() time.Time
}

func New[T any](entity string, ttl time.Duration) *Store[T] {
	return &Store[T]{
		entity:  entity,
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get returns the cached value only while it is fresh.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || s.now().Sub(e.storedAt) >= s.ttl {
		metrics.CacheMisses.WithLabelValues(s.entity).Inc()
		var zero T
		return zero, false
	}
	metrics.CacheHits.WithLabelValues(s.entity).Inc()
	return e.value, true
}

// GetStale returns the entry even past its TTL, with its timestamp.
// Used for degraded reads when a refresh fails.
func (s *Store[T]) GetStale(key string) (T, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		var zero T
		return zero, time.Time{}, false
	}
	return e.value, e.storedAt, true
}

// Set replaces the entry atomically with a fresh timestamp.
func (s *Store[T]) Set(key string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[T]{value: v, storedAt: s.now()}
}

func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// InvalidateAll drops every entry. Called on logout.
func (s *Store[T]) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry[T])
}

// Sweep evicts expired entries and reports how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	cutoff := s.now()
	for k, e := range s.entries {
		if cutoff.Sub(e.storedAt) >= s.ttl {
			delete(s.entries, k)
			n++
		}
	}
	if n > 0 {
		metrics.CacheEvictions.WithLabelValues(s.entity).Add(float64(n))
	}
	return n
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// SetClock overrides the time source. For tests.
func (s *Store[T]) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
