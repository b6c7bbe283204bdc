package ratelimit

import (
	"context"
	"sync"
	"time"
)

// DefaultMaxEntries is the size above which expired windows are swept.
const DefaultMaxEntries = 10000

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore keeps counters in process. Use it for single-instance deployments.
type MemoryStore struct {
	mu         sync.Mutex
	entries    map[string]*window
	maxEntries int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{entries: make(map[string]*window), maxEntries: maxEntries}
}

func (s *MemoryStore) Increment(_ context.Context, key string, win time.Duration, now time.Time) (Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.entries[key]
	if !ok || now.After(w.resetAt) {
		if !ok && len(s.entries) >= s.maxEntries {
			s.sweep(now)
		}
		w = &window{resetAt: now.Add(win)}
		s.entries[key] = w
	}
	w.count++
	return Counter{Count: w.count, ResetAt: w.resetAt}, nil
}

// Len reports how many keys are tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweep(now time.Time) {
	for k, w := range s.entries {
		if now.After(w.resetAt) {
			delete(s.entries, k)
		}
	}
}
