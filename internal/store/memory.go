package store

import (
	"sync"
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

// EventLog is the append-only log the report generators scan.
type EventLog interface {
	Append(event domain.Event)
	Snapshot() []domain.Event
	Len() int
}

// MemoryStore is an in-process append-only event log. Events are never
// mutated after Append; the only removal path is retention-window eviction.
// A zero retention keeps the log unbounded.
type MemoryStore struct {
	mu        sync.RWMutex
	events    []domain.Event
	retention time.Duration
	now       func() time.Time
}

// NewMemoryStore creates a store with the given retention window.
func NewMemoryStore(retention time.Duration) *MemoryStore {
	return &MemoryStore{
		retention: retention,
		now:       time.Now,
	}
}

// Append adds an event to the log and prunes expired events. Pruning scans
// from the head but cannot assume timestamp order, so it drops only the
// leading run of expired events; stragglers age out on later appends.
func (s *MemoryStore) Append(event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.retention > 0 {
		cutoff := s.now().Add(-s.retention)
		i := 0
		for i < len(s.events) && s.events[i].Timestamp.Before(cutoff) {
			i++
		}
		if i > 0 {
			s.events = append(s.events[:0:0], s.events[i:]...)
		}
	}

	s.events = append(s.events, event)
}

// Snapshot returns a copy of the log in append order. Generators work on the
// copy so concurrent appends cannot interleave with a report computation.
func (s *MemoryStore) Snapshot() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the current number of events in the log.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
