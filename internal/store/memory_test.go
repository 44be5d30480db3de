package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testEvent(id string, ts time.Time) domain.Event {
	return domain.Event{
		EventID:   id,
		EventName: "page_view",
		Category:  domain.CategoryUser,
		SessionID: "sess-1",
		Timestamp: ts,
	}
}

func TestMemoryStore_AppendAndSnapshot(t *testing.T) {
	s := NewMemoryStore(0)

	s.Append(testEvent("e1", testNow))
	s.Append(testEvent("e2", testNow.Add(time.Second)))

	snap := s.Snapshot()
	assert.Len(t, snap, 2)
	assert.Equal(t, "e1", snap[0].EventID)
	assert.Equal(t, "e2", snap[1].EventID)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_SnapshotIsACopy(t *testing.T) {
	s := NewMemoryStore(0)
	s.Append(testEvent("e1", testNow))

	snap := s.Snapshot()
	snap[0].EventID = "mutated"

	assert.Equal(t, "e1", s.Snapshot()[0].EventID)
}

func TestMemoryStore_RetentionEvictsExpiredHead(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return testNow }

	s.Append(testEvent("old-1", testNow.Add(-3*time.Hour)))
	s.Append(testEvent("old-2", testNow.Add(-2*time.Hour)))
	s.Append(testEvent("fresh", testNow.Add(-time.Minute)))

	snap := s.Snapshot()
	assert.Len(t, snap, 1)
	assert.Equal(t, "fresh", snap[0].EventID)
}

func TestMemoryStore_ZeroRetentionNeverEvicts(t *testing.T) {
	s := NewMemoryStore(0)
	s.now = func() time.Time { return testNow }

	s.Append(testEvent("ancient", testNow.Add(-24*365*time.Hour)))
	s.Append(testEvent("fresh", testNow))

	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	s := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append(testEvent(fmt.Sprintf("e%d", n), testNow))
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
