package analytics

import (
	"sort"
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/store"
)

// Engine computes the dashboard reports from the event log. Every report is
// a pure function of a log snapshot: no state survives between calls, so two
// calls with no intervening appends produce identical results.
type Engine struct {
	events store.EventLog
	now    func() time.Time
}

// NewEngine creates a report engine over the given event log.
func NewEngine(events store.EventLog) *Engine {
	return &Engine{
		events: events,
		now:    time.Now,
	}
}

// rankedCount tracks an occurrence count together with first-seen order so
// rankings can break count ties stably.
type rankedCount struct {
	key   string
	count int
	seen  int
}

// topN ranks keys by descending count, ties broken by encounter order.
// The counting loop must feed keys through observe in log order.
type counter struct {
	counts map[string]*rankedCount
	order  int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]*rankedCount)}
}

func (c *counter) observe(key string) {
	if rc, ok := c.counts[key]; ok {
		rc.count++
		return
	}
	c.counts[key] = &rankedCount{key: key, count: 1, seen: c.order}
	c.order++
}

func (c *counter) top(n int) []rankedCount {
	ranked := make([]rankedCount, 0, len(c.counts))
	for _, rc := range c.counts {
		ranked = append(ranked, *rc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].seen < ranked[j].seen
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// mean computes sum/count with a guarded denominator.
func mean(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// satisfactionScore averages the satisfaction property over ai-category
// events that carry it. Both the real-time and the full-log reports use it.
func satisfactionScore(events []domain.Event) float64 {
	var sum float64
	var count int
	for _, e := range events {
		if e.Category != domain.CategoryAI {
			continue
		}
		if v, ok := e.Properties.Number("satisfaction"); ok {
			sum += v
			count++
		}
	}
	return mean(sum, count)
}
