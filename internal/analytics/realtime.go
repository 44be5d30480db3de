package analytics

import (
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
)

// realTimeWindow is the trailing range that scopes the snapshot report.
const realTimeWindow = 60 * time.Minute

// RealTimeMetrics computes the trailing-60-minute snapshot.
func (e *Engine) RealTimeMetrics() *dto.RealTimeMetrics {
	cutoff := e.now().Add(-realTimeWindow)

	users := make(map[string]bool)
	sessions := make(map[string]bool)
	content := newCounter()

	var lessonsInProgress, certificationsActive, aiInteractions int
	var revenue float64
	var window []domain.Event

	for _, ev := range e.events.Snapshot() {
		if ev.Timestamp.Before(cutoff) {
			continue
		}
		window = append(window, ev)

		if ev.UserID != "" {
			users[ev.UserID] = true
		}
		sessions[ev.SessionID] = true

		switch ev.EventName {
		case "lesson_start":
			lessonsInProgress++
		case "certification_attempt":
			certificationsActive++
		case "ai_interaction":
			aiInteractions++
		case "payment_completed":
			if amount, ok := ev.Properties.Number("amount"); ok {
				revenue += amount
			}
		case "lesson_complete":
			if lessonID, ok := ev.Properties.String("lessonId"); ok {
				content.observe(lessonID)
			}
		}
	}

	top := content.top(5)
	topContent := make([]dto.ContentStat, 0, len(top))
	for _, rc := range top {
		topContent = append(topContent, dto.ContentStat{
			LessonID:    rc.key,
			Completions: rc.count,
		})
	}

	return &dto.RealTimeMetrics{
		ActiveUsers:             len(users),
		ConcurrentSessions:      len(sessions),
		LessonsInProgress:       lessonsInProgress,
		CertificationsActive:    certificationsActive,
		AIInteractionsPerMinute: float64(aiInteractions) / realTimeWindow.Minutes(),
		RevenuePerHour:          revenue,
		TopPerformingContent:    topContent,
		UserSatisfactionScore:   satisfactionScore(window),
	}
}
