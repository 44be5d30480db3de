package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

func lessonEvent(name, lessonID, userID string, props domain.Properties) domain.Event {
	if props == nil {
		props = domain.Properties{}
	}
	props["lessonId"] = lessonID
	ev := event(name, domain.CategoryLesson, props)
	ev.UserID = userID
	return ev
}

func TestLearningAnalytics_EmptyLog(t *testing.T) {
	e, _ := newTestEngine()

	l := e.LearningAnalytics()

	assert.Empty(t, l.CompletionRates)
	assert.Empty(t, l.AverageTimePerLesson)
	assert.Empty(t, l.CertificationPassRates)
	assert.Empty(t, l.PathEffectiveness)
	assert.Zero(t, l.KnowledgeRetention)
	assert.Zero(t, l.SkillProgressionRate)
	assert.Empty(t, l.PreferredLearningTimes)
}

func TestLearningAnalytics_CompletionRate(t *testing.T) {
	e, s := newTestEngine()

	for i := 0; i < 4; i++ {
		s.Append(lessonEvent("lesson_start", "go-101", "u1", nil))
	}
	s.Append(lessonEvent("lesson_complete", "go-101", "u1", nil))

	l := e.LearningAnalytics()
	assert.InDelta(t, 25.0, l.CompletionRates["go-101"], 1e-9)
	assert.InDelta(t, 25.0, l.PathEffectiveness["go-101"], 1e-9)
}

func TestLearningAnalytics_CompletionRateZeroStarts(t *testing.T) {
	e, s := newTestEngine()

	// Completion without a recorded start: no rate entry, no division by zero.
	s.Append(lessonEvent("lesson_complete", "go-999", "u1", nil))

	l := e.LearningAnalytics()
	assert.NotContains(t, l.CompletionRates, "go-999")
}

func TestLearningAnalytics_AverageTimePerLesson(t *testing.T) {
	e, s := newTestEngine()

	s.Append(lessonEvent("lesson_complete", "go-101", "u1", domain.Properties{"timeSpent": 300.0}))
	s.Append(lessonEvent("lesson_complete", "go-101", "u2", domain.Properties{"timeSpent": 500.0}))
	s.Append(lessonEvent("lesson_complete", "go-101", "u3", nil))

	l := e.LearningAnalytics()
	assert.InDelta(t, 400.0, l.AverageTimePerLesson["go-101"], 1e-9)
}

func TestLearningAnalytics_CertificationPassRate(t *testing.T) {
	e, s := newTestEngine()

	attempt := func(certID string, passed bool) domain.Event {
		return event("certification_attempt", domain.CategoryCertification,
			domain.Properties{"certificationId": certID, "passed": passed})
	}

	s.Append(attempt("cert-go", true))
	s.Append(attempt("cert-go", false))
	s.Append(attempt("cert-go", false))
	s.Append(attempt("cert-go", false))
	s.Append(attempt("cert-sql", true))

	l := e.LearningAnalytics()
	assert.InDelta(t, 25.0, l.CertificationPassRates["cert-go"], 1e-9)
	assert.InDelta(t, 100.0, l.CertificationPassRates["cert-sql"], 1e-9)
}

func TestLearningAnalytics_KnowledgeRetention(t *testing.T) {
	e, s := newTestEngine()

	// u1 active on two calendar days, u2 on one. Anonymous events are ignored.
	day1 := lessonEvent("lesson_start", "go-101", "u1", nil)
	day1.Timestamp = testNow.Add(-48 * time.Hour)
	s.Append(day1)
	day2 := lessonEvent("lesson_start", "go-102", "u1", nil)
	day2.Timestamp = testNow.Add(-time.Hour)
	s.Append(day2)

	once := lessonEvent("lesson_start", "go-101", "u2", nil)
	once.Timestamp = testNow.Add(-time.Hour)
	s.Append(once)

	anon := lessonEvent("lesson_start", "go-101", "", nil)
	s.Append(anon)

	l := e.LearningAnalytics()
	assert.InDelta(t, 50.0, l.KnowledgeRetention, 1e-9)
}

func TestLearningAnalytics_SkillProgression(t *testing.T) {
	e, s := newTestEngine()

	// u1 completes 3 lessons, u2 completes 1; users without completions do
	// not enter the mean.
	for i := 0; i < 3; i++ {
		s.Append(lessonEvent("lesson_complete", "go-101", "u1", nil))
	}
	s.Append(lessonEvent("lesson_complete", "go-101", "u2", nil))
	s.Append(lessonEvent("lesson_start", "go-101", "u3", nil))

	l := e.LearningAnalytics()
	assert.InDelta(t, 2.0, l.SkillProgressionRate, 1e-9)
}

func TestLearningAnalytics_PreferredLearningTimes(t *testing.T) {
	e, s := newTestEngine()

	at14 := event("page_view", domain.CategoryUser, nil)
	at14.Timestamp = time.Date(2025, 6, 15, 14, 5, 0, 0, time.UTC)
	s.Append(at14)
	s.Append(at14)

	at9 := event("ai_interaction", domain.CategoryAI, nil)
	at9.Timestamp = time.Date(2025, 6, 15, 9, 45, 0, 0, time.UTC)
	s.Append(at9)

	l := e.LearningAnalytics()
	assert.Equal(t, 2, l.PreferredLearningTimes["14:00-15:00"])
	assert.Equal(t, 1, l.PreferredLearningTimes["9:00-10:00"])
}

func TestLearningAnalytics_Idempotent(t *testing.T) {
	e, s := newTestEngine()
	s.Append(lessonEvent("lesson_start", "go-101", "u1", nil))
	s.Append(lessonEvent("lesson_complete", "go-101", "u1", domain.Properties{"timeSpent": 120.0}))

	assert.Equal(t, e.LearningAnalytics(), e.LearningAnalytics())
}
