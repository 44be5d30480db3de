package analytics

import (
	"fmt"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
)

// LearningAnalytics derives the learning outcomes report from lesson and
// certification events, plus an all-category hourly activity histogram.
func (e *Engine) LearningAnalytics() *dto.LearningAnalytics {
	starts := make(map[string]int)
	completions := make(map[string]int)
	timeSpentSum := make(map[string]float64)
	timeSpentCount := make(map[string]int)
	certAttempts := make(map[string]int)
	certPassed := make(map[string]int)
	userDays := make(map[string]map[string]bool)
	userCompletions := make(map[string]int)
	learningTimes := make(map[string]int)

	for _, ev := range e.events.Snapshot() {
		hour := ev.Timestamp.Hour()
		learningTimes[fmt.Sprintf("%d:00-%d:00", hour, hour+1)]++

		if ev.UserID != "" {
			day := ev.Timestamp.Format("2006-01-02")
			if userDays[ev.UserID] == nil {
				userDays[ev.UserID] = make(map[string]bool)
			}
			userDays[ev.UserID][day] = true
		}

		switch ev.Category {
		case domain.CategoryLesson:
			lessonID, ok := ev.Properties.String("lessonId")
			if !ok {
				continue
			}
			switch ev.EventName {
			case "lesson_start":
				starts[lessonID]++
			case "lesson_complete":
				completions[lessonID]++
				if ev.UserID != "" {
					userCompletions[ev.UserID]++
				}
			}
			if ts, hasTime := ev.Properties.Number("timeSpent"); hasTime {
				timeSpentSum[lessonID] += ts
				timeSpentCount[lessonID]++
			}

		case domain.CategoryCertification:
			if ev.EventName != "certification_attempt" {
				continue
			}
			certID, ok := ev.Properties.String("certificationId")
			if !ok {
				continue
			}
			certAttempts[certID]++
			if passed, hasResult := ev.Properties.Bool("passed"); hasResult && passed {
				certPassed[certID]++
			}
		}
	}

	// Lessons only ever completed (no recorded start) are excluded: the rate
	// is defined over lessons seen in lesson_start events.
	completionRates := make(map[string]float64, len(starts))
	for lessonID, startCount := range starts {
		completionRates[lessonID] = float64(completions[lessonID]) / float64(startCount) * 100
	}

	avgTime := make(map[string]float64, len(timeSpentSum))
	for lessonID, sum := range timeSpentSum {
		avgTime[lessonID] = mean(sum, timeSpentCount[lessonID])
	}

	passRates := make(map[string]float64, len(certAttempts))
	for certID, attempts := range certAttempts {
		passRates[certID] = float64(certPassed[certID]) / float64(attempts) * 100
	}

	var returningUsers int
	for _, days := range userDays {
		if len(days) > 1 {
			returningUsers++
		}
	}
	var retention float64
	if len(userDays) > 0 {
		retention = float64(returningUsers) / float64(len(userDays)) * 100
	}

	var completionTotal int
	for _, n := range userCompletions {
		completionTotal += n
	}
	var progression float64
	if len(userCompletions) > 0 {
		progression = float64(completionTotal) / float64(len(userCompletions))
	}

	// Path effectiveness has no independent signal yet; it mirrors the
	// per-lesson completion rates.
	pathEffectiveness := make(map[string]float64, len(completionRates))
	for lessonID, rate := range completionRates {
		pathEffectiveness[lessonID] = rate
	}

	return &dto.LearningAnalytics{
		CompletionRates:        completionRates,
		AverageTimePerLesson:   avgTime,
		CertificationPassRates: passRates,
		PathEffectiveness:      pathEffectiveness,
		KnowledgeRetention:     retention,
		SkillProgressionRate:   progression,
		PreferredLearningTimes: learningTimes,
	}
}
