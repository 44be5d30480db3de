package analytics

import (
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
)

var aiMethodology = map[string]string{
	"accuracy_score":             "satisfaction rating scaled to 0-100, not measured model accuracy",
	"prompt_effectiveness_score": "satisfaction x (1000 / max(avg response time ms, 100)) composite",
}

// AIAnalytics derives the AI usage report from all ai-category events.
// Topic popularity is the exception: it counts lesson-category events by
// lessonId, which stands in for a topic taxonomy the platform does not have.
func (e *Engine) AIAnalytics() *dto.AIAnalytics {
	questions := newCounter()
	languages := make(map[string]int)
	topics := make(map[string]int)

	var interactions int
	var responseTimeSum float64
	var responseTimeCount int

	events := e.events.Snapshot()

	for _, ev := range events {
		switch ev.Category {
		case domain.CategoryAI:
			interactions++

			if rt, ok := ev.Properties.Number("responseTime"); ok {
				responseTimeSum += rt
				responseTimeCount++
			}
			if q, ok := ev.Properties.String("question"); ok {
				questions.observe(q)
			}
			if lang, ok := ev.Properties.String("language"); ok {
				languages[lang]++
			}
		case domain.CategoryLesson:
			if lessonID, ok := ev.Properties.String("lessonId"); ok {
				topics[lessonID]++
			}
		}
	}

	satisfaction := satisfactionScore(events)
	avgResponseTime := mean(responseTimeSum, responseTimeCount)

	effectivenessBase := avgResponseTime
	if effectivenessBase < 100 {
		effectivenessBase = 100
	}

	top := questions.top(10)
	asked := make([]dto.QuestionStat, 0, len(top))
	for _, rc := range top {
		asked = append(asked, dto.QuestionStat{
			Question: rc.key,
			Count:    rc.count,
		})
	}

	return &dto.AIAnalytics{
		TotalInteractions:        interactions,
		AverageResponseTimeMs:    avgResponseTime,
		UserSatisfactionRating:   satisfaction,
		MostAskedQuestions:       asked,
		AccuracyScore:            satisfaction * 20,
		LanguageUsage:            languages,
		TopicPopularity:          topics,
		PromptEffectivenessScore: satisfaction * (1000 / effectivenessBase),
		Methodology:              aiMethodology,
	}
}
