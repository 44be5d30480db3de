package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"category is required"`
}

// TrackEventResponse represents a successful event ingestion response
type TrackEventResponse struct {
	Success bool   `json:"success" example:"true"`
	EventID string `json:"event_id,omitempty" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

// TrackEventsBulkResponse represents a bulk ingestion response
type TrackEventsBulkResponse struct {
	Success  bool     `json:"success" example:"true"`
	Accepted int      `json:"accepted" example:"5"`
	Rejected int      `json:"rejected" example:"0"`
	EventIDs []string `json:"event_ids,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// ContentStat is one entry of the top-performing-content ranking
type ContentStat struct {
	LessonID    string `json:"lesson_id" example:"go-101"`
	Completions int    `json:"completions" example:"37"`
}

// RealTimeMetrics is the trailing-60-minute snapshot report
type RealTimeMetrics struct {
	ActiveUsers             int           `json:"active_users" example:"12"`
	ConcurrentSessions      int           `json:"concurrent_sessions" example:"17"`
	LessonsInProgress       int           `json:"lessons_in_progress" example:"5"`
	CertificationsActive    int           `json:"certifications_active" example:"2"`
	AIInteractionsPerMinute float64       `json:"ai_interactions_per_minute" example:"0.35"`
	RevenuePerHour          float64       `json:"revenue_per_hour" example:"149.97"`
	TopPerformingContent    []ContentStat `json:"top_performing_content"`
	UserSatisfactionScore   float64       `json:"user_satisfaction_score" example:"4.2"`
}

// RevenueAnalytics is the revenue report over the full event log
type RevenueAnalytics struct {
	DailyRevenue      float64            `json:"daily_revenue" example:"240"`
	MRR               float64            `json:"mrr" example:"1880"`
	CLV               float64            `json:"clv" example:"96.4"`
	ChurnRate         float64            `json:"churn_rate" example:"3.1"`
	ConversionRate    float64            `json:"conversion_rate" example:"12.5"`
	AverageOrderValue float64            `json:"average_order_value" example:"24.99"`
	GrowthRate        float64            `json:"growth_rate" example:"18.2"`
	RevenueByCountry  map[string]float64 `json:"revenue_by_country"`
	RevenueByPlan     map[string]float64 `json:"revenue_by_plan"`
	Methodology       map[string]string  `json:"methodology"`
}

// QuestionStat is one entry of the most-asked-questions ranking
type QuestionStat struct {
	Question string `json:"question" example:"what is a goroutine?"`
	Count    int    `json:"count" example:"14"`
}

// AIAnalytics is the AI usage report over the full event log
type AIAnalytics struct {
	TotalInteractions        int               `json:"total_interactions" example:"412"`
	AverageResponseTimeMs    float64           `json:"average_response_time_ms" example:"820"`
	UserSatisfactionRating   float64           `json:"user_satisfaction_rating" example:"4.1"`
	MostAskedQuestions       []QuestionStat    `json:"most_asked_questions"`
	AccuracyScore            float64           `json:"accuracy_score" example:"82"`
	LanguageUsage            map[string]int    `json:"language_usage"`
	TopicPopularity          map[string]int    `json:"topic_popularity"`
	PromptEffectivenessScore float64           `json:"prompt_effectiveness_score" example:"5"`
	Methodology              map[string]string `json:"methodology"`
}

// LearningAnalytics is the learning outcomes report
type LearningAnalytics struct {
	CompletionRates        map[string]float64 `json:"completion_rates"`
	AverageTimePerLesson   map[string]float64 `json:"average_time_per_lesson"`
	CertificationPassRates map[string]float64 `json:"certification_pass_rates"`
	PathEffectiveness      map[string]float64 `json:"path_effectiveness"`
	KnowledgeRetention     float64            `json:"knowledge_retention_score" example:"40"`
	SkillProgressionRate   float64            `json:"skill_progression_rate" example:"2.5"`
	PreferredLearningTimes map[string]int     `json:"preferred_learning_times"`
}

// DashboardOverview bundles all four reports
type DashboardOverview struct {
	RealTime *RealTimeMetrics   `json:"realtime"`
	Revenue  *RevenueAnalytics  `json:"revenue"`
	AI       *AIAnalytics       `json:"ai"`
	Learning *LearningAnalytics `json:"learning"`
}
