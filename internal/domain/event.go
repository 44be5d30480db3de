package domain

import (
	"fmt"
	"time"
)

// Category partitions the event log for reporting.
type Category string

const (
	CategoryUser          Category = "user"
	CategoryLesson        Category = "lesson"
	CategoryCertification Category = "certification"
	CategoryPayment       Category = "payment"
	CategoryAI            Category = "ai"
	CategoryGamification  Category = "gamification"
)

var validCategories = map[Category]bool{
	CategoryUser:          true,
	CategoryLesson:        true,
	CategoryCertification: true,
	CategoryPayment:       true,
	CategoryAI:            true,
	CategoryGamification:  true,
}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !validCategories[c] {
		return "", fmt.Errorf("unknown event category: %q", raw)
	}
	return c, nil
}

// Properties is the free-form payload attached to an event. Values arrive
// from JSON, so numbers are float64 and everything else is string or bool.
type Properties map[string]interface{}

// String returns the string value for key, if present.
func (p Properties) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Number returns the numeric value for key, if present.
func (p Properties) Number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the boolean value for key, if present.
func (p Properties) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

// RequestMeta carries the optional request metadata captured at the HTTP
// boundary alongside an event.
type RequestMeta struct {
	UserID    string
	UserAgent string
	IP        string
	Country   string
	Referrer  string
}

// Event is an immutable record of a user or system action. EventID and
// Timestamp are assigned server-side at ingestion and never change afterwards.
type Event struct {
	EventID    string
	EventName  string
	Category   Category
	UserID     string
	SessionID  string
	Properties Properties
	UserAgent  string
	IP         string
	Country    string
	Referrer   string
	Timestamp  time.Time
}

// MaxQuestionLen bounds stored AI question text. Longer questions are
// truncated at ingestion so raw prompts never land in the log verbatim.
const MaxQuestionLen = 100

// Normalize enforces the ingestion-time property rules on the event payload.
func (e *Event) Normalize() {
	if q, ok := e.Properties.String("question"); ok {
		runes := []rune(q)
		if len(runes) > MaxQuestionLen {
			e.Properties["question"] = string(runes[:MaxQuestionLen])
		}
	}
}

// Validate checks the per-category payload rules. Unknown categories never
// reach here (ParseCategory runs first), so this only guards the properties
// the report generators depend on.
func (e *Event) Validate() error {
	if e.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if e.Category == CategoryPayment && e.EventName == "payment_completed" {
		if _, ok := e.Properties.Number("amount"); !ok {
			return fmt.Errorf("payment_completed requires a numeric amount property")
		}
	}
	return nil
}
