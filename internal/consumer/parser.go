package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

// sinkMessage mirrors the JSON body published by the API's queue forwarder.
type sinkMessage struct {
	EventID    string                 `json:"event_id"`
	EventName  string                 `json:"event_name"`
	Category   string                 `json:"category"`
	UserID     string                 `json:"user_id"`
	SessionID  string                 `json:"session_id"`
	Properties map[string]interface{} `json:"properties"`
	UserAgent  string                 `json:"user_agent"`
	IP         string                 `json:"ip"`
	Country    string                 `json:"country"`
	Referrer   string                 `json:"referrer"`
	Timestamp  int64                  `json:"timestamp"` // unix milliseconds
}

// JSONEventParser implements MessageParser for the sink-queue JSON format
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse parses a JSON message body into an Event. Events with an unknown
// category or missing identifiers are rejected so they never reach the
// durable store.
func (p *JSONEventParser) Parse(body []byte) (*domain.Event, error) {
	var msg sinkMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if msg.EventID == "" {
		return nil, fmt.Errorf("message is missing event_id")
	}
	if msg.EventName == "" {
		return nil, fmt.Errorf("message is missing event_name")
	}

	category, err := domain.ParseCategory(msg.Category)
	if err != nil {
		return nil, err
	}

	props := domain.Properties(msg.Properties)
	if props == nil {
		props = domain.Properties{}
	}

	return &domain.Event{
		EventID:    msg.EventID,
		EventName:  msg.EventName,
		Category:   category,
		UserID:     msg.UserID,
		SessionID:  msg.SessionID,
		Properties: props,
		UserAgent:  msg.UserAgent,
		IP:         msg.IP,
		Country:    msg.Country,
		Referrer:   msg.Referrer,
		Timestamp:  time.UnixMilli(msg.Timestamp),
	}, nil
}
