package consumer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

func TestJSONEventParser_Parse(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "evt-1",
		"event_name": "lesson_complete",
		"category": "lesson",
		"user_id": "u1",
		"session_id": "sess-1",
		"properties": {"lessonId": "go-101", "timeSpent": 420},
		"country": "DE",
		"timestamp": 1750000000000
	}`)

	event, err := parser.Parse(body)
	require.NoError(t, err)

	assert.Equal(t, "evt-1", event.EventID)
	assert.Equal(t, "lesson_complete", event.EventName)
	assert.Equal(t, domain.CategoryLesson, event.Category)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "sess-1", event.SessionID)
	assert.Equal(t, "DE", event.Country)
	assert.Equal(t, time.UnixMilli(1750000000000), event.Timestamp)

	lessonID, ok := event.Properties.String("lessonId")
	assert.True(t, ok)
	assert.Equal(t, "go-101", lessonID)

	timeSpent, ok := event.Properties.Number("timeSpent")
	assert.True(t, ok)
	assert.Equal(t, 420.0, timeSpent)
}

func TestJSONEventParser_MalformedJSON(t *testing.T) {
	parser := NewJSONEventParser()

	_, err := parser.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestJSONEventParser_MissingEventID(t *testing.T) {
	parser := NewJSONEventParser()

	_, err := parser.Parse([]byte(`{"event_name": "x", "category": "user", "timestamp": 1}`))
	assert.Error(t, err)
}

func TestJSONEventParser_UnknownCategory(t *testing.T) {
	parser := NewJSONEventParser()

	_, err := parser.Parse([]byte(`{"event_id": "e", "event_name": "x", "category": "marketing", "timestamp": 1}`))
	assert.Error(t, err)
}

func TestJSONEventParser_NilPropertiesDefaulted(t *testing.T) {
	parser := NewJSONEventParser()

	event, err := parser.Parse([]byte(`{"event_id": "e", "event_name": "x", "category": "user", "timestamp": 1}`))
	require.NoError(t, err)
	assert.NotNil(t, event.Properties)
}
