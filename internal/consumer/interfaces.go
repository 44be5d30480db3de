package consumer

import (
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into events
type MessageParser interface {
	Parse(body []byte) (*domain.Event, error)
}
