package consumer

import (
	"context"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
)

// SettleFunc reports the outcome of processing a queue delivery.
type SettleFunc func(context.Context) error

// Envelope carries one platform event through the pipeline together with the
// callbacks that settle its queue delivery. Ack removes the message from the
// queue; Nack leaves it in place for redelivery after the visibility timeout.
type Envelope struct {
	Event *domain.Event

	ack  SettleFunc
	nack SettleFunc
}

// NewEnvelope wraps a parsed event with its settlement callbacks. Nil
// callbacks settle as no-ops.
func NewEnvelope(event *domain.Event, ack, nack SettleFunc) *Envelope {
	return &Envelope{
		Event: event,
		ack:   ack,
		nack:  nack,
	}
}

// Ack settles the delivery as fully processed.
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack == nil {
		return nil
	}
	return e.ack(ctx)
}

// Nack settles the delivery as failed so the queue redelivers it.
func (e *Envelope) Nack(ctx context.Context) error {
	if e.nack == nil {
		return nil
	}
	return e.nack(ctx)
}
