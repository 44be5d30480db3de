package consumer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/idempotency"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/metrics"
)

// FilterStageConfig configures the idempotency filter
type FilterStageConfig struct {
	// FailOpen passes events through when the checker errors; fail-closed
	// nacks them for redelivery instead.
	FailOpen bool
}

// FilterStage drops already-seen events before they reach the batch writer.
// Redelivered SQS messages and duplicate forwards land here with the same
// event_id, which the checker has already marked.
type FilterStage struct {
	checker idempotency.Checker
	config  FilterStageConfig
	log     *zap.Logger
}

// NewFilterStage creates a new idempotency filter stage
func NewFilterStage(checker idempotency.Checker, config FilterStageConfig, log *zap.Logger) *FilterStage {
	return &FilterStage{
		checker: checker,
		config:  config,
		log:     log,
	}
}

// Start begins filtering envelopes. A nil checker degrades to a passthrough.
func (f *FilterStage) Start(ctx context.Context, in <-chan *Envelope, out chan<- *Envelope) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			f.log.Info("Filter stage shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				f.log.Info("Filter stage input channel closed")
				return
			}

			if !f.keep(ctx, envelope) {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- envelope:
			}
		}
	}
}

func (f *FilterStage) keep(ctx context.Context, envelope *Envelope) bool {
	if f.checker == nil {
		return true
	}

	seen, err := f.checker.Seen(ctx, envelope.Event.EventID)
	if err != nil {
		f.log.Warn("Idempotency check failed",
			zap.String("event_id", envelope.Event.EventID),
			zap.Bool("fail_open", f.config.FailOpen),
			zap.Error(err))
		if f.config.FailOpen {
			return true
		}
		if err := envelope.Nack(ctx); err != nil {
			f.log.Error("Failed to nack envelope", zap.Error(err))
		}
		return false
	}

	if seen {
		metrics.DuplicateDropped()
		f.log.Debug("Dropping duplicate event",
			zap.String("event_id", envelope.Event.EventID))
		// Ack so the duplicate leaves the queue.
		if err := envelope.Ack(ctx); err != nil {
			f.log.Error("Failed to ack duplicate envelope", zap.Error(err))
		}
		return false
	}

	return true
}
