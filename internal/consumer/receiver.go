package consumer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue"
)

// receiveRetryDelay spaces out polls after a receive error so a broken
// queue connection does not spin the loop.
const receiveRetryDelay = time.Second

// ReceiverConfig configures the long-poll receiver.
type ReceiverConfig struct {
	MaxMessages     int32
	WaitTimeSeconds int32
	BufferSize      int
}

// Receiver long-polls the sink queue and feeds raw messages into the
// pipeline.
type Receiver struct {
	queue  queue.QueueConsumer
	config ReceiverConfig
	log    *zap.Logger
}

// NewReceiver creates a receiver over the given queue consumer.
func NewReceiver(consumer queue.QueueConsumer, config ReceiverConfig, log *zap.Logger) *Receiver {
	return &Receiver{
		queue:  consumer,
		config: config,
		log:    log,
	}
}

// Start polls the queue until the context is canceled, closing out on the
// way down so downstream stages drain.
func (r *Receiver) Start(ctx context.Context, out chan<- types.Message) {
	defer close(out)
	defer r.log.Info("Receiver shutting down")

	for ctx.Err() == nil {
		messages, err := r.poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.log.Error("Failed to receive from queue", zap.Error(err))
			time.Sleep(receiveRetryDelay)
			continue
		}

		if len(messages) == 0 {
			continue
		}
		r.log.Debug("Received messages", zap.Int("message_count", len(messages)))

		for _, msg := range messages {
			select {
			case <-ctx.Done():
				return
			case out <- msg:
			}
		}
	}
}

func (r *Receiver) poll(ctx context.Context) ([]types.Message, error) {
	result, err := r.queue.ReceiveMessages(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:              aws.String(r.queue.QueueURL()),
		MaxNumberOfMessages:   r.config.MaxMessages,
		WaitTimeSeconds:       r.config.WaitTimeSeconds,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, err
	}
	return result.Messages, nil
}
