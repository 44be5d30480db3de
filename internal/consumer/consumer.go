package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/config"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/idempotency"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/repository"
)

// Consumer orchestrates a pipeline of stages that drain the sink queue into
// the durable store: receive -> parse -> dedup -> batch write.
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	filter      *FilterStage
	batchWriter *BatchWriter
}

// NewConsumer creates a new consumer pipeline. A nil idempotency checker
// disables deduplication.
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, checker idempotency.Checker, repo repository.EventRepository, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 20,
		BufferSize:      100,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONEventParser(), log)

	filter := NewFilterStage(checker, FilterStageConfig{
		FailOpen: cfg.Redis.IdempotencyFailOpen,
	}, log)

	batchWriter := NewBatchWriter(repo, BatchWriterConfig{
		MaxBatchSize: cfg.Consumer.BatchSizeMax,
		FlushTimeout: time.Duration(cfg.Consumer.BatchTimeoutSec) * time.Second,
	}, log)

	return &Consumer{
		receiver:    receiver,
		parser:      parser,
		filter:      filter,
		batchWriter: batchWriter,
	}
}

// Start begins the consumer pipeline and blocks until all stages stop.
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, 100)
	parsedChan := make(chan *Envelope, 100)
	filteredChan := make(chan *Envelope, 100)

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, parsedChan)
	}()

	go func() {
		defer wg.Done()
		c.filter.Start(ctx, parsedChan, filteredChan)
	}()

	go func() {
		defer wg.Done()
		c.batchWriter.Start(ctx, filteredChan)
	}()

	wg.Wait()
	return nil
}
