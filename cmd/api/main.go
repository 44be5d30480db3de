package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/docs"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/analytics"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/config"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/handler"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/logger"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue/sqs"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/service"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/store"
)

// @title AI Mind OS Analytics API
// @version 1.0
// @description API for tracking learning-platform events and serving dashboard reports
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		if err := log.Sync(); err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort),
		zap.Duration("event_retention", cfg.Analytics.Retention()))

	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	eventLog := store.NewMemoryStore(cfg.Analytics.Retention())
	engine := analytics.NewEngine(eventLog)

	// The sink queue only exists in production mode; elsewhere events stay
	// in the in-memory log.
	var publisher queue.QueuePublisher
	if cfg.Service.IsProduction() {
		sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
		if err != nil {
			log.Fatal("Failed to create SQS client", zap.Error(err))
		}
		publisher = sqsClient
		log.Info("Event forwarding enabled", zap.String("queue_url", cfg.SQS.QueueURL))
	}

	eventService := service.NewEventService(eventLog, engine, publisher, cfg.Service.IsProduction(), log)

	h := handler.NewHandler(eventService, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
