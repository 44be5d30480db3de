package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/config"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/consumer"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/idempotency"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/logger"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue/sqs"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/repository/clickhouse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Service.Environment, "consumer")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		if err := log.Sync(); err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting consumer service",
		zap.String("environment", cfg.Service.Environment))

	ctx := context.Background()

	chClient, err := clickhouse.NewClient(ctx, &cfg.ClickHouse, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func() {
		if err := chClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	repo := clickhouse.NewRepository(chClient, log)

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}
	log.Info("Database schema initialized")

	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	var checker idempotency.Checker
	if cfg.Redis.IdempotencyEnabled {
		addr := fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)
		ttl := time.Duration(cfg.Redis.IdempotencyTTLSec) * time.Second
		redisChecker, err := idempotency.NewRedisChecker(ctx, addr, ttl)
		if err != nil {
			if !cfg.Redis.IdempotencyFailOpen {
				log.Fatal("Failed to create idempotency checker", zap.Error(err))
			}
			log.Warn("Idempotency checker unavailable, continuing without dedup", zap.Error(err))
		} else {
			checker = redisChecker
			defer func() {
				if err := redisChecker.Close(); err != nil {
					log.Error("Failed to close idempotency checker", zap.Error(err))
				}
			}()
			log.Info("Idempotency filter enabled", zap.String("redis_addr", addr))
		}
	}

	c := consumer.NewConsumer(cfg, sqsClient, checker, repo, log)

	ops := consumer.NewOpsHandler(repo, log)
	go func() {
		addr := ":" + cfg.Consumer.HealthCheckPort
		log.Info("Ops server starting", zap.String("address", addr))
		if err := http.ListenAndServe(addr, ops); err != nil {
			log.Error("Ops server error", zap.Error(err))
		}
	}()

	consumerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info("Consumer starting")

	done := make(chan struct{})
	go func() {
		if err := c.Start(consumerCtx); err != nil {
			log.Error("Consumer error", zap.Error(err))
		}
		close(done)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down consumer gracefully")
	cancel()

	// Wait for the pipeline to stop so the batch writer can flush what it
	// holds before the process exits.
	<-done
	log.Info("Consumer pipeline drained")
}
