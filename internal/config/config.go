package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Service holds process-level settings.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Analytics holds event-log and report settings.
type Analytics struct {
	RetentionSec int `envconfig:"EVENT_RETENTION_SEC" default:"0"`
}

// SQS holds sink-queue settings.
type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL"`
	Region   string `envconfig:"SQS_REGION" default:"eu-central-1"`
}

// ClickHouse holds durable-store settings.
type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" default:"localhost"`
	Port            string `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	Database        string `envconfig:"CLICKHOUSE_DB" default:"analytics"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

// Redis holds idempotency-filter settings.
type Redis struct {
	Host                string `envconfig:"REDIS_HOST" default:"localhost"`
	Port                string `envconfig:"REDIS_PORT" default:"6379"`
	IdempotencyEnabled  bool   `envconfig:"REDIS_IDEMPOTENCY_ENABLED" default:"true"`
	IdempotencyFailOpen bool   `envconfig:"REDIS_IDEMPOTENCY_FAIL_OPEN" default:"true"`
	IdempotencyTTLSec   int    `envconfig:"REDIS_IDEMPOTENCY_TTL_SEC" default:"86400"`
}

// Consumer holds pipeline settings.
type Consumer struct {
	BatchSizeMax    int    `envconfig:"CONSUMER_BATCH_SIZE_MAX" default:"2000"`
	BatchTimeoutSec int    `envconfig:"CONSUMER_BATCH_TIMEOUT_SEC" default:"10"`
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
}

type Config struct {
	Service    Service
	Analytics  Analytics
	SQS        SQS
	ClickHouse ClickHouse
	Redis      Redis
	Consumer   Consumer
}

// Load reads configuration from the environment, after loading a local .env
// file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// Retention returns the configured event-log retention window; zero means
// the log is unbounded.
func (a Analytics) Retention() time.Duration {
	return time.Duration(a.RetentionSec) * time.Second
}

// IsProduction reports whether the process runs in production mode, which
// enables forwarding ingested events to the sink queue.
func (s Service) IsProduction() bool {
	return s.Environment == "production"
}
