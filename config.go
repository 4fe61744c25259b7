package telemetry

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/halcyon-games/telemetry-go/adapters"
)

// Default values applied by NewPipeline for zero-valued Config fields.
const (
	DefaultFlushInterval  = 30 * time.Second
	DefaultBatchSizeCap   = 100
	DefaultMaxQueueEvents = 1000
	DefaultShutdownGrace  = 3 * time.Second
	DefaultAuthKeyHeader  = "X-Auth-Key"
	DefaultSnapshotFile   = "telemetry_queue.json"
)

// Config controls one Pipeline instance.
type Config struct {
	// CollectorEndpoint is the batch upload URL. Required.
	CollectorEndpoint string `env:"TELEMETRY_COLLECTOR_ENDPOINT"`
	// AuthKey is sent on every upload under AuthKeyHeader.
	AuthKey       string `env:"TELEMETRY_AUTH_KEY"`
	AuthKeyHeader string `env:"TELEMETRY_AUTH_KEY_HEADER"`

	// FlushInterval is the periodic drain cadence.
	FlushInterval time.Duration `env:"TELEMETRY_FLUSH_INTERVAL" envDefault:"30s"`
	// BatchSizeCap bounds one batch; reaching it in the queue also
	// triggers an immediate drain.
	BatchSizeCap int `env:"TELEMETRY_BATCH_SIZE_CAP" envDefault:"100"`
	// MaxQueueEvents bounds the live queue; the oldest event is evicted
	// beyond it.
	MaxQueueEvents int `env:"TELEMETRY_MAX_QUEUE_EVENTS" envDefault:"1000"`
	// ShutdownGrace bounds how long shutdown waits for an in-flight send.
	ShutdownGrace time.Duration `env:"TELEMETRY_SHUTDOWN_GRACE" envDefault:"3s"`

	// Platform, GameVersion and PlayerID are stamped onto every event.
	Platform    string  `env:"TELEMETRY_PLATFORM"`
	GameVersion string  `env:"TELEMETRY_GAME_VERSION"`
	PlayerID    *string `env:"-"`

	// OnEventsSent, when set, fires with the event count of every batch
	// the collector accepted.
	OnEventsSent func(count int) `env:"-"`

	Adapters struct {
		HTTP    adapters.HTTPAdapter
		Storage adapters.SnapshotStorage
		Logger  adapters.LoggerAdapter
	} `env:"-"`
}

// ConfigFromEnv loads configuration from TELEMETRY_* environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DispatcherConfig is the subset of Config the dispatcher needs.
type DispatcherConfig struct {
	Endpoint       string
	AuthKey        string
	AuthKeyHeader  string
	FlushInterval  time.Duration
	BatchSizeCap   int
	MaxQueueEvents int
	ShutdownGrace  time.Duration
}
