package telemetry

import (
	"errors"
	"time"

	"github.com/halcyon-games/telemetry-go/adapters"
)

// Pipeline is the client-facing telemetry pipeline: it accepts events from
// any number of concurrent callers without blocking them, samples, stamps
// ambient context, and hands the rest to the dispatcher.
type Pipeline struct {
	config     Config
	sampler    Sampler
	experiment *ExperimentContext
	dispatcher *Dispatcher
	logger     LoggerAdapter
	sessionID  string
}

// NewPipeline validates the configuration, fills defaults and wires the
// adapters. Call Start once afterwards to merge any persisted snapshot.
func NewPipeline(config Config) (*Pipeline, error) {
	if config.CollectorEndpoint == "" {
		return nil, errors.New("CollectorEndpoint is required")
	}

	if config.FlushInterval <= 0 {
		config.FlushInterval = DefaultFlushInterval
	}
	if config.BatchSizeCap <= 0 {
		config.BatchSizeCap = DefaultBatchSizeCap
	}
	if config.MaxQueueEvents <= 0 {
		config.MaxQueueEvents = DefaultMaxQueueEvents
	}
	if config.ShutdownGrace <= 0 {
		config.ShutdownGrace = DefaultShutdownGrace
	}
	if config.AuthKeyHeader == "" {
		config.AuthKeyHeader = DefaultAuthKeyHeader
	}
	if config.Adapters.HTTP == nil {
		config.Adapters.HTTP = adapters.NewNetHTTPAdapter()
	}
	if config.Adapters.Storage == nil {
		config.Adapters.Storage = adapters.NewFileSnapshotStorage(DefaultSnapshotFile)
	}
	if config.Adapters.Logger == nil {
		config.Adapters.Logger = adapters.NewSlogLoggerAdapter(nil)
	}

	headers := map[string]string{}
	if config.AuthKey != "" {
		headers[config.AuthKeyHeader] = config.AuthKey
	}

	dispatcherConfig := DispatcherConfig{
		Endpoint:       config.CollectorEndpoint,
		AuthKey:        config.AuthKey,
		AuthKeyHeader:  config.AuthKeyHeader,
		FlushInterval:  config.FlushInterval,
		BatchSizeCap:   config.BatchSizeCap,
		MaxQueueEvents: config.MaxQueueEvents,
		ShutdownGrace:  config.ShutdownGrace,
	}

	dispatcher := NewDispatcher(dispatcherConfig, config.Adapters.HTTP, config.Adapters.Storage, headers)
	dispatcher.SetLoggerAdapter(config.Adapters.Logger)
	if config.OnEventsSent != nil {
		dispatcher.SetEventsSentFunc(config.OnEventsSent)
	}

	return &Pipeline{
		config:     config,
		experiment: NewExperimentContext(),
		dispatcher: dispatcher,
		logger:     config.Adapters.Logger,
		sessionID:  newSessionID(),
	}, nil
}

// Start loads any persisted queue snapshot into the live queue and removes
// the on-disk file. Call it once, before recording events.
func (p *Pipeline) Start() {
	p.dispatcher.LoadSnapshot()
}

// RecordOption customizes one RecordEvent call.
type RecordOption func(*recordOptions)

type recordOptions struct {
	experimentID *string
	cohort       *string
	sampleRate   float64
}

// WithExperiment overrides the ambient experiment context for one event.
func WithExperiment(experimentID, cohort string) RecordOption {
	return func(o *recordOptions) {
		o.experimentID = &experimentID
		o.cohort = &cohort
	}
}

// WithSampleRate keeps the event with the given probability in [0, 1].
// Unsampled calls default to 1: every event is kept.
func WithSampleRate(rate float64) RecordOption {
	return func(o *recordOptions) {
		o.sampleRate = rate
	}
}

// RecordEvent records one occurrence. It never returns an error and never
// blocks beyond an in-memory insert: an empty name is dropped with a debug
// log, a full queue evicts its oldest event, and transport problems stay
// inside the dispatcher's drain cycle.
func (p *Pipeline) RecordEvent(name string, properties map[string]any, opts ...RecordOption) {
	if name == "" {
		p.logger.Debug("dropping event with empty name")
		return
	}

	options := recordOptions{sampleRate: 1.0}
	for _, opt := range opts {
		opt(&options)
	}

	if !p.sampler.Keep(options.sampleRate) {
		return
	}

	experimentID, cohort := options.experimentID, options.cohort
	if experimentID == nil && cohort == nil {
		experimentID, cohort = p.experiment.Current()
	}

	p.dispatcher.Enqueue(Event{
		Name:              name,
		Properties:        properties,
		ExperimentID:      experimentID,
		Cohort:            cohort,
		ClientTimestampMs: time.Now().UnixMilli(),
		SessionID:         p.sessionID,
		Platform:          p.config.Platform,
		GameVersion:       p.config.GameVersion,
		PlayerID:          p.config.PlayerID,
	})
}

// SetExperimentContext sets the ambient experiment and cohort stamped onto
// events that do not carry their own.
func (p *Pipeline) SetExperimentContext(experimentID, cohort string) {
	p.experiment.Set(experimentID, cohort)
}

// ClearExperimentContext removes the ambient experiment and cohort.
func (p *Pipeline) ClearExperimentContext() {
	p.experiment.Clear()
}

// SessionID returns the session identifier stamped onto every event,
// constant for the process lifetime.
func (p *Pipeline) SessionID() string {
	return p.sessionID
}

// PendingCount returns the number of events waiting in the live queue.
func (p *Pipeline) PendingCount() int {
	return p.dispatcher.PendingCount()
}

// Flush requests an immediate drain-and-send cycle. It is coalesced with
// any cycle already in flight.
func (p *Pipeline) Flush() {
	p.dispatcher.Drain()
}

// OnSuspend persists the live queue to durable storage. Invoked by the
// host's lifecycle layer when the application is about to be backgrounded.
func (p *Pipeline) OnSuspend() {
	if err := p.dispatcher.PersistSnapshot(); err != nil {
		p.logger.Error("suspend persistence failed: %v", err)
	}
}

// OnResume is a no-op; it exists so the pipeline satisfies the host's
// lifecycle hook set.
func (p *Pipeline) OnResume() {}

// OnShutdown stops the periodic timer, gives an in-flight send a bounded
// grace period, and persists whatever remains queued.
func (p *Pipeline) OnShutdown() {
	if err := p.dispatcher.Shutdown(); err != nil {
		p.logger.Error("shutdown persistence failed: %v", err)
	}
}
