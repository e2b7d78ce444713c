package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

// WorkerCore defines the interface for the chart sync pipeline workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// SyncChart runs one chart sync execution: resolve missing periods,
	// fetch and ingest them oldest first, then fan out the cascade
	SyncChart(ctx workflow.Context, executionID uint64) error

	// FetchTrackMetadata enriches one track and fans out artist metadata
	// and track audience fetches
	FetchTrackMetadata(ctx workflow.Context, trackUUID string) error

	// FetchArtistMetadata enriches one artist and fans out the artist
	// audience fetch
	FetchArtistMetadata(ctx workflow.Context, artistUUID string) error

	// FetchTrackAudience fetches track audience series across the tracked
	// platform set
	FetchTrackAudience(ctx workflow.Context, trackUUID string) error

	// FetchArtistAudience fetches artist audience series across the tracked
	// platform set
	FetchArtistAudience(ctx workflow.Context, artistUUID string) error
}

// WorkerCoreConfig holds the workflow-side tuning knobs
type WorkerCoreConfig struct {
	// CascadeTaskQueue is the task queue for metadata/audience fetches
	CascadeTaskQueue string
	// StalenessThreshold is the age past which metadata is refetched
	StalenessThreshold time.Duration
	// ExecutionMaxRetries bounds re-queues after systemic failures
	ExecutionMaxRetries int
	// RetryBaseDelay is the first re-queue delay; it doubles per attempt
	RetryBaseDelay time.Duration
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.RetryBaseDelay <= 0 {
		config.RetryBaseDelay = time.Minute
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
