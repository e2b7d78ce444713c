package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/providers/temporal"
	"github.com/wavemetrics/chartsync/internal/store"
	"github.com/wavemetrics/chartsync/internal/store/schema"
	"github.com/wavemetrics/chartsync/internal/workflows"
)

// SyncSweeperConfig holds configuration for the sync schedule sweeper
type SyncSweeperConfig struct {
	SweepInterval       time.Duration // Time to sleep between sweep cycles
	WorkerPoolSize      int           // Concurrent schedule dispatches
	ExecutionMaxRetries int           // Retry budget stamped on new executions
}

// syncSweeper scans for due schedules and hands each one off to a chart
// sync workflow
type syncSweeper struct {
	config        *SyncSweeperConfig
	store         store.Store
	clock         adapter.Clock
	orchestrator  temporal.TemporalOrchestrator
	syncTaskQueue string
	running       atomic.Bool
	stopChan      chan struct{}
	stoppedCh     chan struct{}
}

// NewSyncSweeper creates a new sync schedule sweeper
func NewSyncSweeper(
	config *SyncSweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	syncTaskQueue string,
) Sweeper {
	return &syncSweeper{
		config:        config,
		store:         st,
		clock:         clock,
		orchestrator:  orchestrator,
		syncTaskQueue: syncTaskQueue,
		stopChan:      make(chan struct{}),
		stoppedCh:     make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *syncSweeper) Name() string {
	return "sync-schedule-sweeper"
}

// Start begins the sweeper's main loop
func (s *syncSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sync schedule sweeper",
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sync schedule sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Sync schedule sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *syncSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping sync schedule sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Sync schedule sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sync schedule sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle dispatches every due schedule once, then sleeps
func (s *syncSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	due, err := s.store.ListDueSchedules(ctx, startTime)
	if err != nil {
		return fmt.Errorf("failed to list due schedules: %w", err)
	}

	if len(due) > 0 {
		logger.InfoCtx(ctx, "Found due schedules", zap.Int("count", len(due)))

		pool := pond.NewPool(
			s.config.WorkerPoolSize,
			pond.WithQueueSize(len(due)),
			pond.WithContext(ctx),
		)
		for _, schedule := range due {
			pool.Submit(func() {
				s.dispatchSchedule(ctx, schedule)
			})
		}
		pool.StopAndWait()

		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Duration("duration", s.clock.Since(startTime)),
			zap.Int("dispatched", len(due)),
		)
	}

	if !s.sleep(ctx, s.config.SweepInterval) {
		return ctx.Err()
	}
	return nil
}

// dispatchSchedule creates a pending execution, starts its workflow and
// advances the schedule's cadence. A failed workflow start voids the
// execution and leaves the schedule due for the next cycle.
func (s *syncSweeper) dispatchSchedule(ctx context.Context, schedule schema.ChartSyncSchedule) {
	chart, err := s.store.GetChartByID(ctx, schedule.ChartID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("schedule_id", schedule.ID))
		return
	}
	if chart == nil {
		logger.ErrorCtx(ctx, fmt.Errorf("schedule references missing chart"),
			zap.Uint64("schedule_id", schedule.ID),
			zap.Uint64("chart_id", schedule.ChartID))
		return
	}

	now := s.clock.Now()
	workflowID := fmt.Sprintf("chart-sync-%s-%s", chart.Slug, ulid.MustNewDefault(now).String())

	execution, err := s.store.CreateExecution(ctx, schedule.ID, workflowID, s.config.ExecutionMaxRetries)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.Uint64("schedule_id", schedule.ID))
		return
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:                    workflowID,
		TaskQueue:             s.syncTaskQueue,
		WorkflowRunTimeout:    2 * time.Hour,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	workflowRun, err := s.orchestrator.ExecuteWorkflow(ctx, workflowOptions, w.SyncChart, execution.ID)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to start chart sync workflow: %w", err),
			zap.Uint64("schedule_id", schedule.ID),
			zap.Uint64("execution_id", execution.ID),
		)
		// Void the never-started execution; the schedule stays due
		if cancelErr := s.store.CancelExecution(ctx, execution.ID, s.clock.Now()); cancelErr != nil {
			logger.ErrorCtx(ctx, cancelErr, zap.Uint64("execution_id", execution.ID))
		}
		return
	}

	frequency := schedule.EffectiveFrequency(chart.Frequency)
	nextSyncAt := frequency.Next(now)
	if err := s.store.AdvanceSchedule(ctx, schedule.ID, now, nextSyncAt); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to advance schedule: %w", err),
			zap.Uint64("schedule_id", schedule.ID))
	}

	if workflowRun != nil {
		logger.InfoCtx(ctx, "Chart sync workflow started",
			zap.String("chart", chart.Slug),
			zap.Uint64("execution_id", execution.ID),
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("run_id", workflowRun.GetRunID()),
			zap.Time("next_sync_at", nextSyncAt),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request
func (s *syncSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
