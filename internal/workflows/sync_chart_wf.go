package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/store"
)

// SyncChart runs one chart sync execution end to end: mark it running,
// resolve the missing periods, ingest them oldest first, record the terminal
// state, then fan out metadata fetches for the tracks that appeared.
func (w *workerCore) SyncChart(ctx workflow.Context, executionID uint64) error {
	logger.InfoWf(ctx, "starting chart sync", zap.Uint64("execution_id", executionID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var ec *ExecutionContext
	if err := workflow.ExecuteActivity(ctx, w.executor.GetExecutionContext, executionID).Get(ctx, &ec); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to load execution context: %w", err),
			zap.Uint64("execution_id", executionID))
		return err
	}

	if ec.Execution.Status.Terminal() {
		logger.WarnWf(ctx, "execution already terminal, nothing to do",
			zap.Uint64("execution_id", executionID),
			zap.String("status", string(ec.Execution.Status)))
		return nil
	}

	// A cancelled workflow leaves a cancelled execution behind, but never
	// retracts work already written or children already started.
	defer func() {
		if ctx.Err() == nil {
			return
		}
		dctx, _ := workflow.NewDisconnectedContext(ctx)
		dctx = workflow.WithActivityOptions(dctx, activityOptions)
		if err := workflow.ExecuteActivity(dctx, w.executor.CancelExecution, executionID).Get(dctx, nil); err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to mark execution cancelled: %w", err),
				zap.Uint64("execution_id", executionID))
		} else {
			logger.InfoWf(ctx, "execution cancelled", zap.Uint64("execution_id", executionID))
		}
	}()

	runID := workflow.GetInfo(ctx).WorkflowExecution.RunID
	if err := workflow.ExecuteActivity(ctx, w.executor.StartExecution, executionID, runID).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to mark execution running: %w", err),
			zap.Uint64("execution_id", executionID))
		return err
	}

	var missing []time.Time
	if err := workflow.ExecuteActivity(ctx, w.executor.ResolveMissingPeriods, executionID).Get(ctx, &missing); err != nil {
		return w.failSync(ctx, executionID, ec.Schedule.ID, fmt.Errorf("failed to resolve missing periods: %w", err))
	}

	var counters store.ExecutionCounters
	var trackUUIDs []string
	seen := make(map[string]struct{})

	// Oldest first, so positional deltas always land on top of the
	// preceding snapshot
	for _, date := range missing {
		var result *IngestResult
		input := IngestInput{
			ChartID:     ec.Chart.ID,
			ChartSlug:   ec.Chart.Slug,
			RankingDate: date,
		}
		if err := workflow.ExecuteActivity(ctx, w.executor.IngestRanking, input).Get(ctx, &result); err != nil {
			return w.failSync(ctx, executionID, ec.Schedule.ID,
				fmt.Errorf("failed to ingest period %s: %w", date.Format("2006-01-02"), err))
		}

		if result.RankingCreated {
			counters.RankingsCreated++
		} else {
			counters.RankingsUpdated++
		}
		counters.TracksCreated += result.TracksCreated
		counters.TracksUpdated += result.TracksUpdated
		counters.EntriesCreated += result.EntriesCreated
		counters.ItemsSkipped += result.ItemsSkipped

		for _, uuid := range result.TrackUUIDs {
			if _, ok := seen[uuid]; !ok {
				seen[uuid] = struct{}{}
				trackUUIDs = append(trackUUIDs, uuid)
			}
		}
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.CompleteExecution, executionID, counters).Get(ctx, nil); err != nil {
		return w.failSync(ctx, executionID, ec.Schedule.ID, fmt.Errorf("failed to complete execution: %w", err))
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.RecordScheduleOutcome, ec.Schedule.ID, true).Get(ctx, nil); err != nil {
		// The execution itself completed; a missed counter bump is not
		// worth failing over
		logger.WarnWf(ctx, "failed to record schedule outcome (non-fatal)",
			zap.Uint64("schedule_id", ec.Schedule.ID),
			zap.Error(err))
	}

	logger.InfoWf(ctx, "chart sync completed",
		zap.Uint64("execution_id", executionID),
		zap.String("chart", ec.Chart.Slug),
		zap.Int("periods", len(missing)),
		zap.Int("rankings_created", counters.RankingsCreated),
		zap.Int("entries_created", counters.EntriesCreated),
		zap.Int("items_skipped", counters.ItemsSkipped))

	if ec.Schedule.FetchTrackMetadata && len(trackUUIDs) > 0 {
		w.cascadeTrackMetadata(ctx, trackUUIDs)
	}

	return nil
}

// failSync records a systemic failure on the execution. When a retry slot
// remains the execution goes back to pending and the workflow continues as
// new after a doubling delay; otherwise the failure is terminal.
func (w *workerCore) failSync(ctx workflow.Context, executionID, scheduleID uint64, cause error) error {
	if ctx.Err() != nil {
		// Cancellation is handled by the deferred cleanup, not the
		// failure path
		return cause
	}

	logger.ErrorWf(ctx, fmt.Errorf("chart sync failed: %w", cause),
		zap.Uint64("execution_id", executionID))

	var result *FailResult
	if err := workflow.ExecuteActivity(ctx, w.executor.FailExecution, executionID, cause.Error()).Get(ctx, &result); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to record execution failure: %w", err),
			zap.Uint64("execution_id", executionID))
		return err
	}

	if result.Retry {
		delay := w.config.RetryBaseDelay
		for i := 1; i < result.RetryCount; i++ {
			delay *= 2
		}
		logger.WarnWf(ctx, "re-queueing execution",
			zap.Uint64("execution_id", executionID),
			zap.Int("attempt", result.RetryCount),
			zap.Duration("delay", delay))
		if err := workflow.Sleep(ctx, delay); err != nil {
			return err
		}
		return workflow.NewContinueAsNewError(ctx, w.SyncChart, executionID)
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.RecordScheduleOutcome, scheduleID, false).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "failed to record schedule outcome (non-fatal)",
			zap.Uint64("schedule_id", scheduleID),
			zap.Error(err))
	}

	return cause
}

// cascadeTrackMetadata filters the ingested tracks down to the stale ones and
// starts a fire-and-forget metadata workflow per track on the cascade queue.
func (w *workerCore) cascadeTrackMetadata(ctx workflow.Context, trackUUIDs []string) {
	var stale []string
	if err := workflow.ExecuteActivity(ctx, w.executor.FilterStaleTracks, trackUUIDs).Get(ctx, &stale); err != nil {
		logger.WarnWf(ctx, "failed to filter stale tracks (non-fatal)",
			zap.Int("candidates", len(trackUUIDs)),
			zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	logger.InfoWf(ctx, "triggering track metadata fetches",
		zap.Int("candidates", len(trackUUIDs)),
		zap.Int("stale", len(stale)))

	for _, uuid := range stale {
		w.startCascadeChild(ctx, fmt.Sprintf("fetch-track-metadata-%s", uuid), w.FetchTrackMetadata, uuid)
	}
}

// startCascadeChild starts a fire-and-forget child workflow on the cascade
// task queue. A start failure is logged and never fails the parent.
func (w *workerCore) startCascadeChild(ctx workflow.Context, workflowID string, wf interface{}, arg string) {
	childWorkflowOptions := workflow.ChildWorkflowOptions{
		WorkflowID:            workflowID,
		WorkflowRunTimeout:    time.Hour,
		TaskQueue:             w.config.CascadeTaskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_ABANDON,
	}
	childCtx := workflow.WithChildOptions(ctx, childWorkflowOptions)

	childWorkflow := workflow.ExecuteChildWorkflow(childCtx, wf, arg)

	var childExecution workflow.Execution
	if err := childWorkflow.GetChildWorkflowExecution().Get(childCtx, &childExecution); err != nil {
		logger.WarnWf(ctx, "failed to start cascade workflow (non-fatal)",
			zap.String("workflow_id", workflowID),
			zap.Error(err))
	} else {
		logger.DebugWf(ctx, "cascade workflow started",
			zap.String("workflow_id", childExecution.ID))
	}
}
