package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/providers/temporal"
	"github.com/wavemetrics/chartsync/internal/store"
	"github.com/wavemetrics/chartsync/internal/store/schema"
	"github.com/wavemetrics/chartsync/internal/workflows"
)

const (
	defaultExecutionsLimit = 20
	maxExecutionsLimit     = 100
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateSchedule enables sync for a chart, optionally running immediately
	// POST /api/v1/charts/:id/schedule
	CreateSchedule(c *gin.Context)

	// DeleteSchedule deactivates a chart's schedule
	// DELETE /api/v1/charts/:id/schedule
	DeleteSchedule(c *gin.Context)

	// TriggerSync starts a one-off execution outside the schedule cadence
	// POST /api/v1/charts/:id/sync
	TriggerSync(c *gin.Context)

	// ListExecutions retrieves the execution history of a schedule
	// GET /api/v1/schedules/:id/executions?limit=<limit>&offset=<offset>
	ListExecutions(c *gin.Context)

	// CancelExecution cancels a pending or running execution
	// POST /api/v1/executions/:id/cancel
	CancelExecution(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// HandlerConfig holds dispatch settings for handler-triggered executions
type HandlerConfig struct {
	SyncTaskQueue       string
	ExecutionMaxRetries int
}

// handler implements the Handler interface
type handler struct {
	config       HandlerConfig
	store        store.Store
	clock        adapter.Clock
	orchestrator temporal.TemporalOrchestrator
}

// NewHandler creates a new REST API handler
func NewHandler(cfg HandlerConfig, st store.Store, clock adapter.Clock, orchestrator temporal.TemporalOrchestrator) Handler {
	return &handler{
		config:       cfg,
		store:        st,
		clock:        clock,
		orchestrator: orchestrator,
	}
}

// CreateSchedule enables sync for a chart
func (h *handler) CreateSchedule(c *gin.Context) {
	chartID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.SyncFrequency != nil && !domain.IsValidFrequency(domain.Frequency(*req.SyncFrequency)) {
		respondBadRequest(c, fmt.Sprintf("Invalid sync frequency: %q", *req.SyncFrequency))
		return
	}

	ctx := c.Request.Context()
	chart, err := h.store.GetChartByID(ctx, chartID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if chart == nil {
		respondNotFound(c, "Chart not found")
		return
	}

	schedule, err := h.store.CreateSchedule(ctx, store.CreateScheduleInput{
		ChartID:            chartID,
		SyncFrequency:      req.SyncFrequency,
		FetchTrackMetadata: req.FetchTrackMetadata,
		SyncHistoricalData: req.SyncHistoricalData,
		CreatedBy:          req.CreatedBy,
		// Due immediately so the next scheduler sweep picks it up
		NextSyncAt: h.clock.Now(),
	})
	if err != nil {
		respondInternalError(c, err)
		return
	}

	if req.RunNow {
		if _, err := h.dispatchExecution(c, chart, schedule); err != nil {
			return
		}
	}

	c.JSON(http.StatusCreated, toScheduleResponse(schedule))
}

// DeleteSchedule deactivates a chart's schedule
func (h *handler) DeleteSchedule(c *gin.Context) {
	chartID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	schedule, err := h.store.GetScheduleByChartID(ctx, chartID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if schedule == nil {
		respondNotFound(c, "Chart has no sync schedule")
		return
	}

	if err := h.store.SetScheduleActive(ctx, schedule.ID, false); err != nil {
		respondInternalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// TriggerSync starts a one-off execution outside the schedule cadence
func (h *handler) TriggerSync(c *gin.Context) {
	chartID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	chart, err := h.store.GetChartByID(ctx, chartID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if chart == nil {
		respondNotFound(c, "Chart not found")
		return
	}

	schedule, err := h.store.GetScheduleByChartID(ctx, chartID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if schedule == nil {
		respondNotFound(c, "Chart has no sync schedule", "create a schedule before triggering a run")
		return
	}

	execution, err := h.dispatchExecution(c, chart, schedule)
	if err != nil {
		return
	}

	c.JSON(http.StatusAccepted, toExecutionResponse(execution))
}

// ListExecutions retrieves the execution history of a schedule
func (h *handler) ListExecutions(c *gin.Context) {
	scheduleID, ok := parseIDParam(c)
	if !ok {
		return
	}

	limit := defaultExecutionsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit parameter")
			return
		}
		limit = min(parsed, maxExecutionsLimit)
	}

	var offset uint64
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondBadRequest(c, "Invalid offset parameter")
			return
		}
		offset = parsed
	}

	ctx := c.Request.Context()
	schedule, err := h.store.GetScheduleByID(ctx, scheduleID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if schedule == nil {
		respondNotFound(c, "Schedule not found")
		return
	}

	executions, total, err := h.store.ListExecutionsBySchedule(ctx, scheduleID, limit, offset)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	resp := ListExecutionsResponse{
		Executions: make([]ExecutionResponse, 0, len(executions)),
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}
	for i := range executions {
		resp.Executions = append(resp.Executions, toExecutionResponse(&executions[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// CancelExecution cancels a pending or running execution
func (h *handler) CancelExecution(c *gin.Context) {
	executionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	execution, err := h.store.GetExecutionByID(ctx, executionID)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if execution == nil {
		respondNotFound(c, "Execution not found")
		return
	}
	if execution.Status.Terminal() {
		respondConflict(c, fmt.Sprintf("Execution is already %s", execution.Status))
		return
	}

	// Stop the workflow first so it cannot race the status update. A
	// cancel signal failing is tolerable; the workflow's own cleanup
	// converges on the same state.
	runID := ""
	if execution.WorkflowRunID != nil {
		runID = *execution.WorkflowRunID
	}
	if err := h.orchestrator.CancelWorkflow(ctx, execution.WorkflowID, runID); err != nil {
		logger.Warn("Failed to signal workflow cancellation",
			zap.Uint64("execution_id", executionID),
			zap.String("workflow_id", execution.WorkflowID),
			zap.Error(err),
		)
	}

	if err := h.store.CancelExecution(ctx, executionID, h.clock.Now()); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			respondConflict(c, "Execution already reached a terminal state")
			return
		}
		respondInternalError(c, err)
		return
	}

	execution, err = h.store.GetExecutionByID(ctx, executionID)
	if err != nil || execution == nil {
		respondInternalError(c, fmt.Errorf("failed to reload cancelled execution: %w", err))
		return
	}

	c.JSON(http.StatusOK, toExecutionResponse(execution))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   h.clock.Now().UTC(),
	})
}

// dispatchExecution creates a pending execution and starts its workflow.
// On failure it writes the error response and returns a non-nil error.
func (h *handler) dispatchExecution(c *gin.Context, chart *schema.Chart, schedule *schema.ChartSyncSchedule) (*schema.ChartSyncExecution, error) {
	ctx := c.Request.Context()
	now := h.clock.Now()
	workflowID := fmt.Sprintf("chart-sync-%s-%s", chart.Slug, ulid.MustNewDefault(now).String())

	execution, err := h.store.CreateExecution(ctx, schedule.ID, workflowID, h.config.ExecutionMaxRetries)
	if err != nil {
		respondInternalError(c, err)
		return nil, err
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:                    workflowID,
		TaskQueue:             h.config.SyncTaskQueue,
		WorkflowRunTimeout:    2 * time.Hour,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	workflowRun, err := h.orchestrator.ExecuteWorkflow(ctx, workflowOptions, w.SyncChart, execution.ID)
	if err != nil {
		if cancelErr := h.store.CancelExecution(ctx, execution.ID, h.clock.Now()); cancelErr != nil {
			logger.Error(cancelErr, zap.Uint64("execution_id", execution.ID))
		}
		respondInternalError(c, fmt.Errorf("failed to start chart sync workflow: %w", err))
		return nil, err
	}

	if workflowRun != nil {
		logger.Info("Chart sync workflow started",
			zap.String("chart", chart.Slug),
			zap.Uint64("execution_id", execution.ID),
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("run_id", workflowRun.GetRunID()),
		)
	}

	return execution, nil
}

// parseIDParam parses the :id path parameter, writing a 400 on failure
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, "Invalid id parameter")
		return 0, false
	}
	return id, true
}
