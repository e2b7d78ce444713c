package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/wavemetrics/chartsync/internal/api/middleware"
	"github.com/wavemetrics/chartsync/internal/api/rest"
	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/mocks"
	"github.com/wavemetrics/chartsync/internal/store"
	"github.com/wavemetrics/chartsync/internal/store/schema"
)

const testAPIKey = "test-api-key"

// testHandlerMocks contains all the mocks needed for testing the REST handlers
type testHandlerMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	router       *gin.Engine
}

// setupTestHandler wires the handler into a test router with API key auth
func setupTestHandler(t *testing.T) *testHandlerMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}

	handler := rest.NewHandler(rest.HandlerConfig{
		SyncTaskQueue:       "test-sync-queue",
		ExecutionMaxRetries: 3,
	}, tm.store, tm.clock, tm.orchestrator)

	tm.router = gin.New()
	rest.SetupRoutes(tm.router, handler, middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})

	return tm
}

func tearDownTestHandler(tm *testHandlerMocks) {
	tm.ctrl.Finish()
}

// doRequest performs an authenticated request against the test router
func doRequest(tm *testHandlerMocks, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func testChart() *schema.Chart {
	return &schema.Chart{
		ID:        3,
		Slug:      "spotify-top-200-it",
		Name:      "Top 200 Italy",
		Frequency: domain.FrequencyWeekly,
		Weekday:   int(time.Friday),
	}
}

func testSchedule() *schema.ChartSyncSchedule {
	return &schema.ChartSyncSchedule{
		ID:                 7,
		ChartID:            3,
		IsActive:           true,
		NextSyncAt:         time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		FetchTrackMetadata: true,
		CreatedBy:          "ops@wavemetrics.io",
	}
}

// =============================================================================
// CreateSchedule
// =============================================================================

func TestCreateSchedule_Success(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(3)).
		Return(testChart(), nil)

	tm.store.EXPECT().
		CreateSchedule(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input store.CreateScheduleInput) (*schema.ChartSyncSchedule, error) {
			assert.Equal(t, uint64(3), input.ChartID)
			assert.True(t, input.FetchTrackMetadata)
			assert.True(t, input.SyncHistoricalData)
			assert.Equal(t, "ops@wavemetrics.io", input.CreatedBy)
			// New schedules are due immediately
			assert.Equal(t, now, input.NextSyncAt)
			return testSchedule(), nil
		})

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/schedule", rest.CreateScheduleRequest{
		FetchTrackMetadata: true,
		SyncHistoricalData: true,
		CreatedBy:          "ops@wavemetrics.io",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp rest.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.ID)
	assert.Equal(t, uint64(3), resp.ChartID)
	assert.True(t, resp.IsActive)
}

func TestCreateSchedule_RunNowDispatchesExecution(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(3)).
		Return(testChart(), nil)
	tm.store.EXPECT().
		CreateSchedule(gomock.Any(), gomock.Any()).
		Return(testSchedule(), nil)

	tm.store.EXPECT().
		CreateExecution(gomock.Any(), uint64(7), gomock.Any(), 3).
		Return(&schema.ChartSyncExecution{
			ID:         42,
			ScheduleID: 7,
			Status:     schema.ExecutionStatusPending,
		}, nil)

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			uint64(42),
		).
		Return(client.WorkflowRun(nil), nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/schedule", rest.CreateScheduleRequest{
		FetchTrackMetadata: true,
		RunNow:             true,
		CreatedBy:          "ops@wavemetrics.io",
	})

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateSchedule_InvalidFrequency(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	freq := "fortnightly"
	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/schedule", rest.CreateScheduleRequest{
		SyncFrequency: &freq,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fortnightly")
}

func TestCreateSchedule_ChartNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(999)).
		Return(nil, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/999/schedule", rest.CreateScheduleRequest{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSchedule_InvalidID(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/abc/schedule", rest.CreateScheduleRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSchedule_Unauthorized(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	raw, _ := json.Marshal(rest.CreateScheduleRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/charts/3/schedule", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =============================================================================
// DeleteSchedule
// =============================================================================

func TestDeleteSchedule_Success(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetScheduleByChartID(gomock.Any(), uint64(3)).
		Return(testSchedule(), nil)
	tm.store.EXPECT().
		SetScheduleActive(gomock.Any(), uint64(7), false).
		Return(nil)

	w := doRequest(tm, http.MethodDelete, "/api/v1/charts/3/schedule", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteSchedule_NoSchedule(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetScheduleByChartID(gomock.Any(), uint64(3)).
		Return(nil, nil)

	w := doRequest(tm, http.MethodDelete, "/api/v1/charts/3/schedule", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// TriggerSync
// =============================================================================

func TestTriggerSync_Success(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(3)).
		Return(testChart(), nil)
	tm.store.EXPECT().
		GetScheduleByChartID(gomock.Any(), uint64(3)).
		Return(testSchedule(), nil)

	tm.store.EXPECT().
		CreateExecution(gomock.Any(), uint64(7), gomock.Any(), 3).
		DoAndReturn(func(_ interface{}, _ uint64, workflowID string, _ int) (*schema.ChartSyncExecution, error) {
			assert.Contains(t, workflowID, "chart-sync-spotify-top-200-it-")
			return &schema.ChartSyncExecution{
				ID:         42,
				ScheduleID: 7,
				Status:     schema.ExecutionStatusPending,
				WorkflowID: workflowID,
			}, nil
		})

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			uint64(42),
		).
		Return(client.WorkflowRun(nil), nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/sync", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp rest.ExecutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.ID)
	assert.Equal(t, string(schema.ExecutionStatusPending), resp.Status)
}

func TestTriggerSync_NoSchedule(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(3)).
		Return(testChart(), nil)
	tm.store.EXPECT().
		GetScheduleByChartID(gomock.Any(), uint64(3)).
		Return(nil, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/sync", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggerSync_WorkflowStartFailure(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	tm.store.EXPECT().
		GetChartByID(gomock.Any(), uint64(3)).
		Return(testChart(), nil)
	tm.store.EXPECT().
		GetScheduleByChartID(gomock.Any(), uint64(3)).
		Return(testSchedule(), nil)
	tm.store.EXPECT().
		CreateExecution(gomock.Any(), uint64(7), gomock.Any(), 3).
		Return(&schema.ChartSyncExecution{
			ID:         42,
			ScheduleID: 7,
			Status:     schema.ExecutionStatusPending,
		}, nil)

	tm.orchestrator.EXPECT().
		ExecuteWorkflow(
			gomock.Any(),
			gomock.Any(),
			gomock.Any(),
			uint64(42),
		).
		Return(client.WorkflowRun(nil), errors.New("task queue unavailable"))

	// The never-started execution is voided
	tm.store.EXPECT().
		CancelExecution(gomock.Any(), uint64(42), now).
		Return(nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/charts/3/sync", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// =============================================================================
// ListExecutions
// =============================================================================

func TestListExecutions_Pagination(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetScheduleByID(gomock.Any(), uint64(7)).
		Return(testSchedule(), nil)

	started := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	tm.store.EXPECT().
		ListExecutionsBySchedule(gomock.Any(), uint64(7), 2, uint64(4)).
		Return([]schema.ChartSyncExecution{
			{ID: 42, ScheduleID: 7, Status: schema.ExecutionStatusCompleted, StartedAt: &started},
			{ID: 41, ScheduleID: 7, Status: schema.ExecutionStatusFailed},
		}, uint64(9), nil)

	w := doRequest(tm, http.MethodGet, "/api/v1/schedules/7/executions?limit=2&offset=4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.ListExecutionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(9), resp.Total)
	assert.Equal(t, 2, resp.Limit)
	assert.Equal(t, uint64(4), resp.Offset)
	require.Len(t, resp.Executions, 2)
	assert.Equal(t, uint64(42), resp.Executions[0].ID)
	assert.Equal(t, "completed", resp.Executions[0].Status)
}

func TestListExecutions_LimitClamped(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetScheduleByID(gomock.Any(), uint64(7)).
		Return(testSchedule(), nil)

	// Requests above the cap are clamped, not rejected
	tm.store.EXPECT().
		ListExecutionsBySchedule(gomock.Any(), uint64(7), 100, uint64(0)).
		Return([]schema.ChartSyncExecution{}, uint64(0), nil)

	w := doRequest(tm, http.MethodGet, "/api/v1/schedules/7/executions?limit=5000", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListExecutions_InvalidLimit(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doRequest(tm, http.MethodGet, "/api/v1/schedules/7/executions?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListExecutions_ScheduleNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetScheduleByID(gomock.Any(), uint64(999)).
		Return(nil, nil)

	w := doRequest(tm, http.MethodGet, "/api/v1/schedules/999/executions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// CancelExecution
// =============================================================================

func TestCancelExecution_Success(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	runID := "run-1"
	running := &schema.ChartSyncExecution{
		ID:            42,
		ScheduleID:    7,
		Status:        schema.ExecutionStatusRunning,
		WorkflowID:    "chart-sync-spotify-top-200-it-01ABC",
		WorkflowRunID: &runID,
	}
	cancelled := &schema.ChartSyncExecution{
		ID:         42,
		ScheduleID: 7,
		Status:     schema.ExecutionStatusCancelled,
		FinishedAt: &now,
	}

	gomock.InOrder(
		tm.store.EXPECT().
			GetExecutionByID(gomock.Any(), uint64(42)).
			Return(running, nil),
		tm.orchestrator.EXPECT().
			CancelWorkflow(gomock.Any(), running.WorkflowID, runID).
			Return(nil),
		tm.store.EXPECT().
			CancelExecution(gomock.Any(), uint64(42), now).
			Return(nil),
		tm.store.EXPECT().
			GetExecutionByID(gomock.Any(), uint64(42)).
			Return(cancelled, nil),
	)

	w := doRequest(tm, http.MethodPost, "/api/v1/executions/42/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp rest.ExecutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancelExecution_SignalFailureStillCancels(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()

	pending := &schema.ChartSyncExecution{
		ID:         42,
		ScheduleID: 7,
		Status:     schema.ExecutionStatusPending,
		WorkflowID: "chart-sync-spotify-top-200-it-01ABC",
	}
	cancelled := &schema.ChartSyncExecution{
		ID:         42,
		ScheduleID: 7,
		Status:     schema.ExecutionStatusCancelled,
	}

	gomock.InOrder(
		tm.store.EXPECT().
			GetExecutionByID(gomock.Any(), uint64(42)).
			Return(pending, nil),
		tm.orchestrator.EXPECT().
			CancelWorkflow(gomock.Any(), pending.WorkflowID, "").
			Return(errors.New("workflow not found")),
		tm.store.EXPECT().
			CancelExecution(gomock.Any(), uint64(42), now).
			Return(nil),
		tm.store.EXPECT().
			GetExecutionByID(gomock.Any(), uint64(42)).
			Return(cancelled, nil),
	)

	w := doRequest(tm, http.MethodPost, "/api/v1/executions/42/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelExecution_AlreadyTerminal(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetExecutionByID(gomock.Any(), uint64(42)).
		Return(&schema.ChartSyncExecution{
			ID:     42,
			Status: schema.ExecutionStatusCompleted,
		}, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/executions/42/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "completed")
}

func TestCancelExecution_NotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.store.EXPECT().
		GetExecutionByID(gomock.Any(), uint64(999)).
		Return(nil, nil)

	w := doRequest(tm, http.MethodPost, "/api/v1/executions/999/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =============================================================================
// HealthCheck
// =============================================================================

func TestHealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.clock.EXPECT().Now().Return(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}
