package rest

import (
	"time"

	"github.com/wavemetrics/chartsync/internal/store/schema"
)

// CreateScheduleRequest is the body of POST /charts/:id/schedule
type CreateScheduleRequest struct {
	// SyncFrequency overrides the chart's native cadence when set
	SyncFrequency *string `json:"sync_frequency,omitempty"`
	// FetchTrackMetadata enables the metadata/audience cascade
	FetchTrackMetadata bool `json:"fetch_track_metadata"`
	// SyncHistoricalData backfills the lookback horizon instead of only
	// the latest period
	SyncHistoricalData bool `json:"sync_historical_data"`
	// RunNow additionally triggers an immediate execution
	RunNow    bool   `json:"run_now"`
	CreatedBy string `json:"created_by"`
}

// ScheduleResponse is the JSON shape of a sync schedule
type ScheduleResponse struct {
	ID                 uint64     `json:"id"`
	ChartID            uint64     `json:"chart_id"`
	IsActive           bool       `json:"is_active"`
	SyncFrequency      *string    `json:"sync_frequency,omitempty"`
	NextSyncAt         time.Time  `json:"next_sync_at"`
	LastSyncAt         *time.Time `json:"last_sync_at,omitempty"`
	TotalRuns          int        `json:"total_runs"`
	SuccessRuns        int        `json:"success_runs"`
	FailRuns           int        `json:"fail_runs"`
	FetchTrackMetadata bool       `json:"fetch_track_metadata"`
	SyncHistoricalData bool       `json:"sync_historical_data"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ExecutionResponse is the JSON shape of one sync execution
type ExecutionResponse struct {
	ID              uint64     `json:"id"`
	ScheduleID      uint64     `json:"schedule_id"`
	Status          string     `json:"status"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	FinishedAt      *time.Time `json:"finished_at,omitempty"`
	RankingsCreated int        `json:"rankings_created"`
	RankingsUpdated int        `json:"rankings_updated"`
	TracksCreated   int        `json:"tracks_created"`
	TracksUpdated   int        `json:"tracks_updated"`
	EntriesCreated  int        `json:"entries_created"`
	ItemsSkipped    int        `json:"items_skipped"`
	RetryCount      int        `json:"retry_count"`
	MaxRetries      int        `json:"max_retries"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	WorkflowID      string     `json:"workflow_id"`
	WorkflowRunID   *string    `json:"workflow_run_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ListExecutionsResponse is the paginated execution history of a schedule
type ListExecutionsResponse struct {
	Executions []ExecutionResponse `json:"executions"`
	Total      uint64              `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     uint64              `json:"offset"`
}

func toScheduleResponse(s *schema.ChartSyncSchedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:                 s.ID,
		ChartID:            s.ChartID,
		IsActive:           s.IsActive,
		NextSyncAt:         s.NextSyncAt,
		LastSyncAt:         s.LastSyncAt,
		TotalRuns:          s.TotalRuns,
		SuccessRuns:        s.SuccessRuns,
		FailRuns:           s.FailRuns,
		FetchTrackMetadata: s.FetchTrackMetadata,
		SyncHistoricalData: s.SyncHistoricalData,
		CreatedBy:          s.CreatedBy,
		CreatedAt:          s.CreatedAt,
	}
	if s.SyncFrequency != nil {
		freq := string(*s.SyncFrequency)
		resp.SyncFrequency = &freq
	}
	return resp
}

func toExecutionResponse(e *schema.ChartSyncExecution) ExecutionResponse {
	return ExecutionResponse{
		ID:              e.ID,
		ScheduleID:      e.ScheduleID,
		Status:          string(e.Status),
		StartedAt:       e.StartedAt,
		FinishedAt:      e.FinishedAt,
		RankingsCreated: e.RankingsCreated,
		RankingsUpdated: e.RankingsUpdated,
		TracksCreated:   e.TracksCreated,
		TracksUpdated:   e.TracksUpdated,
		EntriesCreated:  e.EntriesCreated,
		ItemsSkipped:    e.ItemsSkipped,
		RetryCount:      e.RetryCount,
		MaxRetries:      e.MaxRetries,
		ErrorMessage:    e.ErrorMessage,
		WorkflowID:      e.WorkflowID,
		WorkflowRunID:   e.WorkflowRunID,
		CreatedAt:       e.CreatedAt,
	}
}
