package schema

import (
	"time"
)

// ExecutionStatus represents the status of a chart sync execution
type ExecutionStatus string

const (
	// ExecutionStatusPending is the status of an execution created but not yet picked up
	ExecutionStatusPending ExecutionStatus = "pending"
	// ExecutionStatusRunning is the status of an execution a worker is processing
	ExecutionStatusRunning ExecutionStatus = "running"
	// ExecutionStatusCompleted is the status of an execution that ingested all requested periods
	ExecutionStatusCompleted ExecutionStatus = "completed"
	// ExecutionStatusFailed is the status of an execution that hit a systemic error with no retries left
	ExecutionStatusFailed ExecutionStatus = "failed"
	// ExecutionStatusCancelled is the status of an execution explicitly cancelled by an operator
	ExecutionStatusCancelled ExecutionStatus = "cancelled"
)

// Terminal reports whether a status admits no further transitions
func (s ExecutionStatus) Terminal() bool {
	return s == ExecutionStatusCompleted || s == ExecutionStatusFailed || s == ExecutionStatusCancelled
}

// ChartSyncExecution represents the chart_sync_executions table - one row per
// sync attempt. Created by the scheduler, mutated only by the worker running
// that attempt.
type ChartSyncExecution struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ScheduleID is the schedule that owns this execution
	ScheduleID uint64 `gorm:"column:schedule_id;not null;index"`
	// Status tracks the execution state machine
	Status ExecutionStatus `gorm:"column:status;not null;type:text;index"`
	// StartedAt is when the worker picked the execution up
	StartedAt *time.Time `gorm:"column:started_at"`
	// FinishedAt is when the execution reached a terminal status
	FinishedAt *time.Time `gorm:"column:finished_at"`
	// RankingsCreated counts ChartRanking rows created by this attempt
	RankingsCreated int `gorm:"column:rankings_created;not null;default:0"`
	// RankingsUpdated counts ChartRanking rows refreshed by this attempt
	RankingsUpdated int `gorm:"column:rankings_updated;not null;default:0"`
	// TracksCreated counts Track rows created by this attempt
	TracksCreated int `gorm:"column:tracks_created;not null;default:0"`
	// TracksUpdated counts Track rows touched by this attempt
	TracksUpdated int `gorm:"column:tracks_updated;not null;default:0"`
	// EntriesCreated counts ChartRankingEntry rows created by this attempt
	EntriesCreated int `gorm:"column:entries_created;not null;default:0"`
	// ItemsSkipped counts malformed ranking rows skipped by this attempt
	ItemsSkipped int `gorm:"column:items_skipped;not null;default:0"`
	// RetryCount is how many times this execution has been re-queued
	RetryCount int `gorm:"column:retry_count;not null;default:0"`
	// MaxRetries is the total attempt budget across systemic failures
	MaxRetries int `gorm:"column:max_retries;not null;default:3"`
	// ErrorMessage holds the last systemic error for operator visibility
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// WorkflowID is the task-runtime handle processing this execution
	WorkflowID string `gorm:"column:workflow_id;not null;index"`
	// WorkflowRunID is the task-runtime run handle for this attempt
	WorkflowRunID *string `gorm:"column:workflow_run_id"`
	// CreatedAt is the timestamp when the scheduler created the execution
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last status or counter change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ChartSyncExecution model
func (ChartSyncExecution) TableName() string {
	return "chart_sync_executions"
}
