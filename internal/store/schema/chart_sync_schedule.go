package schema

import (
	"time"

	"github.com/wavemetrics/chartsync/internal/domain"
)

// ChartSyncSchedule represents the chart_sync_schedules table - the
// one-per-chart sync configuration. Schedules are never hard-deleted, only
// deactivated, so run counters survive disable/enable cycles.
type ChartSyncSchedule struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChartID is the chart this schedule drives; unique, one schedule per chart
	ChartID uint64 `gorm:"column:chart_id;not null;uniqueIndex"`
	// IsActive gates the scheduler sweep; inactive schedules are never due
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// SyncFrequency overrides the chart frequency when set
	SyncFrequency *domain.Frequency `gorm:"column:sync_frequency;type:text"`
	// NextSyncAt is when the scheduler should next create an execution
	NextSyncAt time.Time `gorm:"column:next_sync_at;not null;index"`
	// LastSyncAt is when the scheduler last dispatched an execution
	LastSyncAt *time.Time `gorm:"column:last_sync_at"`
	// TotalRuns counts every execution ever dispatched for this schedule
	TotalRuns int `gorm:"column:total_runs;not null;default:0"`
	// SuccessRuns counts executions that reached completed
	SuccessRuns int `gorm:"column:success_runs;not null;default:0"`
	// FailRuns counts executions that ended failed
	FailRuns int `gorm:"column:fail_runs;not null;default:0"`
	// FetchTrackMetadata toggles the metadata/audience cascade after ingest
	FetchTrackMetadata bool `gorm:"column:fetch_track_metadata;not null;default:true"`
	// SyncHistoricalData enables backfill over the full lookback horizon;
	// when false only the most recent expected period is requested
	SyncHistoricalData bool `gorm:"column:sync_historical_data;not null;default:false"`
	// CreatedBy references the operator who enabled the sync
	CreatedBy string `gorm:"column:created_by;type:text"`
	// CreatedAt is the timestamp when sync was first enabled
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last scheduler mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Executions []ChartSyncExecution `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ChartSyncSchedule model
func (ChartSyncSchedule) TableName() string {
	return "chart_sync_schedules"
}

// EffectiveFrequency returns the sync frequency, falling back to the chart's
// own frequency when no override is set.
func (s *ChartSyncSchedule) EffectiveFrequency(chartFrequency domain.Frequency) domain.Frequency {
	if s.SyncFrequency != nil {
		return *s.SyncFrequency
	}
	return chartFrequency
}
