package schema

import (
	"time"
)

// ChartRankingEntry represents the chart_ranking_entries table - one ranked
// position inside a snapshot. A track appears at most once per snapshot.
type ChartRankingEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RankingID is the snapshot this entry belongs to
	RankingID uint64 `gorm:"column:ranking_id;not null;uniqueIndex:idx_ranking_entries_ranking_track"`
	// TrackID is the ranked track
	TrackID uint64 `gorm:"column:track_id;not null;uniqueIndex:idx_ranking_entries_ranking_track;index"`
	// Position is the 1-based chart position
	Position int `gorm:"column:position;not null"`
	// PreviousPosition is the position on the prior period, nil for new entries
	PreviousPosition *int `gorm:"column:previous_position"`
	// PositionDelta is position movement relative to the prior period
	PositionDelta *int `gorm:"column:position_delta"`
	// PeakPosition is the best position as reported by the provider
	PeakPosition *int `gorm:"column:peak_position"`
	// WeeksOnChart is how many periods the track has charted, as reported
	WeeksOnChart *int `gorm:"column:weeks_on_chart"`
	// MetricValue is the raw provider metric backing the position (streams, plays)
	MetricValue *float64 `gorm:"column:metric_value"`
	// EntryDate is the first-seen date reported verbatim by the provider
	EntryDate *time.Time `gorm:"column:entry_date;type:date"`
	// ExitDate is set by the exit sweep once the track has been absent long enough
	ExitDate *time.Time `gorm:"column:exit_date;type:date"`
	// CreatedAt is the timestamp when the entry row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Track is the ranked track record
	Track *Track `gorm:"foreignKey:TrackID"`
}

// TableName specifies the table name for the ChartRankingEntry model
func (ChartRankingEntry) TableName() string {
	return "chart_ranking_entries"
}
