package schema

import (
	"time"
)

// TrackAudience represents the track_audience table - one audience data
// point per (track, platform, date). Re-fetching the same date overwrites
// the value in place.
type TrackAudience struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TrackID is the measured track
	TrackID uint64 `gorm:"column:track_id;not null;uniqueIndex:idx_track_audience_key"`
	// PlatformID is the platform the value was measured on
	PlatformID uint64 `gorm:"column:platform_id;not null;uniqueIndex:idx_track_audience_key"`
	// Date is the measurement date
	Date time.Time `gorm:"column:date;not null;type:date;uniqueIndex:idx_track_audience_key"`
	// Value is the audience metric value for the date
	Value float64 `gorm:"column:value;not null"`
	// CreatedAt is the timestamp when the data point was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the TrackAudience model
func (TrackAudience) TableName() string {
	return "track_audience"
}
