package schema

import (
	"time"
)

// ArtistAudience represents the artist_audience table - one audience data
// point per (artist, platform, date), same overwrite semantics as
// TrackAudience.
type ArtistAudience struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ArtistID is the measured artist
	ArtistID uint64 `gorm:"column:artist_id;not null;uniqueIndex:idx_artist_audience_key"`
	// PlatformID is the platform the value was measured on
	PlatformID uint64 `gorm:"column:platform_id;not null;uniqueIndex:idx_artist_audience_key"`
	// Date is the measurement date
	Date time.Time `gorm:"column:date;not null;type:date;uniqueIndex:idx_artist_audience_key"`
	// Value is the audience metric value for the date
	Value float64 `gorm:"column:value;not null"`
	// CreatedAt is the timestamp when the data point was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ArtistAudience model
func (ArtistAudience) TableName() string {
	return "artist_audience"
}
