package schema

import (
	"time"
)

// Genre represents the genres table - a two-level genre tree. Root genres
// have a nil ParentID, sub genres point at their root.
type Genre struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the unique genre identifier
	Slug string `gorm:"column:slug;not null;uniqueIndex"`
	// Name is the genre display name
	Name string `gorm:"column:name;not null"`
	// ParentID is the root genre for sub-genres, nil for roots
	ParentID *uint64 `gorm:"column:parent_id;index"`
	// CreatedAt is the timestamp when the genre row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Genre model
func (Genre) TableName() string {
	return "genres"
}

// TrackGenre represents the track_genres join table
type TrackGenre struct {
	// TrackID is the linked track
	TrackID uint64 `gorm:"column:track_id;primaryKey"`
	// GenreID is the linked genre node
	GenreID uint64 `gorm:"column:genre_id;primaryKey"`
}

// TableName specifies the table name for the TrackGenre model
func (TrackGenre) TableName() string {
	return "track_genres"
}

// ArtistGenre represents the artist_genres join table
type ArtistGenre struct {
	// ArtistID is the linked artist
	ArtistID uint64 `gorm:"column:artist_id;primaryKey"`
	// GenreID is the linked genre node
	GenreID uint64 `gorm:"column:genre_id;primaryKey"`
}

// TableName specifies the table name for the ArtistGenre model
func (ArtistGenre) TableName() string {
	return "artist_genres"
}
