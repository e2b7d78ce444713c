package schema

import (
	"time"
)

// Track represents the tracks table - a canonical track keyed by the
// provider's stable UUID. Minimal fields are set at creation from ranking
// payloads; the rest is populated by the metadata fetch.
type Track struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProviderUUID is the provider's stable identifier for the track
	ProviderUUID string `gorm:"column:provider_uuid;not null;uniqueIndex"`
	// Name is the track display name
	Name string `gorm:"column:name;not null"`
	// Slug is the provider URL slug of the track
	Slug string `gorm:"column:slug"`
	// CreditName is the display credit line, often multiple artists
	CreditName string `gorm:"column:credit_name"`
	// ImageURL is the track artwork URL
	ImageURL string `gorm:"column:image_url"`
	// ReleaseDate is populated by the metadata fetch
	ReleaseDate *time.Time `gorm:"column:release_date;type:date"`
	// DurationSeconds is populated by the metadata fetch
	DurationSeconds *int `gorm:"column:duration_seconds"`
	// ISRC is the international recording code, populated by the metadata fetch
	ISRC *string `gorm:"column:isrc"`
	// Label is the record label, populated by the metadata fetch
	Label *string `gorm:"column:label"`
	// PrimaryArtistID points at the main credited artist
	PrimaryArtistID *uint64 `gorm:"column:primary_artist_id"`
	// MetadataFetchedAt marks when enriched metadata was last fetched
	MetadataFetchedAt *time.Time `gorm:"column:metadata_fetched_at;index"`
	// AudienceFetchedAt marks when audience series were last fetched
	AudienceFetchedAt *time.Time `gorm:"column:audience_fetched_at"`
	// CreatedAt is the timestamp when the track row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Artists are all credited artists of the track
	Artists []Artist `gorm:"many2many:track_artists"`
	// Genres are the linked genre nodes of the track
	Genres []Genre `gorm:"many2many:track_genres"`
}

// TableName specifies the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}

// TrackArtist represents the track_artists join table. Kept as an explicit
// model so the primary flag can be written without raw SQL.
type TrackArtist struct {
	// TrackID is the linked track
	TrackID uint64 `gorm:"column:track_id;primaryKey"`
	// ArtistID is the linked artist
	ArtistID uint64 `gorm:"column:artist_id;primaryKey"`
	// IsPrimary marks the main credited artist of the track
	IsPrimary bool `gorm:"column:is_primary;not null;default:false"`
}

// TableName specifies the table name for the TrackArtist model
func (TrackArtist) TableName() string {
	return "track_artists"
}
