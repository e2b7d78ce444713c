package schema

import (
	"time"
)

// Artist represents the artists table - a canonical artist keyed by the
// provider's stable UUID.
type Artist struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProviderUUID is the provider's stable identifier for the artist
	ProviderUUID string `gorm:"column:provider_uuid;not null;uniqueIndex"`
	// Name is the artist display name
	Name string `gorm:"column:name;not null"`
	// Slug is the provider URL slug of the artist
	Slug string `gorm:"column:slug"`
	// ImageURL is the artist image URL
	ImageURL string `gorm:"column:image_url"`
	// Biography is populated by the metadata fetch
	Biography *string `gorm:"column:biography;type:text"`
	// CareerStage is the provider's career classification
	CareerStage *string `gorm:"column:career_stage"`
	// CountryCode is the artist home country, ISO 3166-1 alpha-2
	CountryCode *string `gorm:"column:country_code"`
	// MetadataFetchedAt marks when enriched metadata was last fetched
	MetadataFetchedAt *time.Time `gorm:"column:metadata_fetched_at;index"`
	// AudienceFetchedAt marks when audience series were last fetched
	AudienceFetchedAt *time.Time `gorm:"column:audience_fetched_at"`
	// CreatedAt is the timestamp when the artist row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Genres are the linked genre nodes of the artist
	Genres []Genre `gorm:"many2many:artist_genres"`
}

// TableName specifies the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}
