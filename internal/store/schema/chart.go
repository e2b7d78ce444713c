package schema

import (
	"time"

	"github.com/wavemetrics/chartsync/internal/domain"
)

// Chart represents the charts table - one periodic ranking published by a
// platform for a country. Chart identity is immutable; only sync state
// (carried by ChartSyncSchedule) changes over time.
type Chart struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the provider's stable chart identifier (e.g. "spotify-top-200-it")
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// Name is the display name reported by the provider
	Name string `gorm:"column:name;not null;type:text"`
	// PlatformSlug identifies the platform hosting the chart
	PlatformSlug string `gorm:"column:platform_slug;not null;type:text;index"`
	// CountryCode is the ISO 3166-1 alpha-2 country of the chart
	CountryCode string `gorm:"column:country_code;not null;type:text"`
	// Frequency drives the period math (daily, weekly, monthly)
	Frequency domain.Frequency `gorm:"column:frequency;not null;type:text"`
	// Weekday is the canonical publication weekday for weekly charts
	// (0 = Sunday, matching time.Weekday)
	Weekday int `gorm:"column:weekday;not null;default:0"`
	// CreatedAt is the timestamp when this chart was first registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`

	// Associations
	Rankings []ChartRanking     `gorm:"foreignKey:ChartID;constraint:OnDelete:CASCADE"`
	Schedule *ChartSyncSchedule `gorm:"foreignKey:ChartID"`
}

// TableName specifies the table name for the Chart model
func (Chart) TableName() string {
	return "charts"
}
