package schema

import (
	"time"
)

// Platform represents the platforms table. Slug uniqueness is enforced at
// the storage layer: concurrent get-or-create for the same slug must resolve
// to a single row, and every lookup by slug expects exactly one match.
type Platform struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the globally unique platform identifier
	Slug string `gorm:"column:slug;not null;uniqueIndex"`
	// Name is the platform display name
	Name string `gorm:"column:name;not null"`
	// Category groups platforms by fetch strategy
	Category string `gorm:"column:category;not null"`
	// CreatedAt is the timestamp when the platform row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Platform model
func (Platform) TableName() string {
	return "platforms"
}
