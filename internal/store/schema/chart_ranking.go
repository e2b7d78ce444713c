package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ChartRanking represents the chart_rankings table - one snapshot of a chart
// for one ranking date. The (chart_id, ranking_date) pair is unique so
// re-ingesting a period refreshes entries instead of duplicating the snapshot.
type ChartRanking struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ChartID is the chart this snapshot belongs to
	ChartID uint64 `gorm:"column:chart_id;not null;uniqueIndex:idx_chart_rankings_chart_date"`
	// RankingDate is the canonical period date of the snapshot
	RankingDate time.Time `gorm:"column:ranking_date;not null;type:date;uniqueIndex:idx_chart_rankings_chart_date"`
	// EntryCount is the number of positions captured in this snapshot
	EntryCount int `gorm:"column:entry_count;not null;default:0"`
	// ProviderTotal is the total entry count reported by the provider
	ProviderTotal int `gorm:"column:provider_total;not null;default:0"`
	// ProviderFrequency is the frequency string reported by the provider
	ProviderFrequency string `gorm:"column:provider_frequency"`
	// RawPayload retains the provider response verbatim for replay and audit
	RawPayload datatypes.JSON `gorm:"column:raw_payload;type:jsonb"`
	// CreatedAt is the timestamp when the snapshot row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last ingest touching this snapshot
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Entries are the ranked positions of this snapshot
	Entries []ChartRankingEntry `gorm:"foreignKey:RankingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ChartRanking model
func (ChartRanking) TableName() string {
	return "chart_rankings"
}
