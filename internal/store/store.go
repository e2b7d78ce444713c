package store

import (
	"context"
	"time"

	"github.com/wavemetrics/chartsync/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// CreateScheduleInput holds the fields for enabling sync on a chart
type CreateScheduleInput struct {
	ChartID            uint64
	SyncFrequency      *string
	FetchTrackMetadata bool
	SyncHistoricalData bool
	CreatedBy          string
	NextSyncAt         time.Time
}

// ExecutionCounters aggregates the per-attempt ingest counters
type ExecutionCounters struct {
	RankingsCreated int
	RankingsUpdated int
	TracksCreated   int
	TracksUpdated   int
	EntriesCreated  int
	ItemsSkipped    int
}

// UpsertRankingInput holds the snapshot-level fields of one fetched period
type UpsertRankingInput struct {
	ChartID           uint64
	RankingDate       time.Time
	ProviderTotal     int
	ProviderFrequency string
	EntryCount        int
	RawPayload        []byte
}

// TrackSeed holds the minimal track fields available in a ranking payload
type TrackSeed struct {
	ProviderUUID string
	Name         string
	Slug         string
	CreditName   string
	ImageURL     string
}

// ArtistSeed holds the minimal artist fields available in track metadata
type ArtistSeed struct {
	ProviderUUID string
	Name         string
	Slug         string
	ImageURL     string
}

// GenreLink names one root/sub genre pair from a metadata payload
type GenreLink struct {
	Root string
	Sub  string
}

// UpdateTrackMetadataInput holds the enriched fields of a track metadata fetch
type UpdateTrackMetadataInput struct {
	TrackID         uint64
	Name            string
	Slug            string
	CreditName      string
	ReleaseDate     *time.Time
	DurationSeconds *int
	ISRC            *string
	Label           *string
	Genres          []GenreLink
	Artists         []ArtistSeed
	PrimaryArtist   *string
	FetchedAt       time.Time
}

// UpdateArtistMetadataInput holds the enriched fields of an artist metadata fetch
type UpdateArtistMetadataInput struct {
	ArtistID    uint64
	Name        string
	Slug        string
	Biography   *string
	CareerStage *string
	CountryCode *string
	Genres      []GenreLink
	FetchedAt   time.Time
}

// AudiencePoint is one dated value of an audience series
type AudiencePoint struct {
	Date  time.Time
	Value float64
}

// Store defines the interface for database operations
type Store interface {
	// GetChartByID retrieves a chart by its internal ID
	GetChartByID(ctx context.Context, chartID uint64) (*schema.Chart, error)
	// GetChartBySlug retrieves a chart by its provider slug
	GetChartBySlug(ctx context.Context, slug string) (*schema.Chart, error)
	// CreateChart registers a new chart identity
	CreateChart(ctx context.Context, chart *schema.Chart) error
	// ListCharts retrieves all registered charts
	ListCharts(ctx context.Context) ([]schema.Chart, error)

	// CreateSchedule enables sync for a chart, one schedule per chart
	CreateSchedule(ctx context.Context, input CreateScheduleInput) (*schema.ChartSyncSchedule, error)
	// GetScheduleByID retrieves a schedule by its internal ID
	GetScheduleByID(ctx context.Context, scheduleID uint64) (*schema.ChartSyncSchedule, error)
	// GetScheduleByChartID retrieves the schedule of a chart
	GetScheduleByChartID(ctx context.Context, chartID uint64) (*schema.ChartSyncSchedule, error)
	// SetScheduleActive activates or deactivates a schedule
	SetScheduleActive(ctx context.Context, scheduleID uint64, active bool) error
	// ListDueSchedules retrieves active schedules whose next_sync_at has passed
	ListDueSchedules(ctx context.Context, now time.Time) ([]schema.ChartSyncSchedule, error)
	// AdvanceSchedule persists the next cadence slot after a run was handed off
	AdvanceSchedule(ctx context.Context, scheduleID uint64, lastSyncAt, nextSyncAt time.Time) error
	// RecordScheduleOutcome bumps the schedule run counters after a terminal execution
	RecordScheduleOutcome(ctx context.Context, scheduleID uint64, success bool) error

	// CreateExecution creates a pending execution for a schedule
	CreateExecution(ctx context.Context, scheduleID uint64, workflowID string, maxRetries int) (*schema.ChartSyncExecution, error)
	// GetExecutionByID retrieves an execution by its internal ID
	GetExecutionByID(ctx context.Context, executionID uint64) (*schema.ChartSyncExecution, error)
	// ListExecutionsBySchedule retrieves the execution history of a schedule
	ListExecutionsBySchedule(ctx context.Context, scheduleID uint64, limit int, offset uint64) ([]schema.ChartSyncExecution, uint64, error)
	// StartExecution transitions pending to running, recording the start timestamp
	StartExecution(ctx context.Context, executionID uint64, workflowRunID string, now time.Time) error
	// CompleteExecution transitions running to completed with the aggregate counters
	CompleteExecution(ctx context.Context, executionID uint64, counters ExecutionCounters, now time.Time) error
	// FailExecution records a systemic error; returns true if the attempt
	// budget (MaxRetries total attempts) still has room for another run
	FailExecution(ctx context.Context, executionID uint64, errorMessage string, now time.Time) (bool, error)
	// CancelExecution transitions any non-terminal state to cancelled
	CancelExecution(ctx context.Context, executionID uint64, now time.Time) error

	// GetRankingDates retrieves the distinct stored ranking dates of a chart since a cutoff
	GetRankingDates(ctx context.Context, chartID uint64, since time.Time) ([]time.Time, error)
	// GetLatestRankingDate retrieves the most recent stored ranking date of a chart
	GetLatestRankingDate(ctx context.Context, chartID uint64) (*time.Time, error)
	// UpsertRanking creates or refreshes the snapshot row for (chart, date)
	UpsertRanking(ctx context.Context, input UpsertRankingInput) (*schema.ChartRanking, bool, error)
	// GetOrCreateTrack resolves a track by provider UUID, creating a minimal row if absent
	GetOrCreateTrack(ctx context.Context, seed TrackSeed) (*schema.Track, bool, error)
	// CreateRankingEntry inserts one position row, skipping an existing (ranking, track) pair
	CreateRankingEntry(ctx context.Context, entry *schema.ChartRankingEntry) (bool, error)

	// GetTrackByProviderUUID retrieves a track by its provider UUID
	GetTrackByProviderUUID(ctx context.Context, providerUUID string) (*schema.Track, error)
	// GetArtistByProviderUUID retrieves an artist by its provider UUID
	GetArtistByProviderUUID(ctx context.Context, providerUUID string) (*schema.Artist, error)
	// GetOrCreateArtist resolves an artist by provider UUID, creating a minimal row if absent
	GetOrCreateArtist(ctx context.Context, seed ArtistSeed) (*schema.Artist, bool, error)
	// UpdateTrackMetadata applies a metadata fetch result, linking genres and artists
	UpdateTrackMetadata(ctx context.Context, input UpdateTrackMetadataInput) error
	// UpdateArtistMetadata applies an artist metadata fetch result
	UpdateArtistMetadata(ctx context.Context, input UpdateArtistMetadataInput) error
	// GetTrackArtists retrieves the linked artists of a track
	GetTrackArtists(ctx context.Context, trackID uint64) ([]schema.Artist, error)

	// GetPlatformBySlug retrieves exactly one platform by slug
	GetPlatformBySlug(ctx context.Context, slug string) (*schema.Platform, error)
	// GetOrCreatePlatform resolves a platform by slug atomically under concurrent writers
	GetOrCreatePlatform(ctx context.Context, slug, name, category string) (*schema.Platform, error)

	// UpsertTrackAudience writes audience points for a track, overwriting same dates
	UpsertTrackAudience(ctx context.Context, trackID, platformID uint64, points []AudiencePoint) (int, error)
	// UpsertArtistAudience writes audience points for an artist, overwriting same dates
	UpsertArtistAudience(ctx context.Context, artistID, platformID uint64, points []AudiencePoint) (int, error)
	// TouchTrackAudienceFetched stamps the track audience staleness marker
	TouchTrackAudienceFetched(ctx context.Context, trackID uint64, fetchedAt time.Time) error
	// TouchArtistAudienceFetched stamps the artist audience staleness marker
	TouchArtistAudienceFetched(ctx context.Context, artistID uint64, fetchedAt time.Time) error

	// SweepChartExits closes out entries of tracks absent for the given number of periods
	SweepChartExits(ctx context.Context, chartID uint64, missedPeriods int) (int, error)
}
