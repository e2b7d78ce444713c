package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/periods"
	"github.com/wavemetrics/chartsync/internal/providers/chartdata"
	"github.com/wavemetrics/chartsync/internal/store"
	"github.com/wavemetrics/chartsync/internal/store/schema"
)

// ExecutionContext bundles an execution with its schedule and chart
type ExecutionContext struct {
	Execution schema.ChartSyncExecution
	Schedule  schema.ChartSyncSchedule
	Chart     schema.Chart
}

// IngestInput identifies one (chart, date) period to fetch and ingest
type IngestInput struct {
	ChartID     uint64
	ChartSlug   string
	RankingDate time.Time
}

// IngestResult carries the counters and discovered tracks of one ingested period
type IngestResult struct {
	RankingCreated bool
	TracksCreated  int
	TracksUpdated  int
	EntriesCreated int
	ItemsSkipped   int
	// TrackUUIDs are the distinct provider UUIDs seen in the payload,
	// input for the cascade staleness check
	TrackUUIDs []string
}

// FailResult reports how a systemic failure was recorded
type FailResult struct {
	// Retry is true when the execution went back to pending
	Retry bool
	// RetryCount is the attempt counter after the failure
	RetryCount int
}

// TrackMetadataResult carries the cascade follow-ups of a track metadata fetch
type TrackMetadataResult struct {
	TrackID     uint64
	ArtistUUIDs []string
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// GetExecutionContext loads an execution with its schedule and chart
	GetExecutionContext(ctx context.Context, executionID uint64) (*ExecutionContext, error)

	// StartExecution transitions the execution to running
	StartExecution(ctx context.Context, executionID uint64, workflowRunID string) error

	// ResolveMissingPeriods computes the absent ranking dates for the
	// execution's chart, ascending
	ResolveMissingPeriods(ctx context.Context, executionID uint64) ([]time.Time, error)

	// IngestRanking fetches one period from the provider and upserts it
	IngestRanking(ctx context.Context, input IngestInput) (*IngestResult, error)

	// CompleteExecution transitions the execution to completed with counters
	CompleteExecution(ctx context.Context, executionID uint64, counters store.ExecutionCounters) error

	// FailExecution records a systemic error, re-queueing when retries remain
	FailExecution(ctx context.Context, executionID uint64, errorMessage string) (*FailResult, error)

	// CancelExecution transitions the execution to cancelled
	CancelExecution(ctx context.Context, executionID uint64) error

	// RecordScheduleOutcome bumps the schedule success/fail counters
	RecordScheduleOutcome(ctx context.Context, scheduleID uint64, success bool) error

	// FilterStaleTracks returns the subset of track UUIDs whose metadata is
	// missing or older than the staleness threshold
	FilterStaleTracks(ctx context.Context, trackUUIDs []string) ([]string, error)

	// FetchAndStoreTrackMetadata fetches enriched track metadata and links
	// genres and artists; returns the linked artist UUIDs
	FetchAndStoreTrackMetadata(ctx context.Context, trackUUID string) (*TrackMetadataResult, error)

	// FilterStaleArtists returns the subset of artist UUIDs whose metadata is
	// missing or older than the staleness threshold
	FilterStaleArtists(ctx context.Context, artistUUIDs []string) ([]string, error)

	// FetchAndStoreArtistMetadata fetches and stores enriched artist metadata
	FetchAndStoreArtistMetadata(ctx context.Context, artistUUID string) error

	// FetchTrackAudienceSeries fetches one platform's audience series for a
	// track, batching the provider's maximum span; returns stored points
	FetchTrackAudienceSeries(ctx context.Context, trackUUID, platformSlug string) (int, error)

	// FetchArtistAudienceSeries fetches one platform's audience series for an
	// artist; returns stored points
	FetchArtistAudienceSeries(ctx context.Context, artistUUID, platformSlug string) (int, error)

	// MarkTrackAudienceFetched stamps the track audience staleness marker
	MarkTrackAudienceFetched(ctx context.Context, trackUUID string) error

	// MarkArtistAudienceFetched stamps the artist audience staleness marker
	MarkArtistAudienceFetched(ctx context.Context, artistUUID string) error
}

// ExecutorConfig holds the activity-side tuning knobs
type ExecutorConfig struct {
	// StalenessThreshold is the age past which metadata is refetched
	StalenessThreshold time.Duration
	// LookbackWindow is the historical horizon, converted to whole chart
	// periods per frequency at resolve time
	LookbackWindow time.Duration
	// AudienceWindowDays is the audience span requested per entity
	AudienceWindowDays int
}

// executor is the concrete implementation of Executor
type executor struct {
	config   ExecutorConfig
	store    store.Store
	provider chartdata.Client
	clock    adapter.Clock
	json     adapter.JSON
}

// NewExecutor creates a new executor instance
func NewExecutor(st store.Store, provider chartdata.Client, clock adapter.Clock, json adapter.JSON, config ExecutorConfig) Executor {
	if config.StalenessThreshold <= 0 {
		config.StalenessThreshold = 30 * 24 * time.Hour
	}
	if config.LookbackWindow <= 0 {
		config.LookbackWindow = 365 * 24 * time.Hour
	}
	if config.AudienceWindowDays <= 0 {
		config.AudienceWindowDays = chartdata.MaxAudienceSpanDays
	}
	return &executor{
		config:   config,
		store:    st,
		provider: provider,
		clock:    clock,
		json:     json,
	}
}

// GetExecutionContext loads an execution with its schedule and chart
func (e *executor) GetExecutionContext(ctx context.Context, executionID uint64) (*ExecutionContext, error) {
	exec, err := e.store.GetExecutionByID(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if exec == nil {
		return nil, domain.ErrExecutionNotFound
	}

	sched, err := e.store.GetScheduleByID(ctx, exec.ScheduleID)
	if err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, domain.ErrScheduleNotFound
	}

	chart, err := e.store.GetChartByID(ctx, sched.ChartID)
	if err != nil {
		return nil, err
	}
	if chart == nil {
		return nil, domain.ErrChartNotFound
	}

	return &ExecutionContext{
		Execution: *exec,
		Schedule:  *sched,
		Chart:     *chart,
	}, nil
}

// StartExecution transitions the execution to running
func (e *executor) StartExecution(ctx context.Context, executionID uint64, workflowRunID string) error {
	return e.store.StartExecution(ctx, executionID, workflowRunID, e.clock.Now())
}

// ResolveMissingPeriods computes the absent ranking dates for the execution's chart
func (e *executor) ResolveMissingPeriods(ctx context.Context, executionID uint64) ([]time.Time, error) {
	ec, err := e.GetExecutionContext(ctx, executionID)
	if err != nil {
		return nil, err
	}

	freq := ec.Schedule.EffectiveFrequency(ec.Chart.Frequency)
	weekday := time.Weekday(ec.Chart.Weekday)
	now := e.clock.Now()

	horizon := periods.HorizonPeriods(freq, e.config.LookbackWindow)
	since := now
	for range horizon + 1 {
		since = freq.Previous(since)
	}

	existing, err := e.store.GetRankingDates(ctx, ec.Chart.ID, since)
	if err != nil {
		return nil, err
	}

	missing := periods.Missing(freq, weekday, now, horizon, ec.Schedule.SyncHistoricalData, existing)
	logger.InfoCtx(ctx, "resolved missing periods",
		zap.Uint64("execution_id", executionID),
		zap.String("chart", ec.Chart.Slug),
		zap.Int("missing", len(missing)),
		zap.Int("existing", len(existing)))

	return missing, nil
}

// IngestRanking fetches one period from the provider and upserts it.
// A malformed item is logged, counted and skipped; only a failed period
// fetch or snapshot upsert surfaces as an error.
func (e *executor) IngestRanking(ctx context.Context, input IngestInput) (*IngestResult, error) {
	payload, err := e.provider.FetchRanking(ctx, input.ChartSlug, input.RankingDate)
	if err != nil {
		return nil, fmt.Errorf("period fetch failed: %w", err)
	}

	rawPayload, err := e.json.Marshal(payload)
	if err != nil {
		// Retention only; the typed payload is still usable
		logger.WarnCtx(ctx, "failed to re-encode provider payload",
			zap.String("chart", input.ChartSlug),
			zap.Error(err))
		rawPayload = nil
	}

	ranking, created, err := e.store.UpsertRanking(ctx, store.UpsertRankingInput{
		ChartID:           input.ChartID,
		RankingDate:       input.RankingDate,
		ProviderTotal:     payload.Total,
		ProviderFrequency: payload.Frequency,
		EntryCount:        len(payload.Items),
		RawPayload:        rawPayload,
	})
	if err != nil {
		return nil, err
	}

	result := &IngestResult{RankingCreated: created}
	seen := make(map[string]struct{}, len(payload.Items))

	for _, item := range payload.Items {
		if !domain.ValidProviderUUID(item.Track.UUID) {
			logger.WarnCtx(ctx, "skipping ranking item with malformed track uuid",
				zap.String("chart", input.ChartSlug),
				zap.Int("position", item.Position),
				zap.String("uuid", item.Track.UUID))
			result.ItemsSkipped++
			continue
		}

		entryDate, err := parseProviderDate(item.EntryDate)
		if item.EntryDate != "" && err != nil {
			logger.WarnCtx(ctx, "skipping ranking item with unparseable entry date",
				zap.String("chart", input.ChartSlug),
				zap.String("track_uuid", item.Track.UUID),
				zap.String("entry_date", item.EntryDate))
			result.ItemsSkipped++
			continue
		}

		track, trackCreated, err := e.store.GetOrCreateTrack(ctx, store.TrackSeed{
			ProviderUUID: item.Track.UUID,
			Name:         item.Track.Name,
			Slug:         item.Track.Slug,
			CreditName:   item.Track.CreditName,
			ImageURL:     item.Track.ImageURL,
		})
		if err != nil {
			return nil, err
		}
		if trackCreated {
			result.TracksCreated++
		} else {
			result.TracksUpdated++
		}

		entryCreated, err := e.store.CreateRankingEntry(ctx, &schema.ChartRankingEntry{
			RankingID:        ranking.ID,
			TrackID:          track.ID,
			Position:         item.Position,
			PreviousPosition: item.OldPosition,
			PositionDelta:    item.PositionEvolution,
			PeakPosition:     item.PeakPosition,
			WeeksOnChart:     item.TimeOnChart,
			MetricValue:      item.Metric,
			EntryDate:        entryDate,
		})
		if err != nil {
			return nil, err
		}
		if entryCreated {
			result.EntriesCreated++
		}

		if _, ok := seen[item.Track.UUID]; !ok {
			seen[item.Track.UUID] = struct{}{}
			result.TrackUUIDs = append(result.TrackUUIDs, item.Track.UUID)
		}
	}

	return result, nil
}

// parseProviderDate parses a provider wire date, returning nil for empty input
func parseProviderDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(chartdata.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteExecution transitions the execution to completed with counters
func (e *executor) CompleteExecution(ctx context.Context, executionID uint64, counters store.ExecutionCounters) error {
	return e.store.CompleteExecution(ctx, executionID, counters, e.clock.Now())
}

// FailExecution records a systemic error, re-queueing when retries remain
func (e *executor) FailExecution(ctx context.Context, executionID uint64, errorMessage string) (*FailResult, error) {
	retry, err := e.store.FailExecution(ctx, executionID, errorMessage, e.clock.Now())
	if err != nil {
		return nil, err
	}

	exec, err := e.store.GetExecutionByID(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if exec == nil {
		return nil, domain.ErrExecutionNotFound
	}

	return &FailResult{Retry: retry, RetryCount: exec.RetryCount}, nil
}

// CancelExecution transitions the execution to cancelled
func (e *executor) CancelExecution(ctx context.Context, executionID uint64) error {
	err := e.store.CancelExecution(ctx, executionID, e.clock.Now())
	if errors.Is(err, domain.ErrInvalidTransition) {
		// Already terminal, nothing to retract
		return nil
	}
	return err
}

// RecordScheduleOutcome bumps the schedule success/fail counters
func (e *executor) RecordScheduleOutcome(ctx context.Context, scheduleID uint64, success bool) error {
	return e.store.RecordScheduleOutcome(ctx, scheduleID, success)
}

// FilterStaleTracks returns the track UUIDs whose metadata is missing or stale
func (e *executor) FilterStaleTracks(ctx context.Context, trackUUIDs []string) ([]string, error) {
	cutoff := e.clock.Now().Add(-e.config.StalenessThreshold)

	var stale []string
	for _, uuid := range trackUUIDs {
		track, err := e.store.GetTrackByProviderUUID(ctx, uuid)
		if err != nil {
			return nil, err
		}
		if track == nil {
			continue
		}
		if track.MetadataFetchedAt == nil || track.MetadataFetchedAt.Before(cutoff) {
			stale = append(stale, uuid)
		}
	}
	return stale, nil
}

// FetchAndStoreTrackMetadata fetches enriched track metadata and links genres and artists
func (e *executor) FetchAndStoreTrackMetadata(ctx context.Context, trackUUID string) (*TrackMetadataResult, error) {
	track, err := e.store.GetTrackByProviderUUID(ctx, trackUUID)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, domain.ErrTrackNotFound
	}

	metadata, err := e.provider.FetchTrackMetadata(ctx, trackUUID)
	if err != nil {
		return nil, err
	}

	input := store.UpdateTrackMetadataInput{
		TrackID:    track.ID,
		Name:       metadata.Name,
		Slug:       metadata.Slug,
		CreditName: metadata.CreditName,
		ISRC:       metadata.ISRC,
		Label:      metadata.Label,
		FetchedAt:  e.clock.Now(),
	}

	if metadata.ReleaseDate != nil {
		releaseDate, err := parseProviderDate(*metadata.ReleaseDate)
		if err != nil {
			// A bad release date does not void the rest of the payload
			logger.WarnCtx(ctx, "ignoring unparseable release date",
				zap.String("track_uuid", trackUUID),
				zap.String("release_date", *metadata.ReleaseDate))
		} else {
			input.ReleaseDate = releaseDate
		}
	}
	if metadata.Duration != nil {
		input.DurationSeconds = metadata.Duration
	}

	for _, g := range metadata.Genres {
		input.Genres = append(input.Genres, store.GenreLink{Root: g.Root, Sub: g.Sub})
	}

	var artistUUIDs []string
	for _, a := range metadata.Artists {
		if !domain.ValidProviderUUID(a.UUID) {
			logger.WarnCtx(ctx, "skipping artist with malformed uuid",
				zap.String("track_uuid", trackUUID),
				zap.String("artist_uuid", a.UUID))
			continue
		}
		input.Artists = append(input.Artists, store.ArtistSeed{
			ProviderUUID: a.UUID,
			Name:         a.Name,
			Slug:         a.Slug,
			ImageURL:     a.ImageURL,
		})
		artistUUIDs = append(artistUUIDs, a.UUID)
	}

	// Provider convention: the first credited artist is the primary one
	if len(input.Artists) > 0 {
		input.PrimaryArtist = &input.Artists[0].ProviderUUID
	}

	if err := e.store.UpdateTrackMetadata(ctx, input); err != nil {
		return nil, err
	}

	return &TrackMetadataResult{TrackID: track.ID, ArtistUUIDs: artistUUIDs}, nil
}

// FilterStaleArtists returns the artist UUIDs whose metadata is missing or stale
func (e *executor) FilterStaleArtists(ctx context.Context, artistUUIDs []string) ([]string, error) {
	cutoff := e.clock.Now().Add(-e.config.StalenessThreshold)

	var stale []string
	for _, uuid := range artistUUIDs {
		artist, err := e.store.GetArtistByProviderUUID(ctx, uuid)
		if err != nil {
			return nil, err
		}
		if artist == nil {
			continue
		}
		if artist.MetadataFetchedAt == nil || artist.MetadataFetchedAt.Before(cutoff) {
			stale = append(stale, uuid)
		}
	}
	return stale, nil
}

// FetchAndStoreArtistMetadata fetches and stores enriched artist metadata
func (e *executor) FetchAndStoreArtistMetadata(ctx context.Context, artistUUID string) error {
	artist, err := e.store.GetArtistByProviderUUID(ctx, artistUUID)
	if err != nil {
		return err
	}
	if artist == nil {
		return domain.ErrArtistNotFound
	}

	metadata, err := e.provider.FetchArtistMetadata(ctx, artistUUID)
	if err != nil {
		return err
	}

	input := store.UpdateArtistMetadataInput{
		ArtistID:    artist.ID,
		Name:        metadata.Name,
		Slug:        metadata.Slug,
		Biography:   metadata.Biography,
		CareerStage: metadata.CareerStage,
		CountryCode: metadata.CountryCode,
		FetchedAt:   e.clock.Now(),
	}
	for _, g := range metadata.Genres {
		input.Genres = append(input.Genres, store.GenreLink{Root: g.Root, Sub: g.Sub})
	}

	return e.store.UpdateArtistMetadata(ctx, input)
}

// FetchTrackAudienceSeries fetches one platform's audience series for a track
func (e *executor) FetchTrackAudienceSeries(ctx context.Context, trackUUID, platformSlug string) (int, error) {
	track, err := e.store.GetTrackByProviderUUID(ctx, trackUUID)
	if err != nil {
		return 0, err
	}
	if track == nil {
		return 0, domain.ErrTrackNotFound
	}

	platform, err := e.resolvePlatform(ctx, platformSlug)
	if err != nil {
		return 0, err
	}

	total := 0
	err = e.forEachAudienceBatch(ctx, chartdata.EntityKindTrack, trackUUID, platformSlug, func(points []store.AudiencePoint) error {
		stored, err := e.store.UpsertTrackAudience(ctx, track.ID, platform.ID, points)
		total += stored
		return err
	})
	if err != nil {
		return total, err
	}

	return total, nil
}

// FetchArtistAudienceSeries fetches one platform's audience series for an artist
func (e *executor) FetchArtistAudienceSeries(ctx context.Context, artistUUID, platformSlug string) (int, error) {
	artist, err := e.store.GetArtistByProviderUUID(ctx, artistUUID)
	if err != nil {
		return 0, err
	}
	if artist == nil {
		return 0, domain.ErrArtistNotFound
	}

	platform, err := e.resolvePlatform(ctx, platformSlug)
	if err != nil {
		return 0, err
	}

	total := 0
	err = e.forEachAudienceBatch(ctx, chartdata.EntityKindArtist, artistUUID, platformSlug, func(points []store.AudiencePoint) error {
		stored, err := e.store.UpsertArtistAudience(ctx, artist.ID, platform.ID, points)
		total += stored
		return err
	})
	if err != nil {
		return total, err
	}

	return total, nil
}

// resolvePlatform maps a slug onto the stored platform row, creating it from
// the fixed platform set on first use
func (e *executor) resolvePlatform(ctx context.Context, slug string) (*schema.Platform, error) {
	spec, ok := domain.LookupPlatform(slug)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrPlatformNotFound, slug)
	}
	return e.store.GetOrCreatePlatform(ctx, spec.Slug, spec.Name, string(spec.Category))
}

// forEachAudienceBatch walks the configured audience window in spans the
// provider accepts and hands each fetched batch to the store callback
func (e *executor) forEachAudienceBatch(ctx context.Context, kind chartdata.EntityKind, entityUUID, platformSlug string, storeBatch func([]store.AudiencePoint) error) error {
	end := e.clock.Now()
	start := end.AddDate(0, 0, -e.config.AudienceWindowDays)

	for batchStart := start; batchStart.Before(end); {
		batchEnd := batchStart.AddDate(0, 0, chartdata.MaxAudienceSpanDays)
		if batchEnd.After(end) {
			batchEnd = end
		}

		points, err := e.provider.FetchAudience(ctx, kind, entityUUID, platformSlug, batchStart, batchEnd)
		if err != nil {
			return err
		}

		batch := make([]store.AudiencePoint, 0, len(points))
		for _, p := range points {
			date, err := time.Parse(chartdata.DateLayout, p.Date)
			if err != nil {
				logger.WarnCtx(ctx, "skipping audience point with unparseable date",
					zap.String("entity_uuid", entityUUID),
					zap.String("platform", platformSlug),
					zap.String("date", p.Date))
				continue
			}
			batch = append(batch, store.AudiencePoint{Date: date, Value: p.Value})
		}

		if err := storeBatch(batch); err != nil {
			return err
		}

		batchStart = batchEnd
	}

	return nil
}

// MarkTrackAudienceFetched stamps the track audience staleness marker
func (e *executor) MarkTrackAudienceFetched(ctx context.Context, trackUUID string) error {
	track, err := e.store.GetTrackByProviderUUID(ctx, trackUUID)
	if err != nil {
		return err
	}
	if track == nil {
		return domain.ErrTrackNotFound
	}
	return e.store.TouchTrackAudienceFetched(ctx, track.ID, e.clock.Now())
}

// MarkArtistAudienceFetched stamps the artist audience staleness marker
func (e *executor) MarkArtistAudienceFetched(ctx context.Context, artistUUID string) error {
	artist, err := e.store.GetArtistByProviderUUID(ctx, artistUUID)
	if err != nil {
		return err
	}
	if artist == nil {
		return domain.ErrArtistNotFound
	}
	return e.store.TouchArtistAudienceFetched(ctx, artist.ID, e.clock.Now())
}
