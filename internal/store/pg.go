package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetChartByID retrieves a chart by its internal ID
func (s *pgStore) GetChartByID(ctx context.Context, chartID uint64) (*schema.Chart, error) {
	var chart schema.Chart
	err := s.db.WithContext(ctx).Where("id = ?", chartID).First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}
	return &chart, nil
}

// GetChartBySlug retrieves a chart by its provider slug
func (s *pgStore) GetChartBySlug(ctx context.Context, slug string) (*schema.Chart, error) {
	var chart schema.Chart
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chart: %w", err)
	}
	return &chart, nil
}

// CreateChart registers a new chart identity
func (s *pgStore) CreateChart(ctx context.Context, chart *schema.Chart) error {
	if err := s.db.WithContext(ctx).Create(chart).Error; err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}
	return nil
}

// ListCharts retrieves all registered charts
func (s *pgStore) ListCharts(ctx context.Context) ([]schema.Chart, error) {
	var charts []schema.Chart
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&charts).Error; err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	return charts, nil
}

// CreateSchedule enables sync for a chart. A chart has at most one schedule,
// so a second enable call reactivates the existing row with the new settings
// instead of creating a duplicate.
func (s *pgStore) CreateSchedule(ctx context.Context, input CreateScheduleInput) (*schema.ChartSyncSchedule, error) {
	var freq *domain.Frequency
	if input.SyncFrequency != nil {
		f := domain.Frequency(*input.SyncFrequency)
		freq = &f
	}

	sched := schema.ChartSyncSchedule{
		ChartID:            input.ChartID,
		IsActive:           true,
		SyncFrequency:      freq,
		NextSyncAt:         input.NextSyncAt,
		FetchTrackMetadata: input.FetchTrackMetadata,
		SyncHistoricalData: input.SyncHistoricalData,
		CreatedBy:          input.CreatedBy,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chart_id"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&sched).Error; err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}

		// ID 0 means the schedule already existed, reactivate it
		if sched.ID == 0 {
			if err := tx.Where("chart_id = ?", input.ChartID).First(&sched).Error; err != nil {
				return fmt.Errorf("failed to get existing schedule: %w", err)
			}

			updates := map[string]interface{}{
				"is_active":            true,
				"sync_frequency":       freq,
				"next_sync_at":         input.NextSyncAt,
				"fetch_track_metadata": input.FetchTrackMetadata,
				"sync_historical_data": input.SyncHistoricalData,
				"updated_at":           time.Now(),
			}
			if err := tx.Model(&sched).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to reactivate schedule: %w", err)
			}
			if err := tx.Where("id = ?", sched.ID).First(&sched).Error; err != nil {
				return fmt.Errorf("failed to reload schedule: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sched, nil
}

// GetScheduleByID retrieves a schedule by its internal ID
func (s *pgStore) GetScheduleByID(ctx context.Context, scheduleID uint64) (*schema.ChartSyncSchedule, error) {
	var sched schema.ChartSyncSchedule
	err := s.db.WithContext(ctx).Where("id = ?", scheduleID).First(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &sched, nil
}

// GetScheduleByChartID retrieves the schedule of a chart
func (s *pgStore) GetScheduleByChartID(ctx context.Context, chartID uint64) (*schema.ChartSyncSchedule, error) {
	var sched schema.ChartSyncSchedule
	err := s.db.WithContext(ctx).Where("chart_id = ?", chartID).First(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &sched, nil
}

// SetScheduleActive activates or deactivates a schedule
func (s *pgStore) SetScheduleActive(ctx context.Context, scheduleID uint64, active bool) error {
	result := s.db.WithContext(ctx).Model(&schema.ChartSyncSchedule{}).
		Where("id = ?", scheduleID).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// ListDueSchedules retrieves active schedules whose next_sync_at has passed
func (s *pgStore) ListDueSchedules(ctx context.Context, now time.Time) ([]schema.ChartSyncSchedule, error) {
	var scheds []schema.ChartSyncSchedule
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND next_sync_at <= ?", true, now).
		Order("next_sync_at ASC").
		Find(&scheds).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due schedules: %w", err)
	}
	return scheds, nil
}

// AdvanceSchedule persists the next cadence slot after a run was handed off
func (s *pgStore) AdvanceSchedule(ctx context.Context, scheduleID uint64, lastSyncAt, nextSyncAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.ChartSyncSchedule{}).
		Where("id = ?", scheduleID).
		Updates(map[string]interface{}{
			"last_sync_at": lastSyncAt,
			"next_sync_at": nextSyncAt,
			"total_runs":   gorm.Expr("total_runs + 1"),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to advance schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// RecordScheduleOutcome bumps the schedule run counters after a terminal execution
func (s *pgStore) RecordScheduleOutcome(ctx context.Context, scheduleID uint64, success bool) error {
	column := "fail_runs"
	if success {
		column = "success_runs"
	}

	result := s.db.WithContext(ctx).Model(&schema.ChartSyncSchedule{}).
		Where("id = ?", scheduleID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column + " + 1"),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record schedule outcome: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

// CreateExecution creates a pending execution for a schedule
func (s *pgStore) CreateExecution(ctx context.Context, scheduleID uint64, workflowID string, maxRetries int) (*schema.ChartSyncExecution, error) {
	exec := schema.ChartSyncExecution{
		ScheduleID: scheduleID,
		Status:     schema.ExecutionStatusPending,
		WorkflowID: workflowID,
		MaxRetries: maxRetries,
	}
	if err := s.db.WithContext(ctx).Create(&exec).Error; err != nil {
		return nil, fmt.Errorf("failed to create execution: %w", err)
	}
	return &exec, nil
}

// GetExecutionByID retrieves an execution by its internal ID
func (s *pgStore) GetExecutionByID(ctx context.Context, executionID uint64) (*schema.ChartSyncExecution, error) {
	var exec schema.ChartSyncExecution
	err := s.db.WithContext(ctx).Where("id = ?", executionID).First(&exec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return &exec, nil
}

// ListExecutionsBySchedule retrieves the execution history of a schedule
func (s *pgStore) ListExecutionsBySchedule(ctx context.Context, scheduleID uint64, limit int, offset uint64) ([]schema.ChartSyncExecution, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ChartSyncExecution{}).Where("schedule_id = ?", scheduleID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count executions: %w", err)
	}

	var execs []schema.ChartSyncExecution
	err := query.Order("id DESC").Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&execs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list executions: %w", err)
	}

	return execs, uint64(total), nil //nolint:gosec,G115
}

// StartExecution transitions pending to running. The status predicate makes
// the transition a guarded compare-and-set: a second worker or a stale retry
// touching the same row gets ErrInvalidTransition instead of clobbering it.
func (s *pgStore) StartExecution(ctx context.Context, executionID uint64, workflowRunID string, now time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.ChartSyncExecution{}).
		Where("id = ? AND status = ?", executionID, schema.ExecutionStatusPending).
		Updates(map[string]interface{}{
			"status":          schema.ExecutionStatusRunning,
			"started_at":      now,
			"workflow_run_id": workflowRunID,
			"updated_at":      now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to start execution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.transitionConflict(ctx, executionID)
	}
	return nil
}

// CompleteExecution transitions running to completed with the aggregate counters
func (s *pgStore) CompleteExecution(ctx context.Context, executionID uint64, counters ExecutionCounters, now time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.ChartSyncExecution{}).
		Where("id = ? AND status = ?", executionID, schema.ExecutionStatusRunning).
		Updates(map[string]interface{}{
			"status":           schema.ExecutionStatusCompleted,
			"finished_at":      now,
			"rankings_created": counters.RankingsCreated,
			"rankings_updated": counters.RankingsUpdated,
			"tracks_created":   counters.TracksCreated,
			"tracks_updated":   counters.TracksUpdated,
			"entries_created":  counters.EntriesCreated,
			"items_skipped":    counters.ItemsSkipped,
			"updated_at":       now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete execution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.transitionConflict(ctx, executionID)
	}
	return nil
}

// FailExecution records a systemic error. MaxRetries is the total attempt
// budget: while a failed attempt leaves room for another one the execution
// goes back to pending with the counter incremented and true is returned;
// the MaxRetries-th failure lands in the terminal failed status.
func (s *pgStore) FailExecution(ctx context.Context, executionID uint64, errorMessage string, now time.Time) (bool, error) {
	var retryable bool

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exec schema.ChartSyncExecution
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", executionID).
			First(&exec).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrExecutionNotFound
			}
			return fmt.Errorf("failed to lock execution: %w", err)
		}

		if exec.Status != schema.ExecutionStatusRunning {
			return fmt.Errorf("%w: cannot fail execution in status %q", domain.ErrInvalidTransition, exec.Status)
		}

		updates := map[string]interface{}{
			"error_message": errorMessage,
			"updated_at":    now,
		}
		if exec.RetryCount+1 < exec.MaxRetries {
			retryable = true
			updates["status"] = schema.ExecutionStatusPending
			updates["retry_count"] = exec.RetryCount + 1
		} else {
			updates["status"] = schema.ExecutionStatusFailed
			updates["finished_at"] = now
		}

		if err := tx.Model(&exec).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to fail execution: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return retryable, nil
}

// CancelExecution transitions any non-terminal state to cancelled
func (s *pgStore) CancelExecution(ctx context.Context, executionID uint64, now time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.ChartSyncExecution{}).
		Where("id = ? AND status IN ?", executionID,
			[]schema.ExecutionStatus{schema.ExecutionStatusPending, schema.ExecutionStatusRunning}).
		Updates(map[string]interface{}{
			"status":      schema.ExecutionStatusCancelled,
			"finished_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to cancel execution: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.transitionConflict(ctx, executionID)
	}
	return nil
}

// transitionConflict distinguishes a missing execution from one whose status
// did not match the transition predicate.
func (s *pgStore) transitionConflict(ctx context.Context, executionID uint64) error {
	exec, err := s.GetExecutionByID(ctx, executionID)
	if err != nil {
		return err
	}
	if exec == nil {
		return domain.ErrExecutionNotFound
	}
	return fmt.Errorf("%w: execution %d is %q", domain.ErrInvalidTransition, executionID, exec.Status)
}

// GetRankingDates retrieves the distinct stored ranking dates of a chart since a cutoff
func (s *pgStore) GetRankingDates(ctx context.Context, chartID uint64, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := s.db.WithContext(ctx).Model(&schema.ChartRanking{}).
		Where("chart_id = ? AND ranking_date >= ?", chartID, since).
		Order("ranking_date ASC").
		Pluck("ranking_date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ranking dates: %w", err)
	}
	return dates, nil
}

// GetLatestRankingDate retrieves the most recent stored ranking date of a chart
func (s *pgStore) GetLatestRankingDate(ctx context.Context, chartID uint64) (*time.Time, error) {
	var ranking schema.ChartRanking
	err := s.db.WithContext(ctx).
		Where("chart_id = ?", chartID).
		Order("ranking_date DESC").
		First(&ranking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest ranking date: %w", err)
	}
	return &ranking.RankingDate, nil
}

// UpsertRanking creates or refreshes the snapshot row for (chart, date).
// The second return value is true when the snapshot is new.
func (s *pgStore) UpsertRanking(ctx context.Context, input UpsertRankingInput) (*schema.ChartRanking, bool, error) {
	ranking := schema.ChartRanking{
		ChartID:           input.ChartID,
		RankingDate:       input.RankingDate,
		EntryCount:        input.EntryCount,
		ProviderTotal:     input.ProviderTotal,
		ProviderFrequency: input.ProviderFrequency,
		RawPayload:        datatypes.JSON(input.RawPayload),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chart_id"}, {Name: "ranking_date"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&ranking).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create ranking: %w", err)
	}

	if ranking.ID != 0 {
		return &ranking, true, nil
	}

	// Snapshot already existed, refresh its metadata
	if err := s.db.WithContext(ctx).
		Where("chart_id = ? AND ranking_date = ?", input.ChartID, input.RankingDate).
		First(&ranking).Error; err != nil {
		return nil, false, fmt.Errorf("failed to get existing ranking: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&ranking).Updates(map[string]interface{}{
		"entry_count":        input.EntryCount,
		"provider_total":     input.ProviderTotal,
		"provider_frequency": input.ProviderFrequency,
		"raw_payload":        datatypes.JSON(input.RawPayload),
		"updated_at":         time.Now(),
	}).Error; err != nil {
		return nil, false, fmt.Errorf("failed to refresh ranking: %w", err)
	}

	return &ranking, false, nil
}

// GetOrCreateTrack resolves a track by provider UUID, creating a minimal row
// if absent. Safe under concurrent writers for the same UUID.
func (s *pgStore) GetOrCreateTrack(ctx context.Context, seed TrackSeed) (*schema.Track, bool, error) {
	track := schema.Track{
		ProviderUUID: seed.ProviderUUID,
		Name:         seed.Name,
		Slug:         seed.Slug,
		CreditName:   seed.CreditName,
		ImageURL:     seed.ImageURL,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_uuid"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&track).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create track: %w", err)
	}

	if track.ID != 0 {
		return &track, true, nil
	}

	if err := s.db.WithContext(ctx).
		Where("provider_uuid = ?", seed.ProviderUUID).
		First(&track).Error; err != nil {
		return nil, false, fmt.Errorf("failed to get existing track: %w", err)
	}

	return &track, false, nil
}

// CreateRankingEntry inserts one position row. An existing (ranking, track)
// pair is left untouched and false is returned, so retried ingests are safe.
func (s *pgStore) CreateRankingEntry(ctx context.Context, entry *schema.ChartRankingEntry) (bool, error) {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ranking_id"}, {Name: "track_id"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(entry).Error; err != nil {
		return false, fmt.Errorf("failed to create ranking entry: %w", err)
	}

	return entry.ID != 0, nil
}

// GetTrackByProviderUUID retrieves a track by its provider UUID
func (s *pgStore) GetTrackByProviderUUID(ctx context.Context, providerUUID string) (*schema.Track, error) {
	var track schema.Track
	err := s.db.WithContext(ctx).Where("provider_uuid = ?", providerUUID).First(&track).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	return &track, nil
}

// GetArtistByProviderUUID retrieves an artist by its provider UUID
func (s *pgStore) GetArtistByProviderUUID(ctx context.Context, providerUUID string) (*schema.Artist, error) {
	var artist schema.Artist
	err := s.db.WithContext(ctx).Where("provider_uuid = ?", providerUUID).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return &artist, nil
}

// GetOrCreateArtist resolves an artist by provider UUID, creating a minimal row if absent
func (s *pgStore) GetOrCreateArtist(ctx context.Context, seed ArtistSeed) (*schema.Artist, bool, error) {
	artist := schema.Artist{
		ProviderUUID: seed.ProviderUUID,
		Name:         seed.Name,
		Slug:         seed.Slug,
		ImageURL:     seed.ImageURL,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider_uuid"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&artist).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create artist: %w", err)
	}

	if artist.ID != 0 {
		return &artist, true, nil
	}

	if err := s.db.WithContext(ctx).
		Where("provider_uuid = ?", seed.ProviderUUID).
		First(&artist).Error; err != nil {
		return nil, false, fmt.Errorf("failed to get existing artist: %w", err)
	}

	return &artist, false, nil
}

// UpdateTrackMetadata applies a metadata fetch result in a single transaction:
// enriched track fields, genre links, artist links and the primary artist
// pointer, plus the staleness marker.
func (s *pgStore) UpdateTrackMetadata(ctx context.Context, input UpdateTrackMetadataInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"metadata_fetched_at": input.FetchedAt,
			"updated_at":          input.FetchedAt,
		}
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if input.Slug != "" {
			updates["slug"] = input.Slug
		}
		if input.CreditName != "" {
			updates["credit_name"] = input.CreditName
		}
		if input.ReleaseDate != nil {
			updates["release_date"] = input.ReleaseDate
		}
		if input.DurationSeconds != nil {
			updates["duration_seconds"] = input.DurationSeconds
		}
		if input.ISRC != nil {
			updates["isrc"] = input.ISRC
		}
		if input.Label != nil {
			updates["label"] = input.Label
		}

		result := tx.Model(&schema.Track{}).Where("id = ?", input.TrackID).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update track: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrTrackNotFound
		}

		genreIDs, err := upsertGenres(tx, input.Genres)
		if err != nil {
			return err
		}
		for _, genreID := range genreIDs {
			link := schema.TrackGenre{TrackID: input.TrackID, GenreID: genreID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link track genre: %w", err)
			}
		}

		var primaryArtistID *uint64
		for _, seed := range input.Artists {
			artist := schema.Artist{
				ProviderUUID: seed.ProviderUUID,
				Name:         seed.Name,
				Slug:         seed.Slug,
				ImageURL:     seed.ImageURL,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "provider_uuid"}},
				DoNothing: true,
			}).Clauses(clause.Returning{Columns: []clause.Column{}}).
				Create(&artist).Error; err != nil {
				return fmt.Errorf("failed to create artist: %w", err)
			}
			if artist.ID == 0 {
				if err := tx.Where("provider_uuid = ?", seed.ProviderUUID).First(&artist).Error; err != nil {
					return fmt.Errorf("failed to get existing artist: %w", err)
				}
			}

			isPrimary := input.PrimaryArtist != nil && *input.PrimaryArtist == seed.ProviderUUID
			if isPrimary {
				id := artist.ID
				primaryArtistID = &id
			}

			link := schema.TrackArtist{
				TrackID:   input.TrackID,
				ArtistID:  artist.ID,
				IsPrimary: isPrimary,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "track_id"}, {Name: "artist_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_primary"}),
			}).Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link track artist: %w", err)
			}
		}

		if primaryArtistID != nil {
			if err := tx.Model(&schema.Track{}).
				Where("id = ?", input.TrackID).
				Update("primary_artist_id", primaryArtistID).Error; err != nil {
				return fmt.Errorf("failed to set primary artist: %w", err)
			}
		}

		return nil
	})
}

// UpdateArtistMetadata applies an artist metadata fetch result
func (s *pgStore) UpdateArtistMetadata(ctx context.Context, input UpdateArtistMetadataInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"metadata_fetched_at": input.FetchedAt,
			"updated_at":          input.FetchedAt,
		}
		if input.Name != "" {
			updates["name"] = input.Name
		}
		if input.Slug != "" {
			updates["slug"] = input.Slug
		}
		if input.Biography != nil {
			updates["biography"] = input.Biography
		}
		if input.CareerStage != nil {
			updates["career_stage"] = input.CareerStage
		}
		if input.CountryCode != nil {
			updates["country_code"] = input.CountryCode
		}

		result := tx.Model(&schema.Artist{}).Where("id = ?", input.ArtistID).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update artist: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrArtistNotFound
		}

		genreIDs, err := upsertGenres(tx, input.Genres)
		if err != nil {
			return err
		}
		for _, genreID := range genreIDs {
			link := schema.ArtistGenre{ArtistID: input.ArtistID, GenreID: genreID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link artist genre: %w", err)
			}
		}

		return nil
	})
}

// upsertGenres resolves root and sub genre rows for the given pairs, creating
// missing nodes, and returns the leaf genre IDs to link.
func upsertGenres(tx *gorm.DB, links []GenreLink) ([]uint64, error) {
	var ids []uint64
	for _, link := range links {
		if link.Root == "" {
			continue
		}

		root, err := getOrCreateGenre(tx, link.Root, nil)
		if err != nil {
			return nil, err
		}

		if link.Sub == "" {
			ids = append(ids, root.ID)
			continue
		}

		sub, err := getOrCreateGenre(tx, link.Sub, &root.ID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, sub.ID)
	}
	return ids, nil
}

func getOrCreateGenre(tx *gorm.DB, name string, parentID *uint64) (*schema.Genre, error) {
	genre := schema.Genre{
		Slug:     domain.Slugify(name),
		Name:     name,
		ParentID: parentID,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&genre).Error; err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	if genre.ID == 0 {
		if err := tx.Where("slug = ?", domain.Slugify(name)).First(&genre).Error; err != nil {
			return nil, fmt.Errorf("failed to get existing genre: %w", err)
		}
	}
	return &genre, nil
}

// GetTrackArtists retrieves the linked artists of a track
func (s *pgStore) GetTrackArtists(ctx context.Context, trackID uint64) ([]schema.Artist, error) {
	var artists []schema.Artist
	err := s.db.WithContext(ctx).
		Joins("JOIN track_artists ON track_artists.artist_id = artists.id").
		Where("track_artists.track_id = ?", trackID).
		Order("artists.id ASC").
		Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get track artists: %w", err)
	}
	return artists, nil
}

// GetPlatformBySlug retrieves exactly one platform by slug. Lookups never
// tolerate zero or multiple matches: slug is the load-bearing unique key.
func (s *pgStore) GetPlatformBySlug(ctx context.Context, slug string) (*schema.Platform, error) {
	var platform schema.Platform
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&platform).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlatformNotFound
		}
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}
	return &platform, nil
}

// GetOrCreatePlatform resolves a platform by slug. The unique index plus
// ON CONFLICT DO NOTHING makes concurrent first-time creates converge on a
// single row.
func (s *pgStore) GetOrCreatePlatform(ctx context.Context, slug, name, category string) (*schema.Platform, error) {
	platform := schema.Platform{
		Slug:     slug,
		Name:     name,
		Category: category,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&platform).Error; err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}

	if platform.ID != 0 {
		return &platform, nil
	}

	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&platform).Error; err != nil {
		return nil, fmt.Errorf("failed to get existing platform: %w", err)
	}

	return &platform, nil
}

// UpsertTrackAudience writes audience points for a track. Re-fetched dates
// overwrite the stored value in place.
func (s *pgStore) UpsertTrackAudience(ctx context.Context, trackID, platformID uint64, points []AudiencePoint) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	rows := make([]schema.TrackAudience, len(points))
	for i, p := range points {
		rows[i] = schema.TrackAudience{
			TrackID:    trackID,
			PlatformID: platformID,
			Date:       p.Date,
			Value:      p.Value,
		}
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "track_id"}, {Name: "platform_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 5)).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert track audience: %w", err)
	}

	return len(rows), nil
}

// UpsertArtistAudience writes audience points for an artist, overwriting same dates
func (s *pgStore) UpsertArtistAudience(ctx context.Context, artistID, platformID uint64, points []AudiencePoint) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}

	rows := make([]schema.ArtistAudience, len(points))
	for i, p := range points {
		rows[i] = schema.ArtistAudience{
			ArtistID:   artistID,
			PlatformID: platformID,
			Date:       p.Date,
			Value:      p.Value,
		}
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "artist_id"}, {Name: "platform_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).CreateInBatches(rows, calculateSafeBatchSize(len(rows), 5)).Error
	if err != nil {
		return 0, fmt.Errorf("failed to upsert artist audience: %w", err)
	}

	return len(rows), nil
}

// calculateSafeBatchSize computes a batch size for bulk inserts that stays
// under PostgreSQL's 65535 extended-protocol parameter limit, with headroom
// for GORM timestamps and ON CONFLICT parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// TouchTrackAudienceFetched stamps the track audience staleness marker
func (s *pgStore) TouchTrackAudienceFetched(ctx context.Context, trackID uint64, fetchedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.Track{}).
		Where("id = ?", trackID).
		Updates(map[string]interface{}{
			"audience_fetched_at": fetchedAt,
			"updated_at":          fetchedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to touch track audience marker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTrackNotFound
	}
	return nil
}

// TouchArtistAudienceFetched stamps the artist audience staleness marker
func (s *pgStore) TouchArtistAudienceFetched(ctx context.Context, artistID uint64, fetchedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.Artist{}).
		Where("id = ?", artistID).
		Updates(map[string]interface{}{
			"audience_fetched_at": fetchedAt,
			"updated_at":          fetchedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to touch artist audience marker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrArtistNotFound
	}
	return nil
}

// SweepChartExits closes out the latest entry of every track that has been
// absent from the chart for at least missedPeriods consecutive snapshots.
// The exit date written is the ranking date of the track's last appearance.
func (s *pgStore) SweepChartExits(ctx context.Context, chartID uint64, missedPeriods int) (int, error) {
	if missedPeriods < 1 {
		missedPeriods = 1
	}

	// The cutoff is the Nth most recent stored snapshot date. A track whose
	// last appearance predates it has missed at least N consecutive periods.
	var cutoffs []time.Time
	err := s.db.WithContext(ctx).Model(&schema.ChartRanking{}).
		Where("chart_id = ?", chartID).
		Order("ranking_date DESC").
		Limit(missedPeriods).
		Pluck("ranking_date", &cutoffs).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get sweep cutoff: %w", err)
	}
	if len(cutoffs) < missedPeriods {
		// Not enough history to declare any track gone
		return 0, nil
	}
	cutoff := cutoffs[missedPeriods-1]

	result := s.db.WithContext(ctx).Exec(`
		UPDATE chart_ranking_entries
		SET exit_date = last.ranking_date
		FROM (
			SELECT DISTINCT ON (e.track_id) e.id, r.ranking_date
			FROM chart_ranking_entries e
			JOIN chart_rankings r ON r.id = e.ranking_id
			WHERE r.chart_id = ?
			ORDER BY e.track_id, r.ranking_date DESC
		) last
		WHERE chart_ranking_entries.id = last.id
			AND chart_ranking_entries.exit_date IS NULL
			AND last.ranking_date < ?
	`, chartID, cutoff)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sweep chart exits: %w", result.Error)
	}

	return int(result.RowsAffected), nil
}
