package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// buildTestChart creates a weekly chart published on Fridays
func buildTestChart(slug string) *schema.Chart {
	return &schema.Chart{
		Slug:         slug,
		Name:         "Top 200 Italy",
		PlatformSlug: "spotify",
		CountryCode:  "IT",
		Frequency:    domain.FrequencyWeekly,
		Weekday:      int(time.Friday),
	}
}

// createTestChart registers a chart and fails the test on error
func createTestChart(t *testing.T, s Store, slug string) *schema.Chart {
	chart := buildTestChart(slug)
	require.NoError(t, s.CreateChart(context.Background(), chart))
	require.NotZero(t, chart.ID)
	return chart
}

// createTestSchedule enables sync on a chart with default settings
func createTestSchedule(t *testing.T, s Store, chartID uint64) *schema.ChartSyncSchedule {
	sched, err := s.CreateSchedule(context.Background(), CreateScheduleInput{
		ChartID:            chartID,
		FetchTrackMetadata: true,
		CreatedBy:          "ops@wavemetrics.io",
		NextSyncAt:         day(2026, 9, 4),
	})
	require.NoError(t, err)
	require.NotZero(t, sched.ID)
	return sched
}

// createTestRanking stores a snapshot and one entry per given track ID
func createTestRanking(t *testing.T, s Store, chartID uint64, date time.Time, trackIDs ...uint64) *schema.ChartRanking {
	ctx := context.Background()
	ranking, _, err := s.UpsertRanking(ctx, UpsertRankingInput{
		ChartID:           chartID,
		RankingDate:       date,
		ProviderTotal:     len(trackIDs),
		ProviderFrequency: "weekly",
		EntryCount:        len(trackIDs),
	})
	require.NoError(t, err)

	for i, trackID := range trackIDs {
		created, err := s.CreateRankingEntry(ctx, &schema.ChartRankingEntry{
			RankingID: ranking.ID,
			TrackID:   trackID,
			Position:  i + 1,
		})
		require.NoError(t, err)
		require.True(t, created)
	}
	return ranking
}

// rawDB exposes the underlying gorm handle for assertions on state the Store
// interface has no read path for
func rawDB(t *testing.T, s Store) *gorm.DB {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "store is not a pgStore")
	return pg.db
}

func sameDate(t *testing.T, expected, actual time.Time) {
	assert.Equal(t, expected.Format("2006-01-02"), actual.Format("2006-01-02"))
}

// =============================================================================
// Charts
// =============================================================================

func testCharts(t *testing.T, s Store) {
	ctx := context.Background()

	chart := createTestChart(t, s, "spotify-top-200-it")

	byID, err := s.GetChartByID(ctx, chart.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "spotify-top-200-it", byID.Slug)
	assert.Equal(t, "IT", byID.CountryCode)
	assert.Equal(t, domain.FrequencyWeekly, byID.Frequency)
	assert.Equal(t, int(time.Friday), byID.Weekday)

	bySlug, err := s.GetChartBySlug(ctx, "spotify-top-200-it")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, chart.ID, bySlug.ID)

	missing, err := s.GetChartBySlug(ctx, "no-such-chart")
	require.NoError(t, err)
	assert.Nil(t, missing)

	charts, err := s.ListCharts(ctx)
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

// =============================================================================
// Schedules
// =============================================================================

func testCreateSchedule(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")

	sched, err := s.CreateSchedule(ctx, CreateScheduleInput{
		ChartID:            chart.ID,
		SyncFrequency:      strPtr("daily"),
		FetchTrackMetadata: true,
		SyncHistoricalData: true,
		CreatedBy:          "ops@wavemetrics.io",
		NextSyncAt:         day(2026, 9, 4),
	})
	require.NoError(t, err)
	require.NotZero(t, sched.ID)
	assert.True(t, sched.IsActive)
	require.NotNil(t, sched.SyncFrequency)
	assert.Equal(t, domain.FrequencyDaily, *sched.SyncFrequency)
	assert.True(t, sched.FetchTrackMetadata)
	assert.True(t, sched.SyncHistoricalData)
	assert.Equal(t, "ops@wavemetrics.io", sched.CreatedBy)

	require.NoError(t, s.SetScheduleActive(ctx, sched.ID, false))

	// Enabling sync again reuses the existing row and reactivates it
	again, err := s.CreateSchedule(ctx, CreateScheduleInput{
		ChartID:            chart.ID,
		FetchTrackMetadata: false,
		SyncHistoricalData: false,
		CreatedBy:          "ops@wavemetrics.io",
		NextSyncAt:         day(2026, 9, 11),
	})
	require.NoError(t, err)
	assert.Equal(t, sched.ID, again.ID)
	assert.True(t, again.IsActive)
	assert.Nil(t, again.SyncFrequency)
	assert.False(t, again.FetchTrackMetadata)
	assert.False(t, again.SyncHistoricalData)
	sameDate(t, day(2026, 9, 11), again.NextSyncAt)

	byChart, err := s.GetScheduleByChartID(ctx, chart.ID)
	require.NoError(t, err)
	require.NotNil(t, byChart)
	assert.Equal(t, sched.ID, byChart.ID)

	missing, err := s.GetScheduleByChartID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testSetScheduleActive(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	require.NoError(t, s.SetScheduleActive(ctx, sched.ID, false))

	got, err := s.GetScheduleByID(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)

	err = s.SetScheduleActive(ctx, 999999, true)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func testListDueSchedules(t *testing.T, s Store) {
	ctx := context.Background()
	now := day(2026, 8, 30)

	dueChart := createTestChart(t, s, "spotify-top-200-it")
	due, err := s.CreateSchedule(ctx, CreateScheduleInput{
		ChartID: dueChart.ID, NextSyncAt: now.Add(-time.Hour), CreatedBy: "ops",
	})
	require.NoError(t, err)

	futureChart := createTestChart(t, s, "apple-music-top-100-de")
	_, err = s.CreateSchedule(ctx, CreateScheduleInput{
		ChartID: futureChart.ID, NextSyncAt: now.Add(time.Hour), CreatedBy: "ops",
	})
	require.NoError(t, err)

	inactiveChart := createTestChart(t, s, "youtube-trending-fr")
	inactive, err := s.CreateSchedule(ctx, CreateScheduleInput{
		ChartID: inactiveChart.ID, NextSyncAt: now.Add(-time.Hour), CreatedBy: "ops",
	})
	require.NoError(t, err)
	require.NoError(t, s.SetScheduleActive(ctx, inactive.ID, false))

	scheds, err := s.ListDueSchedules(ctx, now)
	require.NoError(t, err)
	require.Len(t, scheds, 1)
	assert.Equal(t, due.ID, scheds[0].ID)
}

func testAdvanceSchedule(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	last := day(2026, 8, 28)
	next := day(2026, 9, 4)
	require.NoError(t, s.AdvanceSchedule(ctx, sched.ID, last, next))

	got, err := s.GetScheduleByID(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TotalRuns)
	require.NotNil(t, got.LastSyncAt)
	require.WithinDuration(t, last, *got.LastSyncAt, time.Second)
	require.WithinDuration(t, next, got.NextSyncAt, time.Second)

	require.NoError(t, s.AdvanceSchedule(ctx, sched.ID, next, day(2026, 9, 11)))
	got, err = s.GetScheduleByID(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalRuns)

	err = s.AdvanceSchedule(ctx, 999999, last, next)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func testRecordScheduleOutcome(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	require.NoError(t, s.RecordScheduleOutcome(ctx, sched.ID, true))
	require.NoError(t, s.RecordScheduleOutcome(ctx, sched.ID, true))
	require.NoError(t, s.RecordScheduleOutcome(ctx, sched.ID, false))

	got, err := s.GetScheduleByID(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SuccessRuns)
	assert.Equal(t, 1, got.FailRuns)

	err = s.RecordScheduleOutcome(ctx, 999999, true)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

// =============================================================================
// Executions
// =============================================================================

func testExecutionLifecycle(t *testing.T, s Store) {
	ctx := context.Background()
	now := day(2026, 8, 30)
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	exec, err := s.CreateExecution(ctx, sched.ID, "chart-sync-1", 3)
	require.NoError(t, err)
	require.NotZero(t, exec.ID)
	assert.Equal(t, schema.ExecutionStatusPending, exec.Status)
	assert.Equal(t, 3, exec.MaxRetries)
	assert.Equal(t, "chart-sync-1", exec.WorkflowID)

	missing, err := s.GetExecutionByID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.StartExecution(ctx, exec.ID, "run-1", now))
	got, err := s.GetExecutionByID(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ExecutionStatusRunning, got.Status)
	require.NotNil(t, got.StartedAt)
	require.NotNil(t, got.WorkflowRunID)
	assert.Equal(t, "run-1", *got.WorkflowRunID)

	// Starting a running execution is a guarded no-op
	err = s.StartExecution(ctx, exec.ID, "run-2", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	counters := ExecutionCounters{
		RankingsCreated: 3,
		RankingsUpdated: 1,
		TracksCreated:   12,
		TracksUpdated:   4,
		EntriesCreated:  600,
		ItemsSkipped:    2,
	}
	require.NoError(t, s.CompleteExecution(ctx, exec.ID, counters, now))
	got, err = s.GetExecutionByID(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ExecutionStatusCompleted, got.Status)
	require.NotNil(t, got.FinishedAt)
	assert.Equal(t, 3, got.RankingsCreated)
	assert.Equal(t, 1, got.RankingsUpdated)
	assert.Equal(t, 12, got.TracksCreated)
	assert.Equal(t, 4, got.TracksUpdated)
	assert.Equal(t, 600, got.EntriesCreated)
	assert.Equal(t, 2, got.ItemsSkipped)

	err = s.CompleteExecution(ctx, exec.ID, counters, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = s.StartExecution(ctx, 999999, "run-x", now)
	assert.ErrorIs(t, err, domain.ErrExecutionNotFound)
}

func testFailExecutionRetries(t *testing.T, s Store) {
	ctx := context.Background()
	now := day(2026, 8, 30)
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	// Default budget of 3 means three attempts in total
	exec, err := s.CreateExecution(ctx, sched.ID, "chart-sync-1", 3)
	require.NoError(t, err)

	// The first two failures leave room in the budget and requeue as pending
	for attempt := 1; attempt <= 2; attempt++ {
		require.NoError(t, s.StartExecution(ctx, exec.ID, fmt.Sprintf("run-%d", attempt), now))

		retryable, err := s.FailExecution(ctx, exec.ID, "provider timeout", now)
		require.NoError(t, err)
		assert.True(t, retryable)

		got, err := s.GetExecutionByID(ctx, exec.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.ExecutionStatusPending, got.Status)
		assert.Equal(t, attempt, got.RetryCount)
		assert.Nil(t, got.FinishedAt)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "provider timeout", *got.ErrorMessage)
	}

	// The third failure exhausts the budget and lands in failed, never
	// requeueing a fourth run
	require.NoError(t, s.StartExecution(ctx, exec.ID, "run-3", now))
	retryable, err := s.FailExecution(ctx, exec.ID, "provider timeout", now)
	require.NoError(t, err)
	assert.False(t, retryable)

	got, err := s.GetExecutionByID(ctx, exec.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ExecutionStatusFailed, got.Status)
	assert.Equal(t, 2, got.RetryCount)
	require.NotNil(t, got.FinishedAt)

	require.Error(t, s.StartExecution(ctx, exec.ID, "run-4", now))

	// Failing a terminal or pending execution is rejected
	_, err = s.FailExecution(ctx, exec.ID, "late failure", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	pending, err := s.CreateExecution(ctx, sched.ID, "chart-sync-2", 3)
	require.NoError(t, err)
	_, err = s.FailExecution(ctx, pending.ID, "never started", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = s.FailExecution(ctx, 999999, "missing", now)
	assert.ErrorIs(t, err, domain.ErrExecutionNotFound)
}

func testCancelExecution(t *testing.T, s Store) {
	ctx := context.Background()
	now := day(2026, 8, 30)
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	pending, err := s.CreateExecution(ctx, sched.ID, "chart-sync-1", 3)
	require.NoError(t, err)
	require.NoError(t, s.CancelExecution(ctx, pending.ID, now))

	got, err := s.GetExecutionByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ExecutionStatusCancelled, got.Status)
	require.NotNil(t, got.FinishedAt)

	err = s.CancelExecution(ctx, pending.ID, now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	running, err := s.CreateExecution(ctx, sched.ID, "chart-sync-2", 3)
	require.NoError(t, err)
	require.NoError(t, s.StartExecution(ctx, running.ID, "run-1", now))
	require.NoError(t, s.CancelExecution(ctx, running.ID, now))

	got, err = s.GetExecutionByID(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.ExecutionStatusCancelled, got.Status)

	err = s.CancelExecution(ctx, 999999, now)
	assert.ErrorIs(t, err, domain.ErrExecutionNotFound)
}

func testListExecutionsBySchedule(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")
	sched := createTestSchedule(t, s, chart.ID)

	var ids []uint64
	for i := 1; i <= 5; i++ {
		exec, err := s.CreateExecution(ctx, sched.ID, fmt.Sprintf("chart-sync-%d", i), 3)
		require.NoError(t, err)
		ids = append(ids, exec.ID)
	}

	// Newest first
	execs, total, err := s.ListExecutionsBySchedule(ctx, sched.ID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)
	require.Len(t, execs, 2)
	assert.Equal(t, ids[4], execs[0].ID)
	assert.Equal(t, ids[3], execs[1].ID)

	execs, total, err = s.ListExecutionsBySchedule(ctx, sched.ID, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), total)
	require.Len(t, execs, 1)
	assert.Equal(t, ids[0], execs[0].ID)

	execs, total, err = s.ListExecutionsBySchedule(ctx, 999999, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), total)
	assert.Empty(t, execs)
}

// =============================================================================
// Rankings
// =============================================================================

func testUpsertRanking(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")
	date := day(2026, 8, 21)

	ranking, created, err := s.UpsertRanking(ctx, UpsertRankingInput{
		ChartID:           chart.ID,
		RankingDate:       date,
		ProviderTotal:     200,
		ProviderFrequency: "weekly",
		EntryCount:        100,
		RawPayload:        []byte(`{"entries":[]}`),
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, ranking.ID)

	// Re-ingesting the same period refreshes the snapshot in place
	again, created, err := s.UpsertRanking(ctx, UpsertRankingInput{
		ChartID:           chart.ID,
		RankingDate:       date,
		ProviderTotal:     250,
		ProviderFrequency: "weekly",
		EntryCount:        200,
		RawPayload:        []byte(`{"entries":[{"position":1}]}`),
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, ranking.ID, again.ID)

	var stored schema.ChartRanking
	require.NoError(t, rawDB(t, s).Where("id = ?", ranking.ID).First(&stored).Error)
	assert.Equal(t, 200, stored.EntryCount)
	assert.Equal(t, 250, stored.ProviderTotal)
	assert.JSONEq(t, `{"entries":[{"position":1}]}`, string(stored.RawPayload))
}

func testRankingDates(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")

	latest, err := s.GetLatestRankingDate(ctx, chart.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	dates := []time.Time{day(2026, 8, 7), day(2026, 8, 14), day(2026, 8, 21), day(2026, 8, 28)}
	for _, d := range dates {
		_, _, err := s.UpsertRanking(ctx, UpsertRankingInput{
			ChartID: chart.ID, RankingDate: d, ProviderFrequency: "weekly",
		})
		require.NoError(t, err)
	}

	got, err := s.GetRankingDates(ctx, chart.ID, day(2026, 8, 14))
	require.NoError(t, err)
	require.Len(t, got, 3)
	sameDate(t, day(2026, 8, 14), got[0])
	sameDate(t, day(2026, 8, 21), got[1])
	sameDate(t, day(2026, 8, 28), got[2])

	latest, err = s.GetLatestRankingDate(ctx, chart.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	sameDate(t, day(2026, 8, 28), *latest)
}

func testGetOrCreateTrack(t *testing.T, s Store) {
	ctx := context.Background()

	track, created, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Midnight Drive",
		Slug:         "midnight-drive",
		CreditName:   "Nova & Crash",
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, track.ID)

	// A second seed with the same UUID resolves to the existing row untouched
	again, created, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Renamed",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, track.ID, again.ID)
	assert.Equal(t, "Midnight Drive", again.Name)

	got, err := s.GetTrackByProviderUUID(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, track.ID, got.ID)

	missing, err := s.GetTrackByProviderUUID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testGetOrCreateArtist(t *testing.T, s Store) {
	ctx := context.Background()

	artist, created, err := s.GetOrCreateArtist(ctx, ArtistSeed{
		ProviderUUID: "22222222-2222-2222-2222-222222222222",
		Name:         "Nova",
		Slug:         "nova",
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, artist.ID)

	again, created, err := s.GetOrCreateArtist(ctx, ArtistSeed{
		ProviderUUID: "22222222-2222-2222-2222-222222222222",
		Name:         "Nova (Alt)",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, artist.ID, again.ID)
	assert.Equal(t, "Nova", again.Name)

	missing, err := s.GetArtistByProviderUUID(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testCreateRankingEntry(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")

	track, _, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Midnight Drive",
	})
	require.NoError(t, err)

	ranking, _, err := s.UpsertRanking(ctx, UpsertRankingInput{
		ChartID: chart.ID, RankingDate: day(2026, 8, 28), ProviderFrequency: "weekly",
	})
	require.NoError(t, err)

	metric := 1523000.0
	created, err := s.CreateRankingEntry(ctx, &schema.ChartRankingEntry{
		RankingID:    ranking.ID,
		TrackID:      track.ID,
		Position:     1,
		PeakPosition: intPtr(1),
		WeeksOnChart: intPtr(4),
		MetricValue:  &metric,
	})
	require.NoError(t, err)
	assert.True(t, created)

	// Same (ranking, track) pair again is left untouched
	created, err = s.CreateRankingEntry(ctx, &schema.ChartRankingEntry{
		RankingID: ranking.ID,
		TrackID:   track.ID,
		Position:  5,
	})
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, rawDB(t, s).Model(&schema.ChartRankingEntry{}).
		Where("ranking_id = ?", ranking.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// =============================================================================
// Metadata
// =============================================================================

func testUpdateTrackMetadata(t *testing.T, s Store) {
	ctx := context.Background()
	fetchedAt := day(2026, 8, 30)

	track, _, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Midnight Drive",
	})
	require.NoError(t, err)

	releaseDate := day(2026, 5, 1)
	input := UpdateTrackMetadataInput{
		TrackID:         track.ID,
		Name:            "Midnight Drive",
		Slug:            "midnight-drive",
		CreditName:      "Nova feat. Crash",
		ReleaseDate:     &releaseDate,
		DurationSeconds: intPtr(213),
		ISRC:            strPtr("ITUM72600123"),
		Label:           strPtr("Wave Records"),
		Genres: []GenreLink{
			{Root: "Pop", Sub: "Dance Pop"},
			{Root: "Electronic"},
		},
		Artists: []ArtistSeed{
			{ProviderUUID: "22222222-2222-2222-2222-222222222222", Name: "Nova"},
			{ProviderUUID: "33333333-3333-3333-3333-333333333333", Name: "Crash"},
		},
		PrimaryArtist: strPtr("22222222-2222-2222-2222-222222222222"),
		FetchedAt:     fetchedAt,
	}
	require.NoError(t, s.UpdateTrackMetadata(ctx, input))

	got, err := s.GetTrackByProviderUUID(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Nova feat. Crash", got.CreditName)
	require.NotNil(t, got.ReleaseDate)
	sameDate(t, releaseDate, *got.ReleaseDate)
	require.NotNil(t, got.DurationSeconds)
	assert.Equal(t, 213, *got.DurationSeconds)
	require.NotNil(t, got.ISRC)
	assert.Equal(t, "ITUM72600123", *got.ISRC)
	require.NotNil(t, got.Label)
	assert.Equal(t, "Wave Records", *got.Label)
	require.NotNil(t, got.MetadataFetchedAt)

	artists, err := s.GetTrackArtists(ctx, track.ID)
	require.NoError(t, err)
	require.Len(t, artists, 2)

	primary, err := s.GetArtistByProviderUUID(ctx, "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	require.NotNil(t, primary)
	require.NotNil(t, got.PrimaryArtistID)
	assert.Equal(t, primary.ID, *got.PrimaryArtistID)

	var link schema.TrackArtist
	require.NoError(t, rawDB(t, s).
		Where("track_id = ? AND is_primary = ?", track.ID, true).
		First(&link).Error)
	assert.Equal(t, primary.ID, link.ArtistID)

	// Genre tree: sub genres hang off their root
	var root, sub schema.Genre
	require.NoError(t, rawDB(t, s).Where("slug = ?", "pop").First(&root).Error)
	assert.Nil(t, root.ParentID)
	require.NoError(t, rawDB(t, s).Where("slug = ?", "dance-pop").First(&sub).Error)
	require.NotNil(t, sub.ParentID)
	assert.Equal(t, root.ID, *sub.ParentID)

	// Re-applying the same result is idempotent
	require.NoError(t, s.UpdateTrackMetadata(ctx, input))
	artists, err = s.GetTrackArtists(ctx, track.ID)
	require.NoError(t, err)
	assert.Len(t, artists, 2)

	input.TrackID = 999999
	err = s.UpdateTrackMetadata(ctx, input)
	assert.ErrorIs(t, err, domain.ErrTrackNotFound)
}

func testUpdateArtistMetadata(t *testing.T, s Store) {
	ctx := context.Background()

	artist, _, err := s.GetOrCreateArtist(ctx, ArtistSeed{
		ProviderUUID: "22222222-2222-2222-2222-222222222222",
		Name:         "Nova",
	})
	require.NoError(t, err)

	input := UpdateArtistMetadataInput{
		ArtistID:    artist.ID,
		Name:        "Nova",
		Slug:        "nova",
		Biography:   strPtr("Electro-pop artist from Milan."),
		CareerStage: strPtr("mid_level"),
		CountryCode: strPtr("IT"),
		Genres:      []GenreLink{{Root: "Electronic", Sub: "Synthwave"}},
		FetchedAt:   day(2026, 8, 30),
	}
	require.NoError(t, s.UpdateArtistMetadata(ctx, input))

	got, err := s.GetArtistByProviderUUID(ctx, "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Biography)
	assert.Equal(t, "Electro-pop artist from Milan.", *got.Biography)
	require.NotNil(t, got.CareerStage)
	assert.Equal(t, "mid_level", *got.CareerStage)
	require.NotNil(t, got.CountryCode)
	assert.Equal(t, "IT", *got.CountryCode)
	require.NotNil(t, got.MetadataFetchedAt)

	var count int64
	require.NoError(t, rawDB(t, s).Model(&schema.ArtistGenre{}).
		Where("artist_id = ?", artist.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	input.ArtistID = 999999
	err = s.UpdateArtistMetadata(ctx, input)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

// =============================================================================
// Platforms & Audience
// =============================================================================

func testPlatforms(t *testing.T, s Store) {
	ctx := context.Background()

	platform, err := s.GetOrCreatePlatform(ctx, "spotify", "Spotify", "streaming")
	require.NoError(t, err)
	require.NotZero(t, platform.ID)
	assert.Equal(t, "Spotify", platform.Name)
	assert.Equal(t, "streaming", platform.Category)

	// The slug is the identity: a second create resolves to the same row
	again, err := s.GetOrCreatePlatform(ctx, "spotify", "Spotify Music", "streaming")
	require.NoError(t, err)
	assert.Equal(t, platform.ID, again.ID)
	assert.Equal(t, "Spotify", again.Name)

	got, err := s.GetPlatformBySlug(ctx, "spotify")
	require.NoError(t, err)
	assert.Equal(t, platform.ID, got.ID)

	_, err = s.GetPlatformBySlug(ctx, "myspace")
	assert.ErrorIs(t, err, domain.ErrPlatformNotFound)
}

func testUpsertTrackAudience(t *testing.T, s Store) {
	ctx := context.Background()

	track, _, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Midnight Drive",
	})
	require.NoError(t, err)
	platform, err := s.GetOrCreatePlatform(ctx, "spotify", "Spotify", "streaming")
	require.NoError(t, err)

	stored, err := s.UpsertTrackAudience(ctx, track.ID, platform.ID, []AudiencePoint{
		{Date: day(2026, 8, 27), Value: 1000},
		{Date: day(2026, 8, 28), Value: 1100},
		{Date: day(2026, 8, 29), Value: 1200},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stored)

	// Re-fetching overwrites the same dates instead of duplicating rows
	stored, err = s.UpsertTrackAudience(ctx, track.ID, platform.ID, []AudiencePoint{
		{Date: day(2026, 8, 28), Value: 1150},
		{Date: day(2026, 8, 29), Value: 1250},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	var rows []schema.TrackAudience
	require.NoError(t, rawDB(t, s).
		Where("track_id = ? AND platform_id = ?", track.ID, platform.ID).
		Order("date ASC").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, float64(1000), rows[0].Value)
	assert.Equal(t, float64(1150), rows[1].Value)
	assert.Equal(t, float64(1250), rows[2].Value)

	stored, err = s.UpsertTrackAudience(ctx, track.ID, platform.ID, nil)
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func testUpsertArtistAudience(t *testing.T, s Store) {
	ctx := context.Background()

	artist, _, err := s.GetOrCreateArtist(ctx, ArtistSeed{
		ProviderUUID: "22222222-2222-2222-2222-222222222222",
		Name:         "Nova",
	})
	require.NoError(t, err)
	platform, err := s.GetOrCreatePlatform(ctx, "instagram", "Instagram", "social")
	require.NoError(t, err)

	stored, err := s.UpsertArtistAudience(ctx, artist.ID, platform.ID, []AudiencePoint{
		{Date: day(2026, 8, 28), Value: 52000},
		{Date: day(2026, 8, 29), Value: 52100},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stored)

	stored, err = s.UpsertArtistAudience(ctx, artist.ID, platform.ID, []AudiencePoint{
		{Date: day(2026, 8, 29), Value: 52500},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	var rows []schema.ArtistAudience
	require.NoError(t, rawDB(t, s).
		Where("artist_id = ? AND platform_id = ?", artist.ID, platform.ID).
		Order("date ASC").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, float64(52500), rows[1].Value)
}

func testAudienceFetchedMarkers(t *testing.T, s Store) {
	ctx := context.Background()
	fetchedAt := day(2026, 8, 30)

	track, _, err := s.GetOrCreateTrack(ctx, TrackSeed{
		ProviderUUID: "11111111-1111-1111-1111-111111111111",
		Name:         "Midnight Drive",
	})
	require.NoError(t, err)
	require.NoError(t, s.TouchTrackAudienceFetched(ctx, track.ID, fetchedAt))

	gotTrack, err := s.GetTrackByProviderUUID(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.NotNil(t, gotTrack.AudienceFetchedAt)
	require.WithinDuration(t, fetchedAt, *gotTrack.AudienceFetchedAt, time.Second)

	err = s.TouchTrackAudienceFetched(ctx, 999999, fetchedAt)
	assert.ErrorIs(t, err, domain.ErrTrackNotFound)

	artist, _, err := s.GetOrCreateArtist(ctx, ArtistSeed{
		ProviderUUID: "22222222-2222-2222-2222-222222222222",
		Name:         "Nova",
	})
	require.NoError(t, err)
	require.NoError(t, s.TouchArtistAudienceFetched(ctx, artist.ID, fetchedAt))

	gotArtist, err := s.GetArtistByProviderUUID(ctx, "22222222-2222-2222-2222-222222222222")
	require.NoError(t, err)
	require.NotNil(t, gotArtist.AudienceFetchedAt)

	err = s.TouchArtistAudienceFetched(ctx, 999999, fetchedAt)
	assert.ErrorIs(t, err, domain.ErrArtistNotFound)
}

// =============================================================================
// Exit Sweep
// =============================================================================

func testSweepChartExits(t *testing.T, s Store) {
	ctx := context.Background()
	chart := createTestChart(t, s, "spotify-top-200-it")

	newTrack := func(uuid, name string) *schema.Track {
		track, _, err := s.GetOrCreateTrack(ctx, TrackSeed{ProviderUUID: uuid, Name: name})
		require.NoError(t, err)
		return track
	}
	staying := newTrack("11111111-1111-1111-1111-111111111111", "Staying")
	gone := newTrack("22222222-2222-2222-2222-222222222222", "Gone")
	recent := newTrack("33333333-3333-3333-3333-333333333333", "Recently Dropped")
	exited := newTrack("44444444-4444-4444-4444-444444444444", "Already Exited")

	dates := []time.Time{
		day(2026, 7, 31), day(2026, 8, 7), day(2026, 8, 14), day(2026, 8, 21), day(2026, 8, 28),
	}
	createTestRanking(t, s, chart.ID, dates[0], staying.ID, gone.ID, recent.ID, exited.ID)
	createTestRanking(t, s, chart.ID, dates[1], staying.ID, gone.ID, recent.ID)
	createTestRanking(t, s, chart.ID, dates[2], staying.ID, recent.ID)
	createTestRanking(t, s, chart.ID, dates[3], staying.ID, recent.ID)
	createTestRanking(t, s, chart.ID, dates[4], staying.ID)

	// The already-exited track keeps its recorded exit date
	require.NoError(t, rawDB(t, s).Model(&schema.ChartRankingEntry{}).
		Where("track_id = ?", exited.ID).
		Update("exit_date", dates[0]).Error)

	// Not enough snapshots to declare anything gone
	swept, err := s.SweepChartExits(ctx, chart.ID, 10)
	require.NoError(t, err)
	assert.Zero(t, swept)

	// Cutoff is the 3rd most recent snapshot (2026-08-14); only the track
	// last seen on 2026-08-07 has been absent long enough
	swept, err = s.SweepChartExits(ctx, chart.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	var entries []schema.ChartRankingEntry
	require.NoError(t, rawDB(t, s).
		Joins("JOIN chart_rankings ON chart_rankings.id = chart_ranking_entries.ranking_id").
		Where("chart_ranking_entries.track_id = ?", gone.ID).
		Order("chart_rankings.ranking_date ASC").
		Find(&entries).Error)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].ExitDate)
	require.NotNil(t, entries[1].ExitDate)
	sameDate(t, dates[1], *entries[1].ExitDate)

	// Tracks still charting or only recently dropped are untouched
	var open int64
	require.NoError(t, rawDB(t, s).Model(&schema.ChartRankingEntry{}).
		Where("track_id IN ? AND exit_date IS NOT NULL", []uint64{staying.ID, recent.ID}).
		Count(&open).Error)
	assert.Zero(t, open)

	// The sweep is idempotent
	swept, err = s.SweepChartExits(ctx, chart.ID, 3)
	require.NoError(t, err)
	assert.Zero(t, swept)
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full behavioral suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Charts", testCharts},
		{"CreateSchedule", testCreateSchedule},
		{"SetScheduleActive", testSetScheduleActive},
		{"ListDueSchedules", testListDueSchedules},
		{"AdvanceSchedule", testAdvanceSchedule},
		{"RecordScheduleOutcome", testRecordScheduleOutcome},
		{"ExecutionLifecycle", testExecutionLifecycle},
		{"FailExecutionRetries", testFailExecutionRetries},
		{"CancelExecution", testCancelExecution},
		{"ListExecutionsBySchedule", testListExecutionsBySchedule},
		{"UpsertRanking", testUpsertRanking},
		{"RankingDates", testRankingDates},
		{"GetOrCreateTrack", testGetOrCreateTrack},
		{"GetOrCreateArtist", testGetOrCreateArtist},
		{"CreateRankingEntry", testCreateRankingEntry},
		{"UpdateTrackMetadata", testUpdateTrackMetadata},
		{"UpdateArtistMetadata", testUpdateArtistMetadata},
		{"Platforms", testPlatforms},
		{"UpsertTrackAudience", testUpsertTrackAudience},
		{"UpsertArtistAudience", testUpsertArtistAudience},
		{"AudienceFetchedMarkers", testAudienceFetchedMarkers},
		{"SweepChartExits", testSweepChartExits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
