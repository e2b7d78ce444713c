package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/logger"
)

// FetchTrackAudience fetches audience series for one track across every
// platform that tracks track audience. A single platform failing is an
// item-level problem; the workflow only fails when every platform does.
func (w *workerCore) FetchTrackAudience(ctx workflow.Context, trackUUID string) error {
	logger.InfoWf(ctx, "fetching track audience", zap.String("track_uuid", trackUUID))

	ctx = workflow.WithActivityOptions(ctx, audienceActivityOptions())

	succeeded := 0
	points := 0
	platforms := domain.TrackAudiencePlatforms()
	for _, platform := range platforms {
		var stored int
		err := workflow.ExecuteActivity(ctx, w.executor.FetchTrackAudienceSeries, trackUUID, platform.Slug).Get(ctx, &stored)
		if err != nil {
			logger.WarnWf(ctx, "track audience platform fetch failed",
				zap.String("track_uuid", trackUUID),
				zap.String("platform", platform.Slug),
				zap.Error(err))
			continue
		}
		succeeded++
		points += stored
	}

	if succeeded == 0 {
		return fmt.Errorf("audience fetch failed on all %d platforms for track %s", len(platforms), trackUUID)
	}

	// The marker only moves when something landed, so a dead provider day
	// stays visible to the staleness check
	if err := workflow.ExecuteActivity(ctx, w.executor.MarkTrackAudienceFetched, trackUUID).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "failed to stamp track audience marker (non-fatal)",
			zap.String("track_uuid", trackUUID),
			zap.Error(err))
	}

	logger.InfoWf(ctx, "track audience fetched",
		zap.String("track_uuid", trackUUID),
		zap.Int("platforms", succeeded),
		zap.Int("points", points))

	return nil
}

// FetchArtistAudience fetches audience series for one artist across every
// platform that tracks artist audience.
func (w *workerCore) FetchArtistAudience(ctx workflow.Context, artistUUID string) error {
	logger.InfoWf(ctx, "fetching artist audience", zap.String("artist_uuid", artistUUID))

	ctx = workflow.WithActivityOptions(ctx, audienceActivityOptions())

	succeeded := 0
	points := 0
	platforms := domain.ArtistAudiencePlatforms()
	for _, platform := range platforms {
		var stored int
		err := workflow.ExecuteActivity(ctx, w.executor.FetchArtistAudienceSeries, artistUUID, platform.Slug).Get(ctx, &stored)
		if err != nil {
			logger.WarnWf(ctx, "artist audience platform fetch failed",
				zap.String("artist_uuid", artistUUID),
				zap.String("platform", platform.Slug),
				zap.Error(err))
			continue
		}
		succeeded++
		points += stored
	}

	if succeeded == 0 {
		return fmt.Errorf("audience fetch failed on all %d platforms for artist %s", len(platforms), artistUUID)
	}

	if err := workflow.ExecuteActivity(ctx, w.executor.MarkArtistAudienceFetched, artistUUID).Get(ctx, nil); err != nil {
		logger.WarnWf(ctx, "failed to stamp artist audience marker (non-fatal)",
			zap.String("artist_uuid", artistUUID),
			zap.Error(err))
	}

	logger.InfoWf(ctx, "artist audience fetched",
		zap.String("artist_uuid", artistUUID),
		zap.Int("platforms", succeeded),
		zap.Int("points", points))

	return nil
}

func audienceActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
}
