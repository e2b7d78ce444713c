package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/logger"
)

// FetchTrackMetadata enriches one track from the provider, then fans out
// metadata fetches for its newly linked stale artists and an audience fetch
// for the track itself. All fan-out is fire-and-forget.
func (w *workerCore) FetchTrackMetadata(ctx workflow.Context, trackUUID string) error {
	logger.InfoWf(ctx, "fetching track metadata", zap.String("track_uuid", trackUUID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var result *TrackMetadataResult
	if err := workflow.ExecuteActivity(ctx, w.executor.FetchAndStoreTrackMetadata, trackUUID).Get(ctx, &result); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to fetch track metadata: %w", err),
			zap.String("track_uuid", trackUUID))
		return err
	}

	if len(result.ArtistUUIDs) > 0 {
		var stale []string
		if err := workflow.ExecuteActivity(ctx, w.executor.FilterStaleArtists, result.ArtistUUIDs).Get(ctx, &stale); err != nil {
			logger.WarnWf(ctx, "failed to filter stale artists (non-fatal)",
				zap.String("track_uuid", trackUUID),
				zap.Error(err))
		}
		for _, uuid := range stale {
			w.startCascadeChild(ctx, fmt.Sprintf("fetch-artist-metadata-%s", uuid), w.FetchArtistMetadata, uuid)
		}
	}

	w.startCascadeChild(ctx, fmt.Sprintf("fetch-track-audience-%s", trackUUID), w.FetchTrackAudience, trackUUID)

	logger.InfoWf(ctx, "track metadata fetched",
		zap.String("track_uuid", trackUUID),
		zap.Int("artists", len(result.ArtistUUIDs)))

	return nil
}
