package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/logger"
)

// FetchArtistMetadata enriches one artist from the provider, then starts a
// fire-and-forget audience fetch for the artist.
func (w *workerCore) FetchArtistMetadata(ctx workflow.Context, artistUUID string) error {
	logger.InfoWf(ctx, "fetching artist metadata", zap.String("artist_uuid", artistUUID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	if err := workflow.ExecuteActivity(ctx, w.executor.FetchAndStoreArtistMetadata, artistUUID).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to fetch artist metadata: %w", err),
			zap.String("artist_uuid", artistUUID))
		return err
	}

	w.startCascadeChild(ctx, fmt.Sprintf("fetch-artist-audience-%s", artistUUID), w.FetchArtistAudience, artistUUID)

	logger.InfoWf(ctx, "artist metadata fetched", zap.String("artist_uuid", artistUUID))

	return nil
}
