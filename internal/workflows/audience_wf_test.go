package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/wavemetrics/chartsync/internal/domain"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/mocks"
	"github.com/wavemetrics/chartsync/internal/workflows"
)

// AudienceWorkflowTestSuite is the test suite for the audience fetch workflows
type AudienceWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *AudienceWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		CascadeTaskQueue:   "cascade-task-queue",
		StalenessThreshold: 30 * 24 * time.Hour,
		RetryBaseDelay:     time.Minute,
	})
}

// TearDownTest is called after each test
func (s *AudienceWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestAudienceWorkflowTestSuite runs the test suite
func TestAudienceWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(AudienceWorkflowTestSuite))
}

func (s *AudienceWorkflowTestSuite) TestFetchTrackAudience_AllPlatformsSucceed() {
	trackUUID := "11111111-1111-1111-1111-111111111111"

	for _, platform := range domain.TrackAudiencePlatforms() {
		s.env.OnActivity(s.executor.FetchTrackAudienceSeries, mock.Anything, trackUUID, platform.Slug).Return(90, nil)
	}
	s.env.OnActivity(s.executor.MarkTrackAudienceFetched, mock.Anything, trackUUID).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.FetchTrackAudience, trackUUID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *AudienceWorkflowTestSuite) TestFetchTrackAudience_OnePlatformFails() {
	trackUUID := "11111111-1111-1111-1111-111111111111"

	platforms := domain.TrackAudiencePlatforms()
	s.Require().GreaterOrEqual(len(platforms), 2)

	s.env.OnActivity(s.executor.FetchTrackAudienceSeries, mock.Anything, trackUUID, platforms[0].Slug).Return(0, errors.New("platform down"))
	for _, platform := range platforms[1:] {
		s.env.OnActivity(s.executor.FetchTrackAudienceSeries, mock.Anything, trackUUID, platform.Slug).Return(90, nil)
	}

	// A partial success still moves the staleness marker
	s.env.OnActivity(s.executor.MarkTrackAudienceFetched, mock.Anything, trackUUID).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.FetchTrackAudience, trackUUID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *AudienceWorkflowTestSuite) TestFetchTrackAudience_AllPlatformsFail() {
	trackUUID := "11111111-1111-1111-1111-111111111111"

	for _, platform := range domain.TrackAudiencePlatforms() {
		s.env.OnActivity(s.executor.FetchTrackAudienceSeries, mock.Anything, trackUUID, platform.Slug).Return(0, errors.New("platform down"))
	}

	// The marker must not move when nothing landed

	s.env.ExecuteWorkflow(s.workerCore.FetchTrackAudience, trackUUID)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "audience fetch failed on all")
}

func (s *AudienceWorkflowTestSuite) TestFetchTrackAudience_MarkerFailureIsNonFatal() {
	trackUUID := "11111111-1111-1111-1111-111111111111"

	for _, platform := range domain.TrackAudiencePlatforms() {
		s.env.OnActivity(s.executor.FetchTrackAudienceSeries, mock.Anything, trackUUID, platform.Slug).Return(90, nil)
	}
	s.env.OnActivity(s.executor.MarkTrackAudienceFetched, mock.Anything, trackUUID).Return(errors.New("store timeout"))

	s.env.ExecuteWorkflow(s.workerCore.FetchTrackAudience, trackUUID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *AudienceWorkflowTestSuite) TestFetchArtistAudience_AllPlatformsSucceed() {
	artistUUID := "22222222-2222-2222-2222-222222222222"

	for _, platform := range domain.ArtistAudiencePlatforms() {
		s.env.OnActivity(s.executor.FetchArtistAudienceSeries, mock.Anything, artistUUID, platform.Slug).Return(90, nil)
	}
	s.env.OnActivity(s.executor.MarkArtistAudienceFetched, mock.Anything, artistUUID).Return(nil)

	s.env.ExecuteWorkflow(s.workerCore.FetchArtistAudience, artistUUID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *AudienceWorkflowTestSuite) TestFetchArtistAudience_AllPlatformsFail() {
	artistUUID := "22222222-2222-2222-2222-222222222222"

	for _, platform := range domain.ArtistAudiencePlatforms() {
		s.env.OnActivity(s.executor.FetchArtistAudienceSeries, mock.Anything, artistUUID, platform.Slug).Return(0, errors.New("platform down"))
	}

	s.env.ExecuteWorkflow(s.workerCore.FetchArtistAudience, artistUUID)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
