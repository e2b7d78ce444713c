package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/store"
)

// ExitSweeperConfig holds configuration for the exit-date sweeper
type ExitSweeperConfig struct {
	SweepInterval time.Duration // Time to sleep between sweep cycles
	MissedPeriods int           // Consecutive absences before an entry is closed out
}

// exitSweeper periodically stamps exit dates on chart entries whose tracks
// have dropped off the chart
type exitSweeper struct {
	config    *ExitSweeperConfig
	store     store.Store
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExitSweeper creates a new exit-date sweeper
func NewExitSweeper(config *ExitSweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &exitSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *exitSweeper) Name() string {
	return "exit-date-sweeper"
}

// Start begins the sweeper's main loop
func (s *exitSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting exit-date sweeper",
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Int("missed_periods", s.config.MissedPeriods),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Exit-date sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Exit-date sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *exitSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping exit-date sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Exit-date sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Exit-date sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle closes out departed entries on every chart, then sleeps
func (s *exitSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	charts, err := s.store.ListCharts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list charts: %w", err)
	}

	totalClosed := 0
	for _, chart := range charts {
		closed, err := s.store.SweepChartExits(ctx, chart.ID, s.config.MissedPeriods)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to sweep chart exits: %w", err),
				zap.String("chart", chart.Slug))
			continue
		}
		if closed > 0 {
			logger.InfoCtx(ctx, "Closed out departed chart entries",
				zap.String("chart", chart.Slug),
				zap.Int("entries", closed))
		}
		totalClosed += closed
	}

	logger.InfoCtx(ctx, "Exit sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("charts", len(charts)),
		zap.Int("entries_closed", totalClosed),
	)

	if !s.sleep(ctx, s.config.SweepInterval) {
		return ctx.Err()
	}
	return nil
}

func (s *exitSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
