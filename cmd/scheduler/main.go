package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/config"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/providers/temporal"
	"github.com/wavemetrics/chartsync/internal/scheduler"
	"github.com/wavemetrics/chartsync/internal/store"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to .env file")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "chartsync-scheduler"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(5 * time.Second)
	logger.Info("Starting chart sync scheduler")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)
	clockAdapter := adapter.NewClock()

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.Info("Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	sweepers := []scheduler.Sweeper{
		scheduler.NewSyncSweeper(
			&scheduler.SyncSweeperConfig{
				SweepInterval:       cfg.Scheduler.SweepInterval,
				WorkerPoolSize:      cfg.Scheduler.WorkerPoolSize,
				ExecutionMaxRetries: cfg.Sync.ExecutionMaxRetries,
			},
			dataStore,
			clockAdapter,
			temporalClient,
			cfg.Temporal.SyncTaskQueue,
		),
		scheduler.NewExitSweeper(
			&scheduler.ExitSweeperConfig{
				SweepInterval: cfg.Scheduler.ExitSweepInterval,
				MissedPeriods: cfg.Sync.ExitMissedPeriods,
			},
			dataStore,
			clockAdapter,
		),
	}

	var wg sync.WaitGroup
	for _, s := range sweepers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Start(ctx); err != nil {
				logger.Error(fmt.Errorf("sweeper exited: %w", err), zap.String("sweeper", s.Name()))
			}
		}()
	}
	logger.Info("Sweepers started", zap.Int("count", len(sweepers)))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down scheduler...")
	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	for _, s := range sweepers {
		if err := s.Stop(stopCtx); err != nil {
			logger.Error(fmt.Errorf("failed to stop sweeper: %w", err), zap.String("sweeper", s.Name()))
		}
	}
	cancel()
	wg.Wait()
	logger.Info("Scheduler stopped")
}
