package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/config"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/providers/chartdata"
	"github.com/wavemetrics/chartsync/internal/providers/temporal"
	"github.com/wavemetrics/chartsync/internal/ratelimit"
	"github.com/wavemetrics/chartsync/internal/store"
	"github.com/wavemetrics/chartsync/internal/workflows"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to .env file")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "chartsync-worker"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(5 * time.Second)
	logger.Info("Starting chart sync worker")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	dataStore := store.NewPGStore(db)

	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Provider.HTTPTimeout)

	// Distributed rate limit when Redis is configured, local bucket otherwise
	var redisLimiter adapter.RedisRateLimiter
	if cfg.Redis.Addr != "" {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("Failed to close Redis client", zap.Error(err))
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis unreachable at startup, falling back to local rate limiting", zap.Error(err))
		}
		redisLimiter = redisClient.NewRateLimiter()
	}
	limiter := ratelimit.New(ratelimit.Config{
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
		Burst:             cfg.Provider.Burst,
	}, redisLimiter, clockAdapter)

	providerClient := chartdata.NewClient(httpClient, limiter, cfg.Provider.APIURL, cfg.Provider.APIKey, jsonAdapter)

	executor := workflows.NewExecutor(dataStore, providerClient, clockAdapter, jsonAdapter,
		workflows.ExecutorConfig{
			StalenessThreshold: cfg.Sync.StalenessThreshold,
			LookbackWindow:     cfg.Sync.LookbackWindow,
			AudienceWindowDays: cfg.Sync.AudienceWindowDays,
		})

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

	workerCore := workflows.NewWorkerCore(executor,
		workflows.WorkerCoreConfig{
			CascadeTaskQueue:    cfg.Temporal.CascadeTaskQueue,
			StalenessThreshold:  cfg.Sync.StalenessThreshold,
			ExecutionMaxRetries: cfg.Sync.ExecutionMaxRetries,
			RetryBaseDelay:      cfg.Sync.RetryBaseDelay,
		})

	// One worker per task queue so sync executions and cascade fetches are
	// capped independently. The activity slot cap is what actually bounds
	// concurrent provider calls; workflows waiting on activities hold no
	// workflow-task slot.
	syncWorker := worker.New(temporalClient, cfg.Temporal.SyncTaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentSyncExecutions,
		WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
		MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
	})
	cascadeWorker := worker.New(temporalClient, cfg.Temporal.CascadeTaskQueue, worker.Options{
		MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentCascadeFetches,
		WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
		MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
	})

	// Register workflows
	syncWorker.RegisterWorkflow(workerCore.SyncChart)
	cascadeWorker.RegisterWorkflow(workerCore.FetchTrackMetadata)
	cascadeWorker.RegisterWorkflow(workerCore.FetchArtistMetadata)
	cascadeWorker.RegisterWorkflow(workerCore.FetchTrackAudience)
	cascadeWorker.RegisterWorkflow(workerCore.FetchArtistAudience)
	logger.Info("Registered workflows")

	// Register activities on both queues; the sync workflow fans out onto
	// the cascade queue through child workflows
	for _, w := range []worker.Worker{syncWorker, cascadeWorker} {
		w.RegisterActivity(executor.GetExecutionContext)
		w.RegisterActivity(executor.StartExecution)
		w.RegisterActivity(executor.ResolveMissingPeriods)
		w.RegisterActivity(executor.IngestRanking)
		w.RegisterActivity(executor.CompleteExecution)
		w.RegisterActivity(executor.FailExecution)
		w.RegisterActivity(executor.CancelExecution)
		w.RegisterActivity(executor.RecordScheduleOutcome)
		w.RegisterActivity(executor.FilterStaleTracks)
		w.RegisterActivity(executor.FetchAndStoreTrackMetadata)
		w.RegisterActivity(executor.FilterStaleArtists)
		w.RegisterActivity(executor.FetchAndStoreArtistMetadata)
		w.RegisterActivity(executor.FetchTrackAudienceSeries)
		w.RegisterActivity(executor.FetchArtistAudienceSeries)
		w.RegisterActivity(executor.MarkTrackAudienceFetched)
		w.RegisterActivity(executor.MarkArtistAudienceFetched)
	}
	logger.Info("Registered activities")

	if err := syncWorker.Start(); err != nil {
		logger.Fatal("Failed to start sync worker", zap.Error(err))
	}
	if err := cascadeWorker.Start(); err != nil {
		logger.Fatal("Failed to start cascade worker", zap.Error(err))
	}
	logger.Info("Workers started and listening for tasks",
		zap.String("sync_task_queue", cfg.Temporal.SyncTaskQueue),
		zap.String("cascade_task_queue", cfg.Temporal.CascadeTaskQueue))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down workers...")
	syncWorker.Stop()
	cascadeWorker.Stop()
	logger.Info("Workers stopped")
}
