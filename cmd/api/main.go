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
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wavemetrics/chartsync/internal/adapter"
	"github.com/wavemetrics/chartsync/internal/api/middleware"
	"github.com/wavemetrics/chartsync/internal/api/server"
	"github.com/wavemetrics/chartsync/internal/config"
	"github.com/wavemetrics/chartsync/internal/logger"
	"github.com/wavemetrics/chartsync/internal/providers/temporal"
	"github.com/wavemetrics/chartsync/internal/store"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to configuration file")
	envPath    = flag.String("env", "", "Path to .env file")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configPath, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags:      map[string]string{"service": "chartsync-api"},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(5 * time.Second)
	logger.Info("Starting admin API")

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

	srv := server.New(server.Config{
		Debug:               cfg.Debug,
		Host:                cfg.Server.Host,
		Port:                cfg.Server.Port,
		ReadTimeout:         time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:        time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:         time.Duration(cfg.Server.IdleTimeout) * time.Second,
		SyncTaskQueue:       cfg.Temporal.SyncTaskQueue,
		ExecutionMaxRetries: cfg.Sync.ExecutionMaxRetries,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, dataStore, clockAdapter, temporalClient)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("API server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(fmt.Errorf("failed to shutdown API server: %w", err))
	}
	logger.Info("API server stopped")
}
