package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort         string `mapstructure:"host_port"`
	Namespace        string `mapstructure:"namespace"`
	SyncTaskQueue    string `mapstructure:"sync_task_queue"`
	CascadeTaskQueue string `mapstructure:"cascade_task_queue"`
	// MaxConcurrentSyncExecutions caps chart sync executions per worker
	MaxConcurrentSyncExecutions int `mapstructure:"max_concurrent_sync_executions"`
	// MaxConcurrentCascadeFetches caps metadata/audience fetches per worker
	MaxConcurrentCascadeFetches      int     `mapstructure:"max_concurrent_cascade_fetches"`
	WorkerActivitiesPerSecond        float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// ProviderConfig holds the chart data provider API configuration
type ProviderConfig struct {
	APIURL            string        `mapstructure:"api_url"`
	APIKey            string        `mapstructure:"api_key"`
	HTTPTimeout       time.Duration `mapstructure:"http_timeout"`
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

// RedisConfig holds Redis configuration for the shared rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SyncConfig holds the pipeline tuning knobs
type SyncConfig struct {
	// StalenessThreshold is the age past which metadata is refetched
	StalenessThreshold time.Duration `mapstructure:"staleness_threshold"`
	// LookbackWindow is the historical backfill horizon; each chart
	// converts it to whole periods at its own frequency
	LookbackWindow time.Duration `mapstructure:"lookback_window"`
	// ExitMissedPeriods is how many consecutive absent periods close an entry
	ExitMissedPeriods int `mapstructure:"exit_missed_periods"`
	// AudienceWindowDays is the audience span requested per entity
	AudienceWindowDays int `mapstructure:"audience_window_days"`
	// ExecutionMaxRetries bounds re-queues after systemic failures
	ExecutionMaxRetries int `mapstructure:"execution_max_retries"`
	// RetryBaseDelay is the first re-queue delay; it doubles per attempt
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay"`
}

// SchedulerConfig holds the scheduler sweep cadence
type SchedulerConfig struct {
	// SweepInterval is how often due schedules are collected
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// ExitSweepInterval is how often chart exits are derived
	ExitSweepInterval time.Duration `mapstructure:"exit_sweep_interval"`
	// WorkerPoolSize bounds concurrent schedule hand-offs per sweep
	WorkerPoolSize int `mapstructure:"worker_pool_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds configuration for the worker binary
type WorkerConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Provider   ProviderConfig `mapstructure:"provider"`
	Redis      RedisConfig    `mapstructure:"redis"`
	Sync       SyncConfig     `mapstructure:"sync"`
}

// SchedulerBinConfig holds configuration for the scheduler binary
type SchedulerBinConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Sync       SyncConfig      `mapstructure:"sync"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
	Auth       AuthConfig     `mapstructure:"auth"`
	Sync       SyncConfig     `mapstructure:"sync"`
}

func setSyncDefaults(v *viper.Viper) {
	v.SetDefault("sync.staleness_threshold", "720h") // 30 days
	v.SetDefault("sync.lookback_window", "8760h") // 1 year
	v.SetDefault("sync.exit_missed_periods", 4)
	v.SetDefault("sync.audience_window_days", 90)
	v.SetDefault("sync.execution_max_retries", 3)
	v.SetDefault("sync.retry_base_delay", "1m")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.sync_task_queue", "chart-sync")
	v.SetDefault("temporal.cascade_task_queue", "cascade-fetch")
	v.SetDefault("temporal.max_concurrent_sync_executions", 2)
	v.SetDefault("temporal.max_concurrent_cascade_fetches", 2)
	v.SetDefault("temporal.worker_activities_per_second", 50)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 10)
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

// LoadWorkerConfig loads configuration for the worker binary
func LoadWorkerConfig(configFile string, envPath string) (*WorkerConfig, error) {
	v := configureViper("worker", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setSyncDefaults(v)
	v.SetDefault("provider.http_timeout", "30s")
	v.SetDefault("provider.requests_per_second", 5)
	v.SetDefault("redis.addr", "localhost:6379")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSchedulerConfig loads configuration for the scheduler binary
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerBinConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setSyncDefaults(v)
	v.SetDefault("scheduler.sweep_interval", "5m")
	v.SetDefault("scheduler.exit_sweep_interval", "24h")
	v.SetDefault("scheduler.worker_pool_size", 10)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config SchedulerBinConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setSyncDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readConfig reads the config file, tolerating a missing file when all values
// come from the environment
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper sets up viper with the config file and environment bindings
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/worker/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("CHARTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config
// file exists.
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.sync_task_queue",
		"temporal.cascade_task_queue",
		"temporal.max_concurrent_sync_executions",
		"temporal.max_concurrent_cascade_fetches",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Provider
		"provider.api_url",
		"provider.api_key",
		"provider.http_timeout",
		"provider.requests_per_second",
		"provider.burst",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Sync
		"sync.staleness_threshold",
		"sync.lookback_window",
		"sync.exit_missed_periods",
		"sync.audience_window_days",
		"sync.execution_max_retries",
		"sync.retry_base_delay",
		// Scheduler
		"scheduler.sweep_interval",
		"scheduler.exit_sweep_interval",
		"scheduler.worker_pool_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Shared base first, then local, then optional per-service local
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
