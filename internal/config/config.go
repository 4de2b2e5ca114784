package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Services   ServicesConfig
	Push       PushConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	Jobs       JobsConfig
	Campaign   CampaignConfig
	WorkerPool WorkerPoolConfig
	Server     ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and public URLs
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
	// TrackingBaseURL is the public origin used for open, click and unsubscribe links.
	TrackingBaseURL string
	TrackingSecret  string
}

// PushConfig holds FCM settings
type PushConfig struct {
	ProjectID       string
	CredentialsFile string
	MaxRetries      int
	Timeout         time.Duration
}

// KafkaConfig holds engagement event streaming configuration
type KafkaConfig struct {
	Enabled         bool
	Brokers         []string
	EngagementTopic string
	DeadLetterTopic string
	ConsumerGroup   string
	MaxAttempts     int
}

// RedisConfig holds Redis connection settings used for campaign locks
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// JobsConfig holds the asynq queue settings
type JobsConfig struct {
	RedisAddr   string
	Concurrency int
}

// CampaignConfig holds campaign batching settings
type CampaignConfig struct {
	BatchSize         int
	BatchDelay        time.Duration
	LockTTL           time.Duration
	SchedulerInterval time.Duration
}

// WorkerPoolConfig holds worker pool configuration for event processing
type WorkerPoolConfig struct {
	EngagementWorkers int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// TrackingRateLimit caps tracking link hits per client IP per minute; 0 disables it.
	TrackingRateLimit int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}
	if cfg.Services.TrackingSecret, err = requireEnv("TRACKING_SECRET"); err != nil {
		return nil, err
	}
	cfg.Services.TrackingBaseURL = strings.TrimRight(getEnvWithDefault("TRACKING_BASE_URL", "http://localhost:8080"), "/")

	if cfg.Push.ProjectID, err = requireEnv("FCM_PROJECT_ID"); err != nil {
		return nil, err
	}
	cfg.Push.CredentialsFile = os.Getenv("FCM_CREDENTIALS_FILE")
	if cfg.Push.MaxRetries, err = getIntWithDefault("FCM_MAX_RETRIES", 2); err != nil {
		return nil, err
	}
	if cfg.Push.Timeout, err = getDurationWithDefault("FCM_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.Kafka.Enabled, err = getBoolWithDefault("KAFKA_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.Kafka.Enabled {
		brokers, err := requireEnv("KAFKA_BROKERS")
		if err != nil {
			return nil, err
		}
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.EngagementTopic = getEnvWithDefault("KAFKA_ENGAGEMENT_TOPIC", "engagement-events")
	cfg.Kafka.DeadLetterTopic = getEnvWithDefault("KAFKA_DEAD_LETTER_TOPIC", "engagement-events-dlq")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "engagement-consumers")
	if cfg.Kafka.MaxAttempts, err = getIntWithDefault("KAFKA_MAX_ATTEMPTS", 3); err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled, err = getBoolWithDefault("REDIS_ENABLED", true); err != nil {
		return nil, err
	}
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	cfg.Jobs.RedisAddr = getEnvWithDefault("JOBS_REDIS_ADDR", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port))
	if cfg.Jobs.Concurrency, err = getIntWithDefault("JOBS_CONCURRENCY", 10); err != nil {
		return nil, err
	}

	if cfg.Campaign.BatchSize, err = getIntWithDefault("CAMPAIGN_BATCH_SIZE", 50); err != nil {
		return nil, err
	}
	if cfg.Campaign.BatchSize <= 0 {
		return nil, fmt.Errorf("CAMPAIGN_BATCH_SIZE must be positive, got %d", cfg.Campaign.BatchSize)
	}
	if cfg.Campaign.BatchDelay, err = getDurationWithDefault("CAMPAIGN_BATCH_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.Campaign.LockTTL, err = getDurationWithDefault("CAMPAIGN_LOCK_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Campaign.SchedulerInterval, err = getDurationWithDefault("CAMPAIGN_SCHEDULER_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.WorkerPool.EngagementWorkers, err = getIntWithDefault("ENGAGEMENT_WORKERS", 10); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.TrackingRateLimit, err = getIntWithDefault("TRACKING_RATE_LIMIT_PER_MINUTE", 120); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the Redis host:port address
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getBoolWithDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return parsed, nil
}
