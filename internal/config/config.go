package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends.
const (
	StoreBackendMemory   = "memory"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Store configuration
	StoreBackend string
	SeedData     bool

	// Database configuration (postgres backend)
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Redis configuration (redis backend)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Classification configuration. An empty API key selects the
	// random-fallback classifier. FallbackSeed other than 0 makes the
	// fallback deterministic (test builds).
	GeminiAPIKey string
	GeminiModel  string
	FallbackSeed int64

	// Topics configuration. When TopicsFile is empty the compiled-in
	// default vocabulary is used.
	TopicsFile string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 2*time.Minute),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		StoreBackend:        getEnv("STORE_BACKEND", StoreBackendMemory),
		SeedData:            getEnvBool("SEED_DATA", true),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "skynet_news"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		FallbackSeed:        int64(getEnvInt("CLASSIFY_FALLBACK_SEED", 0)),
		TopicsFile:          getEnv("TOPICS_FILE", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.StoreBackend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendPostgres:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: memory, redis, postgres")
	}
	if c.StoreBackend == StoreBackendPostgres {
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	}
	if c.StoreBackend == StoreBackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
