package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	MaxKeys  int
}

type PlannerConfig struct {
	// ParamsFile optionally points at a YAML file overriding discovery tunables.
	ParamsFile        string
	DiscoveryCacheTTL time.Duration
}

type Config struct {
	Repositories RepositoriesConfig
	ServerPort   string
	ServiceName  string
	MetricsAddr  string
	OTLPEndpoint string
	PprofAddr    string
	LogLevel     string
	RateLimit    RateLimitConfig
	Planner      PlannerConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "tripcore"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: int32(getEnvInt("POSTGRES_MAX_CONNS", 30)),
				MinConns: int32(getEnvInt("POSTGRES_MIN_CONNS", 5)),
			},
		},
		ServerPort:   getEnvOrDefault("SERVER_PORT", "8091"),
		ServiceName:  getEnvOrDefault("SERVICE_NAME", "tripcore"),
		MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
		OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""), // host:port, empty keeps traces local
		PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		RateLimit: RateLimitConfig{
			Requests: getEnvInt("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			MaxKeys:  getEnvInt("RATE_LIMIT_MAX_KEYS", 10000),
		},
		Planner: PlannerConfig{
			ParamsFile:        getEnvOrDefault("PLANNER_PARAMS_FILE", ""),
			DiscoveryCacheTTL: getEnvDuration("PLANNER_DISCOVERY_CACHE_TTL", 10*time.Minute),
		},
	}

	if cfg.Repositories.Postgres.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
