package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/oyunradar/esports-radar/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	CORSAllowedOrigins           []string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	MatchCacheTTL                time.Duration
	TeamCacheTTL                 time.Duration
	ScraperTimeout               time.Duration
	ScraperMaxRetries            int
	ScraperCircuitEnabled        bool
	ScraperCircuitFailureCount   int
	ScraperCircuitOpenTimeout    time.Duration
	ScraperCircuitHalfOpenMaxReq int
	VLREnabled                   bool
	VLRBaseURL                   string
	VLRTeamsLimit                int
	HLTVEnabled                  bool
	HLTVBaseURL                  string
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	matchCacheTTL, err := time.ParseDuration(getEnv("MATCH_CACHE_TTL", "2m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_CACHE_TTL: %w", err)
	}
	if matchCacheTTL <= 0 {
		return Config{}, fmt.Errorf("MATCH_CACHE_TTL must be > 0")
	}

	teamCacheTTL, err := time.ParseDuration(getEnv("TEAM_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TEAM_CACHE_TTL: %w", err)
	}
	if teamCacheTTL <= 0 {
		return Config{}, fmt.Errorf("TEAM_CACHE_TTL must be > 0")
	}

	scraperTimeout, err := time.ParseDuration(getEnv("SCRAPER_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_TIMEOUT: %w", err)
	}
	if scraperTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_TIMEOUT must be > 0")
	}

	scraperMaxRetries, err := getEnvAsInt("SCRAPER_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_MAX_RETRIES: %w", err)
	}
	if scraperMaxRetries < 0 {
		return Config{}, fmt.Errorf("SCRAPER_MAX_RETRIES must be >= 0")
	}

	scraperCircuitEnabled, err := strconv.ParseBool(getEnv("SCRAPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_ENABLED: %w", err)
	}

	scraperCircuitFailureCount, err := getEnvAsInt("SCRAPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if scraperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	scraperCircuitOpenTimeout, err := time.ParseDuration(getEnv("SCRAPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if scraperCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	scraperCircuitHalfOpenMaxReq, err := getEnvAsInt("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if scraperCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SCRAPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	vlrEnabled, err := strconv.ParseBool(getEnv("VLR_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse VLR_ENABLED: %w", err)
	}

	vlrTeamsLimit, err := getEnvAsInt("VLR_TEAMS_LIMIT", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse VLR_TEAMS_LIMIT: %w", err)
	}
	if vlrTeamsLimit < 1 {
		return Config{}, fmt.Errorf("VLR_TEAMS_LIMIT must be >= 1")
	}

	hltvEnabled, err := strconv.ParseBool(getEnv("HLTV_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HLTV_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                       appEnv,
		ServiceName:                  getEnv("APP_SERVICE_NAME", "esports-radar-api"),
		ServiceVersion:               getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		MatchCacheTTL:                matchCacheTTL,
		TeamCacheTTL:                 teamCacheTTL,
		ScraperTimeout:               scraperTimeout,
		ScraperMaxRetries:            scraperMaxRetries,
		ScraperCircuitEnabled:        scraperCircuitEnabled,
		ScraperCircuitFailureCount:   scraperCircuitFailureCount,
		ScraperCircuitOpenTimeout:    scraperCircuitOpenTimeout,
		ScraperCircuitHalfOpenMaxReq: scraperCircuitHalfOpenMaxReq,
		VLREnabled:                   vlrEnabled,
		VLRBaseURL:                   strings.TrimSpace(getEnv("VLR_BASE_URL", "https://vlr.orlandomm.net/api/v1")),
		VLRTeamsLimit:                vlrTeamsLimit,
		HLTVEnabled:                  hltvEnabled,
		HLTVBaseURL:                  strings.TrimSpace(getEnv("HLTV_BASE_URL", "https://hltv-api.vercel.app/api")),
		LogLevel:                     parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
