// Package config loads application settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
)

// DefaultTMDBBaseURL is used when no base URL is configured
const DefaultTMDBBaseURL = "https://api.themoviedb.org/3"

// ErrMissingToken is returned when no TMDB API token could be found
var ErrMissingToken = errors.New("TMDB_API_TOKEN is required")

// Config holds all runtime settings
type Config struct {
	// Server Configuration
	Env           string
	Addr          string
	AllowedOrigin string

	// Database Configuration
	DBPath string

	// Logging Configuration
	LogLevel string
	LogFile  string

	// Prefetch list pages into the cache on startup
	Prefetch bool

	TMDB TMDBConfig

	// Warnings are non-fatal problems found while loading, logged once the
	// logger is configured
	Warnings []string
}

// TMDBConfig holds the upstream API settings
type TMDBConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Load reads the .env file named by ENV_FILE (default ".env") into the
// environment, then parses args with every flag falling back to its
// environment variable. Variables already set are not overridden.
func Load(args []string) (*Config, error) {
	var warnings []string
	envFile := getEnvOrDefault("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		warnings = append(warnings, fmt.Sprintf("could not load %s file: %v", envFile, err))
	}

	app := kingpin.New("viewvault", "REST proxy over The Movie Database with a saved movie list.")

	env := app.Flag("env", "runtime environment (development or production)").
		Envar("GO_ENV").Default("development").String()
	addr := app.Flag("addr", "HTTP listen address").
		Envar("ADDR").Default(":8080").String()
	origin := app.Flag("allowed-origin", "value of Access-Control-Allow-Origin").
		Envar("ALLOWED_ORIGIN").Default("*").String()
	dbPath := app.Flag("db", "sqlite database path").
		Envar("DB_PATH").Default("viewvault.db").String()
	logLevel := app.Flag("log-level", "log level").
		Envar("LOG_LEVEL").Default("info").Enum("debug", "info", "warn", "error")
	logFile := app.Flag("log-file", "write logs to this rotated file instead of stdout").
		Envar("LOG_FILE").String()
	prefetch := app.Flag("prefetch", "warm the cache with every category on startup").
		Envar("PREFETCH_ON_START").Default("false").Bool()
	baseURL := app.Flag("tmdb-base-url", "TMDB API base URL").
		Envar("TMDB_API_BASE_URL").String()
	token := app.Flag("tmdb-token", "TMDB API bearer token").
		Envar("TMDB_API_TOKEN").String()
	timeout := app.Flag("tmdb-timeout", "timeout for a single TMDB request").
		Envar("TMDB_TIMEOUT").Default("30s").Duration()

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := &Config{
		Env:           *env,
		Addr:          *addr,
		AllowedOrigin: *origin,
		DBPath:        *dbPath,
		LogLevel:      *logLevel,
		LogFile:       *logFile,
		Prefetch:      *prefetch,
		TMDB: TMDBConfig{
			BaseURL: firstNonEmpty(*baseURL, DefaultTMDBBaseURL),
			Token:   firstNonEmpty(*token),
			Timeout: *timeout,
		},
		Warnings: warnings,
	}
	cfg.TMDB.BaseURL = strings.TrimRight(cfg.TMDB.BaseURL, "/")

	if cfg.TMDB.Token == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
