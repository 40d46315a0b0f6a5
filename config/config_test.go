package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ENV_FILE at a missing file and clears the variables Load reads
func isolate(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"GO_ENV", "ADDR", "ALLOWED_ORIGIN", "DB_PATH", "LOG_LEVEL", "LOG_FILE",
		"PREFETCH_ON_START", "TMDB_API_BASE_URL", "TMDB_API_TOKEN", "TMDB_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_API_TOKEN", "secret")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.Equal(t, "viewvault.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Prefetch)
	assert.Equal(t, DefaultTMDBBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, "secret", cfg.TMDB.Token)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)

	// The missing .env file is reported, not fatal
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "missing.env")
}

func TestLoad_MissingToken(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_API_TOKEN", "from-env")
	t.Setenv("ADDR", ":9000")

	cfg, err := Load([]string{
		"--addr", ":7000",
		"--tmdb-token", "from-flag",
		"--tmdb-base-url", "http://localhost:1234/3/",
		"--tmdb-timeout", "5s",
		"--prefetch",
		"--log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "from-flag", cfg.TMDB.Token)
	assert.Equal(t, "http://localhost:1234/3", cfg.TMDB.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.True(t, cfg.Prefetch)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvFile(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "TMDB_API_TOKEN=file-token\nTMDB_API_BASE_URL=http://example.test/3\nGO_ENV=production\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("ENV_FILE", envFile)

	// godotenv does not override variables that are already set
	t.Setenv("GO_ENV", "staging")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.TMDB.Token)
	assert.Equal(t, "http://example.test/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "staging", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("TMDB_API_TOKEN", "secret")

	_, err := Load([]string{"--log-level", "verbose"})
	assert.Error(t, err)
}
