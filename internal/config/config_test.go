package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyword-engine/backend/internal/config"
)

func clearEnvVars() {
	for _, key := range []string{
		"SERVER_ADDR",
		"EXECUTOR_WORKERS", "EXECUTOR_QUEUE_SIZE", "EXECUTOR_STOP_TIMEOUT",
		"MATCH_TOP_KEYWORDS", "MATCH_TOP_SENTENCES", "KEYWORDS_FILE",
		"LOADER_TIMEOUT", "LOADER_USER_AGENT", "LOADER_ROBOTS_CHECK",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	clearEnvVars()

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Executor.Workers)
	assert.Equal(t, 100, cfg.Executor.QueueSize)
	assert.Equal(t, 5*time.Second, cfg.Executor.StopTimeout)
	assert.Equal(t, 3, cfg.Match.TopKeywords)
	assert.Equal(t, 1, cfg.Match.TopSentences)
	assert.Equal(t, "", cfg.Match.KeywordsFile)
	assert.Equal(t, 30*time.Second, cfg.Loader.Timeout)
	assert.True(t, cfg.Loader.RobotsCheck)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envVars := map[string]string{
		"SERVER_ADDR":           ":9090",
		"EXECUTOR_WORKERS":      "8",
		"EXECUTOR_QUEUE_SIZE":   "50",
		"EXECUTOR_STOP_TIMEOUT": "10s",
		"MATCH_TOP_KEYWORDS":    "5",
		"MATCH_TOP_SENTENCES":   "2",
		"LOADER_TIMEOUT":        "15s",
		"LOADER_ROBOTS_CHECK":   "false",
	}
	for key, value := range envVars {
		os.Setenv(key, value)
	}
	defer clearEnvVars()

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 8, cfg.Executor.Workers)
	assert.Equal(t, 50, cfg.Executor.QueueSize)
	assert.Equal(t, 10*time.Second, cfg.Executor.StopTimeout)
	assert.Equal(t, 5, cfg.Match.TopKeywords)
	assert.Equal(t, 2, cfg.Match.TopSentences)
	assert.Equal(t, 15*time.Second, cfg.Loader.Timeout)
	assert.False(t, cfg.Loader.RobotsCheck)
}

func TestLoadKeywordsDefaults(t *testing.T) {
	clearEnvVars()
	cfg := config.Load()

	defaults := []string{"Baking", "Grilling"}
	keywords, err := cfg.LoadKeywords(defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, keywords)
}

func TestLoadKeywordsFromFile(t *testing.T) {
	clearEnvVars()

	path := filepath.Join(t.TempDir(), "keywords.txt")
	content := "# cooking techniques\nBaking\n\nGrilling\n  Sous Vide  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	os.Setenv("KEYWORDS_FILE", path)
	defer clearEnvVars()

	cfg := config.Load()
	keywords, err := cfg.LoadKeywords(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Baking", "Grilling", "Sous Vide"}, keywords)
}

func TestLoadKeywordsEmptyFile(t *testing.T) {
	clearEnvVars()

	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("# nothing here\n"), 0644))

	os.Setenv("KEYWORDS_FILE", path)
	defer clearEnvVars()

	cfg := config.Load()
	_, err := cfg.LoadKeywords(nil)
	assert.Error(t, err)
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	clearEnvVars()

	os.Setenv("KEYWORDS_FILE", filepath.Join(t.TempDir(), "missing.txt"))
	defer clearEnvVars()

	cfg := config.Load()
	_, err := cfg.LoadKeywords(nil)
	assert.Error(t, err)
}

func TestGetIntEnv(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		defaultValue int
		expected     int
	}{
		{"Valid int", "42", 10, 42},
		{"Invalid int", "not_a_number", 10, 10},
		{"Empty", "", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("TEST_INT")
			if tt.envValue != "" {
				os.Setenv("TEST_INT", tt.envValue)
				defer os.Unsetenv("TEST_INT")
			}
			assert.Equal(t, tt.expected, config.GetIntEnv("TEST_INT", tt.defaultValue))
		})
	}
}

func TestGetDurationEnv(t *testing.T) {
	os.Setenv("TEST_DURATION", "90s")
	defer os.Unsetenv("TEST_DURATION")

	assert.Equal(t, 90*time.Second, config.GetDurationEnv("TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, config.GetDurationEnv("TEST_DURATION_MISSING", time.Minute))
}
