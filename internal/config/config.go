package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the keyword matching service
type Config struct {
	Server   ServerConfig
	Executor ExecutorConfig
	Match    MatchConfig
	Loader   LoaderConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// ExecutorConfig holds worker pool configuration
type ExecutorConfig struct {
	Workers     int
	QueueSize   int
	StopTimeout time.Duration
}

// MatchConfig holds per-call matching defaults and the keyword vocabulary source
type MatchConfig struct {
	TopKeywords  int
	TopSentences int
	KeywordsFile string
}

// LoaderConfig holds document loader configuration
type LoaderConfig struct {
	Timeout     time.Duration
	UserAgent   string
	RobotsCheck bool
}

// Load loads configuration from a .env file (if present) and environment
// variables with defaults
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: GetStringEnv("SERVER_ADDR", ":8080"),
		},
		Executor: ExecutorConfig{
			Workers:     GetIntEnv("EXECUTOR_WORKERS", 4),
			QueueSize:   GetIntEnv("EXECUTOR_QUEUE_SIZE", 100),
			StopTimeout: GetDurationEnv("EXECUTOR_STOP_TIMEOUT", 5*time.Second),
		},
		Match: MatchConfig{
			TopKeywords:  GetIntEnv("MATCH_TOP_KEYWORDS", 3),
			TopSentences: GetIntEnv("MATCH_TOP_SENTENCES", 1),
			KeywordsFile: GetStringEnv("KEYWORDS_FILE", ""),
		},
		Loader: LoaderConfig{
			Timeout:     GetDurationEnv("LOADER_TIMEOUT", 30*time.Second),
			UserAgent:   GetStringEnv("LOADER_USER_AGENT", "KeywordEngine/1.0"),
			RobotsCheck: GetBoolEnv("LOADER_ROBOTS_CHECK", true),
		},
	}
}

// LoadKeywords reads the keyword vocabulary from the configured file, one
// keyword per line, skipping blanks and '#' comments. An empty path falls
// back to the supplied defaults.
func (c *Config) LoadKeywords(defaults []string) ([]string, error) {
	if c.Match.KeywordsFile == "" {
		return defaults, nil
	}

	f, err := os.Open(c.Match.KeywordsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open keywords file: %w", err)
	}
	defer f.Close()

	var keywords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keywords file %s contains no keywords", c.Match.KeywordsFile)
	}
	return keywords, nil
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
