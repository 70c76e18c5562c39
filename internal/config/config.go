// internal/config/config.go
//
// Runtime configuration for the sachgames server and CLI.
// Values come from the process environment; main loads a `.env` file first
// (godotenv), so local development can keep everything in one file.
//
// Game thresholds are not read from the environment. They live in Rules so the
// game packages stay generic and tests can build non-default variants.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	WordLength      = 5  // Wordle answer/guess length
	MaxGuesses      = 6  // Wordle rows
	MaxWrongGuesses = 8  // Hangman wrong-letter threshold
	GridSize        = 12 // Crossword grid edge
)

// Rules bundles the per-game thresholds.
type Rules struct {
	WordLength      int
	MaxGuesses      int
	MaxWrongGuesses int
	GridSize        int
}

// DefaultRules returns the classic thresholds.
func DefaultRules() Rules {
	return Rules{
		WordLength:      WordLength,
		MaxGuesses:      MaxGuesses,
		MaxWrongGuesses: MaxWrongGuesses,
		GridSize:        GridSize,
	}
}

// StatsBackend selects where win counts are persisted.
type StatsBackend string

const (
	StatsSQLite StatsBackend = "sqlite"
	StatsJSON   StatsBackend = "json"
	StatsMemory StatsBackend = "memory"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	Port     string
	LogLevel string

	DBPath       string
	StatsBackend StatsBackend
	StatsFile    string

	MediaBaseURL    string
	MediaTimeout    time.Duration
	MediaMaxSources int

	JWTSecret      string
	JWTExpiresDays int
	CookieName     string
	ClientOrigin   string
	Production     bool

	PuzzleEpoch time.Time

	Rules Rules
}

// Load reads the environment and applies defaults.
func Load() Config {
	return Config{
		Port:     getEnv("PORT", "5175"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBPath:       getEnv("DB_PATH", "./data/app.db"),
		StatsBackend: parseBackend(getEnv("STATS_BACKEND", string(StatsSQLite))),
		StatsFile:    getEnv("STATS_FILE", "./data/stats.json"),

		MediaBaseURL:    strings.TrimRight(getEnv("MEDIA_BASE_URL", "http://localhost:8000"), "/"),
		MediaTimeout:    envDuration("MEDIA_TIMEOUT", 10*time.Second),
		MediaMaxSources: envInt("MEDIA_MAX_SOURCES", 3),

		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTExpiresDays: envInt("JWT_EXPIRES_DAYS", 14),
		CookieName:     getEnv("COOKIE_NAME", "sachgames_token"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:     os.Getenv("NODE_ENV") == "production",

		PuzzleEpoch: envDate("PUZZLE_EPOCH", time.Unix(0, 0).UTC()),

		Rules: DefaultRules(),
	}
}

func parseBackend(s string) StatsBackend {
	switch StatsBackend(strings.ToLower(strings.TrimSpace(s))) {
	case StatsJSON:
		return StatsJSON
	case StatsMemory:
		return StatsMemory
	default:
		return StatsSQLite
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// envDate parses a YYYY-MM-DD value as midnight UTC.
func envDate(k string, def time.Time) time.Time {
	if v := os.Getenv(k); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t.UTC()
		}
	}
	return def
}
