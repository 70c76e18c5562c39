package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STATS_BACKEND", "MEDIA_TIMEOUT", "PUZZLE_EPOCH", "NODE_ENV"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "5175", cfg.Port)
	require.Equal(t, StatsSQLite, cfg.StatsBackend)
	require.Equal(t, 10*time.Second, cfg.MediaTimeout)
	require.True(t, cfg.PuzzleEpoch.Equal(time.Unix(0, 0)))
	require.False(t, cfg.Production)
	require.Equal(t, DefaultRules(), cfg.Rules)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STATS_BACKEND", "JSON")
	t.Setenv("MEDIA_TIMEOUT", "250ms")
	t.Setenv("MEDIA_BASE_URL", "http://media.local/")
	t.Setenv("PUZZLE_EPOCH", "2024-01-01")
	t.Setenv("JWT_EXPIRES_DAYS", "not-a-number")

	cfg := Load()
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, StatsJSON, cfg.StatsBackend)
	require.Equal(t, 250*time.Millisecond, cfg.MediaTimeout)
	require.Equal(t, "http://media.local", cfg.MediaBaseURL)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.PuzzleEpoch)
	require.Equal(t, 14, cfg.JWTExpiresDays)
}

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	require.Equal(t, 5, r.WordLength)
	require.Equal(t, 6, r.MaxGuesses)
	require.Equal(t, 8, r.MaxWrongGuesses)
	require.Equal(t, 12, r.GridSize)
}
