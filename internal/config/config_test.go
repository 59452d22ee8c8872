package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"GITRECENT_MAX_BRANCHES", "GITRECENT_VISIBLE", "GITRECENT_SHOW_CURRENT",
		"GITRECENT_STRICT_CURRENT", "GITRECENT_GIT", "GITRECENT_DEBUG",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, 200, cfg.MaxBranches)
	assert.Equal(t, 5, cfg.Visible)
	assert.True(t, cfg.ShowCurrent)
	assert.False(t, cfg.StrictCurrent)
	assert.Equal(t, "git", cfg.GitPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GITRECENT_MAX_BRANCHES", "50")
	t.Setenv("GITRECENT_VISIBLE", " '8' ")
	t.Setenv("GITRECENT_SHOW_CURRENT", "false")
	t.Setenv("GITRECENT_STRICT_CURRENT", "1")
	t.Setenv("GITRECENT_GIT", "/usr/local/bin/git")
	t.Setenv("GITRECENT_DEBUG", "1")

	cfg := Load()
	assert.Equal(t, 50, cfg.MaxBranches)
	assert.Equal(t, 8, cfg.Visible)
	assert.False(t, cfg.ShowCurrent)
	assert.True(t, cfg.StrictCurrent)
	assert.Equal(t, "/usr/local/bin/git", cfg.GitPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestIntInvalidFallsBack(t *testing.T) {
	cases := map[string]string{
		"not a number": "abc",
		"zero":         "0",
		"negative":     "-3",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("GITRECENT_VISIBLE", value)
			require.Equal(t, DefaultVisible, Visible())
		})
	}
}

func TestBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("GITRECENT_SHOW_CURRENT", "maybe")
	require.True(t, ShowCurrent(true))
	require.False(t, ShowCurrent(false))
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("GITRECENT_DEBUG", value)
			require.Equal(t, want, LogLevel())
		})
	}
}
