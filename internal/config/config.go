// Package config reads startup settings from the environment.
//
// There is no configuration file. Every setting has a default and an
// invalid value falls back to that default with a warning.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Johannes-Berggren/GitRecent/internal/models"
)

const (
	DefaultVisible = 5
	DefaultGit     = "git"
)

// Config holds the settings used for one run.
type Config struct {
	// MaxBranches caps how many branches are loaded.
	MaxBranches int

	// Visible is the number of menu rows shown at once.
	Visible int

	// ShowCurrent looks up the checked out branch to mark it in the menu.
	ShowCurrent bool

	// StrictCurrent makes a failed current-branch lookup fatal.
	StrictCurrent bool

	// GitPath is the git binary to run.
	GitPath string

	LogLevel slog.Level
}

var (
	MaxBranches   = Int("GITRECENT_MAX_BRANCHES", models.DefaultMaxBranches)
	Visible       = Int("GITRECENT_VISIBLE", DefaultVisible)
	ShowCurrent   = BoolWithDefault("GITRECENT_SHOW_CURRENT")
	StrictCurrent = Bool("GITRECENT_STRICT_CURRENT")
)

// Load reads the environment.
func Load() Config {
	git := Var("GITRECENT_GIT")
	if git == "" {
		git = DefaultGit
	}

	return Config{
		MaxBranches:   MaxBranches(),
		Visible:       Visible(),
		ShowCurrent:   ShowCurrent(true),
		StrictCurrent: StrictCurrent(),
		GitPath:       git,
		LogLevel:      LogLevel(),
	}
}

// LogLevel is read from GITRECENT_DEBUG.
// 0/false = INFO (default), 1/true = DEBUG, larger integers go below DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("GITRECENT_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Var returns an environment variable with surrounding quotes and spaces removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				slog.Warn("invalid environment variable, using default", "key", k, "value", s, "default", defaultValue)
				return defaultValue
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Int returns a reader for a positive integer variable.
func Int(key string, defaultValue int) func() int {
	return func() int {
		if s := Var(key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
				return defaultValue
			}
			return n
		}
		return defaultValue
	}
}

// Values returns the effective settings for display.
func (c Config) Values() map[string]string {
	return map[string]string{
		"GITRECENT_MAX_BRANCHES":   strconv.Itoa(c.MaxBranches),
		"GITRECENT_VISIBLE":        strconv.Itoa(c.Visible),
		"GITRECENT_SHOW_CURRENT":   strconv.FormatBool(c.ShowCurrent),
		"GITRECENT_STRICT_CURRENT": strconv.FormatBool(c.StrictCurrent),
		"GITRECENT_GIT":            c.GitPath,
		"GITRECENT_DEBUG":          fmt.Sprint(c.LogLevel),
	}
}
