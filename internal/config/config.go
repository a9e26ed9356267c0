// Package config holds runtime settings for gamespace, assembled from
// defaults, GAMESPACE_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hyperjump/gamespace/internal/roots"
)

// Environment variable names.
const (
	EnvRoots   = "GAMESPACE_ROOTS"
	EnvDrive   = "GAMESPACE_DRIVE"
	EnvJournal = "GAMESPACE_JOURNAL"
	EnvDebug   = "GAMESPACE_DEBUG"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `json:"debug" yaml:"debug"`
	Drive   string        `json:"drive" yaml:"drive"`
	Roots   []roots.Root  `json:"roots" yaml:"roots"`
	Cleanup CleanupConfig `json:"cleanup" yaml:"cleanup"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// CleanupConfig controls how orphaned directories are matched and checked.
type CleanupConfig struct {
	MatchFullPath        bool     `json:"match_full_path" yaml:"match_full_path"`
	Deep                 bool     `json:"deep" yaml:"deep"`
	DryRun               bool     `json:"dry_run" yaml:"dry_run"`
	ExecutableExtensions []string `json:"executable_extensions" yaml:"executable_extensions"`
}

// JournalConfig holds the removal journal location.
type JournalConfig struct {
	Path     string `json:"path" yaml:"path"`
	Disabled bool   `json:"disabled" yaml:"disabled"`
}

// Enabled reports whether cleanup decisions should be written to the journal.
func (j *JournalConfig) Enabled() bool {
	return !j.Disabled && j.Path != ""
}

// ApplyEnv copies GAMESPACE_* variables found through lookup into cfg.
// A set but empty GAMESPACE_JOURNAL disables the journal.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRoots); ok && strings.TrimSpace(v) != "" {
		rs, err := roots.Parse(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRoots, err)
		}
		cfg.Roots = rs
	}
	if v, ok := lookup(EnvDrive); ok && v != "" {
		cfg.Drive = v
	}
	if v, ok := lookup(EnvJournal); ok {
		if v == "" {
			cfg.Journal.Disabled = true
		} else {
			cfg.Journal.Path = v
		}
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	return nil
}
