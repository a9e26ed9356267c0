package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hyperjump/gamespace/internal/roots"
)

// DefaultExecutableExtensions are the file types that mark a directory as
// still holding an installed game.
var DefaultExecutableExtensions = []string{".exe", ".bat", ".cmd", ".com", ".msi"}

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Drive == "" {
		cfg.Drive = defaultDrive()
	}
	if len(cfg.Roots) == 0 {
		cfg.Roots = roots.Default()
	}
	if cfg.Cleanup.ExecutableExtensions == nil {
		cfg.Cleanup.ExecutableExtensions = append([]string(nil), DefaultExecutableExtensions...)
	}
	if cfg.Journal.Path == "" && !cfg.Journal.Disabled {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.Journal.Path = filepath.Join(dir, "gamespace", "journal.db")
		}
	}
}

func defaultDrive() string {
	if runtime.GOOS == "windows" {
		return `D:\`
	}
	return "/"
}
