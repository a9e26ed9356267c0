package diskusage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hyperjump/gamespace/internal/roots"
	"github.com/hyperjump/gamespace/pkg/utils"
	"go.uber.org/zap"
)

// Game is one installed game directory under a library root.
type Game struct {
	Name      string `json:"name" yaml:"name"`
	Platform  string `json:"platform" yaml:"platform"`
	Path      string `json:"path" yaml:"path"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Library is the result of scanning every root.
type Library struct {
	Games    []Game   `json:"games" yaml:"games"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// TotalBytes sums the size of every game.
func (l *Library) TotalBytes() int64 {
	var total int64
	for _, g := range l.Games {
		total += g.SizeBytes
	}
	return total
}

// ScanOption configures ScanLibraries.
type ScanOption func(*scanner)

type scanner struct {
	logger *zap.Logger
}

// WithLogger sets a logger for per-root and per-game debug output.
func WithLogger(l *zap.Logger) ScanOption {
	return func(s *scanner) { s.logger = l }
}

// ScanLibraries lists the immediate subdirectories of every existing root and
// measures their size. Roots are walked one after another. Unreadable roots and
// partially unreadable games are reported in Warnings instead of failing the scan.
// Games are ordered by size, largest first, then by name.
func ScanLibraries(rs []roots.Root, opts ...ScanOption) *Library {
	s := &scanner{}
	for _, opt := range opts {
		opt(s)
	}
	log := utils.OrNop(s.logger)

	lib := &Library{Games: []Game{}}
	for _, r := range rs {
		ok, err := roots.Exists(r)
		if err != nil {
			lib.Warnings = append(lib.Warnings, err.Error())
			continue
		}
		if !ok {
			log.Debug("library root missing, skipped", zap.String("root", r.Path))
			continue
		}
		entries, err := os.ReadDir(r.Path)
		if err != nil {
			lib.Warnings = append(lib.Warnings, fmt.Sprintf("cannot list %s: %v", r.Path, err))
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			path := filepath.Join(r.Path, e.Name())
			size, err := DirSize(path)
			if err != nil {
				lib.Warnings = append(lib.Warnings, fmt.Sprintf("incomplete size for %s: %v", path, err))
			}
			log.Debug("measured game", zap.String("path", path), zap.Int64("bytes", size))
			lib.Games = append(lib.Games, Game{
				Name:      e.Name(),
				Platform:  r.Label(),
				Path:      path,
				SizeBytes: size,
			})
		}
	}
	sort.SliceStable(lib.Games, func(i, j int) bool {
		if lib.Games[i].SizeBytes != lib.Games[j].SizeBytes {
			return lib.Games[i].SizeBytes > lib.Games[j].SizeBytes
		}
		return lib.Games[i].Name < lib.Games[j].Name
	})
	return lib
}
