// Package roots holds the ordered registry of game-library install roots.
package roots

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrRelativeRoot is returned by Parse for entries that are not absolute paths.
var ErrRelativeRoot = errors.New("root path must be absolute")

// Root is one game-library install location.
type Root struct {
	Path     string `json:"path" yaml:"path"`
	Platform string `json:"platform" yaml:"platform"`
}

// String returns "path (platform)", or just the path when no platform is set.
func (r Root) String() string {
	if r.Platform == "" {
		return r.Path
	}
	return fmt.Sprintf("%s (%s)", r.Path, r.Platform)
}

// Label returns the platform, falling back to the base name of the path.
func (r Root) Label() string {
	if r.Platform != "" {
		return r.Platform
	}
	return filepath.Base(r.Path)
}

// Default returns the built-in registry for the current platform, in probe order.
func Default() []Root {
	return Dedup(defaultRoots())
}

// Parse reads a path list (entries separated by os.PathListSeparator) where
// each entry is "path" or "path=Platform". Blank entries are ignored and
// duplicate paths keep their first occurrence.
func Parse(list string) ([]Root, error) {
	var out []Root
	for _, entry := range filepath.SplitList(list) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		r, err := ParseEntry(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return Dedup(out), nil
}

// ParseEntry parses a single "path" or "path=Platform" entry.
func ParseEntry(entry string) (Root, error) {
	path, platform := entry, ""
	if i := strings.LastIndexByte(entry, '='); i >= 0 {
		path, platform = entry[:i], strings.TrimSpace(entry[i+1:])
	}
	path = strings.TrimSpace(path)
	if !filepath.IsAbs(path) {
		return Root{}, fmt.Errorf("%w: %q", ErrRelativeRoot, path)
	}
	return Root{Path: filepath.Clean(path), Platform: platform}, nil
}

// Dedup drops roots whose cleaned path already appeared earlier in the list.
func Dedup(in []Root) []Root {
	seen := make(map[string]struct{}, len(in))
	out := make([]Root, 0, len(in))
	for _, r := range in {
		key := filepath.Clean(r.Path)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Exists reports whether r is an existing directory. A missing path or a
// non-directory yields false with no error; other stat failures are returned.
func Exists(r Root) (bool, error) {
	info, err := os.Stat(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat root %s: %w", r.Path, err)
	}
	return info.IsDir(), nil
}
