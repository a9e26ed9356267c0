package cleanup

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/gamespace/internal/roots"
)

// findMatches returns the immediate subdirectories of r whose leaf name (or
// full path, with MatchFullPath) contains fragment. Symlinks are never matched.
func (c *Cleaner) findMatches(r roots.Root, fragment string) ([]string, error) {
	entries, err := os.ReadDir(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, r.Path, err)
	}
	var matches []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(r.Path, e.Name())
		subject := e.Name()
		if c.config.MatchFullPath {
			subject = path
		}
		if strings.Contains(subject, fragment) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// findExecutables lists files with an executable extension directly inside
// dir, or anywhere below it when Deep is set.
func (c *Cleaner) findExecutables(dir string) ([]string, error) {
	if !c.config.Deep {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, dir, err)
		}
		var exes []string
		for _, e := range entries {
			if !e.IsDir() && c.isExecutable(e.Name()) {
				exes = append(exes, filepath.Join(dir, e.Name()))
			}
		}
		return exes, nil
	}

	var exes []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
		}
		if !d.IsDir() && c.isExecutable(d.Name()) {
			exes = append(exes, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return exes, nil
}

func (c *Cleaner) isExecutable(name string) bool {
	_, ok := c.exts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// normalizeExtensions lowercases extensions and adds the leading dot when missing.
func normalizeExtensions(exts []string) map[string]struct{} {
	out := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out[e] = struct{}{}
	}
	return out
}
