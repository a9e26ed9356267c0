// Package cleanup finds and removes orphaned game installation directories.
//
// Roots are probed in registry order. The first root holding exactly one
// directory that matches the fragment decides the run: the directory is
// removed when it holds no executable files, and left alone otherwise.
// Roots with several matches are reported and skipped.
package cleanup

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hyperjump/gamespace/internal/config"
	"github.com/hyperjump/gamespace/internal/diskusage"
	"github.com/hyperjump/gamespace/internal/roots"
	"github.com/hyperjump/gamespace/pkg/utils"
	"go.uber.org/zap"
)

var (
	// ErrEmptyFragment is returned when the fragment is blank.
	ErrEmptyFragment = errors.New("empty fragment")
	// ErrUnreadable is returned when a root or matched directory cannot be listed.
	ErrUnreadable = errors.New("directory unreadable")
	// ErrRemoveFailed is returned when the target directory cannot be deleted.
	ErrRemoveFailed = errors.New("failed to remove directory")
)

// Outcome is the decision taken by a cleanup run.
type Outcome string

const (
	OutcomeNoMatch Outcome = "no_match"
	OutcomeRemoved Outcome = "removed"
	OutcomeUnsafe  Outcome = "unsafe"
	OutcomeDryRun  Outcome = "dry_run"
	OutcomeFailed  Outcome = "failed"
)

// Ambiguity records a root that held more than one matching directory.
type Ambiguity struct {
	Root    roots.Root `json:"root" yaml:"root"`
	Matches []string   `json:"matches" yaml:"matches"`
}

// Result describes what a cleanup run found and did.
type Result struct {
	Fragment    string      `json:"fragment" yaml:"fragment"`
	Outcome     Outcome     `json:"outcome" yaml:"outcome"`
	Root        *roots.Root `json:"root,omitempty" yaml:"root,omitempty"`
	Target      string      `json:"target,omitempty" yaml:"target,omitempty"`
	Executables []string    `json:"executables,omitempty" yaml:"executables,omitempty"`
	Ambiguous   []Ambiguity `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
	FreedBytes  int64       `json:"freed_bytes,omitempty" yaml:"freed_bytes,omitempty"`
}

// Remover deletes a directory tree.
type Remover interface {
	RemoveAll(path string) error
}

// RemoverFunc adapts a function to Remover.
type RemoverFunc func(path string) error

// RemoveAll calls f(path).
func (f RemoverFunc) RemoveAll(path string) error { return f(path) }

// Cleaner runs the orphan cleanup over a fixed list of roots.
type Cleaner struct {
	roots   []roots.Root
	config  *config.CleanupConfig
	exts    map[string]struct{}
	remover Remover
	logger  *zap.Logger
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithLogger sets a logger for scan decisions.
func WithLogger(l *zap.Logger) CleanerOption {
	return func(c *Cleaner) { c.logger = l }
}

// WithRemover replaces the filesystem removal used for the target directory.
func WithRemover(r Remover) CleanerOption {
	return func(c *Cleaner) { c.remover = r }
}

// NewCleaner creates a cleaner probing rs in order. cfg may be nil, which
// means leaf-name matching, a shallow executable check and the default
// executable extensions.
func NewCleaner(rs []roots.Root, cfg *config.CleanupConfig, opts ...CleanerOption) *Cleaner {
	if cfg == nil {
		cfg = &config.CleanupConfig{}
	}
	exts := cfg.ExecutableExtensions
	if exts == nil {
		exts = config.DefaultExecutableExtensions
	}
	c := &Cleaner{
		roots:   append([]roots.Root(nil), rs...),
		config:  cfg,
		exts:    normalizeExtensions(exts),
		remover: RemoverFunc(os.RemoveAll),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = utils.OrNop(c.logger)
	return c
}

// Run scans the roots for fragment and applies the cleanup decision.
// The returned Result is non-nil whenever the fragment is not blank, including
// when an error is returned, so callers can report what was seen before the failure.
func (c *Cleaner) Run(fragment string) (*Result, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, ErrEmptyFragment
	}
	res := &Result{Fragment: fragment, Outcome: OutcomeNoMatch}

	for _, r := range c.roots {
		ok, err := roots.Exists(r)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		if !ok {
			c.logger.Debug("root missing, skipped", zap.String("root", r.Path))
			continue
		}

		matches, err := c.findMatches(r, fragment)
		if err != nil {
			return res, err
		}
		if len(matches) == 0 {
			c.logger.Debug("no match in root", zap.String("root", r.Path), zap.String("fragment", fragment))
			continue
		}
		if len(matches) > 1 {
			c.logger.Info("more than one directory matches, root skipped",
				zap.String("root", r.Path),
				zap.String("fragment", fragment),
				zap.Strings("matches", matches))
			res.Ambiguous = append(res.Ambiguous, Ambiguity{Root: r, Matches: matches})
			continue
		}

		root := r
		res.Root = &root
		res.Target = matches[0]
		return res, c.decide(res)
	}
	return res, nil
}

// decide checks the single match in res.Target and removes it when safe.
func (c *Cleaner) decide(res *Result) error {
	exes, err := c.findExecutables(res.Target)
	if err != nil {
		return err
	}
	if len(exes) > 0 {
		res.Outcome = OutcomeUnsafe
		res.Executables = exes
		c.logger.Info("executables found, directory kept",
			zap.String("target", res.Target),
			zap.Int("executables", len(exes)))
		return nil
	}

	size, err := diskusage.DirSize(res.Target)
	if err != nil {
		c.logger.Warn("could not measure target size", zap.String("target", res.Target), zap.Error(err))
	}
	res.FreedBytes = size

	if c.config.DryRun {
		res.Outcome = OutcomeDryRun
		c.logger.Info("dry run, directory kept", zap.String("target", res.Target))
		return nil
	}

	c.logger.Info("removing directory", zap.String("target", res.Target), zap.Int64("bytes", size))
	if err := c.remover.RemoveAll(res.Target); err != nil {
		res.Outcome = OutcomeFailed
		res.FreedBytes = 0
		return fmt.Errorf("%w: %s: %w", ErrRemoveFailed, res.Target, err)
	}
	res.Outcome = OutcomeRemoved
	return nil
}
