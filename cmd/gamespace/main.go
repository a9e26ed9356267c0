// Package main is the gamespace CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperjump/gamespace/internal/cleanup"
	"github.com/hyperjump/gamespace/internal/cli"
	"github.com/hyperjump/gamespace/internal/config"
	"github.com/hyperjump/gamespace/internal/diskusage"
	"github.com/hyperjump/gamespace/internal/journal"
	"github.com/hyperjump/gamespace/internal/roots"
	"github.com/hyperjump/gamespace/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

// rootList collects repeated --root flags.
type rootList []roots.Root

func (l *rootList) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

func (l *rootList) Set(v string) error {
	r, err := roots.ParseEntry(v)
	if err != nil {
		return err
	}
	*l = append(*l, r)
	return nil
}

type options struct {
	cleanup     bool
	list        bool
	history     bool
	showVersion bool
	debug       bool
	dryRun      bool
	deep        bool
	matchPath   bool
	roots       rootList
	drive       string
	journal     string
	journalSet  bool
	output      string
	limit       int
	words       []string
}

// parseArgs parses flags that may appear before, between or after the
// positional words. Go's flag package stops at the first non-flag argument,
// so parsing resumes after each positional word.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("gamespace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.BoolVar(&o.cleanup, "cleanup", false, "remove the orphaned game directory matching the remaining words")
	fs.BoolVar(&o.dryRun, "dry-run", false, "report what --cleanup would remove without deleting")
	fs.BoolVar(&o.deep, "deep", false, "look for executables in every subdirectory of the match")
	fs.BoolVar(&o.matchPath, "match-path", false, "match against the full path instead of the directory name")
	fs.BoolVar(&o.list, "list", false, "list installed games by size after the drive report")
	fs.BoolVar(&o.history, "history", false, "show recorded cleanups")
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.Var(&o.roots, "root", "game library root as path or path=Platform (repeatable; replaces built-in roots)")
	fs.StringVar(&o.drive, "drive", "", "drive to report on")
	fs.StringVar(&o.journal, "journal", "", "cleanup journal database (empty disables)")
	fs.StringVar(&o.output, "output", "text", "output format: text, json, or yaml")
	fs.IntVar(&o.limit, "limit", 20, "number of journal entries shown by --history")

	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		o.words = append(o.words, args[0])
		args = args[1:]
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "journal" {
			o.journalSet = true
		}
	})

	modes := 0
	for _, m := range []bool{o.cleanup, o.history} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		return nil, errors.New("--cleanup and --history cannot be combined")
	}
	if !o.cleanup && len(o.words) > 0 {
		return nil, fmt.Errorf("unexpected argument %q (did you mean --cleanup?)", o.words[0])
	}
	return o, nil
}

// buildConfig layers flags over GAMESPACE_* variables over defaults.
func buildConfig(o *options, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg := &config.Config{}
	if err := config.ApplyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if len(o.roots) > 0 {
		cfg.Roots = roots.Dedup(o.roots)
	}
	if o.drive != "" {
		cfg.Drive = o.drive
	}
	if o.journalSet {
		cfg.Journal.Path = o.journal
		cfg.Journal.Disabled = o.journal == ""
	}
	cfg.Debug = cfg.Debug || o.debug
	cfg.Cleanup.DryRun = o.dryRun
	cfg.Cleanup.Deep = o.deep
	cfg.Cleanup.MatchFullPath = o.matchPath
	config.ApplyDefaults(cfg)
	return cfg, nil
}

func run(args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "gamespace version %s\n", version)
		return exitOK
	}
	format, err := cli.ParseOutputFormat(o.output)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}
	cfg, err := buildConfig(o, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return exitUsage
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return exitError
	}
	defer logger.Sync()
	logger.Debug("config loaded",
		zap.String("drive", cfg.Drive),
		zap.Int("roots", len(cfg.Roots)),
		zap.String("journal", cfg.Journal.Path),
		zap.Bool("journal_enabled", cfg.Journal.Enabled()))

	ctx := context.Background()

	if handled, code := attemptCleanup(ctx, o, cfg, logger, stdout, stderr, format); handled {
		return code
	}
	if o.history {
		return runHistory(ctx, cfg, o.limit, stdout, stderr, format)
	}
	return runReport(ctx, cfg, o.list, logger, stdout, stderr, format)
}

// attemptCleanup runs the orphan cleanup when --cleanup was given. handled
// reports whether the flag was present, not whether anything was deleted.
func attemptCleanup(ctx context.Context, o *options, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer, format cli.OutputFormat) (handled bool, code int) {
	if !o.cleanup {
		return false, exitOK
	}
	fragment := strings.Join(o.words, " ")

	c := cleanup.NewCleaner(cfg.Roots, &cfg.Cleanup, cleanup.WithLogger(logger))
	res, runErr := c.Run(fragment)
	if errors.Is(runErr, cleanup.ErrEmptyFragment) {
		fmt.Fprintln(stderr, "Usage: gamespace --cleanup [flags] <fragment...>")
		return true, exitUsage
	}

	recordCleanup(ctx, cfg, res, runErr, logger)

	if res != nil {
		if err := cli.WriteCleanup(stdout, res, format); err != nil {
			fmt.Fprintf(stderr, "Output failed: %v\n", err)
			return true, exitError
		}
	}
	if runErr != nil {
		fmt.Fprintf(stderr, "Cleanup failed: %v\n", runErr)
		return true, exitError
	}
	return true, exitOK
}

// recordCleanup writes res to the journal. Journal problems never change the outcome.
func recordCleanup(ctx context.Context, cfg *config.Config, res *cleanup.Result, runErr error, logger *zap.Logger) {
	if res == nil || !cfg.Journal.Enabled() {
		return
	}
	j, err := journal.NewSQLiteJournal(cfg.Journal.Path)
	if err != nil {
		logger.Warn("journal unavailable", zap.String("path", cfg.Journal.Path), zap.Error(err))
		return
	}
	defer j.Close()
	if err := j.Record(ctx, entryFromResult(res, runErr)); err != nil {
		logger.Warn("journal write failed", zap.Error(err))
	}
}

func entryFromResult(res *cleanup.Result, runErr error) *journal.Entry {
	e := &journal.Entry{
		Fragment:   res.Fragment,
		Target:     res.Target,
		Outcome:    string(res.Outcome),
		FreedBytes: res.FreedBytes,
	}
	if res.Root != nil {
		e.Root = res.Root.Path
	}
	var details []string
	if len(res.Ambiguous) > 0 {
		skipped := make([]string, len(res.Ambiguous))
		for i, a := range res.Ambiguous {
			skipped[i] = a.Root.Path
		}
		details = append(details, "ambiguous in "+strings.Join(skipped, ", "))
	}
	if len(res.Executables) > 0 {
		details = append(details, fmt.Sprintf("%d executable(s)", len(res.Executables)))
	}
	if runErr != nil {
		details = append(details, runErr.Error())
	}
	e.Detail = strings.Join(details, "; ")
	if res.Outcome != cleanup.OutcomeRemoved {
		e.FreedBytes = 0
	}
	return e
}

func runHistory(ctx context.Context, cfg *config.Config, limit int, stdout, stderr io.Writer, format cli.OutputFormat) int {
	if !cfg.Journal.Enabled() {
		fmt.Fprintln(stderr, "Journal is disabled; set --journal or GAMESPACE_JOURNAL")
		return exitUsage
	}
	j, err := journal.NewSQLiteJournal(cfg.Journal.Path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open journal: %v\n", err)
		return exitError
	}
	defer j.Close()
	entries, err := j.List(ctx, limit)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read journal: %v\n", err)
		return exitError
	}
	if err := cli.WriteHistory(stdout, entries, format); err != nil {
		fmt.Fprintf(stderr, "Output failed: %v\n", err)
		return exitError
	}
	return exitOK
}

func runReport(ctx context.Context, cfg *config.Config, list bool, logger *zap.Logger, stdout, stderr io.Writer, format cli.OutputFormat) int {
	usage, err := diskusage.Stat(ctx, cfg.Drive)
	if err != nil {
		fmt.Fprintf(stderr, "Disk usage failed: %v\n", err)
		return exitError
	}
	report := &cli.Report{Usage: usage}
	if list {
		report.Library = diskusage.ScanLibraries(cfg.Roots, diskusage.WithLogger(logger))
	}
	if err := cli.WriteReport(stdout, report, format); err != nil {
		fmt.Fprintf(stderr, "Output failed: %v\n", err)
		return exitError
	}
	return exitOK
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `gamespace - drive usage and orphaned game directory cleanup

Usage:
  gamespace [flags]                          Show drive usage
  gamespace --list [flags]                   Show drive usage and installed games by size
  gamespace --cleanup [flags] <fragment...>  Remove the orphaned game directory matching fragment
  gamespace --history [flags]                Show recorded cleanups
  gamespace --version                        Show version

Cleanup:
  Roots are probed in order. The first root holding exactly one directory whose
  name contains the fragment decides: the directory is removed unless it still
  holds executables. Roots with several matches are reported and skipped.

Flags:
  --root path[=Platform]   Game library root (repeatable; replaces built-in roots)
  --drive path             Drive to report on (default: D:\ on Windows, / elsewhere)
  --dry-run                Show what --cleanup would remove
  --deep                   Check every subdirectory of the match for executables
  --match-path             Match the fragment against the full path
  --journal path           Cleanup journal database ("" disables)
  --limit n                Entries shown by --history (default: 20)
  --output string          Output format: text, json, or yaml (default: text)
  --debug                  Enable debug logging

Environment:
  GAMESPACE_ROOTS     Root list separated by the OS path list separator
  GAMESPACE_DRIVE     Drive to report on
  GAMESPACE_JOURNAL   Journal database ("" disables)
  GAMESPACE_DEBUG     Enable debug logging

Examples:
  gamespace
  gamespace --list --output json
  gamespace --cleanup Portal 2
  gamespace --cleanup --dry-run --deep "Alan Wake"
  gamespace --root /games/epic=Epic --root /games/steam=Steam --cleanup Portal`)
}
