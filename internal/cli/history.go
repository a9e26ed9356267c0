package cli

import (
	"fmt"
	"io"

	"github.com/hyperjump/gamespace/internal/journal"
	"github.com/hyperjump/gamespace/pkg/utils"
)

// WriteHistory writes journal entries, newest first as given.
func WriteHistory(w io.Writer, entries []*journal.Entry, format OutputFormat) error {
	if entries == nil {
		entries = []*journal.Entry{}
	}
	if done, err := encode(w, entries, format); done {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No cleanups recorded.")
		return nil
	}
	for _, e := range entries {
		where := e.Target
		if where == "" {
			where = "-"
		}
		fmt.Fprintf(w, "%s  %-8s  %-24s  %s", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Outcome, utils.Truncate(e.Fragment, 24), where)
		if e.FreedBytes > 0 {
			fmt.Fprintf(w, "  (%s)", utils.FormatBytes(e.FreedBytes))
		}
		if e.Detail != "" {
			fmt.Fprintf(w, "  # %s", e.Detail)
		}
		fmt.Fprintln(w)
	}
	return nil
}
