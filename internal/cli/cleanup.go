package cli

import (
	"fmt"
	"io"

	"github.com/hyperjump/gamespace/internal/cleanup"
	"github.com/hyperjump/gamespace/pkg/utils"
)

// WriteCleanup writes the outcome of a cleanup run.
func WriteCleanup(w io.Writer, res *cleanup.Result, format OutputFormat) error {
	if done, err := encode(w, res, format); done {
		return err
	}
	for _, a := range res.Ambiguous {
		fmt.Fprintf(w, "Found more than 1 directory matching %s in %s...\n", res.Fragment, a.Root.Path)
		for _, m := range a.Matches {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
	switch res.Outcome {
	case cleanup.OutcomeRemoved:
		fmt.Fprintf(w, "Removed %s directory (%s freed).\n", res.Target, utils.FormatBytes(res.FreedBytes))
	case cleanup.OutcomeDryRun:
		fmt.Fprintf(w, "Would remove %s directory (%s).\n", res.Target, utils.FormatBytes(res.FreedBytes))
	case cleanup.OutcomeUnsafe:
		fmt.Fprintf(w, "Some executable files were found. The directory %s may not be safe to remove...\n", res.Target)
		for _, exe := range res.Executables {
			fmt.Fprintf(w, "  %s\n", exe)
		}
	case cleanup.OutcomeFailed:
		fmt.Fprintf(w, "Could not remove %s directory.\n", res.Target)
	default:
		if len(res.Ambiguous) == 0 {
			fmt.Fprintf(w, "No directory matching %s was found.\n", res.Fragment)
		}
	}
	return nil
}
