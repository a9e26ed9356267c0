package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/hyperjump/gamespace/internal/diskusage"
	"github.com/hyperjump/gamespace/pkg/utils"
)

const maxNameWidth = 48

// Report is the output of the default (non-cleanup) mode.
type Report struct {
	Usage   *diskusage.Usage   `json:"usage" yaml:"usage"`
	Library *diskusage.Library `json:"library,omitempty" yaml:"library,omitempty"`
}

// WriteReport writes the drive usage and, when present, the library listing.
func WriteReport(w io.Writer, r *Report, format OutputFormat) error {
	if done, err := encode(w, r, format); done {
		return err
	}
	fmt.Fprintln(w)
	if r.Usage != nil {
		fmt.Fprintf(w, "         Total Space: %s\n", utils.FormatBytes(clampInt64(r.Usage.Total)))
		fmt.Fprintf(w, "          Used Space: %s\n", utils.FormatBytes(clampInt64(r.Usage.Used)))
		fmt.Fprintf(w, "Available Free Space: %s\n", utils.FormatBytes(clampInt64(r.Usage.Available)))
		fmt.Fprintln(w)
	}
	if r.Library != nil {
		writeLibraryText(w, r.Library, r.Usage)
	}
	return nil
}

func writeLibraryText(w io.Writer, lib *diskusage.Library, usage *diskusage.Usage) {
	if len(lib.Games) == 0 {
		fmt.Fprintln(w, "No games found.")
	}
	nameW, platW, sizeW := 0, 0, 0
	names := make([]string, len(lib.Games))
	sizes := make([]string, len(lib.Games))
	for i, g := range lib.Games {
		names[i] = utils.Truncate(g.Name, maxNameWidth)
		sizes[i] = utils.FormatBytes(g.SizeBytes)
		nameW = max(nameW, len([]rune(names[i])))
		platW = max(platW, len([]rune(g.Platform)))
		sizeW = max(sizeW, len(sizes[i]))
	}
	for i, g := range lib.Games {
		fmt.Fprintf(w, "%*s (%*s): %-*s [%.0f%%]\n",
			nameW, names[i], platW, g.Platform, sizeW, sizes[i], usage.Percent(g.SizeBytes))
	}
	if len(lib.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warn := range lib.Warnings {
			fmt.Fprintln(w, warn)
		}
	}
	fmt.Fprintln(w)
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
