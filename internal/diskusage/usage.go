package diskusage

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Usage is the capacity of the filesystem holding Path.
type Usage struct {
	Path      string `json:"path" yaml:"path"`
	Total     uint64 `json:"total_bytes" yaml:"total_bytes"`
	Used      uint64 `json:"used_bytes" yaml:"used_bytes"`
	Available uint64 `json:"available_bytes" yaml:"available_bytes"`
}

// Stat reads the capacity of the drive containing path.
// Used is Total minus the space available to the current user.
func Stat(ctx context.Context, path string) (*Usage, error) {
	st, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk usage of %s: %w", path, err)
	}
	u := &Usage{Path: path, Total: st.Total, Available: st.Free}
	if st.Total > st.Free {
		u.Used = st.Total - st.Free
	}
	return u, nil
}

// Percent returns part as a share of u.Total in percent, or 0 when Total is unknown.
func (u *Usage) Percent(part int64) float64 {
	if u == nil || u.Total == 0 || part <= 0 {
		return 0
	}
	return float64(part) / float64(u.Total) * 100
}
