package diskusage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStat(t *testing.T) {
	u, err := Stat(context.Background(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if u.Total == 0 {
		t.Error("expected positive total")
	}
	if u.Used+u.Available != u.Total {
		t.Errorf("used (%d) + available (%d) != total (%d)", u.Used, u.Available, u.Total)
	}
}

func TestStat_invalidPath(t *testing.T) {
	_, err := Stat(context.Background(), filepath.Join(t.TempDir(), "does", "not", "exist"))
	if err == nil {
		t.Error("expected error for invalid path")
	}
}

func TestUsagePercent(t *testing.T) {
	u := &Usage{Total: 200}
	if got := u.Percent(50); got != 25 {
		t.Errorf("Percent(50) = %f, want 25", got)
	}
	if got := (&Usage{}).Percent(50); got != 0 {
		t.Errorf("zero total: got %f", got)
	}
	var nilUsage *Usage
	if got := nilUsage.Percent(50); got != 0 {
		t.Errorf("nil usage: got %f", got)
	}
}
