package roots

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	a := filepath.Join(t.TempDir(), "epic")
	b := filepath.Join(t.TempDir(), "steam")
	sep := string(os.PathListSeparator)

	tests := []struct {
		name string
		list string
		want []Root
	}{
		{"empty", "", nil},
		{"single path", a, []Root{{Path: a}}},
		{"path with platform", a + "=Epic Games", []Root{{Path: a, Platform: "Epic Games"}}},
		{"order kept", b + "=Steam" + sep + a + "=Epic", []Root{{Path: b, Platform: "Steam"}, {Path: a, Platform: "Epic"}}},
		{"blank entries skipped", sep + a + sep + sep, []Root{{Path: a}}},
		{"duplicates keep first", a + "=First" + sep + a + "=Second", []Root{{Path: a, Platform: "First"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.list)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.list, err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.list, got, tt.want)
			}
		})
	}
}

func TestParse_relativeRejected(t *testing.T) {
	_, err := Parse("games/steam")
	if !errors.Is(err, ErrRelativeRoot) {
		t.Fatalf("expected ErrRelativeRoot, got %v", err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"directory", dir, true},
		{"missing", filepath.Join(dir, "nope"), false},
		{"regular file", file, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Exists(Root{Path: tt.path})
			if err != nil {
				t.Fatalf("Exists: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRootLabel(t *testing.T) {
	if got := (Root{Path: "/games/steam", Platform: "Steam"}).Label(); got != "Steam" {
		t.Errorf("Label() = %s, want Steam", got)
	}
	if got := (Root{Path: filepath.Join(string(filepath.Separator), "games", "epic")}).Label(); got != "epic" {
		t.Errorf("Label() = %s, want epic", got)
	}
}

func TestDefault_returnsCopy(t *testing.T) {
	first := Default()
	if len(first) == 0 {
		t.Skip("no default roots on this platform")
	}
	first[0].Path = "mutated"
	if Default()[0].Path == "mutated" {
		t.Error("Default should return a fresh slice")
	}
	for _, r := range Default() {
		if !filepath.IsAbs(r.Path) {
			t.Errorf("default root %q is not absolute", r.Path)
		}
		if r.Platform == "" {
			t.Errorf("default root %q has no platform", r.Path)
		}
	}
}
