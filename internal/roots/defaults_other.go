//go:build !windows

package roots

import (
	"os"
	"path/filepath"
)

func defaultRoots() []Root {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	j := func(elem ...string) string {
		return filepath.Join(append([]string{home}, elem...)...)
	}
	return []Root{
		{Path: j(".steam", "steam", "steamapps", "common"), Platform: "Steam"},
		{Path: j(".local", "share", "Steam", "steamapps", "common"), Platform: "Steam"},
		{Path: j(".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam", "steamapps", "common"), Platform: "Steam (Flatpak)"},
		{Path: j("Games", "Heroic"), Platform: "Heroic"},
		{Path: j("Games", "Lutris"), Platform: "Lutris"},
		{Path: j("GOG Games"), Platform: "GOG"},
		{Path: j("Library", "Application Support", "Steam", "steamapps", "common"), Platform: "Steam"},
	}
}
