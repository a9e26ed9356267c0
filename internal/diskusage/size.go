// Package diskusage reports drive capacity and the on-disk size of game directories.
package diskusage

import (
	"errors"
	"io/fs"
	"path/filepath"
)

// DirSize sums the sizes of regular files below dir without following symlinks.
// Entries that cannot be read are skipped; the returned size covers everything
// that was readable and err joins every failure encountered.
func DirSize(dir string) (int64, error) {
	var total int64
	var errs []error
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			errs = append(errs, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, errors.Join(errs...)
}
