package worktree

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spectrena/sw/internal/format"
)

// DirSize sums the sizes of all regular files under path. A missing path
// is zero bytes, not an error. ok is false when the walk hit a filesystem
// error, in which case the size is unknown and callers must not treat it
// as zero.
func DirSize(path string) (bytes int64, ok bool) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return 0, true
	}

	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		bytes += info.Size()
		return nil
	})
	if err != nil {
		return 0, false
	}
	return bytes, true
}

// renderSize turns a DirSize result into the display string, "N/A" when
// the size is unknown.
func renderSize(bytes int64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return format.Size(bytes)
}
