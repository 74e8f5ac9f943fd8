package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempPattern is the name pattern of in-flight save files. A file matching it
// that outlives a process is debris from an interrupted save.
const TempPattern = ".todol-*.tmp"

// LockPath returns the advisory lock file cooperating processes use for the
// list at listPath. This package never takes the lock itself.
func LockPath(listPath string) string {
	return listPath + ".lock"
}

// writeAtomic replaces path with data using the temp file + fsync + rename
// pattern, so readers see either the old content or the new, never a mix.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, TempPattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Clean up temp file on error.
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting temp file mode: %w", err)
	}

	n, err := tmp.Write(data)
	if err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if n != len(data) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
