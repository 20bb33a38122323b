package fsync

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic replaces path with data. The file is created with perm when
// it does not exist; an existing file keeps its mode.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("fsync: create temp: %w", err)
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("fsync: write %s: %w", name, err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("fsync: chmod %s: %w", name, err)
	}
	if err = File(tmp, true); err != nil {
		return fmt.Errorf("fsync: flush %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fsync: close %s: %w", name, err)
	}
	if err = os.Rename(name, path); err != nil {
		return fmt.Errorf("fsync: rename: %w", err)
	}
	return Dir(dir)
}
