//go:build unix

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// Dir flushes the directory entry table of dir so a preceding rename
// survives a crash.
func Dir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := unix.Fsync(int(d.Fd())); err != nil && err != unix.EINVAL {
		return err
	}
	return nil
}
