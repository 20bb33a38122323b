//go:build darwin

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// File flushes f to disk. With full set it issues F_FULLFSYNC so the data
// leaves the drive cache as well.
func File(f *os.File, full bool) error {
	fd := int(f.Fd())
	if full {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0); err == nil {
			return nil
		}
		// Some filesystems reject F_FULLFSYNC.
	}
	return unix.Fsync(fd)
}
