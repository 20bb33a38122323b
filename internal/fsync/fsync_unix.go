//go:build linux || freebsd

package fsync

import (
	"os"

	"golang.org/x/sys/unix"
)

// File flushes f's data to stable storage. full is ignored; fdatasync is
// sufficient on these systems.
func File(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
