//go:build !linux && !freebsd && !darwin && !windows

package fsync

import "os"

// File flushes f using the portable os primitive.
func File(f *os.File, _ bool) error {
	return f.Sync()
}
