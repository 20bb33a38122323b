//go:build windows

package fsync

import (
	"os"

	"golang.org/x/sys/windows"
)

// File flushes f's buffers to disk.
func File(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
