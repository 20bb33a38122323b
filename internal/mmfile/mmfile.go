// Package mmfile maps documents into memory for parsing.
package mmfile

import (
	"errors"
	"os"
)

// ErrTooLarge indicates a file bigger than the address space allows mapping.
var ErrTooLarge = errors.New("mmfile: file too large to map")

// maxMapSize is the largest file Map accepts.
const maxMapSize = int64(^uint(0) >> 1)

func noop() error { return nil }

// ReadFile maps path, copies the contents out and releases the mapping.
// Use it when the bytes must outlive the call.
func ReadFile(path string) ([]byte, error) {
	data, release, err := Map(path)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	copy(out, data)
	if err := release(); err != nil {
		return nil, err
	}
	return out, nil
}

// readWhole is the Map implementation for platforms without mmap support.
func readWhole(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
