//go:build !unix

package mmfile

// Map reads the entire file when mmap is not used on this platform.
func Map(path string) ([]byte, func() error, error) {
	return readWhole(path)
}
