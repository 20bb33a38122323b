//go:build !unix

package fsync

// Dir is a no-op; directory handles cannot be flushed here.
func Dir(string) error { return nil }
