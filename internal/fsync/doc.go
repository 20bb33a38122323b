// Package fsync makes document writes durable.
//
// File flushes a descriptor with the strongest primitive the platform
// offers: fdatasync on Linux and FreeBSD, F_FULLFSYNC (or fsync) on macOS,
// FlushFileBuffers on Windows and (*os.File).Sync elsewhere.
//
// WriteAtomic replaces a file by writing a sibling temporary file, flushing
// it, renaming it over the target and then flushing the parent directory,
// so readers observe either the old or the new contents.
package fsync
