package sjson

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joshuapare/sjsonkit/config"
	"github.com/joshuapare/sjsonkit/internal/fsync"
	"github.com/joshuapare/sjsonkit/internal/logger"
	"github.com/joshuapare/sjsonkit/internal/mmfile"
)

// FilePerm is the mode given to files WriteFile creates.
const FilePerm fs.FileMode = 0o644

// ReadFile parses the file at path. The file is mapped for the duration of
// the call only; the returned Store holds no reference to it.
func ReadFile(path string, opts ParseOptions) (*config.Store, error) {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("sjson: read %s: %w", path, err)
	}
	src, err := decodeInput(data, opts.Latin1Fallback)
	if rerr := release(); rerr != nil && err == nil {
		err = rerr
	}
	if err != nil {
		return nil, fmt.Errorf("sjson: read %s: %w", path, err)
	}

	store, err := ParseString(src, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// WriteFile serializes h and stores it at path followed by a newline.
//
// With opts.SkipUnchanged set, a file that already holds exactly those bytes
// is not touched and written is false. Otherwise the data goes to a temporary
// file that is flushed and renamed over path.
func WriteFile(path string, h config.Handle, opts WriteOptions) (written bool, err error) {
	data := Write(h, opts)
	data = append(data, '\n')

	if opts.SkipUnchanged {
		existing, rerr := mmfile.ReadFile(path)
		switch {
		case rerr == nil && bytes.Equal(existing, data):
			logger.Debug("sjson: file unchanged, skipping write", "path", path, "bytes", len(data))
			return false, nil
		case rerr != nil && !errors.Is(rerr, fs.ErrNotExist):
			logger.Warn("sjson: comparing with existing file failed", "path", path, "error", rerr)
		}
	}

	if err := fsync.WriteAtomic(path, data, FilePerm); err != nil {
		return false, fmt.Errorf("sjson: write %s: %w", path, err)
	}
	logger.Debug("sjson: wrote file", "path", path, "bytes", len(data))
	return true, nil
}

// WriteFileFunc builds a document with build and writes it with WriteFile.
// The root is an object. Nothing is written when build fails.
func WriteFileFunc(path string, opts WriteOptions, build func(root config.Handle) error) (bool, error) {
	store := config.New(config.Object, config.Options{PreserveOrder: true})
	defer store.Close()

	if err := build(store.Root()); err != nil {
		return false, err
	}
	return WriteFile(path, store.Root(), opts)
}
