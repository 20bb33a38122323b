// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/sjsonkit/config"
)

// SampleSJSON is a small settings document touching every value kind the
// text format can express.
const SampleSJSON = `// window settings
window = { width = 800, height = 600 }
recent = ["a.txt" "b.txt"]
title = "demo"
`

// WriteFile creates name in a fresh temporary directory with content and
// returns its path. The directory is removed when the test ends.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// NewDoc returns the root of an empty order-preserving object store that is
// closed when the test ends.
//
// Example:
//
//	root := testutil.NewDoc(t)
//	root.Add("a").SetNumber(1)
func NewDoc(t testing.TB) config.Handle {
	t.Helper()
	store := config.New(config.Object, config.Options{PreserveOrder: true})
	t.Cleanup(store.Close)
	return store.Root()
}
