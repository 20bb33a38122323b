package fsync

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "sync")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("a = 1\n")
	require.NoError(t, err)
	require.NoError(t, File(f, false))
	require.NoError(t, File(f, true))
}

func TestWriteAtomic_Create(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.sjson")

	require.NoError(t, WriteAtomic(path, []byte("a = 1\n"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a = 1\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must not linger")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestWriteAtomic_ReplaceKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix permissions")
	}
	path := filepath.Join(t.TempDir(), "settings.sjson")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))

	require.NoError(t, WriteAtomic(path, []byte("new"), 0o600))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestWriteAtomic_MissingDir(t *testing.T) {
	err := WriteAtomic(filepath.Join(t.TempDir(), "no", "such", "file"), []byte("x"), 0o644)
	require.Error(t, err)
}

func TestDir(t *testing.T) {
	require.NoError(t, Dir(t.TempDir()))
}
