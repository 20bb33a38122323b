package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFile_CopiesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	want := []byte(`{"k": [1, 2, 3]}`)
	require.NoError(t, os.WriteFile(path, want, 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	data, release, err := readWhole(path)
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)
	require.NoError(t, release())
}
