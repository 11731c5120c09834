package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeeper/internal/domain"
	"passkeeper/internal/store"
)

func TestFileStore_MissingFileReadsEmpty(t *testing.T) {
	var fs domain.FileProvider = store.NewFileStore()

	b, err := fs.ReadFile(filepath.Join(t.TempDir(), "absent.dat"))
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Empty(t, b)
}

func TestFileStore_WriteRead(t *testing.T) {
	fs := store.NewFileStore()
	path := filepath.Join(t.TempDir(), "nested", "dir", "passkeeper.dat")

	require.NoError(t, fs.WriteFile(path, []byte{1, 2, 3}))
	require.NoError(t, fs.WriteFile(path, []byte{4, 5}))

	got, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_ReadDirectoryFails(t *testing.T) {
	_, err := store.NewFileStore().ReadFile(t.TempDir())
	assert.Error(t, err)
}

func TestFileStore_WriteIntoFileParentFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := store.NewFileStore().WriteFile(filepath.Join(blocker, "passkeeper.dat"), []byte{1})
	assert.Error(t, err)
}
