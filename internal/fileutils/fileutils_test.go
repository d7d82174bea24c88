package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.csv")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.csv")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestExistsChecksSurviveStatErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.csv")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0600))

	// Stat on a path routed through a regular file fails with ENOTDIR,
	// which is not a not-exist error.
	bogus := filepath.Join(file, "child")
	assert.False(t, FileExists(bogus))
	assert.False(t, DirectoryExists(bogus))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nested", "out", "result.csv")

	require.NoError(t, WriteFile(file, []byte("Date,Payee\n"), 0600))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "Date,Payee\n", string(data))
}

func TestEnsureDirectoryExistsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	require.NoError(t, EnsureDirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))
}
