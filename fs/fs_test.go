package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/parley"
	"github.com/fwojciec/parley/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "a", "b", "file.txt")
		require.NoError(t, fs.WriteAtomic(path, []byte("data"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "data", string(got))
	})

	t.Run("overwrites and leaves no temp file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, fs.WriteAtomic(path, []byte("old"), 0o600))
		require.NoError(t, fs.WriteAtomic(path, []byte("new"), 0o600))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestSaveExport(t *testing.T) {
	t.Parallel()

	t.Run("writes file into dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path, err := fs.SaveExport(dir, parley.ExportFile{Filename: "AI-Conversation_2026-10-18_09-05-03.md", Content: "# hi\n"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "AI-Conversation_2026-10-18_09-05-03.md"), path)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# hi\n", string(got))
	})

	t.Run("rejects path in filename", func(t *testing.T) {
		t.Parallel()
		_, err := fs.SaveExport(t.TempDir(), parley.ExportFile{Filename: "../escape.md"})
		assert.ErrorIs(t, err, parley.ErrValidation)
	})

	t.Run("rejects empty filename", func(t *testing.T) {
		t.Parallel()
		_, err := fs.SaveExport(t.TempDir(), parley.ExportFile{})
		assert.ErrorIs(t, err, parley.ErrValidation)
	})
}
