package json_test

import (
	"os"
	"path/filepath"
	"testing"

	parleyjson "github.com/fwojciec/parley/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Parallel()

	t.Run("missing file is empty store", func(t *testing.T) {
		t.Parallel()
		s, err := parleyjson.OpenFileStore(filepath.Join(t.TempDir(), "store.json"))
		require.NoError(t, err)
		_, ok, err := s.Get("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("values survive reopen", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "store.json")
		s, err := parleyjson.OpenFileStore(path)
		require.NoError(t, err)
		require.NoError(t, s.Set("theme", "light"))
		require.NoError(t, s.Set("gemini_api_key", "gk-1"))

		reopened, err := parleyjson.OpenFileStore(path)
		require.NoError(t, err)
		v, ok, err := reopened.Get("theme")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "light", v)
	})

	t.Run("remove deletes key from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "store.json")
		s, err := parleyjson.OpenFileStore(path)
		require.NoError(t, err)
		require.NoError(t, s.Set("k", "v"))
		require.NoError(t, s.Remove("k"))
		require.NoError(t, s.Remove("never-set"))

		reopened, err := parleyjson.OpenFileStore(path)
		require.NoError(t, err)
		_, ok, err := reopened.Get("k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "store.json")
		require.NoError(t, os.WriteFile(path, []byte("nope"), 0o600))
		_, err := parleyjson.OpenFileStore(path)
		assert.Error(t, err)
	})
}
