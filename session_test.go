package parley_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/parley"
	"github.com/fwojciec/parley/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	t.Parallel()

	kv, _ := mock.MemoryStore()
	s := parley.NewSession(kv)

	assert.False(t, s.HasAPIKey())
	assert.Empty(t, s.APIKey())
	assert.Equal(t, parley.ThemeDark, s.Theme())
}

func TestNewSession_LoadsStored(t *testing.T) {
	t.Parallel()

	kv, _ := mock.MemoryStore()
	require.NoError(t, kv.Set(parley.KeyAPIKey, "stored"))
	require.NoError(t, kv.Set(parley.KeyTheme, "light"))

	s := parley.NewSession(kv, parley.WithAPIKey("env"))
	assert.Equal(t, "stored", s.APIKey())
	assert.Equal(t, parley.ThemeLight, s.Theme())
}

func TestNewSession_OverrideWhenNothingStored(t *testing.T) {
	t.Parallel()

	kv, m := mock.MemoryStore()
	s := parley.NewSession(kv, parley.WithAPIKey("  env  "))

	assert.Equal(t, "env", s.APIKey())
	assert.NotContains(t, m, parley.KeyAPIKey)
}

func TestNewSession_ReadErrorsAreAbsent(t *testing.T) {
	t.Parallel()

	kv := &mock.KeyValueStore{
		GetFn: func(string) (string, bool, error) { return "", false, errors.New("disk") },
	}
	s := parley.NewSession(kv)
	assert.False(t, s.HasAPIKey())
	assert.Equal(t, parley.ThemeDark, s.Theme())
}

func TestSession_SetAPIKey(t *testing.T) {
	t.Parallel()

	t.Run("trims and persists", func(t *testing.T) {
		t.Parallel()
		kv, m := mock.MemoryStore()
		s := parley.NewSession(kv)

		require.NoError(t, s.SetAPIKey("  abc  "))
		assert.Equal(t, "abc", s.APIKey())
		assert.Equal(t, "abc", m[parley.KeyAPIKey])
	})

	t.Run("empty is rejected", func(t *testing.T) {
		t.Parallel()
		kv, m := mock.MemoryStore()
		require.NoError(t, kv.Set(parley.KeyAPIKey, "old"))
		s := parley.NewSession(kv)

		assert.ErrorIs(t, s.SetAPIKey("   "), parley.ErrEmptyAPIKey)
		assert.Equal(t, "old", s.APIKey())
		assert.Equal(t, "old", m[parley.KeyAPIKey])
	})

	t.Run("persist failure is wrapped", func(t *testing.T) {
		t.Parallel()
		diskErr := errors.New("disk full")
		kv := &mock.KeyValueStore{
			GetFn: func(string) (string, bool, error) { return "", false, nil },
			SetFn: func(string, string) error { return diskErr },
		}
		s := parley.NewSession(kv)

		err := s.SetAPIKey("abc")
		assert.ErrorIs(t, err, diskErr)
		assert.Equal(t, "abc", s.APIKey())
	})
}

func TestSession_ToggleTheme(t *testing.T) {
	t.Parallel()

	kv, m := mock.MemoryStore()
	s := parley.NewSession(kv)

	mode, err := s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, parley.ThemeLight, mode)
	assert.Equal(t, "light", m[parley.KeyTheme])

	mode, err = s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, parley.ThemeDark, mode)
	assert.Equal(t, "dark", m[parley.KeyTheme])

	// A new session sees the persisted mode.
	assert.Equal(t, parley.ThemeDark, parley.NewSession(kv).Theme())
}
