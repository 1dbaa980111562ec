package speech_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/parley/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailWriter(t *testing.T) {
	t.Parallel()

	t.Run("keeps everything under the limit", func(t *testing.T) {
		t.Parallel()
		w := speech.NewTailWriter(16)
		_, err := w.Write([]byte("not-allowed: "))
		require.NoError(t, err)
		_, err = w.Write([]byte("mic"))
		require.NoError(t, err)
		assert.Equal(t, "not-allowed: mic", w.String())
	})

	t.Run("keeps the tail over the limit", func(t *testing.T) {
		t.Parallel()
		w := speech.NewTailWriter(4)
		n, err := w.Write([]byte(strings.Repeat("x", 10) + "abcd"))
		require.NoError(t, err)
		assert.Equal(t, 14, n)
		assert.Equal(t, "abcd", w.String())
	})
}
