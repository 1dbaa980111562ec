package parley_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/parley"
	"github.com/stretchr/testify/assert"
)

func alternating(n int) []parley.Message {
	msgs := make([]parley.Message, n)
	for i := range msgs {
		if i%2 == 0 {
			msgs[i] = parley.UserMessage(fmt.Sprintf("m%d", i))
		} else {
			msgs[i] = parley.AIMessage(fmt.Sprintf("m%d", i))
		}
	}
	return msgs
}

func TestRecentHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n     int
		first string
		want  int
	}{
		{0, "", 0},
		{3, "m0", 3},
		{10, "m0", 10},
		{15, "m5", 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			t.Parallel()
			got := parley.RecentHistory(alternating(tt.n))
			assert.Len(t, got, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.first, got[0].Content)
				assert.Equal(t, fmt.Sprintf("m%d", tt.n-1), got[len(got)-1].Content)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("no history is text alone", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Hello", parley.BuildPrompt("Hello", nil, parley.EnglishLabels()))
	})

	t.Run("history lines then user line", func(t *testing.T) {
		t.Parallel()
		history := []parley.Message{
			parley.UserMessage("Hello"),
			parley.AIMessage("Hi!"),
		}
		got := parley.BuildPrompt("How are you?", history, parley.EnglishLabels())
		assert.Equal(t, "User: Hello\n\nAI: Hi!\n\nUser: How are you?", got)
	})

	t.Run("only the last ten messages", func(t *testing.T) {
		t.Parallel()
		got := parley.BuildPrompt("next", alternating(15), parley.EnglishLabels())

		blocks := strings.Split(got, "\n\n")
		assert.Len(t, blocks, 11)
		assert.Equal(t, "AI: m5", blocks[0])
		assert.Equal(t, "User: m14", blocks[9])
		assert.Equal(t, "User: next", blocks[10])
		assert.NotContains(t, got, "m4")
	})

	t.Run("japanese labels", func(t *testing.T) {
		t.Parallel()
		history := []parley.Message{parley.AIMessage("はい")}
		got := parley.BuildPrompt("ありがとう", history, parley.JapaneseLabels())
		assert.Equal(t, "AI: はい\n\nユーザー: ありがとう", got)
	})
}
