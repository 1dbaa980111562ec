package json_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/fwojciec/parley"
	parleyjson "github.com/fwojciec/parley/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalHistory_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 7, 25} {
		t.Run(fmt.Sprintf("%d messages", n), func(t *testing.T) {
			t.Parallel()
			msgs := make([]parley.Message, n)
			for i := range msgs {
				if i%2 == 0 {
					msgs[i] = parley.UserMessage(fmt.Sprintf("question %d", i))
				} else {
					msgs[i] = parley.AIMessage(fmt.Sprintf("answer %d\n\nwith **markdown**", i))
				}
			}

			data, err := parleyjson.MarshalHistory(msgs)
			require.NoError(t, err)

			got, err := parleyjson.UnmarshalHistory(data)
			require.NoError(t, err)
			assert.Equal(t, msgs, got)
		})
	}
}

func TestMarshalHistory_WireFormat(t *testing.T) {
	t.Parallel()

	data, err := parleyjson.MarshalHistory([]parley.Message{
		parley.UserMessage("hi"),
		parley.AIMessage("hello"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"role":"user","content":"hi"},{"role":"ai","content":"hello"}]`, string(data))
}

func TestMarshalHistory_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := parleyjson.MarshalHistory(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestMarshalHistory_UnknownRole(t *testing.T) {
	t.Parallel()

	_, err := parleyjson.MarshalHistory([]parley.Message{{Role: "system", Content: "x"}})
	assert.ErrorIs(t, err, parley.ErrValidation)
}

func TestUnmarshalHistory_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `[{"role":`},
		{"not an array", `{"role":"user"}`},
		{"unknown role", `[{"role":"assistant","content":"x"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parleyjson.UnmarshalHistory([]byte(tt.data))
			assert.ErrorIs(t, err, parley.ErrPersistenceRead)
		})
	}
}

func TestUnmarshalHistory_IgnoresExtraFields(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal([]map[string]any{
		{"role": "user", "content": "hi", "timestamp": 123},
	})
	require.NoError(t, err)

	got, err := parleyjson.UnmarshalHistory(raw)
	require.NoError(t, err)
	assert.Equal(t, []parley.Message{parley.UserMessage("hi")}, got)
}
