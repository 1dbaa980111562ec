package parley_test

import (
	"context"
	"testing"

	"github.com/fwojciec/parley"
	"github.com/fwojciec/parley/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoice_Listen(t *testing.T) {
	t.Parallel()

	t.Run("returns transcript", func(t *testing.T) {
		t.Parallel()
		var got parley.RecognizeOptions
		r := &mock.SpeechRecognizer{
			AvailableFn: func() bool { return true },
			RecognizeFn: func(ctx context.Context, opts parley.RecognizeOptions) (string, error) {
				got = opts
				return "こんにちは", nil
			},
		}
		rec := &mock.Recorder{}
		v := parley.NewVoice(r, "ja-JP", parley.WithVoiceRenderer(rec), parley.WithVoiceLabels(parley.JapaneseLabels()))

		text, err := v.Listen(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "こんにちは", text)
		assert.Equal(t, parley.RecognizeOptions{Locale: "ja-JP"}, got)
		assert.Equal(t, []parley.Event{
			parley.EventListeningStarted{},
			parley.EventStatus{Text: "お話しください..."},
			parley.EventListeningStopped{},
		}, rec.Events())
		assert.False(t, v.Listening())
	})

	t.Run("engine error still stops listening", func(t *testing.T) {
		t.Parallel()
		r := &mock.SpeechRecognizer{
			AvailableFn: func() bool { return true },
			RecognizeFn: func(context.Context, parley.RecognizeOptions) (string, error) {
				return "", &parley.SpeechError{Code: "no-speech"}
			},
		}
		rec := &mock.Recorder{}
		v := parley.NewVoice(r, "en-US", parley.WithVoiceRenderer(rec))

		_, err := v.Listen(context.Background())
		var speechErr *parley.SpeechError
		require.ErrorAs(t, err, &speechErr)
		assert.Equal(t, "no-speech", speechErr.Code)

		events := rec.Events()
		assert.Equal(t, parley.EventListeningStopped{}, events[len(events)-1])
		assert.False(t, v.Listening())
	})

	t.Run("unavailable recognizer", func(t *testing.T) {
		t.Parallel()
		r := &mock.SpeechRecognizer{AvailableFn: func() bool { return false }}
		rec := &mock.Recorder{}
		v := parley.NewVoice(r, "en-US", parley.WithVoiceRenderer(rec))

		_, err := v.Listen(context.Background())
		assert.ErrorIs(t, err, parley.ErrUnsupported)
		assert.Empty(t, rec.Events())
	})

	t.Run("nil recognizer", func(t *testing.T) {
		t.Parallel()
		_, err := parley.NewVoice(nil, "en-US").Listen(context.Background())
		assert.ErrorIs(t, err, parley.ErrUnsupported)
	})

	t.Run("second listen while active is busy", func(t *testing.T) {
		t.Parallel()
		started := make(chan struct{})
		r := &mock.SpeechRecognizer{
			AvailableFn: func() bool { return true },
			RecognizeFn: func(ctx context.Context, _ parley.RecognizeOptions) (string, error) {
				close(started)
				<-ctx.Done()
				return "", &parley.SpeechError{Code: "aborted"}
			},
		}
		v := parley.NewVoice(r, "en-US")

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := v.Listen(ctx)
			done <- err
		}()
		<-started
		assert.True(t, v.Listening())

		_, err := v.Listen(context.Background())
		assert.ErrorIs(t, err, parley.ErrBusy)

		cancel()
		var speechErr *parley.SpeechError
		require.ErrorAs(t, <-done, &speechErr)
		assert.Equal(t, "aborted", speechErr.Code)
	})
}
