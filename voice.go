package parley

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// RecognizeOptions configures one recognition.
type RecognizeOptions struct {
	Locale         string // BCP 47, e.g. "ja-JP"
	Continuous     bool   // keep listening after the first result
	InterimResults bool   // deliver partial hypotheses
}

// SpeechRecognizer is a platform speech-to-text capability.
type SpeechRecognizer interface {
	// Available reports whether recognition can be attempted at all.
	Available() bool
	// Recognize captures speech and returns one transcript. Engine failures
	// are reported as *SpeechError.
	Recognize(ctx context.Context, opts RecognizeOptions) (string, error)
}

// Voice turns a SpeechRecognizer into a single-shot transcript source.
// Listening start and stop are reported to the renderer; the stop event is
// emitted on every exit path once the start event was.
type Voice struct {
	recognizer SpeechRecognizer
	renderer   Renderer
	labels     Labels
	locale     string
	logger     *slog.Logger

	listening atomic.Bool
}

// VoiceOption configures a Voice.
type VoiceOption func(*Voice)

// WithVoiceRenderer sets the event sink.
func WithVoiceRenderer(r Renderer) VoiceOption {
	return func(v *Voice) { v.renderer = r }
}

// WithVoiceLabels sets the localized labels.
func WithVoiceLabels(l Labels) VoiceOption {
	return func(v *Voice) { v.labels = l }
}

// WithVoiceLogger sets the logger.
func WithVoiceLogger(l *slog.Logger) VoiceOption {
	return func(v *Voice) { v.logger = l }
}

// NewVoice creates a Voice recognizing the given locale.
func NewVoice(r SpeechRecognizer, locale string, opts ...VoiceOption) *Voice {
	v := &Voice{
		recognizer: r,
		renderer:   discardRenderer{},
		labels:     EnglishLabels(),
		locale:     locale,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Listening reports whether a recognition is in progress.
func (v *Voice) Listening() bool { return v.listening.Load() }

// Listen captures one transcript. It fails with ErrUnsupported when the
// recognizer is unavailable, ErrBusy when already listening, and
// *SpeechError when the engine fails. Cancelling ctx aborts the capture.
func (v *Voice) Listen(ctx context.Context) (string, error) {
	if v.recognizer == nil || !v.recognizer.Available() {
		return "", ErrUnsupported
	}
	if !v.listening.CompareAndSwap(false, true) {
		return "", ErrBusy
	}
	defer v.listening.Store(false)

	v.renderer.Render(EventListeningStarted{})
	defer v.renderer.Render(EventListeningStopped{})
	v.renderer.Render(EventStatus{Text: v.labels.StatusListening})

	text, err := v.recognizer.Recognize(ctx, RecognizeOptions{
		Locale:         v.locale,
		Continuous:     false,
		InterimResults: false,
	})
	if err != nil {
		v.logger.Warn("speech recognition failed", "error", err)
		return "", err
	}
	return text, nil
}
