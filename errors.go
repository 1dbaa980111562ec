package parley

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message or setting failed validation.
	ErrValidation = errors.New("validation error")

	// ErrEmptyMessage indicates a submit with empty or whitespace-only text.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrBusy indicates an operation of the same kind is already in flight.
	ErrBusy = errors.New("another request is in progress")

	// ErrMissingAPIKey indicates a submit without a configured API key.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrEmptyAPIKey indicates an attempt to save an empty API key.
	ErrEmptyAPIKey = errors.New("API key is empty")

	// ErrUnsupported indicates the platform lacks speech recognition.
	ErrUnsupported = errors.New("speech recognition not supported")

	// ErrNothingToExport indicates an export of an empty conversation.
	ErrNothingToExport = errors.New("nothing to export")

	// ErrPersistenceRead indicates the stored history is corrupt or unreadable.
	// It is absorbed by the conversation store and never reaches the user.
	ErrPersistenceRead = errors.New("persisted history unreadable")
)

// APIErrorKind classifies an APIError.
type APIErrorKind int

const (
	APIErrorRemote    APIErrorKind = iota // The endpoint reported a failure.
	APIErrorMalformed                     // Success response without a usable answer.
	APIErrorTransport                     // Network failure or timeout.
)

func (k APIErrorKind) String() string {
	switch k {
	case APIErrorRemote:
		return "remote"
	case APIErrorMalformed:
		return "malformed"
	case APIErrorTransport:
		return "transport"
	default:
		return fmt.Sprintf("APIErrorKind(%d)", int(k))
	}
}

// APIError is returned by a Client when a generation call fails.
// Message is human-readable and is shown to the user as-is.
type APIError struct {
	Kind       APIErrorKind
	Message    string
	StatusCode int // 0 when no HTTP response was received
}

func (e *APIError) Error() string { return e.Message }

// SpeechError is returned by a SpeechRecognizer when the engine fails.
// Code is the engine's diagnostic code, e.g. "no-speech" or "aborted".
type SpeechError struct {
	Code string
}

func (e *SpeechError) Error() string {
	return "speech recognition error: " + e.Code
}
