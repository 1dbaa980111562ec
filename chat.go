package parley

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single generation round trip.
const DefaultTimeout = 60 * time.Second

// Chat is the single-flight orchestrator between the user, the conversation
// store and the generation client. It is Idle until Submit accepts a message
// and returns to Idle when the round trip completes or fails.
type Chat struct {
	session  *Session
	store    ConversationStore
	client   Client
	renderer Renderer
	labels   Labels
	timeout  time.Duration
	logger   *slog.Logger
	newID    func() string

	sending atomic.Bool
}

// ChatOption configures a Chat.
type ChatOption func(*Chat)

// WithRenderer sets the event sink. The default discards events.
func WithRenderer(r Renderer) ChatOption {
	return func(c *Chat) { c.renderer = r }
}

// WithLabels sets the localized labels. The default is EnglishLabels.
func WithLabels(l Labels) ChatOption {
	return func(c *Chat) { c.labels = l }
}

// WithTimeout bounds each round trip. Zero or negative disables the bound.
func WithTimeout(d time.Duration) ChatOption {
	return func(c *Chat) { c.timeout = d }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ChatOption {
	return func(c *Chat) { c.logger = l }
}

// NewChat creates a Chat.
func NewChat(session *Session, store ConversationStore, client Client, opts ...ChatOption) *Chat {
	c := &Chat{
		session:  session,
		store:    store,
		client:   client,
		renderer: discardRenderer{},
		labels:   EnglishLabels(),
		timeout:  DefaultTimeout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:    func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Sending reports whether a round trip is outstanding.
func (c *Chat) Sending() bool { return c.sending.Load() }

// Submit sends text to the client and records both sides of the exchange.
//
// It returns ErrEmptyMessage for blank text, ErrBusy while another Submit
// is outstanding and ErrMissingAPIKey when no key is configured; in those
// cases nothing is appended and the client is not called. Otherwise the
// returned Message is the ai reply that was appended. A failed generation
// is not an error for the caller: the reply then carries the localized
// error line, and it is kept in the history.
func (c *Chat) Submit(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}
	if c.sending.Load() {
		return Message{}, ErrBusy
	}
	apiKey := c.session.APIKey()
	if apiKey == "" {
		c.renderer.Render(EventKeyRequired{})
		return Message{}, ErrMissingAPIKey
	}
	if !c.sending.CompareAndSwap(false, true) {
		return Message{}, ErrBusy
	}
	defer c.sending.Store(false)

	id := c.newID()
	history := c.store.Messages()

	c.append(UserMessage(text))
	c.renderer.Render(EventWorkingStarted{})
	c.renderer.Render(EventStatus{Text: c.labels.StatusThinking})

	c.logger.Info("send", "request_id", id, "history", len(history))
	started := time.Now()

	answer, err := c.send(ctx, Request{APIKey: apiKey, Text: text, History: history})

	c.renderer.Render(EventWorkingStopped{})
	if err != nil {
		c.logger.Error("send failed", "request_id", id, "error", err, "elapsed", time.Since(started))
		reply := AIMessage(c.labels.ErrorPrefix + err.Message)
		c.append(reply)
		c.renderer.Render(EventStatus{Text: c.labels.StatusError})
		return reply, nil
	}

	c.logger.Info("send ok", "request_id", id, "elapsed", time.Since(started))
	reply := AIMessage(answer)
	c.append(reply)
	c.renderer.Render(EventStatus{Text: c.labels.StatusReady})
	return reply, nil
}

// send calls the client under the configured timeout and normalizes every
// failure to *APIError.
func (c *Chat) send(ctx context.Context, req Request) (string, *APIError) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	answer, err := c.client.Send(ctx, req)
	if err == nil {
		return answer, nil
	}
	if c.timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", &APIError{
			Kind:    APIErrorTransport,
			Message: fmt.Sprintf("request timed out after %s", c.timeout),
		}
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "", apiErr
	}
	return "", &APIError{Kind: APIErrorTransport, Message: err.Error()}
}

func (c *Chat) append(m Message) {
	c.store.Append(m.Role, m.Content)
	c.renderer.Render(EventMessageAppended{Message: m})
}
