package json

import (
	"io"
	"log/slog"
	"sync"

	"github.com/fwojciec/parley"
)

// Interface compliance check.
var _ parley.ConversationStore = (*ConversationStore)(nil)

// ConversationStore keeps the conversation in memory and mirrors it to a
// KeyValueStore under parley.KeyHistory after every change.
type ConversationStore struct {
	kv     parley.KeyValueStore
	logger *slog.Logger

	mu       sync.Mutex
	messages []parley.Message
}

// ConversationOption configures a ConversationStore.
type ConversationOption func(*ConversationStore)

// WithLogger sets the logger for persistence failures.
func WithLogger(l *slog.Logger) ConversationOption {
	return func(s *ConversationStore) { s.logger = l }
}

// NewConversationStore creates a store over kv and loads the persisted
// history.
func NewConversationStore(kv parley.KeyValueStore, opts ...ConversationOption) *ConversationStore {
	s := &ConversationStore{
		kv:     kv,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(s)
	}
	s.Load()
	return s
}

// Append adds a message and persists the whole history. A persistence
// failure is logged; the in-memory history keeps the message.
func (s *ConversationStore) Append(role parley.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, parley.Message{Role: role, Content: content})
	data, err := MarshalHistory(s.messages)
	if err != nil {
		s.logger.Error("encode history", "error", err)
		return
	}
	if err := s.kv.Set(parley.KeyHistory, string(data)); err != nil {
		s.logger.Error("persist history", "error", err, "messages", len(s.messages))
	}
}

// Clear empties the history and removes the persisted key.
func (s *ConversationStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	return s.kv.Remove(parley.KeyHistory)
}

// Load reads the persisted history. Absent, unreadable or corrupt data
// yields an empty history.
func (s *ConversationStore) Load() []parley.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = s.read()
	return append([]parley.Message(nil), s.messages...)
}

func (s *ConversationStore) read() []parley.Message {
	raw, ok, err := s.kv.Get(parley.KeyHistory)
	if err != nil {
		s.logger.Warn("read history", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	msgs, err := UnmarshalHistory([]byte(raw))
	if err != nil {
		s.logger.Warn("decode history, starting empty", "error", err)
		return nil
	}
	return msgs
}

// Messages returns a copy of the in-memory history.
func (s *ConversationStore) Messages() []parley.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]parley.Message(nil), s.messages...)
}
