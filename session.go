package parley

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Session holds the per-run settings: the API key and the theme. It is
// loaded once from a KeyValueStore and written back on every change.
type Session struct {
	kv     KeyValueStore
	logger *slog.Logger

	mu       sync.RWMutex
	apiKey   string
	theme    ThemeMode
	override string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithAPIKey supplies an API key that is used when none is stored. It is
// kept in memory only.
func WithAPIKey(key string) SessionOption {
	return func(s *Session) { s.override = strings.TrimSpace(key) }
}

// WithSessionLogger sets the logger for read failures.
func WithSessionLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// NewSession loads the settings from kv. Read failures are logged and
// treated as absent values.
func NewSession(kv KeyValueStore, opts ...SessionOption) *Session {
	s := &Session{
		kv:     kv,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		theme:  ThemeDark,
	}
	for _, o := range opts {
		o(s)
	}
	if v, ok, err := kv.Get(KeyAPIKey); err != nil {
		s.logger.Warn("read api key", "error", err)
	} else if ok {
		s.apiKey = v
	}
	if s.apiKey == "" {
		s.apiKey = s.override
	}
	if v, ok, err := kv.Get(KeyTheme); err != nil {
		s.logger.Warn("read theme", "error", err)
	} else if ok {
		s.theme = ParseThemeMode(v)
	}
	return s
}

// APIKey returns the configured key, or "" if none.
func (s *Session) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// HasAPIKey reports whether a key is configured.
func (s *Session) HasAPIKey() bool {
	return s.APIKey() != ""
}

// SetAPIKey trims and persists key. An empty key is rejected with
// ErrEmptyAPIKey and leaves the current key unchanged.
func (s *Session) SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyAPIKey
	}
	s.mu.Lock()
	s.apiKey = key
	s.mu.Unlock()
	if err := s.kv.Set(KeyAPIKey, key); err != nil {
		return fmt.Errorf("save api key: %w", err)
	}
	return nil
}

// Theme returns the current theme mode.
func (s *Session) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme switches between dark and light, persists the new mode and
// returns it. The in-memory mode changes even if persisting fails.
func (s *Session) ToggleTheme() (ThemeMode, error) {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	mode := s.theme
	s.mu.Unlock()
	if err := s.kv.Set(KeyTheme, string(mode)); err != nil {
		return mode, fmt.Errorf("save theme: %w", err)
	}
	return mode, nil
}
