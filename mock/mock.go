// Package mock provides test doubles for parley interfaces using function fields.
package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/parley"
)

// Interface compliance checks.
var (
	_ parley.Client            = (*Client)(nil)
	_ parley.KeyValueStore     = (*KeyValueStore)(nil)
	_ parley.SpeechRecognizer  = (*SpeechRecognizer)(nil)
	_ parley.ConversationStore = (*ConversationStore)(nil)
)

// Client is a test double for parley.Client.
// Set SendFn before calling Send.
type Client struct {
	SendFn func(ctx context.Context, req parley.Request) (string, error)
}

// Send delegates to SendFn.
func (c *Client) Send(ctx context.Context, req parley.Request) (string, error) {
	return c.SendFn(ctx, req)
}

// KeyValueStore is a test double for parley.KeyValueStore.
type KeyValueStore struct {
	GetFn    func(key string) (string, bool, error)
	SetFn    func(key, value string) error
	RemoveFn func(key string) error
}

// Get delegates to GetFn.
func (s *KeyValueStore) Get(key string) (string, bool, error) {
	return s.GetFn(key)
}

// Set delegates to SetFn.
func (s *KeyValueStore) Set(key, value string) error {
	return s.SetFn(key, value)
}

// Remove delegates to RemoveFn.
func (s *KeyValueStore) Remove(key string) error {
	return s.RemoveFn(key)
}

// MemoryStore returns a KeyValueStore whose functions are backed by an
// in-memory map, and the map itself for inspection. Access to the map from
// tests must not race with store calls.
func MemoryStore() (*KeyValueStore, map[string]string) {
	var mu sync.Mutex
	m := make(map[string]string)
	return &KeyValueStore{
		GetFn: func(key string) (string, bool, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := m[key]
			return v, ok, nil
		},
		SetFn: func(key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			m[key] = value
			return nil
		},
		RemoveFn: func(key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(m, key)
			return nil
		},
	}, m
}

// SpeechRecognizer is a test double for parley.SpeechRecognizer.
type SpeechRecognizer struct {
	AvailableFn func() bool
	RecognizeFn func(ctx context.Context, opts parley.RecognizeOptions) (string, error)
}

// Available delegates to AvailableFn.
func (r *SpeechRecognizer) Available() bool {
	return r.AvailableFn()
}

// Recognize delegates to RecognizeFn.
func (r *SpeechRecognizer) Recognize(ctx context.Context, opts parley.RecognizeOptions) (string, error) {
	return r.RecognizeFn(ctx, opts)
}

// ConversationStore is a test double for parley.ConversationStore.
type ConversationStore struct {
	AppendFn   func(role parley.Role, content string)
	ClearFn    func() error
	LoadFn     func() []parley.Message
	MessagesFn func() []parley.Message
}

// Append delegates to AppendFn.
func (s *ConversationStore) Append(role parley.Role, content string) {
	s.AppendFn(role, content)
}

// Clear delegates to ClearFn.
func (s *ConversationStore) Clear() error {
	return s.ClearFn()
}

// Load delegates to LoadFn.
func (s *ConversationStore) Load() []parley.Message {
	return s.LoadFn()
}

// Messages delegates to MessagesFn.
func (s *ConversationStore) Messages() []parley.Message {
	return s.MessagesFn()
}

// Recorder is a parley.Renderer that records every event.
type Recorder struct {
	mu     sync.Mutex
	events []parley.Event
}

// Render records e.
func (r *Recorder) Render(e parley.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []parley.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]parley.Event(nil), r.events...)
}
