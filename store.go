package parley

// Keys used in the KeyValueStore.
const (
	KeyAPIKey  = "gemini_api_key"
	KeyTheme   = "theme"
	KeyHistory = "conversation_history"
)

// KeyValueStore is a local string-keyed persistence store.
// Get reports ok=false when the key is absent.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// ConversationStore owns the ordered conversation history and keeps a
// serialized snapshot of it in a KeyValueStore.
type ConversationStore interface {
	// Append adds a message to the end and persists the whole sequence.
	// Persistence failures are logged, not returned.
	Append(role Role, content string)
	// Clear empties the sequence and removes the persisted snapshot.
	Clear() error
	// Load replaces the in-memory sequence with the persisted one and returns
	// it. Missing or unreadable snapshots yield an empty sequence.
	Load() []Message
	// Messages returns a copy of the in-memory sequence.
	Messages() []Message
}
