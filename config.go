package parley

import "time"

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreJSON   = "json"
)

// Config carries the resolved run configuration.
type Config struct {
	Model          string        // Gemini model ID; empty = client default
	Locale         string        // labels and speech recognition locale
	Store          string        // StoreSQLite or StoreJSON
	DataDir        string        // KV store and log file location
	ExportDir      string        // where Markdown exports are written
	SpeechCommand  []string      // argv of the speech-to-text command; empty = unsupported
	RequestTimeout time.Duration // bound on a single generation round trip
}

// DefaultConfig returns the built-in defaults. DataDir and ExportDir are
// left empty; the command fills them from the user's home directory.
func DefaultConfig() Config {
	return Config{
		Locale:         "ja-JP",
		Store:          StoreSQLite,
		RequestTimeout: DefaultTimeout,
	}
}
