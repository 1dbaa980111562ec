// Package gemini implements [parley.Client] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK. Each Send is a single-turn
// generateContent call whose prompt already contains the trimmed history,
// so the request carries one content with one text part.
package gemini

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = 0.7
	defaultMaxTokens   = 2048
)
