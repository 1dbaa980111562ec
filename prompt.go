package parley

import "strings"

// ContextWindow is the number of most recent messages sent along with a new
// user message.
const ContextWindow = 10

// RecentHistory returns the last ContextWindow messages of history, oldest
// first. The returned slice aliases history.
func RecentHistory(history []Message) []Message {
	if len(history) > ContextWindow {
		return history[len(history)-ContextWindow:]
	}
	return history
}

// BuildPrompt renders the context window of history and the new user text
// into a single prompt:
//
//	<label>: <content>
//
//	<label>: <content>
//
//	<user label>: <text>
//
// With no history the prompt is text alone.
func BuildPrompt(text string, history []Message, labels Labels) string {
	recent := RecentHistory(history)
	if len(recent) == 0 {
		return text
	}
	var b strings.Builder
	for _, m := range recent {
		b.WriteString(labels.Role(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}
	b.WriteString(labels.User)
	b.WriteString(": ")
	b.WriteString(text)
	return b.String()
}
