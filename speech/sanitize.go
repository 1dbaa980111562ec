package speech

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize strips ANSI escape sequences and control characters other than
// tab, newline and carriage return from command output.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' || r > 0x1F {
			return r
		}
		return -1
	}, s)
}

// Transcript reduces one output line to its final hypothesis. Recognizers
// that stream interim results rewrite the line with carriage returns, so the
// last non-blank segment wins.
func Transcript(line string) string {
	segments := strings.Split(Sanitize(line), "\r")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			return s
		}
	}
	return ""
}
