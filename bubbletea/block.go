package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/parley"
)

// MessageBlock is a renderable element of the conversation view.
// View takes the width so the root model controls layout.
type MessageBlock interface {
	View(width int) string
}

// newBlock returns the block for a conversation message.
func newBlock(msg parley.Message, theme parley.Theme, styles Styles, labels parley.Labels) MessageBlock {
	if msg.Role == parley.RoleUser {
		return NewUserBlock(msg.Content, labels.User, styles)
	}
	if strings.HasPrefix(msg.Content, labels.ErrorPrefix) {
		return NewErrorBlock(msg.Content, labels.AI, styles)
	}
	return NewAIBlock(msg.Content, labels.AI, theme, styles)
}

// indent shifts every line of s right by n columns.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// bodyWidth is the width left for content under a block header.
func bodyWidth(width int) int {
	return max(width-2, 10)
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
