package bubbletea

import (
	"github.com/fwojciec/parley"
	"github.com/fwojciec/parley/goldmark"
)

var (
	_ MessageBlock = (*AIBlock)(nil)
	_ MessageBlock = (*ErrorBlock)(nil)
)

// AIBlock renders a model reply as Markdown. Rendering is cached per
// width; replies never change after they are appended.
type AIBlock struct {
	text    string
	label   string
	theme   parley.Theme
	styles  Styles
	byWidth map[int]string
}

// NewAIBlock creates an AIBlock.
func NewAIBlock(text, label string, theme parley.Theme, styles Styles) *AIBlock {
	return &AIBlock{
		text:    text,
		label:   label,
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

func (b *AIBlock) View(width int) string {
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	header := b.styles.AIMsg.Render(b.label)
	body := goldmark.Render(b.text, bodyWidth(width), b.theme)
	view := header
	if body != "" {
		view += "\n" + indent(body, 2)
	}
	b.byWidth[width] = view
	return view
}

// ErrorBlock renders a failed generation: the stored ai message that carries
// the error text.
type ErrorBlock struct {
	text   string
	label  string
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(text, label string, styles Styles) *ErrorBlock {
	return &ErrorBlock{text: text, label: label, styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	header := b.styles.AIMsg.Render(b.label)
	return header + "\n" + indent(b.styles.Error.Render(wrap(b.text, bodyWidth(width))), 2)
}
