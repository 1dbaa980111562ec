// Package goldmark renders AI replies, which are usually Markdown, as
// ANSI-styled terminal text. Parsing is done by goldmark with the
// strikethrough and linkify extensions; styling by lipgloss.
package goldmark

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/parley"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	defaultWidth = 80
	minWidth     = 10
)

var md = goldmark.New(goldmark.WithExtensions(
	extension.Strikethrough,
	extension.Linkify,
))

// Render returns source as styled text wrapped to width. Code blocks keep
// their line structure and are never reflowed.
func Render(source string, width int, theme parley.Theme) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	w := &writer{src: src, st: newStyles(theme)}
	w.blocks(doc, width)
	return strings.TrimRight(w.out.String(), "\n")
}

type styles struct {
	heading lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	strike  lipgloss.Style
	code    lipgloss.Style
	gutter  lipgloss.Style
	link    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(t parley.Theme) styles {
	return styles{
		heading: lipgloss.NewStyle().Foreground(color(t.Accent)).Bold(true),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		strike:  lipgloss.NewStyle().Strikethrough(true),
		code:    lipgloss.NewStyle().Foreground(color(t.AIMsg)),
		gutter:  lipgloss.NewStyle().Foreground(color(t.Muted)),
		link:    lipgloss.NewStyle().Underline(true),
		muted:   lipgloss.NewStyle().Foreground(color(t.Muted)).Faint(true),
	}
}

// color maps an ANSI index to a lipgloss color; negative means none.
func color(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
