package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/parley"
	bt "github.com/fwojciec/parley/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestUserBlock_View(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(parley.DarkTheme())

	t.Run("header then indented text", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(bt.NewUserBlock("hello world", "User", styles).View(80))
		lines := strings.Split(view, "\n")
		assert.Equal(t, "User", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "  hello world"))
	})

	t.Run("wraps long text to width", func(t *testing.T) {
		t.Parallel()
		long := "short words that keep going and going beyond the viewport width easily"
		view := bt.NewUserBlock(long, "User", styles).View(30)
		assert.Contains(t, ansi.Strip(view), "easily")
		lines := strings.Split(view, "\n")
		assert.Greater(t, len(lines), 2)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 30)
		}
	})

	t.Run("keeps markdown literal", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(bt.NewUserBlock("**not bold**", "User", styles).View(80))
		assert.Contains(t, view, "**not bold**")
	})
}

func TestAIBlock_View(t *testing.T) {
	t.Parallel()

	theme := parley.DarkTheme()
	styles := bt.NewStyles(theme)

	t.Run("renders markdown under header", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(bt.NewAIBlock("Use `go test` and **read** docs.", "AI", theme, styles).View(80))
		lines := strings.Split(view, "\n")
		assert.Equal(t, "AI", lines[0])
		assert.Equal(t, "  Use go test and read docs.", lines[1])
	})

	t.Run("list items", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(bt.NewAIBlock("- one\n- two", "AI", theme, styles).View(80))
		assert.Contains(t, view, "  • one")
		assert.Contains(t, view, "  • two")
	})

	t.Run("same width returns same view", func(t *testing.T) {
		t.Parallel()
		block := bt.NewAIBlock("some reply", "AI", theme, styles)
		assert.Equal(t, block.View(40), block.View(40))
	})

	t.Run("lines fit width", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat("word ", 40)
		view := bt.NewAIBlock(text, "AI", theme, styles).View(30)
		for _, line := range strings.Split(view, "\n") {
			assert.LessOrEqual(t, ansi.StringWidth(line), 30)
		}
	})

	t.Run("empty reply shows only header", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(bt.NewAIBlock("", "AI", theme, styles).View(80))
		assert.Equal(t, "AI", view)
	})
}

func TestErrorBlock_View(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(parley.DarkTheme())
	view := ansi.Strip(bt.NewErrorBlock("An error occurred: quota exceeded", "AI", styles).View(80))
	lines := strings.Split(view, "\n")
	assert.Equal(t, "AI", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  An error occurred: quota exceeded"))
}

func TestWelcomeBlock_View(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(parley.DarkTheme())
	view := ansi.Strip(bt.NewWelcomeBlock("Ask me anything.", styles).View(80))
	assert.True(t, strings.HasPrefix(view, "parley\n"))
	assert.Contains(t, view, "Ask me anything.")
}
