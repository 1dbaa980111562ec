package goldmark

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// writer accumulates rendered lines. Every block ends with a newline and
// sibling blocks are separated by one blank line.
type writer struct {
	src []byte
	st  styles
	out strings.Builder
}

func (w *writer) sub() *writer {
	return &writer{src: w.src, st: w.st}
}

func (w *writer) blocks(parent ast.Node, width int) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		w.block(n, width)
		if n.NextSibling() != nil {
			w.out.WriteString("\n")
		}
	}
}

func (w *writer) block(n ast.Node, width int) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		w.wrapped(w.inline(n), width)

	case *ast.Heading:
		s := w.st.bold
		if n.Level <= 2 {
			s = w.st.heading
		}
		w.wrapped(s.Render(w.inline(n)), width)

	case *ast.FencedCodeBlock:
		if lang := string(n.Language(w.src)); lang != "" {
			w.out.WriteString(w.st.muted.Render(lang) + "\n")
		}
		w.code(n.Lines())

	case *ast.CodeBlock:
		w.code(n.Lines())

	case *ast.Blockquote:
		inner := w.sub()
		inner.blocks(n, max(width-2, minWidth))
		bar := w.st.muted.Render("▌") + " "
		for _, line := range strings.Split(strings.TrimRight(inner.out.String(), "\n"), "\n") {
			w.out.WriteString(bar + line + "\n")
		}

	case *ast.List:
		w.list(n, width, 0)

	case *ast.ThematicBreak:
		w.out.WriteString(w.st.muted.Render(strings.Repeat("─", min(width, 40))) + "\n")

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			w.out.WriteString(strings.TrimRight(string(seg.Value(w.src)), "\n") + "\n")
		}

	default:
		w.blocks(n, width)
	}
}

// code writes verbatim lines behind a gutter.
func (w *writer) code(lines *text.Segments) {
	gutter := w.st.gutter.Render("│") + " "
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(w.src)), "\n")
		w.out.WriteString(gutter + w.st.code.Render(line) + "\n")
	}
}

func (w *writer) list(n *ast.List, width, depth int) {
	indent := strings.Repeat("  ", depth)
	num := n.Start
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := "• "
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}

		var pending strings.Builder
		flush := func() {
			if pending.Len() == 0 {
				return
			}
			w.item(indent, marker, pending.String(), width)
			pending.Reset()
			marker = strings.Repeat(" ", ansi.StringWidth(marker))
		}
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch ic := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if pending.Len() > 0 {
					pending.WriteString("\n")
				}
				pending.WriteString(w.inline(ic))
			case *ast.List:
				flush()
				w.list(ic, width, depth+1)
			default:
				flush()
				inner := w.sub()
				inner.block(ic, max(width-len(indent)-ansi.StringWidth(marker), minWidth))
				pad := indent + strings.Repeat(" ", ansi.StringWidth(marker))
				for _, line := range strings.Split(strings.TrimRight(inner.out.String(), "\n"), "\n") {
					w.out.WriteString(pad + line + "\n")
				}
			}
		}
		flush()
	}
}

// item writes one list entry with hanging indentation.
func (w *writer) item(indent, marker, content string, width int) {
	prefix := indent + marker
	hang := strings.Repeat(" ", ansi.StringWidth(prefix))
	wrapped := ansi.Wrap(content, max(width-ansi.StringWidth(prefix), minWidth), "")
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			w.out.WriteString(prefix + line + "\n")
			continue
		}
		w.out.WriteString(hang + line + "\n")
	}
}

func (w *writer) wrapped(s string, width int) {
	w.out.WriteString(ansi.Wrap(s, width, "") + "\n")
}

// inline renders the inline children of n.
func (w *writer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.inlineNode(c, &b)
	}
	return b.String()
}

func (w *writer) inlineNode(n ast.Node, b *strings.Builder) {
	switch n := n.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(w.src))
		switch {
		case n.HardLineBreak():
			b.WriteByte('\n')
		case n.SoftLineBreak():
			b.WriteByte(' ')
		}

	case *ast.String:
		b.Write(n.Value)

	case *ast.Emphasis:
		if n.Level == 1 {
			b.WriteString(w.st.italic.Render(w.inline(n)))
		} else {
			b.WriteString(w.st.bold.Render(w.inline(n)))
		}

	case *east.Strikethrough:
		b.WriteString(w.st.strike.Render(w.inline(n)))

	case *ast.CodeSpan:
		b.WriteString(w.st.code.Render(w.inline(n)))

	case *ast.Link:
		label := w.inline(n)
		dest := string(n.Destination)
		b.WriteString(w.st.link.Render(label))
		if ansi.Strip(label) != dest {
			b.WriteString(" " + w.st.muted.Render("("+dest+")"))
		}

	case *ast.AutoLink:
		b.WriteString(w.st.link.Render(string(n.URL(w.src))))

	case *ast.Image:
		b.WriteString(w.st.muted.Render("[" + w.inline(n) + "]"))
		b.WriteString(" " + w.st.muted.Render("("+string(n.Destination)+")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(w.src))
		}

	default:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			w.inlineNode(c, b)
		}
	}
}
