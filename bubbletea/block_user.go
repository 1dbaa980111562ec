package bubbletea

var _ MessageBlock = (*UserBlock)(nil)

// UserBlock renders a user message under a labelled header.
type UserBlock struct {
	text   string
	label  string
	styles Styles
}

// NewUserBlock creates a UserBlock.
func NewUserBlock(text, label string, styles Styles) *UserBlock {
	return &UserBlock{text: text, label: label, styles: styles}
}

func (b *UserBlock) View(width int) string {
	header := b.styles.UserMsg.Render(b.label)
	return header + "\n" + indent(wrap(b.text, bodyWidth(width)), 2)
}
