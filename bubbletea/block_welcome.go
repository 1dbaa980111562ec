package bubbletea

var _ MessageBlock = (*WelcomeBlock)(nil)

// WelcomeBlock is shown while the conversation is empty.
type WelcomeBlock struct {
	text   string
	styles Styles
}

// NewWelcomeBlock creates a WelcomeBlock.
func NewWelcomeBlock(text string, styles Styles) *WelcomeBlock {
	return &WelcomeBlock{text: text, styles: styles}
}

func (b *WelcomeBlock) View(width int) string {
	return b.styles.Accent.Render("parley") + "\n" + b.styles.Muted.Render(wrap(b.text, width))
}
