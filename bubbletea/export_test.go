package bubbletea

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// InSettings reports whether the API key prompt is open.
func InSettings(m Model) bool {
	return m.mode == modeSettings
}

// ConfirmingClear reports whether the clear confirmation is pending.
func ConfirmingClear(m Model) bool {
	return m.mode == modeConfirmClear
}

// StatusLine exports statusLine for testing.
func StatusLine(m Model) string {
	return m.statusLine()
}
