package parley

// ThemeMode is the user's theme preference.
type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// ParseThemeMode maps a stored value to a ThemeMode. Anything other than
// "light", including the empty string, means dark.
func ParseThemeMode(s string) ThemeMode {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle returns the other mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values. A negative
// index means "no color".
type Theme struct {
	UserMsg int // User message accent
	AIMsg   int // AI message accent
	Error   int // Error status
	Success int // Success status
	Muted   int // Status bar, placeholders
	Accent  int // Headings, links
	CodeBg  int // Code block gutter
}

// DarkTheme returns the palette for dark terminals.
func DarkTheme() Theme {
	return Theme{
		UserMsg: 4,
		AIMsg:   6,
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
		CodeBg:  0,
	}
}

// LightTheme returns the palette for light terminals. Bright variants are
// avoided because they wash out on white backgrounds.
func LightTheme() Theme {
	return Theme{
		UserMsg: 4,
		AIMsg:   2,
		Error:   1,
		Success: 2,
		Muted:   0,
		Accent:  5,
		CodeBg:  7,
	}
}

// ThemeFor returns the palette for mode.
func ThemeFor(mode ThemeMode) Theme {
	if mode == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}
