package models

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValidTheme checks if a theme value is one the UI understands
func IsValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
