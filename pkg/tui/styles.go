package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/artem13815/workvibe/pkg/settings"
)

// Styles — палитра одной темы.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	User     lipgloss.Style
	Bot      lipgloss.Style
	Code     lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Card     lipgloss.Style
}

type palette struct {
	accent, accent2, text, muted, border, errc, code string
}

var palettes = map[settings.Theme]palette{
	settings.ThemeDark: {
		accent: "#FF6B6B", accent2: "#5B8DEF", text: "#EEEEEE", muted: "#888888",
		border: "#444444", errc: "#FF4D4F", code: "#A0D468",
	},
	settings.ThemeLight: {
		accent: "#D6336C", accent2: "#1C7ED6", text: "#212529", muted: "#6C757D",
		border: "#CED4DA", errc: "#C92A2A", code: "#2B8A3E",
	},
}

// NewStyles builds styles for theme; unknown themes fall back to dark.
func NewStyles(theme settings.Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[settings.ThemeDark]
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Subtitle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.muted)),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent2)),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		User:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent2)),
		Bot:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.code)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.errc)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(0, 1),
	}
}
