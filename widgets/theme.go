package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorTabOff   lipgloss.Color = "#7f849c"
	colorBorder   lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorFocus    lipgloss.Color = "#b4befe"
	colorSuccess  lipgloss.Color = "#a6e3a1"
)

type Theme struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Accent   lipgloss.Color
	Focus    lipgloss.Color
	Active   lipgloss.Color
	BarBg    lipgloss.Color
	ActiveBg lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Text:     colorText,
		Muted:    colorTabOff,
		Border:   colorOverlay0,
		Accent:   colorAccent,
		Focus:    colorFocus,
		Active:   colorSuccess,
		BarBg:    colorMantle,
		ActiveBg: colorSurface0,
	}
}

func (t Theme) activeTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.ActiveBg).
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)
}

func (t Theme) inactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.BarBg).
		Foreground(t.Muted).
		Padding(0, 1)
}

func (t Theme) tabSep() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorBorder).Background(t.BarBg)
}
