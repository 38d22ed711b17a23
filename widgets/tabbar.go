package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TabLabel is one control in a TabBar.
type TabLabel struct {
	ID       string
	Label    string
	Selected bool
	Focused  bool
}

// TabBar draws a single-line tab list. Mark, when set, wraps each rendered
// tab so callers can hit-test it (bubblezone marks, for instance).
type TabBar struct {
	Tabs  []TabLabel
	Theme Theme
	Mark  func(id, rendered string) string
}

func (b TabBar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(b.Tabs) == 0 {
		empty := lipgloss.NewStyle().Foreground(b.Theme.Muted).Background(b.Theme.BarBg).Render("(no tabs)")
		return fillBar(empty, width, b.Theme.BarBg)
	}
	sep := b.Theme.tabSep().Render("│")
	parts := make([]string, 0, len(b.Tabs))
	for _, tab := range b.Tabs {
		label := strings.ReplaceAll(tab.Label, "\n", " ")
		style := b.Theme.inactiveTab()
		if tab.Selected {
			style = b.Theme.activeTab()
		}
		if tab.Focused {
			style = style.Underline(true).Foreground(b.Theme.Focus)
		}
		rendered := style.Render(label)
		if b.Mark != nil {
			rendered = b.Mark(tab.ID, rendered)
		}
		parts = append(parts, rendered)
	}
	return fillBar(strings.Join(parts, sep), width, b.Theme.BarBg)
}

func fillBar(line string, width int, bg lipgloss.Color) string {
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-w))
	}
	return line
}
