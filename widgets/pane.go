package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded box with the title set into its top border.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Theme   Theme
}

func (p Pane) Render(width, height int) string {
	// a box needs two border rows and two border columns around its content
	if width < 4 || height < 3 {
		return ""
	}

	border := p.Theme.Border
	if p.Focused {
		border = p.Theme.Active
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(p.Theme.Text).Bold(true)
	contentStyle := lipgloss.NewStyle().Foreground(p.Theme.Text)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	titleText := ""
	if title := strings.TrimSpace(p.Title); title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-2), "") + " "
		}
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	innerHeight := height - 2
	contentLines := splitLines(p.Content)
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < innerHeight; i++ {
		line := ""
		if i < len(contentLines) {
			line = contentLines[i]
		}
		line = contentStyle.Render(ansi.Truncate(line, contentWidth, ""))
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}
