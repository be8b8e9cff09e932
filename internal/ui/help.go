package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Remote",
			items: []helpItem{
				{"←↑↓→", "Move focus"},
				{"enter/space", "Select"},
				{"←", "Open the menu from content"},
				{"→", "Back to content from the menu"},
			},
		},
		{
			title: "Pointer",
			items: []helpItem{
				{"hover", "Expand menu, pause carousel"},
				{"click", "Focus and select"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"m", "Mute/unmute hero"},
				{"T", "Cycle theme (" + m.theme.Name + ")"},
				{"esc", "Close dialog"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := styles.Modal.Width(44)
	return placeOverlay(m.theme, m.width, m.height, modal.Render(b.String()))
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
