package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpModalWidth = 64

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	// Bindings
	full := m.help
	full.Width = 0
	b.WriteString(full.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")

	b.WriteString(styles.FaintText.Render("Theme: " + m.theme.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	modalWidth := helpModalWidth
	if m.width > 0 && m.width-2 < modalWidth {
		modalWidth = maxInt(10, m.width-2)
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
