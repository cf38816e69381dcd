package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// renderMain draws the status card centred on the themed backdrop.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	card := styles.Card.Render(m.renderCard(styles))

	if m.width <= 0 || m.height <= 0 {
		return card
	}

	footer := m.renderFooter(styles)
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := lipgloss.Place(
		m.width,
		bodyHeight,
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) renderCard(styles Styles) string {
	line := func(style lipgloss.Style, text string) string {
		return style.Width(cardWidth).Align(lipgloss.Center).Render(text)
	}

	statusStyle := styles.OfflineStatus
	if m.display.Live {
		statusStyle = styles.LiveStatus
	}

	rows := []string{
		line(statusStyle, m.display.StatusLine),
		line(styles.Text, m.display.ViewerLine),
		line(styles.MutedText, m.display.TitleLine),
		line(styles.Text, ""),
		line(styles.Text, m.renderRefreshButton(styles)),
		line(styles.Text, ""),
		line(styles.Text, m.renderReason(styles)),
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRefreshButton(styles Styles) string {
	label := refreshLabel
	if m.refreshing {
		label = m.spinner.View() + " " + label
	}
	if m.focus == focusRefresh {
		return styles.ButtonFocused.Render(label)
	}
	return styles.Button.Render(label)
}

func (m Model) renderReason(styles Styles) string {
	style := styles.Reason
	if m.focus == focusReason {
		style = styles.ReasonFocused
	}
	return style.Width(reasonWidth + 1).Render(m.reason.View())
}

func (m Model) renderFooter(styles Styles) string {
	var parts []string
	if m.channel != "" {
		parts = append(parts, "twitch.tv/"+m.channel)
	}
	if !m.display.UpdatedAt.IsZero() {
		parts = append(parts, "updated "+m.display.UpdatedAt.Local().Format(updatedLayout))
	}
	parts = append(parts, m.help.View(m.keys))
	return styles.Footer.Width(m.width).Render(strings.Join(parts, "  •  "))
}
