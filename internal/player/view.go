package player

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/pagedots/internal/ui"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			MarginBottom(1)

	completedStyle = labelStyle.
			Foreground(ui.ColorSuccess)

	autoPlayStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			MarginTop(1)

	autoPlayOnStyle = autoPlayStyle.
			Foreground(ui.ColorInfo)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	logStyle = lipgloss.NewStyle().
			MarginTop(1)
)

// label is "Page: N" (one-based), or "Completed" once the sequence ends.
func (m Model) label() string {
	if m.control.Ended() {
		return "Completed"
	}
	return fmt.Sprintf("Page: %d", m.control.CurrentPage()+1)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := labelStyle
	if m.control.Ended() {
		style = completedStyle
	}

	autoPlay, apStyle := "autoplay off", autoPlayStyle
	if m.control.AutoPlay() {
		autoPlay, apStyle = "autoplay on", autoPlayOnStyle
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		style.Render(m.label()),
		m.control.View(),
		apStyle.Render(autoPlay),
		logStyle.Render(m.events.render()),
	)
	footer := m.help.View(m.keys)
	if m.width > 0 {
		// help still appends its last item when the ellipsis doesn't fit.
		footer = lipgloss.NewStyle().MaxWidth(m.width).Render(footer)
	}

	if m.width == 0 || m.height == 0 {
		return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, body, footer))
	}

	bodyHeight := max(m.height-lipgloss.Height(footer), 0)
	screen := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body),
		footer,
	)
	return m.zones.Scan(screen)
}
