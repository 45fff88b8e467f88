package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/jbonatakis/dayboard/internal/i18n"
	"github.com/jbonatakis/dayboard/internal/schedule"
)

var (
	timeRangeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("183"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	countdownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
)

// RenderActivePanel shows the active item with its countdown and progress,
// followed by the next item.
func RenderActivePanel(m Model, width int) string {
	state := m.snapshot.State
	if !m.hasSnapshot || state.Active == nil {
		return dimStyle.Render(m.tr.T(i18n.MsgNoActiveTasks))
	}
	active := state.Active

	lines := []string{
		timeRangeStyle.Render(formatRange(*active)),
		titleStyle.Render(active.Title),
	}
	if active.Description != "" {
		lines = append(lines, wrap(active.Description, width))
	}
	if len(active.Subtasks) > 0 {
		lines = append(lines, "", labelStyle.Render(m.tr.T(i18n.MsgSubtasks)))
		for _, sub := range active.Subtasks {
			lines = append(lines, "• "+sub)
		}
	}

	lines = append(lines,
		"",
		labelStyle.Render(m.tr.T(i18n.MsgTimeLeft)),
		countdownStyle.Render(dashboard.FormatCountdown(state.Remaining)),
		m.progress.ViewAs(state.ElapsedFraction/100)+" "+dashboard.FormatPercent(state.ElapsedFraction),
	)

	if active.Image != "" {
		lines = append(lines, "", dimStyle.Render(m.tr.T(i18n.MsgImage)+": "+active.Image))
	}

	if state.Next != nil {
		lines = append(lines,
			"",
			labelStyle.Render(m.tr.T(i18n.MsgUpNext)),
			timeRangeStyle.Render(state.Next.Start.String())+" "+state.Next.Title,
		)
	}
	return strings.Join(lines, "\n")
}

func formatRange(it schedule.Item) string {
	return it.Start.String() + " — " + it.End.String()
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width - 2).Render(text)
}
