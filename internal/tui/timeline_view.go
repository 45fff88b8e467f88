package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/dayboard/internal/i18n"
	"github.com/jbonatakis/dayboard/internal/schedule"
)

var (
	activeRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	pastRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RenderTimeline lists every item in order and returns the line index of the
// active item, or -1. Items before the active one are dimmed; the active one
// is marked and expanded with its description.
func RenderTimeline(items []schedule.Item, activeIndex int, width int, tr *i18n.Translator) (string, int) {
	var lines []string
	activeLine := -1
	for i, it := range items {
		row := it.Start.String() + "  " + it.Title
		switch {
		case i == activeIndex:
			activeLine = len(lines)
			lines = append(lines, activeRowStyle.Render("▶ "+row))
			if it.Description != "" {
				lines = append(lines, indent(wrap(it.Description, width-2), "  "))
			}
		case activeIndex >= 0 && i < activeIndex:
			lines = append(lines, pastRowStyle.Render("  "+row))
		default:
			lines = append(lines, "  "+row)
		}
	}
	if len(lines) == 0 {
		return pastRowStyle.Render(tr.T(i18n.MsgNoActiveTasks)), -1
	}
	return strings.Join(lines, "\n"), activeLine
}

func indent(text string, prefix string) string {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = prefix + p
	}
	return strings.Join(parts, "\n")
}
