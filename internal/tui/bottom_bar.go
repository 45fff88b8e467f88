package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/dayboard/internal/i18n"
)

func RenderBottomBar(m Model) string {
	left := m.help.ShortHelpView(m.keys.ShortHelp())

	rightParts := []string{}
	if m.hasSnapshot {
		rightParts = append(rightParts, m.snapshot.Now.Format("15:04:05"))
		if m.snapshot.Offset > 0 {
			rightParts = append(rightParts, m.tr.TData(i18n.MsgSimulated, map[string]any{
				"Offset": m.snapshot.Offset.String(),
			}))
		}
	}
	right := strings.Join(rightParts, " | ")

	width := m.windowWidth
	if width <= 0 {
		if right == "" {
			return left
		}
		return left + " | " + right
	}
	style := lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < 0 {
		innerWidth = 0
	}
	return style.Render(layoutBar(left, right, innerWidth))
}

func layoutBar(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if rightWidth >= width {
		return truncate(right, width)
	}
	if leftWidth+rightWidth+1 > width {
		left = truncate(left, width-rightWidth-1)
		leftWidth = lipgloss.Width(left)
	}
	gap := width - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	runes := []rune(text)
	if width == 1 {
		return string(runes[0])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
