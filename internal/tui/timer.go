package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{}

// tickNowCmd fires the first tick without waiting a full interval.
func tickNowCmd() tea.Cmd {
	return func() tea.Msg {
		return tickMsg{}
	}
}

func TickCmd(interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		<-time.After(interval)
		return tickMsg{}
	}
}
