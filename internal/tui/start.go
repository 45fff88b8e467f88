package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/jbonatakis/dayboard/internal/i18n"
	"go.uber.org/zap"
)

func Start(scheduler *dashboard.Scheduler, tr *i18n.Translator, logger *zap.Logger) error {
	model := NewModel(scheduler, tr, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
