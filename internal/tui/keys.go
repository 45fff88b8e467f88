package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/jbonatakis/dayboard/internal/i18n"
)

type keyMap struct {
	Complete key.Binding
	Next     key.Binding
	Pane     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// newKeyMap builds bindings with localized help text. "complete" and "next"
// trigger the same skip.
func newKeyMap(tr *i18n.Translator) keyMap {
	return keyMap{
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", tr.T(i18n.MsgComplete))),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", tr.T(i18n.MsgNext))),
		Pane:     key.NewBinding(key.WithKeys("tab")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", tr.T(i18n.MsgScroll))),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", tr.T(i18n.MsgQuit))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Next, k.Up, k.Quit}
}
