package ui

import (
	"github.com/atomicstack/termmenu/internal/keys"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Back      key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// translate maps a key press onto the decoder's event set.
func (k keyMap) translate(msg tea.KeyMsg) keys.Event {
	switch {
	case key.Matches(msg, k.Up):
		return keys.Up
	case key.Matches(msg, k.Down):
		return keys.Down
	case key.Matches(msg, k.Enter):
		return keys.Enter
	case key.Matches(msg, k.Back):
		return keys.Escape
	case key.Matches(msg, k.Interrupt):
		return keys.Interrupt
	default:
		return keys.Unknown
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.quitting {
		return nil
	}
	ev := m.keys.translate(keyMsg)
	events.Key.Decoded(ev.String())
	m.last = m.session.Dispatch(ev)
	if m.last.Kind == session.Exit {
		m.quitting = true
		return tea.Quit
	}
	return nil
}
