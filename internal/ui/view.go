package ui

import (
	"github.com/atomicstack/termmenu/internal/logging/events"
)

// View renders the current page. Nothing is drawn once the session ends so
// the program leaves a clean screen behind.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	frame := m.session.Frame(m.width, m.height)
	events.Render.Frame(m.session.Navigation().Current(), frame.Width, frame.Height, len(frame.Lines))
	return frame.Block()
}
