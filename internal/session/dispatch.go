package session

import (
	"github.com/atomicstack/termmenu/internal/command"
	"github.com/atomicstack/termmenu/internal/keys"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
)

// Dispatch applies one key event. Failures never escape: they are reported
// in the returned outcome and shown as the status message until the next key.
func (s *Session) Dispatch(ev keys.Event) Outcome {
	if s.phase == Terminated {
		return Outcome{Kind: Exit, Err: ErrSessionTerminated}
	}
	page, ok := s.nav.CurrentPage()
	if !ok {
		return Outcome{Kind: Exit, Err: ErrStartPageNotSet}
	}
	s.status = ""

	switch ev {
	case keys.Up:
		return s.move(page, page.MoveUp)
	case keys.Down:
		return s.move(page, page.MoveDown)
	case keys.Enter:
		return s.activate(page)
	case keys.Escape, keys.Interrupt:
		if s.nav.GoBack() {
			return Outcome{Kind: Navigated}
		}
		s.phase = Terminated
		events.App.Exit(ev.String())
		return Outcome{Kind: Exit}
	default:
		return Outcome{Kind: Continue}
	}
}

func (s *Session) move(page *menu.Page, step func() bool) Outcome {
	if !step() {
		return Outcome{Kind: Continue}
	}
	events.Nav.Cursor(page.Name, page.Selected)
	return Outcome{Kind: Moved}
}

func (s *Session) activate(page *menu.Page) Outcome {
	entry, ok := page.SelectedEntry()
	if !ok || !entry.Enabled {
		return Outcome{Kind: Continue}
	}
	res := s.bus.Execute(command.Request{Page: page.Name, Entry: *entry})
	switch {
	case res.Quit:
		s.phase = Terminated
		events.App.Exit("quit")
		return Outcome{Kind: Exit}
	case res.Err != nil:
		s.status = res.Err.Error()
		return Outcome{Kind: ActionFailed, Err: res.Err}
	case res.Target == "":
		return Outcome{Kind: Continue}
	}
	if err := s.nav.Goto(res.Target); err != nil {
		s.status = err.Error()
		return Outcome{Kind: NavigationFailed, Err: err}
	}
	return Outcome{Kind: Navigated}
}
