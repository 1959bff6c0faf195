package state

import (
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
)

// Pages is the page lookup navigation validates against.
type Pages interface {
	Page(name string) (*menu.Page, bool)
	Names() []string
}

// Navigation tracks the current page and the stack of pages visited before
// it. The current page, once set, always exists in the page table.
type Navigation struct {
	pages   Pages
	current string
	history []string
}

// NewNavigation creates navigation state with no current page.
func NewNavigation(pages Pages) *Navigation {
	return &Navigation{pages: pages}
}

// SetStart makes name the current page and clears the history.
func (n *Navigation) SetStart(name string) error {
	if _, ok := n.pages.Page(name); !ok {
		return menu.NewPageNotFoundError(name, n.pages.Names())
	}
	n.current = name
	n.history = nil
	events.Nav.Start(name)
	return nil
}

// Goto pushes the current page onto the history and shows name.
func (n *Navigation) Goto(name string) error {
	if _, ok := n.pages.Page(name); !ok {
		err := menu.NewPageNotFoundError(name, n.pages.Names())
		events.Nav.Error(n.current, err)
		return err
	}
	if n.current != "" {
		n.history = append(n.history, n.current)
	}
	events.Nav.Goto(n.current, name, len(n.history))
	n.current = name
	return nil
}

// GoBack returns to the most recently visited page. It reports false and
// leaves the state untouched when there is no history.
func (n *Navigation) GoBack() bool {
	if len(n.history) == 0 {
		return false
	}
	last := len(n.history) - 1
	from := n.current
	n.current = n.history[last]
	n.history = n.history[:last]
	events.Nav.Back(from, n.current, len(n.history))
	return true
}

// Reset returns to the bottom of the history and clears it.
func (n *Navigation) Reset() {
	if len(n.history) > 0 {
		n.current = n.history[0]
	}
	n.history = nil
}

// CanGoBack reports whether GoBack would move.
func (n *Navigation) CanGoBack() bool {
	return len(n.history) > 0
}

// Current returns the current page name, empty before SetStart.
func (n *Navigation) Current() string {
	return n.current
}

// CurrentPage resolves the current page.
func (n *Navigation) CurrentPage() (*menu.Page, bool) {
	if n.current == "" {
		return nil, false
	}
	return n.pages.Page(n.current)
}

// History returns a copy of the history, oldest first.
func (n *Navigation) History() []string {
	return append([]string(nil), n.history...)
}

// Depth returns the number of pages on the history stack.
func (n *Navigation) Depth() int {
	return len(n.history)
}
