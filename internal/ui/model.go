package ui

import (
	"reflect"

	"github.com/atomicstack/termmenu/internal/backend"
	"github.com/atomicstack/termmenu/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for a menu session.
type Model struct {
	session     *session.Session
	keys        keyMap
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	backend     *backend.Watcher
	quitting    bool
	last        session.Outcome

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps s. A positive width or height pins that dimension;
// otherwise it follows tea.WindowSizeMsg. The session must have a start page.
func NewModel(s *session.Session, width, height int, watcher *backend.Watcher) *Model {
	m := &Model{
		session: s,
		keys:    defaultKeyMap(),
		backend: watcher,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Session exposes the wrapped session.
func (m *Model) Session() *session.Session {
	return m.session
}

// LastOutcome returns the result of the most recent key dispatch.
func (m *Model) LastOutcome() session.Outcome {
	return m.last
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.resize(size.Width, size.Height)
	return nil
}

func (m *Model) resize(width, height int) {
	if !m.fixedWidth {
		m.width = width
	}
	if !m.fixedHeight {
		m.height = height
	}
}
