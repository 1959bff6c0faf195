package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/termmenu/internal/backend"
	"github.com/atomicstack/termmenu/internal/command"
	"github.com/atomicstack/termmenu/internal/keys"
	"github.com/atomicstack/termmenu/internal/logging"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/render"
	"github.com/atomicstack/termmenu/internal/state"
	"github.com/atomicstack/termmenu/internal/terminal"
	"github.com/atomicstack/termmenu/internal/theme"
)

const defaultPollInterval = 10 * time.Millisecond

var (
	// ErrStartPageNotSet is returned when a session is run before SetStart.
	ErrStartPageNotSet = errors.New("start page not set")
	// ErrSessionTerminated is returned when a finished session is run again.
	ErrSessionTerminated = errors.New("session already terminated")

	errInputClosed = errors.New("input closed")
)

// IO is the terminal a session reads keys from and draws frames to.
type IO interface {
	Start() error
	Stop()
	Chunks() <-chan []byte
	Write(p []byte) (int, error)
	Size() (int, int)
}

// Config describes session options. Zero values select defaults.
type Config struct {
	Theme         theme.Theme
	Format        keys.Format
	EscapeTimeout time.Duration
	// Width and Height pin the layout size; 0 uses the terminal's.
	Width        int
	Height       int
	PollInterval time.Duration
	// Resize triggers a redraw whenever it delivers an event.
	Resize <-chan backend.Event
}

// Session drives one menu from its start page until the user leaves the
// root page or an action quits.
type Session struct {
	table  *menu.Table
	nav    *state.Navigation
	bus    *command.Bus
	cfg    Config
	phase  Phase
	status string
}

// New creates a session over table. SetStart must be called before Run.
func New(table *menu.Table, cfg Config) *Session {
	if cfg.Theme.Styles == nil {
		cfg.Theme = theme.Default()
	}
	if cfg.Format == nil {
		cfg.Format = keys.VT{}
	}
	if cfg.EscapeTimeout <= 0 {
		cfg.EscapeTimeout = keys.DefaultEscapeTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Session{
		table: table,
		nav:   state.NewNavigation(table),
		bus:   command.New(),
		cfg:   cfg,
	}
}

// SetStart selects the first page shown and clears the history.
func (s *Session) SetStart(name string) error {
	return s.nav.SetStart(name)
}

// WatchResize redraws the frame whenever ch delivers an event.
func (s *Session) WatchResize(ch <-chan backend.Event) {
	s.cfg.Resize = ch
}

// Navigation exposes the page history.
func (s *Session) Navigation() *state.Navigation {
	return s.nav
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Theme returns the theme frames are rendered with.
func (s *Session) Theme() theme.Theme {
	return s.cfg.Theme
}

// Status returns the message shown under the frame, if any.
func (s *Session) Status() string {
	return s.status
}

// Begin moves the session to Running. Drivers that own their input loop call
// it instead of Run.
func (s *Session) Begin() error {
	switch {
	case s.phase == Terminated:
		return ErrSessionTerminated
	case s.nav.Current() == "":
		return ErrStartPageNotSet
	}
	s.phase = Running
	return nil
}

// Finish marks the session terminated.
func (s *Session) Finish() {
	s.phase = Terminated
}

// Frame renders the current page for a width x height terminal.
func (s *Session) Frame(width, height int) render.Frame {
	page, _ := s.nav.CurrentPage()
	return render.Render(page, s.cfg.Theme, width, height, s.status)
}

// Run takes over io until the session ends. The terminal is restored on
// every exit path, including panics raised by entry actions.
func (s *Session) Run(ctx context.Context, io IO) error {
	if err := s.Begin(); err != nil {
		return err
	}
	if err := io.Start(); err != nil {
		s.phase = Terminated
		return fmt.Errorf("start input: %w", err)
	}
	defer func() {
		r := recover()
		io.Stop()
		if rerr := terminal.Restore(io); rerr != nil {
			logging.Errorf("restore terminal: %v", rerr)
		}
		s.phase = Terminated
		if r != nil {
			panic(r)
		}
	}()

	buf := keys.NewBuffer(io.Chunks())
	dec := keys.NewDecoder(buf, s.cfg.Format, s.cfg.EscapeTimeout)
	for {
		if err := s.draw(io); err != nil {
			return err
		}
		ev, err := s.waitEvent(ctx, io, buf, dec)
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
		if out := s.Dispatch(ev); out.Kind == Exit {
			return nil
		}
	}
}

// waitEvent polls the decoder until it yields an event, redrawing on resize.
func (s *Session) waitEvent(ctx context.Context, io IO, buf *keys.Buffer, dec *keys.Decoder) (keys.Event, error) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	resize := s.cfg.Resize
	for {
		if ev, ok := dec.Next(); ok {
			events.Key.Decoded(ev.String())
			return ev, nil
		}
		if buf.Closed() {
			return keys.Unknown, errInputClosed
		}
		select {
		case <-ctx.Done():
			return keys.Unknown, ctx.Err()
		case _, ok := <-resize:
			if !ok {
				resize = nil
				continue
			}
			if err := s.draw(io); err != nil {
				return keys.Unknown, err
			}
		case <-ticker.C:
		}
	}
}

func (s *Session) draw(io IO) error {
	width, height := s.size(io)
	frame := s.Frame(width, height)
	if _, err := io.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	events.Render.Frame(s.nav.Current(), frame.Width, frame.Height, len(frame.Lines))
	return nil
}

func (s *Session) size(io IO) (int, int) {
	width, height := s.cfg.Width, s.cfg.Height
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th := io.Size()
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return width, height
}
