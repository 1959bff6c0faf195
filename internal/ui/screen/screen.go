// Package screen runs a menu session on a tcell screen.
package screen

import (
	"context"
	"time"

	"github.com/atomicstack/termmenu/internal/keys"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/session"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var newScreen = tcell.NewScreen

type uiEvent struct {
	when time.Time
	kind string
}

func (e *uiEvent) When() time.Time { return e.when }

// Options configures Run. A positive Width or Height pins that dimension.
type Options struct {
	Width  int
	Height int
}

// Open creates and initialises the terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// Run drives s on an initialised screen until the session exits or ctx is
// cancelled. The screen is finalised before Run returns.
func Run(ctx context.Context, s *session.Session, screen tcell.Screen, opts Options) error {
	defer screen.Fini()
	if err := s.Begin(); err != nil {
		return err
	}
	defer s.Finish()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(&uiEvent{when: time.Now(), kind: "quit"})
		case <-done:
		}
	}()

	styles := newStyles(s.Theme().Palette)
	for {
		draw(screen, s, styles, opts)
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *uiEvent:
			if ev.kind == "quit" {
				return ctx.Err()
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			events.Render.Resize(w, h)
			screen.Sync()
		case *tcell.EventKey:
			key := translate(ev)
			events.Key.Decoded(key.String())
			if out := s.Dispatch(key); out.Kind == session.Exit {
				return nil
			}
		}
	}
}

func translate(ev *tcell.EventKey) keys.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return keys.Up
	case tcell.KeyDown:
		return keys.Down
	case tcell.KeyEnter:
		return keys.Enter
	case tcell.KeyEscape:
		return keys.Escape
	case tcell.KeyCtrlC:
		return keys.Interrupt
	default:
		return keys.Unknown
	}
}

func draw(screen tcell.Screen, s *session.Session, styles roleStyles, opts Options) {
	width, height := screen.Size()
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	frame := s.Frame(width, height)

	screen.Clear()
	for _, line := range frame.Lines {
		x, y := line.Col-1, line.Row-1
		for _, seg := range line.Segments {
			st := styles.of(seg.Role)
			for _, r := range seg.Text {
				w := runewidth.RuneWidth(r)
				if w == 0 {
					continue
				}
				screen.SetContent(x, y, r, nil, st)
				x += w
			}
		}
	}
	screen.Show()
	events.Render.Frame(s.Navigation().Current(), frame.Width, frame.Height, len(frame.Lines))
}
