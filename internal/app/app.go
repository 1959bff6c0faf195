package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/atomicstack/termmenu/internal/backend"
	"github.com/atomicstack/termmenu/internal/format/table"
	"github.com/atomicstack/termmenu/internal/keys"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/session"
	"github.com/atomicstack/termmenu/internal/terminal"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/atomicstack/termmenu/internal/ui"
	"github.com/atomicstack/termmenu/internal/ui/screen"
	"github.com/charmbracelet/lipgloss"
)

// Terminal drivers selectable with --driver.
const (
	DriverRaw   = "raw"
	DriverTea   = "tea"
	DriverTcell = "tcell"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath      string
	StartPage     string
	Width         int
	Height        int
	EscapeTimeout time.Duration
	KeyFormat     string
	Driver        string
	List          bool
}

// Run loads the menu and drives it on the process's terminal until the user
// leaves it or the process is signalled.
func Run(cfg Config) error {
	def, err := Load(cfg)
	if err != nil {
		return err
	}
	if cfg.List {
		return List(os.Stdout, def)
	}
	s, err := NewSession(def, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = drive(ctx, s, cfg)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func drive(ctx context.Context, s *session.Session, cfg Config) error {
	if cfg.Driver == DriverTcell {
		// tcell delivers its own resize events.
		scr, err := openScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		return screen.Run(ctx, s, scr, screen.Options{Width: cfg.Width, Height: cfg.Height})
	}

	watcher := newWatcher()
	defer watcher.Stop()
	if cfg.Driver == DriverTea {
		return ui.Run(ctx, s, ui.Options{Width: cfg.Width, Height: cfg.Height, Watcher: watcher})
	}
	s.WatchResize(watcher.Events())
	return s.Run(ctx, terminal.New(os.Stdin, os.Stdout))
}

var openScreen = screen.Open

var newWatcher = func() *backend.Watcher {
	return backend.NewWatcher(func() (int, int) { return terminal.Size(os.Stdout) }, backend.DefaultInterval)
}

// Load reads the menu definition and applies the start page override.
func Load(cfg Config) (*menu.Definition, error) {
	def, err := menu.LoadFile(cfg.MenuPath, menu.BuildRegistry())
	if err != nil {
		return nil, err
	}
	if cfg.StartPage != "" {
		if _, ok := def.Table.Page(cfg.StartPage); !ok {
			return nil, &menu.ConfigError{
				Source: "--start",
				Err:    menu.NewPageNotFoundError(cfg.StartPage, def.Table.Names()),
			}
		}
		def.StartPage = cfg.StartPage
	}
	return def, nil
}

// NewSession builds a session for def, positioned on its start page.
func NewSession(def *menu.Definition, cfg Config) (*session.Session, error) {
	format, err := keys.FormatByName(cfg.KeyFormat)
	if err != nil {
		return nil, &menu.ConfigError{Source: "--key-format", Err: err}
	}
	s := session.New(def.Table, session.Config{
		Theme:         Theme(def.Theme),
		Format:        format,
		EscapeTimeout: cfg.EscapeTimeout,
		Width:         cfg.Width,
		Height:        cfg.Height,
	})
	if err := s.SetStart(def.StartPage); err != nil {
		return nil, &menu.ConfigError{Source: "start_page", Err: err}
	}
	return s, nil
}

// Theme converts the definition's overrides into a theme. Nil overrides yield
// the default theme.
func Theme(o *menu.ThemeOverrides) theme.Theme {
	if o == nil {
		return theme.Default()
	}
	return theme.New(theme.Palette{
		Border:             lipgloss.Color(o.Border),
		SelectedBackground: lipgloss.Color(o.SelectedBackground),
		SelectedForeground: lipgloss.Color(o.SelectedForeground),
		Muted:              lipgloss.Color(o.Muted),
	}, o.MinWidth, o.MinHeight)
}

// List writes one row per page: name, title, entry count and a start marker.
func List(w io.Writer, def *menu.Definition) error {
	rows := [][]string{{"PAGE", "ENTRIES", "START", "TITLE"}}
	for _, name := range def.Table.Names() {
		page, _ := def.Table.Page(name)
		start := ""
		if name == def.StartPage {
			start = "*"
		}
		rows = append(rows, []string{name, strconv.Itoa(page.Len()), start, page.Title})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
