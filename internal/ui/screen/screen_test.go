package screen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/render"
	"github.com/atomicstack/termmenu/internal/session"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

func newTestSession(t *testing.T) (*session.Session, *menu.Table) {
	t.Helper()
	table := menu.NewTable()
	home, _ := menu.NewPage("home", "Home")
	settings, _ := menu.NewPage("settings", "Settings")
	for _, err := range []error{
		home.Add("Settings", nil, "settings"),
		home.Add("About", nil, ""),
		settings.Add("Colors", nil, ""),
		settings.Add("Fonts", nil, ""),
		table.AddPage(home),
		table.AddPage(settings),
	} {
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	s := session.New(table, session.Config{})
	if err := s.SetStart("home"); err != nil {
		t.Fatalf("set start: %v", err)
	}
	return s, table
}

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	return sim
}

func TestRunProcessesKeys(t *testing.T) {
	s, table := newTestSession(t)
	sim := newSimScreen(t, 80, 24)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), s, sim, Options{}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for screen loop")
	}
	settings, _ := table.Page("settings")
	if settings.Selected != 1 {
		t.Fatalf("expected settings selection 1, got %d", settings.Selected)
	}
	if s.Phase() != session.Terminated {
		t.Fatalf("expected terminated session, got %s", s.Phase())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, _ := newTestSession(t)
	sim := newSimScreen(t, 80, 24)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, s, sim, Options{}) }()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for cancellation")
	}
}

func TestDrawPlacesFrame(t *testing.T) {
	s, _ := newTestSession(t)
	sim := newSimScreen(t, 80, 24)
	defer sim.Fini()
	styles := newStyles(s.Theme().Palette)
	draw(sim, s, styles, Options{})

	frame := s.Frame(80, 24)
	first := frame.Lines[0]
	cells, width, _ := sim.GetContents()
	cell := cells[(first.Row-1)*width+first.Col-1]
	if len(cell.Runes) == 0 || cell.Runes[0] != '╔' {
		t.Fatalf("expected top-left corner at %d,%d, got %q", first.Row, first.Col, cell.Runes)
	}
	fg, _, _ := cell.Style.Decompose()
	if fg != tcell.PaletteColor(14) {
		t.Fatalf("expected border colour 14, got %v", fg)
	}

	selectedRow := frame.Lines[3]
	sel := cells[(selectedRow.Row-1)*width+selectedRow.Col]
	_, bg, _ := sel.Style.Decompose()
	if bg != tcell.PaletteColor(14) {
		t.Fatalf("expected selected background colour 14, got %v", bg)
	}
}

func TestDrawHonoursPinnedSize(t *testing.T) {
	s, _ := newTestSession(t)
	sim := newSimScreen(t, 120, 40)
	defer sim.Fini()
	draw(sim, s, newStyles(s.Theme().Palette), Options{Width: 40, Height: 12})
	frame := s.Frame(40, 12)
	cells, width, _ := sim.GetContents()
	first := frame.Lines[0]
	if r := cells[(first.Row-1)*width+first.Col-1].Runes; len(r) == 0 || r[0] != '╔' {
		t.Fatalf("expected frame laid out for 40x12")
	}
}

func TestTranslate(t *testing.T) {
	cases := map[tcell.Key]string{
		tcell.KeyUp:     "up",
		tcell.KeyDown:   "down",
		tcell.KeyEnter:  "enter",
		tcell.KeyEscape: "escape",
		tcell.KeyCtrlC:  "interrupt",
		tcell.KeyLeft:   "unknown",
	}
	for k, want := range cases {
		got := translate(tcell.NewEventKey(k, 0, tcell.ModNone)).String()
		if got != want {
			t.Fatalf("key %v: expected %s, got %s", k, want, got)
		}
	}
}

func TestColor(t *testing.T) {
	if got := color(lipgloss.Color("14")); got != tcell.PaletteColor(14) {
		t.Fatalf("expected palette colour 14, got %v", got)
	}
	if got := color(lipgloss.Color("#ff0000")); got != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("expected rgb red, got %v", got)
	}
	styles := newStyles(theme.DefaultPalette)
	if styles.of(render.Role(99)) != tcell.StyleDefault {
		t.Fatalf("expected default style for unknown role")
	}
}
