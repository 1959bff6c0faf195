package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/termmenu/internal/backend"
	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/gdamore/tcell/v2"
)

const testMenu = `
start_page: home
theme:
  border: "12"
  min_width: 50
pages:
  home:
    title: Main Menu
    entries:
      - label: Settings
        next_page: settings
      - label: Quit
        action: quit
  settings:
    entries:
      - label: Back
        next_page: home
`

func writeMenu(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}
	return path
}

func TestLoadAppliesStartOverride(t *testing.T) {
	def, err := Load(Config{MenuPath: writeMenu(t, testMenu), StartPage: "settings"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.StartPage != "settings" {
		t.Fatalf("expected settings start page, got %q", def.StartPage)
	}
}

func TestLoadRejectsUnknownStartOverride(t *testing.T) {
	_, err := Load(Config{MenuPath: writeMenu(t, testMenu), StartPage: "setings"})
	var cfgErr *menu.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Source != "--start" {
		t.Fatalf("expected ConfigError from --start, got %v", err)
	}
	var notFound *menu.PageNotFoundError
	if !errors.As(err, &notFound) || len(notFound.Suggestions) == 0 || notFound.Suggestions[0] != "settings" {
		t.Fatalf("expected suggestion for settings, got %v", err)
	}
}

func TestLoadMissingFileIsConfigError(t *testing.T) {
	_, err := Load(Config{MenuPath: filepath.Join(t.TempDir(), "nope.yaml")})
	var cfgErr *menu.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestNewSessionStartsOnStartPage(t *testing.T) {
	def, err := Load(Config{MenuPath: writeMenu(t, testMenu)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSession(def, Config{KeyFormat: "pc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Navigation().Current(); got != "home" {
		t.Fatalf("expected home, got %q", got)
	}
	if s.Theme().MinWidth != 50 || s.Theme().Palette.Border != "12" {
		t.Fatalf("expected theme overrides applied, got %+v", s.Theme().Palette)
	}
}

func TestNewSessionRejectsKeyFormat(t *testing.T) {
	def, err := Load(Config{MenuPath: writeMenu(t, testMenu)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = NewSession(def, Config{KeyFormat: "ebcdic"})
	var cfgErr *menu.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Source != "--key-format" {
		t.Fatalf("expected key format ConfigError, got %v", err)
	}
}

func TestThemeDefaultsWithoutOverrides(t *testing.T) {
	th := Theme(nil)
	if th.Palette != theme.DefaultPalette || th.MinWidth != theme.DefaultMinWidth {
		t.Fatalf("expected default theme, got %+v", th.Palette)
	}
}

func TestList(t *testing.T) {
	def, err := Load(Config{MenuPath: writeMenu(t, testMenu)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	if err := List(&out, def); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{
		"PAGE      ENTRIES  START  TITLE",
		"home            2  *      Main Menu",
		"settings        1         settings",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestDriveTcellSkipsResizeWatcher(t *testing.T) {
	def, err := Load(Config{MenuPath: writeMenu(t, testMenu)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewSession(def, Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	watchers := 0
	prevWatcher, prevScreen := newWatcher, openScreen
	newWatcher = func() *backend.Watcher {
		watchers++
		return prevWatcher()
	}
	cause := errors.New("no tty")
	openScreen = func() (tcell.Screen, error) { return nil, cause }
	t.Cleanup(func() {
		newWatcher = prevWatcher
		openScreen = prevScreen
	})

	err = drive(context.Background(), s, Config{Driver: DriverTcell})
	if !errors.Is(err, cause) {
		t.Fatalf("expected screen open error, got %v", err)
	}
	if watchers != 0 {
		t.Fatalf("expected no resize watcher for tcell, got %d", watchers)
	}
}
