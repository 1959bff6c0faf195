package config

import (
	"errors"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/termmenu/internal/app"
	"github.com/atomicstack/termmenu/internal/keys"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != keys.DefaultEscapeTimeout {
		t.Fatalf("expected default esc timeout, got %s", cfg.App.EscapeTimeout)
	}
	if cfg.App.KeyFormat != keys.FormatVT {
		t.Fatalf("expected vt key format, got %q", cfg.App.KeyFormat)
	}
	if cfg.App.Driver != app.DriverRaw {
		t.Fatalf("expected raw driver, got %q", cfg.App.Driver)
	}
	if cfg.App.List || cfg.Logging.Trace {
		t.Fatalf("expected list and trace off by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"TERMMENU_MENU=/env/menu.yaml",
		"TERMMENU_WIDTH=90",
		"TERMMENU_DRIVER=tea",
		"TERMMENU_ESC_TIMEOUT=75",
	}
	cfg, err := LoadArgs([]string{"--menu", "/flag/menu.yaml", "--driver", "TCELL", "--start", " settings "}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.MenuPath != "/flag/menu.yaml" {
		t.Fatalf("expected flag menu path, got %q", cfg.App.MenuPath)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected env width 90, got %d", cfg.App.Width)
	}
	if cfg.App.Driver != app.DriverTcell {
		t.Fatalf("expected tcell driver, got %q", cfg.App.Driver)
	}
	if cfg.App.StartPage != "settings" {
		t.Fatalf("expected trimmed start page, got %q", cfg.App.StartPage)
	}
	if cfg.App.EscapeTimeout != 75*time.Millisecond {
		t.Fatalf("expected 75ms from env, got %s", cfg.App.EscapeTimeout)
	}
}

func TestLoadArgsDurationFlag(t *testing.T) {
	cfg, err := LoadArgs([]string{"--esc-timeout", "120ms", "--key-format", "pc"}, []string{"TERMMENU_ESC_TIMEOUT=garbage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != 120*time.Millisecond {
		t.Fatalf("expected 120ms, got %s", cfg.App.EscapeTimeout)
	}
	if cfg.App.KeyFormat != keys.FormatPC {
		t.Fatalf("expected pc, got %q", cfg.App.KeyFormat)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs([]string{"--menu", "menu.yaml"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(base); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]func(*Config){
		"a menu definition is required": func(c *Config) { c.App.MenuPath = "" },
		"esc-timeout must be > 0":       func(c *Config) { c.App.EscapeTimeout = 0 },
		"unknown key format":            func(c *Config) { c.App.KeyFormat = "xterm" },
		"unknown driver":                func(c *Config) { c.App.Driver = "curses" },
	}
	for want, mutate := range cases {
		cfg := base
		mutate(&cfg)
		err := Validate(cfg)
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q error, got %v", want, err)
		}
	}
}

func TestKeyFormatHelpNotesWindowsVTInput(t *testing.T) {
	cfg, err := LoadArgs([]string{"-h"}, nil)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v (%+v)", err, cfg)
	}
	for _, want := range []string{"0x00/0xE0", "Windows consoles in raw mode send vt"} {
		if !strings.Contains(keyFormatUsage, want) {
			t.Fatalf("expected key-format help to mention %q, got %q", want, keyFormatUsage)
		}
	}
}
