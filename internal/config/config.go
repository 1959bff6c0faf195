package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/termmenu/internal/app"
	"github.com/atomicstack/termmenu/internal/keys"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenu       = "TERMMENU_MENU"
	envStart      = "TERMMENU_START"
	envWidth      = "TERMMENU_WIDTH"
	envHeight     = "TERMMENU_HEIGHT"
	envEscTimeout = "TERMMENU_ESC_TIMEOUT"
	envKeyFormat  = "TERMMENU_KEY_FORMAT"
	envDriver     = "TERMMENU_DRIVER"
	envTrace      = "TERMMENU_TRACE"
	envLogFile    = "TERMMENU_LOG_FILE"
)

// keyFormatUsage notes that raw mode turns on VT input on Windows consoles,
// so pc only applies to inputs that still deliver 0x00/0xE0 prefixed keys.
const keyFormatUsage = "key encoding to decode: vt or pc (pc needs an input that sends 0x00/0xE0 prefixed keys; Windows consoles in raw mode send vt)"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("termmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menuPath := fs.String("menu", envOrDefault(env, envMenu, ""), "path to the YAML or JSON menu definition")
	start := fs.String("start", envOrDefault(env, envStart, ""), "page to open first (overrides start_page)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired layout width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired layout height in rows (0 uses terminal height)")
	escTimeout := fs.Duration("esc-timeout", envOrDuration(env, envEscTimeout, keys.DefaultEscapeTimeout), "how long to wait for the rest of an escape sequence")
	keyFormat := fs.String("key-format", envOrDefault(env, envKeyFormat, keys.FormatVT), keyFormatUsage)
	driver := fs.String("driver", envOrDefault(env, envDriver, app.DriverRaw), "terminal driver: raw, tea or tcell")
	list := fs.Bool("list", false, "print the pages of the menu and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			MenuPath:      strings.TrimSpace(*menuPath),
			StartPage:     strings.TrimSpace(*start),
			Width:         *width,
			Height:        *height,
			EscapeTimeout: *escTimeout,
			KeyFormat:     strings.ToLower(strings.TrimSpace(*keyFormat)),
			Driver:        strings.ToLower(strings.TrimSpace(*driver)),
			List:          *list,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"menu":       *menuPath,
			"start":      *start,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"escTimeout": escTimeout.String(),
			"keyFormat":  *keyFormat,
			"driver":     *driver,
			"list":       strconv.FormatBool(*list),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrDuration accepts Go durations ("50ms") or a bare number of milliseconds.
func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.MenuPath == "" {
		return fmt.Errorf("a menu definition is required (--menu or %s)", envMenu)
	}
	if cfg.App.EscapeTimeout <= 0 {
		return fmt.Errorf("esc-timeout must be > 0 (got %s)", cfg.App.EscapeTimeout)
	}
	if _, err := keys.FormatByName(cfg.App.KeyFormat); err != nil {
		return err
	}
	switch cfg.App.Driver {
	case app.DriverRaw, app.DriverTea, app.DriverTcell:
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", cfg.App.Driver, app.DriverRaw, app.DriverTea, app.DriverTcell)
	}
	return nil
}
