package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/atomicstack/termmenu/internal/app"
	"github.com/atomicstack/termmenu/internal/config"
	"github.com/atomicstack/termmenu/internal/logging"
	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run result to the process status: 2 for a bad menu
// definition, 1 for any other failure.
func exitCode(err error) int {
	var cfgErr *menu.ConfigError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cfgErr):
		return 2
	default:
		return 1
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
		"goos":   runtime.GOOS,
		"tty":    probeTTYs(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTTYs reports terminal support and size for the standard descriptors.
func probeTTYs() []ttyProbe {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	probes := make([]ttyProbe, len(files))
	for i, f := range files {
		probes[i].Name = names[i]
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		probes[i].IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			probes[i].Error = err.Error()
			continue
		}
		probes[i].Width, probes[i].Height = width, height
	}
	return probes
}
