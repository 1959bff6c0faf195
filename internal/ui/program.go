package ui

import (
	"context"
	"errors"
	"io"

	"github.com/atomicstack/termmenu/internal/backend"
	"github.com/atomicstack/termmenu/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures Run.
type Options struct {
	Width   int
	Height  int
	Watcher *backend.Watcher
	// Input and Output default to the process's terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run shows s in the alternate screen until the session exits or ctx is
// cancelled.
func Run(ctx context.Context, s *session.Session, opts Options) error {
	if err := s.Begin(); err != nil {
		return err
	}
	defer s.Finish()

	model := NewModel(s, opts.Width, opts.Height, opts.Watcher)
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
