package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/termmenu/internal/logging/events"
	"github.com/atomicstack/termmenu/internal/menu"
)

// Request encapsulates an entry activation.
type Request struct {
	Page  string
	Entry menu.Entry
}

// Result is the outcome of running an entry. Target is the page to show
// next, empty to stay put.
type Result struct {
	Target string
	Quit   bool
	Err    error
}

// Bus runs entry actions synchronously on the caller's goroutine.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the entry's action, converting failures and panics into an
// *menu.ActionError carrying the entry label.
func (b *Bus) Execute(req Request) (res Result) {
	label := req.Entry.Label
	events.Command.Queue(req.Page, label)
	if !req.Entry.Enabled {
		events.Command.Skip(req.Page, label)
		return Result{}
	}
	if req.Entry.Action == nil && req.Entry.NextPage == "" {
		events.Command.NoOp(req.Page, label)
		return Result{}
	}

	defer func() {
		if r := recover(); r != nil {
			err := &menu.ActionError{Label: label, Cause: fmt.Errorf("panic: %v", r)}
			events.Action.Error(err)
			res = Result{Err: err}
		}
	}()

	target, err := req.Entry.Execute()
	if errors.Is(err, menu.ErrQuit) {
		events.Command.Result(req.Page, label, "quit")
		return Result{Quit: true}
	}
	if err != nil {
		wrapped := &menu.ActionError{Label: label, Cause: err}
		events.Action.Error(wrapped)
		return Result{Err: wrapped}
	}
	events.Command.Result(req.Page, label, target)
	events.Action.Success(label, target)
	return Result{Target: target}
}
