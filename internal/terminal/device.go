package terminal

import (
	"errors"
	"time"
)

// Device is the platform input handle a Source captures from.
type Device interface {
	// MakeRaw switches the device to character-at-a-time, no-echo input and
	// returns a function restoring the previous mode.
	MakeRaw() (func() error, error)
	// Poll waits up to timeout for input and reports whether Read would
	// return data without blocking.
	Poll(timeout time.Duration) (bool, error)
	// Read reads available bytes.
	Read(p []byte) (int, error)
}

// ErrNotTerminal is returned when raw mode is requested on a non-terminal.
var ErrNotTerminal = errors.New("input is not a terminal")
