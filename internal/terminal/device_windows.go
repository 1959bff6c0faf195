//go:build windows

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

type windowsDevice struct {
	handle windows.Handle
}

// NewDevice wraps f, normally os.Stdin.
func NewDevice(f *os.File) Device {
	return &windowsDevice{handle: windows.Handle(f.Fd())}
}

// MakeRaw also enables virtual terminal input, so arrow keys arrive as VT
// sequences. The console never delivers 0x00/0xE0 prefixed keys through
// ReadFile, so the pc key format does not apply here.
func (d *windowsDevice) MakeRaw() (func() error, error) {
	fd := int(d.handle)
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, old) }, nil
}

func (d *windowsDevice) Poll(timeout time.Duration) (bool, error) {
	ev, err := windows.WaitForSingleObject(d.handle, uint32(timeout/time.Millisecond))
	switch ev {
	case windows.WAIT_OBJECT_0:
		return true, nil
	case uint32(windows.WAIT_TIMEOUT):
		return false, nil
	default:
		return false, err
	}
}

// Read may block when the console was signalled by a non-key record such as
// a focus change; the next key press releases it.
func (d *windowsDevice) Read(p []byte) (int, error) {
	var n uint32
	if err := windows.ReadFile(d.handle, p, &n, nil); err != nil {
		return 0, err
	}
	return int(n), nil
}
