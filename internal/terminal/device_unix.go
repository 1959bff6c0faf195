//go:build unix

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixDevice struct {
	fd int
}

// NewDevice wraps f, normally os.Stdin.
func NewDevice(f *os.File) Device {
	return &unixDevice{fd: int(f.Fd())}
}

func (d *unixDevice) MakeRaw() (func() error, error) {
	if !term.IsTerminal(d.fd) {
		return nil, ErrNotTerminal
	}
	old, err := term.MakeRaw(d.fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(d.fd, old) }, nil
}

func (d *unixDevice) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
}

func (d *unixDevice) Read(p []byte) (int, error) {
	n, err := unix.Read(d.fd, p)
	if err == unix.EINTR || err == unix.EAGAIN {
		return 0, nil
	}
	if n < 0 {
		n = 0
	}
	return n, err
}
