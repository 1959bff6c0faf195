//go:build !unix && !windows

package terminal

import (
	"errors"
	"os"
	"time"
)

var errUnsupported = errors.New("raw terminal input is not supported on this platform")

type unsupportedDevice struct{}

// NewDevice returns a device that refuses to enter raw mode.
func NewDevice(*os.File) Device {
	return unsupportedDevice{}
}

func (unsupportedDevice) MakeRaw() (func() error, error) { return nil, errUnsupported }

func (unsupportedDevice) Poll(time.Duration) (bool, error) { return false, errUnsupported }

func (unsupportedDevice) Read([]byte) (int, error) { return 0, errUnsupported }
