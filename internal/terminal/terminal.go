package terminal

import (
	"io"
	"os"
)

// Terminal couples a capture Source with the output stream and size probe
// of a real terminal.
type Terminal struct {
	*Source
	out    io.Writer
	sizeOf *os.File
}

// New builds a terminal reading from in and writing to out.
func New(in, out *os.File) *Terminal {
	return &Terminal{
		Source: NewSource(NewDevice(in)),
		out:    out,
		sizeOf: out,
	}
}

// Write sends p to the terminal output.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size reports the current output dimensions.
func (t *Terminal) Size() (int, int) {
	return Size(t.sizeOf)
}
