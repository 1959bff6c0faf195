package keys

import "time"

// Event is a decoded logical keystroke.
type Event int

const (
	Unknown Event = iota
	Up
	Down
	Enter
	Escape
	Interrupt
)

// DefaultEscapeTimeout bounds how long the decoder waits for the rest of a
// multi-byte sequence after an ambiguous lead byte.
const DefaultEscapeTimeout = 30 * time.Millisecond

const (
	byteInterrupt = 0x03
	byteNewline   = '\n'
	byteReturn    = '\r'
	byteEscape    = 0x1b
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Enter:
		return "enter"
	case Escape:
		return "escape"
	case Interrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}
