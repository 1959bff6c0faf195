package keys

import "time"

// maxCSILength caps the parameter bytes accepted inside one CSI sequence.
const maxCSILength = 16

// VT decodes ANSI terminal input: ESC [ <params> <final> and ESC O <final>.
type VT struct{}

func (VT) Name() string { return FormatVT }

func (VT) Leads(b byte) bool { return b == byteEscape }

func (VT) Resolve(_ byte, buf *Buffer, deadline time.Time) Event {
	prefix, ok := buf.Next(deadline)
	if !ok {
		return Escape
	}
	switch prefix {
	case '[':
		return resolveCSI(buf, deadline)
	case 'O':
		final, ok := buf.Next(deadline)
		if !ok {
			buf.Unread(prefix)
			return Escape
		}
		if !isFinal(final) {
			buf.Unread(final)
			return Unknown
		}
		return vtDirection(final)
	default:
		buf.Unread(prefix)
		return Escape
	}
}

// resolveCSI consumes the parameter and final bytes following ESC [.
// A sequence cut short by the deadline degrades to Escape with every read
// byte pushed back; a malformed sequence is consumed up to the offending byte
// and reported as Unknown.
func resolveCSI(buf *Buffer, deadline time.Time) Event {
	seq := []byte{'['}
	for len(seq) <= maxCSILength {
		c, ok := buf.Next(deadline)
		if !ok {
			buf.Unread(seq...)
			return Escape
		}
		switch {
		case isFinal(c):
			if len(seq) > 1 && !modifierOnly(seq[1:]) {
				return Unknown
			}
			return vtDirection(c)
		case c >= 0x20 && c <= 0x3f:
			seq = append(seq, c)
		default:
			buf.Unread(c)
			return Unknown
		}
	}
	return Unknown
}

func isFinal(c byte) bool {
	return c >= 0x40 && c <= 0x7e
}

// modifierOnly reports whether params is the "1;<mod>" form terminals send
// for modified arrows, which still denote plain directions here.
func modifierOnly(params []byte) bool {
	if len(params) < 3 || params[0] != '1' || params[1] != ';' {
		return false
	}
	for _, c := range params[2:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func vtDirection(final byte) Event {
	switch final {
	case 'A':
		return Up
	case 'B':
		return Down
	default:
		// C and D are right and left; the menu only moves vertically.
		return Unknown
	}
}
