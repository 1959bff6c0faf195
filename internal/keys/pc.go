package keys

import "time"

// PC decodes console extended-key input, where a fixed 0x00 or 0xE0 prefix
// is followed by a scan code letter.
type PC struct{}

func (PC) Name() string { return FormatPC }

func (PC) Leads(b byte) bool { return b == 0x00 || b == 0xe0 }

func (PC) Resolve(_ byte, buf *Buffer, deadline time.Time) Event {
	code, ok := buf.Next(deadline)
	if !ok {
		return Unknown
	}
	switch code {
	case 'H':
		return Up
	case 'P':
		return Down
	default:
		// M and K are right and left.
		return Unknown
	}
}
