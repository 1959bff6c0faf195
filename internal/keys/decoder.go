package keys

import "time"

// Decoder turns the byte stream held by a Buffer into logical key events.
type Decoder struct {
	buf     *Buffer
	format  Format
	timeout time.Duration
	now     func() time.Time
}

// NewDecoder builds a decoder over buf. A nil format selects VT and a
// non-positive timeout selects DefaultEscapeTimeout.
func NewDecoder(buf *Buffer, format Format, timeout time.Duration) *Decoder {
	if format == nil {
		format = VT{}
	}
	if timeout <= 0 {
		timeout = DefaultEscapeTimeout
	}
	return &Decoder{buf: buf, format: format, timeout: timeout, now: time.Now}
}

// Format returns the active input format.
func (d *Decoder) Format() Format { return d.format }

// Timeout returns the sequence completion window.
func (d *Decoder) Timeout() time.Duration { return d.timeout }

// Next decodes one event. It reports false when no byte is buffered. It
// waits at most Timeout for the remainder of an ambiguous sequence.
func (d *Decoder) Next() (Event, bool) {
	c, ok := d.buf.Pop()
	if !ok {
		return Unknown, false
	}
	switch {
	case c == byteReturn || c == byteNewline:
		return Enter, true
	case c == byteInterrupt:
		return Interrupt, true
	case d.format.Leads(c):
		return d.format.Resolve(c, d.buf, d.now().Add(d.timeout)), true
	case c == byteEscape:
		return Escape, true
	default:
		return Unknown, true
	}
}
