package keys

import (
	"fmt"
	"strings"
	"time"
)

// Format resolves the multi-byte key sequences of one terminal input family.
type Format interface {
	// Name identifies the format in configuration.
	Name() string
	// Leads reports whether b may start a multi-byte sequence.
	Leads(b byte) bool
	// Resolve reads the remainder of a sequence started by lead, waiting no
	// later than deadline. Bytes it reads but does not consume must be
	// pushed back onto buf.
	Resolve(lead byte, buf *Buffer, deadline time.Time) Event
}

// Format names accepted by FormatByName.
const (
	FormatVT = "vt"
	FormatPC = "pc"
)

// FormatByName returns the format registered under name.
func FormatByName(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatVT:
		return VT{}, nil
	case FormatPC:
		return PC{}, nil
	default:
		return nil, fmt.Errorf("unknown key format %q (want %s or %s)", name, FormatVT, FormatPC)
	}
}
