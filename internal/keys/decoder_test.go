package keys

import (
	"testing"
	"time"
)

func newTestDecoder(format Format, timeout time.Duration, chunks ...string) (*Decoder, chan []byte) {
	ch := make(chan []byte, len(chunks)+4)
	for _, chunk := range chunks {
		ch <- []byte(chunk)
	}
	return NewDecoder(NewBuffer(ch), format, timeout), ch
}

func drain(t *testing.T, d *Decoder) []Event {
	t.Helper()
	var out []Event
	for i := 0; i < 64; i++ {
		ev, ok := d.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
	t.Fatalf("decoder did not run dry after 64 events")
	return nil
}

func assertEvents(t *testing.T, got []Event, want ...Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d events %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s (all: %v)", i, want[i], got[i], got)
		}
	}
}

func TestDecoderEmptyBufferReportsNoEvent(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 0)
	if ev, ok := d.Next(); ok {
		t.Fatalf("expected no event, got %s", ev)
	}
}

func TestDecoderPlainBytesAreUnknownInOrder(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "ab", "c1 ")
	assertEvents(t, drain(t, d), Unknown, Unknown, Unknown, Unknown, Unknown)
}

func TestDecoderEnterInterrupt(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\r\n\x03")
	assertEvents(t, drain(t, d), Enter, Enter, Interrupt)
}

func TestDecoderBareEscapeTimesOut(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\x1b")
	start := time.Now()
	assertEvents(t, drain(t, d), Escape)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("escape resolution blocked for %s", elapsed)
	}
}

func TestDecoderArrowSequences(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Event
	}{
		{"csi up", "\x1b[A", Up},
		{"csi down", "\x1b[B", Down},
		{"csi right", "\x1b[C", Unknown},
		{"csi left", "\x1b[D", Unknown},
		{"ss3 up", "\x1bOA", Up},
		{"ss3 down", "\x1bOB", Down},
		{"modified up", "\x1b[1;5A", Up},
		{"insert key", "\x1b[2~", Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newTestDecoder(VT{}, 5*time.Millisecond, tc.input)
			assertEvents(t, drain(t, d), tc.want)
		})
	}
}

func TestDecoderEscapeFollowedByPlainByte(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\x1bx")
	assertEvents(t, drain(t, d), Escape, Unknown)
}

func TestDecoderDoubleEscape(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\x1b\x1b[A")
	assertEvents(t, drain(t, d), Escape, Up)
}

func TestDecoderIncompleteSequenceDegradesToEscape(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\x1b[")
	assertEvents(t, drain(t, d), Escape, Unknown)
}

func TestDecoderLateSuffixIsReinterpreted(t *testing.T) {
	d, ch := newTestDecoder(VT{}, 5*time.Millisecond, "\x1b[")
	ev, ok := d.Next()
	if !ok || ev != Escape {
		t.Fatalf("expected escape, got %s (ok=%v)", ev, ok)
	}
	ch <- []byte("A")
	assertEvents(t, drain(t, d), Unknown, Unknown)
}

func TestDecoderSplitSequenceWithinTimeout(t *testing.T) {
	d, ch := newTestDecoder(VT{}, 500*time.Millisecond, "\x1b")
	go func() {
		time.Sleep(5 * time.Millisecond)
		ch <- []byte("[")
		time.Sleep(5 * time.Millisecond)
		ch <- []byte("B")
	}()
	ev, ok := d.Next()
	if !ok || ev != Down {
		t.Fatalf("expected down, got %s (ok=%v)", ev, ok)
	}
}

func TestDecoderMalformedCSIDoesNotSwallowFollowingKeys(t *testing.T) {
	d, _ := newTestDecoder(VT{}, 5*time.Millisecond, "\x1b[1\r")
	assertEvents(t, drain(t, d), Unknown, Enter)
}

func TestDecoderPCFormat(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []Event
	}{
		{"up", "\xe0H", []Event{Up}},
		{"down", "\x00P", []Event{Down}},
		{"right", "\xe0M", []Event{Unknown}},
		{"left", "\x00K", []Event{Unknown}},
		{"bare escape", "\x1b", []Event{Escape}},
		{"prefix timeout", "\xe0", []Event{Unknown}},
		{"enter", "\r", []Event{Enter}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newTestDecoder(PC{}, 5*time.Millisecond, tc.input)
			assertEvents(t, drain(t, d), tc.want...)
		})
	}
}

func TestNewDecoderDefaults(t *testing.T) {
	d := NewDecoder(NewBuffer(nil), nil, 0)
	if d.Timeout() != DefaultEscapeTimeout {
		t.Fatalf("expected default timeout %s, got %s", DefaultEscapeTimeout, d.Timeout())
	}
	if d.Format().Name() != FormatVT {
		t.Fatalf("expected vt format, got %s", d.Format().Name())
	}
}

func TestFormatByName(t *testing.T) {
	for name, want := range map[string]string{"": FormatVT, "vt": FormatVT, "PC": FormatPC} {
		f, err := FormatByName(name)
		if err != nil {
			t.Fatalf("format %q: unexpected error %v", name, err)
		}
		if f.Name() != want {
			t.Fatalf("format %q: expected %s, got %s", name, want, f.Name())
		}
	}
	if _, err := FormatByName("amiga"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
