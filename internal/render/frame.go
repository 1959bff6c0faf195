package render

import (
	"strings"

	"github.com/atomicstack/termmenu/internal/terminal"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/mattn/go-runewidth"
)

// Role tells a driver how a segment should be styled.
type Role int

const (
	RoleItem Role = iota
	RoleBorder
	RoleTitle
	RoleSelected
	RoleDisabled
	RoleSelectedDisabled
	RoleHint
	RoleStatus
)

// Segment is a run of text sharing one role.
type Segment struct {
	Text string
	Role Role
}

// Line is one output row anchored at a 1-based terminal cell.
type Line struct {
	Row      int
	Col      int
	Segments []Segment
}

// Plain returns the line text without styling.
func (l Line) Plain() string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Width returns the display width of the line in cells.
func (l Line) Width() int {
	return runewidth.StringWidth(l.Plain())
}

// Frame is one fully composed, positioned page.
type Frame struct {
	// Width and Height are the terminal dimensions the frame was laid out for.
	Width  int
	Height int
	Lines  []Line

	styles *theme.Styles
}

// Styled renders l with the frame's theme.
func (f Frame) Styled(l Line) string {
	var b strings.Builder
	for _, seg := range l.Segments {
		b.WriteString(f.styleSegment(seg))
	}
	return b.String()
}

// Bytes returns the terminal output for the frame: cursor hidden, scrollback
// and display cleared, then each line written at its position.
func (f Frame) Bytes() []byte {
	var b strings.Builder
	b.WriteString(terminal.ClearAll)
	for _, l := range f.Lines {
		b.WriteString(terminal.MoveTo(l.Row, l.Col))
		b.WriteString(f.Styled(l))
	}
	return []byte(b.String())
}

// String is Bytes as a string.
func (f Frame) String() string {
	return string(f.Bytes())
}

// Block lays the frame out as newline separated rows padded with spaces,
// for drivers that own cursor placement themselves.
func (f Frame) Block() string {
	if len(f.Lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", f.Lines[0].Row-1))
	for i, l := range f.Lines {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", l.Row-f.Lines[i-1].Row))
		}
		b.WriteString(strings.Repeat(" ", l.Col-1))
		b.WriteString(f.Styled(l))
	}
	return b.String()
}

// PlainLines returns the unstyled text of every line.
func (f Frame) PlainLines() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.Plain()
	}
	return out
}

func (f Frame) styleSegment(seg Segment) string {
	if f.styles == nil || seg.Role == RoleItem {
		return seg.Text
	}
	var style = f.styles.Item
	switch seg.Role {
	case RoleBorder:
		style = f.styles.Border
	case RoleTitle:
		style = f.styles.Title
	case RoleSelected:
		style = f.styles.Selected
	case RoleDisabled:
		style = f.styles.Disabled
	case RoleSelectedDisabled:
		style = f.styles.SelectedDisabled
	case RoleHint:
		style = f.styles.Hint
	case RoleStatus:
		style = f.styles.Status
	}
	if style == nil {
		return seg.Text
	}
	return style.Render(seg.Text)
}
