package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Control sequences written to the terminal.
const (
	HideCursor      = "\x1b[?25l"
	ShowCursor      = "\x1b[?25h"
	ClearScrollback = "\x1b[3J"
	ClearDisplay    = "\x1b[2J"
	CursorHome      = "\x1b[H"
	ResetStyle      = "\x1b[0m"

	// ClearAll hides the cursor before erasing scrollback and display.
	ClearAll = HideCursor + ClearScrollback + ClearDisplay + CursorHome
)

// Fallback dimensions when the output is not a terminal.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// MoveTo returns the cursor positioning sequence for a 1-based cell.
func MoveTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row, col)
}

// Size reports the dimensions of f, falling back to 80x24.
func Size(f *os.File) (int, int) {
	if f == nil {
		return FallbackWidth, FallbackHeight
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight
	}
	return w, h
}

// Restore leaves the screen usable after a session: styles reset, screen
// cleared and cursor visible.
func Restore(w io.Writer) error {
	_, err := io.WriteString(w, ResetStyle+ClearDisplay+CursorHome+ShowCursor)
	return err
}
