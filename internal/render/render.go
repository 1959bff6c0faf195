package render

import (
	"strings"

	"github.com/atomicstack/termmenu/internal/menu"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	// MaxContentWidth caps the inner width of the frame.
	MaxContentWidth = 70
	// framePadding is the number of fixed rows around the entry list.
	framePadding = 8
	// Hint is shown centered beneath the frame.
	Hint = "↑↓ Navigate  Enter Select  Esc Back"
)

const (
	boxTopLeft     = "╔"
	boxTopRight    = "╗"
	boxBottomLeft  = "╚"
	boxBottomRight = "╝"
	boxHorizontal  = "═"
	boxVertical    = "║"
	boxTeeRight    = "╠"
	boxTeeLeft     = "╣"
)

// Render lays out page centered in a width x height terminal. The result
// depends only on its arguments. A non-empty status is shown below the hint.
func Render(page *menu.Page, th theme.Theme, width, height int, status string) Frame {
	if width < th.MinWidth {
		width = th.MinWidth
	}
	if height < th.MinHeight {
		height = th.MinHeight
	}
	contentW := min(width-4, MaxContentWidth)
	if contentW < 1 {
		contentW = 1
	}
	contentH := min(height-6, page.Len()+framePadding)

	rows := buildRows(page, contentW, contentH, status)

	frameH := len(rows)
	frameW := contentW + 4
	startRow := max(1, (height-frameH)/2+1)
	startCol := max(1, (width-frameW)/2+1)

	lines := make([]Line, len(rows))
	for i, segs := range rows {
		lines[i] = Line{Row: startRow + i, Col: startCol, Segments: segs}
	}
	return Frame{Width: width, Height: height, Lines: lines, styles: th.Styles}
}

func buildRows(page *menu.Page, contentW, contentH int, status string) [][]Segment {
	hline := strings.Repeat(boxHorizontal, contentW+2)
	border := func(text string) Segment { return Segment{Text: text, Role: RoleBorder} }

	title := ""
	if page != nil {
		title = page.Title
	}

	rows := [][]Segment{
		{border(boxTopLeft + hline + boxTopRight)},
		{
			border(boxVertical),
			{Text: " "},
			{Text: center(title, contentW), Role: RoleTitle},
			{Text: " "},
			border(boxVertical),
		},
		{border(boxTeeRight + hline + boxTeeLeft)},
	}

	for idx := 0; idx < page.Len(); idx++ {
		entry := page.Entries[idx]
		label := fit(entry.Label, contentW)
		selected := idx == page.Selected
		switch {
		case selected:
			role := RoleSelected
			if !entry.Enabled {
				role = RoleSelectedDisabled
			}
			rows = append(rows, []Segment{
				border(boxVertical),
				{Text: " " + label + " ", Role: role},
				border(boxVertical),
			})
		default:
			role := RoleItem
			if !entry.Enabled {
				role = RoleDisabled
			}
			rows = append(rows, []Segment{
				border(boxVertical),
				{Text: " "},
				{Text: label, Role: role},
				{Text: " "},
				border(boxVertical),
			})
		}
	}

	padding := max(0, contentH-page.Len()-5)
	for i := 0; i < padding; i++ {
		rows = append(rows, []Segment{
			border(boxVertical),
			{Text: strings.Repeat(" ", contentW+2)},
			border(boxVertical),
		})
	}

	rows = append(rows,
		[]Segment{border(boxBottomLeft + hline + boxBottomRight)},
		[]Segment{{Text: center(Hint, contentW+4), Role: RoleHint}},
	)
	if status = strings.TrimSpace(firstLine(status)); status != "" {
		rows = append(rows, []Segment{{Text: center(status, contentW+4), Role: RoleStatus}})
	}
	return rows
}

// fit truncates s to width cells and pads it on the right.
func fit(s string, width int) string {
	return runewidth.FillRight(truncate.String(s, uint(width)), width)
}

// center truncates s to width cells and centers it, extra space going right.
func center(s string, width int) string {
	s = truncate.String(s, uint(width))
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
