package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Default minimum terminal dimensions.
const (
	DefaultMinWidth  = 40
	DefaultMinHeight = 10
)

// Palette holds the color tokens a theme is built from.
type Palette struct {
	Border             lipgloss.Color
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color
	Muted              lipgloss.Color
	Error              lipgloss.Color
}

// DefaultPalette is bright cyan borders and selection with black selected text.
var DefaultPalette = Palette{
	Border:             lipgloss.Color("14"),
	SelectedBackground: lipgloss.Color("14"),
	SelectedForeground: lipgloss.Color("0"),
	Muted:              lipgloss.Color("8"),
	Error:              lipgloss.Color("9"),
}

// Styles describes the Lip Gloss styles used to draw a frame.
type Styles struct {
	Border           *lipgloss.Style
	Title            *lipgloss.Style
	Item             *lipgloss.Style
	Selected         *lipgloss.Style
	Disabled         *lipgloss.Style
	SelectedDisabled *lipgloss.Style
	Hint             *lipgloss.Style
	Status           *lipgloss.Style
}

// Theme is immutable once built and shared read-only by renderers.
type Theme struct {
	MinWidth  int
	MinHeight int
	Palette   Palette
	Styles    *Styles
}

// renderer pins the ANSI profile so frames are identical regardless of the
// environment the process runs in.
var renderer = newRenderer()

func newRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// New builds a theme. Non-positive minimums select the defaults and empty
// colors fall back to DefaultPalette.
func New(p Palette, minWidth, minHeight int) Theme {
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}
	if minHeight <= 0 {
		minHeight = DefaultMinHeight
	}
	p = p.withDefaults()
	return Theme{
		MinWidth:  minWidth,
		MinHeight: minHeight,
		Palette:   p,
		Styles:    buildStyles(p),
	}
}

// Default exposes the standard theme.
func Default() Theme {
	return New(DefaultPalette, DefaultMinWidth, DefaultMinHeight)
}

func (p Palette) withDefaults() Palette {
	if p.Border == "" {
		p.Border = DefaultPalette.Border
	}
	if p.SelectedBackground == "" {
		p.SelectedBackground = DefaultPalette.SelectedBackground
	}
	if p.SelectedForeground == "" {
		p.SelectedForeground = DefaultPalette.SelectedForeground
	}
	if p.Muted == "" {
		p.Muted = DefaultPalette.Muted
	}
	if p.Error == "" {
		p.Error = DefaultPalette.Error
	}
	return p
}

func buildStyles(p Palette) *Styles {
	return &Styles{
		Border: ptr(
			renderer.NewStyle().Foreground(p.Border),
		),
		Title: ptr(
			renderer.NewStyle().Bold(true),
		),
		Item: ptr(
			renderer.NewStyle(),
		),
		Selected: ptr(
			renderer.NewStyle().Foreground(p.SelectedForeground).Background(p.SelectedBackground),
		),
		Disabled: ptr(
			renderer.NewStyle().Foreground(p.Muted).Faint(true),
		),
		SelectedDisabled: ptr(
			renderer.NewStyle().Foreground(p.SelectedForeground).Background(p.SelectedBackground).Faint(true),
		),
		Hint: ptr(
			renderer.NewStyle().Foreground(p.Muted),
		),
		Status: ptr(
			renderer.NewStyle().Foreground(p.Error).Bold(true),
		),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
