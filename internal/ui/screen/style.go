package screen

import (
	"strconv"

	"github.com/atomicstack/termmenu/internal/render"
	"github.com/atomicstack/termmenu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

type roleStyles map[render.Role]tcell.Style

func newStyles(p theme.Palette) roleStyles {
	selected := tcell.StyleDefault.
		Foreground(color(p.SelectedForeground)).
		Background(color(p.SelectedBackground))
	return roleStyles{
		render.RoleItem:             tcell.StyleDefault,
		render.RoleBorder:           tcell.StyleDefault.Foreground(color(p.Border)),
		render.RoleTitle:            tcell.StyleDefault.Bold(true),
		render.RoleSelected:         selected,
		render.RoleDisabled:         tcell.StyleDefault.Foreground(color(p.Muted)).Dim(true),
		render.RoleSelectedDisabled: selected.Dim(true),
		render.RoleHint:             tcell.StyleDefault.Foreground(color(p.Muted)),
		render.RoleStatus:           tcell.StyleDefault.Foreground(color(p.Error)).Bold(true),
	}
}

func (r roleStyles) of(role render.Role) tcell.Style {
	if st, ok := r[role]; ok {
		return st
	}
	return tcell.StyleDefault
}

// color accepts ANSI palette indexes as well as names and #rrggbb values.
func color(c lipgloss.Color) tcell.Color {
	if n, err := strconv.Atoi(string(c)); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(string(c))
}
