package menu

// MoveUp moves the selection up one entry, wrapping to the last entry.
func (p *Page) MoveUp() bool {
	return p.moveSelection(-1)
}

// MoveDown moves the selection down one entry, wrapping to the first entry.
func (p *Page) MoveDown() bool {
	return p.moveSelection(1)
}

// SelectIndex places the selection on idx, clamped to the entry range.
func (p *Page) SelectIndex(idx int) bool {
	n := p.Len()
	if n == 0 {
		p.Selected = 0
		return false
	}
	old := p.Selected
	p.Selected = idx
	p.clampSelection()
	return old != p.Selected
}

func (p *Page) moveSelection(delta int) bool {
	n := p.Len()
	if n == 0 {
		p.Selected = 0
		return false
	}
	p.clampSelection()
	old := p.Selected
	p.Selected = ((p.Selected+delta)%n + n) % n
	return old != p.Selected
}

func (p *Page) clampSelection() {
	n := len(p.Entries)
	if n == 0 || p.Selected < 0 {
		p.Selected = 0
		return
	}
	if p.Selected >= n {
		p.Selected = n - 1
	}
}
