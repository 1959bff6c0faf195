package menu

// Table holds every page of a menu keyed by name. Pages are never removed.
type Table struct {
	pages map[string]*Page
	order []string
}

// NewTable creates an empty page table.
func NewTable() *Table {
	return &Table{pages: make(map[string]*Page)}
}

// AddPage registers p, rejecting duplicate names.
func (t *Table) AddPage(p *Page) error {
	if p == nil {
		return nil
	}
	if _, exists := t.pages[p.Name]; exists {
		return &DuplicatePageError{Name: p.Name}
	}
	t.pages[p.Name] = p
	t.order = append(t.order, p.Name)
	return nil
}

// Page looks up a page by name.
func (t *Table) Page(name string) (*Page, bool) {
	p, ok := t.pages[name]
	return p, ok
}

// Names lists page names in registration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of registered pages.
func (t *Table) Len() int {
	return len(t.order)
}
