package menu

import (
	"fmt"
	"strings"
)

// Action runs when an entry is activated. A non-empty result names the page
// to show next and takes precedence over the entry's NextPage.
type Action func() (string, error)

// Entry represents a selectable menu entry.
type Entry struct {
	Label    string
	Action   Action
	NextPage string
	Enabled  bool
	Metadata map[string]string
}

// NewEntry builds an enabled entry, rejecting blank labels.
func NewEntry(label string, action Action, nextPage string) (Entry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Entry{}, fmt.Errorf("entry label must not be blank")
	}
	return Entry{
		Label:    label,
		Action:   action,
		NextPage: strings.TrimSpace(nextPage),
		Enabled:  true,
	}, nil
}

// Execute runs the entry's action and resolves the page to show next. A
// non-empty action result wins; an empty one falls back to NextPage, so a
// run or copy entry can still open a page afterwards.
func (e Entry) Execute() (string, error) {
	if e.Action == nil {
		return e.NextPage, nil
	}
	target, err := e.Action()
	if err != nil {
		return "", err
	}
	if target != "" {
		return target, nil
	}
	return e.NextPage, nil
}

// Page is a named, ordered collection of entries with one selection.
type Page struct {
	Name     string
	Title    string
	Entries  []Entry
	Selected int
}

// NewPage creates an empty page. The title defaults to the name.
func NewPage(name, title string) (*Page, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("page name must not be blank")
	}
	if strings.TrimSpace(title) == "" {
		title = name
	}
	return &Page{Name: name, Title: title}, nil
}

// AddEntry appends an entry after validating its label.
func (p *Page) AddEntry(e Entry) error {
	e.Label = strings.TrimSpace(e.Label)
	if e.Label == "" {
		return fmt.Errorf("page %q: entry label must not be blank", p.Name)
	}
	p.Entries = append(p.Entries, e)
	return nil
}

// Add is a convenience wrapper around NewEntry and AddEntry.
func (p *Page) Add(label string, action Action, nextPage string) error {
	e, err := NewEntry(label, action, nextPage)
	if err != nil {
		return fmt.Errorf("page %q: %w", p.Name, err)
	}
	return p.AddEntry(e)
}

// Len returns the number of entries.
func (p *Page) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// SelectedEntry returns the entry under the selection.
func (p *Page) SelectedEntry() (*Entry, bool) {
	if p.Len() == 0 {
		return nil, false
	}
	p.clampSelection()
	return &p.Entries[p.Selected], true
}

// SetEnabled toggles the entry at idx.
func (p *Page) SetEnabled(idx int, enabled bool) bool {
	if idx < 0 || idx >= p.Len() {
		return false
	}
	p.Entries[idx].Enabled = enabled
	return true
}
