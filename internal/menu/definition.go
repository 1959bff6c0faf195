package menu

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is a menu loaded from a YAML or JSON document.
type Definition struct {
	Table     *Table
	StartPage string
	Theme     *ThemeOverrides
}

// ThemeOverrides replaces parts of the default theme. Colors use lipgloss
// notation: ANSI indexes ("14") or hex ("#00ffff").
type ThemeOverrides struct {
	Border             string `yaml:"border"`
	SelectedBackground string `yaml:"selected_background"`
	SelectedForeground string `yaml:"selected_foreground"`
	Muted              string `yaml:"muted"`
	MinWidth           int    `yaml:"min_width"`
	MinHeight          int    `yaml:"min_height"`
}

type document struct {
	StartPage string          `yaml:"start_page"`
	Pages     yaml.Node       `yaml:"pages"`
	Theme     *ThemeOverrides `yaml:"theme"`
}

type pageDoc struct {
	Title   string     `yaml:"title"`
	Entries []entryDoc `yaml:"entries"`
}

type entryDoc struct {
	Label    string            `yaml:"label"`
	Action   string            `yaml:"action"`
	NextPage string            `yaml:"next_page"`
	Run      []string          `yaml:"run"`
	Copy     string            `yaml:"copy"`
	Enabled  *bool             `yaml:"enabled"`
	Metadata map[string]string `yaml:"metadata"`
}

// LoadFile reads and parses the definition at path.
func LoadFile(path string, registry *Registry) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Err: err}
	}
	def, err := Load(data, registry)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Source == "" {
			cfgErr.Source = path
		}
		return nil, err
	}
	return def, nil
}

// Load parses a definition document. Action names are resolved against
// registry; an unknown name is a configuration error.
func Load(data []byte, registry *Registry) (*Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ConfigError{Err: errors.New("document is empty")}
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Err: err}
	}
	if doc.Pages.Kind != yaml.MappingNode || len(doc.Pages.Content) == 0 {
		return nil, &ConfigError{Err: errors.New("a non-empty 'pages' mapping is required")}
	}

	table := NewTable()
	for i := 0; i+1 < len(doc.Pages.Content); i += 2 {
		keyNode, valueNode := doc.Pages.Content[i], doc.Pages.Content[i+1]
		page, err := buildPage(keyNode.Value, valueNode, registry)
		if err != nil {
			return nil, &ConfigError{Err: err}
		}
		if err := table.AddPage(page); err != nil {
			return nil, &ConfigError{Err: err}
		}
	}

	start := strings.TrimSpace(doc.StartPage)
	if start == "" {
		return nil, &ConfigError{Err: errors.New("'start_page' is required")}
	}
	if _, ok := table.Page(start); !ok {
		return nil, &ConfigError{Err: NewPageNotFoundError(start, table.Names())}
	}
	return &Definition{Table: table, StartPage: start, Theme: doc.Theme}, nil
}

func buildPage(name string, node *yaml.Node, registry *Registry) (*Page, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("page %q must be a mapping", name)
	}
	var pd pageDoc
	if err := node.Decode(&pd); err != nil {
		return nil, fmt.Errorf("page %q: %w", name, err)
	}
	page, err := NewPage(name, pd.Title)
	if err != nil {
		return nil, err
	}
	for idx, ed := range pd.Entries {
		if ed.kinds() > 1 {
			return nil, fmt.Errorf("page %q entry %d: 'action', 'run' and 'copy' are mutually exclusive", name, idx)
		}
		var action Action
		switch {
		case ed.Action != "":
			found, ok := registry.Find(ed.Action)
			if !ok {
				return nil, fmt.Errorf("page %q entry %d: action %q is not registered", name, idx, ed.Action)
			}
			action = found
		case len(ed.Run) > 0:
			run, err := CommandAction(ed.Run, 0)
			if err != nil {
				return nil, fmt.Errorf("page %q entry %d: %w", name, idx, err)
			}
			action = run
		case ed.Copy != "":
			copyText, err := CopyAction(ed.Copy)
			if err != nil {
				return nil, fmt.Errorf("page %q entry %d: %w", name, idx, err)
			}
			action = copyText
		}
		entry, err := NewEntry(ed.Label, action, ed.NextPage)
		if err != nil {
			return nil, fmt.Errorf("page %q entry %d: %w", name, idx, err)
		}
		if ed.Enabled != nil {
			entry.Enabled = *ed.Enabled
		}
		entry.Metadata = ed.Metadata
		if err := page.AddEntry(entry); err != nil {
			return nil, err
		}
	}
	return page, nil
}

// kinds counts how many ways of acting the entry declares.
func (ed entryDoc) kinds() int {
	n := 0
	for _, set := range []bool{ed.Action != "", len(ed.Run) > 0, ed.Copy != ""} {
		if set {
			n++
		}
	}
	return n
}
