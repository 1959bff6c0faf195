package menu

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in action names available to every menu definition.
const (
	ActionQuit = "quit"
	ActionNoop = "noop"
)

// Registry maps action names used in menu definitions to callables supplied
// by the host application.
type Registry struct {
	actions map[string]Action
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// BuildRegistry returns a registry preloaded with the built-in actions.
func BuildRegistry() *Registry {
	r := NewRegistry()
	r.actions[ActionQuit] = func() (string, error) { return "", ErrQuit }
	r.actions[ActionNoop] = func() (string, error) { return "", nil }
	return r
}

// Register binds name to action. Names are case sensitive and must be unique.
func (r *Registry) Register(name string, action Action) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("action name must not be blank")
	}
	if action == nil {
		return fmt.Errorf("action %q: nil callable", name)
	}
	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action %q is already registered", name)
	}
	r.actions[name] = action
	return nil
}

// Find locates an action by name.
func (r *Registry) Find(name string) (Action, bool) {
	if r == nil {
		return nil, false
	}
	action, ok := r.actions[name]
	return action, ok
}

// Names lists registered action names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
