package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	// ErrPageNotFound matches any PageNotFoundError via errors.Is.
	ErrPageNotFound = errors.New("page not found")
	// ErrQuit is returned by an action to end the session.
	ErrQuit = errors.New("quit")
)

// PageNotFoundError reports navigation to an unregistered page.
type PageNotFoundError struct {
	Name        string
	Suggestions []string
}

// NewPageNotFoundError builds the error with close matches drawn from known.
func NewPageNotFoundError(name string, known []string) *PageNotFoundError {
	return &PageNotFoundError{Name: name, Suggestions: suggest(name, known)}
}

func (e *PageNotFoundError) Error() string {
	msg := fmt.Sprintf("page %q not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(e.Suggestions), ", "))
	}
	return msg
}

func (e *PageNotFoundError) Is(target error) bool {
	return target == ErrPageNotFound
}

// DuplicatePageError reports a second page registered under an existing name.
type DuplicatePageError struct {
	Name string
}

func (e *DuplicatePageError) Error() string {
	return fmt.Sprintf("page %q is already registered", e.Name)
}

// ActionError wraps a failure raised by an entry's action.
type ActionError struct {
	Label string
	Cause error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %q failed: %v", e.Label, e.Cause)
}

func (e *ActionError) Unwrap() error {
	return e.Cause
}

// ConfigError reports a malformed menu definition.
type ConfigError struct {
	Source string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("menu configuration: %v", e.Err)
	}
	return fmt.Sprintf("menu configuration %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

const maxSuggestions = 3

func suggest(name string, known []string) []string {
	if name == "" || len(known) == 0 {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(name, known)
	if len(ranks) == 0 {
		// Typos rarely form a subsequence of the intended name.
		limit := len(name)/3 + 1
		for _, candidate := range known {
			d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
			if d <= limit {
				ranks = append(ranks, fuzzy.Rank{Source: name, Target: candidate, Distance: d})
			}
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	out := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf("%q", v)
	}
	return out
}
