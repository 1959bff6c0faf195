package state

import (
	"errors"
	"reflect"
	"testing"

	"github.com/atomicstack/termmenu/internal/menu"
)

func newTestNavigation(t *testing.T, names ...string) *Navigation {
	t.Helper()
	table := menu.NewTable()
	for _, name := range names {
		p, err := menu.NewPage(name, "")
		if err != nil {
			t.Fatalf("NewPage(%q): %v", name, err)
		}
		if err := table.AddPage(p); err != nil {
			t.Fatalf("AddPage(%q): %v", name, err)
		}
	}
	return NewNavigation(table)
}

func TestSetStartRequiresKnownPage(t *testing.T) {
	nav := newTestNavigation(t, "home")
	err := nav.SetStart("missing")
	if !errors.Is(err, menu.ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if nav.Current() != "" {
		t.Fatalf("expected no current page, got %q", nav.Current())
	}
	if err := nav.SetStart("home"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nav.Current() != "home" {
		t.Fatalf("expected home, got %q", nav.Current())
	}
}

func TestSetStartClearsHistory(t *testing.T) {
	nav := newTestNavigation(t, "home", "settings")
	_ = nav.SetStart("home")
	_ = nav.Goto("settings")
	_ = nav.SetStart("settings")
	if nav.CanGoBack() {
		t.Fatalf("expected history cleared, got %v", nav.History())
	}
}

func TestGotoPushesHistory(t *testing.T) {
	nav := newTestNavigation(t, "home", "settings")
	_ = nav.SetStart("home")
	if err := nav.Goto("settings"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nav.Current() != "settings" {
		t.Fatalf("expected settings, got %q", nav.Current())
	}
	if !reflect.DeepEqual(nav.History(), []string{"home"}) {
		t.Fatalf("expected history [home], got %v", nav.History())
	}
}

func TestGotoUnknownLeavesStateUntouched(t *testing.T) {
	nav := newTestNavigation(t, "home")
	_ = nav.SetStart("home")
	err := nav.Goto("nowhere")
	var notFound *menu.PageNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "nowhere" {
		t.Fatalf("expected PageNotFoundError, got %v", err)
	}
	if nav.Current() != "home" || nav.Depth() != 0 {
		t.Fatalf("expected state unchanged, got current=%q depth=%d", nav.Current(), nav.Depth())
	}
}

func TestGotoBackRoundTrip(t *testing.T) {
	nav := newTestNavigation(t, "home", "a", "b")
	_ = nav.SetStart("home")
	_ = nav.Goto("a")
	for _, target := range []string{"home", "a", "b"} {
		before := nav.History()
		current := nav.Current()
		if err := nav.Goto(target); err != nil {
			t.Fatalf("Goto(%q): %v", target, err)
		}
		if !nav.GoBack() {
			t.Fatalf("expected GoBack to move after Goto(%q)", target)
		}
		if nav.Current() != current {
			t.Fatalf("expected current %q restored, got %q", current, nav.Current())
		}
		if !reflect.DeepEqual(nav.History(), before) {
			t.Fatalf("expected history %v restored, got %v", before, nav.History())
		}
	}
}

func TestGoBackOnEmptyHistory(t *testing.T) {
	nav := newTestNavigation(t, "home")
	_ = nav.SetStart("home")
	if nav.GoBack() {
		t.Fatalf("expected GoBack to report no history")
	}
	if nav.Current() != "home" {
		t.Fatalf("expected current unchanged, got %q", nav.Current())
	}
}

func TestResetReturnsToFirstPage(t *testing.T) {
	nav := newTestNavigation(t, "home", "a", "b")
	_ = nav.SetStart("home")
	_ = nav.Goto("a")
	_ = nav.Goto("b")
	nav.Reset()
	if nav.Current() != "home" || nav.CanGoBack() {
		t.Fatalf("expected reset to home with empty history, got %q %v", nav.Current(), nav.History())
	}
	nav.Reset()
	if nav.Current() != "home" {
		t.Fatalf("expected reset with no history to keep current, got %q", nav.Current())
	}
}

func TestCurrentPage(t *testing.T) {
	nav := newTestNavigation(t, "home")
	if _, ok := nav.CurrentPage(); ok {
		t.Fatalf("expected no page before start")
	}
	_ = nav.SetStart("home")
	page, ok := nav.CurrentPage()
	if !ok || page.Name != "home" {
		t.Fatalf("expected home page, got %+v", page)
	}
}
