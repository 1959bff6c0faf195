package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/termmenu/internal/logging/events"
)

// Kind represents the type of data emitted by the watcher.
type Kind int

const (
	KindResize Kind = iota
)

// DefaultInterval is the polling period used when none is given.
const DefaultInterval = 250 * time.Millisecond

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Event conveys an observed change.
type Event struct {
	Kind Kind
	Size Size
}

// SizeFunc reports the current terminal dimensions.
type SizeFunc func() (int, int)

// Watcher samples the terminal size on a fixed interval, and immediately on
// a window-change signal where the platform has one, publishing an event
// whenever the size differs from the last one seen.
type Watcher struct {
	size     SizeFunc
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching. The size at construction time is the
// baseline and is not reported.
func NewWatcher(size SizeFunc, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		size:     size,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of resize events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	signals, release := resizeSignals()
	defer release()

	throttle := newThrottle(25 * time.Millisecond)
	var last Size
	last.Width, last.Height = w.size()

	check := func() bool {
		if !throttle.wait(w.ctx) {
			return false
		}
		var current Size
		current.Width, current.Height = w.size()
		if current == last || current.Width <= 0 || current.Height <= 0 {
			return true
		}
		last = current
		events.Render.Resize(current.Width, current.Height)
		return w.publish(Event{Kind: KindResize, Size: current})
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-signals:
			if !check() {
				return
			}
		case <-ticker.C:
			if !check() {
				return
			}
		}
	}
}

// publish keeps only the newest event when the consumer lags behind.
func (w *Watcher) publish(evt Event) bool {
	for {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		default:
			select {
			case <-w.events:
			default:
			}
		}
	}
}
