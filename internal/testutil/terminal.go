package testutil

import (
	"bytes"
	"errors"
	"sync"
)

// FakeTerminal stands in for a real terminal in session tests. Input is
// pushed with Type; everything written is captured.
type FakeTerminal struct {
	Width  int
	Height int

	mu       sync.Mutex
	chunks   chan []byte
	out      bytes.Buffer
	started  int
	stopped  int
	startErr error
	writes   int
}

// NewFakeTerminal creates a terminal of the given size.
func NewFakeTerminal(width, height int) *FakeTerminal {
	return &FakeTerminal{Width: width, Height: height, chunks: make(chan []byte, 64)}
}

// Type queues input chunks as if they were read from the keyboard.
func (f *FakeTerminal) Type(chunks ...string) {
	for _, c := range chunks {
		f.chunks <- []byte(c)
	}
}

// FailStart makes Start return err.
func (f *FakeTerminal) FailStart(err error) {
	f.mu.Lock()
	f.startErr = err
	f.mu.Unlock()
}

func (f *FakeTerminal) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	if f.started > 0 {
		return errors.New("fake terminal already started")
	}
	f.started++
	return nil
}

func (f *FakeTerminal) Stop() {
	f.mu.Lock()
	f.stopped++
	f.mu.Unlock()
}

func (f *FakeTerminal) Chunks() <-chan []byte {
	return f.chunks
}

func (f *FakeTerminal) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return f.out.Write(p)
}

func (f *FakeTerminal) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Width, f.Height
}

// Resize changes the reported size.
func (f *FakeTerminal) Resize(width, height int) {
	f.mu.Lock()
	f.Width, f.Height = width, height
	f.mu.Unlock()
}

// Output returns everything written so far.
func (f *FakeTerminal) Output() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out.String()
}

// Writes counts Write calls.
func (f *FakeTerminal) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// Started and Stopped count lifecycle calls.
func (f *FakeTerminal) Started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

func (f *FakeTerminal) Stopped() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}
