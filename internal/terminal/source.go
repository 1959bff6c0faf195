package terminal

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atomicstack/termmenu/internal/logging"
	"github.com/atomicstack/termmenu/internal/logging/events"
)

const (
	defaultPollInterval = 10 * time.Millisecond
	defaultRetryDelay   = 20 * time.Millisecond
	defaultStopWait     = 250 * time.Millisecond
	defaultChunkBacklog = 64
	readBufferSize      = 256
)

// ErrSourceStarted is returned by Start on a source that was already started.
var ErrSourceStarted = errors.New("input source already started")

// Source captures raw terminal bytes on a background goroutine and hands
// them to a single consumer through a bounded channel.
type Source struct {
	dev          Device
	pollInterval time.Duration
	retryDelay   time.Duration
	stopWait     time.Duration

	chunks  chan []byte
	stopCh  chan struct{}
	doneCh  chan struct{}
	running atomic.Bool

	mu       sync.Mutex
	started  bool
	stopped  bool
	restore  func() error
	captured atomic.Int64
}

// NewSource creates a source over dev. It does nothing until Start.
func NewSource(dev Device) *Source {
	return &Source{
		dev:          dev,
		pollInterval: defaultPollInterval,
		retryDelay:   defaultRetryDelay,
		stopWait:     defaultStopWait,
		chunks:       make(chan []byte, defaultChunkBacklog),
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Chunks returns the consumer side of the byte stream. It is closed once the
// capture goroutine exits.
func (s *Source) Chunks() <-chan []byte {
	return s.chunks
}

// Start enables raw mode and begins capturing.
func (s *Source) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrSourceStarted
	}
	restore, err := s.dev.MakeRaw()
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	s.started = true
	s.restore = restore
	s.running.Store(true)
	events.Input.Start(fmt.Sprintf("%T", s.dev))
	go s.capture()
	return nil
}

// Stop halts capturing and restores the original input mode. It is safe to
// call more than once and before Start.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if !s.started {
		return
	}
	s.running.Store(false)
	close(s.stopCh)

	timer := time.NewTimer(s.stopWait)
	select {
	case <-s.doneCh:
	case <-timer.C:
		// A platform read is still blocked; it exits on the next byte.
	}
	timer.Stop()

	if s.restore != nil {
		if err := s.restore(); err != nil {
			logging.Errorf("restore terminal mode: %v", err)
		}
	}
	events.Input.Stop(int(s.captured.Load()))
}

func (s *Source) capture() {
	defer close(s.doneCh)
	defer close(s.chunks)
	defer func() {
		if r := recover(); r != nil {
			events.Input.Recovered(r)
			logging.Errorf("input capture panic: %v", r)
		}
	}()

	buf := make([]byte, readBufferSize)
	for s.running.Load() {
		ready, err := s.dev.Poll(s.pollInterval)
		if err != nil {
			events.Input.ReadError(err)
			s.pause(s.retryDelay)
			continue
		}
		if !ready {
			continue
		}
		n, err := s.dev.Read(buf)
		if err != nil {
			events.Input.ReadError(err)
			s.pause(s.retryDelay)
			continue
		}
		if n == 0 {
			s.pause(s.retryDelay)
			continue
		}
		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		select {
		case s.chunks <- chunk:
			s.captured.Add(int64(n))
		case <-s.stopCh:
			return
		}
	}
}

func (s *Source) pause(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.stopCh:
	}
}
