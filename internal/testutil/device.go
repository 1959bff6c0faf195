package testutil

import (
	"errors"
	"sync"
	"time"
)

// ScriptedDevice is an in-memory terminal input device. Reads are served
// from queued chunks; queued errors are returned once each from Read.
type ScriptedDevice struct {
	mu       sync.Mutex
	queue    []scriptedRead
	raw      bool
	rawCalls int
	restores int
	rawErr   error
	reads    int
}

type scriptedRead struct {
	data []byte
	err  error
}

// NewScriptedDevice creates an empty device.
func NewScriptedDevice() *ScriptedDevice {
	return &ScriptedDevice{}
}

// Feed queues chunks to be returned by successive reads.
func (d *ScriptedDevice) Feed(chunks ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, c := range chunks {
		d.queue = append(d.queue, scriptedRead{data: []byte(c)})
	}
}

// FailNextRead queues a read error.
func (d *ScriptedDevice) FailNextRead(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, scriptedRead{err: err})
}

// FailRaw makes MakeRaw return err.
func (d *ScriptedDevice) FailRaw(err error) {
	d.mu.Lock()
	d.rawErr = err
	d.mu.Unlock()
}

func (d *ScriptedDevice) MakeRaw() (func() error, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rawCalls++
	if d.rawErr != nil {
		return nil, d.rawErr
	}
	d.raw = true
	return func() error {
		d.mu.Lock()
		defer d.mu.Unlock()
		if !d.raw {
			return errors.New("restore without raw mode")
		}
		d.raw = false
		d.restores++
		return nil
	}, nil
}

func (d *ScriptedDevice) Poll(timeout time.Duration) (bool, error) {
	d.mu.Lock()
	pending := len(d.queue) > 0
	d.mu.Unlock()
	if pending {
		return true, nil
	}
	time.Sleep(timeout)
	return false, nil
}

func (d *ScriptedDevice) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reads++
	if len(d.queue) == 0 {
		return 0, nil
	}
	next := d.queue[0]
	d.queue = d.queue[1:]
	if next.err != nil {
		return 0, next.err
	}
	n := copy(p, next.data)
	if n < len(next.data) {
		d.queue = append([]scriptedRead{{data: next.data[n:]}}, d.queue...)
	}
	return n, nil
}

// Raw reports whether the device is currently in raw mode.
func (d *ScriptedDevice) Raw() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// RawCalls reports how often MakeRaw was called.
func (d *ScriptedDevice) RawCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rawCalls
}

// Restores reports how often raw mode was restored.
func (d *ScriptedDevice) Restores() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.restores
}

// Pending reports how many scripted reads remain.
func (d *ScriptedDevice) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}
