package keys

import "time"

// Buffer is the consumer side of the raw byte stream. Chunks arrive on a
// channel from a single producer; bytes are handed out strictly in arrival
// order. Bytes that were read ahead while resolving a sequence can be pushed
// back to the head with Unread.
//
// A Buffer is not safe for concurrent use; it belongs to the decoding loop.
type Buffer struct {
	chunks  <-chan []byte
	pending []byte
}

// NewBuffer wraps the producer channel.
func NewBuffer(chunks <-chan []byte) *Buffer {
	return &Buffer{chunks: chunks}
}

// Pop returns the next byte without waiting.
func (b *Buffer) Pop() (byte, bool) {
	for len(b.pending) == 0 {
		select {
		case chunk, ok := <-b.chunks:
			if !ok {
				b.chunks = nil
				return 0, false
			}
			b.pending = append(b.pending, chunk...)
		default:
			return 0, false
		}
	}
	return b.take(), true
}

// Next returns the next byte, waiting until deadline for one to arrive.
func (b *Buffer) Next(deadline time.Time) (byte, bool) {
	if c, ok := b.Pop(); ok {
		return c, true
	}
	wait := time.Until(deadline)
	if wait <= 0 || b.chunks == nil {
		return 0, false
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	for len(b.pending) == 0 {
		select {
		case chunk, ok := <-b.chunks:
			if !ok {
				b.chunks = nil
				return 0, false
			}
			b.pending = append(b.pending, chunk...)
		case <-timer.C:
			return 0, false
		}
	}
	return b.take(), true
}

// Unread pushes bytes back to the head of the buffer, preserving their order.
func (b *Buffer) Unread(p ...byte) {
	if len(p) == 0 {
		return
	}
	merged := make([]byte, 0, len(p)+len(b.pending))
	merged = append(merged, p...)
	b.pending = append(merged, b.pending...)
}

// Buffered reports how many bytes are already held outside the channel.
func (b *Buffer) Buffered() int {
	return len(b.pending)
}

// Closed reports whether the producer has closed its channel and every byte
// has been consumed.
func (b *Buffer) Closed() bool {
	return b.chunks == nil && len(b.pending) == 0
}

func (b *Buffer) take() byte {
	c := b.pending[0]
	b.pending = b.pending[1:]
	if len(b.pending) == 0 {
		b.pending = nil
	}
	return c
}
