// Package stream provides a conflating channel: a slow reader only ever sees
// the most recent value.
package stream

import "sync"

// Latest holds at most one undelivered value. Publishing replaces a value the
// reader has not picked up yet.
type Latest[T any] struct {
	mu     sync.Mutex
	ch     chan T
	closed bool
}

// NewLatest returns an open stream.
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{ch: make(chan T, 1)}
}

// Publish replaces any pending value with v. It never blocks. Publishing to a
// closed stream is a no-op.
func (l *Latest[T]) Publish(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case <-l.ch:
	default:
	}
	l.ch <- v
}

// C is the receive side. It is closed by Close.
func (l *Latest[T]) C() <-chan T {
	return l.ch
}

// Close closes the channel. A pending value can still be received.
func (l *Latest[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	close(l.ch)
}
