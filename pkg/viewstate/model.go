// Package viewstate holds the screen models handed to the rendering layer.
// Each model merges a live store stream with in-memory state (a pending
// reorder, a form being edited, a filter or a calendar page) and publishes
// an immutable snapshot after every change.
package viewstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"tableflip.dev/workout/pkg/app"
	"tableflip.dev/workout/pkg/stream"
)

var errNoService = errors.New("viewstate: no persistence configured")

// base carries what every model shares: the merged-state lock, the intent
// lock and the snapshot stream.
type base[S any] struct {
	// mu guards the merged inputs. It is never held across a store call.
	mu sync.Mutex
	// intent serializes user intents so they apply one at a time.
	intent sync.Mutex
	// load serializes read-then-apply cycles so a slower read never
	// overwrites a newer one.
	load sync.Mutex

	render func() S
	out    *stream.Latest[S]
	cancel context.CancelFunc
	done   chan struct{}
	log    logrus.FieldLogger
}

func newBase[S any](svc *app.Service, render func() S) *base[S] {
	log := logrus.FieldLogger(logrus.StandardLogger())
	if svc.Log != nil {
		log = svc.Log
	}
	return &base[S]{
		render: render,
		out:    stream.NewLatest[S](),
		done:   make(chan struct{}),
		log:    log,
	}
}

// State returns the current snapshot.
func (b *base[S]) State() S {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.render()
}

// States streams snapshots. A slow reader only sees the latest one. The
// channel closes after Close.
func (b *base[S]) States() <-chan S {
	return b.out.C()
}

// Close stops following the store. In-flight intents are not cancelled.
func (b *base[S]) Close() {
	b.cancel()
	<-b.done
	b.out.Close()
}

// update runs fn against the merged inputs and publishes the result.
func (b *base[S]) update(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if fn != nil {
		fn()
	}
	b.out.Publish(b.render())
}

// follow applies the first value of in synchronously, then hands every
// later value to next in the background until in closes or ctx ends.
func follow[S, T any](ctx context.Context, b *base[S], in <-chan T, first, next func(T)) {
	select {
	case v, ok := <-in:
		if ok {
			b.update(func() { first(v) })
		}
	case <-ctx.Done():
	}
	go func() {
		defer close(b.done)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				next(v)
			}
		}
	}()
}

// apply wraps a setter so each value is merged and published.
func apply[S, T any](b *base[S], set func(T)) func(T) {
	return func(v T) { b.update(func() { set(v) }) }
}

func clock(svc *app.Service) time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}
