// Package reorder moves an item inside an ordered sibling list by swapping
// order values with the item it lands on, and keeps an optimistic overlay so
// readers see the new order before the store confirms it.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownItem is returned when a swap names an id missing from the list.
var ErrUnknownItem = errors.New("reorder: unknown item")

// Orderable is implemented by sibling items that carry an order value.
type Orderable[T any] interface {
	OrderKey() int64
	OrderValue() int
	WithOrder(order int) T
}

// Change assigns a new order value to an item.
type Change struct {
	ID    int64
	Order int
}

// Plan is the minimal mutation for a move. An empty plan is a no-op.
type Plan struct {
	Changes []Change
}

// NoOp reports whether the plan requires no write.
func (p Plan) NoOp() bool {
	return len(p.Changes) == 0
}

// OrderFor returns the planned order for id.
func (p Plan) OrderFor(id int64) (int, bool) {
	for _, c := range p.Changes {
		if c.ID == id {
			return c.Order, true
		}
	}
	return 0, false
}

// SwapPair plans the exchange of order values between from and to: from takes
// to's order and to takes from's. Equal order values produce a no-op.
func SwapPair[T Orderable[T]](from, to T) Plan {
	if from.OrderValue() == to.OrderValue() {
		return Plan{}
	}
	return Plan{Changes: []Change{
		{ID: from.OrderKey(), Order: to.OrderValue()},
		{ID: to.OrderKey(), Order: from.OrderValue()},
	}}
}

// Swap looks both ids up in items and plans their exchange.
func Swap[T Orderable[T]](items []T, fromID, toID int64) (Plan, error) {
	from, ok := find(items, fromID)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownItem, fromID)
	}
	to, ok := find(items, toID)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %d", ErrUnknownItem, toID)
	}
	return SwapPair(from, to), nil
}

// Apply returns a copy of items with the plan's order values applied, sorted
// by order and then id.
func Apply[T Orderable[T]](items []T, plan Plan) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if order, ok := plan.OrderFor(item.OrderKey()); ok {
			item = item.WithOrder(order)
		}
		out = append(out, item)
	}
	Sort(out)
	return out
}

// Sort orders items by order value, ties broken by id.
func Sort[T Orderable[T]](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderValue() != items[j].OrderValue() {
			return items[i].OrderValue() < items[j].OrderValue()
		}
		return items[i].OrderKey() < items[j].OrderKey()
	})
}

func find[T Orderable[T]](items []T, id int64) (T, bool) {
	for _, item := range items {
		if item.OrderKey() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Overlay holds at most one pending plan. It is visual only: it never
// reaches the store.
type Overlay struct {
	mu      sync.RWMutex
	pending Plan
}

// Set replaces the pending plan.
func (o *Overlay) Set(plan Plan) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = plan
}

// Clear drops the pending plan.
func (o *Overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = Plan{}
}

// Pending returns the current plan.
func (o *Overlay) Pending() Plan {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.pending
}

// Active reports whether a plan is pending.
func (o *Overlay) Active() bool {
	return !o.Pending().NoOp()
}

// Project re-maps the displayed order of exactly the ids in the pending plan
// over the latest snapshot. Items missing from the snapshot are ignored, so
// the projection never adds or drops items.
func Project[T Orderable[T]](items []T, o *Overlay) []T {
	if o == nil {
		out := append([]T(nil), items...)
		Sort(out)
		return out
	}
	return Apply(items, o.Pending())
}

// PersistFunc writes a plan to the store.
type PersistFunc func(ctx context.Context, plan Plan) error

// Engine runs the optimistic reorder cycle: set overlay, notify, persist,
// clear overlay, notify.
type Engine[T Orderable[T]] struct {
	Overlay *Overlay
	Persist PersistFunc
	// Notify is called whenever the overlay changes. Optional.
	Notify func()
}

// NewEngine returns an engine with an empty overlay.
func NewEngine[T Orderable[T]](persist PersistFunc, notify func()) *Engine[T] {
	return &Engine[T]{
		Overlay: &Overlay{},
		Persist: persist,
		Notify:  notify,
	}
}

// Reorder swaps from and to. A no-op plan issues no write. The overlay is
// cleared once Persist returns, whatever the outcome; on failure the next
// snapshot from the store is the order shown.
func (e *Engine[T]) Reorder(ctx context.Context, items []T, fromID, toID int64) (Plan, error) {
	plan, err := Swap(items, fromID, toID)
	if err != nil {
		return Plan{}, err
	}
	if plan.NoOp() {
		return plan, nil
	}
	if e.Persist == nil {
		return plan, errors.New("reorder: no persistence configured")
	}

	e.Overlay.Set(plan)
	e.notify()
	defer func() {
		e.Overlay.Clear()
		e.notify()
	}()

	if err := e.Persist(ctx, plan); err != nil {
		return plan, fmt.Errorf("reorder: persist: %w", err)
	}
	return plan, nil
}

func (e *Engine[T]) notify() {
	if e.Notify != nil {
		e.Notify()
	}
}
