package reorder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    int64
	order int
}

func (i item) OrderKey() int64 { return i.id }
func (i item) OrderValue() int { return i.order }
func (i item) WithOrder(order int) item {
	i.order = order
	return i
}

func orders(items []item) map[int64]int {
	out := make(map[int64]int, len(items))
	for _, i := range items {
		out[i.id] = i.order
	}
	return out
}

func TestSwapExchangesOrders(t *testing.T) {
	a := item{id: 1, order: 2}
	b := item{id: 2, order: 5}
	items := []item{a, b}

	plan, err := Swap(items, a.id, b.id)
	require.NoError(t, err)
	require.False(t, plan.NoOp())

	applied := Apply(items, plan)
	assert.Equal(t, map[int64]int{1: 5, 2: 2}, orders(applied))
	assert.Equal(t, int64(2), applied[0].id)
}

func TestSwapIsAnInvolution(t *testing.T) {
	items := []item{{id: 1, order: 2}, {id: 2, order: 5}, {id: 3, order: 9}}

	plan, err := Swap(items, 1, 2)
	require.NoError(t, err)
	once := Apply(items, plan)

	plan, err = Swap(once, 1, 2)
	require.NoError(t, err)
	twice := Apply(once, plan)

	assert.Equal(t, orders(items), orders(twice))
}

func TestSwapIsNotAShift(t *testing.T) {
	items := []item{{id: 1, order: 0}, {id: 2, order: 1}, {id: 3, order: 2}}
	plan, err := Swap(items, 1, 3)
	require.NoError(t, err)
	assert.Len(t, plan.Changes, 2)
	assert.Equal(t, map[int64]int{1: 2, 2: 1, 3: 0}, orders(Apply(items, plan)))
}

func TestSwapNoOp(t *testing.T) {
	items := []item{{id: 1, order: 3}, {id: 2, order: 3}}

	plan, err := Swap(items, 1, 1)
	require.NoError(t, err)
	assert.True(t, plan.NoOp())

	plan, err = Swap(items, 1, 2)
	require.NoError(t, err)
	assert.True(t, plan.NoOp())
}

func TestSwapUnknownItem(t *testing.T) {
	_, err := Swap([]item{{id: 1}}, 1, 42)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestProjectOnlyTouchesPendingIDs(t *testing.T) {
	items := []item{{id: 1, order: 0}, {id: 2, order: 1}, {id: 3, order: 2}}
	o := &Overlay{}
	o.Set(Plan{Changes: []Change{{ID: 1, Order: 1}, {ID: 2, Order: 0}}})

	projected := Project(items, o)
	require.Len(t, projected, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{projected[0].id, projected[1].id, projected[2].id})
	// Source snapshot is untouched.
	assert.Equal(t, 0, items[0].order)

	o.Clear()
	assert.False(t, o.Active())
	assert.Equal(t, orders(items), orders(Project(items, o)))
}

func TestEngineNoOpIssuesNoWrite(t *testing.T) {
	calls := 0
	e := NewEngine[item](func(context.Context, Plan) error {
		calls++
		return nil
	}, nil)

	items := []item{{id: 1, order: 4}, {id: 2, order: 4}}
	_, err := e.Reorder(context.Background(), items, 1, 1)
	require.NoError(t, err)
	_, err = e.Reorder(context.Background(), items, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}

func TestEngineOverlayVisibleDuringWriteAndClearedAfter(t *testing.T) {
	items := []item{{id: 1, order: 0}, {id: 2, order: 1}}
	var e *Engine[item]
	var seen []int64
	notified := 0
	e = NewEngine[item](func(context.Context, Plan) error {
		projected := Project(items, e.Overlay)
		seen = []int64{projected[0].id, projected[1].id}
		return nil
	}, func() { notified++ })

	_, err := e.Reorder(context.Background(), items, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, seen)
	assert.False(t, e.Overlay.Active())
	assert.Equal(t, 2, notified)
}

func TestEngineClearsOverlayOnFailure(t *testing.T) {
	boom := errors.New("disk full")
	e := NewEngine[item](func(context.Context, Plan) error { return boom }, nil)

	items := []item{{id: 1, order: 0}, {id: 2, order: 1}}
	_, err := e.Reorder(context.Background(), items, 1, 2)
	require.ErrorIs(t, err, boom)
	assert.False(t, e.Overlay.Active())
	assert.Equal(t, orders(items), orders(Project(items, e.Overlay)))
}
