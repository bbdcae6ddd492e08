package reactor

import "github.com/arclight-go/reactor/internal"

// Cell is a single-value reactive reference: where Map/Seq intercept an
// existing aggregate's own properties, Cell gives a single value of any
// type (including a plain scalar) one reactive slot.
type Cell[T any] struct {
	ref *internal.Ref
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{ref: &internal.Ref{}}
	c.ref.Value = wrapIfAggregate(any(initial))
	return c
}

// Get reads the cell's value, tracking the current effect against it.
func (c *Cell[T]) Get() T {
	internal.Track(c.ref, internal.OpGet, internal.ValueKey)
	if c.ref.Value == nil {
		var zero T
		return zero
	}
	if v, ok := c.ref.Value.(T); ok {
		return v
	}
	// T is a raw map[any]any or []any while the stored value is its wrapper.
	return ToRaw(c.ref.Value).(T)
}

// Set stores a new value. A write that compares equal to the current value
// (NaN-aware) is a no-op and does not trigger. A raw map[any]any or []any is
// stored as its reactive wrapper; Get returns that wrapper when T can hold
// it, and the wrapper's raw backing value otherwise.
func (c *Cell[T]) Set(v T) {
	wrapped := wrapIfAggregate(any(v))
	old := c.ref.Value
	if valuesEqual(old, wrapped) {
		return
	}
	c.ref.Value = wrapped
	internal.Trigger(c.ref, internal.OpSet, internal.ValueKey, wrapped, old)
}

// GetAny/SetAny/cellMarker implement cellLike so Map and Seq can auto-unwrap
// a cell stored as one of their values without depending on its type param.
func (c *Cell[T]) GetAny() any { return any(c.Get()) }

func (c *Cell[T]) SetAny(v any) {
	tv, ok := v.(T)
	if !ok {
		internal.Warn("cannot assign value of type %T to cell", v)
		return
	}
	c.Set(tv)
}

func (c *Cell[T]) cellMarker() {}

// IsCell reports whether x is a *Cell[T] for some T.
func IsCell(x any) bool {
	_, ok := x.(cellLike)
	return ok
}
