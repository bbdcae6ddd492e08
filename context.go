package reactor

import "github.com/arclight-go/reactor/internal"

// Context carries a value down the owner tree, independent of the tracking
// graph: useful for passing ambient configuration through nested
// effect/derived construction without threading an explicit parameter.
type Context[T any] struct {
	key     *contextKey
	initial T
}

type contextKey struct{}

// NewContext creates a context with a default value, returned by Value()
// whenever no enclosing owner has called Set.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{key: &contextKey{}, initial: initial}
}

// Value returns the nearest enclosing owner's value for this context,
// walking up the owner tree, or the context's default if none is set.
func (c *Context[T]) Value() T {
	owner := internal.CurrentOwner()
	if owner == nil {
		return c.initial
	}
	if v, ok := owner.Lookup(c.key); ok {
		return v.(T)
	}
	return c.initial
}

// Set stores a value for this context scoped to the current owner. Calling
// Set with no enclosing owner (outside any Effect/Derived/Owner.Run) is a
// no-op - there is nowhere to hold the value.
func (c *Context[T]) Set(value T) {
	owner := internal.CurrentOwner()
	if owner == nil {
		return
	}
	owner.Set(c.key, value)
}
