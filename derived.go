package reactor

import "github.com/arclight-go/reactor/internal"

// Derived is a lazily-recomputed, memoized value: reading it re-runs get
// only if a dependency has changed since the last read, and itself tracks
// like any other reactive source against whatever effect reads it.
type Derived[T any] struct {
	ref    *internal.Ref
	effect *internal.Effect
	set    func(T)
	cached T
	dirty  bool
}

// NewDerived creates a read-only derived value from get. get is not run
// until the first Get call.
func NewDerived[T any](get func() T) *Derived[T] {
	return newDerived(get, nil)
}

// NewWritableDerived creates a derived value with an explicit setter,
// mirroring a writable computed: Set delegates to set rather than writing
// the cache directly, so the caller decides how the write propagates back
// into get's own dependencies.
func NewWritableDerived[T any](get func() T, set func(T)) *Derived[T] {
	return newDerived(get, set)
}

func newDerived[T any](get func() T, set func(T)) *Derived[T] {
	d := &Derived[T]{
		ref:   &internal.Ref{IsDerived: true},
		set:   set,
		dirty: true,
	}

	scheduler := func() {
		if d.dirty {
			return
		}
		d.dirty = true
		internal.Trigger(d.ref, internal.OpSet, internal.ValueKey, nil, nil)
	}

	d.effect = internal.NewEffect(func() {
		d.cached = get()
	}, internal.EffectOptions{Lazy: true, Computed: true, Scheduler: scheduler})

	return d
}

// Get returns the current value, recomputing first if a dependency has
// changed since the last Get (or if this is the first Get). Tracks the
// current effect against this derived's own value slot, so an effect that
// reads a Derived re-runs whenever one of the derived's dependencies changes;
// the new result is not compared with the cached one first.
func (d *Derived[T]) Get() T {
	if d.dirty {
		internal.Invoke(d.effect)
		d.dirty = false
	}
	internal.Track(d.ref, internal.OpGet, internal.ValueKey)
	return d.cached
}

// Set writes through the derived's setter. Calling Set on a read-only
// derived (one created with NewDerived) warns in debug mode and is a no-op.
func (d *Derived[T]) Set(v T) {
	if d.set == nil {
		internal.Warn("cannot set value: derived is read-only")
		return
	}
	d.set(v)
}

// Dispose stops the derived's internal effect, releasing its dependency
// edges. A disposed derived that is read again simply never recomputes,
// returning its last cached value.
func (d *Derived[T]) Dispose() { internal.Stop(d.effect) }
