package reactor

import (
	"reflect"
	"sync"

	"github.com/arclight-go/reactor/internal"
)

// wrapper is implemented by *Map and *Seq: the two "proxy" shapes a caller
// can probe with IsReactive/IsReadonly/ToRaw. Cell and Derived are refs, not
// proxies, and do not implement it.
type wrapper interface {
	IsReactive() bool
	IsReadonly() bool
	Raw() any
}

// cellLike lets Map/Seq auto-unwrap a *Cell[T] on read/write without
// depending on the concrete T.
type cellLike interface {
	GetAny() any
	SetAny(any)
	cellMarker()
}

// Registries giving a raw map/slice value a stable identity so repeated
// calls to Reactive/Readonly on the *same* backing data return the same
// wrapper, without requiring the caller to go through a constructor. Keyed
// by the reflect pointer of the backing map/array, so a reallocated slice
// gets a fresh identity. An empty slice is never registered: each wrap of
// one gets a fresh target (and MarkRaw on one has no lasting effect).
var (
	mapTargetsMu sync.Mutex
	mapTargets   = map[uintptr]*internal.MapTarget{}

	seqTargetsMu sync.Mutex
	seqTargets   = map[uintptr]*internal.SeqTarget{}
)

func targetForMap(raw map[any]any) *internal.MapTarget {
	ptr := reflect.ValueOf(raw).Pointer()
	mapTargetsMu.Lock()
	defer mapTargetsMu.Unlock()
	t, ok := mapTargets[ptr]
	if !ok {
		t = internal.NewMapTarget(raw)
		mapTargets[ptr] = t
	}
	return t
}

func targetForSeq(raw []any) *internal.SeqTarget {
	if len(raw) == 0 {
		return internal.NewSeqTarget(raw)
	}
	ptr := reflect.ValueOf(raw).Pointer()
	seqTargetsMu.Lock()
	defer seqTargetsMu.Unlock()
	t, ok := seqTargets[ptr]
	if !ok {
		t = internal.NewSeqTarget(raw)
		seqTargets[ptr] = t
	}
	return t
}

func wrapMap(t *internal.MapTarget, readonly, shallow bool) *Map {
	slot := viewSlot(t, readonly, shallow)
	if v := *slot; v != nil {
		return v.(*Map)
	}
	m := &Map{target: t, readonly: readonly, shallow: shallow}
	*slot = m
	return m
}

func viewSlot(t *internal.MapTarget, readonly, shallow bool) *any {
	switch {
	case !readonly && !shallow:
		return &t.Reactive
	case readonly && !shallow:
		return &t.Readonly
	case !readonly && shallow:
		return &t.ShallowReactive
	default:
		return &t.ShallowReadonly
	}
}

func wrapSeq(t *internal.SeqTarget, readonly, shallow bool) *Seq {
	slot := seqViewSlot(t, readonly, shallow)
	if v := *slot; v != nil {
		return v.(*Seq)
	}
	s := &Seq{target: t, readonly: readonly, shallow: shallow}
	*slot = s
	return s
}

func seqViewSlot(t *internal.SeqTarget, readonly, shallow bool) *any {
	switch {
	case !readonly && !shallow:
		return &t.Reactive
	case readonly && !shallow:
		return &t.Readonly
	case !readonly && shallow:
		return &t.ShallowReactive
	default:
		return &t.ShallowReadonly
	}
}

// Reactive wraps x in a deep, mutable observable view. x may be a raw
// map[any]any, a raw []any, an existing *Map/*Seq (idempotent), or any other
// value (returned unchanged - there is nothing to observe).
func Reactive(x any) any {
	switch t := x.(type) {
	case *Map:
		if t.readonly {
			return t
		}
		if !t.shallow {
			return t
		}
		return wrapMap(t.target, false, false)
	case *Seq:
		if t.readonly {
			return t
		}
		if !t.shallow {
			return t
		}
		return wrapSeq(t.target, false, false)
	case map[any]any:
		tgt := targetForMap(t)
		if tgt.Skip {
			return x
		}
		return wrapMap(tgt, false, false)
	case []any:
		tgt := targetForSeq(t)
		if tgt.Skip {
			return x
		}
		return wrapSeq(tgt, false, false)
	default:
		return x
	}
}

// Readonly wraps x in a deep, read-only observable view.
func Readonly(x any) any {
	switch t := x.(type) {
	case *Map:
		if t.readonly {
			return t
		}
		return wrapMap(t.target, true, false)
	case *Seq:
		if t.readonly {
			return t
		}
		return wrapSeq(t.target, true, false)
	case map[any]any:
		tgt := targetForMap(t)
		if tgt.Skip {
			return x
		}
		return wrapMap(tgt, true, false)
	case []any:
		tgt := targetForSeq(t)
		if tgt.Skip {
			return x
		}
		return wrapSeq(tgt, true, false)
	default:
		return x
	}
}

// ShallowReactive wraps x without recursing into nested aggregates or
// auto-unwrapping nested cells.
func ShallowReactive(x any) any {
	switch t := x.(type) {
	case *Map:
		if t.readonly {
			return t
		}
		return wrapMap(t.target, false, true)
	case *Seq:
		if t.readonly {
			return t
		}
		return wrapSeq(t.target, false, true)
	case map[any]any:
		tgt := targetForMap(t)
		if tgt.Skip {
			return x
		}
		return wrapMap(tgt, false, true)
	case []any:
		tgt := targetForSeq(t)
		if tgt.Skip {
			return x
		}
		return wrapSeq(tgt, false, true)
	default:
		return x
	}
}

// ShallowReadonly wraps x without recursing, and forbids writes.
func ShallowReadonly(x any) any {
	switch t := x.(type) {
	case *Map:
		return wrapMap(t.target, true, true)
	case *Seq:
		return wrapSeq(t.target, true, true)
	case map[any]any:
		tgt := targetForMap(t)
		if tgt.Skip {
			return x
		}
		return wrapMap(tgt, true, true)
	case []any:
		tgt := targetForSeq(t)
		if tgt.Skip {
			return x
		}
		return wrapSeq(tgt, true, true)
	default:
		return x
	}
}

// IsReactive reports whether x is a mutable observable wrapper.
func IsReactive(x any) bool {
	w, ok := x.(wrapper)
	return ok && w.IsReactive()
}

// IsReadonly reports whether x is a read-only observable wrapper.
func IsReadonly(x any) bool {
	w, ok := x.(wrapper)
	return ok && w.IsReadonly()
}

// IsProxy reports whether x is any observable wrapper (reactive or readonly).
func IsProxy(x any) bool {
	_, ok := x.(wrapper)
	return ok
}

// ToRaw returns the unwrapped backing value of x, or x unchanged if it is
// not an observable wrapper.
func ToRaw(x any) any {
	if w, ok := x.(wrapper); ok {
		return w.Raw()
	}
	return x
}

// MarkRaw flags x so future Reactive/Readonly calls return it unwrapped.
// No-op for values that are not (or cannot become) observable targets.
func MarkRaw(x any) {
	switch t := x.(type) {
	case *Map:
		t.target.Skip = true
	case *Seq:
		t.target.Skip = true
	case map[any]any:
		targetForMap(t).Skip = true
	case []any:
		targetForSeq(t).Skip = true
	}
}

// wrapRead applies the deep-wrap rule shared by Map.Get and Seq.Get to a raw
// stored value: nested aggregates are wrapped in the reader's mode, anything
// else is returned unchanged. Cells are handled by the callers before this
// (Map.Get unwraps them, Seq.Get returns them as-is).
func wrapRead(v any, readonly bool) any {
	if readonly {
		return Readonly(v)
	}
	return Reactive(v)
}
