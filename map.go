package reactor

import "github.com/arclight-go/reactor/internal"

// Map is an observable wrapper over a keyed map[any]any: every Get/Set/Has/
// Delete/Clear/Keys call intercepts the raw access to emit the matching
// Track or Trigger call, so effects reading a key or enumerating the map's
// keys automatically re-run when that key (or the map's shape) changes.
type Map struct {
	target   *internal.MapTarget
	readonly bool
	shallow  bool
}

// NewMap wraps initial (or a fresh empty map, if nil) as a deep, mutable
// observable map.
func NewMap(initial map[any]any) *Map {
	return wrapMap(targetForMap(nonNilMap(initial)), false, false)
}

// NewReadonlyMap wraps initial as a deep, read-only observable map.
func NewReadonlyMap(initial map[any]any) *Map {
	return wrapMap(targetForMap(nonNilMap(initial)), true, false)
}

// NewShallowMap wraps initial as a shallow, mutable observable map: nested
// aggregates are returned as-is on read, never auto-wrapped.
func NewShallowMap(initial map[any]any) *Map {
	return wrapMap(targetForMap(nonNilMap(initial)), false, true)
}

// NewShallowReadonlyMap wraps initial as a shallow, read-only observable map.
func NewShallowReadonlyMap(initial map[any]any) *Map {
	return wrapMap(targetForMap(nonNilMap(initial)), true, true)
}

func nonNilMap(m map[any]any) map[any]any {
	if m == nil {
		return make(map[any]any)
	}
	return m
}

// Get reads key, tracking the current effect against it. A stored *Cell
// auto-unwraps to its current value; a stored raw aggregate is wrapped in
// this map's mode (reactive or readonly) before being returned, unless this
// is a shallow view.
func (m *Map) Get(key any) any {
	v, ok := m.target.Data[key]
	if !m.readonly {
		internal.Track(m.target, internal.OpGet, key)
	}
	if !ok {
		return nil
	}
	if m.shallow {
		return v
	}
	if cell, isCell := v.(cellLike); isCell {
		return cell.GetAny()
	}
	return wrapRead(v, m.readonly)
}

// Has reports whether key is present, tracking the current effect against
// membership of that specific key.
func (m *Map) Has(key any) bool {
	_, ok := m.target.Data[key]
	if !m.readonly {
		internal.Track(m.target, internal.OpHas, key)
	}
	return ok
}

// Set writes key = v. Writing to a readonly map warns (in debug mode) and
// does nothing. If key already holds a *Cell and v is not itself a cell,
// the write delegates to the cell (Map.Set(k, v) on a cell-valued key acts
// like assigning .value, not replacing the cell).
func (m *Map) Set(key, v any) {
	if m.readonly {
		internal.Warn("cannot set key %v: map is readonly", key)
		return
	}

	oldVal, existed := m.target.Data[key]
	newVal := v
	if !m.shallow {
		newVal = ToRaw(v)
		if existed {
			if cell, ok := oldVal.(cellLike); ok {
				if _, isCell := newVal.(cellLike); !isCell {
					cell.SetAny(newVal)
					return
				}
			}
		}
	}

	m.target.Data[key] = newVal

	if !existed {
		internal.Trigger(m.target, internal.OpAdd, key, newVal, nil)
		return
	}
	if !valuesEqual(oldVal, newVal) {
		internal.Trigger(m.target, internal.OpSet, key, newVal, oldVal)
	}
}

// Delete removes key, triggering Delete if it was present. No-op (and warns
// in debug mode) on a readonly map.
func (m *Map) Delete(key any) bool {
	if m.readonly {
		internal.Warn("cannot delete key %v: map is readonly", key)
		return false
	}
	oldVal, existed := m.target.Data[key]
	if !existed {
		return false
	}
	delete(m.target.Data, key)
	internal.Trigger(m.target, internal.OpDelete, key, nil, oldVal)
	return true
}

// Clear empties the map in one step, triggering Clear once rather than one
// Delete per key.
func (m *Map) Clear() {
	if m.readonly {
		internal.Warn("cannot clear map: map is readonly")
		return
	}
	if len(m.target.Data) == 0 {
		return
	}
	old := m.target.Data
	m.target.Data = make(map[any]any)
	internal.Trigger(m.target, internal.OpClear, nil, nil, old)
}

// Keys returns the map's current keys, tracking the current effect against
// the map's overall shape (so a later Set/Delete that changes which keys
// exist re-runs any effect that previously enumerated them).
func (m *Map) Keys() []any {
	if !m.readonly {
		internal.Track(m.target, internal.OpIterate, internal.IterateKey)
	}
	keys := make([]any, 0, len(m.target.Data))
	for k := range m.target.Data {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries, tracking the current effect against
// the map's shape (equivalent to Keys, offered separately since reading a
// count is the common case and need not allocate a key slice).
func (m *Map) Len() int {
	if !m.readonly {
		internal.Track(m.target, internal.OpIterate, internal.IterateKey)
	}
	return len(m.target.Data)
}

func (m *Map) IsReactive() bool { return !m.readonly }
func (m *Map) IsReadonly() bool { return m.readonly }
func (m *Map) Raw() any         { return m.target.Data }
