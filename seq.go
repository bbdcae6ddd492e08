package reactor

import "github.com/arclight-go/reactor/internal"

// Seq is an observable wrapper over an ordered []any: reads and writes of
// indices and length, plus the instrumented search methods (Includes/
// IndexOf/LastIndexOf), each intercept the raw access to emit the matching
// Track or Trigger call.
type Seq struct {
	target   *internal.SeqTarget
	readonly bool
	shallow  bool
}

// NewSeq wraps initial as a deep, mutable observable sequence.
func NewSeq(initial []any) *Seq {
	return wrapSeq(targetForSeq(initial), false, false)
}

// NewReadonlySeq wraps initial as a deep, read-only observable sequence.
func NewReadonlySeq(initial []any) *Seq {
	return wrapSeq(targetForSeq(initial), true, false)
}

// NewShallowSeq wraps initial as a shallow, mutable observable sequence.
func NewShallowSeq(initial []any) *Seq {
	return wrapSeq(targetForSeq(initial), false, true)
}

// NewShallowReadonlySeq wraps initial as a shallow, read-only observable
// sequence.
func NewShallowReadonlySeq(initial []any) *Seq {
	return wrapSeq(targetForSeq(initial), true, true)
}

// Get reads index i (out of range returns nil), tracking the current effect
// against that index. Unlike Map, a stored *Cell is returned as-is: the spec
// requires an explicit unwrap when the target is an ordered sequence, since
// a numeric index collides too easily with a cell's own numeric contents.
func (s *Seq) Get(i int) any {
	if !s.readonly {
		internal.Track(s.target, internal.OpGet, i)
	}
	if i < 0 || i >= len(s.target.Data) {
		return nil
	}
	v := s.target.Data[i]
	if s.shallow {
		return v
	}
	if _, isCell := v.(cellLike); isCell {
		return v
	}
	return wrapRead(v, s.readonly)
}

// Has reports whether index i is within range, tracking the current effect
// against membership of that index.
func (s *Seq) Has(i int) bool {
	if !s.readonly {
		internal.Track(s.target, internal.OpHas, i)
	}
	return i >= 0 && i < len(s.target.Data)
}

// Len returns the sequence's length, tracking the current effect against
// the length slot (the sequence analogue of Map.Len's ITERATE_KEY).
func (s *Seq) Len() int {
	if !s.readonly {
		internal.Track(s.target, internal.OpGet, internal.LengthKey)
	}
	return len(s.target.Data)
}

// Set writes index i = v, extending the sequence with nils if i is beyond
// the current length (an Add) or overwriting an in-range index (a Set). As
// with Map.Set, writing into a cell-valued index delegates to the cell.
func (s *Seq) Set(i int, v any) {
	if s.readonly {
		internal.Warn("cannot set index %d: sequence is readonly", i)
		return
	}
	data := s.target.Data
	existed := i >= 0 && i < len(data)

	newVal := v
	if !s.shallow {
		newVal = ToRaw(v)
	}

	if existed {
		oldVal := data[i]
		if !s.shallow {
			if cell, ok := oldVal.(cellLike); ok {
				if _, isCell := newVal.(cellLike); !isCell {
					cell.SetAny(newVal)
					return
				}
			}
		}
		data[i] = newVal
		if !valuesEqual(oldVal, newVal) {
			internal.Trigger(s.target, internal.OpSet, i, newVal, oldVal)
		}
		return
	}

	if i < 0 {
		return
	}
	for len(data) <= i {
		data = append(data, nil)
	}
	data[i] = newVal
	s.target.Data = data
	internal.Trigger(s.target, internal.OpAdd, i, newVal, nil)
}

// Push appends one or more values, each triggering an Add at its new index.
func (s *Seq) Push(vs ...any) {
	if s.readonly {
		internal.Warn("cannot push: sequence is readonly")
		return
	}
	for _, v := range vs {
		newVal := v
		if !s.shallow {
			newVal = ToRaw(v)
		}
		idx := len(s.target.Data)
		s.target.Data = append(s.target.Data, newVal)
		internal.Trigger(s.target, internal.OpAdd, idx, newVal, nil)
	}
}

// Pop removes and returns the last element, triggering the length-shrink
// rule (notifies the length slot and every index >= the new length). The
// second return is false if the sequence was empty.
func (s *Seq) Pop() (any, bool) {
	if s.readonly {
		internal.Warn("cannot pop: sequence is readonly")
		return nil, false
	}
	data := s.target.Data
	if len(data) == 0 {
		return nil, false
	}
	idx := len(data) - 1
	v := data[idx]
	s.target.Data = data[:idx]
	internal.Trigger(s.target, internal.OpSet, internal.LengthKey, idx, idx+1)
	return v, true
}

// Delete removes the element at index i, shifting subsequent elements down
// by one, and triggers the length-shrink rule.
func (s *Seq) Delete(i int) bool {
	if s.readonly {
		internal.Warn("cannot delete index %d: sequence is readonly", i)
		return false
	}
	data := s.target.Data
	if i < 0 || i >= len(data) {
		return false
	}
	newLen := len(data) - 1
	data = append(data[:i], data[i+1:]...)
	s.target.Data = data
	internal.Trigger(s.target, internal.OpSet, internal.LengthKey, newLen, newLen+1)
	return true
}

// SetLen grows or shrinks the sequence to exactly n elements (growth pads
// with nil), triggering the length-shrink rule in either direction.
func (s *Seq) SetLen(n int) {
	if s.readonly {
		internal.Warn("cannot set length: sequence is readonly")
		return
	}
	if n < 0 {
		n = 0
	}
	oldLen := len(s.target.Data)
	if n == oldLen {
		return
	}
	if n < oldLen {
		s.target.Data = s.target.Data[:n]
	} else {
		data := s.target.Data
		for len(data) < n {
			data = append(data, nil)
		}
		s.target.Data = data
	}
	internal.Trigger(s.target, internal.OpSet, internal.LengthKey, n, oldLen)
}

// Clear empties the sequence in one step, triggering Clear once.
func (s *Seq) Clear() {
	if s.readonly {
		internal.Warn("cannot clear sequence: sequence is readonly")
		return
	}
	if len(s.target.Data) == 0 {
		return
	}
	old := s.target.Data
	s.target.Data = nil
	internal.Trigger(s.target, internal.OpClear, nil, nil, old)
}

// Keys returns the sequence's current indices [0, Len()). Enumeration of a
// sequence is tracked against the length slot, matching real reactive-array
// iteration: "how many indices there are" is exactly the length.
func (s *Seq) Keys() []int {
	if !s.readonly {
		internal.Track(s.target, internal.OpIterate, internal.LengthKey)
	}
	out := make([]int, len(s.target.Data))
	for i := range out {
		out[i] = i
	}
	return out
}

// trackAllIndices is the tracking half of the instrumented search methods:
// a search depends on every element, so every index is tracked regardless
// of where (or whether) the target value is actually found.
func (s *Seq) trackAllIndices() {
	if s.readonly {
		return
	}
	for i := range s.target.Data {
		internal.Track(s.target, internal.OpGet, i)
	}
}

// Includes reports whether v is present. It first searches using v as given,
// then retries with v unwrapped via ToRaw - mirroring the instrumented
// Array.includes pattern, where a caller holding a reactive wrapper for an
// element would otherwise never find it against the raw backing slice.
func (s *Seq) Includes(v any) bool {
	s.trackAllIndices()
	if indexOfValue(s.target.Data, v) != -1 {
		return true
	}
	return indexOfValue(s.target.Data, ToRaw(v)) != -1
}

// IndexOf returns the first index of v, or -1. See Includes for the retry
// rule.
func (s *Seq) IndexOf(v any) int {
	s.trackAllIndices()
	if i := indexOfValue(s.target.Data, v); i != -1 {
		return i
	}
	return indexOfValue(s.target.Data, ToRaw(v))
}

// LastIndexOf returns the last index of v, or -1. See Includes for the
// retry rule.
func (s *Seq) LastIndexOf(v any) int {
	s.trackAllIndices()
	if i := lastIndexOfValue(s.target.Data, v); i != -1 {
		return i
	}
	return lastIndexOfValue(s.target.Data, ToRaw(v))
}

func indexOfValue(data []any, v any) int {
	for i, e := range data {
		if valuesEqual(e, v) {
			return i
		}
	}
	return -1
}

func lastIndexOfValue(data []any, v any) int {
	for i := len(data) - 1; i >= 0; i-- {
		if valuesEqual(data[i], v) {
			return i
		}
	}
	return -1
}

func (s *Seq) IsReactive() bool { return !s.readonly }
func (s *Seq) IsReadonly() bool { return s.readonly }
func (s *Seq) Raw() any         { return s.target.Data }
