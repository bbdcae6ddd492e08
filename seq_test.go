package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqBasicGetSet(t *testing.T) {
	s := NewSeq([]any{1, 2, 3})

	runs := 0
	var seen any
	NewEffect(func() {
		runs++
		seen = s.Get(1)
	}, EffectOptions{})

	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, seen)

	s.Set(1, 20)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 20, seen)

	s.Set(1, 20)
	assert.Equal(t, 2, runs, "writing an equal value must not re-trigger")
}

func TestSeqPushTriggersLengthReaders(t *testing.T) {
	s := NewSeq([]any{1, 2})

	runs := 0
	var n int
	NewEffect(func() {
		runs++
		n = s.Len()
	}, EffectOptions{})

	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, n)

	s.Push(3)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 3, n)
}

func TestSeqPopShrinksAndNotifiesTailIndices(t *testing.T) {
	s := NewSeq([]any{1, 2, 3})

	runs := 0
	NewEffect(func() {
		runs++
		s.Get(2) // the index about to be popped off
	}, EffectOptions{})

	assert.Equal(t, 1, runs)

	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, runs, "popping the tracked tail index must re-run the effect")
	assert.Equal(t, 2, s.Len())
}

func TestSeqIncludesTracksAllIndicesAndRetriesUnwrapped(t *testing.T) {
	inner := NewMap(map[any]any{"id": 1})
	s := NewSeq([]any{1, ToRaw(inner), 3})

	// Get(1) returns the cached wrapper, so t1 is the *same* wrapper as inner
	t1 := s.Get(1)
	assert.Same(t, inner, t1.(*Map))

	assert.True(t, s.Includes(t1))
	assert.Equal(t, 1, s.IndexOf(t1))

	runs := 0
	NewEffect(func() {
		runs++
		s.Includes(42)
	}, EffectOptions{})
	assert.Equal(t, 1, runs)

	// changing any tracked index (not just one that matched) must re-run,
	// since a search depends on the whole sequence.
	s.Set(0, 99)
	assert.Equal(t, 2, runs)
}

func TestSeqReadonlyBlocksWrites(t *testing.T) {
	var warned []string
	SetDebug(true)
	SetWarnHandler(func(msg string) { warned = append(warned, msg) })
	defer func() {
		SetDebug(false)
		SetWarnHandler(nil)
	}()

	ro := NewReadonlySeq([]any{1, 2, 3})
	ro.Set(0, 99)
	assert.Equal(t, 1, ro.Get(0))
	assert.NotEmpty(t, warned)

	ro.Push(4)
	assert.Equal(t, 3, ro.Len())
}

func TestSeqGetDoesNotAutoUnwrapCell(t *testing.T) {
	c := NewCell(5)
	s := NewSeq([]any{c})

	v := s.Get(0)
	assert.True(t, IsCell(v), "sequences require an explicit cell unwrap, unlike maps")
}

func TestSeqSetLenAndDelete(t *testing.T) {
	s := NewSeq([]any{1, 2, 3, 4})

	runs := 0
	NewEffect(func() {
		runs++
		s.Len()
	}, EffectOptions{})
	assert.Equal(t, 1, runs)

	s.SetLen(2)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, s.Len())

	s2 := NewSeq([]any{1, 2, 3})
	assert.True(t, s2.Delete(1))
	assert.Equal(t, []any{1, 3}, s2.Raw())
}
