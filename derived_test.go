package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedMemoizesUntilDependencyChanges(t *testing.T) {
	computes := 0
	a := NewCell(1)
	b := NewCell(2)

	sum := NewDerived(func() int {
		computes++
		return a.Get() + b.Get()
	})

	assert.Equal(t, 3, sum.Get())
	assert.Equal(t, 3, sum.Get())
	assert.Equal(t, 1, computes, "a second read with no dependency change must not recompute")

	a.Set(10)
	assert.Equal(t, 1, computes, "changing a dependency marks dirty but does not eagerly recompute")
	assert.Equal(t, 12, sum.Get())
	assert.Equal(t, 2, computes)
}

func TestDerivedPropagatesToOuterEffect(t *testing.T) {
	a := NewCell(1)
	sum := NewDerived(func() int { return a.Get() * 2 })

	runs := 0
	var seen int
	NewEffect(func() {
		runs++
		seen = sum.Get()
	}, EffectOptions{})

	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, seen)

	a.Set(5)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 10, seen)
}

func TestDerivedOfDerivedChain(t *testing.T) {
	a := NewCell(1)
	doubled := NewDerived(func() int { return a.Get() * 2 })
	quadrupled := NewDerived(func() int { return doubled.Get() * 2 })

	assert.Equal(t, 4, quadrupled.Get())
	a.Set(2)
	assert.Equal(t, 8, quadrupled.Get())
}

func TestWritableDerivedDelegatesSet(t *testing.T) {
	a := NewCell(1)
	doubled := NewWritableDerived(
		func() int { return a.Get() * 2 },
		func(v int) { a.Set(v / 2) },
	)

	assert.Equal(t, 2, doubled.Get())
	doubled.Set(10)
	assert.Equal(t, 5, a.Get())
	assert.Equal(t, 10, doubled.Get())
}

func TestReadOnlyDerivedSetWarns(t *testing.T) {
	var warned []string
	SetDebug(true)
	SetWarnHandler(func(msg string) { warned = append(warned, msg) })
	defer func() {
		SetDebug(false)
		SetWarnHandler(nil)
	}()

	d := NewDerived(func() int { return 1 })
	d.Set(2)
	assert.NotEmpty(t, warned)
}

func TestDerivedDisposeStopsRecomputing(t *testing.T) {
	a := NewCell(1)
	computes := 0
	d := NewDerived(func() int {
		computes++
		return a.Get()
	})

	assert.Equal(t, 1, d.Get())
	d.Dispose()

	a.Set(2)
	assert.Equal(t, 1, d.Get(), "a disposed derived keeps returning its last cached value")
	assert.Equal(t, 1, computes)
}
