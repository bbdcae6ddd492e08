package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerDisposeRunsCleanupsInReverseOrder(t *testing.T) {
	var log []string
	o := NewOwner()
	o.Run(func() {
		o.OnCleanup(func() { log = append(log, "first") })
		o.OnCleanup(func() { log = append(log, "second") })
	})

	o.Dispose()
	assert.Equal(t, []string{"second", "first"}, log)
}

func TestOwnerDisposeIsIdempotent(t *testing.T) {
	calls := 0
	o := NewOwner()
	o.OnCleanup(func() { calls++ })
	o.Dispose()
	o.Dispose()
	assert.Equal(t, 1, calls)
}

func TestOwnerDisposeTearsDownNestedEffects(t *testing.T) {
	c := NewCell(0)
	runs := 0

	o := NewOwner()
	o.Run(func() {
		NewEffect(func() {
			runs++
			c.Get()
		}, EffectOptions{})
	})

	assert.Equal(t, 1, runs)
	o.Dispose()

	c.Set(1)
	assert.Equal(t, 1, runs, "an effect created under a disposed owner must no longer be live")
}
