package reactor

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	t.Run("runs on change with cleanup", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)
		log = append(log, fmt.Sprintf("%d", count.Get()))

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))

			OnCleanup(func() {
				log = append(log, "cleanup")
			})
		}, EffectOptions{})

		count.Set(10)
		log = append(log, fmt.Sprintf("%d", count.Get()))
		count.Set(20)

		assert.Equal(t, []string{
			"0",
			"changed 0",
			"cleanup",
			"changed 10",
			"10",
			"cleanup",
			"changed 20",
		}, log)
	})

	t.Run("write of an equal value does not trigger", func(t *testing.T) {
		runs := 0
		c := NewCell(5)
		NewEffect(func() {
			c.Get()
			runs++
		}, EffectOptions{})

		c.Set(5)
		assert.Equal(t, 1, runs)

		c.Set(6)
		assert.Equal(t, 2, runs)
	})

	t.Run("NaN compares equal to NaN", func(t *testing.T) {
		runs := 0
		c := NewCell(math.NaN())
		NewEffect(func() {
			c.Get()
			runs++
		}, EffectOptions{})

		c.Set(math.NaN())
		assert.Equal(t, 1, runs)
	})

	t.Run("IsCell marker", func(t *testing.T) {
		c := NewCell("x")
		assert.True(t, IsCell(c))
		assert.False(t, IsCell("x"))
		assert.False(t, IsCell(NewMap(nil)))
	})

	t.Run("self-mutation inside its own effect does not loop", func(t *testing.T) {
		c := NewCell(0)
		runs := 0
		NewEffect(func() {
			runs++
			v := c.Get()
			if v < 1 {
				c.Set(v + 1)
				c.Get()
			}
		}, EffectOptions{})

		assert.Equal(t, 1, runs)
		assert.Equal(t, 1, c.Get())
	})
}
