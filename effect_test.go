package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectStopDeactivatesButFnStillRunsDirectly(t *testing.T) {
	c := NewCell(0)
	runs := 0
	e := NewEffect(func() {
		runs++
		c.Get()
	}, EffectOptions{})

	assert.Equal(t, 1, runs)
	Stop(e)

	c.Set(1)
	assert.Equal(t, 1, runs, "a stopped effect is not re-run by Trigger")

	// a direct Invoke (no scheduler) still falls through to fn per spec 4.3
	Invoke(e)
	assert.Equal(t, 2, runs)
}

func TestEffectLazyDoesNotRunUntilInvoked(t *testing.T) {
	runs := 0
	e := NewEffect(func() { runs++ }, EffectOptions{Lazy: true})
	assert.Equal(t, 0, runs)
	Invoke(e)
	assert.Equal(t, 1, runs)
}

func TestEffectSchedulerReceivesControlInsteadOfRerunning(t *testing.T) {
	c := NewCell(0)
	direct := 0
	scheduled := 0

	NewEffect(func() {
		direct++
		c.Get()
	}, EffectOptions{Scheduler: func() { scheduled++ }})

	assert.Equal(t, 1, direct)
	c.Set(1)
	assert.Equal(t, 1, direct, "a scheduled effect is not re-run directly by Trigger")
	assert.Equal(t, 1, scheduled)
}

func TestOnTrackAndOnTriggerHooksAreSilentWithDebugOff(t *testing.T) {
	c := NewCell(0)
	var tracked, triggered []Operation

	NewEffect(func() {
		c.Get()
	}, EffectOptions{
		OnTrack:   func(ev Event) { tracked = append(tracked, ev.Type) },
		OnTrigger: func(ev Event) { triggered = append(triggered, ev.Type) },
	})

	assert.Empty(t, tracked)

	c.Set(1)
	assert.Empty(t, triggered)
}

func TestOnTrackAndOnTriggerHooksFireWithDebugOn(t *testing.T) {
	SetDebug(true)
	defer SetDebug(false)

	c := NewCell(0)
	var tracked, triggered []Operation

	NewEffect(func() {
		c.Get()
	}, EffectOptions{
		OnTrack:   func(ev Event) { tracked = append(tracked, ev.Type) },
		OnTrigger: func(ev Event) { triggered = append(triggered, ev.Type) },
	})

	assert.Equal(t, []Operation{OpGet}, tracked)

	c.Set(1)
	assert.Equal(t, []Operation{OpSet}, triggered)
}

func TestReentrantEffectDoesNotRecurse(t *testing.T) {
	c := NewCell(0)
	runs := 0
	var e *Effect
	e = NewEffect(func() {
		runs++
		if c.Get() == 0 {
			// Invoking the currently-running effect from inside itself must
			// be a no-op, not unbounded recursion.
			Invoke(e)
		}
	}, EffectOptions{Lazy: true})
	Invoke(e)

	assert.Equal(t, 1, runs)
}

func TestUntrackSuppressesTracking(t *testing.T) {
	c := NewCell(0)
	runs := 0
	NewEffect(func() {
		runs++
		Untrack(func() int { return c.Get() })
	}, EffectOptions{})

	assert.Equal(t, 1, runs)
	c.Set(1)
	assert.Equal(t, 1, runs, "a read inside Untrack must not subscribe the effect")
}

func TestOnCleanupRunsBeforeRerunAndOnStop(t *testing.T) {
	c := NewCell(0)
	var log []string

	e := NewEffect(func() {
		v := c.Get()
		OnCleanup(func() { log = append(log, "cleanup") })
		_ = v
	}, EffectOptions{})

	assert.Empty(t, log)
	c.Set(1)
	assert.Equal(t, []string{"cleanup"}, log)

	Stop(e)
	assert.Equal(t, []string{"cleanup", "cleanup"}, log)
}

func TestOwnerOnErrorCatchesPanicFromEffect(t *testing.T) {
	var caught any
	o := NewOwner()
	o.OnError(func(r any) { caught = r })

	o.Run(func() {
		NewEffect(func() {
			panic("boom")
		}, EffectOptions{})
	})

	assert.Equal(t, "boom", caught)
}

func TestEffectPanicPropagatesWithoutCatcher(t *testing.T) {
	assert.Panics(t, func() {
		NewEffect(func() {
			panic("uncaught")
		}, EffectOptions{})
	})
}
