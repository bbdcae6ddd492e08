package reactor

import "github.com/arclight-go/reactor/internal"

// Effect is a record describing one tracked computation: the user function,
// whether it is still active, the dep sets it is currently registered in,
// and its options. It is also a disposal scope - effects and deriveds
// created inside its run are torn down when it is re-run or stopped.
type Effect = internal.Effect

// EffectOptions configures an Effect.
type EffectOptions = internal.EffectOptions

// NewEffect creates a reactive effect. Unless opts.Lazy is set, it runs fn
// once immediately, tracking every observable read during that run; each
// subsequent change to a tracked slot re-runs fn (or, if opts.Scheduler is
// set, hands control to the scheduler instead of re-running directly).
func NewEffect(fn func(), opts EffectOptions) *Effect {
	return internal.NewEffect(fn, opts)
}

// Stop deactivates e: cleans up its graph edges, disposes any nested
// effects/deriveds it created, and fires its OnStop hook. Idempotent; a
// stopped effect is never invoked again by Trigger, though a direct re-run
// with no scheduler still falls through to fn.
func Stop(e *Effect) { internal.Stop(e) }

// Invoke runs e directly: a no-op while e is already running, a plain call
// to fn once e is stopped (unless it has a scheduler), otherwise a tracked
// re-run.
func Invoke(e *Effect) { internal.Invoke(e) }

// OnCleanup registers a function to run before the current effect re-runs,
// and once more when it is stopped.
func OnCleanup(fn func()) { internal.OnCleanup(fn) }

// PauseTracking, EnableTracking, and ResetTracking give scoped opt-out for
// code that must read observables without subscribing the current effect.
func PauseTracking()  { internal.PauseTracking() }
func EnableTracking() { internal.EnableTracking() }
func ResetTracking()  { internal.ResetTracking() }

// Untrack runs fn with tracking paused for its duration and returns its
// result, restoring the previous tracking state afterward.
func Untrack[T any](fn func() T) T {
	internal.PauseTracking()
	defer internal.ResetTracking()
	return fn()
}

// Track and Trigger are the low-level primitives the observable wrappers
// build on; exposed so a caller can anchor dependencies on values this
// package does not itself wrap.
func Track(target Target, op Operation, key any) {
	internal.Track(target, op, key)
}

func Trigger(target Target, op Operation, key, newVal, oldVal any) {
	internal.Trigger(target, op, key, newVal, oldVal)
}

// Target is anything that can anchor dep sets in the tracking graph. It is
// implemented by the internal backing records of Map, Seq, Cell and Derived,
// not by those types themselves, and its Kind method returns a type from this
// module's internal package, so only types inside this module implement it.
type Target = internal.Target
