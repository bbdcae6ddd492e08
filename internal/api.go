package internal

// This file is the package-level facade over the active goroutine's
// Runtime: every call here resolves the caller's Runtime via GetRuntime and
// delegates to it, so callers never have to look up or pass one explicitly.

func Track(target Target, op Operation, key any) {
	GetRuntime().Track(target, op, key)
}

func Trigger(target Target, op Operation, key, newVal, oldVal any) {
	GetRuntime().Trigger(target, op, key, newVal, oldVal)
}

func PauseTracking()  { GetRuntime().PauseTracking() }
func EnableTracking() { GetRuntime().EnableTracking() }
func ResetTracking()  { GetRuntime().ResetTracking() }

func NewEffect(fn func(), opts EffectOptions) *Effect {
	return GetRuntime().NewEffect(fn, opts)
}

func Invoke(e *Effect) { GetRuntime().Invoke(e) }
func Stop(e *Effect)   { GetRuntime().Stop(e) }

func Batch(fn func()) { GetRuntime().Batch(fn) }

func CurrentOwner() *Owner { return GetRuntime().CurrentOwner() }

func RunInOwner(o *Owner, fn func()) { o.Run(GetRuntime(), fn) }

func NewChildOwner() *Owner { return NewOwner(GetRuntime().CurrentOwner()) }

func OnCleanup(fn func()) { GetRuntime().OnCleanup(fn) }
