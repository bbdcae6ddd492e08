package reactor

import "github.com/arclight-go/reactor/internal"

// Batch defers Trigger's notification delivery until fn returns, coalescing
// every mutation made during fn into one effect-rerun pass per affected
// effect. Nested Batch calls only flush once the outermost call completes.
func Batch(fn func()) { internal.Batch(fn) }
