package reactor

import "github.com/arclight-go/reactor/internal"

// SetDebug toggles debug-mode diagnostics: user-error warnings (writing to
// a readonly wrapper or a read-only derived, assigning a value of the wrong
// type into a cell) and the OnTrack/OnTrigger hooks only fire while debug
// mode is on. Wrapping a non-aggregate returns it unchanged with no warning.
func SetDebug(on bool) { internal.SetDebug(on) }

// DebugEnabled reports the current debug-mode state.
func DebugEnabled() bool { return internal.DebugEnabled() }

// SetWarnHandler overrides where debug-mode warnings are delivered. The
// default writes to stderr. Passing nil silences warnings entirely.
func SetWarnHandler(fn func(string)) { internal.SetWarnHandler(fn) }
