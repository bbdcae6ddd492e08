package internal

import (
	"fmt"
	"os"
	"sync/atomic"
)

// debugEnabled gates both Warn and the OnTrack/OnTrigger effect hooks: all
// three are silent until SetDebug(true) is called.
var debugEnabled atomic.Bool

func SetDebug(on bool) { debugEnabled.Store(on) }
func DebugEnabled() bool { return debugEnabled.Load() }

var warnHandler atomic.Pointer[func(string)]

func init() {
	def := func(msg string) { fmt.Fprintln(os.Stderr, msg) }
	warnHandler.Store(&def)
}

func SetWarnHandler(fn func(string)) {
	if fn == nil {
		def := func(string) {}
		warnHandler.Store(&def)
		return
	}
	warnHandler.Store(&fn)
}

// Warn emits a non-fatal user-error warning. A no-op unless debug mode is on.
func Warn(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	h := warnHandler.Load()
	(*h)(fmt.Sprintf(format, args...))
}
