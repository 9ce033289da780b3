package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/prettylog/prettylog/core"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// handling latches once the fatal path has begun. A second fault
// while the first is being handled skips formatting entirely and
// falls through to the runtime's default abort, so the trap can
// never loop.
var handling atomic.Bool

// TrapPanic renders a panic as a PANIC line on the error stream,
// flushes it, and re-raises the panic so the runtime's normal abort
// semantics (stack trace, exit status) still apply. Defer it at the
// top of main, directly after Init:
//
//	func main() {
//	    logger.Init(logger.InfoLevel, nil)
//	    defer logger.TrapPanic()
//	    ...
//	}
//
// Goroutines crash the process without unwinding main's defers, so a
// goroutine whose failure should be formatted needs its own deferred
// TrapPanic.
//
// The rendered line always appears regardless of the configured
// minimum level: PANIC bypasses the filter.
func TrapPanic() {
	v := recover()
	if v == nil {
		return
	}
	if !handling.CompareAndSwap(false, true) {
		panic(v)
	}

	msg := panicMessage(v)
	if loc := panicLocation(); loc != "" {
		msg = msg + " (" + loc + ")"
	}

	h := Default()
	h.Log(core.PanicLevel, "panic", msg)
	_ = h.Flush()

	panic(v)
}

// panicMessage extracts human-readable text from a panic value.
func panicMessage(v interface{}) string {
	switch m := v.(type) {
	case error:
		return m.Error()
	case string:
		return m
	default:
		return fmt.Sprintf("%v", m)
	}
}

// panicLocation walks the current stack for the frame that raised the
// panic: the first non-runtime frame past the innermost gopanic.
// Returns "" when no such frame is found.
func panicLocation() string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	seenPanic := false
	for {
		fr, more := frames.Next()
		switch {
		case fr.Function == "runtime.gopanic":
			seenPanic = true
		case seenPanic && !strings.HasPrefix(fr.Function, "runtime."):
			if fr.File == "" {
				return ""
			}
			return fmt.Sprintf("%s:%d", filepath.Base(fr.File), fr.Line)
		}
		if !more {
			return ""
		}
	}
}
