// Package logger is the public API of prettylog. Most users only
// need to import this package.
//
// A single call wires everything up: the filtering dispatcher on
// stdout/stderr, the log/slog default backend, and the panic trap
// state. Records at WARN and above go to stderr, the rest to stdout,
// each rendered as
//
//	MM/DD/YYYY at HH:MM:SS.CC [LEVEL] message
//
// Setup is one Init plus one deferred TrapPanic:
//
//	func main() {
//	    logger.Init(logger.InfoLevel, []handler.TargetOverride{
//	        {Target: "db", Min: logger.TraceLevel},
//	    })
//	    defer logger.TrapPanic()
//
//	    logger.Info("ready")
//	    slog.Info("also ready") // same pipeline via the slog bridge
//	}
//
// With the trap in place a panic is rendered as a PANIC line on
// stderr, flushed, and then re-raised so the runtime still prints its
// stack trace and aborts with the usual exit status. PANIC lines
// bypass the level filter; no configuration can suppress them.
//
// The package-level functions log with an empty target, governed by
// the global minimum. New("db") returns a Logger bound to a target so
// per-target overrides apply. Filter state is immutable after Init
// and reads take no locks, so concurrent logging needs no further
// synchronization.
package logger
