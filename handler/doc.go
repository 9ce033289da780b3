// Package handler implements the filtering dispatcher that sits
// between a logging facade and the process's output streams.
//
// ConsoleHandler owns the filter configuration: a global minimum
// level plus per-target overrides (exact string match, last entry
// wins). Accepted records are rendered by the formatter package and
// routed by a fixed policy: WarnLevel and above to the error stream,
// everything below to the standard stream. PanicLevel records bypass
// the filter entirely so that no configuration can suppress the final
// message of a crashing process.
//
// Everything is synchronous. A log call runs the filter check, the
// timestamp capture, the render, and the write on the caller's own
// goroutine; the only blocking is the destination's own write call.
// Write failures are counted in Stats and otherwise swallowed —
// logging is best-effort and never surfaces an error to the call site.
//
// SlogHandler adapts the Handler interface to log/slog.Handler,
// allowing prettylog to serve as a drop-in backend for the standard
// library facade. The zapbridge package does the same for zap.
package handler
