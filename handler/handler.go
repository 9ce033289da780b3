package handler

import (
	"github.com/prettylog/prettylog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log record
	Handle(record *core.Record) error

	// Close flushes pending output and releases resources
	Close() error
}

// Filter is an optional interface implemented by handlers that decide
// up front whether a record would be emitted. Accepts must be
// side-effect-free and cheap so that rejected records cost only a
// comparison plus a lookup.
type Filter interface {
	Accepts(level core.Level, target string) bool
}

// TargetOverride pairs a target name with its own minimum level,
// overriding the handler's global minimum for records whose target
// matches the name exactly. When several overrides name the same
// target, the last one wins.
type TargetOverride struct {
	Target string
	Min    core.Level
}
