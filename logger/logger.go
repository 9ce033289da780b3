package logger

import (
	"fmt"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/handler"
)

// Logger binds a target name to a console handler. The zero target
// is valid; such records are governed by the global minimum alone.
type Logger struct {
	handler *handler.ConsoleHandler // nil means use the package default
	target  string
}

// New returns a Logger for the given target backed by the package
// default handler. The handler is resolved per call, so loggers may
// be created before Init runs.
func New(target string) *Logger {
	return &Logger{target: target}
}

// NewWithHandler returns a Logger for the given target bound to a
// specific handler.
func NewWithHandler(h *handler.ConsoleHandler, target string) *Logger {
	return &Logger{handler: h, target: target}
}

func (l *Logger) h() *handler.ConsoleHandler {
	if l.handler != nil {
		return l.handler
	}
	return Default()
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	l.h().Log(level, l.target, msg)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	l.h().Log(core.TraceLevel, l.target, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.h().Log(core.DebugLevel, l.target, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.h().Log(core.InfoLevel, l.target, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.h().Log(core.WarnLevel, l.target, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.h().Log(core.ErrorLevel, l.target, msg)
}

// Fatal routes the message through the fatal path (a PANIC line on
// the error stream), flushes, and exits the process with status 1.
func (l *Logger) Fatal(msg string) {
	h := l.h()
	h.Log(core.PanicLevel, l.target, msg)
	_ = h.Flush()
	osExit(1)
}

// Panic routes the message through the fatal path, flushes, and then
// panics with msg. The panic trap recognizes that the line was
// already written and will not log it a second time.
func (l *Logger) Panic(msg string) {
	h := l.h()
	h.Log(core.PanicLevel, l.target, msg)
	_ = h.Flush()
	handling.Store(true)
	panic(msg)
}

// Tracef logs a trace message with formatting. The format arguments
// are not evaluated when the record would be filtered out.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.TraceLevel, format, args...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args...)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarnLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args...)
}

// Fatalf logs a formatted message through the fatal path and exits
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(format, args...))
}

// Panicf logs a formatted message through the fatal path and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	l.Panic(fmt.Sprintf(format, args...))
}

func (l *Logger) logf(level core.Level, format string, args ...interface{}) {
	h := l.h()
	// Filter check before Sprintf so rejected records cost only the
	// lookup, never the formatting.
	if !h.Accepts(level, l.target) {
		return
	}
	h.Log(level, l.target, fmt.Sprintf(format, args...))
}
