package logger

import (
	"io"
	"log/slog"
	"sync"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/handler"
)

var (
	defaultHandler *handler.ConsoleHandler
	defaultMu      sync.RWMutex
)

func init() {
	// A plain stdout/stderr handler so package-level calls work
	// before Init. Init replaces it.
	defaultHandler = handler.NewConsoleHandler(handler.ConsoleConfig{
		Min: core.InfoLevel,
	})
}

// Config carries the options Init does not cover: explicit streams
// (for tests and embedders) and their color capabilities.
type Config struct {
	// Min is the global minimum level
	Min core.Level
	// Overrides replaces Min per target (exact match, last wins)
	Overrides []handler.TargetOverride
	// Stdout receives records below WarnLevel (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives records at WarnLevel and above (default: os.Stderr)
	Stderr io.Writer
	// StdoutColor and StderrColor declare whether each destination
	// renders ANSI color sequences. Whether a destination is a
	// color-capable terminal is a fact about the environment; the
	// caller supplies it, this package never detects it.
	StdoutColor bool
	StderrColor bool
}

// Init is the single setup entry point. It builds a console handler
// with the given global minimum and per-target overrides, installs it
// as the package default and as the log/slog default backend, and
// resets the panic trap. Pair it with a deferred TrapPanic at the top
// of main so fatal errors are rendered through the same pipeline:
//
//	logger.Init(logger.InfoLevel, nil)
//	defer logger.TrapPanic()
//
// Init is meant to be called once, early, before concurrent logging
// begins; the behavior of concurrent re-initialization is undefined.
func Init(min core.Level, overrides []handler.TargetOverride) *handler.ConsoleHandler {
	return InitConfig(Config{Min: min, Overrides: overrides})
}

// InitConfig is Init with explicit streams and color capabilities.
func InitConfig(cfg Config) *handler.ConsoleHandler {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Out:       cfg.Stdout,
		Err:       cfg.Stderr,
		OutColor:  cfg.StdoutColor,
		ErrColor:  cfg.StderrColor,
		Min:       cfg.Min,
		Overrides: cfg.Overrides,
	})

	SetDefault(h)
	slog.SetDefault(slog.New(handler.NewSlogHandler(h, "")))
	handling.Store(false)

	return h
}

// Default returns the default console handler
func Default() *handler.ConsoleHandler {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultHandler
}

// SetDefault sets the default console handler
func SetDefault(h *handler.ConsoleHandler) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultHandler = h
}

// Package-level convenience functions using the default handler with
// an empty target.

var pkgLogger = &Logger{}

// Trace logs a trace message using the default handler
func Trace(msg string) {
	pkgLogger.Trace(msg)
}

// Debug logs a debug message using the default handler
func Debug(msg string) {
	pkgLogger.Debug(msg)
}

// Info logs an info message using the default handler
func Info(msg string) {
	pkgLogger.Info(msg)
}

// Warn logs a warning message using the default handler
func Warn(msg string) {
	pkgLogger.Warn(msg)
}

// Error logs an error message using the default handler
func Error(msg string) {
	pkgLogger.Error(msg)
}

// Fatal logs through the fatal path using the default handler and exits
func Fatal(msg string) {
	pkgLogger.Fatal(msg)
}

// Panic logs through the fatal path using the default handler and panics
func Panic(msg string) {
	pkgLogger.Panic(msg)
}

// Tracef logs a formatted trace message using the default handler
func Tracef(format string, args ...interface{}) {
	pkgLogger.Tracef(format, args...)
}

// Debugf logs a formatted debug message using the default handler
func Debugf(format string, args ...interface{}) {
	pkgLogger.Debugf(format, args...)
}

// Infof logs a formatted info message using the default handler
func Infof(format string, args ...interface{}) {
	pkgLogger.Infof(format, args...)
}

// Warnf logs a formatted warning message using the default handler
func Warnf(format string, args ...interface{}) {
	pkgLogger.Warnf(format, args...)
}

// Errorf logs a formatted error message using the default handler
func Errorf(format string, args ...interface{}) {
	pkgLogger.Errorf(format, args...)
}

// Fatalf logs a formatted message through the fatal path and exits
func Fatalf(format string, args ...interface{}) {
	pkgLogger.Fatalf(format, args...)
}

// Panicf logs a formatted message through the fatal path and panics
func Panicf(format string, args ...interface{}) {
	pkgLogger.Panicf(format, args...)
}
