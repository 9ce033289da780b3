package handler

import (
	"io"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/formatter"
)

// ConsoleHandler is the filtering dispatcher. It owns the global
// minimum level and the per-target overrides, decides pass/drop for
// every incoming record, renders accepted records, and routes them to
// one of two output streams: WarnLevel and above go to the error
// stream, everything below to the standard stream. The routing is
// fixed, not configurable.
//
// The filter configuration is immutable after construction, so the
// read path needs no locking; the streams serialize their own writes.
type ConsoleHandler struct {
	out *Stream
	err *Stream

	// One formatter per stream so color follows each destination's
	// own capability.
	outFormatter *formatter.TextFormatter
	errFormatter *formatter.TextFormatter

	min       core.Level
	overrides []TargetOverride
	floor     core.Level // lowest threshold across global min and overrides

	stats *Stats
}

var (
	_ Handler = (*ConsoleHandler)(nil)
	_ Filter  = (*ConsoleHandler)(nil)
)

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Out receives records below WarnLevel (default: os.Stdout)
	Out io.Writer
	// Err receives records at WarnLevel and above (default: os.Stderr)
	Err io.Writer
	// OutColor declares that Out renders ANSI color sequences
	OutColor bool
	// ErrColor declares that Err renders ANSI color sequences
	ErrColor bool
	// Min is the global minimum level (default: InfoLevel is NOT
	// assumed; the zero value TraceLevel passes everything)
	Min core.Level
	// Overrides replaces Min for records whose target matches exactly.
	// Later entries win over earlier ones for the same target.
	Overrides []TargetOverride
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}

	// Copy the override slice so later mutation by the caller cannot
	// change the filter.
	overrides := make([]TargetOverride, len(cfg.Overrides))
	copy(overrides, cfg.Overrides)

	floor := cfg.Min
	for _, o := range overrides {
		if o.Min < floor {
			floor = o.Min
		}
	}

	return &ConsoleHandler{
		out:          NewStream(cfg.Out, cfg.OutColor),
		err:          NewStream(cfg.Err, cfg.ErrColor),
		outFormatter: formatter.NewTextFormatter(formatter.Config{Color: cfg.OutColor}),
		errFormatter: formatter.NewTextFormatter(formatter.Config{Color: cfg.ErrColor}),
		min:          cfg.Min,
		overrides:    overrides,
		floor:        floor,
		stats:        NewStats(),
	}
}

// threshold returns the minimum level governing records with the
// given target: the last matching override, else the global minimum.
func (h *ConsoleHandler) threshold(target string) core.Level {
	min := h.min
	for _, o := range h.overrides {
		if o.Target == target {
			min = o.Min
		}
	}
	return min
}

// Accepts reports whether a record at the given level and target
// would be emitted. It performs no timestamp capture, no formatting,
// and no allocation.
//
// PanicLevel is accepted unconditionally. Its rank already places it
// above every ordinary threshold, but the bypass is explicit so that
// no configuration can ever suppress a fatal message.
func (h *ConsoleHandler) Accepts(level core.Level, target string) bool {
	if level >= core.PanicLevel {
		return true
	}
	return level >= h.threshold(target)
}

// Enabled reports whether the level could pass any configured
// threshold, regardless of target. Facade bridges use it for their
// coarse, target-free level check before the per-record Accepts.
func (h *ConsoleHandler) Enabled(level core.Level) bool {
	return level >= h.floor || level >= core.PanicLevel
}

// Handle filters, renders, and writes a record. The record's Time is
// stamped here, at render time, so the line reflects when it was
// emitted rather than when the call site executed.
func (h *ConsoleHandler) Handle(record *core.Record) error {
	if !h.Accepts(record.Level, record.Target) {
		h.stats.IncrementFiltered(record.Level)
		return nil
	}

	record.Time = time.Now()

	stream, f := h.route(record.Level)
	if err := f.FormatTo(record, stream); err != nil {
		h.stats.IncrementWriteErrors()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// Log filters, renders, and writes in one call. Errors from the
// underlying stream are swallowed: logging is fire-and-forget and
// must never abort an otherwise successful operation.
func (h *ConsoleHandler) Log(level core.Level, target, message string) {
	if !h.Accepts(level, target) {
		h.stats.IncrementFiltered(level)
		return
	}

	record := core.GetRecord()
	record.Level = level
	record.Target = target
	record.Message = message

	_ = h.Handle(record)
	core.PutRecord(record)
}

// route returns the stream and formatter for a level. WarnLevel and
// above go to the error stream.
func (h *ConsoleHandler) route(level core.Level) (*Stream, *formatter.TextFormatter) {
	if level >= core.WarnLevel {
		return h.err, h.errFormatter
	}
	return h.out, h.outFormatter
}

// ErrStream returns the error stream. The panic path writes its final
// line here and flushes it before the process aborts.
func (h *ConsoleHandler) ErrStream() *Stream {
	return h.err
}

// Flush forces buffered output through on both streams.
func (h *ConsoleHandler) Flush() error {
	return multierr.Append(h.out.Flush(), h.err.Flush())
}

// Stats returns a snapshot of dispatch statistics.
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes both streams. The handler holds no other resources.
func (h *ConsoleHandler) Close() error {
	return h.Flush()
}
