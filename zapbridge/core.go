package zapbridge

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/prettylog/prettylog/core"
	"github.com/prettylog/prettylog/handler"
)

// Core routes zap entries through a prettylog ConsoleHandler. The zap
// logger's name (zap.Logger.Named) becomes the record target, so
// per-target overrides apply to named zap loggers the same way they
// apply to slog groups.
type Core struct {
	handler *handler.ConsoleHandler
	fields  []zapcore.Field
}

var (
	_ zapcore.Core         = (*Core)(nil)
	_ zapcore.LevelEnabler = (*Core)(nil)
)

// New creates a zapcore.Core backed by the given console handler.
func New(h *handler.ConsoleHandler) *Core {
	return &Core{handler: h}
}

// Enabled reports whether the level could pass any configured
// threshold. The per-target decision happens in Check, which knows
// the logger name.
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.handler.Enabled(zapLevelToCore(level))
}

// With returns a copy of the core with the given fields attached.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields = append(newFields, fields...)
	return &Core{
		handler: c.handler,
		fields:  newFields,
	}
}

// Check runs the per-target filter. The embedded-Core pattern of
// delegating to Enabled alone is not enough here: the target (logger
// name) is only available on the entry, so Check must consult the
// handler's filter itself.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.handler.Accepts(zapLevelToCore(ent.Level), ent.LoggerName) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry through the console handler. Fields are
// folded into the message text as " key=value" suffixes in key order,
// since the rendered line format carries no structured fields.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Message
	if len(c.fields) > 0 || len(fields) > 0 {
		msg = msg + foldFields(c.fields, fields)
	}

	c.handler.Log(zapLevelToCore(ent.Level), ent.LoggerName, msg)
	return nil
}

// Sync flushes both output streams. zap calls Sync after writing
// Panic and Fatal entries, so the final line reaches the destination
// before the process aborts.
func (c *Core) Sync() error {
	return c.handler.Flush()
}

func foldFields(withFields, callFields []zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range withFields {
		f.AddTo(enc)
	}
	for _, f := range callFields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%v", enc.Fields[k])
	}
	return b.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level. Panic and
// Fatal entries map to PanicLevel: they are the last line a process
// writes and must never be filterable. DPanic only aborts in
// development mode, so it stays at ErrorLevel.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.PanicLevel:
		return core.PanicLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
