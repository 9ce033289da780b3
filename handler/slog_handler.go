package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prettylog/prettylog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// prettylog Handler. This allows prettylog to serve as the backend
// for log/slog call sites.
//
// Groups become the record target: WithGroup("db") routes records as
// target "db", nested groups join with dots ("db.pool"). Attributes
// are folded into the message text as " key=value" suffixes, since
// the rendered line format carries no structured fields.
type SlogHandler struct {
	handler Handler
	filter  Filter // non-nil when handler implements Filter
	target  string
	attrs   []slog.Attr
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. target is the initial record target; call sites may extend
// it via WithGroup.
func NewSlogHandler(h Handler, target string) *SlogHandler {
	s := &SlogHandler{
		handler: h,
		target:  target,
	}
	s.filter, _ = h.(Filter)
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	if s.filter == nil {
		return true
	}
	return s.filter.Accepts(slogLevelToCore(level), s.target)
}

// Handle converts a slog.Record into a core.Record and passes it to
// the wrapped handler. The slog record's own timestamp is ignored;
// the dispatcher stamps render time.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	r := core.GetRecord()
	r.Level = slogLevelToCore(record.Level)
	r.Target = s.target

	if len(s.attrs) == 0 && record.NumAttrs() == 0 {
		r.Message = record.Message
	} else {
		var b strings.Builder
		b.WriteString(record.Message)
		for _, a := range s.attrs {
			appendAttr(&b, a)
		}
		record.Attrs(func(a slog.Attr) bool {
			appendAttr(&b, a)
			return true
		})
		r.Message = b.String()
	}

	err := s.handler.Handle(r)
	core.PutRecord(r)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	newAttrs = append(newAttrs, attrs...)
	return &SlogHandler{
		handler: s.handler,
		filter:  s.filter,
		target:  s.target,
		attrs:   newAttrs,
	}
}

// WithGroup returns a new SlogHandler whose target is extended by the
// group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	target := name
	if s.target != "" {
		target = s.target + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		filter:  s.filter,
		target:  target,
		attrs:   s.attrs,
	}
}

func appendAttr(b *strings.Builder, a slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.Resolve().String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
