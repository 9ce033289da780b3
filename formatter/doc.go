// Package formatter defines how log records are rendered into lines.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// TextFormatter produces the line format
//
//	MM/DD/YYYY at HH:MM:SS.CC [LEVEL] message
//
// where the bracketed tag is always exactly five characters wide
// (space-padded for four-letter level names) and the hundredths field
// is truncated, never rounded. With Config.Color set, the timestamp is
// dimmed and the tag is wrapped in a per-level ANSI color sequence;
// spacing is byte-identical either way once the escape sequences are
// stripped.
//
// The formatter uses a pooled bytes.Buffer internally and relies on
// time.AppendFormat to avoid per-call allocations. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log
// line from permanently inflating memory usage.
package formatter
