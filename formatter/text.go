package formatter

import (
	"bytes"
	"io"

	"github.com/prettylog/prettylog/core"
)

// timestampLayout renders wall-clock time as
// "MM/DD/YYYY at HH:MM:SS.CC". The fractional field uses zeros, so Go
// truncates hundredths rather than rounding them; ".99x" never shows
// up as ".00" of the next second.
const timestampLayout = "01/02/2006 at 15:04:05.00"

// ANSI escape sequences for level coloring.
const (
	ansiDim     = "\033[2m"
	ansiCyan    = "\033[36m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiRed     = "\033[31m"
	ansiBoldRed = "\033[1;31m"
	ansiReset   = "\033[0m"
)

// pre-formatted tag strings to avoid multiple WriteString calls
var plainTags = [...]string{
	core.TraceLevel: " [TRACE] ",
	core.DebugLevel: " [DEBUG] ",
	core.InfoLevel:  " [INFO ] ",
	core.WarnLevel:  " [WARN ] ",
	core.ErrorLevel: " [ERROR] ",
	core.PanicLevel: " [PANIC] ",
}

// colorTags carry the same five-character bracketed tags wrapped in the
// per-level color sequence, so spacing is identical with color on or off.
var colorTags = [...]string{
	core.TraceLevel: " " + ansiDim + "[TRACE]" + ansiReset + " ",
	core.DebugLevel: " " + ansiCyan + "[DEBUG]" + ansiReset + " ",
	core.InfoLevel:  " " + ansiGreen + "[INFO ]" + ansiReset + " ",
	core.WarnLevel:  " " + ansiYellow + "[WARN ]" + ansiReset + " ",
	core.ErrorLevel: " " + ansiRed + "[ERROR]" + ansiReset + " ",
	core.PanicLevel: " " + ansiBoldRed + "[PANIC]" + ansiReset + " ",
}

// TextFormatter renders log records as single pretty-printed lines:
// a timestamp, a fixed-width bracketed level tag, and the message.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	if f.Color {
		buf.WriteString(ansiDim)
		buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), timestampLayout))
		buf.WriteString(ansiReset)
	} else {
		buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), timestampLayout))
	}

	// Level - use pre-formatted tag string
	tags := &plainTags
	if f.Color {
		tags = &colorTags
	}
	if int(record.Level) >= 0 && int(record.Level) < len(tags) {
		buf.WriteString(tags[record.Level])
	} else {
		buf.WriteString(" [?????] ")
	}

	// Message
	buf.WriteString(record.Message)
	buf.WriteByte('\n')
}
