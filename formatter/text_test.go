package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prettylog/prettylog/core"
)

func TestTextFormatter_Layout(t *testing.T) {
	f := NewTextFormatter(Config{})

	record := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 5, 7, 450_000_000, time.UTC),
		Level:   core.InfoLevel,
		Target:  "app",
		Message: "test message",
	}

	result, err := f.Format(record)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "02/18/2026 at 13:05:07.45 [INFO ] test message\n"
	if string(result) != want {
		t.Errorf("Format() = %q, want %q", result, want)
	}
}

func TestTextFormatter_TruncatesHundredths(t *testing.T) {
	f := NewTextFormatter(Config{})

	// 999,999,999ns is .99 when truncated; rounding would spill into
	// the next second and show .00.
	record := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 5, 7, 999_999_999, time.UTC),
		Level:   core.DebugLevel,
		Message: "almost there",
	}

	result, err := f.Format(record)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.HasPrefix(string(result), "02/18/2026 at 13:05:07.99 ") {
		t.Errorf("Expected truncated '.99' timestamp, got: %s", result)
	}
}

func TestTextFormatter_TagWidth(t *testing.T) {
	f := NewTextFormatter(Config{})

	levels := []core.Level{
		core.TraceLevel,
		core.DebugLevel,
		core.InfoLevel,
		core.WarnLevel,
		core.ErrorLevel,
		core.PanicLevel,
	}

	for _, level := range levels {
		record := &core.Record{
			Time:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Level:   level,
			Message: "msg",
		}

		result, err := f.Format(record)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}

		output := string(result)
		open := strings.IndexByte(output, '[')
		closing := strings.IndexByte(output, ']')
		if open < 0 || closing < 0 {
			t.Fatalf("No bracketed tag in output: %q", output)
		}
		if width := closing - open - 1; width != 5 {
			t.Errorf("Level %v: tag field width = %d, want 5 (output %q)", level, width, output)
		}
	}
}

func TestTextFormatter_Idempotent(t *testing.T) {
	f := NewTextFormatter(Config{})

	record := &core.Record{
		Time:    time.Date(2026, 7, 4, 23, 59, 59, 10_000_000, time.UTC),
		Level:   core.WarnLevel,
		Message: "same record, same bytes",
	}

	first, err := f.Format(record)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	second, err := f.Format(record)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("Rendering twice differed: %q vs %q", first, second)
	}
}

func TestTextFormatter_Color(t *testing.T) {
	f := NewTextFormatter(Config{Color: true})

	record := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 5, 7, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "boom",
	}

	result, err := f.Format(record)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "\033[31m[ERROR]\033[0m") {
		t.Errorf("Expected red ERROR tag in output, got: %q", output)
	}
	if !strings.HasPrefix(output, "\033[2m02/18/2026 at 13:05:07.00\033[0m") {
		t.Errorf("Expected dimmed timestamp prefix, got: %q", output)
	}

	// Stripping escape sequences must leave the exact plain rendering.
	plainF := NewTextFormatter(Config{})
	plain, _ := plainF.Format(record)
	if stripped := stripANSI(output); stripped != string(plain) {
		t.Errorf("Color output with codes stripped = %q, want %q", stripped, plain)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})

	record := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 5, 7, 0, time.UTC),
		Level:   core.TraceLevel,
		Message: "direct write",
	}

	var buf bytes.Buffer
	if err := f.FormatTo(record, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	want := "02/18/2026 at 13:05:07.00 [TRACE] direct write\n"
	if buf.String() != want {
		t.Errorf("FormatTo() wrote %q, want %q", buf.String(), want)
	}
}

// stripANSI removes ESC[...m sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
