package core

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very fine-grained diagnostic information
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// PanicLevel for messages emitted on an unrecoverable fault.
	// It is strictly the most severe level and is produced by the
	// panic path, never by ordinary logging calls.
	PanicLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// levelTags holds the display tags, space-padded to a fixed width of
// five characters so that message columns align across levels.
var levelTags = [...]string{
	TraceLevel: "TRACE",
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO ",
	WarnLevel:  "WARN ",
	ErrorLevel: "ERROR",
	PanicLevel: "PANIC",
}

// Tag returns the fixed-width five character display tag for the level.
func (l Level) Tag() string {
	if l < 0 || int(l) >= len(levelTags) {
		return "?????"
	}
	return levelTags[l]
}
