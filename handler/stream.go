package handler

import (
	"io"
	"sync"
)

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// syncer is implemented by *os.File.
type syncer interface {
	Sync() error
}

// Stream wraps one output destination (stdout, stderr, or a test
// double) together with its color capability. A mutex serializes
// Write calls so concurrent callers never interleave partial lines;
// formatters prepare a full line in their own buffer and call Write
// once, so the lock is held only during the actual I/O.
type Stream struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewStream creates a Stream over w. color declares whether ANSI
// escape sequences render correctly on the destination; it is an
// external fact about the destination, never detected here.
func NewStream(w io.Writer, color bool) *Stream {
	return &Stream{w: w, color: color}
}

// Color reports whether the destination renders ANSI color sequences.
func (s *Stream) Color() bool {
	return s.color
}

// Write writes p under the stream lock.
func (s *Stream) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	n, err = s.w.Write(p)
	s.mu.Unlock()
	return
}

// Flush forces buffered output through to the destination. Writers
// without a flush or sync notion are considered already flushed.
func (s *Stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch w := s.w.(type) {
	case flusher:
		return w.Flush()
	case syncer:
		return w.Sync()
	}
	return nil
}
