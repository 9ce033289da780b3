package handler

import (
	"sync/atomic"

	"github.com/prettylog/prettylog/core"
)

// Stats tracks dispatch statistics
type Stats struct {
	// Separate atomic counters per level for records dropped by the
	// severity filter. PanicLevel records bypass the filter and are
	// never counted here.
	FilteredTrace uint64
	FilteredDebug uint64
	FilteredInfo  uint64
	FilteredWarn  uint64
	FilteredError uint64
	// WriteErrorsTotal counts lines lost to a failing output stream
	WriteErrorsTotal uint64
	// ProcessedTotal counts total emitted lines
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementFiltered atomically increments the filtered counter for a level
func (s *Stats) IncrementFiltered(level core.Level) {
	switch level {
	case core.TraceLevel:
		atomic.AddUint64(&s.FilteredTrace, 1)
	case core.DebugLevel:
		atomic.AddUint64(&s.FilteredDebug, 1)
	case core.InfoLevel:
		atomic.AddUint64(&s.FilteredInfo, 1)
	case core.WarnLevel:
		atomic.AddUint64(&s.FilteredWarn, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.FilteredError, 1)
	}
}

// IncrementWriteErrors atomically increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrorsTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// GetFiltered returns the filtered count for a level
func (s *Stats) GetFiltered(level core.Level) uint64 {
	switch level {
	case core.TraceLevel:
		return atomic.LoadUint64(&s.FilteredTrace)
	case core.DebugLevel:
		return atomic.LoadUint64(&s.FilteredDebug)
	case core.InfoLevel:
		return atomic.LoadUint64(&s.FilteredInfo)
	case core.WarnLevel:
		return atomic.LoadUint64(&s.FilteredWarn)
	case core.ErrorLevel:
		return atomic.LoadUint64(&s.FilteredError)
	default:
		return 0
	}
}

// GetWriteErrors returns the write error count
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrorsTotal)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetTotalFiltered returns the total filtered across all levels
func (s *Stats) GetTotalFiltered() uint64 {
	return atomic.LoadUint64(&s.FilteredTrace) +
		atomic.LoadUint64(&s.FilteredDebug) +
		atomic.LoadUint64(&s.FilteredInfo) +
		atomic.LoadUint64(&s.FilteredWarn) +
		atomic.LoadUint64(&s.FilteredError)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.FilteredTrace, 0)
	atomic.StoreUint64(&s.FilteredDebug, 0)
	atomic.StoreUint64(&s.FilteredInfo, 0)
	atomic.StoreUint64(&s.FilteredWarn, 0)
	atomic.StoreUint64(&s.FilteredError, 0)
	atomic.StoreUint64(&s.WriteErrorsTotal, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	FilteredTotal    map[core.Level]uint64
	WriteErrorsTotal uint64
	ProcessedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		FilteredTotal: map[core.Level]uint64{
			core.TraceLevel: s.GetFiltered(core.TraceLevel),
			core.DebugLevel: s.GetFiltered(core.DebugLevel),
			core.InfoLevel:  s.GetFiltered(core.InfoLevel),
			core.WarnLevel:  s.GetFiltered(core.WarnLevel),
			core.ErrorLevel: s.GetFiltered(core.ErrorLevel),
		},
		WriteErrorsTotal: s.GetWriteErrors(),
		ProcessedTotal:   s.GetProcessed(),
	}
}
