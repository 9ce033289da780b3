package core

import (
	"sync"
	"time"
)

// Record represents a single log record on its way to an output stream.
// Records are transient: they are built per logging call (or per fault),
// rendered once, and recycled.
type Record struct {
	// Time is stamped when the record is rendered, not when the call
	// site executed.
	Time    time.Time
	Level   Level
	Target  string
	Message string
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	return recordPool.Get().(*Record)
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Time = time.Time{}
	r.Target = ""
	r.Message = ""
	recordPool.Put(r)
}
