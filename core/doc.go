// Package core defines the basic vocabulary shared across prettylog.
//
// It provides the Level type for severity filtering and the Record
// type that represents a single log event. Levels form a fixed total
// order, Trace < Debug < Info < Warn < Error < Panic. PanicLevel is
// reserved for the fault path and is never produced by ordinary
// logging calls.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must
// return it with PutRecord once the handler has consumed it.
package core
