package core

import (
	"testing"
	"time"
)

func TestRecordPool_Reuse(t *testing.T) {
	r := GetRecord()
	r.Time = time.Now()
	r.Level = ErrorLevel
	r.Target = "db"
	r.Message = "connection lost"
	PutRecord(r)

	r2 := GetRecord()
	if !r2.Time.IsZero() {
		t.Error("Expected zero Time on pooled record")
	}
	if r2.Target != "" {
		t.Errorf("Expected empty Target, got %q", r2.Target)
	}
	if r2.Message != "" {
		t.Errorf("Expected empty Message, got %q", r2.Message)
	}
	PutRecord(r2)
}

func TestPutRecord_Nil(t *testing.T) {
	// Must not panic.
	PutRecord(nil)
}
