package framework

import (
	"fmt"
	"sync"
)

// Collector accumulates the Failures and Notes of one test run, in the order they were recorded.
//
// The zero value is ready to use. Recording never fails.
type Collector struct {
	// TestLogger receives progress information about each guarded case. If nil, nothing is
	// reported.
	TestLogger TestLogger

	failures []Failure
	notes    []Note
	lock     sync.Mutex
}

// RecordFailure appends a Failure with the given message.
func (c *Collector) RecordFailure(message string) {
	c.AddFailure(Failure{Message: message})
}

// AddFailure appends an existing Failure.
func (c *Collector) AddFailure(f Failure) {
	c.lock.Lock()
	c.failures = append(c.failures, f)
	c.lock.Unlock()
}

// RecordNote appends a Note with the given message.
func (c *Collector) RecordNote(message string) {
	c.AddNote(Note{Message: message})
}

// AddNote appends an existing Note as-is.
func (c *Collector) AddNote(n Note) {
	c.lock.Lock()
	c.notes = append(c.notes, n)
	c.lock.Unlock()
}

// Failures returns a copy of the recorded Failures.
func (c *Collector) Failures() []Failure {
	c.lock.Lock()
	ret := append([]Failure{}, c.failures...)
	c.lock.Unlock()
	return ret
}

// Notes returns a copy of the recorded Notes.
func (c *Collector) Notes() []Note {
	c.lock.Lock()
	ret := append([]Note{}, c.notes...)
	c.lock.Unlock()
	return ret
}

// ClearFailures discards all recorded Failures. Slices returned earlier by Failures are not
// affected.
func (c *Collector) ClearFailures() {
	c.lock.Lock()
	c.failures = nil
	c.lock.Unlock()
}

// ClearNotes discards all recorded Notes.
func (c *Collector) ClearNotes() {
	c.lock.Lock()
	c.notes = nil
	c.lock.Unlock()
}

// Summary returns the current counts.
func (c *Collector) Summary() Summary {
	c.lock.Lock()
	defer c.lock.Unlock()
	return Summary{Failures: len(c.failures), Notes: len(c.notes)}
}

// Check records a Failure if the condition is false, and returns normally either way.
func (c *Collector) Check(condition bool, format string, args ...interface{}) {
	if condition {
		return
	}
	c.RecordFailure(fmt.Sprintf(format, args...))
}

// NoteIf records a Note if the condition is false.
func (c *Collector) NoteIf(condition bool, format string, args ...interface{}) {
	if condition {
		return
	}
	c.RecordNote(fmt.Sprintf(format, args...))
}

func (c *Collector) testLogger() TestLogger {
	if c.TestLogger == nil {
		return nullTestLogger{}
	}
	return c.TestLogger
}
