package framework

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// T is the handle passed to a guarded block of test logic. It is used similarly to *testing.T:
// it implements require.TestingT, so the testify assert and require packages can be used with
// it, and it has methods for nested cases.
//
// A T belongs to exactly one guarded case and must not be used after that case has finished.
type T struct {
	collector   *Collector
	id          TestID
	opts        CaseOptions
	debugLogger CapturingLogger
	failed      bool
	lastError   string
	finished    bool
}

type caught struct {
	err     error
	stack   string
	failNow bool
}

// ID returns the identifier of the case this T belongs to.
func (t *T) ID() TestID {
	return t.id
}

// Label returns the case label. For nested cases it is the path of labels joined with "/".
func (t *T) Label() string {
	return t.id.String()
}

// Failed returns true if a failure has been recorded through this T.
func (t *T) Failed() bool {
	return t.failed
}

// Errorf records a Failure labeled with this case's label. It does not stop the case. The assert
// package calls Errorf.
func (t *T) Errorf(format string, args ...interface{}) {
	t.checkActive()
	t.failed = true
	t.lastError = reformatMessage(fmt.Sprintf(format, args...))
	err := Failure{Message: t.Label() + ": " + t.lastError}
	t.collector.AddFailure(err)
	t.collector.testLogger().TestError(t.id, err)
}

// FailNow stops the case immediately. The require package calls FailNow after Errorf.
func (t *T) FailNow() {
	t.checkActive()
	t.failed = true
	panic(t)
}

// Check records a labeled Failure if the condition is false, and continues.
func (t *T) Check(condition bool, format string, args ...interface{}) {
	if !condition {
		t.Errorf(format, args...)
	}
}

// Require stops the case with a Failure if the condition is false.
func (t *T) Require(condition bool, format string, args ...interface{}) {
	t.checkActive()
	Require(condition, format, args...)
}

// RequireNote stops the case with a Note if the condition is false.
func (t *T) RequireNote(condition bool, format string, args ...interface{}) {
	t.checkActive()
	RequireNote(condition, format, args...)
}

// NoteIf records a labeled Note if the condition is false, and continues.
func (t *T) NoteIf(condition bool, format string, args ...interface{}) {
	t.checkActive()
	if condition {
		return
	}
	n := Note{Message: t.Label() + ": " + fmt.Sprintf(format, args...)}
	t.collector.AddNote(n)
	t.collector.testLogger().TestError(t.id, n)
}

// Run runs a nested case whose label is this case's label plus "/" plus the given label. The
// nested case inherits this case's CaseOptions. If the nested case fails, this case is marked as
// failed too.
func (t *T) Run(label string, action func(*T)) Outcome {
	t.checkActive()
	outcome := t.collector.runCase(t.id.Child(label), t.opts, action)
	if outcome == Failed {
		t.failed = true
	}
	return outcome
}

// RaisesError runs a nested block that is expected to fail. See Collector.RaisesError. If the
// block does not fail, this case is marked as failed too.
func (t *T) RaisesError(label string, action func(*T) error) error {
	t.checkActive()
	raised, err := t.collector.raisesError(t.id.Child(label), t.opts, action)
	if !raised {
		t.failed = true
	}
	return err
}

// Debug adds a message to the case's debug output. The output is passed to the TestLogger when
// the case finishes.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the case's debug output.
func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}

func (t *T) checkActive() {
	if t.finished {
		panic(fmt.Sprintf("framework: T for %q used after its case finished", t.Label()))
	}
}

func (t *T) capture(action func(*T) error) (result caught) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*T); ok {
				result = caught{failNow: true}
				return
			}
			result.stack = string(debug.Stack())
			if err, ok := r.(error); ok {
				result.err = err
			} else {
				result.err = Unexpected{Value: r, Stack: result.stack}
			}
		}
	}()
	if err := action(t); err != nil {
		result.err = err
	}
	return result
}

// testify's failure messages start with a line break and are indented with tabs.
func reformatMessage(message string) string {
	return strings.TrimLeft(message, "\n\t ")
}
