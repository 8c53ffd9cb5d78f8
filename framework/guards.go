package framework

import "fmt"

// Outcome is the result of one guarded case.
type Outcome int

const (
	// Passed means no Failure was recorded and the case ran to completion.
	Passed Outcome = iota
	// Failed means at least one Failure was recorded.
	Failed
	// Noted means the case was stopped by a Note.
	Noted
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Noted:
		return "noted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Marker returns the single-character progress marker for the outcome.
func (o Outcome) Marker() string {
	switch o {
	case Failed:
		return "F"
	case Noted:
		return "N"
	default:
		return "."
	}
}

// CaseOptions changes how a guarded case files what escapes from its block.
type CaseOptions struct {
	// NotesAreFailures files an escaping Note as a Failure instead of a Note.
	NotesAreFailures bool
	// IncludeStack appends the stack trace captured at the panic site to the Failure message.
	IncludeStack bool
}

// TestCase runs a block of test logic under a label.
//
// If the block finishes normally, nothing is recorded. If it is stopped by a Note (RequireNote),
// the Note is recorded. If it is stopped by anything else, a Failure "{label}: {message}" is
// recorded. Nothing propagates out of TestCase, so a batch of independent cases always runs to
// completion.
func (c *Collector) TestCase(label string, action func(*T)) Outcome {
	return c.runCase(TestID{Path: []string{label}}, CaseOptions{}, action)
}

// TestCaseWithOptions is like TestCase, with adjustments to how the outcome is filed.
func (c *Collector) TestCaseWithOptions(label string, opts CaseOptions, action func(*T)) Outcome {
	return c.runCase(TestID{Path: []string{label}}, opts, action)
}

// RaisesError runs a block that is expected to fail, either by returning a non-nil error or by
// panicking. If it does, nothing is recorded and the captured error is returned so the caller
// can inspect it. If it does not, a Failure "{label}: no error raised" is recorded and the result
// is nil.
//
// A panic value that is an error is returned as-is; any other panic value is returned wrapped in
// Unexpected.
func (c *Collector) RaisesError(label string, action func(*T) error) error {
	_, err := c.raisesError(TestID{Path: []string{label}}, CaseOptions{}, action)
	return err
}

func (c *Collector) runCase(id TestID, opts CaseOptions, action func(*T)) Outcome {
	logger := c.testLogger()
	logger.TestStarted(id)

	t := &T{collector: c, id: id, opts: opts}
	result := t.capture(func(t *T) error {
		action(t)
		return nil
	})
	t.finished = true

	outcome := Passed
	switch {
	case result.failNow:
		if t.lastError == "" {
			c.addCaseFailure(t, "test failed with no failure message")
		}
	case result.err != nil:
		kind, err := classify(result.err)
		if kind == kindNote && !opts.NotesAreFailures {
			n := err.(Note)
			c.AddNote(n)
			logger.TestError(id, n)
			outcome = Noted
			break
		}
		message := err.Error()
		if opts.IncludeStack && result.stack != "" {
			message += "\n" + result.stack
		}
		c.addCaseFailure(t, message)
	}
	if t.failed {
		outcome = Failed
	}

	logger.TestFinished(id, outcome, t.debugLogger.Output())
	return outcome
}

func (c *Collector) addCaseFailure(t *T, message string) {
	t.failed = true
	f := Failure{Message: t.Label() + ": " + message}
	c.AddFailure(f)
	c.testLogger().TestError(t.id, f)
}

// raisesError returns whether the block failed as expected, and the captured error. The options
// are passed on to any case nested inside the block.
func (c *Collector) raisesError(id TestID, opts CaseOptions, action func(*T) error) (bool, error) {
	t := &T{collector: c, id: id, opts: opts}
	result := t.capture(action)
	t.finished = true

	switch {
	case result.failNow:
		if t.lastError != "" {
			return true, Failure{Message: t.lastError}
		}
		return true, Failure{Message: "test failed with no failure message"}
	case result.err != nil:
		return true, result.err
	default:
		c.RecordFailure(id.String() + ": no error raised")
		return false, nil
	}
}
