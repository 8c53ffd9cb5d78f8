package framework

import (
	"fmt"
	"io"
)

// TestLogger receives progress information about guarded cases as they run.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                           {}
func (n nullTestLogger) TestError(TestID, error)                      {}
func (n nullTestLogger) TestFinished(TestID, Outcome, CapturedOutput) {}

// ProgressLogger writes one marker per finished case: "." for success, "F" for a failure, "N"
// for a note. Markers are written immediately and without line breaks.
type ProgressLogger struct {
	Out io.Writer
}

func (p ProgressLogger) TestStarted(TestID)      {}
func (p ProgressLogger) TestError(TestID, error) {}

func (p ProgressLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	fmt.Fprint(p.Out, outcome.Marker())
}
