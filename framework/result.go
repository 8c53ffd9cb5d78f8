package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Summary counts what a Collector has recorded.
type Summary struct {
	Failures int
	Notes    int
}

// OK returns true if no Failures were recorded. Notes do not count against a run.
func (s Summary) OK() bool {
	return s.Failures == 0
}

func (s Summary) String() string {
	if s.OK() {
		return fmt.Sprintf("Specification test passed with %d note(s).", s.Notes)
	}
	return fmt.Sprintf("Specification test failed with %d error(s) and %d note(s).", s.Failures, s.Notes)
}

// TestID identifies a guarded case. Nested cases extend the path of their parent.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Child returns the ID of a case nested under this one.
func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}

var (
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
	notePrefix  = color.New(color.FgYellow).SprintFunc()
	passedLine  = color.New(color.FgGreen).SprintFunc()
	failedLine  = color.New(color.FgRed).SprintFunc()
)

// PrintReport writes a final report of everything the Collector has recorded: a blank line, one
// "error:" line per Failure, one "note:" line per Note, and a summary line.
func PrintReport(w io.Writer, c *Collector) {
	fmt.Fprintln(w)
	for _, f := range c.Failures() {
		fmt.Fprintf(w, "%s %s\n", errorPrefix("error:"), f)
	}
	for _, n := range c.Notes() {
		fmt.Fprintf(w, "%s %s\n", notePrefix("note:"), n)
	}
	summary := c.Summary()
	if summary.OK() {
		fmt.Fprintln(w, passedLine(summary.String()))
	} else {
		fmt.Fprintln(w, failedLine(summary.String()))
	}
}
