package framework

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func printReportWithoutColor(c *Collector) []byte {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	PrintReport(&buf, c)
	return buf.Bytes()
}

func TestPrintReportFailed(t *testing.T) {
	var c Collector
	c.RecordFailure("first problem")
	c.RecordFailure("second problem")
	c.RecordNote("an observation")

	g := goldie.New(t)
	g.Assert(t, "report_failed", printReportWithoutColor(&c))
}

func TestPrintReportPassed(t *testing.T) {
	var c Collector
	c.RecordNote("an observation")

	g := goldie.New(t)
	g.Assert(t, "report_passed", printReportWithoutColor(&c))
}

func TestSummaryString(t *testing.T) {
	assert.Equal(t, "Specification test passed with 0 note(s).", Summary{}.String())
	assert.Equal(t, "Specification test failed with 1 error(s) and 2 note(s).", Summary{Failures: 1, Notes: 2}.String())
}

func TestTestIDChildDoesNotShareBackingArray(t *testing.T) {
	parent := TestID{Path: make([]string, 1, 10)}
	parent.Path[0] = "parent"
	a := parent.Child("a")
	b := parent.Child("b")
	assert.Equal(t, "parent/a", a.String())
	assert.Equal(t, "parent/b", b.String())
}
