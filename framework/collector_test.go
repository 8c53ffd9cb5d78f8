package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorKeepsInsertionOrder(t *testing.T) {
	var c Collector
	c.RecordFailure("a")
	c.AddFailure(Failure{Message: "b"})
	c.RecordNote("x")
	c.AddNote(Note{Message: "y"})

	assert.Equal(t, []Failure{{Message: "a"}, {Message: "b"}}, c.Failures())
	assert.Equal(t, []Note{{Message: "x"}, {Message: "y"}}, c.Notes())
}

func TestCollectorReturnsCopies(t *testing.T) {
	var c Collector
	c.RecordFailure("original")
	c.RecordNote("original")

	failures := c.Failures()
	failures[0] = Failure{Message: "changed"}
	_ = append(failures, Failure{Message: "extra"})
	notes := c.Notes()
	notes[0] = Note{Message: "changed"}

	assert.Equal(t, []Failure{{Message: "original"}}, c.Failures())
	assert.Equal(t, []Note{{Message: "original"}}, c.Notes())
}

func TestCollectorEmptyListsAreNotNil(t *testing.T) {
	var c Collector
	assert.NotNil(t, c.Failures())
	assert.Len(t, c.Failures(), 0)
	assert.NotNil(t, c.Notes())
	assert.Len(t, c.Notes(), 0)
}

func TestCollectorClear(t *testing.T) {
	var c Collector
	c.RecordFailure("f")
	c.RecordNote("n")
	before := c.Failures()

	c.ClearFailures()
	assert.Len(t, c.Failures(), 0)
	assert.Len(t, c.Notes(), 1)
	assert.Equal(t, []Failure{{Message: "f"}}, before)

	c.ClearNotes()
	assert.Len(t, c.Notes(), 0)

	c.RecordFailure("after clear")
	assert.Equal(t, []Failure{{Message: "after clear"}}, c.Failures())
}

func TestCheckRecordsExactlyOneFailureAndContinues(t *testing.T) {
	for _, message := range []string{"", "simple", "with: colon", "multi\nline"} {
		var c Collector
		c.Check(false, "%s", message)
		require.Len(t, c.Failures(), 1)
		assert.Equal(t, message, c.Failures()[0].Message)
		assert.Len(t, c.Notes(), 0)
	}
}

func TestCheckRecordsNothingWhenConditionHolds(t *testing.T) {
	var c Collector
	c.Check(true, "unused")
	c.NoteIf(true, "unused")
	assert.Equal(t, Summary{}, c.Summary())
}

func TestNoteIfRecordsNote(t *testing.T) {
	var c Collector
	c.NoteIf(false, "observed %d things", 3)
	assert.Equal(t, []Note{{Message: "observed 3 things"}}, c.Notes())
	assert.Len(t, c.Failures(), 0)
	assert.True(t, c.Summary().OK())
}

func TestSummary(t *testing.T) {
	var c Collector
	c.RecordNote("n")
	assert.Equal(t, Summary{Notes: 1}, c.Summary())
	assert.True(t, c.Summary().OK())

	c.RecordFailure("f")
	assert.Equal(t, Summary{Failures: 1, Notes: 1}, c.Summary())
	assert.False(t, c.Summary().OK())
}
