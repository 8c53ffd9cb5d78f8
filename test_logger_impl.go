package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/launchdarkly/spec-contract-tests/framework"
)

// ConsoleTestLogger prints every case as it runs, with its errors and debug output.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	failed := outcome == framework.Failed
	switch outcome {
	case framework.Failed:
		fmt.Printf("  FAILED: %s\n", id)
	case framework.Noted:
		fmt.Printf("  NOTE TAKEN: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}
