package framework

import "fmt"

// Require aborts the current scope with a Failure if the condition is false. It does not record
// anything itself: the Failure is recorded by whichever guard recovers it.
//
// Use it for preconditions where continuing would be unsafe or meaningless.
func Require(condition bool, format string, args ...interface{}) {
	if condition {
		return
	}
	panic(Failure{Message: fmt.Sprintf(format, args...)})
}

// RequireNote is like Require, but aborts the current scope with a Note instead. A TestCase that
// recovers it files it as a Note rather than a Failure.
func RequireNote(condition bool, format string, args ...interface{}) {
	if condition {
		return
	}
	panic(Note{Message: fmt.Sprintf(format, args...)})
}
