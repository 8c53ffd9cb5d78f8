package framework

import (
	"errors"
	"fmt"
)

// Failure is a hard test violation.
type Failure struct {
	Message string
}

func (f Failure) Error() string {
	return f.Message
}

// Note is an advisory observation. It never causes a run to fail.
type Note struct {
	Message string
}

func (n Note) Error() string {
	return n.Message
}

// Unexpected wraps anything that escaped from a guarded block without being a Failure or a
// Note: a runtime panic, a panic with an arbitrary value, or an error returned by the block.
type Unexpected struct {
	Value interface{}
	Stack string
}

func (u Unexpected) Error() string {
	if err, ok := u.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("%+v", u.Value)
}

func (u Unexpected) Unwrap() error {
	if err, ok := u.Value.(error); ok {
		return err
	}
	return nil
}

type signalKind int

const (
	kindFailure signalKind = iota
	kindNote
	kindUnexpected
)

// classify decides which of the three signal kinds a recovered value or returned error is.
func classify(value interface{}) (signalKind, error) {
	err, isErr := value.(error)
	if !isErr {
		return kindUnexpected, Unexpected{Value: value}
	}
	var n Note
	if errors.As(err, &n) {
		return kindNote, n
	}
	var f Failure
	if errors.As(err, &f) {
		return kindFailure, err
	}
	return kindUnexpected, err
}
