// Package framework contains the core of the specification test harness: a Collector that
// accumulates failures and advisory notes for one test run, assertion primitives that either
// record a failure and continue or abort the current scope, and guards that run a block of test
// logic and convert whatever escapes from it into a recorded outcome.
//
// The general model is:
//
// 1. A test author creates a Collector (the zero value is ready to use) and runs each piece of
// test logic inside Collector.TestCase or Collector.RaisesError. The block receives a *T, which
// is similar to Go's *testing.T and can be passed to the testify assert and require packages.
//
// 2. Soft assertions (T.Check, Collector.Check, assert.*) record a Failure and keep going. Fatal
// assertions (Require, T.Require, require.*) panic, and the nearest guard recovers the panic and
// records it. Notes are advisory and never cause a run to fail.
//
// 3. Nothing in this package exits the process. At the end of a run the caller inspects the
// Collector, or calls PrintReport/WriteReport, to decide how the run went.
//
// A Collector is meant to be used by one goroutine at a time. For parallel runs, give each
// worker its own Collector and merge the results afterward.
package framework
