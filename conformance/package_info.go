// Package conformance checks that a set of implementation types satisfy a set of contracts.
//
// A contract is a Go interface type published by a library author. The author also supplies a
// Validator for each contract: a function that exercises one implementation and records, through
// a *framework.T, everything it finds wrong with it. Implementers then describe their own types
// in a Registry and call CheckClasses. Every finding lands in the framework.Collector; the
// checker itself never panics and never stops early.
package conformance
