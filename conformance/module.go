package conformance

import (
	"reflect"

	"github.com/launchdarkly/spec-contract-tests/framework"
)

// Module is a package-like value that exposes named top-level operations.
//
// Where the operations are known at compile time, prefer declaring them in a Go interface and
// letting the compiler check them. Module covers the case where the set of operations is only
// known at run time, such as plugins.
type Module interface {
	Operations() map[string]interface{}
}

// Operations is a Module backed by a map of operation names to functions.
type Operations map[string]interface{}

func (o Operations) Operations() map[string]interface{} {
	return o
}

// BasicChecks verifies the preconditions of a conformance run: the module exists and exposes
// every expected operation as a function, and the registry lists each implementation/contract
// pair only once.
// Any violation stops the current case.
func BasicChecks(t *framework.T, module Module, expected []string, registry Registry) {
	t.Require(module != nil, "module must not be nil")
	ops := module.Operations()
	for _, name := range expected {
		op, ok := ops[name]
		t.Require(ok, "module missing %s function", name)
		v := reflect.ValueOf(op)
		t.Require(v.Kind() == reflect.Func && !v.IsNil(), "module member %s must be a function", name)
	}

	type pair struct{ impl, contract reflect.Type }
	seen := make(map[pair]bool)
	for i, e := range registry {
		t.Require(e.Implementation.Type != nil, "registry entry %d has no implementation type", i)
		key := pair{e.Implementation.Type, e.Contract.Type}
		t.Require(!seen[key], "registry lists %s as %s more than once", e.Implementation.Name, e.Contract.Name)
		seen[key] = true
	}
}
