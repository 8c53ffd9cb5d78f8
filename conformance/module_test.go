package conformance

import (
	"testing"

	"github.com/launchdarkly/spec-contract-tests/framework"

	"github.com/stretchr/testify/assert"
)

func runBasicChecks(module Module, expected []string, registry Registry) []framework.Failure {
	var c framework.Collector
	c.TestCase("basic checks", func(t *framework.T) {
		BasicChecks(t, module, expected, registry)
	})
	return c.Failures()
}

func TestBasicChecksPass(t *testing.T) {
	module := Operations{"NewGreeter": func() greeter { return politeGreeter{} }}
	registry := Registry{
		{Implementation: ImplementationFor(func() politeGreeter { return politeGreeter{} }), Contract: greeterContract},
		{Implementation: ImplementationFor(func() *tally { return &tally{} }), Contract: counterContract},
	}
	assert.Len(t, runBasicChecks(module, []string{"NewGreeter"}, registry), 0)
}

func TestBasicChecksNilModule(t *testing.T) {
	assert.Equal(t, []framework.Failure{{Message: "basic checks: module must not be nil"}},
		runBasicChecks(nil, nil, nil))
}

func TestBasicChecksMissingOperation(t *testing.T) {
	module := Operations{"NewGreeter": func() {}}
	assert.Equal(t, []framework.Failure{{Message: "basic checks: module missing NewCounter function"}},
		runBasicChecks(module, []string{"NewGreeter", "NewCounter"}, nil))
}

func TestBasicChecksOperationMustBeFunction(t *testing.T) {
	var nilFunc func()
	for _, op := range []interface{}{"not a function", nilFunc, nil} {
		module := Operations{"NewGreeter": op}
		assert.Equal(t, []framework.Failure{{Message: "basic checks: module member NewGreeter must be a function"}},
			runBasicChecks(module, []string{"NewGreeter"}, nil))
	}
}

func TestBasicChecksDuplicateEntry(t *testing.T) {
	impl := ImplementationFor(func() politeGreeter { return politeGreeter{} })
	registry := Registry{
		{Implementation: impl, Contract: greeterContract},
		{Implementation: impl, Contract: greeterContract},
	}
	assert.Equal(t,
		[]framework.Failure{{Message: "basic checks: registry lists conformance.politeGreeter as greeter more than once"}},
		runBasicChecks(Operations{}, nil, registry))
}

func TestBasicChecksEntryWithoutType(t *testing.T) {
	registry := Registry{{Implementation: Implementation{Name: "x"}, Contract: greeterContract}}
	assert.Equal(t, []framework.Failure{{Message: "basic checks: registry entry 0 has no implementation type"}},
		runBasicChecks(Operations{}, nil, registry))
}
