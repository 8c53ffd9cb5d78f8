package conformance

import (
	"fmt"
	"reflect"

	"github.com/launchdarkly/spec-contract-tests/framework"
)

// CheckClasses runs the validator for each registry entry against its implementation, and then
// records a Failure for every contract that has a validator, is not optional, and was not
// claimed by any implementation.
//
// Entries are processed in registry order. A malformed entry (an implementation that is not a
// concrete type, or a contract that is not an interface) is recorded as a Failure, and the
// remaining entries are still checked. Anything that escapes from a validator, or from a case
// nested inside it, is recorded as a Failure with the contract name and a stack trace. In every
// case the contract counts as covered, so a bad entry is reported once rather than again as a
// missing implementation. Missing-implementation Failures come last, in validator
// order.
//
// CheckClasses never panics.
func CheckClasses(c *framework.Collector, registry Registry, validators Validators, optional ...Contract) {
	seen := make(map[reflect.Type]bool)

	for i, entry := range registry {
		if err := checkEntryShape(entry); err != nil {
			c.RecordFailure(fmt.Sprintf("registry entry %d: %s", i, err))
			if entry.Contract.Type != nil {
				seen[entry.Contract.Type] = true
			}
			continue
		}
		checkImplementation(c, entry, validators)
		seen[entry.Contract.Type] = true
	}

	isOptional := make(map[reflect.Type]bool)
	for _, o := range optional {
		isOptional[o.Type] = true
	}
	for _, cv := range validators {
		if !seen[cv.Contract.Type] && !isOptional[cv.Contract.Type] {
			c.RecordFailure(fmt.Sprintf("missing implementation of %s", cv.Contract.Name))
		}
	}
}

func checkEntryShape(entry Entry) error {
	impl, contract := entry.Implementation, entry.Contract
	if impl.Type == nil {
		return fmt.Errorf("implementation %q has no type", impl.Name)
	}
	if impl.Type.Kind() == reflect.Interface {
		return fmt.Errorf("implementation %s must be a concrete type, not an interface", impl.Name)
	}
	if contract.Type == nil {
		return fmt.Errorf("contract %q for %s has no type", contract.Name, impl.Name)
	}
	if contract.Type.Kind() != reflect.Interface {
		return fmt.Errorf("contract %s for %s must be an interface type", contract.Name, impl.Name)
	}
	return nil
}

func checkImplementation(c *framework.Collector, entry Entry, validators Validators) {
	impl, contract := entry.Implementation, entry.Contract
	label := fmt.Sprintf("%s (%s)", contract.Name, impl.Name)
	opts := framework.CaseOptions{NotesAreFailures: true, IncludeStack: true}

	c.TestCaseWithOptions(label, opts, func(t *framework.T) {
		t.Require(impl.Type.Implements(contract.Type), "%s does not implement %s", impl.Name, contract.Name)
		if validate, ok := validators.Lookup(contract); ok {
			validate(t, impl)
		}
	})
}
