package datastore

import (
	"github.com/launchdarkly/spec-contract-tests/conformance"
	"github.com/launchdarkly/spec-contract-tests/framework"
	"github.com/launchdarkly/spec-contract-tests/servicedef"
)

var (
	StoreContract  = conformance.ContractFor[Store]()
	ListerContract = conformance.ContractFor[Lister]()
)

// ExpectedOperations are the constructors a datastore module must expose.
var ExpectedOperations = []string{"NewMemoryStore", "NewHTTPStore", "NewHandler"}

// Module returns this package's operations, for BasicChecks.
func Module() conformance.Module {
	return conformance.Operations{
		"NewMemoryStore": NewMemoryStore,
		"NewHTTPStore":   NewHTTPStore,
		"NewHandler":     NewHandler,
	}
}

// Validators returns the validator for each contract. Store comes first, so a missing Store
// implementation is reported before a missing Lister.
func Validators() conformance.Validators {
	return conformance.Validators{
		{Contract: StoreContract, Validate: ValidateStore},
		{Contract: ListerContract, Validate: ValidateLister},
	}
}

// OptionalContracts returns the contracts that no implementation is required to satisfy.
func OptionalContracts() []conformance.Contract {
	return []conformance.Contract{ListerContract}
}

// MemoryRegistry returns registry entries for MemoryStore, which satisfies both contracts.
func MemoryRegistry() conformance.Registry {
	impl := conformance.ImplementationFor(NewMemoryStore)
	return conformance.Registry{
		{Implementation: impl, Contract: StoreContract},
		{Implementation: impl, Contract: ListerContract},
	}
}

// HTTPRegistry returns registry entries for an HTTPStore talking to the service at baseURL. It
// only claims Lister if the service declared the keys capability.
func HTTPRegistry(baseURL string, info servicedef.StatusResponse, logger framework.Logger) conformance.Registry {
	impl := conformance.ImplementationFor(func() *HTTPStore {
		return NewHTTPStore(baseURL, logger)
	})
	registry := conformance.Registry{{Implementation: impl, Contract: StoreContract}}
	if info.HasCapability(servicedef.CapabilityKeys) {
		registry = append(registry, conformance.Entry{Implementation: impl, Contract: ListerContract})
	}
	return registry
}

// RunSuite runs the basic checks and the conformance checks for the registry, restricted to the
// contracts accepted by filter (nil means all of them).
func RunSuite(c *framework.Collector, registry conformance.Registry, filter framework.Filter) {
	c.TestCase("basic checks", func(t *framework.T) {
		conformance.BasicChecks(t, Module(), ExpectedOperations, registry)
	})
	conformance.CheckClasses(c,
		registry.Filter(filter),
		Validators().Filter(filter),
		OptionalContracts()...,
	)
}
