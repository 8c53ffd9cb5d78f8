package datastore

import (
	"github.com/launchdarkly/spec-contract-tests/conformance"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// forgetfulStore accepts everything and remembers nothing.
type forgetfulStore struct{}

func (forgetfulStore) Get(key string) (ldvalue.Value, bool, error) {
	if key == "" {
		return ldvalue.Null(), false, ErrEmptyKey
	}
	return ldvalue.Null(), false, nil
}

func (forgetfulStore) Set(key string, value ldvalue.Value) error { return nil }

func (forgetfulStore) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}

func badRegistry() conformance.Registry {
	return conformance.Registry{
		{Implementation: conformance.ImplementationFor(func() *forgetfulStore { return &forgetfulStore{} }), Contract: StoreContract},
	}
}
