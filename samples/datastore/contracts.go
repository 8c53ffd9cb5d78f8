// Package datastore is a reference conformance suite built on the conformance package. It
// publishes two contracts, Store and Lister, with a validator for each, and ships two
// implementations: an in-memory store and a client for a datastore service reached over HTTP.
package datastore

import (
	"errors"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ErrEmptyKey is returned by a Store for an empty key.
var ErrEmptyKey = errors.New("key must not be empty")

// Store is a key-value store of JSON-like values.
//
// Get reports whether the key was found. Set replaces any existing value. Delete of a key that
// does not exist is not an error. Every method rejects an empty key.
type Store interface {
	Get(key string) (ldvalue.Value, bool, error)
	Set(key string, value ldvalue.Value) error
	Delete(key string) error
}

// Lister is an optional contract for stores that can enumerate their keys. Keys returns the keys
// in ascending order.
type Lister interface {
	Keys() ([]string, error)
}
