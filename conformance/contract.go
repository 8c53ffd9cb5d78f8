package conformance

import (
	"reflect"

	"github.com/launchdarkly/spec-contract-tests/framework"
)

// Contract identifies an interface that implementations are expected to satisfy.
type Contract struct {
	Name string
	Type reflect.Type
}

// ContractFor returns the Contract for the interface type I. An unnamed interface type is named
// by its type literal.
func ContractFor[I any]() Contract {
	typ := reflect.TypeFor[I]()
	name := typ.Name()
	if name == "" {
		name = typ.String()
	}
	return Contract{Name: name, Type: typ}
}

func (c Contract) String() string {
	return c.Name
}

// Implementation describes a concrete type that claims to satisfy a contract.
type Implementation struct {
	Name string
	Type reflect.Type
	// New creates a fresh value of the implementation for a validator to exercise. If nil,
	// Instance falls back to the zero value of Type (or a new value, if Type is a pointer type).
	New func() interface{}
}

// ImplementationFor returns the Implementation for type T, created by newFn.
func ImplementationFor[T any](newFn func() T) Implementation {
	typ := reflect.TypeFor[T]()
	impl := Implementation{Name: typ.String(), Type: typ}
	if newFn != nil {
		impl.New = func() interface{} { return newFn() }
	}
	return impl
}

func (i Implementation) String() string {
	return i.Name
}

func (i Implementation) instance() interface{} {
	if i.New != nil {
		return i.New()
	}
	if i.Type.Kind() == reflect.Ptr {
		return reflect.New(i.Type.Elem()).Interface()
	}
	return reflect.Zero(i.Type).Interface()
}

// Entry is one implementation and the contract it claims to satisfy.
type Entry struct {
	Implementation Implementation
	Contract       Contract
}

// Registry maps implementations to contracts. It is a slice rather than a map so that findings
// are reported in the order the entries were declared.
type Registry []Entry

// Filter returns the entries whose contract name is accepted by the filter.
func (r Registry) Filter(filter framework.Filter) Registry {
	var ret Registry
	for _, e := range r {
		if filter == nil || filter(e.Contract.Name) {
			ret = append(ret, e)
		}
	}
	return ret
}

// Validator exercises one implementation of a contract and records what it finds through t.
type Validator func(t *framework.T, impl Implementation)

// ContractValidator pairs a contract with its validator.
type ContractValidator struct {
	Contract Contract
	Validate Validator
}

// Validators lists one validator per contract, in the order missing contracts are reported.
type Validators []ContractValidator

// Lookup returns the first validator declared for the contract.
func (v Validators) Lookup(contract Contract) (Validator, bool) {
	for _, cv := range v {
		if cv.Contract.Type == contract.Type {
			return cv.Validate, true
		}
	}
	return nil, false
}

// Filter returns the validators whose contract name is accepted by the filter.
func (v Validators) Filter(filter framework.Filter) Validators {
	var ret Validators
	for _, cv := range v {
		if filter == nil || filter(cv.Contract.Name) {
			ret = append(ret, cv)
		}
	}
	return ret
}

// Instance creates a value of the implementation and stops the case if it does not satisfy I.
func Instance[I any](t *framework.T, impl Implementation) I {
	value := impl.instance()
	ret, ok := value.(I)
	t.Require(ok, "%s does not implement %s", impl.Name, reflect.TypeFor[I]())
	return ret
}
