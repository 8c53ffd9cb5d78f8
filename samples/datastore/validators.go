package datastore

import (
	"errors"
	"sort"

	"github.com/launchdarkly/spec-contract-tests/conformance"
	"github.com/launchdarkly/spec-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ValidateStore checks an implementation of the Store contract.
func ValidateStore(t *framework.T, impl conformance.Implementation) {
	store := conformance.Instance[Store](t, impl)

	t.Run("get of missing key", func(t *framework.T) {
		_, found, err := store.Get("store-never-set")
		require.NoError(t, err)
		assert.False(t, found, "Get should not find a key that was never set")
	})

	t.Run("set then get", func(t *framework.T) {
		value := ldvalue.ObjectBuild().
			Set("name", ldvalue.String("widget")).
			Set("count", ldvalue.Int(3)).
			Build()
		require.NoError(t, store.Set("store-item", value))

		got, found, err := store.Get("store-item")
		require.NoError(t, err)
		t.Require(found, "Get did not find a key that was just set")
		t.Check(value.Equal(got), "expected %s but got %s", value.JSONString(), got.JSONString())
	})

	t.Run("set replaces value", func(t *framework.T) {
		require.NoError(t, store.Set("store-replaced", ldvalue.String("first")))
		require.NoError(t, store.Set("store-replaced", ldvalue.String("second")))

		got, found, err := store.Get("store-replaced")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "second", got.StringValue())
	})

	t.Run("null value is stored", func(t *framework.T) {
		require.NoError(t, store.Set("store-null", ldvalue.Null()))

		got, found, err := store.Get("store-null")
		require.NoError(t, err)
		assert.True(t, found, "a key set to null should still be found")
		assert.True(t, got.IsNull())
	})

	t.Run("delete", func(t *framework.T) {
		require.NoError(t, store.Set("store-deleted", ldvalue.Bool(true)))
		require.NoError(t, store.Delete("store-deleted"))

		_, found, err := store.Get("store-deleted")
		require.NoError(t, err)
		assert.False(t, found, "Get found a key after it was deleted")
	})

	t.Run("delete of missing key", func(t *framework.T) {
		err := store.Delete("store-never-set")
		t.NoteIf(err == nil, "Delete of a missing key should succeed, but returned: %s", err)
	})

	emptyKeyOps := []struct {
		name string
		call func() error
	}{
		{"Get", func() error { _, _, err := store.Get(""); return err }},
		{"Set", func() error { return store.Set("", ldvalue.Bool(true)) }},
		{"Delete", func() error { return store.Delete("") }},
	}
	for _, op := range emptyKeyOps {
		err := t.RaisesError(op.name+" rejects empty key", func(*framework.T) error {
			return op.call()
		})
		if err != nil {
			t.NoteIf(errors.Is(err, ErrEmptyKey), "%s with an empty key returned %q rather than ErrEmptyKey", op.name, err)
		}
	}
}

// ValidateLister checks an implementation of the Lister contract. The implementation must also
// be a Store, so that there is something to list.
func ValidateLister(t *framework.T, impl conformance.Implementation) {
	lister := conformance.Instance[Lister](t, impl)
	store, ok := lister.(Store)
	t.Require(ok, "%s implements Lister but not Store", impl.Name)

	for _, key := range []string{"lister-b", "lister-a", "lister-c"} {
		require.NoError(t, store.Set(key, ldvalue.Bool(true)))
	}

	keys, err := lister.Keys()
	require.NoError(t, err)
	assert.Subset(t, keys, []string{"lister-a", "lister-b", "lister-c"})
	t.Check(sort.StringsAreSorted(keys), "keys are not in ascending order: %v", keys)

	require.NoError(t, store.Delete("lister-b"))
	keys, err = lister.Keys()
	require.NoError(t, err)
	assert.NotContains(t, keys, "lister-b", "deleted key is still listed")
}
