package datastore

import (
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()

	_, found, err := m.Get("a")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set("b", ldvalue.Int(2)))
	require.NoError(t, m.Set("a", ldvalue.Int(1)))
	value, found, err := m.Get("a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, value.IntValue())

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, m.Delete("a"))
	require.NoError(t, m.Delete("a"))
	keys, _ = m.Keys()
	assert.Equal(t, []string{"b"}, keys)
}

func TestMemoryStoreRejectsEmptyKey(t *testing.T) {
	m := NewMemoryStore()
	_, _, err := m.Get("")
	assert.Equal(t, ErrEmptyKey, err)
	assert.Equal(t, ErrEmptyKey, m.Set("", ldvalue.Null()))
	assert.Equal(t, ErrEmptyKey, m.Delete(""))
}
