package datastore

import (
	"sort"
	"sync"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// MemoryStore is an in-memory Store and Lister.
type MemoryStore struct {
	items map[string]ldvalue.Value
	lock  sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]ldvalue.Value)}
}

func (m *MemoryStore) Get(key string) (ldvalue.Value, bool, error) {
	if key == "" {
		return ldvalue.Null(), false, ErrEmptyKey
	}
	m.lock.RLock()
	value, ok := m.items[key]
	m.lock.RUnlock()
	return value, ok, nil
}

func (m *MemoryStore) Set(key string, value ldvalue.Value) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.lock.Lock()
	m.items[key] = value
	m.lock.Unlock()
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.lock.Lock()
	delete(m.items, key)
	m.lock.Unlock()
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	m.lock.RLock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	m.lock.RUnlock()
	sort.Strings(keys)
	return keys, nil
}
