package kvstore

import "fmt"

// MemStore is an in-memory Store for tests. FailWrites makes every Set and
// Delete return an error so callers' fail-soft paths can be exercised.
type MemStore struct {
	Values     map[string]string
	FailWrites bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Values: map[string]string{}}
}

func (m *MemStore) Get(key string) (string, bool) {
	value, ok := m.Values[key]
	return value, ok
}

func (m *MemStore) Set(key, value string) error {
	if m.FailWrites {
		return fmt.Errorf("write failed for key %q", key)
	}
	m.Values[key] = value
	return nil
}

func (m *MemStore) Delete(key string) error {
	if m.FailWrites {
		return fmt.Errorf("delete failed for key %q", key)
	}
	delete(m.Values, key)
	return nil
}
