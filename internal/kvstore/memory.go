package kvstore

import "fjacquet/syp-convert/internal/parsererror"

// MemoryStore keeps values in a map. It is the backend used in tests, where
// GetErr and SetErr simulate an unavailable medium.
type MemoryStore struct {
	values map[string]string
	closed bool

	GetErr error
	SetErr error
	// Writes counts successful Set calls.
	Writes int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	if m.closed {
		return "", false, parsererror.ErrStorageClosed
	}
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if m.closed {
		return parsererror.ErrStorageClosed
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	m.Writes++
	return nil
}

func (m *MemoryStore) Close() error {
	m.closed = true
	return nil
}
