package store

import "encoding/json"

// MemStorage is an in-memory Storage with the same JSON round-trip
// semantics as browser local storage: values are serialized on Set,
// a missing key leaves the target zero, and a corrupt value fails to
// decode. Used by tests.
type MemStorage map[string]string

func NewMemStorage() MemStorage {
	return MemStorage{}
}

func (m MemStorage) Set(k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[k] = string(b)
	return nil
}

func (m MemStorage) Get(k string, v any) error {
	raw, ok := m[k]
	if !ok {
		return nil
	}
	return json.Unmarshal([]byte(raw), v)
}

func (m MemStorage) Del(k string) {
	delete(m, k)
}
