package visibility

import (
	"errors"
	"sync"
)

// KV is the persisted key-value capability the store writes through.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemoryKV is an in-process KV, used in tests and when no preferences
// database can be opened.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites makes every Set fail.
	FailWrites bool
}

// ErrWriteFailed is returned by a MemoryKV with FailWrites set.
var ErrWriteFailed = errors.New("kv write failed")

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.data[key] = value
	return nil
}
