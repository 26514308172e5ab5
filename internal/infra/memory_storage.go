package infra

import (
	"encoding/json"
	"sync"

	"frebud/pkg/utils"
)

// MemoryStorage is the in-process Storage backend used by tests and by
// deployments that opt out of durability.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data: make(map[string]json.RawMessage),
	}
}

func (s *MemoryStorage) Load(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.data[key]
	if !ok || len(state) == 0 {
		return nil, false
	}
	return state, true
}

func (s *MemoryStorage) Save(key string, state interface{}) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return utils.ErrStorageError
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Seed injects a pre-encoded state for key, bypassing the envelope.
// Test helper for corrupt and legacy payloads.
func (s *MemoryStorage) Seed(key string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
}
