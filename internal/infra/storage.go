package infra

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"frebud/pkg/utils"
)

// Storage keys, one independent record per store.
const (
	AuthStorageKey   = "auth-storage"
	TravelStorageKey = "travel-storage"
	UIStorageKey     = "ui-storage"
)

// Envelope is the durable record shape: the persisted projection of a
// store wrapped under a "state" key.
type Envelope struct {
	State json.RawMessage `json:"state"`
}

// Storage is the durable key-value boundary. Each key holds one JSON
// envelope. There is no transaction across keys.
type Storage interface {
	// Load returns the envelope state for key, or false when the key is
	// absent or its content cannot be decoded.
	Load(key string) (json.RawMessage, bool)
	Save(key string, state interface{}) error
	Delete(key string) error
}

// FileStorage keeps one JSON file per key under a data directory.
type FileStorage struct {
	mu  sync.Mutex
	dir string
}

func InitFileStorage() *FileStorage {
	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Error creating data directory: %v", err)
		log.Fatal("Error initializing storage")
	}

	return &FileStorage{dir: dir}
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	// Keys are fixed constants, but keep path traversal out anyway.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStorage) Load(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		log.Printf("Discarding malformed storage record %q: %v", key, err)
		return nil, false
	}
	if len(env.State) == 0 {
		return nil, false
	}
	return env.State, true
}

func (s *FileStorage) Save(key string, state interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return utils.ErrStorageError
	}

	blob, err := json.Marshal(Envelope{State: raw})
	if err != nil {
		return utils.ErrStorageError
	}

	if err := os.WriteFile(s.path(key), blob, 0o644); err != nil {
		log.Printf("Error writing storage record %q: %v", key, err)
		return utils.ErrStorageError
	}
	return nil
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return utils.ErrStorageError
	}
	return nil
}
