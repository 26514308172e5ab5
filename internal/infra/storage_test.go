package infra

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestFileStorage_RoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	state := testState{Count: 3, Tags: []string{"bali", "kyoto"}}
	require.NoError(t, storage.Save(TravelStorageKey, state))

	raw, ok := storage.Load(TravelStorageKey)
	require.True(t, ok)

	var got testState
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, state, got)
}

func TestFileStorage_EnvelopeOnDisk(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, storage.Save(UIStorageKey, testState{Count: 1}))

	blob, err := os.ReadFile(filepath.Join(dir, UIStorageKey+".json"))
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(blob, &env))
	assert.NotEmpty(t, env.State)
}

func TestFileStorage_MissingKey(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, ok := storage.Load(AuthStorageKey)
	assert.False(t, ok)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, AuthStorageKey+".json")
	require.NoError(t, os.WriteFile(path, []byte(`{"state": {`), 0o644))

	_, ok := storage.Load(AuthStorageKey)
	assert.False(t, ok)
}

func TestFileStorage_Delete(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Save(AuthStorageKey, testState{Count: 1}))
	require.NoError(t, storage.Delete(AuthStorageKey))

	_, ok := storage.Load(AuthStorageKey)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, storage.Delete(AuthStorageKey))
}

func TestMemoryStorage_RoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Save(TravelStorageKey, testState{Count: 7}))

	raw, ok := storage.Load(TravelStorageKey)
	require.True(t, ok)

	var got testState
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 7, got.Count)

	require.NoError(t, storage.Delete(TravelStorageKey))
	_, ok = storage.Load(TravelStorageKey)
	assert.False(t, ok)
}

func TestStorageKeys_AreIndependent(t *testing.T) {
	storage := NewMemoryStorage()

	require.NoError(t, storage.Save(AuthStorageKey, testState{Count: 1}))
	require.NoError(t, storage.Save(TravelStorageKey, testState{Count: 2}))
	require.NoError(t, storage.Delete(AuthStorageKey))

	_, ok := storage.Load(AuthStorageKey)
	assert.False(t, ok)
	raw, ok := storage.Load(TravelStorageKey)
	require.True(t, ok)

	var got testState
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 2, got.Count)
}
