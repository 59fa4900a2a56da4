package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddRemoveHas(t *testing.T) {
	l := New(NewMemoryStore())

	active, err := l.Has(KeyLikedAphorisms, "a1")
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, l.Add(KeyLikedAphorisms, "a1"))

	active, err = l.Has(KeyLikedAphorisms, "a1")
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, l.Remove(KeyLikedAphorisms, "a1"))

	active, err = l.Has(KeyLikedAphorisms, "a1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLedger_AddIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	l := New(store)

	require.NoError(t, l.Add(KeyLikedReflections, "r1"))
	require.NoError(t, l.Add(KeyLikedReflections, "r1"))

	ids, err := store.Get(KeyLikedReflections)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
}

func TestLedger_RemoveMissingIsNoop(t *testing.T) {
	l := New(NewMemoryStore())

	require.NoError(t, l.Add(KeyDislikedReflections, "r1"))
	require.NoError(t, l.Remove(KeyDislikedReflections, "r2"))

	active, err := l.Has(KeyDislikedReflections, "r1")
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLedger_KeysAreIndependent(t *testing.T) {
	l := New(NewMemoryStore())

	require.NoError(t, l.Add(KeyLikedReflections, "r1"))

	active, err := l.Has(KeyDislikedReflections, "r1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestLedger_Toggle(t *testing.T) {
	l := New(NewMemoryStore())

	active, err := l.Toggle(KeyLikedAphorisms, "a1")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = l.Toggle(KeyLikedAphorisms, "a1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	store := NewFileStore(path)
	require.NoError(t, store.Set(KeyLikedAphorisms, []string{"a1", "a2"}))
	require.NoError(t, store.Set(KeyLikedReflections, []string{"r1"}))

	// A fresh store over the same file sees the persisted sets.
	reopened := NewFileStore(path)

	ids, err := reopened.Get(KeyLikedAphorisms)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, ids)

	ids, err = reopened.Get(KeyLikedReflections)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	ids, err := store.Get(KeyLikedAphorisms)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	store := NewFileStore(path)

	_, err := store.Get(KeyLikedAphorisms)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode ledger file")
}
