package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Save("documents", "lease.pdf", strings.NewReader("contract body"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("contract body")), n)

	rc, err := store.Open("documents", "lease.pdf")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "contract body", string(data))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("documents", "note.txt", strings.NewReader("first"))
	require.NoError(t, err)
	_, err = store.Save("documents", "note.txt", strings.NewReader("second"))
	require.NoError(t, err)

	rc, err := store.Open("documents", "note.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_OpenMissingObject(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open("documents", "nope.txt")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestStore_RemoveMissingIsNotAnError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Remove("documents", "nope.txt"))
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("documents", "gone.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove("documents", "gone.txt"))

	_, err = store.Open("documents", "gone.txt")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestStore_RejectsPathEscapes(t *testing.T) {
	store := newTestStore(t)

	bad := []struct {
		bucket string
		key    string
	}{
		{"..", "key"},
		{"documents", ".."},
		{"documents", "../escape"},
		{"documents", "a/b"},
		{"documents", `a\b`},
		{"", "key"},
		{"documents", ""},
		{".", "key"},
	}

	for _, tc := range bad {
		_, err := store.Save(tc.bucket, tc.key, strings.NewReader("x"))
		assert.Error(t, err, "bucket=%q key=%q", tc.bucket, tc.key)

		_, err = store.Open(tc.bucket, tc.key)
		assert.Error(t, err, "bucket=%q key=%q", tc.bucket, tc.key)
	}
}

func TestNewStore_EmptyRoot(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
