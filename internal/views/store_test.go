package views

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "views.json"))
}

func TestStoreListMissingFile(t *testing.T) {
	store := newTestStore(t)

	views, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestStoreSaveAndList(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(SavedView{Name: "seniors", Query: "pageSize=50"}))
	require.NoError(t, store.Save(SavedView{Name: "berlin", Query: `filter={"q":["berlin"]}`}))

	views, err := store.List()
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "berlin", views[0].Name)
	assert.Equal(t, "seniors", views[1].Name)
	assert.WithinDuration(t, time.Now().UTC(), views[0].SavedAt, time.Minute)
}

func TestStoreSaveUpserts(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(SavedView{Name: "seniors", Query: "page=1"}))
	require.NoError(t, store.Save(SavedView{Name: "seniors", Query: "page=9"}))

	views, err := store.List()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "page=9", views[0].Query)
}

func TestStoreSaveRequiresName(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(SavedView{Name: "  ", Query: "page=1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestStoreGet(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(SavedView{Name: "seniors", Query: "pageSize=50"}))

	view, err := store.Get("seniors")
	require.NoError(t, err)
	assert.Equal(t, "pageSize=50", view.Query)

	_, err = store.Get("juniors")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `view "juniors" is not saved`)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(SavedView{Name: "seniors", Query: "pageSize=50"}))

	require.NoError(t, store.Delete("seniors"))

	views, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, views)

	require.Error(t, store.Delete("seniors"))
}

func TestStoreRejectsCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := NewStore(path).List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding views file")
}
