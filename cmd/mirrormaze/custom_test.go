package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/storage"
)

func builtinCatalog(t *testing.T) *levels.Catalog {
	t.Helper()
	cat, err := levels.Builtin()
	require.NoError(t, err)
	return cat
}

func TestImportedLevelsKeepTheirIDs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "levels.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	first := cornerLevel()
	first.Name = "First"
	second := cornerLevel()
	second.Name = "Second"

	id1, err := importLevel(builtinCatalog(t), store, first)
	require.NoError(t, err)
	id2, err := importLevel(builtinCatalog(t), store, second)
	require.NoError(t, err)
	assert.Equal(t, 9, id1)
	assert.Equal(t, 10, id2)

	require.NoError(t, store.DeleteLevel(id1))

	cat := builtinCatalog(t)
	require.NoError(t, addStoredLevels(cat, store))
	_, ok := cat.Get(9)
	assert.False(t, ok, "deleted level should be gone")
	got, ok := cat.Get(10)
	require.True(t, ok)
	assert.Equal(t, "Second", got.Name, "surviving level must not be renumbered")

	third := cornerLevel()
	third.Name = "Third"
	id3, err := importLevel(builtinCatalog(t), store, third)
	require.NoError(t, err)
	assert.Equal(t, 11, id3)
}

func TestImportedIDMatchesReloadedCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "levels.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)

	def := cornerLevel()
	def.Name = "Reopened"
	id, err := importLevel(builtinCatalog(t), store, def)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	cat := builtinCatalog(t)
	require.NoError(t, addStoredLevels(cat, store))
	got, ok := cat.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Reopened", got.Name)
}
