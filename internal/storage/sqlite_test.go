package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleLevel() core.LevelDefinition {
	return core.LevelDefinition{
		ID:          42,
		Name:        "Zigzag",
		Difficulty:  "Medium",
		Description: "Two turns",
		GridSize:    8,
		MinMoves:    2,
		Walls:       []core.Coord{core.C(3, 3), core.C(4, 3)},
		Emitters: []core.Emitter{
			{Pos: core.C(0, 1), Direction: core.Right, Color: core.White},
			{Pos: core.C(7, 7), Direction: core.Up, Color: core.Blue, Disabled: true},
		},
		Targets: []core.Target{
			{Pos: core.C(6, 6), RequiredColor: core.Red},
		},
		AvailablePieces: map[string]int{
			"mirror_left":  1,
			"mirror_right": 1,
			"filter_red":   1,
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "levels.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreSaveAndLoadLevel(t *testing.T) {
	store := openTestStore(t)
	def := sampleLevel()

	require.NoError(t, store.SaveLevel(def))

	got, err := store.Level(def.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, def.ID, got.ID)
	assert.Equal(t, def.Name, got.Name)
	assert.Equal(t, def.Difficulty, got.Difficulty)
	assert.Equal(t, def.Description, got.Description)
	assert.Equal(t, def.GridSize, got.GridSize)
	assert.Equal(t, def.MinMoves, got.MinMoves)
	assert.Equal(t, def.Walls, got.Walls)
	assert.Equal(t, def.Emitters, got.Emitters)
	assert.Equal(t, def.Targets, got.Targets)
	assert.Equal(t, def.AvailablePieces, got.AvailablePieces)
}

func TestStoreSaveRejectsMissingOrTakenID(t *testing.T) {
	store := openTestStore(t)

	def := sampleLevel()
	def.ID = 0
	assert.ErrorIs(t, store.SaveLevel(def), ErrInvalidID)

	require.NoError(t, store.SaveLevel(sampleLevel()))
	assert.Error(t, store.SaveLevel(sampleLevel()), "saving the same ID twice should fail")
}

func TestStoreLevelMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.Level(999)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreListAndDelete(t *testing.T) {
	store := openTestStore(t)

	first := sampleLevel()
	first.ID = 9
	second := sampleLevel()
	second.ID = 10
	second.Name = "Spiral"
	second.Difficulty = "Hard"

	require.NoError(t, store.SaveLevel(first))
	require.NoError(t, store.SaveLevel(second))

	entries, err := store.ListLevels()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 9, entries[0].ID)
	assert.Equal(t, "Zigzag", entries[0].Name)
	assert.Equal(t, 10, entries[1].ID)
	assert.Equal(t, "Hard", entries[1].Difficulty)
	assert.False(t, entries[0].CreatedAt.IsZero())

	defs, err := store.Levels()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, 10, defs[1].ID)
	assert.Equal(t, "Spiral", defs[1].Name)

	require.NoError(t, store.DeleteLevel(9))
	require.NoError(t, store.DeleteLevel(9))

	// The survivor keeps its ID.
	defs, err = store.Levels()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, 10, defs[0].ID)
	assert.Equal(t, "Spiral", defs[0].Name)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveLevel(sampleLevel()))
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Level(42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, "Zigzag", got.Name)
}
