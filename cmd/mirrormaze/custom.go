package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <level>",
	Short: "Remove a custom level",
	Long: `Remove an imported level from the custom level database.
Built-in levels and level files cannot be deleted. Other custom levels
keep their IDs.

Examples:
  mirrormaze delete 9`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

// addStoredLevels puts every stored level into cat under its stored ID.
func addStoredLevels(cat *levels.Catalog, store *storage.Store) error {
	custom, err := store.Levels()
	if err != nil {
		return err
	}
	for _, def := range custom {
		cat.Put(def)
	}
	return nil
}

// importLevel gives def the next free catalog ID and stores it under that ID.
func importLevel(cat *levels.Catalog, store *storage.Store, def core.LevelDefinition) (int, error) {
	if err := addStoredLevels(cat, store); err != nil {
		return 0, err
	}
	def.ID = cat.Add(def)
	if err := store.SaveLevel(def); err != nil {
		return 0, err
	}
	return def.ID, nil
}

func runDelete(_ *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		exitf("Error: level must be a number, got %q\n", args[0])
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		exitf("Error opening level database: %v\n", err)
	}
	defer store.Close()

	def, err := store.Level(id)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	if def == nil {
		exitf("Error: level %d is not a custom level\n", id)
	}
	if err := store.DeleteLevel(id); err != nil {
		exitf("Error deleting level: %v\n", err)
	}

	logger.Info("level deleted", "level", id, "name", def.Name)
	fmt.Printf("Deleted level %d %q\n", id, def.Name)
}
