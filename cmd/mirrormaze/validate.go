package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/storage"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level files",
	Long: `Parse and validate one or more level files without storing them.

Examples:
  mirrormaze validate my-level.yaml
  mirrormaze validate levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store a custom level",
	Long: `Validate a level file and store it in the custom level database.
The level is given the next free ID after every existing level and
keeps that ID.

Examples:
  mirrormaze import my-level.yaml
  mirrormaze import my-level.yaml --db ./levels.db`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runValidate(_ *cobra.Command, args []string) {
	st := newStyler()
	loader := levels.NewLoader("")

	failed := 0
	for _, path := range args {
		def, err := loader.LoadFile(path)
		if err != nil {
			failed++
			var verr levels.ValidationError
			if errors.As(err, &verr) {
				fmt.Printf("%s %s: %s %s\n", st.status(false, "", "FAIL"), path, verr.Code, verr.Message)
			} else {
				fmt.Printf("%s %s: %v\n", st.status(false, "", "FAIL"), path, err)
			}
			continue
		}
		fmt.Printf("%s %s: level %d %q (%dx%d, %d emitters, %d targets)\n",
			st.status(true, "OK", ""), path, def.ID, def.Name, def.Size(), def.Size(), len(def.Emitters), len(def.Targets))
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func runImport(_ *cobra.Command, args []string) {
	def, err := levels.NewLoader("").LoadFile(args[0])
	if err != nil {
		exitf("Error: %v\n", err)
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		exitf("Error opening level database: %v\n", err)
	}
	defer store.Close()

	cat, err := fileCatalog()
	if err != nil {
		exitf("Error loading levels: %v\n", err)
	}
	id, err := importLevel(cat, store, def)
	if err != nil {
		exitf("Error saving level: %v\n", err)
	}

	logger.Info("level imported", "file", args[0], "name", def.Name, "level", id)
	fmt.Printf("Imported %q as level %d\n", def.Name, id)
	fmt.Printf("Play it with 'mirrormaze play %d'.\n", id)
}
