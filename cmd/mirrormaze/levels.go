package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
	"github.com/vovakirdan/mirror-maze/internal/storage"
)

var (
	flagLevelsJSON    bool
	flagMinDifficulty string
	flagMaxDifficulty string
	flagLevelsCustom  bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels, level files from the configured levels
directory and custom levels imported into the database.

Examples:
  mirrormaze levels
  mirrormaze levels --min hard
  mirrormaze levels --custom
  mirrormaze levels --json`,
	Run: runLevels,
}

var showCmd = &cobra.Command{
	Use:   "show <level>",
	Short: "Describe a level",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagLevelsJSON, "json", false, "Print JSON instead of a table")
	levelsCmd.Flags().StringVar(&flagMinDifficulty, "min", "", "Lowest difficulty to list (easy, medium, hard, expert)")
	levelsCmd.Flags().StringVar(&flagMaxDifficulty, "max", "", "Highest difficulty to list")
	levelsCmd.Flags().BoolVar(&flagLevelsCustom, "custom", false, "List only imported levels with their import dates")
}

func runLevels(_ *cobra.Command, _ []string) {
	if flagLevelsCustom {
		runCustomLevels()
		return
	}

	lo, err := difficultyFlag(flagMinDifficulty)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	hi, err := difficultyFlag(flagMaxDifficulty)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	cat := mustCatalog()
	list := levels.Filter(cat.List(), lo, hi)

	if flagLevelsJSON {
		printJSON(list)
		return
	}

	if len(list) == 0 {
		fmt.Println("No levels available.")
		return
	}

	st := newStyler()
	fmt.Println(st.header("Available levels:"))
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range list {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %-3s  %-*s  %-10s  %s\n", "ID", maxNameLen, "Name", "Difficulty", "Description")
	fmt.Printf("  %-3s  %-*s  %-10s  %s\n", "--", maxNameLen, "----", "----------", "-----------")
	for _, l := range list {
		// Pad before styling so escape codes don't break alignment.
		diff := fmt.Sprintf("%-10s", l.Difficulty)
		fmt.Printf("  %-3d  %-*s  %s  %s\n", l.ID, maxNameLen, l.Name, st.difficulty(diff), l.Description)
	}

	fmt.Println()
	if len(list) < cat.Count() {
		fmt.Printf("Showing %d of %d levels.\n", len(list), cat.Count())
	}
	fmt.Println("Run 'mirrormaze show <id>' for details or 'mirrormaze play <id>' to play.")
}

// runCustomLevels lists the levels stored in the database.
func runCustomLevels() {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		exitf("Error opening level database: %v\n", err)
	}
	defer store.Close()

	entries, err := store.ListLevels()
	if err != nil {
		exitf("Error: %v\n", err)
	}

	if flagLevelsJSON {
		printJSON(entries)
		return
	}
	if len(entries) == 0 {
		fmt.Println("No custom levels. Add one with 'mirrormaze import <file>'.")
		return
	}

	st := newStyler()
	fmt.Println(st.header("Custom levels:"))
	fmt.Println()
	for _, e := range entries {
		diff := fmt.Sprintf("%-10s", e.Difficulty)
		fmt.Printf("  %-3d  %-20s  %s  %s\n", e.ID, e.Name, st.difficulty(diff), st.dim("imported "+e.CreatedAt.Format("2006-01-02")))
	}
}

func runShow(_ *cobra.Command, args []string) {
	def := mustLevel(mustCatalog(), args[0])
	st := newStyler()

	fmt.Printf("%s\n", st.header(fmt.Sprintf("Level %d - %s", def.ID, def.Name)))
	fmt.Printf("Difficulty: %s\n", st.difficulty(def.Difficulty))
	if def.Description != "" {
		fmt.Printf("%s\n", def.Description)
	}
	fmt.Printf("Grid: %dx%d   Par: %d moves   Walls: %d\n", def.Size(), def.Size(), def.MinMoves, len(def.Walls))
	fmt.Println()

	fmt.Println("Emitters:")
	for _, e := range def.Emitters {
		state := ""
		if e.Disabled {
			state = st.dim(" (off)")
		}
		fmt.Printf("  %-7s facing %-5s  %s%s\n", e.Pos, e.Direction, st.beam(e.Color), state)
	}

	fmt.Println("Targets:")
	for _, t := range def.Targets {
		fmt.Printf("  %-7s needs %s\n", t.Pos, st.beam(t.RequiredColor))
	}

	fmt.Println("Pieces:")
	if len(def.AvailablePieces) == 0 {
		fmt.Println("  " + st.dim("unlimited"))
	}
	for _, name := range formats.PieceNames(def) {
		fmt.Printf("  %-13s x%d\n", name, def.AvailablePieces[name])
	}
}

func difficultyFlag(s string) (levels.Difficulty, error) {
	if s == "" {
		return "", nil
	}
	d, ok := levels.ParseDifficulty(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// mustCatalog loads the level catalog or exits.
func mustCatalog() *levels.Catalog {
	cat, err := loadCatalog()
	if err != nil {
		exitf("Error loading levels: %v\n", err)
	}
	return cat
}

// mustLevel resolves a level ID argument or exits.
func mustLevel(cat *levels.Catalog, arg string) core.LevelDefinition {
	id, err := strconv.Atoi(arg)
	if err != nil {
		exitf("Error: level must be a number, got %q\n", arg)
	}
	def, ok := cat.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'mirrormaze levels' to see available levels.")
		os.Exit(1)
	}
	return def
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		exitf("Error encoding JSON: %v\n", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
