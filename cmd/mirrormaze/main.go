// mirrormaze is a command-line front end for the Mirror Maze optics puzzle.
//
// Usage:
//
//	mirrormaze levels              - List available levels
//	mirrormaze show <level>        - Show a level's emitters, targets and pieces
//	mirrormaze play <level>        - Apply a move script and report the result
//	mirrormaze session <level>     - Play a level move by move from stdin
//	mirrormaze hint <level>        - Print a hint for a board position
//	mirrormaze validate <file>     - Check a level file
//	mirrormaze import <file>       - Store a custom level
//	mirrormaze delete <level>      - Remove a custom level
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.mirrormaze, ./configs)
//	--db <path>          - Custom level database
//	--levels-dir <path>  - Extra level files merged over the built-ins
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mirror-maze/internal/config"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels"
	"github.com/vovakirdan/mirror-maze/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string

	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mirrormaze",
	Short: "Mirror Maze - guide light beams to their targets",
	Long: `Mirror Maze is an optics puzzle: place mirrors, splitters, colour
filters and prisms so that every target is lit by a beam of its colour.

Available commands:
  levels    - Show all available levels
  show      - Describe one level
  play      - Apply moves to a level and report the board
  session   - Play a level interactively
  hint      - Get a hint for a board position
  validate  - Check a level file
  import    - Store a custom level
  delete    - Remove a custom level

Examples:
  mirrormaze levels
  mirrormaze play 1 --do place:2,4:mirror_right --do place:2,2:mirror_left
  mirrormaze play 3 --moves solution.yaml --json
  mirrormaze validate my-level.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to custom level database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra level files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
}

// setup loads configuration and builds the logger before any command runs.
// Precedence: flags > environment (.env included) > config file.
func setup(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	appConfig = cfg

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mirrormaze",
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	log.SetDefault(logger)

	return nil
}

// fileCatalog loads the built-ins and the files from the configured levels
// directory.
func fileCatalog() (*levels.Catalog, error) {
	cat, err := levels.Builtin()
	if err != nil {
		return nil, err
	}

	if dir := appConfig.Levels.Dir; dir != "" {
		n, err := cat.Merge(dir, logger)
		if err != nil {
			logger.Warn("could not load levels directory", "dir", dir, "error", err)
		} else {
			logger.Debug("merged level files", "dir", dir, "count", n)
		}
	}
	return cat, nil
}

// loadCatalog assembles the level catalog: built-ins, then files from the
// configured levels directory, then custom levels from the database.
func loadCatalog() (*levels.Catalog, error) {
	cat, err := fileCatalog()
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open level database", "error", err)
		return cat, nil
	}
	defer store.Close()

	if err := addStoredLevels(cat, store); err != nil {
		logger.Warn("could not read custom levels", "error", err)
	}
	return cat, nil
}
