// Package levels provides level loading, validation and the built-in catalog.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader that logs through the default logger.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, Logger: log.Default()}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped with a warning.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]core.LevelDefinition, error) {
	levels, err := loadFS(os.DirFS(l.Root), ".", l.logger())
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (core.LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.LevelDefinition{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	def, err := parseLevel(data, path)
	if err != nil {
		return core.LevelDefinition{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return def, nil
}

func (l *Loader) logger() *log.Logger {
	if l.Logger == nil {
		return log.Default()
	}
	return l.Logger
}

// loadFS walks fsys from root and parses every supported file.
func loadFS(fsys fs.FS, root string, logger *log.Logger) ([]core.LevelDefinition, error) {
	var levels []core.LevelDefinition

	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		def, err := parseLevel(data, p)
		if err != nil {
			logger.Warn("skipping level file", "path", p, "error", err)
			return nil
		}

		levels = append(levels, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// parseLevel routes to the parser for the file extension and validates the result.
func parseLevel(data []byte, name string) (core.LevelDefinition, error) {
	var (
		def core.LevelDefinition
		err error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		def, err = formats.ParseYAML(data)
	default:
		return core.LevelDefinition{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return core.LevelDefinition{}, err
	}
	if err := Validate(def); err != nil {
		return core.LevelDefinition{}, err
	}
	return def, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
