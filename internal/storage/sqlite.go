// Package storage persists custom level definitions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/mirror-maze/internal/maze/core"
	"github.com/vovakirdan/mirror-maze/internal/maze/levels/formats"
)

// Store manages the SQLite database connection for custom levels.
type Store struct {
	db *sql.DB
}

// LevelEntry is the listing view of a stored level.
type LevelEntry struct {
	ID         int
	Name       string
	Difficulty string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// The id column is the level's catalog ID; definition holds the level in
// its YAML file form.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS custom_levels (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_custom_levels_name ON custom_levels(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ErrInvalidID is returned when saving a level without a positive ID.
var ErrInvalidID = errors.New("storage: level ID must be positive")

// SaveLevel stores a level definition under its own ID.
// Saving over an ID that is already stored fails.
func (s *Store) SaveLevel(def core.LevelDefinition) error {
	if def.ID <= 0 {
		return ErrInvalidID
	}
	data, err := formats.MarshalYAML(def)
	if err != nil {
		return fmt.Errorf("storage: cannot encode level: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT INTO custom_levels (id, name, difficulty, definition) VALUES (?, ?, ?, ?)",
		def.ID, def.Name, def.Difficulty, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %d: %w", def.ID, err)
	}
	return nil
}

// Level retrieves a stored level by ID.
// Returns nil, nil if no such level exists.
func (s *Store) Level(id int) (*core.LevelDefinition, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT definition FROM custom_levels WHERE id = ?",
		id,
	).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}

	def, err := formats.ParseYAML([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("storage: level %d: %w", id, err)
	}
	def.ID = id
	return &def, nil
}

// Levels retrieves every stored level definition ordered by ID.
func (s *Store) Levels() ([]core.LevelDefinition, error) {
	rows, err := s.db.Query("SELECT id, definition FROM custom_levels ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var defs []core.LevelDefinition
	for rows.Next() {
		var (
			id   int
			data string
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		def, err := formats.ParseYAML([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("storage: level %d: %w", id, err)
		}
		def.ID = id
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return defs, nil
}

// ListLevels returns the stored levels ordered by ID.
func (s *Store) ListLevels() ([]LevelEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, difficulty, created_at
		 FROM custom_levels
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLevel removes a stored level. Deleting a missing level is not an error.
func (s *Store) DeleteLevel(id int) error {
	_, err := s.db.Exec("DELETE FROM custom_levels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
