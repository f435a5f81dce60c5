// Package config provides YAML-based configuration loading for Mirror Maze.
package config

import "time"

// Config contains all runtime configuration.
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Storage  StorageConfig  `yaml:"storage"`
	Levels   LevelsConfig   `yaml:"levels"`
	Sessions SessionsConfig `yaml:"sessions"`
}

// StorageConfig locates the custom level database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LevelsConfig controls where level files are read from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Merged over the built-in catalog when set
}

// SessionsConfig controls idle session expiry.
type SessionsConfig struct {
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	CleanupPeriod time.Duration `yaml:"cleanup_period"`
}

// Environment variables that override file values.
const (
	EnvLogLevel  = "MIRRORMAZE_LOG_LEVEL"
	EnvDBPath    = "MIRRORMAZE_DB"
	EnvLevelsDir = "MIRRORMAZE_LEVELS_DIR"
)
