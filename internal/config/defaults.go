package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mirrormaze.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Storage: StorageConfig{
			Path: "~/.mirrormaze/levels.db",
		},
		Sessions: SessionsConfig{
			IdleTimeout:   30 * time.Minute,
			CleanupPeriod: time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
