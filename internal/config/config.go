// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "os"

// Defaults applied after every other source has been merged.
const (
	DefaultDSN     = "formbuilder.sqlite"
	DefaultLogFile = "formbuilder.log"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: logging and form editing rules.
	App App `envPrefix:"APP_"`

	// Storage holds the key-value storage backend settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// UI holds terminal presentation settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Debug enables debug level logging.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// PreserveFieldIDs keeps the ids of stored fields when a form is edited
	// and saved again. By default every save assigns fresh field ids.
	// Env: APP_PRESERVE_FIELD_IDS
	PreserveFieldIDs bool `env:"PRESERVE_FIELD_IDS"`
}

// Storage groups the configuration of the storage backend.
type Storage struct {
	// DB holds the key-value backend connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection settings of the key-value backend.
type DB struct {
	// DSN selects the backend and its location:
	//   - postgres://... or postgresql://... for PostgreSQL;
	//   - file:... or a path ending in .json for a JSON file;
	//   - :memory: for a process-local map;
	//   - any other value is a SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// UI holds terminal presentation settings.
type UI struct {
	// AltScreen runs the form builder in the terminal's alternate screen.
	// A pointer so that an explicit false is not replaced by the default.
	// Env: UI_ALT_SCREEN
	AltScreen *bool `env:"ALT_SCREEN"`
}

// defaultConfig returns the values used for settings no source provided.
func defaultConfig() *StructuredConfig {
	altScreen := true
	return &StructuredConfig{
		App: App{
			LogFile: DefaultLogFile,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		UI: UI{AltScreen: &altScreen},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources, reading flags from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
