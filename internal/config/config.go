// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  3. Plain environment variables with built-in defaults, so the console
//     works out of the box with no config file at all.
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backend names accepted by StorageBackend.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// StoragePath is the data file: the three-line text file for the
	// text backend, or the .db file for the sqlite backend.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"students.dat" validate:"required"`

	// StorageBackend selects the persistence adapter.
	StorageBackend string `yaml:"storage_backend" env:"STORAGE_BACKEND" env-default:"text" validate:"oneof=text sqlite"`
}

// ResolvePath picks the config file path: the flag value wins, then the
// CONFIG_PATH environment variable. An empty result means "no file".
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}

// Load reads the configuration from configPath, or from the environment
// alone when configPath is empty, and validates the result.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Verify the file exists before trying to read it, so the user
		// gets a clear message rather than a cryptic "open: ..." later.
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}

		// cleanenv.ReadConfig reads the YAML file, then applies env:"..."
		// overrides and env-default values.
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}

	return &cfg, nil
}
