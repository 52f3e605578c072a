// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backend names accepted by Config.Storage.
const (
	StorageJSONFile = "jsonfile"
	StorageSQLite   = "sqlite"
)

// Config holds everything the application shell needs to wire itself up.
type Config struct {
	// DataDir is where snapshots and the session token live.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	// Storage selects the snapshot backend: jsonfile or sqlite.
	Storage string `env:"STORAGE_BACKEND" envDefault:"jsonfile"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// SessionSecret signs session tokens. The default only has to keep a
	// local single-user session honest across restarts, not stop an
	// attacker with file access.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"contractor-ledger-local"`

	// SessionTTL is how long a persisted session stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch cfg.Storage {
	case StorageJSONFile, StorageSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	return cfg, nil
}
