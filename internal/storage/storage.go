// Package storage provides abstractions for persisting the domain state.
package storage

import (
	"context"

	"github.com/devarsh/contractor-ledger/internal/models"
)

// Snapshot is the full domain state exchanged with a storage backend.
// It is written whole after every mutation and read whole at startup;
// backends never see incremental changes.
type Snapshot struct {
	Projects []models.Project `json:"projects"`
	Expenses []models.Expense `json:"expenses"`
	Bills    []models.Bill    `json:"bills"`
	Payments []models.Payment `json:"payments"`
}

// Snapshots persists and restores domain snapshots.
// This abstraction allows swapping storage backends (JSON files, SQLite)
// without changing the application shell.
type Snapshots interface {
	// Load returns the last saved snapshot. A backend with no usable
	// saved state (absent or malformed) returns an empty snapshot, not
	// an error; errors are reserved for I/O failures.
	Load(ctx context.Context) (*Snapshot, error)

	// Save durably replaces the saved state with snap.
	Save(ctx context.Context, snap *Snapshot) error
}

// Sessions persists the signed session token between runs.
type Sessions interface {
	// SaveToken durably stores the session token.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored token, or "" when none is stored.
	LoadToken(ctx context.Context) (string, error)

	// ClearToken removes any stored token.
	ClearToken(ctx context.Context) error
}

// Store is the complete persistence contract a backend implements.
type Store interface {
	Snapshots
	Sessions

	// Close releases any resources held by the store.
	Close() error
}
