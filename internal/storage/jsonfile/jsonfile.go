// Package jsonfile provides a JSON-file implementation of the storage.Store
// interface. Each collection is written as its own document under a data
// directory, so a snapshot on disk looks like:
//
//	data/
//	  projects.json
//	  expenses.json
//	  bills.json
//	  payments.json
//	  session.json
//
// Writes go through a temp file and rename so a crash never leaves a
// half-written document. Missing or malformed documents load as empty
// collections rather than failing startup.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage"
)

const (
	projectsFile = "projects.json"
	expensesFile = "expenses.json"
	billsFile    = "bills.json"
	paymentsFile = "payments.json"
	sessionFile  = "session.json"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a directory of JSON documents.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Close is a no-op; the store holds no open resources.
func (s *Store) Close() error {
	return nil
}

// Load reads every collection document. Absent files yield empty
// collections; a file that fails to decode is logged and treated as empty
// so a damaged snapshot never blocks startup.
func (s *Store) Load(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{}
	var err error
	if snap.Projects, err = loadDoc[[]models.Project](s.dir, projectsFile); err != nil {
		return nil, err
	}
	if snap.Expenses, err = loadDoc[[]models.Expense](s.dir, expensesFile); err != nil {
		return nil, err
	}
	if snap.Bills, err = loadDoc[[]models.Bill](s.dir, billsFile); err != nil {
		return nil, err
	}
	if snap.Payments, err = loadDoc[[]models.Payment](s.dir, paymentsFile); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save writes every collection document atomically.
func (s *Store) Save(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil {
		snap = &storage.Snapshot{}
	}
	if err := s.writeDoc(projectsFile, snap.Projects); err != nil {
		return err
	}
	if err := s.writeDoc(expensesFile, snap.Expenses); err != nil {
		return err
	}
	if err := s.writeDoc(billsFile, snap.Bills); err != nil {
		return err
	}
	return s.writeDoc(paymentsFile, snap.Payments)
}

// sessionDoc is the on-disk shape of the persisted session token.
type sessionDoc struct {
	Token string `json:"token"`
}

// SaveToken stores the session token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.writeDoc(sessionFile, sessionDoc{Token: token})
}

// LoadToken returns the stored session token, or "" when none is stored.
func (s *Store) LoadToken(ctx context.Context) (string, error) {
	doc, err := loadDoc[sessionDoc](s.dir, sessionFile)
	if err != nil {
		return "", err
	}
	return doc.Token, nil
}

// ClearToken removes the stored session token.
func (s *Store) ClearToken(ctx context.Context) error {
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// loadDoc decodes one document; a missing or malformed file yields the
// zero value.
func loadDoc[T any](dir, name string) (T, error) {
	var zero T
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", name, err)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("discarding malformed document", "file", name, "error", err)
		return zero, nil
	}
	return v, nil
}

func (s *Store) writeDoc(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
