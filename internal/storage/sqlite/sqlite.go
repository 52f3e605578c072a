// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface. Save replaces all rows in one transaction so the
// database always holds exactly one snapshot; it is an alternative backend
// to jsonfile, not an incremental CRUD layer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/shopspring/decimal"

	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with snap in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, snap *storage.Snapshot) error {
	if snap == nil {
		snap = &storage.Snapshot{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"projects", "expenses", "bills", "payments"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, p := range snap.Projects {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, client, location, status, budget, spent, start_date, end_date, progress)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Client, p.Location, string(p.Status),
			p.Budget.String(), p.Spent.String(),
			p.StartDate.String(), p.EndDate.String(), p.Progress,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
	}

	for _, e := range snap.Expenses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (id, project_id, project_name, category, description, amount, date, payment_method)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.ProjectID, e.ProjectName, e.Category, e.Description,
			e.Amount.String(), e.Date.String(), e.PaymentMethod,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}

	for _, b := range snap.Bills {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bills (id, project_id, project_name, vendor, bill_number, amount, date, due_date, status, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.ProjectID, b.ProjectName, b.Vendor, b.BillNumber,
			b.Amount.String(), b.Date.String(), b.DueDate.String(),
			string(b.Status), b.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill: %w", err)
		}
	}

	for _, p := range snap.Payments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payments (id, project_id, amount, status, date)
			 VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.ProjectID, p.Amount.String(), string(p.Status), p.Date.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load reads the stored snapshot.
func (s *SQLiteStore) Load(ctx context.Context) (*storage.Snapshot, error) {
	snap := &storage.Snapshot{}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, client, location, status, budget, spent, start_date, end_date, progress FROM projects")
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p models.Project
		var status, budget, spent, start, end string
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.Location, &status,
			&budget, &spent, &start, &end, &p.Progress); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Status = models.ProjectStatus(status)
		if p.Budget, err = decimal.NewFromString(budget); err != nil {
			return nil, fmt.Errorf("failed to parse project budget: %w", err)
		}
		if p.Spent, err = decimal.NewFromString(spent); err != nil {
			return nil, fmt.Errorf("failed to parse project spent: %w", err)
		}
		if p.StartDate, err = models.ParseDate(start); err != nil {
			return nil, fmt.Errorf("failed to parse project start date: %w", err)
		}
		if p.EndDate, err = models.ParseDate(end); err != nil {
			return nil, fmt.Errorf("failed to parse project end date: %w", err)
		}
		snap.Projects = append(snap.Projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	expRows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, project_name, category, description, amount, date, payment_method FROM expenses")
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer expRows.Close()
	for expRows.Next() {
		var e models.Expense
		var amount, date string
		if err := expRows.Scan(&e.ID, &e.ProjectID, &e.ProjectName, &e.Category,
			&e.Description, &amount, &date, &e.PaymentMethod); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse expense amount: %w", err)
		}
		if e.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse expense date: %w", err)
		}
		snap.Expenses = append(snap.Expenses, e)
	}
	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	billRows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, project_name, vendor, bill_number, amount, date, due_date, status, description FROM bills")
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer billRows.Close()
	for billRows.Next() {
		var b models.Bill
		var amount, date, due, status string
		if err := billRows.Scan(&b.ID, &b.ProjectID, &b.ProjectName, &b.Vendor,
			&b.BillNumber, &amount, &date, &due, &status, &b.Description); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		b.Status = models.BillStatus(status)
		if b.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse bill amount: %w", err)
		}
		if b.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse bill date: %w", err)
		}
		if b.DueDate, err = models.ParseDate(due); err != nil {
			return nil, fmt.Errorf("failed to parse bill due date: %w", err)
		}
		snap.Bills = append(snap.Bills, b)
	}
	if err := billRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	payRows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, amount, status, date FROM payments")
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer payRows.Close()
	for payRows.Next() {
		var p models.Payment
		var amount, status, date string
		if err := payRows.Scan(&p.ID, &p.ProjectID, &amount, &status, &date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Status = models.PaymentStatus(status)
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse payment amount: %w", err)
		}
		if p.Date, err = models.ParseDate(date); err != nil {
			return nil, fmt.Errorf("failed to parse payment date: %w", err)
		}
		snap.Payments = append(snap.Payments, p)
	}
	if err := payRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return snap, nil
}

// SaveToken stores the session token, replacing any previous one.
func (s *SQLiteStore) SaveToken(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (id, token) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET token = excluded.token`, token)
	if err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// LoadToken returns the stored session token, or "" when none is stored.
func (s *SQLiteStore) LoadToken(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, "SELECT token FROM session WHERE id = 1").Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session token: %w", err)
	}
	return token, nil
}

// ClearToken removes the stored session token.
func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
