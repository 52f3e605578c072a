// Package app is the application shell: it owns the domain store, restores
// it from the persisted snapshot at startup, saves a snapshot after every
// mutation, and gates everything behind the login session. An embedding UI
// holds one App and drives it in response to user actions; the shell itself
// renders nothing.
//
// Like the store it wraps, an App is owned by a single goroutine.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/devarsh/contractor-ledger/internal/auth"
	"github.com/devarsh/contractor-ledger/internal/config"
	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage"
	"github.com/devarsh/contractor-ledger/internal/storage/jsonfile"
	"github.com/devarsh/contractor-ledger/internal/storage/sqlite"
	"github.com/devarsh/contractor-ledger/internal/store"
	"github.com/devarsh/contractor-ledger/pkg/logging"
)

// App wires the domain store to persistence, authentication and the session.
type App struct {
	store    *store.Store
	storage  storage.Store
	auth     auth.Authenticator
	sessions *auth.SessionManager

	authenticated bool
	username      string
}

// New builds an App over the given collaborators, restores the persisted
// snapshot and resumes any still-valid session.
func New(ctx context.Context, st storage.Store, authn auth.Authenticator, sessions *auth.SessionManager) (*App, error) {
	a := &App{
		store:    store.New(),
		storage:  st,
		auth:     authn,
		sessions: sessions,
	}

	snap, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	a.store.Restore(snap)

	token, err := st.LoadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if token != "" {
		claims, err := sessions.Validate(token)
		if err != nil {
			slog.Warn("Discarding stale session", "error", err)
			if err := st.ClearToken(ctx); err != nil {
				slog.Warn("Failed to clear stale session", "error", err)
			}
		} else {
			a.authenticated = true
			a.username = claims.DisplayName
			slog.Info("Session resumed", "user", a.username)
		}
	}

	return a, nil
}

// FromConfig sets up logging, opens the configured storage backend and
// builds an App with the placeholder accept-anything authenticator.
// Close the returned storage.Store when done with the App.
func FromConfig(ctx context.Context, cfg config.Config) (*App, storage.Store, error) {
	logging.Setup(cfg.LogLevel)

	var (
		st  storage.Store
		err error
	)
	switch cfg.Storage {
	case config.StorageSQLite:
		st, err = sqlite.New(filepath.Join(cfg.DataDir, "ledger.db"))
	default:
		st, err = jsonfile.New(cfg.DataDir)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage, err)
	}

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	a, err := New(ctx, st, auth.AcceptAll{}, sessions)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return a, st, nil
}

// Login authenticates the credentials, records the session and persists a
// session token so the next start resumes logged in.
func (a *App) Login(ctx context.Context, username, password string) error {
	displayName, err := a.auth.Authenticate(ctx, username, password)
	if err != nil {
		slog.Warn("Login rejected", "user", username, "error", err)
		return err
	}

	token, err := a.sessions.Issue(displayName)
	if err != nil {
		return fmt.Errorf("failed to issue session: %w", err)
	}
	if err := a.storage.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	a.authenticated = true
	a.username = displayName
	slog.Info("Logged in", "user", displayName)
	return nil
}

// Logout ends the session and removes the persisted token.
func (a *App) Logout(ctx context.Context) error {
	a.authenticated = false
	a.username = ""
	if err := a.storage.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	slog.Info("Logged out")
	return nil
}

// Authenticated reports whether a user is logged in.
func (a *App) Authenticated() bool {
	return a.authenticated
}

// Username returns the display name of the logged-in user, or "".
func (a *App) Username() string {
	return a.username
}

// AddProject creates a project and persists the updated state.
func (a *App) AddProject(ctx context.Context, data models.NewProject) (models.Project, error) {
	p := a.store.AddProject(data)
	if err := a.save(ctx); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// UpdateProject merges the given fields into a project and persists.
func (a *App) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) error {
	a.store.UpdateProject(id, update)
	return a.save(ctx)
}

// DeleteProject removes a project and its dependents and persists.
func (a *App) DeleteProject(ctx context.Context, id string) error {
	a.store.DeleteProject(id)
	return a.save(ctx)
}

// AddExpense creates an expense and persists the updated state.
func (a *App) AddExpense(ctx context.Context, data models.NewExpense) (models.Expense, error) {
	e := a.store.AddExpense(data)
	if err := a.save(ctx); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes an expense and persists.
func (a *App) DeleteExpense(ctx context.Context, id string) error {
	a.store.DeleteExpense(id)
	return a.save(ctx)
}

// AddBill creates a bill and persists the updated state.
func (a *App) AddBill(ctx context.Context, data models.NewBill) (models.Bill, error) {
	b := a.store.AddBill(data)
	if err := a.save(ctx); err != nil {
		return models.Bill{}, err
	}
	return b, nil
}

// UpdateBillStatus overwrites a bill's status and persists.
func (a *App) UpdateBillStatus(ctx context.Context, id string, status models.BillStatus) error {
	a.store.UpdateBillStatus(id, status)
	return a.save(ctx)
}

// DeleteBill removes a bill and persists.
func (a *App) DeleteBill(ctx context.Context, id string) error {
	a.store.DeleteBill(id)
	return a.save(ctx)
}

// Projects returns the current project collection.
func (a *App) Projects() []models.Project { return a.store.Projects() }

// Expenses returns the current expense collection.
func (a *App) Expenses() []models.Expense { return a.store.Expenses() }

// Bills returns the current bill collection.
func (a *App) Bills() []models.Bill { return a.store.Bills() }

// Payments returns the current payment collection.
func (a *App) Payments() []models.Payment { return a.store.Payments() }

// Project returns the project with the given ID.
func (a *App) Project(id string) (models.Project, bool) { return a.store.Project(id) }

func (a *App) save(ctx context.Context) error {
	if err := a.storage.Save(ctx, a.store.Snapshot()); err != nil {
		slog.Error("Snapshot save failed", "error", err)
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
