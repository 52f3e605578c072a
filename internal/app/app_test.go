package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devarsh/contractor-ledger/internal/auth"
	"github.com/devarsh/contractor-ledger/internal/config"
	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage/jsonfile"
)

// newTestApp builds an App over a jsonfile store in dir, so a second App
// over the same dir observes what the first persisted.
func newTestApp(t *testing.T, dir string) *App {
	t.Helper()
	st, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	sessions := auth.NewSessionManager("test-secret", time.Hour)
	a, err := New(context.Background(), st, auth.AcceptAll{}, sessions)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	return a
}

func TestMutationsArePersisted(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a := newTestApp(t, dir)
	p, err := a.AddProject(ctx, models.NewProject{
		Name:   "Riverside Villas",
		Client: "Mehta Group",
		Status: models.ProjectActive,
		Budget: decimal.NewFromInt(500000),
	})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	if _, err := a.AddExpense(ctx, models.NewExpense{
		ProjectID: p.ID,
		Category:  "Materials",
		Amount:    decimal.NewFromInt(12500),
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	// A fresh App over the same directory sees the saved state.
	reloaded := newTestApp(t, dir)
	projects := reloaded.Projects()
	if len(projects) != 1 || projects[0].Name != "Riverside Villas" {
		t.Fatalf("reloaded projects = %+v", projects)
	}
	if !projects[0].Spent.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("reloaded Spent = %s, want 12500", projects[0].Spent)
	}
	if len(reloaded.Expenses()) != 1 {
		t.Errorf("reloaded expenses = %d, want 1", len(reloaded.Expenses()))
	}

	// Deletes persist too.
	if err := reloaded.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	final := newTestApp(t, dir)
	if len(final.Projects()) != 0 || len(final.Expenses()) != 0 {
		t.Error("cascade delete was not persisted")
	}
}

func TestLoginPersistsSession(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a := newTestApp(t, dir)
	if a.Authenticated() {
		t.Fatal("fresh app should not be authenticated")
	}

	if err := a.Login(ctx, "ravi", ""); !errors.Is(err, auth.ErrEmptyCredentials) {
		t.Fatalf("empty password: err = %v, want ErrEmptyCredentials", err)
	}
	if a.Authenticated() {
		t.Fatal("failed login must not authenticate")
	}

	if err := a.Login(ctx, "ravi", "anything"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !a.Authenticated() || a.Username() != "ravi" {
		t.Fatalf("authenticated = %v, username = %q", a.Authenticated(), a.Username())
	}

	// The session survives a restart.
	resumed := newTestApp(t, dir)
	if !resumed.Authenticated() || resumed.Username() != "ravi" {
		t.Errorf("session not resumed: authenticated = %v, username = %q",
			resumed.Authenticated(), resumed.Username())
	}

	if err := resumed.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if resumed.Authenticated() || resumed.Username() != "" {
		t.Error("logout did not clear the session")
	}

	after := newTestApp(t, dir)
	if after.Authenticated() {
		t.Error("session survived logout across restart")
	}
}

func TestExpiredSessionFallsBackToLogin(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	st, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	expired := auth.NewSessionManager("test-secret", -time.Minute)
	a, err := New(ctx, st, auth.AcceptAll{}, expired)
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	if err := a.Login(ctx, "ravi", "anything"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// The token on disk is already expired; a restart discards it.
	resumed := newTestApp(t, dir)
	if resumed.Authenticated() {
		t.Error("expired session was resumed")
	}
}

func TestFromConfig(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{config.StorageJSONFile, config.StorageSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Config{
				DataDir:       t.TempDir(),
				Storage:       backend,
				LogLevel:      "warn",
				SessionSecret: "test-secret",
				SessionTTL:    time.Hour,
			}
			a, st, err := FromConfig(ctx, cfg)
			if err != nil {
				t.Fatalf("FromConfig failed: %v", err)
			}
			defer st.Close()

			if _, err := a.AddProject(ctx, models.NewProject{Name: "Site A"}); err != nil {
				t.Fatalf("AddProject failed: %v", err)
			}

			reopened, st2, err := FromConfig(ctx, cfg)
			if err != nil {
				t.Fatalf("second FromConfig failed: %v", err)
			}
			defer st2.Close()
			if len(reopened.Projects()) != 1 {
				t.Errorf("projects = %d, want 1", len(reopened.Projects()))
			}
		})
	}
}

func TestBillLifecycleThroughApp(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, t.TempDir())

	p, err := a.AddProject(ctx, models.NewProject{Name: "Site A", Budget: decimal.NewFromInt(1000)})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	b, err := a.AddBill(ctx, models.NewBill{
		ProjectID:  p.ID,
		Vendor:     "Steel Traders",
		BillNumber: "INV-042",
		Amount:     decimal.NewFromInt(900),
		DueDate:    models.DateOf(time.Now()).AddDays(7),
	})
	if err != nil {
		t.Fatalf("AddBill failed: %v", err)
	}
	if b.Status != models.BillPending {
		t.Fatalf("Status = %q, want pending", b.Status)
	}

	if err := a.UpdateBillStatus(ctx, b.ID, models.BillPaid); err != nil {
		t.Fatalf("UpdateBillStatus failed: %v", err)
	}
	bills := a.Bills()
	if len(bills) != 1 || bills[0].Status != models.BillPaid {
		t.Fatalf("bills = %+v, want one paid bill", bills)
	}

	if err := a.DeleteBill(ctx, b.ID); err != nil {
		t.Fatalf("DeleteBill failed: %v", err)
	}
	if len(a.Bills()) != 0 {
		t.Error("bill not removed")
	}
}
