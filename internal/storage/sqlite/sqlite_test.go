package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "ledger.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	snap := &storage.Snapshot{
		Projects: []models.Project{{
			ID:        "p-1",
			Name:      "Warehouse Refit",
			Client:    "Sharma & Co",
			Location:  "Nagpur",
			Status:    models.ProjectOnHold,
			Budget:    decimal.RequireFromString("250000.50"),
			Spent:     decimal.NewFromInt(4000),
			StartDate: models.NewDate(2026, time.January, 5),
			EndDate:   models.NewDate(2026, time.August, 31),
			Progress:  10,
		}},
		Expenses: []models.Expense{{
			ID:            "e-1",
			ProjectID:     "p-1",
			ProjectName:   "Warehouse Refit",
			Category:      "Labor",
			Description:   "Day wages",
			Amount:        decimal.NewFromInt(4000),
			Date:          models.NewDate(2026, time.January, 9),
			PaymentMethod: "Cash",
		}},
		Bills: []models.Bill{{
			ID:          "b-1",
			ProjectID:   "p-1",
			ProjectName: "Warehouse Refit",
			Vendor:      "Roofing Supplies",
			BillNumber:  "RS-118",
			Amount:      decimal.RequireFromString("9999.99"),
			Date:        models.NewDate(2026, time.January, 10),
			DueDate:     models.NewDate(2026, time.February, 10),
			Status:      models.BillOverdue,
			Description: "Sheets and fasteners",
		}},
		Payments: []models.Payment{{
			ID:        "pay-1",
			ProjectID: "p-1",
			Amount:    decimal.NewFromInt(50000),
			Status:    models.PaymentPending,
			Date:      models.NewDate(2026, time.January, 20),
		}},
	}

	t.Run("Save and Load round trip", func(t *testing.T) {
		if err := store.Save(ctx, snap); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}

		if len(got.Projects) != 1 || len(got.Expenses) != 1 || len(got.Bills) != 1 || len(got.Payments) != 1 {
			t.Fatalf("unexpected collection sizes: %d/%d/%d/%d",
				len(got.Projects), len(got.Expenses), len(got.Bills), len(got.Payments))
		}

		p := got.Projects[0]
		if p.Name != "Warehouse Refit" || p.Status != models.ProjectOnHold || p.Progress != 10 {
			t.Errorf("project mismatch: %+v", p)
		}
		if !p.Budget.Equal(decimal.RequireFromString("250000.50")) {
			t.Errorf("Budget = %s, want 250000.50", p.Budget)
		}
		if p.EndDate != models.NewDate(2026, time.August, 31) {
			t.Errorf("EndDate = %s, want 2026-08-31", p.EndDate)
		}

		b := got.Bills[0]
		if b.Status != models.BillOverdue || b.BillNumber != "RS-118" {
			t.Errorf("bill mismatch: %+v", b)
		}
		if !b.Amount.Equal(decimal.RequireFromString("9999.99")) {
			t.Errorf("bill Amount = %s, want 9999.99", b.Amount)
		}
	})

	t.Run("Save replaces previous snapshot", func(t *testing.T) {
		if err := store.Save(ctx, &storage.Snapshot{}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got.Projects) != 0 || len(got.Expenses) != 0 || len(got.Bills) != 0 || len(got.Payments) != 0 {
			t.Error("second save did not replace the first")
		}
	})

	t.Run("session token lifecycle", func(t *testing.T) {
		token, err := store.LoadToken(ctx)
		if err != nil {
			t.Fatalf("LoadToken failed: %v", err)
		}
		if token != "" {
			t.Errorf("expected empty token, got %q", token)
		}

		if err := store.SaveToken(ctx, "first"); err != nil {
			t.Fatalf("SaveToken failed: %v", err)
		}
		if err := store.SaveToken(ctx, "second"); err != nil {
			t.Fatalf("second SaveToken failed: %v", err)
		}
		token, _ = store.LoadToken(ctx)
		if token != "second" {
			t.Errorf("token = %q, want %q", token, "second")
		}

		if err := store.ClearToken(ctx); err != nil {
			t.Fatalf("ClearToken failed: %v", err)
		}
		token, _ = store.LoadToken(ctx)
		if token != "" {
			t.Errorf("token survived clear: %q", token)
		}
	})
}
