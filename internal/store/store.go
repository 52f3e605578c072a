// Package store implements the in-memory domain store that keeps Projects,
// Expenses, Bills and Payments mutually consistent.
//
// The store is a plain data structure with command methods. It performs no
// I/O: the application shell restores it from a snapshot at startup and
// saves a snapshot after every mutation. It is owned by a single goroutine
// and is not safe for concurrent use.
//
// Commands never fail on well-typed input. A command naming an ID that does
// not exist is a silent no-op, matching the forgiving nature of a
// single-user local tool.
package store

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devarsh/contractor-ledger/internal/models"
	"github.com/devarsh/contractor-ledger/internal/storage"
)

// Store holds the four entity collections and enforces the cross-entity
// invariants: Spent bookkeeping on expense add/delete, ProjectName snapshots
// on expense/bill creation, one-time bill status derivation, and cascade
// deletion of a project's dependents.
type Store struct {
	projects []models.Project
	expenses []models.Expense
	bills    []models.Bill
	payments []models.Payment

	now   func() time.Time
	newID func() string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Restore replaces the store's state with the given snapshot.
// A nil snapshot resets the store to empty.
func (s *Store) Restore(snap *storage.Snapshot) {
	if snap == nil {
		snap = &storage.Snapshot{}
	}
	s.projects = slices.Clone(snap.Projects)
	s.expenses = slices.Clone(snap.Expenses)
	s.bills = slices.Clone(snap.Bills)
	s.payments = slices.Clone(snap.Payments)
}

// Snapshot returns a copy of the full store state for persistence.
func (s *Store) Snapshot() *storage.Snapshot {
	return &storage.Snapshot{
		Projects: slices.Clone(s.projects),
		Expenses: slices.Clone(s.expenses),
		Bills:    slices.Clone(s.bills),
		Payments: slices.Clone(s.payments),
	}
}

// AddProject creates a project from the given fields and returns it.
// Spent always starts at zero regardless of caller input.
func (s *Store) AddProject(data models.NewProject) models.Project {
	p := models.Project{
		ID:        s.newID(),
		Name:      data.Name,
		Client:    data.Client,
		Location:  data.Location,
		Status:    data.Status,
		Budget:    data.Budget,
		Spent:     decimal.Zero,
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		Progress:  data.Progress,
	}
	s.projects = append(s.projects, p)
	return p
}

// UpdateProject merges the non-nil fields of update into the project with
// the given ID. No-op if the ID does not exist.
func (s *Store) UpdateProject(id string, update models.ProjectUpdate) {
	p := s.findProject(id)
	if p == nil {
		return
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Client != nil {
		p.Client = *update.Client
	}
	if update.Location != nil {
		p.Location = *update.Location
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	if update.Budget != nil {
		p.Budget = *update.Budget
	}
	if update.StartDate != nil {
		p.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		p.EndDate = *update.EndDate
	}
	if update.Progress != nil {
		p.Progress = *update.Progress
	}
}

// DeleteProject removes the project with the given ID and cascades: every
// expense, bill and payment referencing it is removed in the same state
// transition. No-op if the ID does not exist.
func (s *Store) DeleteProject(id string) {
	if s.findProject(id) == nil {
		return
	}
	s.projects = slices.DeleteFunc(s.projects, func(p models.Project) bool {
		return p.ID == id
	})
	s.expenses = slices.DeleteFunc(s.expenses, func(e models.Expense) bool {
		return e.ProjectID == id
	})
	s.bills = slices.DeleteFunc(s.bills, func(b models.Bill) bool {
		return b.ProjectID == id
	})
	s.payments = slices.DeleteFunc(s.payments, func(p models.Payment) bool {
		return p.ProjectID == id
	})
}

// AddExpense creates an expense and adds its amount to the owning project's
// Spent. The expense records a snapshot of the project's current name, or
// UnknownProject when the referenced project does not exist (in which case
// no Spent is touched).
func (s *Store) AddExpense(data models.NewExpense) models.Expense {
	project := s.findProject(data.ProjectID)
	name := models.UnknownProject
	if project != nil {
		name = project.Name
	}
	e := models.Expense{
		ID:            s.newID(),
		ProjectID:     data.ProjectID,
		ProjectName:   name,
		Category:      data.Category,
		Description:   data.Description,
		Amount:        data.Amount,
		Date:          data.Date,
		PaymentMethod: data.PaymentMethod,
	}
	s.expenses = append(s.expenses, e)
	if project != nil {
		project.Spent = project.Spent.Add(data.Amount)
	}
	return e
}

// DeleteExpense removes the expense with the given ID, subtracting its
// amount from the owning project's Spent, floored at zero. No-op if the ID
// does not exist.
func (s *Store) DeleteExpense(id string) {
	for i := range s.expenses {
		if s.expenses[i].ID != id {
			continue
		}
		exp := s.expenses[i]
		if p := s.findProject(exp.ProjectID); p != nil {
			p.Spent = p.Spent.Sub(exp.Amount)
			if p.Spent.IsNegative() {
				p.Spent = decimal.Zero
			}
		}
		s.expenses = slices.Delete(s.expenses, i, i+1)
		return
	}
}

// AddBill creates a bill, recording a ProjectName snapshot the same way
// AddExpense does and deriving the initial status from the due date: due
// strictly before today means overdue, today or later means pending. The
// status is computed once here and never recomputed as time passes.
func (s *Store) AddBill(data models.NewBill) models.Bill {
	name := models.UnknownProject
	if p := s.findProject(data.ProjectID); p != nil {
		name = p.Name
	}
	status := models.BillPending
	if data.DueDate.Before(models.DateOf(s.now())) {
		status = models.BillOverdue
	}
	b := models.Bill{
		ID:          s.newID(),
		ProjectID:   data.ProjectID,
		ProjectName: name,
		Vendor:      data.Vendor,
		BillNumber:  data.BillNumber,
		Amount:      data.Amount,
		Date:        data.Date,
		DueDate:     data.DueDate,
		Status:      status,
		Description: data.Description,
	}
	s.bills = append(s.bills, b)
	return b
}

// UpdateBillStatus overwrites the status of the bill with the given ID.
// Any transition is allowed, including paid back to pending. No-op if the
// ID does not exist.
func (s *Store) UpdateBillStatus(id string, status models.BillStatus) {
	for i := range s.bills {
		if s.bills[i].ID == id {
			s.bills[i].Status = status
			return
		}
	}
}

// DeleteBill removes the bill with the given ID. No-op if it does not exist.
func (s *Store) DeleteBill(id string) {
	s.bills = slices.DeleteFunc(s.bills, func(b models.Bill) bool {
		return b.ID == id
	})
}

// Projects returns a copy of the project collection.
func (s *Store) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// Expenses returns a copy of the expense collection.
func (s *Store) Expenses() []models.Expense {
	return slices.Clone(s.expenses)
}

// Bills returns a copy of the bill collection.
func (s *Store) Bills() []models.Bill {
	return slices.Clone(s.bills)
}

// Payments returns a copy of the payment collection.
func (s *Store) Payments() []models.Payment {
	return slices.Clone(s.payments)
}

// Project returns the project with the given ID.
func (s *Store) Project(id string) (models.Project, bool) {
	if p := s.findProject(id); p != nil {
		return *p, true
	}
	return models.Project{}, false
}

// Expense returns the expense with the given ID.
func (s *Store) Expense(id string) (models.Expense, bool) {
	for _, e := range s.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return models.Expense{}, false
}

// Bill returns the bill with the given ID.
func (s *Store) Bill(id string) (models.Bill, bool) {
	for _, b := range s.bills {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bill{}, false
}

func (s *Store) findProject(id string) *models.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i]
		}
	}
	return nil
}
