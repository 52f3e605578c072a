package models

import "github.com/shopspring/decimal"

// BillStatus is the payable state of a bill.
//
// The initial status is derived exactly once, when the bill is created:
// overdue if the due date is already past, pending otherwise. It is never
// recomputed as time passes; only explicit status updates change it, and any
// transition is allowed (a paid bill can be reverted to pending).
type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

// BillStatuses lists every valid bill status, in display order.
var BillStatuses = []BillStatus{BillPending, BillPaid, BillOverdue}

// Bill represents a vendor invoice against a project.
type Bill struct {
	// ID is the unique identifier assigned by the store.
	ID string `json:"id"`

	ProjectID string `json:"projectId"`

	// ProjectName is a snapshot of the project's name at creation time,
	// same rule as Expense.ProjectName.
	ProjectName string `json:"projectName"`

	Vendor     string `json:"vendor"`
	BillNumber string `json:"billNumber"`

	Amount decimal.Decimal `json:"amount"`

	// Date is the issue date; DueDate drives the one-time status
	// derivation at creation.
	Date    Date `json:"date"`
	DueDate Date `json:"dueDate"`

	Status BillStatus `json:"status"`

	Description string `json:"description"`
}

// NewBill carries the caller-supplied fields for creating a bill.
// ID, ProjectName and Status are assigned by the store.
type NewBill struct {
	ProjectID   string
	Vendor      string
	BillNumber  string
	Amount      decimal.Decimal
	Date        Date
	DueDate     Date
	Description string
}
