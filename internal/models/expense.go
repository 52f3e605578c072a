package models

import "github.com/shopspring/decimal"

// UnknownProject is the ProjectName recorded on an expense or bill whose
// ProjectID does not match any project at creation time.
const UnknownProject = "Unknown Project"

// ExpenseCategories is the fixed category set offered by the UI. The store
// does not enforce membership; validation is a caller concern.
var ExpenseCategories = []string{
	"Labor",
	"Materials",
	"Equipment",
	"Transport",
	"Utilities",
	"Other",
}

// PaymentMethods lists the payment methods offered by the UI.
var PaymentMethods = []string{
	"Cash",
	"Bank Transfer",
	"Cheque",
	"UPI",
	"Credit Card",
}

// Expense represents a recorded outflow against a project.
type Expense struct {
	// ID is the unique identifier assigned by the store.
	ID string `json:"id"`

	// ProjectID references the owning project. An expense may outlive its
	// project reference only in the sense that a dangling ID at creation
	// time is tolerated (see UnknownProject).
	ProjectID string `json:"projectId"`

	// ProjectName is a snapshot of the project's name at creation time.
	// It is not updated when the project is later renamed.
	ProjectName string `json:"projectName"`

	Category    string `json:"category"`
	Description string `json:"description"`

	// Amount is the expense value; it is added to the owning project's
	// Spent when the expense is created.
	Amount decimal.Decimal `json:"amount"`

	Date          Date   `json:"date"`
	PaymentMethod string `json:"paymentMethod"`
}

// NewExpense carries the caller-supplied fields for creating an expense.
// ID and ProjectName are assigned by the store.
type NewExpense struct {
	ProjectID     string
	Category      string
	Description   string
	Amount        decimal.Decimal
	Date          Date
	PaymentMethod string
}
