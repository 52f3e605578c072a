package models

import "github.com/shopspring/decimal"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// ProjectStatuses lists every valid project status, in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectCompleted, ProjectOnHold}

// Project represents a tracked contract or job.
type Project struct {
	// ID is the unique identifier assigned by the store.
	ID string `json:"id"`

	// Name is the display name of the project.
	Name string `json:"name"`

	// Client is the customer the work is performed for.
	Client string `json:"client"`

	// Location is the job site.
	Location string `json:"location"`

	Status ProjectStatus `json:"status"`

	// Budget is the total contracted amount.
	Budget decimal.Decimal `json:"budget"`

	// Spent is the running sum of this project's expense amounts. It is
	// maintained by the store as expenses are added and removed; callers
	// never set it directly.
	Spent decimal.Decimal `json:"spent"`

	StartDate Date `json:"startDate"`
	EndDate   Date `json:"endDate"`

	// Progress is a caller-reported completion percentage (0-100). It is
	// not derived from spend.
	Progress int `json:"progress"`
}

// NewProject carries the caller-supplied fields for creating a project.
// Spent is always initialized to zero by the store.
type NewProject struct {
	Name      string
	Client    string
	Location  string
	Status    ProjectStatus
	Budget    decimal.Decimal
	StartDate Date
	EndDate   Date
	Progress  int
}

// ProjectUpdate is a partial update of a project. Nil fields are left
// unchanged. Spent is absent on purpose: it belongs to the store.
type ProjectUpdate struct {
	Name      *string
	Client    *string
	Location  *string
	Status    *ProjectStatus
	Budget    *decimal.Decimal
	StartDate *Date
	EndDate   *Date
	Progress  *int
}
