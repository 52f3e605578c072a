package reports

import (
	"strings"

	"github.com/devarsh/contractor-ledger/internal/models"
)

// FilterProjects returns the projects matching a case-insensitive substring
// query over name and client, narrowed to the given status. An empty query
// matches everything; an empty status means all statuses.
func FilterProjects(projects []models.Project, query string, status models.ProjectStatus) []models.Project {
	var out []models.Project
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if !matches(query, p.Name, p.Client) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterExpenses searches description and the project-name snapshot,
// narrowed to the given category. Empty arguments mean no restriction.
func FilterExpenses(expenses []models.Expense, query, category string) []models.Expense {
	var out []models.Expense
	for _, e := range expenses {
		if category != "" && e.Category != category {
			continue
		}
		if !matches(query, e.Description, e.ProjectName) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterBills searches vendor, bill number and the project-name snapshot,
// narrowed to the given status. Empty arguments mean no restriction.
func FilterBills(bills []models.Bill, query string, status models.BillStatus) []models.Bill {
	var out []models.Bill
	for _, b := range bills {
		if status != "" && b.Status != status {
			continue
		}
		if !matches(query, b.Vendor, b.BillNumber, b.ProjectName) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matches reports whether any field contains query, case-insensitively.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
