// Package reports computes the read-side aggregates the presentation layer
// renders: dashboard totals, chart series and status breakdowns.
//
// Everything here is a pure function over the current collections, computed
// on every read. Nothing is cached and nothing mutates domain state.
package reports

import (
	"github.com/shopspring/decimal"

	"github.com/devarsh/contractor-ledger/internal/models"
)

// Summary is the dashboard headline view.
type Summary struct {
	TotalProjects    int
	ActiveProjects   int
	TotalExpenses    decimal.Decimal
	PendingPayments  decimal.Decimal
	ReceivedPayments decimal.Decimal
	PendingBills     int
}

// Summarize computes the dashboard summary over the full collections.
func Summarize(projects []models.Project, expenses []models.Expense, bills []models.Bill, payments []models.Payment) Summary {
	s := Summary{
		TotalProjects:    len(projects),
		TotalExpenses:    decimal.Zero,
		PendingPayments:  decimal.Zero,
		ReceivedPayments: decimal.Zero,
	}
	for _, p := range projects {
		if p.Status == models.ProjectActive {
			s.ActiveProjects++
		}
	}
	for _, e := range expenses {
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}
	for _, p := range payments {
		switch p.Status {
		case models.PaymentPending:
			s.PendingPayments = s.PendingPayments.Add(p.Amount)
		case models.PaymentReceived:
			s.ReceivedPayments = s.ReceivedPayments.Add(p.Amount)
		}
	}
	for _, b := range bills {
		if b.Status == models.BillPending {
			s.PendingBills++
		}
	}
	return s
}

// AmountPoint is one slice of an amount-valued chart.
type AmountPoint struct {
	Name  string
	Value decimal.Decimal
}

// CountPoint is one slice of a count-valued chart.
type CountPoint struct {
	Name  string
	Count int
}

// ExpensesByProject returns one point per project with the summed amount of
// the expenses linked to it, in project order. The join is by ProjectID, so
// renamed projects chart under their current name.
func ExpensesByProject(projects []models.Project, expenses []models.Expense) []AmountPoint {
	points := make([]AmountPoint, 0, len(projects))
	for _, p := range projects {
		total := decimal.Zero
		for _, e := range expenses {
			if e.ProjectID == p.ID {
				total = total.Add(e.Amount)
			}
		}
		points = append(points, AmountPoint{Name: p.Name, Value: total})
	}
	return points
}

// PaymentStatusBreakdown returns received and pending payment totals,
// dropping zero-valued slices the way the chart does.
func PaymentStatusBreakdown(payments []models.Payment) []AmountPoint {
	received := decimal.Zero
	pending := decimal.Zero
	for _, p := range payments {
		switch p.Status {
		case models.PaymentReceived:
			received = received.Add(p.Amount)
		case models.PaymentPending:
			pending = pending.Add(p.Amount)
		}
	}
	var points []AmountPoint
	if received.IsPositive() {
		points = append(points, AmountPoint{Name: "Received", Value: received})
	}
	if pending.IsPositive() {
		points = append(points, AmountPoint{Name: "Pending", Value: pending})
	}
	return points
}

// ProjectsByStatus returns project counts per status, dropping empty
// statuses the way the chart does.
func ProjectsByStatus(projects []models.Project) []CountPoint {
	labels := map[models.ProjectStatus]string{
		models.ProjectActive:    "Active",
		models.ProjectCompleted: "Completed",
		models.ProjectOnHold:    "On Hold",
	}
	var points []CountPoint
	for _, status := range models.ProjectStatuses {
		count := 0
		for _, p := range projects {
			if p.Status == status {
				count++
			}
		}
		if count > 0 {
			points = append(points, CountPoint{Name: labels[status], Count: count})
		}
	}
	return points
}

// BillTotalsByStatus sums bill amounts per status.
func BillTotalsByStatus(bills []models.Bill) map[models.BillStatus]decimal.Decimal {
	totals := map[models.BillStatus]decimal.Decimal{
		models.BillPending: decimal.Zero,
		models.BillPaid:    decimal.Zero,
		models.BillOverdue: decimal.Zero,
	}
	for _, b := range bills {
		totals[b.Status] = totals[b.Status].Add(b.Amount)
	}
	return totals
}

// ExpenseTotalsByCategory sums expense amounts per category. Only
// categories that occur appear in the result.
func ExpenseTotalsByCategory(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	return totals
}

// TotalExpenseAmount sums the amounts of the given expenses. The expense
// list view applies it to a filtered slice.
func TotalExpenseAmount(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
