package models

import "github.com/shopspring/decimal"

// PaymentStatus is the state of an inbound receipt.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
)

// Payment represents an inbound receipt against a project.
//
// The domain store never creates or mutates payments; they enter the
// collection only through snapshot restore and leave it only through a
// project cascade delete. Their lifecycle is owned by an external
// collaborator, and reports consume them read-only.
type Payment struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	Date      Date            `json:"date"`
}
