// Package events carries the outbound lifecycle notifications. Events are
// emitted after the owning transaction commits, in per-transaction order.
package events

import (
	"context"
	"time"
)

type Type string

const (
	TypeLoanRequested        Type = "LoanRequested"
	TypeLoanApproved         Type = "LoanApproved"
	TypeLoanRepaid           Type = "LoanRepaid"
	TypeLoanDefaulted        Type = "LoanDefaulted"
	TypeCollateralLiquidated Type = "CollateralLiquidated"
)

type Event struct {
	Type     Type      `json:"type"`
	LoanID   uint64    `json:"loan_id"`
	Borrower string    `json:"borrower"`
	Amount   uint64    `json:"amount,omitempty"`
	At       time.Time `json:"at"`
}

type Publisher interface {
	// Publish delivers the events in order. Delivery is best-effort;
	// a failure never rolls back the ledger mutation it follows.
	Publish(ctx context.Context, evs ...Event) error
}

// Nop discards everything. Useful when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, ...Event) error { return nil }
