package collateral

import "context"

type Repository interface {
	Create(ctx context.Context, l *Lock) error
	// GetByLoanID returns the lock row for a loan, active or not.
	GetByLoanID(ctx context.Context, loanID uint64) (*Lock, error)
	Save(ctx context.Context, l *Lock) error
}
