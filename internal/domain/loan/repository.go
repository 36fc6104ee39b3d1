package loan

import "context"

type Repository interface {
	// Create assigns the next loan id and stores the record.
	Create(ctx context.Context, l *Loan) error
	// GetByID fails with ErrNotFound for unassigned ids, including 0.
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// MarkRepaid / MarkDefaulted flip the status to a terminal value.
	// They fail with ErrAlreadyFinalized if the loan is already terminal,
	// which makes Repaid and Defaulted mutually exclusive at the store.
	MarkRepaid(ctx context.Context, id uint64) error
	MarkDefaulted(ctx context.Context, id uint64) error
}
