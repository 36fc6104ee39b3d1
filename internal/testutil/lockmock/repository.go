package lockmock

import (
	"context"

	domain "nftlend-backend/internal/domain/collateral"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, l *domain.Lock) error
	GetByLoanIDFn func(ctx context.Context, loanID uint64) (*domain.Lock, error)
	SaveFn        func(ctx context.Context, l *domain.Lock) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Lock) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID uint64) (*domain.Lock, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrInvalidLock
}

func (m *Repo) Save(ctx context.Context, l *domain.Lock) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
