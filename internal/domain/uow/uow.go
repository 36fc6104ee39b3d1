package uow

import (
	"context"

	"nftlend-backend/internal/domain/collateral"
	"nftlend-backend/internal/domain/loan"
	"nftlend-backend/internal/domain/user"
)

type Repos struct {
	Loans loan.Repository
	Locks collateral.Repository
	Users user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Serializes
	// repay vs check-default on the same id.
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
