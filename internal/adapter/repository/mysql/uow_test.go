package mysql

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "nftlend-backend/internal/domain/loan"
	"nftlend-backend/internal/domain/uow"
)

func TestGormUoW_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(strings.Repeat("b", 32))); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	// the create inside the failed tx must not be visible
	if _, err := NewLoanRepository(db).GetByID(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after rollback = %v, want ErrNotFound", err)
	}
}

func TestGormUoW_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	var id uint64
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(strings.Repeat("b", 32))
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		id = l.ID
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := NewLoanRepository(db).GetByID(ctx, id); err != nil {
		t.Fatalf("GetByID after commit: %v", err)
	}
}

func TestGormUoW_WithinLoanTx_MissingLoan(t *testing.T) {
	u := NewGormUoW(openTestDB(t))
	err := u.WithinLoanTx(context.Background(), 0, func(uow.Repos, *domain.Loan) error {
		t.Fatal("fn must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}
