package mysql

import (
	"context"
	"errors"
	"time"

	loanDomain "nftlend-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	if id == 0 {
		return nil, loanDomain.ErrNotFound
	}
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Loan, error) {
	if id == 0 {
		return nil, loanDomain.ErrNotFound
	}
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, loanDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *LoanRepository) MarkRepaid(ctx context.Context, id uint64) error {
	return r.finalize(ctx, id, loanDomain.StatusRepaid)
}

func (r *LoanRepository) MarkDefaulted(ctx context.Context, id uint64) error {
	return r.finalize(ctx, id, loanDomain.StatusDefaulted)
}

// finalize is a guarded status flip: the WHERE on the non-terminal status
// makes repaid/defaulted mutually exclusive even under races.
func (r *LoanRepository) finalize(ctx context.Context, id uint64, st loanDomain.Status) error {
	res := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("id = ? AND status = ?", id, loanDomain.StatusRequested).
		Updates(map[string]any{"status": st, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return loanDomain.ErrAlreadyFinalized
	}
	return nil
}
