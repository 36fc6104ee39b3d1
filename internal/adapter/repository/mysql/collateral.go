package mysql

import (
	"context"
	"errors"

	lockDomain "nftlend-backend/internal/domain/collateral"

	"gorm.io/gorm"
)

type LockRepository struct{ db *gorm.DB }

func NewLockRepository(db *gorm.DB) *LockRepository { return &LockRepository{db: db} }

func (r *LockRepository) Create(ctx context.Context, l *lockDomain.Lock) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LockRepository) GetByLoanID(ctx context.Context, loanID uint64) (*lockDomain.Lock, error) {
	var out lockDomain.Lock
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, lockDomain.ErrInvalidLock
	}
	return &out, res.Error
}

func (r *LockRepository) Save(ctx context.Context, l *lockDomain.Lock) error {
	return r.db.WithContext(ctx).Save(l).Error
}
