package collateral

import (
	"errors"
	"time"
)

// Custody tracks who holds the pledged asset. The vault holds it exactly
// while the loan is open; release/seize hands it to a principal and
// terminates the lock.
type Custody string

const (
	CustodyVault     Custody = "vault"
	CustodyPrincipal Custody = "principal"
)

var ErrInvalidLock = errors.New("no active collateral lock")

// Lock is the escrow record for one loan's collateral. At most one active
// (vault-held) lock exists per loan id.
type Lock struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement"`
	LoanID     uint64     `gorm:"column:loan_id;not null;uniqueIndex:ux_locks_loan"`
	Asset      string     `gorm:"column:asset;size:64;not null"`
	TokenID    uint64     `gorm:"column:token_id;not null"`
	Custody    Custody    `gorm:"column:custody;size:16;not null"`
	Holder     string     `gorm:"column:holder;size:32"`
	LockedAt   time.Time  `gorm:"column:locked_at"`
	ReleasedAt *time.Time `gorm:"column:released_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Lock) TableName() string { return "collateral_locks" }

func (l *Lock) Active() bool { return l.Custody == CustodyVault }
