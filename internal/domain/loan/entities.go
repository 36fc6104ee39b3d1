package loan

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a loan. Repaid and Defaulted are terminal:
// once reached, no further transition is permitted for that loan id.
type Status string

const (
	StatusRequested Status = "requested"
	StatusRepaid    Status = "repaid"
	StatusDefaulted Status = "defaulted"
)

func (s Status) Terminal() bool { return s == StatusRepaid || s == StatusDefaulted }

// InterestRatePct is the flat policy rate fixed into every loan at issuance.
// Interest is neither compounding nor time-prorated; duration only gates
// default timing.
const InterestRatePct uint64 = 5

var (
	ErrNotFound           = errors.New("loan not found")
	ErrAlreadyFinalized   = errors.New("loan already finalized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPreconditionFailed = errors.New("precondition failed")

	ErrAlreadyDisbursed = fmt.Errorf("%w: loan already disbursed", ErrPreconditionFailed)
)

type Loan struct {
	// ID is the public loan id: autoincrement, strictly increasing from 1.
	// Id 0 never refers to a loan.
	ID                uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"loan_id"`
	BorrowerID        string     `gorm:"size:32;index:idx_loans_borrower;column:borrower_id" json:"borrower_id"`
	Amount            uint64     `gorm:"column:amount;not null" json:"amount"`
	InterestRatePct   uint64     `gorm:"column:interest_rate_pct;not null" json:"interest_rate_pct"`
	DurationSecs      int64      `gorm:"column:duration_secs;not null" json:"duration_seconds"`
	CollateralAsset   string     `gorm:"size:64;column:collateral_asset" json:"collateral_asset"`
	CollateralTokenID uint64     `gorm:"column:collateral_token_id" json:"collateral_token_id"`
	IssuedAt          time.Time  `gorm:"column:issued_at" json:"issued_at"`
	Status            Status     `gorm:"type:enum('requested','repaid','defaulted');default:'requested';column:status" json:"status"`
	DisbursedAt       *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// DueAt is the instant after which the loan may be defaulted.
func (l *Loan) DueAt() time.Time {
	return l.IssuedAt.Add(time.Duration(l.DurationSecs) * time.Second)
}

// TotalRepayment is principal plus flat interest with floor integer
// arithmetic: amount + amount*rate/100.
func (l *Loan) TotalRepayment() uint64 {
	return l.Amount + l.Amount*l.InterestRatePct/100
}
