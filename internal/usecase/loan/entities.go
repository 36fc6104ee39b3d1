package loan

import (
	"time"
)

type RequestInput struct {
	BorrowerID        string `json:"borrower_id"`
	Amount            uint64 `json:"amount"`
	DurationSeconds   int64  `json:"duration_seconds"`
	CollateralAsset   string `json:"collateral_asset"`
	CollateralTokenID uint64 `json:"collateral_token_id"`
}

type LoanDTO struct {
	LoanID            uint64     `json:"loan_id"`
	BorrowerID        string     `json:"borrower_id"`
	Amount            uint64     `json:"amount"`
	InterestRatePct   uint64     `json:"interest_rate_pct"`
	TotalRepayment    uint64     `json:"total_repayment"`
	DurationSeconds   int64      `json:"duration_seconds"`
	CollateralAsset   string     `json:"collateral_asset"`
	CollateralTokenID uint64     `json:"collateral_token_id"`
	IssuedAt          time.Time  `json:"issued_at"`
	DueAt             time.Time  `json:"due_at"`
	Status            string     `json:"status"`
	DisbursedAt       *time.Time `json:"disbursed_at,omitempty"`
}
