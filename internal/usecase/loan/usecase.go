package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nftlend-backend/internal/domain/collateral"
	"nftlend-backend/internal/domain/loan"
	"nftlend-backend/internal/domain/token"
	"nftlend-backend/internal/domain/uow"
	"nftlend-backend/internal/events"
	"nftlend-backend/internal/metrics"
	"nftlend-backend/pkg/logger"
)

// EligibilityChecker is the credit gate capability consumed on request.
type EligibilityChecker interface {
	CheckEligible(ctx context.Context, userID string) error
}

// CollateralVault escrows and hands off collateral inside the caller's tx.
type CollateralVault interface {
	Lock(ctx context.Context, locks collateral.Repository, loanID uint64, asset string, tokenID uint64, from string) error
	Release(ctx context.Context, locks collateral.Repository, loanID uint64, to string) error
	Seize(ctx context.Context, locks collateral.Repository, loanID uint64, to string) error
}

// Params replaces the source's global singletons: the privileged principal
// and the reserve are owned configuration of the state machine.
type Params struct {
	// Admin may approve loans and set verification flags; seized
	// collateral is forfeited to it.
	Admin string
	// Reserve funds disbursements and receives repayments.
	Reserve string
}

// Usecase is the loan lifecycle state machine and the only writer of loan
// records. Each public operation runs as one transaction: ledger mutations
// and the external transfer either all take effect or none do.
type Usecase struct {
	loans  loan.Repository
	uow    uow.UnitOfWork
	gate   EligibilityChecker
	vault  CollateralVault
	values token.ValueTransferor
	pub    events.Publisher
	p      Params
}

func NewUsecase(loans loan.Repository, u uow.UnitOfWork, gate EligibilityChecker, v CollateralVault, values token.ValueTransferor, pub events.Publisher, p Params) *Usecase {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Usecase{loans: loans, uow: u, gate: gate, vault: v, values: values, pub: pub, p: p}
}

// Request gates the borrower, then atomically locks the collateral and
// creates the record. The interest rate is fixed at issuance.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*LoanDTO, error) {
	if len(in.BorrowerID) != 32 || in.Amount == 0 || in.DurationSeconds <= 0 || in.CollateralAsset == "" {
		return nil, fmt.Errorf("%w: invalid loan request", loan.ErrPreconditionFailed)
	}
	if err := u.gate.CheckEligible(ctx, in.BorrowerID); err != nil {
		return nil, u.fail("request", err)
	}

	var created *loan.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l := &loan.Loan{
			BorrowerID:        in.BorrowerID,
			Amount:            in.Amount,
			InterestRatePct:   loan.InterestRatePct,
			DurationSecs:      in.DurationSeconds,
			CollateralAsset:   in.CollateralAsset,
			CollateralTokenID: in.CollateralTokenID,
			IssuedAt:          time.Now().UTC(),
			Status:            loan.StatusRequested,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := u.vault.Lock(ctx, r.Locks, l.ID, in.CollateralAsset, in.CollateralTokenID, in.BorrowerID); err != nil {
			return fmt.Errorf("%w: collateral lock failed: %v", loan.ErrPreconditionFailed, err)
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, u.fail("request", err)
	}

	metrics.LoansByTransition.WithLabelValues("requested").Inc()
	u.emit(ctx, events.Event{Type: events.TypeLoanRequested, LoanID: created.ID, Borrower: created.BorrowerID, Amount: created.Amount})
	return toDTO(created), nil
}

// Approve disburses the principal from the reserve to the borrower.
// Administrative only; a second approve fails rather than paying twice.
func (u *Usecase) Approve(ctx context.Context, caller string, loanID uint64) (*LoanDTO, error) {
	if caller != u.p.Admin {
		return nil, u.fail("approve", fmt.Errorf("%w: approve requires the administrative principal", loan.ErrUnauthorized))
	}

	var approved *loan.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.DisbursedAt != nil {
			return loan.ErrAlreadyDisbursed
		}
		now := time.Now().UTC()
		l.DisbursedAt = &now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := u.values.Transfer(ctx, l.BorrowerID, l.Amount); err != nil {
			return fmt.Errorf("%w: disbursement failed: %v", loan.ErrPreconditionFailed, err)
		}
		approved = l
		return nil
	})
	if err != nil {
		return nil, u.fail("approve", err)
	}

	metrics.LoansByTransition.WithLabelValues("approved").Inc()
	u.emit(ctx, events.Event{Type: events.TypeLoanApproved, LoanID: approved.ID, Borrower: approved.BorrowerID, Amount: approved.Amount})
	return toDTO(approved), nil
}

// Repay pulls principal plus interest from the borrower, marks the loan
// repaid and releases the collateral. Borrower only.
func (u *Usecase) Repay(ctx context.Context, caller string, loanID uint64) (*LoanDTO, error) {
	var repaid *loan.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if caller != l.BorrowerID {
			return fmt.Errorf("%w: only the borrower may repay loan %d", loan.ErrUnauthorized, l.ID)
		}
		if l.Status.Terminal() {
			return loan.ErrAlreadyFinalized
		}

		total := l.TotalRepayment()
		if err := u.values.TransferFrom(ctx, l.BorrowerID, u.p.Reserve, total); err != nil {
			return fmt.Errorf("%w: repayment transfer failed: %v", loan.ErrPreconditionFailed, err)
		}
		// Value already moved: any later failure must hand it back
		// before the tx rolls the ledger writes back.
		if err := r.Loans.MarkRepaid(ctx, l.ID); err != nil {
			u.refund(ctx, l.BorrowerID, total)
			return err
		}
		if err := u.vault.Release(ctx, r.Locks, l.ID, l.BorrowerID); err != nil {
			u.refund(ctx, l.BorrowerID, total)
			return err
		}
		l.Status = loan.StatusRepaid
		repaid = l
		return nil
	})
	if err != nil {
		return nil, u.fail("repay", err)
	}

	metrics.LoansByTransition.WithLabelValues("repaid").Inc()
	u.emit(ctx, events.Event{Type: events.TypeLoanRepaid, LoanID: repaid.ID, Borrower: repaid.BorrowerID})
	return toDTO(repaid), nil
}

// CheckDefault is callable by anyone. Default detection is pull-based:
// nothing schedules it, a caller asks and the answer is a pure function of
// the stored timestamp vs the current time.
func (u *Usecase) CheckDefault(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	var defaulted *loan.Loan
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status.Terminal() {
			return loan.ErrAlreadyFinalized
		}
		if !time.Now().UTC().After(l.DueAt()) {
			return fmt.Errorf("%w: loan %d is not yet due", loan.ErrPreconditionFailed, l.ID)
		}
		if err := r.Loans.MarkDefaulted(ctx, l.ID); err != nil {
			return err
		}
		if err := u.vault.Seize(ctx, r.Locks, l.ID, u.p.Admin); err != nil {
			return err
		}
		l.Status = loan.StatusDefaulted
		defaulted = l
		return nil
	})
	if err != nil {
		return nil, u.fail("check_default", err)
	}

	metrics.LoansByTransition.WithLabelValues("defaulted").Inc()
	u.emit(ctx,
		events.Event{Type: events.TypeLoanDefaulted, LoanID: defaulted.ID, Borrower: defaulted.BorrowerID},
		events.Event{Type: events.TypeCollateralLiquidated, LoanID: defaulted.ID, Borrower: defaulted.BorrowerID},
	)
	return toDTO(defaulted), nil
}

func (u *Usecase) Get(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// VerifyUser sets the borrower verification flag. Administrative only.
func (u *Usecase) VerifyUser(ctx context.Context, caller, userID string, verified bool) error {
	if caller != u.p.Admin {
		return u.fail("verify_user", fmt.Errorf("%w: verify requires the administrative principal", loan.ErrUnauthorized))
	}
	if len(userID) != 32 {
		return u.fail("verify_user", fmt.Errorf("%w: invalid user id", loan.ErrPreconditionFailed))
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Users.SetVerified(ctx, userID, verified)
	})
	if err != nil {
		return u.fail("verify_user", err)
	}
	return nil
}

func (u *Usecase) refund(ctx context.Context, to string, amount uint64) {
	if err := u.values.Transfer(ctx, to, amount); err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Str("to", to).Uint64("amount", amount).
			Msg("repayment compensation failed; value stranded in reserve")
	}
}

func (u *Usecase) emit(ctx context.Context, evs ...events.Event) {
	now := time.Now().UTC()
	for i := range evs {
		evs[i].At = now
	}
	if err := u.pub.Publish(ctx, evs...); err != nil {
		lg := logger.Get()
		lg.Warn().Err(err).Msg("event publish failed")
	}
}

func (u *Usecase) fail(op string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues(op, reason(err)).Inc()
	return err
}

func reason(err error) string {
	switch {
	case errors.Is(err, loan.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, loan.ErrNotFound):
		return "not_found"
	case errors.Is(err, loan.ErrAlreadyFinalized):
		return "already_finalized"
	case errors.Is(err, loan.ErrPreconditionFailed), errors.Is(err, collateral.ErrInvalidLock):
		return "precondition"
	default:
		return "internal"
	}
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.ID,
		BorrowerID:        l.BorrowerID,
		Amount:            l.Amount,
		InterestRatePct:   l.InterestRatePct,
		TotalRepayment:    l.TotalRepayment(),
		DurationSeconds:   l.DurationSecs,
		CollateralAsset:   l.CollateralAsset,
		CollateralTokenID: l.CollateralTokenID,
		IssuedAt:          l.IssuedAt,
		DueAt:             l.DueAt(),
		Status:            string(l.Status),
		DisbursedAt:       l.DisbursedAt,
	}
}
