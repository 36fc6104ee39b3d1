// Package vault owns custody of locked collateral. Every custody change is
// recorded on the lock row and mirrored by one external deed transfer; the
// methods run inside the caller's transaction so a failed transfer rolls
// back the recorded change.
package vault

import (
	"context"
	"fmt"
	"time"

	"nftlend-backend/internal/domain/collateral"
	"nftlend-backend/internal/domain/token"
)

type Vault struct {
	deeds     token.DeedTransferor
	custodian string // principal that holds escrowed assets
}

func New(deeds token.DeedTransferor, custodian string) *Vault {
	return &Vault{deeds: deeds, custodian: custodian}
}

// Lock escrows the asset with the vault and records the active lock.
func (v *Vault) Lock(ctx context.Context, locks collateral.Repository, loanID uint64, asset string, tokenID uint64, from string) error {
	lk := &collateral.Lock{
		LoanID:   loanID,
		Asset:    asset,
		TokenID:  tokenID,
		Custody:  collateral.CustodyVault,
		LockedAt: time.Now().UTC(),
	}
	if err := locks.Create(ctx, lk); err != nil {
		return err
	}
	return v.deeds.TransferFrom(ctx, asset, from, v.custodian, tokenID)
}

// Release hands the collateral back to the borrower on repayment.
func (v *Vault) Release(ctx context.Context, locks collateral.Repository, loanID uint64, to string) error {
	return v.handOff(ctx, locks, loanID, to)
}

// Seize forfeits the collateral to the liquidation principal on default.
func (v *Vault) Seize(ctx context.Context, locks collateral.Repository, loanID uint64, to string) error {
	return v.handOff(ctx, locks, loanID, to)
}

func (v *Vault) handOff(ctx context.Context, locks collateral.Repository, loanID uint64, to string) error {
	lk, err := locks.GetByLoanID(ctx, loanID)
	if err != nil {
		return fmt.Errorf("%w: loan %d", collateral.ErrInvalidLock, loanID)
	}
	if !lk.Active() {
		return fmt.Errorf("%w: loan %d", collateral.ErrInvalidLock, loanID)
	}

	now := time.Now().UTC()
	lk.Custody = collateral.CustodyPrincipal
	lk.Holder = to
	lk.ReleasedAt = &now
	if err := locks.Save(ctx, lk); err != nil {
		return err
	}
	return v.deeds.TransferFrom(ctx, lk.Asset, v.custodian, to, lk.TokenID)
}
