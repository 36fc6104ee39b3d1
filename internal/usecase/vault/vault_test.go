package vault

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nftlend-backend/internal/domain/collateral"
	"nftlend-backend/internal/testutil/lockmock"
	"nftlend-backend/internal/testutil/tokenmock"
)

var (
	custodian = strings.Repeat("c", 32)
	borrower  = strings.Repeat("b", 32)
)

func TestLock_EscrowsAsset(t *testing.T) {
	var created *collateral.Lock
	locks := &lockmock.Repo{
		CreateFn: func(_ context.Context, l *collateral.Lock) error { created = l; return nil },
	}
	var from, to string
	deeds := &tokenmock.Deed{
		TransferFromFn: func(_ context.Context, asset, f, to2 string, tokenID uint64) error {
			if asset != "asset-a" || tokenID != 7 {
				t.Fatalf("deed transfer %s/%d", asset, tokenID)
			}
			from, to = f, to2
			return nil
		},
	}

	v := New(deeds, custodian)
	if err := v.Lock(context.Background(), locks, 1, "asset-a", 7, borrower); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if created == nil || created.LoanID != 1 || created.Custody != collateral.CustodyVault {
		t.Fatalf("lock row: %+v", created)
	}
	if from != borrower || to != custodian {
		t.Fatalf("custody moved %s -> %s", from, to)
	}
}

func TestRelease_HandsBackToBorrower(t *testing.T) {
	lk := &collateral.Lock{LoanID: 1, Asset: "asset-a", TokenID: 7, Custody: collateral.CustodyVault, LockedAt: time.Now().UTC()}
	var saved *collateral.Lock
	locks := &lockmock.Repo{
		GetByLoanIDFn: func(context.Context, uint64) (*collateral.Lock, error) { return lk, nil },
		SaveFn:        func(_ context.Context, l *collateral.Lock) error { saved = l; return nil },
	}
	var to string
	deeds := &tokenmock.Deed{
		TransferFromFn: func(_ context.Context, _, from, t2 string, _ uint64) error {
			if from != custodian {
				t.Fatalf("release must move out of the vault, got from=%s", from)
			}
			to = t2
			return nil
		},
	}

	v := New(deeds, custodian)
	if err := v.Release(context.Background(), locks, 1, borrower); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if to != borrower {
		t.Fatalf("released to %s", to)
	}
	if saved == nil || saved.Custody != collateral.CustodyPrincipal || saved.Holder != borrower || saved.ReleasedAt == nil {
		t.Fatalf("lock after release: %+v", saved)
	}
}

func TestHandOff_InvalidLock(t *testing.T) {
	v := New(&tokenmock.Deed{}, custodian)

	// no lock row at all
	if err := v.Release(context.Background(), &lockmock.Repo{}, 1, borrower); !errors.Is(err, collateral.ErrInvalidLock) {
		t.Fatalf("err = %v", err)
	}

	// lock exists but custody already handed off
	released := &collateral.Lock{LoanID: 1, Custody: collateral.CustodyPrincipal, Holder: borrower}
	locks := &lockmock.Repo{
		GetByLoanIDFn: func(context.Context, uint64) (*collateral.Lock, error) { return released, nil },
	}
	if err := v.Seize(context.Background(), locks, 1, custodian); !errors.Is(err, collateral.ErrInvalidLock) {
		t.Fatalf("err = %v", err)
	}
}

func TestHandOff_TransferFailureSurfaces(t *testing.T) {
	lk := &collateral.Lock{LoanID: 1, Asset: "asset-a", TokenID: 7, Custody: collateral.CustodyVault}
	locks := &lockmock.Repo{
		GetByLoanIDFn: func(context.Context, uint64) (*collateral.Lock, error) { return lk, nil },
	}
	deeds := &tokenmock.Deed{
		TransferFromFn: func(context.Context, string, string, string, uint64) error {
			return errors.New("nft transfer reverted")
		},
	}
	v := New(deeds, custodian)
	if err := v.Release(context.Background(), locks, 1, borrower); err == nil {
		t.Fatal("want error so the caller's tx rolls back")
	}
}
