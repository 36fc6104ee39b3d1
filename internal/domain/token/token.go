// Package token declares the external collaborator contracts the ledger
// consumes: fungible value transfer, non-fungible deed transfer, and the
// credit score oracle. Implementations are thin I/O wrappers; the ledger
// treats each call as synchronous and aborts the whole operation on failure.
package token

import (
	"context"
	"time"
)

// ValueTransferor moves fungible value between principals. Transfer pays
// out of the caller's reserve; TransferFrom pulls from a principal.
type ValueTransferor interface {
	Transfer(ctx context.Context, to string, amount uint64) error
	TransferFrom(ctx context.Context, from, to string, amount uint64) error
}

// DeedTransferor moves custody of a uniquely identified non-fungible asset.
type DeedTransferor interface {
	TransferFrom(ctx context.Context, asset, from, to string, tokenID uint64) error
}

// Reading is one oracle observation. Only Value is consumed by the credit
// gate; the round metadata is carried but not interpreted.
type Reading struct {
	RoundID         uint64    `json:"round_id"`
	Value           int64     `json:"value"`
	StartedAt       time.Time `json:"started_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	AnsweredInRound uint64    `json:"answered_in_round"`
}

type ScoreOracle interface {
	LatestReading(ctx context.Context) (Reading, error)
}
