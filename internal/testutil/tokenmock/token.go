package tokenmock

import (
	"context"

	"nftlend-backend/internal/domain/token"
)

var (
	_ token.ValueTransferor = (*Value)(nil)
	_ token.DeedTransferor  = (*Deed)(nil)
	_ token.ScoreOracle     = (*Oracle)(nil)
)

// Value is a function-backed fungible transfer fake.
type Value struct {
	TransferFn     func(ctx context.Context, to string, amount uint64) error
	TransferFromFn func(ctx context.Context, from, to string, amount uint64) error
}

func (m *Value) Transfer(ctx context.Context, to string, amount uint64) error {
	if m.TransferFn != nil {
		return m.TransferFn(ctx, to, amount)
	}
	return nil
}

func (m *Value) TransferFrom(ctx context.Context, from, to string, amount uint64) error {
	if m.TransferFromFn != nil {
		return m.TransferFromFn(ctx, from, to, amount)
	}
	return nil
}

// Deed is a function-backed NFT transfer fake.
type Deed struct {
	TransferFromFn func(ctx context.Context, asset, from, to string, tokenID uint64) error
}

func (m *Deed) TransferFrom(ctx context.Context, asset, from, to string, tokenID uint64) error {
	if m.TransferFromFn != nil {
		return m.TransferFromFn(ctx, asset, from, to, tokenID)
	}
	return nil
}

// Oracle serves a fixed reading and counts calls, so tests can assert the
// score is re-read on every request.
type Oracle struct {
	Reading token.Reading
	Err     error
	Calls   int
}

func (m *Oracle) LatestReading(ctx context.Context) (token.Reading, error) {
	m.Calls++
	return m.Reading, m.Err
}
