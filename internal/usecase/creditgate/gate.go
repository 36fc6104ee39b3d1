package creditgate

import (
	"context"
	"errors"
	"fmt"

	"nftlend-backend/internal/domain/loan"
	"nftlend-backend/internal/domain/token"
	"nftlend-backend/internal/domain/user"
)

// MinCreditScore is the fixed policy threshold; the oracle value must be
// strictly greater to pass.
const MinCreditScore int64 = 600

// Gate decides loan eligibility: the borrower must be verified and the
// oracle-reported score must clear the threshold. The score is read fresh
// on every check, never cached across requests.
type Gate struct {
	users  user.Repository
	oracle token.ScoreOracle
}

func New(users user.Repository, oracle token.ScoreOracle) *Gate {
	return &Gate{users: users, oracle: oracle}
}

func (g *Gate) CheckEligible(ctx context.Context, userID string) error {
	p, err := g.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("%w: borrower %s is not verified", loan.ErrPreconditionFailed, userID)
		}
		return err
	}
	if !p.Verified {
		return fmt.Errorf("%w: borrower %s is not verified", loan.ErrPreconditionFailed, userID)
	}

	r, err := g.oracle.LatestReading(ctx)
	if err != nil {
		return fmt.Errorf("credit oracle: %w", err)
	}
	// Round metadata is discarded; only the signed value matters here.
	if r.Value <= MinCreditScore {
		return fmt.Errorf("%w: credit score %d does not exceed %d", loan.ErrPreconditionFailed, r.Value, MinCreditScore)
	}
	return nil
}
