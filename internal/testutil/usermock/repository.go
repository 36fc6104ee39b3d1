package usermock

import (
	"context"

	domain "nftlend-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn         func(ctx context.Context, userID string) (*domain.Profile, error)
	SetVerifiedFn func(ctx context.Context, userID string, verified bool) error
}

func (m *Repo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) SetVerified(ctx context.Context, userID string, verified bool) error {
	if m.SetVerifiedFn != nil {
		return m.SetVerifiedFn(ctx, userID, verified)
	}
	return nil
}
