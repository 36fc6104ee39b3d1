package user

import "context"

type Repository interface {
	Get(ctx context.Context, userID string) (*Profile, error)
	// SetVerified upserts the verification flag. Administrative only;
	// the caller enforces authorization.
	SetVerified(ctx context.Context, userID string, verified bool) error
}
