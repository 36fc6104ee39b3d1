package token

import (
	"context"

	"nftlend-backend/internal/domain/token"
)

// OracleClient fetches the latest score reading.
type OracleClient struct {
	client
}

func NewOracleClient(base string) *OracleClient { return &OracleClient{newClient(base)} }

func (c *OracleClient) LatestReading(ctx context.Context) (token.Reading, error) {
	var r token.Reading
	err := c.getJSON(ctx, "/readings/latest", &r)
	return r, err
}
