package token

import (
	"context"
)

// DeedClient speaks to the non-fungible asset transfer service.
type DeedClient struct {
	client
}

func NewDeedClient(base string) *DeedClient { return &DeedClient{newClient(base)} }

type deedTransferReq struct {
	Asset   string `json:"asset"`
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID uint64 `json:"token_id"`
}

func (c *DeedClient) TransferFrom(ctx context.Context, asset, from, to string, tokenID uint64) error {
	return c.postJSON(ctx, "/transfers", deedTransferReq{Asset: asset, From: from, To: to, TokenID: tokenID}, nil)
}
