package token

import (
	"context"
	"errors"
)

// ValueClient speaks to the fungible value-transfer service.
type ValueClient struct {
	client
}

func NewValueClient(base string) *ValueClient { return &ValueClient{newClient(base)} }

type valueTransferReq struct {
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

func (c *ValueClient) Transfer(ctx context.Context, to string, amount uint64) error {
	var rep okReply
	if err := c.postJSON(ctx, "/transfers", valueTransferReq{To: to, Amount: amount}, &rep); err != nil {
		return err
	}
	if !rep.OK {
		return errors.New("value transfer rejected")
	}
	return nil
}

func (c *ValueClient) TransferFrom(ctx context.Context, from, to string, amount uint64) error {
	var rep okReply
	if err := c.postJSON(ctx, "/transfers", valueTransferReq{From: from, To: to, Amount: amount}, &rep); err != nil {
		return err
	}
	if !rep.OK {
		return errors.New("value transfer rejected")
	}
	return nil
}
