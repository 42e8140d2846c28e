package gevulot

import (
	"context"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// SudoClient issues governance-gated operations. The signer must hold
// the module authority or every call is rejected by the ledger.
type SudoClient struct {
	base *BaseClient
}

// DeletePin force-removes a pin regardless of owner.
func (c *SudoClient) DeletePin(ctx context.Context, cid string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgSudoDeletePin{Authority: c.base.Address(), Cid: cid})
	return err
}

// DeleteWorker force-removes a worker regardless of owner.
func (c *SudoClient) DeleteWorker(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgSudoDeleteWorker{Authority: c.base.Address(), Id: id})
	return err
}

// DeleteTask force-removes a task regardless of owner.
func (c *SudoClient) DeleteTask(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgSudoDeleteTask{Authority: c.base.Address(), Id: id})
	return err
}

// FreezeAccount blocks an account from submitting further transactions.
func (c *SudoClient) FreezeAccount(ctx context.Context, account string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgSudoFreezeAccount{Authority: c.base.Address(), Account: account})
	return err
}

// UpdateParams replaces the module parameter set.
func (c *SudoClient) UpdateParams(ctx context.Context, params *gvpb.Params) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgUpdateParams{Authority: c.base.Address(), Params: params})
	return err
}
