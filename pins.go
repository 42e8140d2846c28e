package gevulot

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

// PinClient reads and mutates storage pins. Pins are addressed by
// content id rather than a ledger-assigned id.
type PinClient struct {
	base *BaseClient
}

// Get fetches one pin by content id.
func (c *PinClient) Get(ctx context.Context, cid string) (types.Pin, error) {
	resp, err := c.base.gevulot.Pin(ctx, &gvpb.QueryGetPinRequest{Cid: cid})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Pin{}, fmt.Errorf("pin %s: %w", cid, ErrNotFound)
		}
		return types.Pin{}, &RPCError{Method: gvpb.MethodGetPin, Err: err}
	}
	if resp.Pin == nil {
		return types.Pin{}, fmt.Errorf("pin %s: %w", cid, ErrNotFound)
	}
	return types.PinFromProto(resp.Pin), nil
}

// List walks all pins lazily, one page per RPC.
func (c *PinClient) List(ctx context.Context) iter.Seq2[types.Pin, error] {
	return c.ListPaged(ctx, DefaultPageSize)
}

// ListPaged is List with an explicit page size.
func (c *PinClient) ListPaged(ctx context.Context, pageSize uint64) iter.Seq2[types.Pin, error] {
	return paginate(ctx, pageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]types.Pin, *gvpb.PageResponse, error) {
		resp, err := c.base.gevulot.PinAll(ctx, &gvpb.QueryAllPinRequest{Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodAllPin, Err: err}
		}
		out := make([]types.Pin, 0, len(resp.Pin))
		for _, p := range resp.Pin {
			out = append(out, types.PinFromProto(p))
		}
		return out, resp.Pagination, nil
	})
}

// Create asks the network to pin data and returns the assigned pin id.
func (c *PinClient) Create(ctx context.Context, msg *gvpb.MsgCreatePin) (string, error) {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	var resp gvpb.MsgCreatePinResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// Delete releases a storage commitment.
func (c *PinClient) Delete(ctx context.Context, cid, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeletePin{Creator: c.base.Address(), Cid: cid, Id: id})
	return err
}

// Ack acknowledges, on behalf of a worker, that pinned data is held.
func (c *PinClient) Ack(ctx context.Context, msg *gvpb.MsgAckPin) error {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	_, err := c.base.SendMsgs(ctx, msg)
	return err
}
