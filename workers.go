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

// WorkerClient reads and mutates workers.
type WorkerClient struct {
	base *BaseClient
}

// Get fetches one worker by id.
func (c *WorkerClient) Get(ctx context.Context, id string) (types.Worker, error) {
	resp, err := c.base.gevulot.Worker(ctx, &gvpb.QueryGetWorkerRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
		}
		return types.Worker{}, &RPCError{Method: gvpb.MethodGetWorker, Err: err}
	}
	if resp.Worker == nil {
		return types.Worker{}, fmt.Errorf("worker %s: %w", id, ErrNotFound)
	}
	return types.WorkerFromProto(resp.Worker), nil
}

// List walks all workers lazily, one page per RPC.
func (c *WorkerClient) List(ctx context.Context) iter.Seq2[types.Worker, error] {
	return c.ListPaged(ctx, DefaultPageSize)
}

// ListPaged is List with an explicit page size.
func (c *WorkerClient) ListPaged(ctx context.Context, pageSize uint64) iter.Seq2[types.Worker, error] {
	return paginate(ctx, pageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]types.Worker, *gvpb.PageResponse, error) {
		resp, err := c.base.gevulot.WorkerAll(ctx, &gvpb.QueryAllWorkerRequest{Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodAllWorker, Err: err}
		}
		out := make([]types.Worker, 0, len(resp.Worker))
		for _, w := range resp.Worker {
			out = append(out, types.WorkerFromProto(w))
		}
		return out, resp.Pagination, nil
	})
}

// Create registers a worker and returns its assigned id.
func (c *WorkerClient) Create(ctx context.Context, msg *gvpb.MsgCreateWorker) (string, error) {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	var resp gvpb.MsgCreateWorkerResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// Update replaces the mutable fields of a worker.
func (c *WorkerClient) Update(ctx context.Context, msg *gvpb.MsgUpdateWorker) error {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	_, err := c.base.SendMsgs(ctx, msg)
	return err
}

// Delete removes a worker owned by the signer.
func (c *WorkerClient) Delete(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeleteWorker{Creator: c.base.Address(), Id: id})
	return err
}

// AnnounceExit signals that a worker will stop accepting tasks.
func (c *WorkerClient) AnnounceExit(ctx context.Context, workerID string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgAnnounceWorkerExit{Creator: c.base.Address(), WorkerId: workerID})
	return err
}
