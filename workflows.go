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

// WorkflowClient reads and mutates workflows.
type WorkflowClient struct {
	base *BaseClient
}

// Get fetches one workflow by id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (types.Workflow, error) {
	resp, err := c.base.gevulot.Workflow(ctx, &gvpb.QueryGetWorkflowRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Workflow{}, fmt.Errorf("workflow %s: %w", id, ErrNotFound)
		}
		return types.Workflow{}, &RPCError{Method: gvpb.MethodGetWorkflow, Err: err}
	}
	if resp.Workflow == nil {
		return types.Workflow{}, fmt.Errorf("workflow %s: %w", id, ErrNotFound)
	}
	return types.WorkflowFromProto(resp.Workflow), nil
}

// List walks all workflows lazily, one page per RPC.
func (c *WorkflowClient) List(ctx context.Context) iter.Seq2[types.Workflow, error] {
	return c.ListPaged(ctx, DefaultPageSize)
}

// ListPaged is List with an explicit page size.
func (c *WorkflowClient) ListPaged(ctx context.Context, pageSize uint64) iter.Seq2[types.Workflow, error] {
	return paginate(ctx, pageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]types.Workflow, *gvpb.PageResponse, error) {
		resp, err := c.base.gevulot.WorkflowAll(ctx, &gvpb.QueryAllWorkflowRequest{Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodAllWorkflow, Err: err}
		}
		out := make([]types.Workflow, 0, len(resp.Workflow))
		for _, w := range resp.Workflow {
			out = append(out, types.WorkflowFromProto(w))
		}
		return out, resp.Pagination, nil
	})
}

// Create submits a workflow and returns its assigned id.
func (c *WorkflowClient) Create(ctx context.Context, msg *gvpb.MsgCreateWorkflow) (string, error) {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	var resp gvpb.MsgCreateWorkflowResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// Delete removes a workflow owned by the signer.
func (c *WorkflowClient) Delete(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeleteWorkflow{Creator: c.base.Address(), Id: id})
	return err
}
