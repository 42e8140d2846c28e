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

// TaskClient reads tasks and drives their lifecycle. The accept,
// decline, finish and reschedule intents are encoded exactly as given;
// whether a transition is legal is the ledger's call.
type TaskClient struct {
	base *BaseClient
}

// Get fetches one task by id.
func (c *TaskClient) Get(ctx context.Context, id string) (types.Task, error) {
	resp, err := c.base.gevulot.Task(ctx, &gvpb.QueryGetTaskRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
		}
		return types.Task{}, &RPCError{Method: gvpb.MethodGetTask, Err: err}
	}
	if resp.Task == nil {
		return types.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return types.TaskFromProto(resp.Task), nil
}

// List walks all tasks lazily, one page per RPC.
func (c *TaskClient) List(ctx context.Context) iter.Seq2[types.Task, error] {
	return c.ListPaged(ctx, DefaultPageSize)
}

// ListPaged is List with an explicit page size.
func (c *TaskClient) ListPaged(ctx context.Context, pageSize uint64) iter.Seq2[types.Task, error] {
	return paginate(ctx, pageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]types.Task, *gvpb.PageResponse, error) {
		resp, err := c.base.gevulot.TaskAll(ctx, &gvpb.QueryAllTaskRequest{Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodAllTask, Err: err}
		}
		out := make([]types.Task, 0, len(resp.Task))
		for _, t := range resp.Task {
			out = append(out, types.TaskFromProto(t))
		}
		return out, resp.Pagination, nil
	})
}

// Create submits a task and returns its assigned id.
func (c *TaskClient) Create(ctx context.Context, msg *gvpb.MsgCreateTask) (string, error) {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	var resp gvpb.MsgCreateTaskResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// Delete removes a task owned by the signer.
func (c *TaskClient) Delete(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeleteTask{Creator: c.base.Address(), Id: id})
	return err
}

// Accept takes an assigned task on behalf of a worker.
func (c *TaskClient) Accept(ctx context.Context, taskID, workerID string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgAcceptTask{
		Creator:  c.base.Address(),
		TaskId:   taskID,
		WorkerId: workerID,
	})
	return err
}

// Decline refuses an assigned task on behalf of a worker.
func (c *TaskClient) Decline(ctx context.Context, taskID, workerID, reason string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeclineTask{
		Creator:  c.base.Address(),
		TaskId:   taskID,
		WorkerId: workerID,
		Error:    reason,
	})
	return err
}

// Finish reports a task's terminal result.
func (c *TaskClient) Finish(ctx context.Context, msg *gvpb.MsgFinishTask) error {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	_, err := c.base.SendMsgs(ctx, msg)
	return err
}

// Reschedule asks the ledger to schedule a failed task again. The two
// returned ids come back verbatim; the ledger defines their meaning.
func (c *TaskClient) Reschedule(ctx context.Context, id string) (*gvpb.MsgRescheduleTaskResponse, error) {
	var resp gvpb.MsgRescheduleTaskResponse
	msg := &gvpb.MsgRescheduleTask{Creator: c.base.Address(), Id: id}
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
