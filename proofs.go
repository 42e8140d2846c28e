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

// ProofClient reads and mutates proofs.
type ProofClient struct {
	base *BaseClient
}

// Get fetches one proof by id.
func (c *ProofClient) Get(ctx context.Context, id string) (types.Proof, error) {
	resp, err := c.base.gevulot.Proof(ctx, &gvpb.QueryGetProofRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Proof{}, fmt.Errorf("proof %s: %w", id, ErrNotFound)
		}
		return types.Proof{}, &RPCError{Method: gvpb.MethodGetProof, Err: err}
	}
	if resp.Proof == nil {
		return types.Proof{}, fmt.Errorf("proof %s: %w", id, ErrNotFound)
	}
	return types.ProofFromProto(resp.Proof), nil
}

// List walks all proofs lazily, one page per RPC.
func (c *ProofClient) List(ctx context.Context) iter.Seq2[types.Proof, error] {
	return c.ListPaged(ctx, DefaultPageSize)
}

// ListPaged is List with an explicit page size.
func (c *ProofClient) ListPaged(ctx context.Context, pageSize uint64) iter.Seq2[types.Proof, error] {
	return paginate(ctx, pageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]types.Proof, *gvpb.PageResponse, error) {
		resp, err := c.base.gevulot.ProofAll(ctx, &gvpb.QueryAllProofRequest{Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodAllProof, Err: err}
		}
		out := make([]types.Proof, 0, len(resp.Proof))
		for _, p := range resp.Proof {
			out = append(out, types.ProofFromProto(p))
		}
		return out, resp.Pagination, nil
	})
}

// Create registers a prover/verifier pair and returns its assigned id.
func (c *ProofClient) Create(ctx context.Context, msg *gvpb.MsgCreateProof) (string, error) {
	if msg.Creator == "" {
		msg.Creator = c.base.Address()
	}
	var resp gvpb.MsgCreateProofResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return "", err
	}
	return resp.Id, nil
}

// Delete removes a proof owned by the signer.
func (c *ProofClient) Delete(ctx context.Context, id string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeleteProof{Creator: c.base.Address(), Id: id})
	return err
}
