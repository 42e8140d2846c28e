package gevulot

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// GovClient drives the chain's governance module: proposals, votes and
// deposits. Governance entities stay in their wire form; the module is
// chain infrastructure rather than part of the marketplace domain.
type GovClient struct {
	base *BaseClient
}

// ProposalFilter narrows a proposal walk. The zero value matches every
// proposal.
type ProposalFilter struct {
	Status    int32
	Voter     string
	Depositor string
}

// Proposal fetches one proposal by id.
func (c *GovClient) Proposal(ctx context.Context, proposalID uint64) (*gvpb.Proposal, error) {
	resp, err := c.base.gov.Proposal(ctx, &gvpb.QueryProposalRequest{ProposalId: proposalID})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("proposal %d: %w", proposalID, ErrNotFound)
		}
		return nil, &RPCError{Method: gvpb.MethodGovProposal, Err: err}
	}
	if resp.Proposal == nil {
		return nil, fmt.Errorf("proposal %d: %w", proposalID, ErrNotFound)
	}
	return resp.Proposal, nil
}

// Proposals walks the matching proposals lazily, one page per RPC.
func (c *GovClient) Proposals(ctx context.Context, filter ProposalFilter) iter.Seq2[*gvpb.Proposal, error] {
	return paginate(ctx, DefaultPageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]*gvpb.Proposal, *gvpb.PageResponse, error) {
		resp, err := c.base.gov.Proposals(ctx, &gvpb.QueryProposalsRequest{
			ProposalStatus: filter.Status,
			Voter:          filter.Voter,
			Depositor:      filter.Depositor,
			Pagination:     page,
		})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodGovProposals, Err: err}
		}
		return resp.Proposals, resp.Pagination, nil
	})
}

// Vote fetches the vote a voter cast on a proposal.
func (c *GovClient) Vote(ctx context.Context, proposalID uint64, voter string) (*gvpb.Vote, error) {
	resp, err := c.base.gov.Vote(ctx, &gvpb.QueryVoteRequest{ProposalId: proposalID, Voter: voter})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("vote on proposal %d by %s: %w", proposalID, voter, ErrNotFound)
		}
		return nil, &RPCError{Method: gvpb.MethodGovVote, Err: err}
	}
	if resp.Vote == nil {
		return nil, fmt.Errorf("vote on proposal %d by %s: %w", proposalID, voter, ErrNotFound)
	}
	return resp.Vote, nil
}

// TallyResult fetches the running tally of a proposal vote.
func (c *GovClient) TallyResult(ctx context.Context, proposalID uint64) (*gvpb.TallyResult, error) {
	resp, err := c.base.gov.TallyResult(ctx, &gvpb.QueryTallyResultRequest{ProposalId: proposalID})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodGovTallyResult, Err: err}
	}
	return resp.Tally, nil
}

// Deposits walks the deposits of a proposal lazily.
func (c *GovClient) Deposits(ctx context.Context, proposalID uint64) iter.Seq2[*gvpb.Deposit, error] {
	return paginate(ctx, DefaultPageSize, func(ctx context.Context, page *gvpb.PageRequest) ([]*gvpb.Deposit, *gvpb.PageResponse, error) {
		resp, err := c.base.gov.Deposits(ctx, &gvpb.QueryDepositsRequest{ProposalId: proposalID, Pagination: page})
		if err != nil {
			return nil, nil, &RPCError{Method: gvpb.MethodGovDeposits, Err: err}
		}
		return resp.Deposits, resp.Pagination, nil
	})
}

// SubmitProposal submits a proposal and returns its assigned id.
func (c *GovClient) SubmitProposal(ctx context.Context, msg *gvpb.MsgSubmitProposal) (uint64, error) {
	if msg.Proposer == "" {
		msg.Proposer = c.base.Address()
	}
	var resp gvpb.MsgSubmitProposalResponse
	if err := c.base.SendMsg(ctx, msg, &resp); err != nil {
		return 0, err
	}
	return resp.ProposalId, nil
}

// CastVote votes on a proposal as the signer.
func (c *GovClient) CastVote(ctx context.Context, proposalID uint64, option int32) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgVote{
		ProposalId: proposalID,
		Voter:      c.base.Address(),
		Option:     option,
	})
	return err
}

// AddDeposit tops up the deposit of a proposal in the fee denom.
func (c *GovClient) AddDeposit(ctx context.Context, proposalID uint64, amount string) error {
	_, err := c.base.SendMsgs(ctx, &gvpb.MsgDeposit{
		ProposalId: proposalID,
		Depositor:  c.base.Address(),
		Amount:     []*gvpb.Coin{{Denom: c.base.denom, Amount: amount}},
	})
	return err
}

// SubmitSoftwareUpgrade wraps an upgrade plan into a proposal with an
// initial deposit in the fee denom.
func (c *GovClient) SubmitSoftwareUpgrade(ctx context.Context, authority string, plan *gvpb.UpgradePlan, deposit string) (uint64, error) {
	content, err := gvpb.PackAny(&gvpb.MsgSoftwareUpgrade{Authority: authority, Plan: plan})
	if err != nil {
		return 0, fmt.Errorf("failed to pack upgrade plan: %w", err)
	}
	return c.SubmitProposal(ctx, &gvpb.MsgSubmitProposal{
		Content:        content,
		InitialDeposit: []*gvpb.Coin{{Denom: c.base.denom, Amount: deposit}},
	})
}
