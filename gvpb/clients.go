package gvpb

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

// Invoker is the transport seam: *grpc.ClientConn satisfies it, and
// tests substitute an in-memory fake.
type Invoker interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}

// Codec marshals the hand-written messages of this package through the
// grpc encoding machinery.
type Codec struct{}

// Name identifies the codec to grpc. The name matches the standard
// proto codec so the server side needs no special handling.
func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("gvpb codec: cannot marshal %T", v)
	}
	return m.Marshal()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("gvpb codec: cannot unmarshal into %T", v)
	}
	return m.Unmarshal(data)
}

// Fully qualified RPC method names.
const (
	MethodGetWorker   = "/gevulot.gevulot.Query/Worker"
	MethodAllWorker   = "/gevulot.gevulot.Query/WorkerAll"
	MethodGetTask     = "/gevulot.gevulot.Query/Task"
	MethodAllTask     = "/gevulot.gevulot.Query/TaskAll"
	MethodGetWorkflow = "/gevulot.gevulot.Query/Workflow"
	MethodAllWorkflow = "/gevulot.gevulot.Query/WorkflowAll"
	MethodGetProof    = "/gevulot.gevulot.Query/Proof"
	MethodAllProof    = "/gevulot.gevulot.Query/ProofAll"
	MethodGetPin      = "/gevulot.gevulot.Query/Pin"
	MethodAllPin      = "/gevulot.gevulot.Query/PinAll"
	MethodParams      = "/gevulot.gevulot.Query/Params"

	MethodAccount = "/cosmos.auth.v1beta1.Query/Account"
	MethodBalance = "/cosmos.bank.v1beta1.Query/Balance"

	MethodBroadcastTx = "/cosmos.tx.v1beta1.Service/BroadcastTx"
	MethodGetTx       = "/cosmos.tx.v1beta1.Service/GetTx"
	MethodGetTxsEvent = "/cosmos.tx.v1beta1.Service/GetTxsEvent"
	MethodSimulate    = "/cosmos.tx.v1beta1.Service/Simulate"

	MethodGovProposal    = "/cosmos.gov.v1beta1.Query/Proposal"
	MethodGovProposals   = "/cosmos.gov.v1beta1.Query/Proposals"
	MethodGovVote        = "/cosmos.gov.v1beta1.Query/Vote"
	MethodGovTallyResult = "/cosmos.gov.v1beta1.Query/TallyResult"
	MethodGovDeposits    = "/cosmos.gov.v1beta1.Query/Deposits"

	MethodGetLatestBlock   = "/cosmos.base.tendermint.v1beta1.Service/GetLatestBlock"
	MethodGetBlockByHeight = "/cosmos.base.tendermint.v1beta1.Service/GetBlockByHeight"
)

func invoke(ctx context.Context, inv Invoker, method string, req, resp Message, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(Codec{})}, opts...)
	return inv.Invoke(ctx, method, req, resp, opts...)
}

// GevulotQueryClient is the typed client of the gevulot.gevulot Query
// service.
type GevulotQueryClient struct {
	inv Invoker
}

func NewGevulotQueryClient(inv Invoker) *GevulotQueryClient {
	return &GevulotQueryClient{inv: inv}
}

func (c *GevulotQueryClient) Worker(ctx context.Context, req *QueryGetWorkerRequest, opts ...grpc.CallOption) (*QueryGetWorkerResponse, error) {
	resp := new(QueryGetWorkerResponse)
	if err := invoke(ctx, c.inv, MethodGetWorker, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) WorkerAll(ctx context.Context, req *QueryAllWorkerRequest, opts ...grpc.CallOption) (*QueryAllWorkerResponse, error) {
	resp := new(QueryAllWorkerResponse)
	if err := invoke(ctx, c.inv, MethodAllWorker, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) Task(ctx context.Context, req *QueryGetTaskRequest, opts ...grpc.CallOption) (*QueryGetTaskResponse, error) {
	resp := new(QueryGetTaskResponse)
	if err := invoke(ctx, c.inv, MethodGetTask, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) TaskAll(ctx context.Context, req *QueryAllTaskRequest, opts ...grpc.CallOption) (*QueryAllTaskResponse, error) {
	resp := new(QueryAllTaskResponse)
	if err := invoke(ctx, c.inv, MethodAllTask, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) Workflow(ctx context.Context, req *QueryGetWorkflowRequest, opts ...grpc.CallOption) (*QueryGetWorkflowResponse, error) {
	resp := new(QueryGetWorkflowResponse)
	if err := invoke(ctx, c.inv, MethodGetWorkflow, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) WorkflowAll(ctx context.Context, req *QueryAllWorkflowRequest, opts ...grpc.CallOption) (*QueryAllWorkflowResponse, error) {
	resp := new(QueryAllWorkflowResponse)
	if err := invoke(ctx, c.inv, MethodAllWorkflow, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) Proof(ctx context.Context, req *QueryGetProofRequest, opts ...grpc.CallOption) (*QueryGetProofResponse, error) {
	resp := new(QueryGetProofResponse)
	if err := invoke(ctx, c.inv, MethodGetProof, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) ProofAll(ctx context.Context, req *QueryAllProofRequest, opts ...grpc.CallOption) (*QueryAllProofResponse, error) {
	resp := new(QueryAllProofResponse)
	if err := invoke(ctx, c.inv, MethodAllProof, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) Pin(ctx context.Context, req *QueryGetPinRequest, opts ...grpc.CallOption) (*QueryGetPinResponse, error) {
	resp := new(QueryGetPinResponse)
	if err := invoke(ctx, c.inv, MethodGetPin, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) PinAll(ctx context.Context, req *QueryAllPinRequest, opts ...grpc.CallOption) (*QueryAllPinResponse, error) {
	resp := new(QueryAllPinResponse)
	if err := invoke(ctx, c.inv, MethodAllPin, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GevulotQueryClient) Params(ctx context.Context, req *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	resp := new(QueryParamsResponse)
	if err := invoke(ctx, c.inv, MethodParams, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

// AuthQueryClient covers the one auth RPC the client needs.
type AuthQueryClient struct {
	inv Invoker
}

func NewAuthQueryClient(inv Invoker) *AuthQueryClient {
	return &AuthQueryClient{inv: inv}
}

func (c *AuthQueryClient) Account(ctx context.Context, req *QueryAccountRequest, opts ...grpc.CallOption) (*QueryAccountResponse, error) {
	resp := new(QueryAccountResponse)
	if err := invoke(ctx, c.inv, MethodAccount, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

// BankQueryClient covers the one bank query the client needs.
type BankQueryClient struct {
	inv Invoker
}

func NewBankQueryClient(inv Invoker) *BankQueryClient {
	return &BankQueryClient{inv: inv}
}

func (c *BankQueryClient) Balance(ctx context.Context, req *QueryBalanceRequest, opts ...grpc.CallOption) (*QueryBalanceResponse, error) {
	resp := new(QueryBalanceResponse)
	if err := invoke(ctx, c.inv, MethodBalance, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

// TxServiceClient is the typed client of cosmos.tx.v1beta1.Service.
type TxServiceClient struct {
	inv Invoker
}

func NewTxServiceClient(inv Invoker) *TxServiceClient {
	return &TxServiceClient{inv: inv}
}

func (c *TxServiceClient) BroadcastTx(ctx context.Context, req *BroadcastTxRequest, opts ...grpc.CallOption) (*BroadcastTxResponse, error) {
	resp := new(BroadcastTxResponse)
	if err := invoke(ctx, c.inv, MethodBroadcastTx, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *TxServiceClient) GetTx(ctx context.Context, req *GetTxRequest, opts ...grpc.CallOption) (*GetTxResponse, error) {
	resp := new(GetTxResponse)
	if err := invoke(ctx, c.inv, MethodGetTx, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *TxServiceClient) GetTxsEvent(ctx context.Context, req *GetTxsEventRequest, opts ...grpc.CallOption) (*GetTxsEventResponse, error) {
	resp := new(GetTxsEventResponse)
	if err := invoke(ctx, c.inv, MethodGetTxsEvent, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *TxServiceClient) Simulate(ctx context.Context, req *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error) {
	resp := new(SimulateResponse)
	if err := invoke(ctx, c.inv, MethodSimulate, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

// GovQueryClient is the typed client of the cosmos.gov.v1beta1 Query
// service.
type GovQueryClient struct {
	inv Invoker
}

func NewGovQueryClient(inv Invoker) *GovQueryClient {
	return &GovQueryClient{inv: inv}
}

func (c *GovQueryClient) Proposal(ctx context.Context, req *QueryProposalRequest, opts ...grpc.CallOption) (*QueryProposalResponse, error) {
	resp := new(QueryProposalResponse)
	if err := invoke(ctx, c.inv, MethodGovProposal, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GovQueryClient) Proposals(ctx context.Context, req *QueryProposalsRequest, opts ...grpc.CallOption) (*QueryProposalsResponse, error) {
	resp := new(QueryProposalsResponse)
	if err := invoke(ctx, c.inv, MethodGovProposals, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GovQueryClient) Vote(ctx context.Context, req *QueryVoteRequest, opts ...grpc.CallOption) (*QueryVoteResponse, error) {
	resp := new(QueryVoteResponse)
	if err := invoke(ctx, c.inv, MethodGovVote, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GovQueryClient) TallyResult(ctx context.Context, req *QueryTallyResultRequest, opts ...grpc.CallOption) (*QueryTallyResultResponse, error) {
	resp := new(QueryTallyResultResponse)
	if err := invoke(ctx, c.inv, MethodGovTallyResult, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *GovQueryClient) Deposits(ctx context.Context, req *QueryDepositsRequest, opts ...grpc.CallOption) (*QueryDepositsResponse, error) {
	resp := new(QueryDepositsResponse)
	if err := invoke(ctx, c.inv, MethodGovDeposits, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

// TendermintServiceClient exposes the block queries.
type TendermintServiceClient struct {
	inv Invoker
}

func NewTendermintServiceClient(inv Invoker) *TendermintServiceClient {
	return &TendermintServiceClient{inv: inv}
}

func (c *TendermintServiceClient) GetLatestBlock(ctx context.Context, req *GetLatestBlockRequest, opts ...grpc.CallOption) (*GetLatestBlockResponse, error) {
	resp := new(GetLatestBlockResponse)
	if err := invoke(ctx, c.inv, MethodGetLatestBlock, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *TendermintServiceClient) GetBlockByHeight(ctx context.Context, req *GetBlockByHeightRequest, opts ...grpc.CallOption) (*GetBlockByHeightResponse, error) {
	resp := new(GetBlockByHeightResponse)
	if err := invoke(ctx, c.inv, MethodGetBlockByHeight, req, resp, opts); err != nil {
		return nil, err
	}
	return resp, nil
}
