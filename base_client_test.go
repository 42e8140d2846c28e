package gevulot

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/signer"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// fakeChain serves the rpc surface the BaseClient touches, records what
// each broadcast carried, and can be scripted to reject transactions.
type fakeChain struct {
	mu sync.Mutex

	accountNumber uint64
	chainSequence uint64

	// scripted broadcast responses, consumed in order; once drained
	// every broadcast is accepted.
	scripted []*gvpb.TxResponse

	gasUsed uint64
	txData  string

	// pendingGetTx makes that many GetTx calls miss before the
	// transaction becomes visible, as if it were still in the mempool.
	pendingGetTx int

	accountCalls   int
	broadcastCalls int
	getTxCalls     int

	seenSequences []uint64
	seenSigs      [][]byte
	seenGasLimits []uint64
}

func respond(reply any, msg gvpb.Message) error {
	raw, err := msg.Marshal()
	if err != nil {
		return err
	}
	return reply.(gvpb.Message).Unmarshal(raw)
}

func (f *fakeChain) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch method {
	case gvpb.MethodAccount:
		f.accountCalls++
		acct := &gvpb.BaseAccount{
			Address:       args.(*gvpb.QueryAccountRequest).Address,
			AccountNumber: f.accountNumber,
			Sequence:      f.chainSequence,
		}
		val, err := acct.Marshal()
		if err != nil {
			return err
		}
		return respond(reply, &gvpb.QueryAccountResponse{
			Account: &gvpb.Any{TypeUrl: "/cosmos.auth.v1beta1.BaseAccount", Value: val},
		})

	case gvpb.MethodSimulate:
		return respond(reply, &gvpb.SimulateResponse{GasInfo: &gvpb.GasInfo{GasUsed: f.gasUsed}})

	case gvpb.MethodBroadcastTx:
		f.broadcastCalls++
		req := args.(*gvpb.BroadcastTxRequest)

		var raw gvpb.TxRaw
		if err := raw.Unmarshal(req.TxBytes); err != nil {
			return fmt.Errorf("bad tx bytes: %w", err)
		}
		var authInfo gvpb.AuthInfo
		if err := authInfo.Unmarshal(raw.AuthInfoBytes); err != nil {
			return fmt.Errorf("bad auth info: %w", err)
		}
		if len(authInfo.SignerInfos) != 1 || len(raw.Signatures) != 1 {
			return fmt.Errorf("expected a single signer")
		}
		f.seenSequences = append(f.seenSequences, authInfo.SignerInfos[0].Sequence)
		f.seenSigs = append(f.seenSigs, raw.Signatures[0])
		if authInfo.Fee != nil {
			f.seenGasLimits = append(f.seenGasLimits, authInfo.Fee.GasLimit)
		}

		if len(f.scripted) > 0 {
			resp := f.scripted[0]
			f.scripted = f.scripted[1:]
			return respond(reply, &gvpb.BroadcastTxResponse{TxResponse: resp})
		}

		f.chainSequence++
		hash := fmt.Sprintf("%064X", f.broadcastCalls)
		return respond(reply, &gvpb.BroadcastTxResponse{TxResponse: &gvpb.TxResponse{TxHash: hash}})

	case gvpb.MethodGetTx:
		f.getTxCalls++
		if f.pendingGetTx > 0 {
			f.pendingGetTx--
			return status.Error(codes.NotFound, "tx not found")
		}
		hash := args.(*gvpb.GetTxRequest).Hash
		return respond(reply, &gvpb.GetTxResponse{
			TxResponse: &gvpb.TxResponse{TxHash: hash, Height: 42, Data: f.txData},
		})
	}
	return status.Errorf(codes.Unimplemented, "unexpected rpc %s", method)
}

type chainStats struct {
	accountCalls   int
	broadcastCalls int
	seenSequences  []uint64
	seenSigs       [][]byte
	seenGasLimits  []uint64
}

func (f *fakeChain) snapshot() chainStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return chainStats{
		accountCalls:   f.accountCalls,
		broadcastCalls: f.broadcastCalls,
		seenSequences:  append([]uint64(nil), f.seenSequences...),
		seenSigs:       append([][]byte(nil), f.seenSigs...),
		seenGasLimits:  append([]uint64(nil), f.seenGasLimits...),
	}
}

func testSigner(t *testing.T) *signer.Signer {
	t.Helper()
	s, err := signer.NewSignerFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("failed to build signer: %v", err)
	}
	return s
}

func newTestClient(t *testing.T, chain *fakeChain) *BaseClient {
	t.Helper()
	return NewBaseClient(chain, testSigner(t), BaseClientConfig{
		FixedGasLimit:  100000,
		FixedFeeAmount: 1000,
		Retry:          &RetryPolicy{MaxAttempts: 3},
		TxWaitTimeout:  time.Second,
		PollInterval:   time.Millisecond,
	})
}

func encodeTxData(t *testing.T, typeURL string, resp gvpb.Message) string {
	t.Helper()
	val, err := resp.Marshal()
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}
	raw, err := (&gvpb.TxMsgData{MsgResponses: []*gvpb.Any{{TypeUrl: typeURL, Value: val}}}).Marshal()
	if err != nil {
		t.Fatalf("failed to marshal tx msg data: %v", err)
	}
	return hex.EncodeToString(raw)
}

func TestSendMsgsSequencesAreMonotonic(t *testing.T) {
	chain := &fakeChain{accountNumber: 7, chainSequence: 5}
	client := newTestClient(t, chain)

	for i := 0; i < 3; i++ {
		if _, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"}); err != nil {
			t.Fatalf("send %d failed: %v", i, err)
		}
	}

	got := chain.snapshot()
	if got.accountCalls != 1 {
		t.Errorf("expected one account sync, got %d", got.accountCalls)
	}
	want := []uint64{5, 6, 7}
	if len(got.seenSequences) != len(want) {
		t.Fatalf("expected %d broadcasts, got %d", len(want), len(got.seenSequences))
	}
	for i, seq := range want {
		if got.seenSequences[i] != seq {
			t.Errorf("broadcast %d: expected sequence %d, got %d", i, seq, got.seenSequences[i])
		}
	}
}

func TestSendMsgsConcurrentSequencesAreUnique(t *testing.T) {
	chain := &fakeChain{accountNumber: 7, chainSequence: 100}
	client := newTestClient(t, chain)

	// Warm the cache first so the cold-start sync is not racing the
	// senders below.
	if _, _, err := client.reserveSequence(context.Background()); err != nil {
		t.Fatalf("failed to warm session: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"}); err != nil {
				t.Errorf("send failed: %v", err)
			}
		}()
	}
	wg.Wait()

	got := chain.snapshot()
	if got.accountCalls != 1 {
		t.Errorf("expected one account sync, got %d", got.accountCalls)
	}
	seen := make(map[uint64]bool)
	for _, seq := range got.seenSequences {
		if seen[seq] {
			t.Errorf("sequence %d used twice", seq)
		}
		seen[seq] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct sequences, got %d", len(seen))
	}
}

func TestSendMsgsResyncsAfterSequenceMismatch(t *testing.T) {
	chain := &fakeChain{
		accountNumber: 7,
		chainSequence: 5,
		scripted: []*gvpb.TxResponse{
			{Code: 32, Codespace: "sdk", RawLog: "account sequence mismatch, expected 9, got 5"},
		},
	}
	client := newTestClient(t, chain)

	// Warm the cache, then move the chain sequence under the client's
	// feet so the first broadcast is stale.
	if _, _, err := client.reserveSequence(context.Background()); err != nil {
		t.Fatalf("failed to warm session: %v", err)
	}
	chain.mu.Lock()
	chain.chainSequence = 9
	chain.mu.Unlock()

	if _, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	got := chain.snapshot()
	if got.accountCalls != 2 {
		t.Errorf("expected exactly one refresh after the mismatch, got %d account calls", got.accountCalls)
	}
	if len(got.seenSequences) != 2 {
		t.Fatalf("expected 2 broadcasts, got %d", len(got.seenSequences))
	}
	if got.seenSequences[0] != 6 || got.seenSequences[1] != 9 {
		t.Errorf("expected sequences [6 9], got %v", got.seenSequences)
	}
	if string(got.seenSigs[0]) == string(got.seenSigs[1]) {
		t.Error("expected the retry to carry a fresh signature")
	}
}

func TestSendMsgsRetryBudget(t *testing.T) {
	chain := &fakeChain{
		accountNumber: 7,
		chainSequence: 5,
		scripted: []*gvpb.TxResponse{
			{Code: 20, Codespace: "sdk", RawLog: "mempool is full"},
			{Code: 20, Codespace: "sdk", RawLog: "mempool is full"},
			{Code: 20, Codespace: "sdk", RawLog: "mempool is full"},
		},
	}
	client := newTestClient(t, chain)

	_, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"})
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", exhausted.Attempts)
	}
	var rej *RejectionError
	if !errors.As(exhausted.Last, &rej) || rej.Permanent {
		t.Errorf("expected a transient rejection as the last error, got %v", exhausted.Last)
	}
	if exhausted.Submission == "" {
		t.Error("expected the submission id to be carried in the error")
	}
	if got := chain.snapshot(); got.broadcastCalls != 3 {
		t.Errorf("expected 3 broadcasts, got %d", got.broadcastCalls)
	}
}

func TestSendMsgsUnconfirmedTxIsNotRebroadcast(t *testing.T) {
	// Every GetTx misses, so the broadcast is accepted but never seen
	// in a block before the wait deadline.
	chain := &fakeChain{accountNumber: 7, chainSequence: 5, pendingGetTx: 1000}
	client := NewBaseClient(chain, testSigner(t), BaseClientConfig{
		FixedGasLimit:  100000,
		FixedFeeAmount: 1000,
		Retry:          &RetryPolicy{MaxAttempts: 3},
		TxWaitTimeout:  time.Nanosecond,
		PollInterval:   time.Millisecond,
	})

	_, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"})
	var conf *ConfirmationError
	if !errors.As(err, &conf) {
		t.Fatalf("expected ConfirmationError, got %v", err)
	}
	if conf.TxHash != fmt.Sprintf("%064X", 1) {
		t.Errorf("expected the broadcast hash in the error, got %q", conf.TxHash)
	}
	if got := chain.snapshot(); got.broadcastCalls != 1 {
		t.Errorf("the pending transaction must not be rebroadcast, got %d broadcasts", got.broadcastCalls)
	}
}

func TestSendMsgsRecoversLateInclusion(t *testing.T) {
	// The wait deadline passes after one miss, but the transaction
	// commits before the final lookup.
	chain := &fakeChain{accountNumber: 7, chainSequence: 5, pendingGetTx: 1}
	client := NewBaseClient(chain, testSigner(t), BaseClientConfig{
		FixedGasLimit:  100000,
		FixedFeeAmount: 1000,
		Retry:          &RetryPolicy{MaxAttempts: 3},
		TxWaitTimeout:  time.Nanosecond,
		PollInterval:   time.Millisecond,
	})

	resp, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if resp.Height != 42 {
		t.Errorf("expected the committed response, got height %d", resp.Height)
	}
	if got := chain.snapshot(); got.broadcastCalls != 1 {
		t.Errorf("late inclusion must not trigger a rebroadcast, got %d broadcasts", got.broadcastCalls)
	}
}

func TestSendMsgsPermanentRejectionIsNotRetried(t *testing.T) {
	chain := &fakeChain{
		accountNumber: 7,
		chainSequence: 5,
		scripted: []*gvpb.TxResponse{
			{Code: 4, Codespace: "sdk", RawLog: "unauthorized"},
		},
	}
	client := newTestClient(t, chain)

	_, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"})
	var rej *RejectionError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if !rej.Permanent {
		t.Error("expected a permanent rejection")
	}
	if got := chain.snapshot(); got.broadcastCalls != 1 {
		t.Errorf("expected a single broadcast, got %d", got.broadcastCalls)
	}
}

func TestSendMsgDecodesResponse(t *testing.T) {
	chain := &fakeChain{accountNumber: 7, chainSequence: 5}
	client := newTestClient(t, chain)
	chain.mu.Lock()
	chain.txData = encodeTxData(t, "/gevulot.gevulot.MsgCreateTaskResponse", &gvpb.MsgCreateTaskResponse{Id: "task-123"})
	chain.mu.Unlock()

	var resp gvpb.MsgCreateTaskResponse
	err := client.SendMsg(context.Background(), &gvpb.MsgCreateTask{Creator: client.Address(), Image: "img"}, &resp)
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if resp.Id != "task-123" {
		t.Errorf("expected task-123, got %q", resp.Id)
	}
}

func TestSimulatedFee(t *testing.T) {
	chain := &fakeChain{accountNumber: 7, chainSequence: 5, gasUsed: 100000}
	client := NewBaseClient(chain, testSigner(t), BaseClientConfig{
		Retry:         &RetryPolicy{MaxAttempts: 1},
		TxWaitTimeout: time.Second,
		PollInterval:  time.Millisecond,
	})

	if _, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	got := chain.snapshot()
	// The simulation request carries gas limit zero; the real broadcast
	// scales gas used by the default 1.2 multiplier.
	last := got.seenGasLimits[len(got.seenGasLimits)-1]
	if last != 120000 {
		t.Errorf("expected gas limit 120000, got %d", last)
	}
}

func TestAccountInfoNotFound(t *testing.T) {
	inv := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		return status.Error(codes.NotFound, "account not found")
	})
	client := NewBaseClient(inv, testSigner(t), BaseClientConfig{})

	_, err := client.AccountInfo(context.Background(), client.Address())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSendMsgsTransportFailureExhausts(t *testing.T) {
	inv := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		return status.Error(codes.Unavailable, "connection refused")
	})
	client := NewBaseClient(inv, testSigner(t), BaseClientConfig{
		FixedGasLimit:  100000,
		FixedFeeAmount: 1000,
		Retry:          &RetryPolicy{MaxAttempts: 3},
	})

	_, err := client.SendMsgs(context.Background(), &gvpb.MsgDeleteTask{Creator: client.Address(), Id: "t1"})
	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", exhausted.Attempts)
	}
}

// invokerFunc adapts a function to the gvpb.Invoker interface.
type invokerFunc func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error

func (f invokerFunc) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	return f(ctx, method, args, reply, opts...)
}

func TestRetryPolicyDelay(t *testing.T) {
	p := RetryPolicy{BaseDelay: 500 * time.Millisecond, MaxDelay: 5 * time.Second}

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 0},
		{2, 500 * time.Millisecond},
		{3, time.Second},
		{4, 2 * time.Second},
		{5, 4 * time.Second},
		{6, 5 * time.Second},
		{10, 5 * time.Second},
	}
	for _, tc := range cases {
		if got := p.Delay(tc.attempt); got != tc.want {
			t.Errorf("attempt %d: expected %v, got %v", tc.attempt, tc.want, got)
		}
	}
}

func TestRetryPolicyJitter(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, JitterFraction: 0.2}

	p.Rand = func() float64 { return 0 }
	if got := p.Delay(2); got != 900*time.Millisecond {
		t.Errorf("expected 900ms at the low end, got %v", got)
	}
	p.Rand = func() float64 { return 1 }
	if got := p.Delay(2); got != 1100*time.Millisecond {
		t.Errorf("expected 1100ms at the high end, got %v", got)
	}
}
