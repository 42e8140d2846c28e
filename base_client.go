// Package gevulot is a client library for the Gevulot compute and
// storage marketplace ledger. It signs and broadcasts transactions,
// walks paginated queries lazily, and maps wire entities to the
// user-facing models in the types package.
package gevulot

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/signer"
)

// Defaults applied by NewBaseClient when the config leaves fields
// zero.
const (
	DefaultChainID       = "gevulot"
	DefaultDenom         = "ucredit"
	DefaultGasMultiplier = 1.2
	DefaultGasPrice      = 1000
	DefaultTxWaitTimeout = 30 * time.Second
	DefaultPollInterval  = 500 * time.Millisecond
)

// BaseClientConfig carries the tunables of a BaseClient. The zero
// value is usable; missing fields fall back to the defaults above.
type BaseClientConfig struct {
	ChainID string
	Denom   string

	// GasMultiplier scales the simulated gas estimate.
	GasMultiplier float64
	// GasPrice is charged per gas unit when building the fee.
	GasPrice uint64

	// FixedGasLimit, when non-zero, skips simulation and uses this
	// limit with FixedFeeAmount as a static fee policy.
	FixedGasLimit  uint64
	FixedFeeAmount uint64

	Retry         *RetryPolicy
	TxWaitTimeout time.Duration
	PollInterval  time.Duration

	// Logger defaults to a silent logger; the CLI injects a real one.
	Logger *logrus.Logger
}

// BaseClient owns the transaction pipeline and the raw query surface.
// The sequence cache is its only shared mutable state, guarded by mu;
// the reserve step runs in a scoped critical section released before
// any network wait.
type BaseClient struct {
	inv    gvpb.Invoker
	signer *signer.Signer
	logger *logrus.Logger

	chainID        string
	denom          string
	gasMultiplier  float64
	gasPrice       uint64
	fixedGasLimit  uint64
	fixedFeeAmount uint64
	retry          RetryPolicy
	txWaitTimeout  time.Duration
	pollInterval   time.Duration

	gevulot    *gvpb.GevulotQueryClient
	auth       *gvpb.AuthQueryClient
	bank       *gvpb.BankQueryClient
	gov        *gvpb.GovQueryClient
	tx         *gvpb.TxServiceClient
	tendermint *gvpb.TendermintServiceClient

	mu            sync.Mutex
	haveSession   bool
	accountNumber uint64
	sequence      uint64
}

// NewBaseClient builds a BaseClient over an established transport.
// Tests pass a fake Invoker; production passes a *grpc.ClientConn.
func NewBaseClient(inv gvpb.Invoker, s *signer.Signer, cfg BaseClientConfig) *BaseClient {
	if cfg.ChainID == "" {
		cfg.ChainID = DefaultChainID
	}
	if cfg.Denom == "" {
		cfg.Denom = DefaultDenom
	}
	if cfg.GasMultiplier <= 0 {
		cfg.GasMultiplier = DefaultGasMultiplier
	}
	if cfg.GasPrice == 0 {
		cfg.GasPrice = DefaultGasPrice
	}
	if cfg.TxWaitTimeout <= 0 {
		cfg.TxWaitTimeout = DefaultTxWaitTimeout
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	retry := DefaultRetryPolicy()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &BaseClient{
		inv:            inv,
		signer:         s,
		logger:         logger,
		chainID:        cfg.ChainID,
		denom:          cfg.Denom,
		gasMultiplier:  cfg.GasMultiplier,
		gasPrice:       cfg.GasPrice,
		fixedGasLimit:  cfg.FixedGasLimit,
		fixedFeeAmount: cfg.FixedFeeAmount,
		retry:          retry,
		txWaitTimeout:  cfg.TxWaitTimeout,
		pollInterval:   cfg.PollInterval,
		gevulot:        gvpb.NewGevulotQueryClient(inv),
		auth:           gvpb.NewAuthQueryClient(inv),
		bank:           gvpb.NewBankQueryClient(inv),
		gov:            gvpb.NewGovQueryClient(inv),
		tx:             gvpb.NewTxServiceClient(inv),
		tendermint:     gvpb.NewTendermintServiceClient(inv),
	}
}

func (c *BaseClient) log(category string) *logrus.Entry {
	return c.logger.WithField("category", category)
}

// Address returns the signer's bech32 account address.
func (c *BaseClient) Address() string {
	if c.signer == nil {
		return ""
	}
	return c.signer.Address()
}

// Signer exposes the account signer, or nil for query-only clients.
func (c *BaseClient) Signer() *signer.Signer { return c.signer }

// --- session cache --------------------------------------------------

// reserveSequence hands out the next (account number, sequence) pair.
// When the cache is cold it syncs from the ledger first; the network
// call runs outside the lock.
func (c *BaseClient) reserveSequence(ctx context.Context) (accNum, seq uint64, err error) {
	c.mu.Lock()
	if c.haveSession {
		accNum, seq = c.accountNumber, c.sequence
		c.sequence++
		c.mu.Unlock()
		return accNum, seq, nil
	}
	c.mu.Unlock()

	acct, err := c.AccountInfo(ctx, c.signer.Address())
	if err != nil {
		return 0, 0, err
	}

	c.mu.Lock()
	if !c.haveSession {
		c.accountNumber = acct.AccountNumber
		c.sequence = acct.Sequence
		c.haveSession = true
	}
	accNum, seq = c.accountNumber, c.sequence
	c.sequence++
	c.mu.Unlock()
	return accNum, seq, nil
}

// invalidateSession drops the cached sequence so the next submission
// re-syncs from the ledger.
func (c *BaseClient) invalidateSession() {
	c.mu.Lock()
	c.haveSession = false
	c.mu.Unlock()
}

// --- account / bank / block queries ---------------------------------

// AccountInfo fetches the account number and sequence for an address.
func (c *BaseClient) AccountInfo(ctx context.Context, address string) (*gvpb.BaseAccount, error) {
	resp, err := c.auth.Account(ctx, &gvpb.QueryAccountRequest{Address: address})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("account %s: %w", address, ErrNotFound)
		}
		return nil, &RPCError{Method: gvpb.MethodAccount, Err: err}
	}
	if resp.Account == nil {
		return nil, fmt.Errorf("account %s: %w", address, ErrNotFound)
	}
	acct := new(gvpb.BaseAccount)
	if err := acct.Unmarshal(resp.Account.Value); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return acct, nil
}

// Balance fetches one coin balance. An empty denom means the client's
// configured fee denom.
func (c *BaseClient) Balance(ctx context.Context, address, denom string) (*gvpb.Coin, error) {
	if denom == "" {
		denom = c.denom
	}
	resp, err := c.bank.Balance(ctx, &gvpb.QueryBalanceRequest{Address: address, Denom: denom})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodBalance, Err: err}
	}
	if resp.Balance == nil {
		return &gvpb.Coin{Denom: denom, Amount: "0"}, nil
	}
	return resp.Balance, nil
}

// Transfer moves tokens from the signer's account.
func (c *BaseClient) Transfer(ctx context.Context, toAddress, amount string) error {
	msg := &gvpb.MsgSend{
		FromAddress: c.Address(),
		ToAddress:   toAddress,
		Amount:      []*gvpb.Coin{{Denom: c.denom, Amount: amount}},
	}
	_, err := c.SendMsgs(ctx, msg)
	return err
}

// LatestBlock fetches the current chain head.
func (c *BaseClient) LatestBlock(ctx context.Context) (*gvpb.Block, error) {
	resp, err := c.tendermint.GetLatestBlock(ctx, &gvpb.GetLatestBlockRequest{})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodGetLatestBlock, Err: err}
	}
	return resp.Block, nil
}

// BlockByHeight fetches a specific block.
func (c *BaseClient) BlockByHeight(ctx context.Context, height int64) (*gvpb.Block, error) {
	resp, err := c.tendermint.GetBlockByHeight(ctx, &gvpb.GetBlockByHeightRequest{Height: height})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodGetBlockByHeight, Err: err}
	}
	return resp.Block, nil
}

// WaitForBlockHeight polls the chain head until it reaches the target
// height or the context ends.
func (c *BaseClient) WaitForBlockHeight(ctx context.Context, height int64) error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		block, err := c.LatestBlock(ctx)
		if err == nil && block != nil && block.Header != nil && block.Header.Height >= height {
			return nil
		}
		select {
		case <-ctx.Done():
			return &RPCError{Method: gvpb.MethodGetLatestBlock, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

// Params fetches the gevulot module parameters.
func (c *BaseClient) Params(ctx context.Context) (*gvpb.Params, error) {
	resp, err := c.gevulot.Params(ctx, &gvpb.QueryParamsRequest{})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodParams, Err: err}
	}
	return resp.Params, nil
}

// --- transaction pipeline -------------------------------------------

// buildBody packs the messages, in order, into serialized TxBody
// bytes.
func buildBody(msgs []gvpb.TypedMessage) ([]byte, error) {
	body := new(gvpb.TxBody)
	for _, msg := range msgs {
		packed, err := gvpb.PackAny(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to pack %s: %w", msg.TypeURL(), err)
		}
		body.Messages = append(body.Messages, packed)
	}
	return body.Marshal()
}

// signTx assembles AuthInfo for the given sequence and fee, signs the
// SignDoc, and returns broadcastable TxRaw bytes.
func (c *BaseClient) signTx(bodyBytes []byte, accNum, seq uint64, fee *gvpb.Fee) ([]byte, error) {
	pubKey, err := gvpb.PackAny(&gvpb.PubKeySecp256k1{Key: c.signer.PublicKey()})
	if err != nil {
		return nil, fmt.Errorf("failed to pack public key: %w", err)
	}
	authInfo := &gvpb.AuthInfo{
		SignerInfos: []*gvpb.SignerInfo{{
			PublicKey: pubKey,
			ModeInfo:  &gvpb.ModeInfo{Single: &gvpb.ModeInfoSingle{Mode: gvpb.SignModeDirect}},
			Sequence:  seq,
		}},
		Fee: fee,
	}
	authInfoBytes, err := authInfo.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auth info: %w", err)
	}
	signDoc := &gvpb.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		ChainId:       c.chainID,
		AccountNumber: accNum,
	}
	signDocBytes, err := signDoc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sign doc: %w", err)
	}
	sig, err := c.signer.Sign(signDocBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	raw := &gvpb.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authInfoBytes,
		Signatures:    [][]byte{sig},
	}
	return raw.Marshal()
}

// computeFee resolves the fee for this attempt: a static fee when
// configured, otherwise gas simulation scaled by the multiplier.
func (c *BaseClient) computeFee(ctx context.Context, bodyBytes []byte, accNum, seq uint64) (*gvpb.Fee, error) {
	if c.fixedGasLimit > 0 {
		return &gvpb.Fee{
			Amount:   []*gvpb.Coin{{Denom: c.denom, Amount: fmt.Sprintf("%d", c.fixedFeeAmount)}},
			GasLimit: c.fixedGasLimit,
		}, nil
	}
	// The simulation envelope is signed like the real one so the node
	// accounts for signature verification cost.
	simBytes, err := c.signTx(bodyBytes, accNum, seq, &gvpb.Fee{GasLimit: 0})
	if err != nil {
		return nil, err
	}
	resp, err := c.tx.Simulate(ctx, &gvpb.SimulateRequest{TxBytes: simBytes})
	if err != nil {
		return nil, &RPCError{Method: gvpb.MethodSimulate, Err: err}
	}
	var gasUsed uint64
	if resp.GasInfo != nil {
		gasUsed = resp.GasInfo.GasUsed
	}
	gasLimit := uint64(float64(gasUsed) * c.gasMultiplier)
	if gasLimit == 0 {
		gasLimit = 200000
	}
	return &gvpb.Fee{
		Amount:   []*gvpb.Coin{{Denom: c.denom, Amount: fmt.Sprintf("%d", gasLimit*c.gasPrice)}},
		GasLimit: gasLimit,
	}, nil
}

// SendMsgs signs the messages into one transaction, broadcasts it, and
// waits for block inclusion. Transient rejections are retried with
// fresh sequence and signature up to the retry budget; permanent
// rejections and exhaustion return immediately distinguishable errors.
func (c *BaseClient) SendMsgs(ctx context.Context, msgs ...gvpb.TypedMessage) (*gvpb.TxResponse, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("client has no signer configured")
	}
	if len(msgs) == 0 {
		return nil, fmt.Errorf("no messages to send")
	}
	bodyBytes, err := buildBody(msgs)
	if err != nil {
		return nil, err
	}

	submission := uuid.NewString()
	start := time.Now()
	log := c.log("broadcast").WithField("submission", submission)

	var last error
	attempts := 0
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			if c.retry.MaxElapsed > 0 && time.Since(start) > c.retry.MaxElapsed {
				break
			}
			if delay := c.retry.Delay(attempt); delay > 0 {
				select {
				case <-ctx.Done():
					c.invalidateSession()
					return nil, &RPCError{Method: gvpb.MethodBroadcastTx, Err: ctx.Err()}
				case <-time.After(delay):
				}
			}
		}
		attempts = attempt

		resp, retryable, err := c.attemptOnce(ctx, log, bodyBytes, attempt)
		if err == nil {
			return resp, nil
		}
		if !retryable {
			return nil, err
		}
		last = err
	}
	c.invalidateSession()
	log.WithField("attempts", attempts).Warn("retry budget exhausted")
	return nil, &ExhaustedError{Submission: submission, Attempts: attempts, Elapsed: time.Since(start), Last: last}
}

// attemptOnce runs one reserve/sign/broadcast/wait cycle. The second
// return value reports whether the failure is worth another attempt.
func (c *BaseClient) attemptOnce(ctx context.Context, log *logrus.Entry, bodyBytes []byte, attempt int) (*gvpb.TxResponse, bool, error) {
	accNum, seq, err := c.reserveSequence(ctx)
	if err != nil {
		// The cache never went warm; nothing to invalidate.
		return nil, isTransientRPC(err), err
	}

	fee, err := c.computeFee(ctx, bodyBytes, accNum, seq)
	if err != nil {
		c.invalidateSession()
		return nil, isTransientRPC(err), err
	}

	txBytes, err := c.signTx(bodyBytes, accNum, seq, fee)
	if err != nil {
		c.invalidateSession()
		return nil, false, err
	}

	log.WithFields(logrus.Fields{"attempt": attempt, "sequence": seq}).Debug("broadcasting transaction")

	bresp, err := c.tx.BroadcastTx(ctx, &gvpb.BroadcastTxRequest{TxBytes: txBytes, Mode: gvpb.BroadcastModeSync})
	if err != nil {
		c.invalidateSession()
		return nil, isTransientRPC(err), &RPCError{Method: gvpb.MethodBroadcastTx, Err: err}
	}
	resp := bresp.TxResponse
	if resp == nil {
		c.invalidateSession()
		return nil, false, fmt.Errorf("broadcast returned no tx response")
	}

	if resp.Code != 0 {
		rej := &RejectionError{
			TxHash:    resp.TxHash,
			Code:      resp.Code,
			Codespace: resp.Codespace,
			RawLog:    resp.RawLog,
			Permanent: !isTransientRejection(resp),
		}
		if rej.Permanent {
			log.WithFields(logrus.Fields{"code": resp.Code, "codespace": resp.Codespace}).Error("transaction rejected")
			return nil, false, rej
		}
		// Stale sequence or mempool pressure: drop the cache so the
		// next attempt re-syncs and re-signs with a fresh sequence.
		c.invalidateSession()
		log.WithFields(logrus.Fields{"code": resp.Code, "raw_log": resp.RawLog}).Debug("transient rejection")
		return nil, true, rej
	}

	final, err := c.WaitForTx(ctx, resp.TxHash, c.txWaitTimeout)
	if err != nil {
		// The accepted envelope is in the mempool and may still commit;
		// rebroadcasting under a refreshed sequence would execute the
		// same intent twice. One last lookup distinguishes late
		// inclusion from a genuinely unconfirmed transaction.
		c.invalidateSession()
		got, lookupErr := c.tx.GetTx(ctx, &gvpb.GetTxRequest{Hash: resp.TxHash})
		if lookupErr != nil || got.TxResponse == nil {
			log.WithField("tx_hash", resp.TxHash).Warn("confirmation deadline passed with the transaction still pending")
			return nil, false, &ConfirmationError{TxHash: resp.TxHash, Err: err}
		}
		final = got.TxResponse
	}
	if final.Code != 0 {
		rej := &RejectionError{
			TxHash:    final.TxHash,
			Code:      final.Code,
			Codespace: final.Codespace,
			RawLog:    final.RawLog,
			Permanent: !isTransientRejection(final),
		}
		if !rej.Permanent {
			c.invalidateSession()
		}
		return nil, !rej.Permanent, rej
	}
	log.WithFields(logrus.Fields{"tx_hash": final.TxHash, "height": final.Height}).Debug("transaction committed")
	return final, false, nil
}

// SendMsg sends one message and, when out is non-nil, decodes the
// message response from the committed transaction into it.
func (c *BaseClient) SendMsg(ctx context.Context, msg gvpb.TypedMessage, out gvpb.Message) error {
	resp, err := c.SendMsgs(ctx, msg)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return UnpackTxResponse(resp, out)
}

// WaitForTx polls GetTx until the transaction appears in a block or
// the timeout elapses.
func (c *BaseClient) WaitForTx(ctx context.Context, hash string, timeout time.Duration) (*gvpb.TxResponse, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		resp, err := c.tx.GetTx(ctx, &gvpb.GetTxRequest{Hash: hash})
		if err == nil && resp.TxResponse != nil {
			return resp.TxResponse, nil
		}
		if err != nil && status.Code(err) != codes.NotFound && !isTransientRPC(err) {
			return nil, &RPCError{Method: gvpb.MethodGetTx, Err: err}
		}
		select {
		case <-ctx.Done():
			return nil, &RPCError{Method: gvpb.MethodGetTx, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

// UnpackTxResponse decodes the first message response embedded in a
// committed transaction's data field.
func UnpackTxResponse(resp *gvpb.TxResponse, out gvpb.Message) error {
	if resp == nil || resp.Data == "" {
		return fmt.Errorf("transaction carries no response data")
	}
	raw, err := hex.DecodeString(resp.Data)
	if err != nil {
		return fmt.Errorf("failed to decode tx data: %w", err)
	}
	var md gvpb.TxMsgData
	if err := md.Unmarshal(raw); err != nil {
		return fmt.Errorf("failed to decode tx msg data: %w", err)
	}
	if len(md.MsgResponses) == 0 {
		return fmt.Errorf("transaction carries no message responses")
	}
	return out.Unmarshal(md.MsgResponses[0].Value)
}
