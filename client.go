package gevulot

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gevulot-network/gevulot-go/signer"
)

// Client bundles the per-kind sub-clients over one shared BaseClient.
// All sub-clients sign with the same key and share the sequence cache,
// so a single Client is safe for concurrent use.
type Client struct {
	Base *BaseClient

	Workers   *WorkerClient
	Tasks     *TaskClient
	Workflows *WorkflowClient
	Proofs    *ProofClient
	Pins      *PinClient
	Gov       *GovClient
	Sudo      *SudoClient
}

// NewClient wraps an existing BaseClient. Most callers go through
// ClientBuilder instead.
func NewClient(base *BaseClient) *Client {
	return &Client{
		Base:      base,
		Workers:   &WorkerClient{base: base},
		Tasks:     &TaskClient{base: base},
		Workflows: &WorkflowClient{base: base},
		Proofs:    &ProofClient{base: base},
		Pins:      &PinClient{base: base},
		Gov:       &GovClient{base: base},
		Sudo:      &SudoClient{base: base},
	}
}

// ClientBuilder configures and dials a Client.
//
//	client, err := gevulot.NewClientBuilder().
//		Endpoint("grpc.gevulot.com:9090").
//		Mnemonic(mnemonic).
//		Build(ctx)
type ClientBuilder struct {
	endpoint   string
	mnemonic   string
	passphrase string
	privKeyHex string
	creds      credentials.TransportCredentials
	cfg        BaseClientConfig
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		endpoint: "localhost:9090",
		creds:    insecure.NewCredentials(),
	}
}

// Endpoint sets the gRPC host:port of a ledger node.
func (b *ClientBuilder) Endpoint(endpoint string) *ClientBuilder {
	b.endpoint = endpoint
	return b
}

// Mnemonic selects the signing key via a BIP-39 phrase.
func (b *ClientBuilder) Mnemonic(mnemonic string) *ClientBuilder {
	b.mnemonic = mnemonic
	return b
}

// Passphrase sets the optional BIP-39 passphrase used with Mnemonic.
func (b *ClientBuilder) Passphrase(passphrase string) *ClientBuilder {
	b.passphrase = passphrase
	return b
}

// PrivateKey selects the signing key from a hex-encoded secp256k1 key,
// bypassing mnemonic derivation.
func (b *ClientBuilder) PrivateKey(hexKey string) *ClientBuilder {
	b.privKeyHex = hexKey
	return b
}

// TransportCredentials overrides the default plaintext transport.
func (b *ClientBuilder) TransportCredentials(creds credentials.TransportCredentials) *ClientBuilder {
	b.creds = creds
	return b
}

func (b *ClientBuilder) ChainID(chainID string) *ClientBuilder {
	b.cfg.ChainID = chainID
	return b
}

func (b *ClientBuilder) Denom(denom string) *ClientBuilder {
	b.cfg.Denom = denom
	return b
}

func (b *ClientBuilder) GasPrice(price uint64) *ClientBuilder {
	b.cfg.GasPrice = price
	return b
}

func (b *ClientBuilder) GasMultiplier(multiplier float64) *ClientBuilder {
	b.cfg.GasMultiplier = multiplier
	return b
}

// FixedFee disables gas simulation and uses a static limit and fee.
func (b *ClientBuilder) FixedFee(gasLimit, feeAmount uint64) *ClientBuilder {
	b.cfg.FixedGasLimit = gasLimit
	b.cfg.FixedFeeAmount = feeAmount
	return b
}

func (b *ClientBuilder) Retry(policy RetryPolicy) *ClientBuilder {
	b.cfg.Retry = &policy
	return b
}

func (b *ClientBuilder) Logger(logger *logrus.Logger) *ClientBuilder {
	b.cfg.Logger = logger
	return b
}

// Build derives the signing key, dials the endpoint and assembles the
// client. The connection is lazy; a bad endpoint surfaces on first use.
func (b *ClientBuilder) Build(ctx context.Context) (*Client, error) {
	var (
		s   *signer.Signer
		err error
	)
	switch {
	case b.privKeyHex != "":
		s, err = signer.NewSignerFromKey(b.privKeyHex)
	case b.mnemonic != "":
		s, err = signer.NewSignerFromMnemonic(b.mnemonic, b.passphrase)
	default:
		s, err = signer.NewSigner()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set up signer: %w", err)
	}

	conn, err := grpc.NewClient(b.endpoint, grpc.WithTransportCredentials(b.creds))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", b.endpoint, err)
	}

	return NewClient(NewBaseClient(conn, s, b.cfg)), nil
}
