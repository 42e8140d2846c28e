// Package signer derives Gevulot account keys from BIP-39 mnemonics
// and produces the deterministic secp256k1 signatures the ledger
// expects. Private key material never leaves the Signer.
package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	bip39 "github.com/cosmos/go-bip39"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/ripemd160"
)

// ErrInvalidMnemonic is returned when a phrase fails BIP-39 checksum
// validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

const (
	// DefaultAddressPrefix is the bech32 human-readable part of
	// Gevulot account addresses.
	DefaultAddressPrefix = "gvlt"

	// DefaultDerivationPath is the cosmos coin-type path.
	DefaultDerivationPath = "m/44'/118'/0'/0/0"
)

// Option adjusts signer construction.
type Option func(*options)

type options struct {
	prefix string
	path   string
}

// WithAddressPrefix overrides the bech32 prefix, for chains that fork
// the address format.
func WithAddressPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithDerivationPath overrides the BIP-32 derivation path.
func WithDerivationPath(path string) Option {
	return func(o *options) { o.path = path }
}

// Signer holds one derived account key.
type Signer struct {
	priv     *secp256k1.PrivateKey
	pubKey   []byte
	address  string
	mnemonic string
}

// NewSigner generates a fresh 24-word mnemonic and derives a signer
// from it. The phrase is retained and readable through Mnemonic so the
// caller can persist it.
func NewSigner(opts ...Option) (*Signer, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return NewSignerFromMnemonic(mnemonic, "", opts...)
}

// NewSignerFromMnemonic derives a signer from an existing phrase. The
// passphrase is the optional BIP-39 seed extension, usually empty.
func NewSignerFromMnemonic(mnemonic, passphrase string, opts ...Option) (*Signer, error) {
	o := buildOptions(opts)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	keyBytes, err := deriveKey(seed, o.path)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	s, err := newSignerFromKeyBytes(keyBytes, o.prefix)
	if err != nil {
		return nil, err
	}
	s.mnemonic = mnemonic
	return s, nil
}

// NewSignerFromKey imports a raw hex-encoded secp256k1 private key,
// bypassing mnemonic derivation.
func NewSignerFromKey(hexKey string, opts ...Option) (*Signer, error) {
	o := buildOptions(opts)
	keyBytes, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(keyBytes))
	}
	return newSignerFromKeyBytes(keyBytes, o.prefix)
}

func buildOptions(opts []Option) options {
	o := options{prefix: DefaultAddressPrefix, path: DefaultDerivationPath}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newSignerFromKeyBytes(keyBytes []byte, prefix string) (*Signer, error) {
	priv := secp256k1.PrivKeyFromBytes(keyBytes)
	pub := priv.PubKey().SerializeCompressed()
	addr, err := encodeAddress(prefix, pub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode address: %w", err)
	}
	return &Signer{priv: priv, pubKey: pub, address: addr}, nil
}

// Address returns the bech32 account address. It is a pure function of
// the key and prefix.
func (s *Signer) Address() string {
	return s.address
}

// PublicKey returns a copy of the 33-byte compressed public key.
func (s *Signer) PublicKey() []byte {
	out := make([]byte, len(s.pubKey))
	copy(out, s.pubKey)
	return out
}

// Mnemonic returns the phrase the signer was derived from, or "" when
// it was imported from a raw key.
func (s *Signer) Mnemonic() string {
	return s.mnemonic
}

// Sign produces a 64-byte R||S signature over sha256(msg) using
// RFC-6979 deterministic nonces with low-S normalization. Identical
// input always yields an identical signature.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	// SignCompact prefixes a recovery id byte; the ledger wants bare
	// R||S.
	compact := ecdsa.SignCompact(s.priv, digest[:], false)
	return compact[1:], nil
}

// encodeAddress applies the cosmos address scheme:
// bech32(prefix, ripemd160(sha256(compressed pubkey))).
func encodeAddress(prefix string, compressedPub []byte) (string, error) {
	sha := sha256.Sum256(compressedPub)
	h := ripemd160.New()
	h.Write(sha[:])
	raw := h.Sum(nil)
	converted, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, converted)
}
