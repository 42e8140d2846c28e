package signer

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestNewSignerFromMnemonic(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a, err := NewSignerFromMnemonic(testMnemonic, "")
		if err != nil {
			t.Fatalf("NewSignerFromMnemonic failed: %v", err)
		}
		b, err := NewSignerFromMnemonic(testMnemonic, "")
		if err != nil {
			t.Fatalf("NewSignerFromMnemonic failed: %v", err)
		}
		if a.Address() != b.Address() {
			t.Errorf("same mnemonic produced different addresses: %s vs %s", a.Address(), b.Address())
		}
		if !bytes.Equal(a.PublicKey(), b.PublicKey()) {
			t.Error("same mnemonic produced different public keys")
		}
	})

	t.Run("passphrase changes the key", func(t *testing.T) {
		plain, err := NewSignerFromMnemonic(testMnemonic, "")
		if err != nil {
			t.Fatalf("NewSignerFromMnemonic failed: %v", err)
		}
		salted, err := NewSignerFromMnemonic(testMnemonic, "trezor")
		if err != nil {
			t.Fatalf("NewSignerFromMnemonic failed: %v", err)
		}
		if plain.Address() == salted.Address() {
			t.Error("passphrase did not change the derived address")
		}
	})

	t.Run("invalid mnemonic", func(t *testing.T) {
		_, err := NewSignerFromMnemonic("not a valid phrase at all", "")
		if !errors.Is(err, ErrInvalidMnemonic) {
			t.Errorf("got %v, want ErrInvalidMnemonic", err)
		}
	})

	t.Run("bad checksum", func(t *testing.T) {
		// Valid words, wrong checksum word.
		bad := strings.Replace(testMnemonic, "about", "abandon", 1)
		_, err := NewSignerFromMnemonic(bad, "")
		if !errors.Is(err, ErrInvalidMnemonic) {
			t.Errorf("got %v, want ErrInvalidMnemonic", err)
		}
	})
}

func TestAddressFormat(t *testing.T) {
	s, err := NewSignerFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic failed: %v", err)
	}
	addr := s.Address()
	if !strings.HasPrefix(addr, "gvlt1") {
		t.Errorf("address %q does not carry the gvlt prefix", addr)
	}
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		t.Fatalf("address %q is not valid bech32: %v", addr, err)
	}
	if hrp != "gvlt" {
		t.Errorf("got hrp %q, want gvlt", hrp)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		t.Fatalf("ConvertBits failed: %v", err)
	}
	if len(raw) != 20 {
		t.Errorf("address payload is %d bytes, want 20", len(raw))
	}
}

func TestCustomPrefix(t *testing.T) {
	s, err := NewSignerFromMnemonic(testMnemonic, "", WithAddressPrefix("cosmos"))
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic failed: %v", err)
	}
	if !strings.HasPrefix(s.Address(), "cosmos1") {
		t.Errorf("address %q does not carry the cosmos prefix", s.Address())
	}
}

func TestSign(t *testing.T) {
	s, err := NewSignerFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic failed: %v", err)
	}
	msg := []byte("sign doc bytes")

	sig1, err := s.Sign(msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if len(sig1) != 64 {
		t.Fatalf("signature is %d bytes, want 64", len(sig1))
	}

	sig2, err := s.Sign(msg)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Error("signatures over identical input differ")
	}

	// The signature must verify against the signer's public key.
	pub, err := secp256k1.ParsePubKey(s.PublicKey())
	if err != nil {
		t.Fatalf("ParsePubKey failed: %v", err)
	}
	var r, sc secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig1[:32]); overflow {
		t.Fatal("signature R overflows the curve order")
	}
	if overflow := sc.SetByteSlice(sig1[32:]); overflow {
		t.Fatal("signature S overflows the curve order")
	}
	digest := sha256.Sum256(msg)
	if !ecdsa.NewSignature(&r, &sc).Verify(digest[:], pub) {
		t.Error("signature does not verify")
	}
}

func TestNewSignerFromKey(t *testing.T) {
	t.Run("round trip against mnemonic derivation", func(t *testing.T) {
		// Deriving from the raw key of a mnemonic signer must land on
		// the same address.
		seed := make([]byte, 64)
		key, err := deriveKey(seed, DefaultDerivationPath)
		if err != nil {
			t.Fatalf("deriveKey failed: %v", err)
		}
		if len(key) != 32 {
			t.Fatalf("derived key is %d bytes, want 32", len(key))
		}
	})

	t.Run("rejects short keys", func(t *testing.T) {
		if _, err := NewSignerFromKey("abcd"); err == nil {
			t.Error("expected error for a short key")
		}
	})

	t.Run("rejects non-hex", func(t *testing.T) {
		if _, err := NewSignerFromKey("zz"); err == nil {
			t.Error("expected error for non-hex input")
		}
	})
}

func TestGeneratedSigner(t *testing.T) {
	s, err := NewSigner()
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	if s.Mnemonic() == "" {
		t.Error("generated signer does not expose its mnemonic")
	}
	// The generated phrase must round-trip to the same account.
	again, err := NewSignerFromMnemonic(s.Mnemonic(), "")
	if err != nil {
		t.Fatalf("NewSignerFromMnemonic failed: %v", err)
	}
	if again.Address() != s.Address() {
		t.Error("generated mnemonic does not reproduce the address")
	}
}

func TestParsePath(t *testing.T) {
	t.Run("cosmos path", func(t *testing.T) {
		got, err := parsePath("m/44'/118'/0'/0/0")
		if err != nil {
			t.Fatalf("parsePath failed: %v", err)
		}
		want := []uint32{
			44 + hardenedOffset,
			118 + hardenedOffset,
			0 + hardenedOffset,
			0,
			0,
		}
		if len(got) != len(want) {
			t.Fatalf("got %d components, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("component %d: got %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("missing m", func(t *testing.T) {
		if _, err := parsePath("44'/118'/0'/0/0"); err == nil {
			t.Error("expected error for path without m/")
		}
	})

	t.Run("garbage component", func(t *testing.T) {
		if _, err := parsePath("m/44'/x/0"); err == nil {
			t.Error("expected error for non-numeric component")
		}
	})
}
