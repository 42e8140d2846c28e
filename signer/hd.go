package signer

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// BIP-32 hardened derivation over the secp256k1 curve, enough to walk
// the cosmos path from a BIP-39 seed. Only private parent to private
// child derivation is needed.

const hardenedOffset uint32 = 1 << 31

// deriveKey walks the given path ("m/44'/118'/0'/0/0") from the seed
// and returns the 32-byte private key at the leaf.
func deriveKey(seed []byte, path string) ([]byte, error) {
	indexes, err := parsePath(path)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha512.New, []byte("Bitcoin seed"))
	mac.Write(seed)
	i := mac.Sum(nil)
	key, chain := i[:32], i[32:]

	for _, index := range indexes {
		key, chain, err = deriveChild(key, chain, index)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

func deriveChild(key, chain []byte, index uint32) (childKey, childChain []byte, err error) {
	data := make([]byte, 0, 37)
	if index >= hardenedOffset {
		data = append(data, 0)
		data = append(data, key...)
	} else {
		pub := secp256k1.PrivKeyFromBytes(key).PubKey().SerializeCompressed()
		data = append(data, pub...)
	}
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chain)
	mac.Write(data)
	i := mac.Sum(nil)

	var il, parent secp256k1.ModNScalar
	if overflow := il.SetByteSlice(i[:32]); overflow {
		return nil, nil, fmt.Errorf("derived key at index %d is out of range", index)
	}
	parent.SetByteSlice(key)
	il.Add(&parent)
	if il.IsZero() {
		return nil, nil, fmt.Errorf("derived key at index %d is zero", index)
	}
	out := il.Bytes()
	return out[:], i[32:], nil
}

func parsePath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("derivation path %q must start with m/", path)
	}
	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") {
			hardened = true
			part = part[:len(part)-1]
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil || v >= uint64(hardenedOffset) {
			return nil, fmt.Errorf("invalid path component %q", part)
		}
		index := uint32(v)
		if hardened {
			index += hardenedOffset
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}
