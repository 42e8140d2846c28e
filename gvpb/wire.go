// Package gvpb contains the protobuf wire messages exchanged with a
// Gevulot ledger node, together with a hand-written codec built on
// google.golang.org/protobuf/encoding/protowire. Messages are plain
// structs; Marshal and Unmarshal are mutual inverses, unknown fields
// are skipped on decode, and wire-type mismatches or truncation fail
// with an error wrapping ErrMalformed.
package gvpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed is wrapped by every decode error in this package.
var ErrMalformed = errors.New("malformed message")

// Message is the contract every wire struct in this package satisfies.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
}

// TypedMessage is a Message that knows its protobuf type URL, so it can
// be packed into an Any. All transaction messages implement it.
type TypedMessage interface {
	Message
	TypeURL() string
}

func malformed(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, msg, err)
}

var (
	errTruncated = errors.New("truncated")
	errWireType  = errors.New("unexpected wire type")
)

// --- encode helpers -------------------------------------------------
//
// proto3 semantics: scalar zero values are omitted, repeated and
// embedded fields are emitted per element.

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendStrings(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendBytesSlice(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	return b
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return appendUint64(b, num, uint64(v))
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	return appendInt64(b, num, int64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendEmbedded(b []byte, num protowire.Number, raw []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, raw)
}

// --- decode helpers -------------------------------------------------
//
// Each helper validates the wire type against the declared field type
// before consuming, so a mismatched payload fails instead of silently
// misreading bytes.

func consumeString(b []byte, typ protowire.Type) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, errWireType
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, errTruncated
	}
	return v, n, nil
}

func consumeBytes(b []byte, typ protowire.Type) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, errTruncated
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

func consumeUint64(b []byte, typ protowire.Type) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, errWireType
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, errTruncated
	}
	return v, n, nil
}

func consumeUint32(b []byte, typ protowire.Type) (uint32, int, error) {
	v, n, err := consumeUint64(b, typ)
	return uint32(v), n, err
}

func consumeInt64(b []byte, typ protowire.Type) (int64, int, error) {
	v, n, err := consumeUint64(b, typ)
	return int64(v), n, err
}

func consumeInt32(b []byte, typ protowire.Type) (int32, int, error) {
	v, n, err := consumeUint64(b, typ)
	return int32(v), n, err
}

func consumeBool(b []byte, typ protowire.Type) (bool, int, error) {
	v, n, err := consumeUint64(b, typ)
	return v != 0, n, err
}

func consumeEmbedded(b []byte, typ protowire.Type, m Message) (int, error) {
	if typ != protowire.BytesType {
		return 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, errTruncated
	}
	if err := m.Unmarshal(v); err != nil {
		return 0, err
	}
	return n, nil
}

// skipField discards a well-formed unknown field, erroring only when
// the payload itself is truncated or invalid.
func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, errTruncated
	}
	return n, nil
}

// emptyMessage backs the response types that carry no fields. Unknown
// fields, should the ledger ever add some, are skipped like anywhere
// else.
type emptyMessage struct{}

func (emptyMessage) Marshal() ([]byte, error) { return nil, nil }

func (emptyMessage) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("empty message", errTruncated)
		}
		data = data[n:]
		n, err := skipField(data, num, typ)
		if err != nil {
			return malformed("empty message", err)
		}
		data = data[n:]
	}
	return nil
}
