// Package types holds the user-facing Gevulot entity models: the
// kind/version wrappers, unit-aware quantities, and the open state
// enums. Conversions to and from the wire structs live in convert.go.
package types

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quantity is a resource amount that accepts either a raw number or a
// unit-suffixed string ("1234kb", "2cores", "1hr") in JSON and YAML
// manifests, normalized to a single integer:
//
//	bytes for storage and memory, millicores for cpu/gpu, seconds for
//	time.
type Quantity uint64

// Unit multipliers, keyed by lower-cased suffix.
var quantityUnits = map[string]uint64{
	// storage, decimal and binary
	"b":   1,
	"kb":  1_000,
	"mb":  1_000_000,
	"gb":  1_000_000_000,
	"tb":  1_000_000_000_000,
	"kib": 1 << 10,
	"mib": 1 << 20,
	"gib": 1 << 30,
	"tib": 1 << 40,

	// compute, normalized to millicores
	"mcpu":  1,
	"cpu":   1000,
	"cpus":  1000,
	"core":  1000,
	"cores": 1000,

	// time, normalized to seconds
	"s":    1,
	"sec":  1,
	"secs": 1,
	"min":  60,
	"mins": 60,
	"h":    3600,
	"hr":   3600,
	"hrs":  3600,
	"d":    86400,
	"day":  86400,
	"days": 86400,
}

// ParseQuantity converts a bare number or unit-suffixed string into a
// Quantity.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty quantity")
	}
	split := len(s)
	for split > 0 {
		c := s[split-1]
		if c >= '0' && c <= '9' {
			break
		}
		split--
	}
	numPart := strings.TrimSpace(s[:split])
	unitPart := strings.ToLower(strings.TrimSpace(s[split:]))

	value, err := strconv.ParseUint(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", s)
	}
	if unitPart == "" {
		return Quantity(value), nil
	}
	mult, ok := quantityUnits[unitPart]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q in quantity %q", unitPart, s)
	}
	hi, lo := bits.Mul64(value, mult)
	if hi != 0 {
		return 0, fmt.Errorf("quantity %q overflows uint64", s)
	}
	return Quantity(lo), nil
}

// Uint64 returns the normalized amount.
func (q Quantity) Uint64() uint64 { return uint64(q) }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(q))
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return q.set(raw)
}

func (q Quantity) MarshalYAML() (any, error) {
	return uint64(q), nil
}

func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return q.set(raw)
}

func (q *Quantity) set(raw any) error {
	switch v := raw.(type) {
	case string:
		parsed, err := ParseQuantity(v)
		if err != nil {
			return err
		}
		*q = parsed
	case float64: // json numbers
		if v < 0 || v != float64(uint64(v)) {
			return fmt.Errorf("quantity %v is not a non-negative integer", v)
		}
		*q = Quantity(v)
	case int: // yaml numbers
		if v < 0 {
			return fmt.Errorf("quantity %d is negative", v)
		}
		*q = Quantity(v)
	case int64:
		if v < 0 {
			return fmt.Errorf("quantity %d is negative", v)
		}
		*q = Quantity(v)
	case uint64:
		*q = Quantity(v)
	default:
		return fmt.Errorf("quantity must be a number or unit string, got %T", raw)
	}
	return nil
}
