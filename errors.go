package gevulot

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by get queries when no entity carries the
// requested id. It is an expected outcome, not a failure, and is never
// logged at error level.
var ErrNotFound = errors.New("not found")

// ErrInvalidSpec is returned by builders when a message is missing a
// required field or carries a nonsensical value. Only the shape is
// checked here; business rules belong to the ledger.
var ErrInvalidSpec = errors.New("invalid specification")

// RPCError wraps a transport failure. Queries surface it without
// internal retries; only the broadcaster retries, and only when the
// underlying failure is transient.
type RPCError struct {
	Method string
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s failed: %v", e.Method, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }

// RejectionError reports that the ledger refused a transaction.
// Permanent rejections (bad message shape, failed business rule) are
// never retried; transient ones (sequence mismatch, mempool pressure)
// are.
type RejectionError struct {
	TxHash    string
	Code      uint32
	Codespace string
	RawLog    string
	Permanent bool
}

func (e *RejectionError) Error() string {
	kind := "transient"
	if e.Permanent {
		kind = "permanent"
	}
	return fmt.Sprintf("transaction rejected (%s, code %d/%s): %s", kind, e.Code, e.Codespace, e.RawLog)
}

// ConfirmationError reports a broadcast the ledger accepted whose
// inclusion could not be confirmed before the wait deadline. The
// transaction may still commit later, and rebroadcasting could execute
// the same intent twice, so the broadcaster stops and hands the hash
// back; the caller decides whether to keep polling WaitForTx with it.
type ConfirmationError struct {
	TxHash string
	Err    error
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("transaction %s accepted but unconfirmed: %v", e.TxHash, e.Err)
}

func (e *ConfirmationError) Unwrap() error { return e.Err }

// ExhaustedError reports that the retry budget ran out. It wraps the
// last transient failure so callers can still inspect it, and carries
// the submission id that tags every log line of the failed intent.
type ExhaustedError struct {
	Submission string
	Attempts   int
	Elapsed    time.Duration
	Last       error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("submission %s: retry budget exhausted after %d attempts in %v: %v", e.Submission, e.Attempts, e.Elapsed, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
