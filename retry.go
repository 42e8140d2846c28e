package gevulot

import (
	"math/rand"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// Cosmos sdk error codes the broadcaster treats as transient.
const (
	codeWrongSequence uint32 = 32
	codeMempoolFull   uint32 = 20
	sdkCodespace             = "sdk"
)

// RetryPolicy bounds the broadcaster's retry loop. Delay is a pure
// function of the attempt number and the injected jitter source, so
// schedules are unit-testable without sleeping.
type RetryPolicy struct {
	// MaxAttempts caps how many submissions are made in total,
	// including the first one.
	MaxAttempts int

	// MaxElapsed, when non-zero, stops retrying once the total time
	// since the first attempt exceeds it.
	MaxElapsed time.Duration

	// BaseDelay is the delay before the second attempt; each further
	// attempt doubles it up to MaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration

	// JitterFraction spreads each delay by ±fraction/2. A nil Rand
	// falls back to the shared math/rand source.
	JitterFraction float64
	Rand           func() float64
}

// DefaultRetryPolicy mirrors the broadcaster defaults: three attempts,
// half-second base delay doubling to at most five seconds, 20% jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    3,
		MaxElapsed:     2 * time.Minute,
		BaseDelay:      500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		JitterFraction: 0.2,
	}
}

// Delay returns how long to wait before the given attempt (attempt 2
// is the first retry). Attempt numbers below 2 need no delay.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 2 || p.BaseDelay <= 0 {
		return 0
	}
	d := p.BaseDelay
	for i := 2; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			d = p.MaxDelay
			break
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	if p.JitterFraction > 0 {
		r := p.Rand
		if r == nil {
			r = rand.Float64
		}
		// Spread the delay across [1-f/2, 1+f/2).
		factor := 1 + p.JitterFraction*(r()-0.5)
		d = time.Duration(float64(d) * factor)
	}
	return d
}

// isTransientRPC reports whether a transport error is worth retrying.
func isTransientRPC(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}

// isSequenceMismatch detects the stale-sequence rejection that
// requires a refresh and re-sign before the next attempt.
func isSequenceMismatch(resp *gvpb.TxResponse) bool {
	if resp == nil {
		return false
	}
	if resp.Codespace == sdkCodespace && resp.Code == codeWrongSequence {
		return true
	}
	return strings.Contains(resp.RawLog, "account sequence mismatch")
}

// isTransientRejection covers ledger rejections that may clear on
// their own: wrong sequence and mempool pressure.
func isTransientRejection(resp *gvpb.TxResponse) bool {
	if resp == nil {
		return false
	}
	if isSequenceMismatch(resp) {
		return true
	}
	return resp.Codespace == sdkCodespace && resp.Code == codeMempoolFull
}
