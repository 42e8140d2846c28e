package gevulot

import (
	"context"
	"fmt"
	"time"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// EventHandler consumes typed ledger events in block order. Returning
// an error stops the fetcher.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev Event) error
}

// EventHandlerFunc adapts a plain function to EventHandler.
type EventHandlerFunc func(ctx context.Context, ev Event) error

func (f EventHandlerFunc) HandleEvent(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// EventFetcherConfig carries the fetcher tunables. The zero value
// starts at the chain head and inherits the base client's poll
// interval and retry policy.
type EventFetcherConfig struct {
	// StartHeight is the first block to index; zero means the block
	// after the head observed when Run starts.
	StartHeight int64

	// PollInterval is how long to sleep once the fetcher has caught up
	// with the head.
	PollInterval time.Duration

	Retry *RetryPolicy
}

// EventFetcher tails the chain and feeds every typed ledger event to a
// handler, block by block in commit order. Blocks are never skipped:
// a fetch that keeps failing past the retry budget stops the run so
// the caller can resume from the last processed height.
type EventFetcher struct {
	base    *BaseClient
	handler EventHandler

	startHeight  int64
	pollInterval time.Duration
	retry        RetryPolicy
}

// NewEventFetcher builds a fetcher over an existing BaseClient.
func NewEventFetcher(base *BaseClient, handler EventHandler, cfg EventFetcherConfig) *EventFetcher {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = base.pollInterval
	}
	retry := base.retry
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	return &EventFetcher{
		base:         base,
		handler:      handler,
		startHeight:  cfg.StartHeight,
		pollInterval: interval,
		retry:        retry,
	}
}

// Run tails the chain until the context ends, the handler rejects an
// event, or a fetch fails past the retry budget. It returns the
// context's error on a clean shutdown.
func (f *EventFetcher) Run(ctx context.Context) error {
	next := f.startHeight
	if next <= 0 {
		head, err := f.head(ctx)
		if err != nil {
			return err
		}
		next = head + 1
	}

	ticker := time.NewTicker(f.pollInterval)
	defer ticker.Stop()
	for {
		head, err := f.head(ctx)
		if err != nil {
			return err
		}
		for ; next <= head; next++ {
			if err := f.processHeight(ctx, next); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// processHeight walks every transaction committed at the height and
// hands its typed events to the handler.
func (f *EventFetcher) processHeight(ctx context.Context, height int64) error {
	req := &gvpb.GetTxsEventRequest{Events: []string{fmt.Sprintf("tx.height=%d", height)}}
	var resp *gvpb.GetTxsEventResponse
	err := f.withRetry(ctx, gvpb.MethodGetTxsEvent, func() error {
		var err error
		resp, err = f.base.tx.GetTxsEvent(ctx, req)
		return err
	})
	if err != nil {
		return err
	}
	f.base.log("events").WithField("height", height).Debug("processing block transactions")

	for _, tx := range resp.TxResponses {
		events, err := ParseTxEvents(tx)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := f.handler.HandleEvent(ctx, ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *EventFetcher) head(ctx context.Context) (int64, error) {
	var height int64
	err := f.withRetry(ctx, gvpb.MethodGetLatestBlock, func() error {
		block, err := f.base.LatestBlock(ctx)
		if err != nil {
			return err
		}
		if block == nil || block.Header == nil {
			return fmt.Errorf("chain head carries no header")
		}
		height = block.Header.Height
		return nil
	})
	return height, err
}

// withRetry runs op under the fetcher's retry budget, backing off
// between attempts. Non-transient failures surface immediately.
func (f *EventFetcher) withRetry(ctx context.Context, method string, op func() error) error {
	start := time.Now()
	var last error
	for attempt := 1; attempt <= f.retry.MaxAttempts; attempt++ {
		if delay := f.retry.Delay(attempt); delay > 0 {
			select {
			case <-ctx.Done():
				return &RPCError{Method: method, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}
		err := op()
		if err == nil {
			return nil
		}
		last = err
		if !isTransientRPC(err) && ctx.Err() == nil {
			return err
		}
		if ctx.Err() != nil {
			return &RPCError{Method: method, Err: ctx.Err()}
		}
	}
	return &ExhaustedError{Attempts: f.retry.MaxAttempts, Elapsed: time.Since(start), Last: last}
}
