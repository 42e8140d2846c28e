package gevulot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// eventChain serves a fixed head and scripted per-height transactions.
type eventChain struct {
	head      int64
	txsAt     map[int64][]*gvpb.TxResponse
	fetchedAt []int64
}

func (e *eventChain) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	switch method {
	case gvpb.MethodGetLatestBlock:
		return respond(reply, &gvpb.GetLatestBlockResponse{
			Block: &gvpb.Block{Header: &gvpb.BlockHeader{Height: e.head}},
		})

	case gvpb.MethodGetTxsEvent:
		req := args.(*gvpb.GetTxsEventRequest)
		var height int64
		if len(req.Events) != 1 {
			return status.Errorf(codes.InvalidArgument, "expected one filter, got %d", len(req.Events))
		}
		if _, err := fmt.Sscanf(req.Events[0], "tx.height=%d", &height); err != nil {
			return status.Errorf(codes.InvalidArgument, "bad filter %q", req.Events[0])
		}
		e.fetchedAt = append(e.fetchedAt, height)
		return respond(reply, &gvpb.GetTxsEventResponse{TxResponses: e.txsAt[height]})
	}
	return status.Errorf(codes.Unimplemented, "unexpected rpc %s", method)
}

func txWithEvent(height int64, kind string, kv ...string) *gvpb.TxResponse {
	ev := &gvpb.Event{Type: kind}
	for i := 0; i+1 < len(kv); i += 2 {
		ev.Attributes = append(ev.Attributes, &gvpb.EventAttribute{Key: kv[i], Value: kv[i+1]})
	}
	return &gvpb.TxResponse{Height: height, Events: []*gvpb.Event{ev}}
}

func TestEventFetcherDeliversBlocksInOrder(t *testing.T) {
	chain := &eventChain{
		head: 12,
		txsAt: map[int64][]*gvpb.TxResponse{
			11: {txWithEvent(11, "create-task", "task-id", "t1", "creator", "alice")},
			12: {txWithEvent(12, "create-worker", "worker-id", "w1", "creator", "bob")},
		},
	}
	base := NewBaseClient(chain, nil, BaseClientConfig{PollInterval: time.Millisecond})

	got := make(chan Event, 16)
	fetcher := NewEventFetcher(base, EventHandlerFunc(func(ctx context.Context, ev Event) error {
		got <- ev
		return nil
	}), EventFetcherConfig{StartHeight: 11})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- fetcher.Run(ctx) }()

	first := <-got
	task, ok := first.(TaskCreateEvent)
	if !ok || task.TaskID != "t1" || task.Height != 11 {
		t.Errorf("unexpected first event: %#v", first)
	}
	second := <-got
	worker, ok := second.(WorkerCreateEvent)
	if !ok || worker.WorkerID != "w1" || worker.Height != 12 {
		t.Errorf("unexpected second event: %#v", second)
	}

	// Give the fetcher a few poll cycles; a caught-up tail must not
	// re-deliver processed blocks.
	time.Sleep(10 * time.Millisecond)
	select {
	case ev := <-got:
		t.Errorf("unexpected extra event: %#v", ev)
	default:
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("expected a canceled run, got %v", err)
	}
}

func TestEventFetcherStopsOnHandlerError(t *testing.T) {
	chain := &eventChain{
		head: 5,
		txsAt: map[int64][]*gvpb.TxResponse{
			5: {txWithEvent(5, "delete-pin", "cid", "bafy1", "creator", "alice")},
		},
	}
	base := NewBaseClient(chain, nil, BaseClientConfig{PollInterval: time.Millisecond})

	rejected := errors.New("handler gave up")
	fetcher := NewEventFetcher(base, EventHandlerFunc(func(ctx context.Context, ev Event) error {
		return rejected
	}), EventFetcherConfig{StartHeight: 5})

	if err := fetcher.Run(context.Background()); !errors.Is(err, rejected) {
		t.Fatalf("expected the handler error to stop the run, got %v", err)
	}
	if len(chain.fetchedAt) != 1 || chain.fetchedAt[0] != 5 {
		t.Errorf("expected a single fetch at height 5, got %v", chain.fetchedAt)
	}
}

func TestEventFetcherSkipsChainLevelEvents(t *testing.T) {
	tx := &gvpb.TxResponse{Height: 3, Events: []*gvpb.Event{
		{Type: "coin_spent", Attributes: []*gvpb.EventAttribute{{Key: "spender", Value: "gvlt1x"}}},
		{Type: "ack-pin", Attributes: []*gvpb.EventAttribute{
			{Key: "cid", Value: "bafy2"},
			{Key: "worker-id", Value: "w9"},
		}},
	}}
	chain := &eventChain{head: 3, txsAt: map[int64][]*gvpb.TxResponse{3: {tx}}}
	base := NewBaseClient(chain, nil, BaseClientConfig{PollInterval: time.Millisecond})

	var seen []Event
	stop := errors.New("done")
	fetcher := NewEventFetcher(base, EventHandlerFunc(func(ctx context.Context, ev Event) error {
		seen = append(seen, ev)
		return stop
	}), EventFetcherConfig{StartHeight: 3})

	if err := fetcher.Run(context.Background()); !errors.Is(err, stop) {
		t.Fatalf("run ended unexpectedly: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected one typed event, got %d", len(seen))
	}
	ack, ok := seen[0].(PinAckEvent)
	if !ok || ack.Cid != "bafy2" || ack.WorkerID != "w9" || !ack.Success {
		t.Errorf("unexpected event: %#v", seen[0])
	}
}
