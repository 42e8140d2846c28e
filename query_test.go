package gevulot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

func mkWorker(id string) *gvpb.Worker {
	return &gvpb.Worker{Metadata: &gvpb.Metadata{Id: id, Name: "node-" + id}}
}

// pagedWorkers serves a fixed worker set in pages, recording each
// request's cursor.
type pagedWorkers struct {
	workers  []*gvpb.Worker
	calls    int
	seenKeys []string

	// stickyKey, when set, is returned as the next cursor on every
	// page regardless of progress.
	stickyKey string

	// cycleKeys, when set, are served round-robin as the next cursor
	// so the token stream never settles.
	cycleKeys []string
}

func (p *pagedWorkers) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	if method != gvpb.MethodAllWorker {
		return status.Errorf(codes.Unimplemented, "unexpected rpc %s", method)
	}
	p.calls++
	req := args.(*gvpb.QueryAllWorkerRequest)

	start := 0
	limit := len(p.workers)
	if req.Pagination != nil {
		p.seenKeys = append(p.seenKeys, string(req.Pagination.Key))
		if len(req.Pagination.Key) > 0 {
			fmt.Sscanf(string(req.Pagination.Key), "offset-%d", &start)
		}
		if req.Pagination.Limit > 0 {
			limit = int(req.Pagination.Limit)
		}
	}

	end := start + limit
	if end > len(p.workers) {
		end = len(p.workers)
	}
	resp := &gvpb.QueryAllWorkerResponse{Worker: p.workers[start:end], Pagination: &gvpb.PageResponse{}}
	if len(p.cycleKeys) > 0 {
		resp.Pagination.NextKey = []byte(p.cycleKeys[(p.calls-1)%len(p.cycleKeys)])
	} else if p.stickyKey != "" {
		resp.Pagination.NextKey = []byte(p.stickyKey)
	} else if end < len(p.workers) {
		resp.Pagination.NextKey = []byte(fmt.Sprintf("offset-%d", end))
	}
	return respond(reply, resp)
}

func collectWorkers(t *testing.T, seq func(func(types.Worker, error) bool)) []types.Worker {
	t.Helper()
	var out []types.Worker
	for w, err := range seq {
		if err != nil {
			t.Fatalf("walk failed: %v", err)
		}
		out = append(out, w)
	}
	return out
}

func TestListWalksAllPages(t *testing.T) {
	server := &pagedWorkers{}
	for i := 1; i <= 5; i++ {
		server.workers = append(server.workers, mkWorker(fmt.Sprintf("w%d", i)))
	}
	client := NewClient(NewBaseClient(server, nil, BaseClientConfig{}))

	got := collectWorkers(t, client.Workers.ListPaged(context.Background(), 2))

	if len(got) != 5 {
		t.Fatalf("expected 5 workers, got %d", len(got))
	}
	for i, w := range got {
		want := fmt.Sprintf("w%d", i+1)
		if w.Metadata.Id != want {
			t.Errorf("item %d: expected %s, got %s", i, want, w.Metadata.Id)
		}
	}
	if server.calls != 3 {
		t.Errorf("expected 3 page fetches, got %d", server.calls)
	}
	wantKeys := []string{"", "offset-2", "offset-4"}
	for i, k := range wantKeys {
		if server.seenKeys[i] != k {
			t.Errorf("fetch %d: expected cursor %q, got %q", i, k, server.seenKeys[i])
		}
	}
}

func TestListIsLazy(t *testing.T) {
	server := &pagedWorkers{}
	for i := 1; i <= 6; i++ {
		server.workers = append(server.workers, mkWorker(fmt.Sprintf("w%d", i)))
	}
	client := NewClient(NewBaseClient(server, nil, BaseClientConfig{}))

	seq := client.Workers.ListPaged(context.Background(), 2)
	if server.calls != 0 {
		t.Fatalf("expected no fetch before iteration, got %d", server.calls)
	}

	for range seq {
		break
	}
	if server.calls != 1 {
		t.Errorf("expected a single fetch after an early break, got %d", server.calls)
	}
}

func TestListStopsOnRepeatedCursor(t *testing.T) {
	walk := func(t *testing.T, server *pagedWorkers) {
		t.Helper()
		client := NewClient(NewBaseClient(server, nil, BaseClientConfig{}))
		count := 0
		for _, err := range client.Workers.ListPaged(context.Background(), 2) {
			if err != nil {
				t.Fatalf("walk failed: %v", err)
			}
			count++
			if count > 100 {
				t.Fatal("walk did not terminate on a repeated cursor")
			}
		}
	}

	t.Run("sticky token", func(t *testing.T) {
		server := &pagedWorkers{stickyKey: "stuck"}
		for i := 1; i <= 6; i++ {
			server.workers = append(server.workers, mkWorker(fmt.Sprintf("w%d", i)))
		}
		walk(t, server)
		if server.calls != 2 {
			t.Errorf("expected the walk to stop after the cursor repeated, got %d fetches", server.calls)
		}
	})

	// A server flipping between two tokens never repeats the previous
	// one, but the walk must still detect the cycle.
	t.Run("alternating tokens", func(t *testing.T) {
		server := &pagedWorkers{cycleKeys: []string{"east", "west"}}
		for i := 1; i <= 6; i++ {
			server.workers = append(server.workers, mkWorker(fmt.Sprintf("w%d", i)))
		}
		walk(t, server)
		if server.calls != 3 {
			t.Errorf("expected the walk to stop when a token recurred, got %d fetches", server.calls)
		}
	})
}

func TestListSurfacesRPCError(t *testing.T) {
	inv := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		return status.Error(codes.Unavailable, "connection refused")
	})
	client := NewClient(NewBaseClient(inv, nil, BaseClientConfig{}))

	var walkErr error
	for _, err := range client.Workers.List(context.Background()) {
		walkErr = err
	}
	var rpcErr *RPCError
	if !errors.As(walkErr, &rpcErr) {
		t.Fatalf("expected RPCError, got %v", walkErr)
	}
	if rpcErr.Method != gvpb.MethodAllWorker {
		t.Errorf("expected method %s, got %s", gvpb.MethodAllWorker, rpcErr.Method)
	}
}

func TestGetMapsNotFound(t *testing.T) {
	notFound := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		return status.Error(codes.NotFound, "no such entity")
	})
	empty := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		return nil
	})

	for _, inv := range []gvpb.Invoker{notFound, empty} {
		client := NewClient(NewBaseClient(inv, nil, BaseClientConfig{}))
		ctx := context.Background()

		if _, err := client.Workers.Get(ctx, "w1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("worker get: expected ErrNotFound, got %v", err)
		}
		if _, err := client.Tasks.Get(ctx, "t1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("task get: expected ErrNotFound, got %v", err)
		}
		if _, err := client.Workflows.Get(ctx, "wf1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("workflow get: expected ErrNotFound, got %v", err)
		}
		if _, err := client.Proofs.Get(ctx, "p1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("proof get: expected ErrNotFound, got %v", err)
		}
		if _, err := client.Pins.Get(ctx, "cid1"); !errors.Is(err, ErrNotFound) {
			t.Errorf("pin get: expected ErrNotFound, got %v", err)
		}
	}
}

func TestGetReturnsEntity(t *testing.T) {
	inv := invokerFunc(func(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
		if method != gvpb.MethodGetWorker {
			return status.Errorf(codes.Unimplemented, "unexpected rpc %s", method)
		}
		return respond(reply, &gvpb.QueryGetWorkerResponse{Worker: mkWorker("w1")})
	})
	client := NewClient(NewBaseClient(inv, nil, BaseClientConfig{}))

	w, err := client.Workers.Get(context.Background(), "w1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if w.Metadata.Id != "w1" || w.Metadata.Name != "node-w1" {
		t.Errorf("unexpected worker: %+v", w.Metadata)
	}
}
