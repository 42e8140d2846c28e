package gevulot

import (
	"errors"
	"testing"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

func mkEvent(kind string, kv ...string) *gvpb.Event {
	ev := &gvpb.Event{Type: kind}
	for i := 0; i+1 < len(kv); i += 2 {
		ev.Attributes = append(ev.Attributes, &gvpb.EventAttribute{Key: kv[i], Value: kv[i+1]})
	}
	return ev
}

func TestParseEventCreatePin(t *testing.T) {
	ev := mkEvent("create-pin",
		"cid", "bafy123",
		"creator", "gvlt1creator",
		"assigned-workers", "w1, w2",
		"retention-period", "86400",
		"fallback-urls", "https://a.example,https://b.example",
	)
	ev.Attributes = append(ev.Attributes, &gvpb.EventAttribute{Key: "fallback-urls", Value: "https://c.example"})

	parsed, err := ParseEvent(ev, 1000)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	pin, ok := parsed.(PinCreateEvent)
	if !ok {
		t.Fatalf("expected PinCreateEvent, got %T", parsed)
	}
	if pin.Height != 1000 || pin.Cid != "bafy123" || pin.Creator != "gvlt1creator" {
		t.Errorf("unexpected event: %+v", pin)
	}
	if pin.ID != "bafy123" {
		t.Errorf("expected id to fall back to the cid, got %q", pin.ID)
	}
	if len(pin.AssignedWorkers) != 2 || pin.AssignedWorkers[1] != "w2" {
		t.Errorf("unexpected workers: %v", pin.AssignedWorkers)
	}
	if pin.RetentionPeriod != 86400 {
		t.Errorf("unexpected retention: %d", pin.RetentionPeriod)
	}
	if len(pin.FallbackUrls) != 3 || pin.FallbackUrls[2] != "https://c.example" {
		t.Errorf("unexpected fallback urls: %v", pin.FallbackUrls)
	}
}

func TestParseEventAckPin(t *testing.T) {
	parsed, err := ParseEvent(mkEvent("ack-pin",
		"cid", "bafy123",
		"worker-id", "w1",
		"success", "false",
		"id", "pin-9",
	), 5)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ack := parsed.(PinAckEvent)
	if ack.Success {
		t.Error("expected a failed ack")
	}
	if ack.ID != "pin-9" || ack.WorkerID != "w1" {
		t.Errorf("unexpected event: %+v", ack)
	}
}

func TestParseEventTaskLifecycle(t *testing.T) {
	parsed, err := ParseEvent(mkEvent("create-task",
		"task-id", "t1",
		"creator", "gvlt1creator",
		"worker-id", "w1,w2",
	), 7)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	create := parsed.(TaskCreateEvent)
	if create.TaskID != "t1" || len(create.AssignedWorkers) != 2 {
		t.Errorf("unexpected event: %+v", create)
	}

	parsed, err = ParseEvent(mkEvent("accept-task", "task-id", "t1", "worker-id", "w1"), 8)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	accept := parsed.(TaskAcceptEvent)
	if accept.WorkerID != "w1" || accept.Height != 8 {
		t.Errorf("unexpected event: %+v", accept)
	}

	parsed, err = ParseEvent(mkEvent("finish-task", "task-id", "t1", "worker-id", "w1", "creator", "gvlt1creator"), 9)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := parsed.(TaskFinishEvent); !ok {
		t.Fatalf("expected TaskFinishEvent, got %T", parsed)
	}
}

func TestParseEventMissingAttribute(t *testing.T) {
	_, err := ParseEvent(mkEvent("accept-task", "task-id", "t1"), 1)
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("expected ErrMissingAttribute, got %v", err)
	}
}

func TestParseEventUnknownKind(t *testing.T) {
	_, err := ParseEvent(mkEvent("coin_spent", "spender", "gvlt1creator"), 1)
	if !errors.Is(err, ErrUnknownEvent) {
		t.Fatalf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestParseTxEventsSkipsUnknownKinds(t *testing.T) {
	resp := &gvpb.TxResponse{
		Height: 42,
		Events: []*gvpb.Event{
			mkEvent("coin_spent", "spender", "gvlt1creator"),
			mkEvent("create-worker", "worker-id", "w1", "creator", "gvlt1creator"),
			mkEvent("message", "action", "/gevulot.gevulot.MsgCreateWorker"),
			mkEvent("announce-worker-exit", "worker-id", "w1"),
		},
	}

	events, err := ParseTxEvents(resp)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	created := events[0].(WorkerCreateEvent)
	if created.WorkerID != "w1" || created.Height != 42 {
		t.Errorf("unexpected event: %+v", created)
	}
	if _, ok := events[1].(WorkerAnnounceExitEvent); !ok {
		t.Errorf("expected WorkerAnnounceExitEvent, got %T", events[1])
	}
}

func TestParseTxEventsSurfacesMalformedKnownKind(t *testing.T) {
	resp := &gvpb.TxResponse{
		Height: 42,
		Events: []*gvpb.Event{mkEvent("create-pin", "creator", "gvlt1creator")},
	}
	if _, err := ParseTxEvents(resp); !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("expected ErrMissingAttribute, got %v", err)
	}
}
