package gevulot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// The ledger tags every committed transaction with ABCI events. This
// file turns those loosely-typed key/value bags into per-kind structs.

// ErrUnknownEvent marks an event type this library does not model.
// Chain-level events (transfer, message, tx) fall in this bucket too.
var ErrUnknownEvent = errors.New("unknown event kind")

// ErrMissingAttribute reports an event that lacks a required attribute.
var ErrMissingAttribute = errors.New("missing event attribute")

// Event is one parsed ledger event. Switch on the concrete type to
// handle a specific kind.
type Event interface {
	// Kind returns the wire-level event type string.
	Kind() string
}

type WorkerCreateEvent struct {
	Height   int64
	WorkerID string
	Creator  string
}

type WorkerUpdateEvent struct {
	Height   int64
	WorkerID string
	Creator  string
}

type WorkerDeleteEvent struct {
	Height   int64
	WorkerID string
	Creator  string
}

type WorkerAnnounceExitEvent struct {
	Height   int64
	WorkerID string
	Creator  string
}

type TaskCreateEvent struct {
	Height          int64
	TaskID          string
	Creator         string
	AssignedWorkers []string
}

type TaskDeleteEvent struct {
	Height  int64
	TaskID  string
	Creator string
}

type TaskAcceptEvent struct {
	Height   int64
	TaskID   string
	WorkerID string
	Creator  string
}

type TaskDeclineEvent struct {
	Height   int64
	TaskID   string
	WorkerID string
	Creator  string
}

type TaskFinishEvent struct {
	Height   int64
	TaskID   string
	WorkerID string
	Creator  string
}

type WorkflowCreateEvent struct {
	Height     int64
	WorkflowID string
	Creator    string
}

type WorkflowDeleteEvent struct {
	Height     int64
	WorkflowID string
	Creator    string
}

type WorkflowUpdateEvent struct {
	Height     int64
	WorkflowID string
	Creator    string
}

type WorkflowProgressEvent struct {
	Height     int64
	WorkflowID string
	Creator    string
}

type WorkflowFinishEvent struct {
	Height     int64
	WorkflowID string
	Creator    string
}

type PinCreateEvent struct {
	Height          int64
	Cid             string
	ID              string
	Creator         string
	AssignedWorkers []string
	RetentionPeriod uint64
	FallbackUrls    []string
}

type PinDeleteEvent struct {
	Height  int64
	Cid     string
	ID      string
	Creator string
}

type PinAckEvent struct {
	Height   int64
	Cid      string
	ID       string
	WorkerID string
	Success  bool
}

type ProofCreateEvent struct {
	Height  int64
	ProofID string
	Creator string
}

type ProofUpdateEvent struct {
	Height  int64
	ProofID string
	Creator string
}

type ProofDeleteEvent struct {
	Height  int64
	ProofID string
	Creator string
}

type ProofFinishEvent struct {
	Height  int64
	ProofID string
	Creator string
}

func (WorkerCreateEvent) Kind() string       { return "create-worker" }
func (WorkerUpdateEvent) Kind() string       { return "update-worker" }
func (WorkerDeleteEvent) Kind() string       { return "delete-worker" }
func (WorkerAnnounceExitEvent) Kind() string { return "announce-worker-exit" }
func (TaskCreateEvent) Kind() string         { return "create-task" }
func (TaskDeleteEvent) Kind() string         { return "delete-task" }
func (TaskAcceptEvent) Kind() string         { return "accept-task" }
func (TaskDeclineEvent) Kind() string        { return "decline-task" }
func (TaskFinishEvent) Kind() string         { return "finish-task" }
func (WorkflowCreateEvent) Kind() string     { return "create-workflow" }
func (WorkflowDeleteEvent) Kind() string     { return "delete-workflow" }
func (WorkflowUpdateEvent) Kind() string     { return "update-workflow" }
func (WorkflowProgressEvent) Kind() string   { return "progress-workflow" }
func (WorkflowFinishEvent) Kind() string     { return "finish-workflow" }
func (PinCreateEvent) Kind() string          { return "create-pin" }
func (PinDeleteEvent) Kind() string          { return "delete-pin" }
func (PinAckEvent) Kind() string             { return "ack-pin" }
func (ProofCreateEvent) Kind() string        { return "create-proof" }
func (ProofUpdateEvent) Kind() string        { return "update-proof" }
func (ProofDeleteEvent) Kind() string        { return "delete-proof" }
func (ProofFinishEvent) Kind() string        { return "finish-proof" }

// findAttr returns the first attribute carrying key.
func findAttr(ev *gvpb.Event, key string) (string, bool) {
	for _, a := range ev.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func requireAttr(ev *gvpb.Event, key string) (string, error) {
	v, ok := findAttr(ev, key)
	if !ok {
		return "", fmt.Errorf("event %s: %w: %s", ev.Type, ErrMissingAttribute, key)
	}
	return v, nil
}

// listAttr gathers every attribute carrying key and splits each value
// on commas. Empty entries are dropped.
func listAttr(ev *gvpb.Event, key string) []string {
	var out []string
	for _, a := range ev.Attributes {
		if a.Key != key {
			continue
		}
		for _, part := range strings.Split(a.Value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// ParseEvent converts one ABCI event into its typed form. height is
// the block height the event was committed at. Kinds outside this
// library's vocabulary return ErrUnknownEvent.
func ParseEvent(ev *gvpb.Event, height int64) (Event, error) {
	creator, _ := findAttr(ev, "creator")

	switch ev.Type {
	case "create-worker", "update-worker", "delete-worker", "announce-worker-exit":
		id, err := requireAttr(ev, "worker-id")
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case "create-worker":
			return WorkerCreateEvent{Height: height, WorkerID: id, Creator: creator}, nil
		case "update-worker":
			return WorkerUpdateEvent{Height: height, WorkerID: id, Creator: creator}, nil
		case "delete-worker":
			return WorkerDeleteEvent{Height: height, WorkerID: id, Creator: creator}, nil
		default:
			return WorkerAnnounceExitEvent{Height: height, WorkerID: id, Creator: creator}, nil
		}

	case "create-task":
		id, err := requireAttr(ev, "task-id")
		if err != nil {
			return nil, err
		}
		return TaskCreateEvent{
			Height:          height,
			TaskID:          id,
			Creator:         creator,
			AssignedWorkers: listAttr(ev, "worker-id"),
		}, nil

	case "delete-task":
		id, err := requireAttr(ev, "task-id")
		if err != nil {
			return nil, err
		}
		return TaskDeleteEvent{Height: height, TaskID: id, Creator: creator}, nil

	case "accept-task", "decline-task", "finish-task":
		id, err := requireAttr(ev, "task-id")
		if err != nil {
			return nil, err
		}
		workerID, err := requireAttr(ev, "worker-id")
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case "accept-task":
			return TaskAcceptEvent{Height: height, TaskID: id, WorkerID: workerID, Creator: creator}, nil
		case "decline-task":
			return TaskDeclineEvent{Height: height, TaskID: id, WorkerID: workerID, Creator: creator}, nil
		default:
			return TaskFinishEvent{Height: height, TaskID: id, WorkerID: workerID, Creator: creator}, nil
		}

	case "create-workflow", "delete-workflow", "update-workflow", "progress-workflow", "finish-workflow":
		id, err := requireAttr(ev, "workflow-id")
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case "create-workflow":
			return WorkflowCreateEvent{Height: height, WorkflowID: id, Creator: creator}, nil
		case "delete-workflow":
			return WorkflowDeleteEvent{Height: height, WorkflowID: id, Creator: creator}, nil
		case "update-workflow":
			return WorkflowUpdateEvent{Height: height, WorkflowID: id, Creator: creator}, nil
		case "progress-workflow":
			return WorkflowProgressEvent{Height: height, WorkflowID: id, Creator: creator}, nil
		default:
			return WorkflowFinishEvent{Height: height, WorkflowID: id, Creator: creator}, nil
		}

	case "create-pin":
		cid, err := requireAttr(ev, "cid")
		if err != nil {
			return nil, err
		}
		if creator == "" {
			return nil, fmt.Errorf("event %s: %w: creator", ev.Type, ErrMissingAttribute)
		}
		retentionStr, err := requireAttr(ev, "retention-period")
		if err != nil {
			return nil, err
		}
		retention, err := strconv.ParseUint(retentionStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("event %s: bad retention-period %q: %w", ev.Type, retentionStr, err)
		}
		id, ok := findAttr(ev, "id")
		if !ok {
			id = cid
		}
		return PinCreateEvent{
			Height:          height,
			Cid:             cid,
			ID:              id,
			Creator:         creator,
			AssignedWorkers: listAttr(ev, "assigned-workers"),
			RetentionPeriod: retention,
			FallbackUrls:    listAttr(ev, "fallback-urls"),
		}, nil

	case "delete-pin":
		cid, err := requireAttr(ev, "cid")
		if err != nil {
			return nil, err
		}
		if creator == "" {
			return nil, fmt.Errorf("event %s: %w: creator", ev.Type, ErrMissingAttribute)
		}
		id, ok := findAttr(ev, "id")
		if !ok {
			id = cid
		}
		return PinDeleteEvent{Height: height, Cid: cid, ID: id, Creator: creator}, nil

	case "ack-pin":
		cid, err := requireAttr(ev, "cid")
		if err != nil {
			return nil, err
		}
		workerID, err := requireAttr(ev, "worker-id")
		if err != nil {
			return nil, err
		}
		success := true
		if v, ok := findAttr(ev, "success"); ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				success = parsed
			}
		}
		id, ok := findAttr(ev, "id")
		if !ok {
			id = cid
		}
		return PinAckEvent{Height: height, Cid: cid, ID: id, WorkerID: workerID, Success: success}, nil

	case "create-proof", "update-proof", "delete-proof", "finish-proof":
		id, err := requireAttr(ev, "proof-id")
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case "create-proof":
			return ProofCreateEvent{Height: height, ProofID: id, Creator: creator}, nil
		case "update-proof":
			return ProofUpdateEvent{Height: height, ProofID: id, Creator: creator}, nil
		case "delete-proof":
			return ProofDeleteEvent{Height: height, ProofID: id, Creator: creator}, nil
		default:
			return ProofFinishEvent{Height: height, ProofID: id, Creator: creator}, nil
		}
	}

	return nil, fmt.Errorf("event %s: %w", ev.Type, ErrUnknownEvent)
}

// ParseTxEvents extracts the typed events from a committed transaction.
// Chain-level event kinds this library does not model are skipped;
// malformed events of a known kind surface an error.
func ParseTxEvents(resp *gvpb.TxResponse) ([]Event, error) {
	var out []Event
	for _, ev := range resp.Events {
		parsed, err := ParseEvent(ev, resp.Height)
		if errors.Is(err, ErrUnknownEvent) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}
