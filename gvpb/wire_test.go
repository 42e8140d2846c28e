package gvpb

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func roundTrip(t *testing.T, in, out Message) {
	t.Helper()
	data, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestEntityRoundTrip(t *testing.T) {
	t.Run("worker", func(t *testing.T) {
		in := &Worker{
			Metadata: &Metadata{
				Id:      "worker-1",
				Name:    "gpu-box",
				Creator: "gvlt1qy352eufqy352eufqy352eufqy35qqqqzl7nxy",
				Tags:    []string{"gpu", "eu-west"},
				Labels:  []*Label{{Key: "zone", Value: "a"}},
			},
			Spec:   &WorkerSpec{Cpus: 16000, Gpus: 2000, Memory: 64 << 30, Disk: 1 << 40},
			Status: &WorkerStatus{CpusUsed: 4000, MemoryUsed: 8 << 30, ExitAnnouncedAt: 1234},
		}
		roundTrip(t, in, new(Worker))
	})

	t.Run("task", func(t *testing.T) {
		in := &Task{
			Metadata: &Metadata{Id: "task-1", Creator: "gvlt1creator", WorkflowRef: "wf-9"},
			Spec: &TaskSpec{
				Image:          "ubuntu:latest",
				Command:        []string{"sh", "-c"},
				Args:           []string{"echo hello"},
				Env:            []*TaskEnv{{Name: "MODE", Value: "fast"}},
				InputContexts:  []*InputContext{{Source: "bafyinput", Target: "/in"}},
				OutputContexts: []*OutputContext{{Source: "/out", RetentionPeriod: 600}},
				Cpus:           1000,
				Memory:         1 << 30,
				Time:           3600,
				StoreStdout:    true,
				StoreStderr:    true,
			},
			Status: &TaskStatus{
				State:           TaskStateRunning,
				CreatedAt:       100,
				StartedAt:       110,
				AssignedWorkers: []string{"worker-1", "worker-2"},
				ActiveWorker:    "worker-1",
			},
		}
		roundTrip(t, in, new(Task))
	})

	t.Run("workflow", func(t *testing.T) {
		in := &Workflow{
			Metadata: &Metadata{Id: "wf-1", Creator: "gvlt1creator"},
			Spec: &WorkflowSpec{Stages: []*WorkflowStage{
				{Tasks: []*TaskSpec{{Image: "prep:1", Cpus: 500}}},
				{Tasks: []*TaskSpec{{Image: "crunch:1", Gpus: 1000}, {Image: "crunch:1", Gpus: 1000}}},
			}},
			Status: &WorkflowStatus{
				State:        WorkflowStateRunning,
				CurrentStage: 1,
				Stages: []*WorkflowStageStatus{
					{TaskIds: []string{"t1"}, FinishedTasks: 1},
					{TaskIds: []string{"t2", "t3"}},
				},
			},
		}
		roundTrip(t, in, new(Workflow))
	})

	t.Run("proof", func(t *testing.T) {
		in := &Proof{
			Metadata: &Metadata{Id: "proof-1", Creator: "gvlt1creator"},
			Spec: &ProofSpec{
				ProverImage:     "prover:2",
				VerifierImage:   "verifier:2",
				ProverCommand:   []string{"prove"},
				VerifierCommand: []string{"verify"},
				ProverEnv:       []*TaskEnv{{Name: "CIRCUIT", Value: "c1"}},
				InputContexts:   []*InputContext{{Source: "bafywitness", Target: "/w"}},
				Cpus:            8000,
				Memory:          16 << 30,
				Time:            7200,
			},
		}
		roundTrip(t, in, new(Proof))
	})

	t.Run("pin", func(t *testing.T) {
		in := &Pin{
			Metadata: &Metadata{Id: "pin-1", Name: "dataset", Creator: "gvlt1creator"},
			Spec:     &PinSpec{Bytes: 10 << 30, Time: 86400, Redundancy: 3, FallbackUrls: []string{"https://mirror.example/x"}},
			Status: &PinStatus{
				AssignedWorkers: []string{"worker-1"},
				WorkerAcks:      []*PinAck{{Worker: "worker-1", BlockHeight: 42, Success: true}},
				Cid:             "bafydataset",
			},
		}
		roundTrip(t, in, new(Pin))
	})
}

func TestMsgRoundTrip(t *testing.T) {
	t.Run("create task", func(t *testing.T) {
		in := &MsgCreateTask{
			Creator:     "gvlt1creator",
			Image:       "ubuntu:latest",
			Command:     []string{"echo"},
			Args:        []string{"hi"},
			Env:         []*TaskEnv{{Name: "A", Value: "1"}},
			Cpus:        1000,
			Memory:      1 << 30,
			Time:        3600,
			StoreStdout: true,
			Tags:        []string{"bench"},
			Labels:      []*Label{{Key: "team", Value: "proofs"}},
		}
		roundTrip(t, in, new(MsgCreateTask))
	})

	t.Run("finish task", func(t *testing.T) {
		in := &MsgFinishTask{
			Creator:        "gvlt1worker",
			TaskId:         "task-1",
			ExitCode:       1,
			Stdout:         "partial",
			OutputContexts: []string{"bafyout"},
			Error:          "oom",
		}
		roundTrip(t, in, new(MsgFinishTask))
	})

	t.Run("reschedule response", func(t *testing.T) {
		in := &MsgRescheduleTaskResponse{PrimaryId: "task-1", SecondaryId: "task-1b"}
		roundTrip(t, in, new(MsgRescheduleTaskResponse))
	})

	t.Run("create pin", func(t *testing.T) {
		in := &MsgCreatePin{
			Creator:      "gvlt1creator",
			Cid:          "bafydataset",
			Bytes:        10 << 30,
			Name:         "dataset",
			Redundancy:   3,
			Time:         86400,
			FallbackUrls: []string{"https://mirror.example/x"},
		}
		roundTrip(t, in, new(MsgCreatePin))
	})
}

func TestCosmosRoundTrip(t *testing.T) {
	t.Run("tx raw", func(t *testing.T) {
		in := &TxRaw{
			BodyBytes:     []byte{1, 2, 3},
			AuthInfoBytes: []byte{4, 5},
			Signatures:    [][]byte{bytes.Repeat([]byte{7}, 64)},
		}
		roundTrip(t, in, new(TxRaw))
	})

	t.Run("tx response with events", func(t *testing.T) {
		in := &TxResponse{
			Height:    77,
			TxHash:    "ABCDEF",
			Code:      0,
			GasWanted: 200000,
			GasUsed:   180123,
			Events: []*Event{{
				Type: "create-task",
				Attributes: []*EventAttribute{
					{Key: "task-id", Value: "task-1", Index: true},
					{Key: "creator", Value: "gvlt1creator"},
				},
			}},
		}
		roundTrip(t, in, new(TxResponse))
	})

	t.Run("base account", func(t *testing.T) {
		pk, err := PackAny(&PubKeySecp256k1{Key: bytes.Repeat([]byte{2}, 33)})
		if err != nil {
			t.Fatalf("PackAny failed: %v", err)
		}
		in := &BaseAccount{Address: "gvlt1creator", PubKey: pk, AccountNumber: 9, Sequence: 14}
		roundTrip(t, in, new(BaseAccount))
	})
}

func TestPackAny(t *testing.T) {
	msg := &MsgDeleteTask{Creator: "gvlt1creator", Id: "task-1"}
	a, err := PackAny(msg)
	if err != nil {
		t.Fatalf("PackAny failed: %v", err)
	}
	if a.TypeUrl != "/gevulot.gevulot.MsgDeleteTask" {
		t.Errorf("unexpected type url %q", a.TypeUrl)
	}
	var out MsgDeleteTask
	if err := out.Unmarshal(a.Value); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out != *msg {
		t.Errorf("got %+v, want %+v", out, *msg)
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	in := &Metadata{Id: "task-1", Creator: "gvlt1creator"}
	data, _ := in.Marshal()

	// Append fields this client version has never heard of.
	data = protowire.AppendTag(data, 50, protowire.VarintType)
	data = protowire.AppendVarint(data, 12345)
	data = protowire.AppendTag(data, 51, protowire.BytesType)
	data = protowire.AppendString(data, "future")

	var out Metadata
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal with unknown fields failed: %v", err)
	}
	if !reflect.DeepEqual(&out, in) {
		t.Errorf("got %+v, want %+v", &out, in)
	}
}

func TestMalformedInput(t *testing.T) {
	t.Run("wire type mismatch", func(t *testing.T) {
		// Field 1 of Metadata is a string; feed a varint instead.
		data := protowire.AppendTag(nil, 1, protowire.VarintType)
		data = protowire.AppendVarint(data, 7)
		var out Metadata
		err := out.Unmarshal(data)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("got %v, want ErrMalformed", err)
		}
	})

	t.Run("truncated payload", func(t *testing.T) {
		in := &Metadata{Name: "long enough to truncate"}
		data, _ := in.Marshal()
		var out Metadata
		err := out.Unmarshal(data[:len(data)-3])
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("got %v, want ErrMalformed", err)
		}
	})

	t.Run("truncated tag", func(t *testing.T) {
		var out Metadata
		err := out.Unmarshal([]byte{0x80})
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("got %v, want ErrMalformed", err)
		}
	})
}

func TestUnknownEnumPreserved(t *testing.T) {
	in := &TaskStatus{State: TaskState(99)}
	data, _ := in.Marshal()
	var out TaskStatus
	if err := out.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.State != TaskState(99) {
		t.Errorf("got state %d, want 99", out.State)
	}
}

func TestSignDocDeterministic(t *testing.T) {
	doc := &SignDoc{
		BodyBytes:     []byte{1, 2, 3},
		AuthInfoBytes: []byte{4, 5, 6},
		ChainId:       "gevulot-1",
		AccountNumber: 7,
	}
	a, _ := doc.Marshal()
	b, _ := doc.Marshal()
	if !bytes.Equal(a, b) {
		t.Error("SignDoc serialization is not deterministic")
	}
}

func TestCodec(t *testing.T) {
	c := Codec{}
	in := &QueryGetTaskRequest{Id: "task-1"}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("codec Marshal failed: %v", err)
	}
	var out QueryGetTaskRequest
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatalf("codec Unmarshal failed: %v", err)
	}
	if out.Id != "task-1" {
		t.Errorf("got id %q, want task-1", out.Id)
	}
	if _, err := c.Marshal(42); err == nil {
		t.Error("expected error marshaling a non-message")
	}
}
