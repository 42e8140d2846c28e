package types

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want Quantity
	}{
		{"1234", 1234},
		{"1234kb", 1_234_000},
		{"2mb", 2_000_000},
		{"1gib", 1 << 30},
		{"2cores", 2000},
		{"1cpu", 1000},
		{"500mcpu", 500},
		{"1hr", 3600},
		{"90min", 5400},
		{"2days", 172800},
		{"10 gb", 10_000_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseQuantity(tc.in)
			if err != nil {
				t.Fatalf("ParseQuantity(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseQuantity(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"", "kb", "12parsecs", "-5", "1.5gb"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			if _, err := ParseQuantity(bad); err == nil {
				t.Errorf("ParseQuantity(%q) succeeded, want error", bad)
			}
		})
	}
}

func TestParseQuantityOverflow(t *testing.T) {
	// 18446744073709 * 1e12 exceeds the uint64 range.
	for _, bad := range []string{"18446744073709tb", "18446744073709551615kb"} {
		if _, err := ParseQuantity(bad); err == nil {
			t.Errorf("ParseQuantity(%q) succeeded, want overflow error", bad)
		}
	}
	// The largest representable value still parses.
	if got, err := ParseQuantity("18446744073709551615"); err != nil || got != Quantity(1<<64-1) {
		t.Errorf("ParseQuantity(max) = %d, %v", got, err)
	}
}

func TestQuantityJSON(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		var q Quantity
		if err := json.Unmarshal([]byte(`2048`), &q); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if q != 2048 {
			t.Errorf("got %d, want 2048", q)
		}
	})

	t.Run("unit string", func(t *testing.T) {
		var q Quantity
		if err := json.Unmarshal([]byte(`"2kb"`), &q); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if q != 2000 {
			t.Errorf("got %d, want 2000", q)
		}
	})

	t.Run("marshals as number", func(t *testing.T) {
		out, err := json.Marshal(Quantity(77))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(out) != "77" {
			t.Errorf("got %s, want 77", out)
		}
	})

	t.Run("rejects negatives", func(t *testing.T) {
		var q Quantity
		if err := json.Unmarshal([]byte(`-4`), &q); err == nil {
			t.Error("expected error for negative quantity")
		}
	})
}

func TestTaskManifestYAML(t *testing.T) {
	manifest := `
kind: Task
version: v0
metadata:
  name: bench
  tags: [nightly]
spec:
  image: ubuntu:latest
  command: [sh, -c]
  args: ["echo hi"]
  env:
    - name: MODE
      value: fast
  resources:
    cpus: 2cores
    gpus: 0
    memory: 2gib
    time: 1hr
  storeStdout: true
`
	var task Task
	if err := yaml.Unmarshal([]byte(manifest), &task); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v", err)
	}
	if task.Kind != KindTask {
		t.Errorf("got kind %q, want %q", task.Kind, KindTask)
	}
	if task.Spec.Resources.Cpus != 2000 {
		t.Errorf("cpus = %d, want 2000", task.Spec.Resources.Cpus)
	}
	if task.Spec.Resources.Memory != 2<<30 {
		t.Errorf("memory = %d, want %d", task.Spec.Resources.Memory, 2<<30)
	}
	if task.Spec.Resources.Time != 3600 {
		t.Errorf("time = %d, want 3600", task.Spec.Resources.Time)
	}
	if !task.Spec.StoreStdout {
		t.Error("storeStdout not set")
	}
}

func TestWorkerConversion(t *testing.T) {
	wire := &gvpb.Worker{
		Metadata: &gvpb.Metadata{
			Id:      "worker-1",
			Name:    "gpu-box",
			Creator: "gvlt1creator",
			Tags:    []string{"gpu"},
			Labels:  []*gvpb.Label{{Key: "zone", Value: "a"}},
		},
		Spec:   &gvpb.WorkerSpec{Cpus: 16000, Gpus: 2000, Memory: 64 << 30, Disk: 1 << 40},
		Status: &gvpb.WorkerStatus{CpusUsed: 4000, ExitAnnouncedAt: 99},
	}
	w := WorkerFromProto(wire)
	if w.Kind != KindWorker || w.Version != Version {
		t.Errorf("bad wrapper: kind %q version %q", w.Kind, w.Version)
	}
	if w.Status == nil || w.Status.CpusUsed != 4000 {
		t.Fatalf("status not mapped: %+v", w.Status)
	}

	back := w.ToProto()
	if !reflect.DeepEqual(back.Metadata, wire.Metadata) {
		t.Errorf("metadata mismatch:\n got %+v\nwant %+v", back.Metadata, wire.Metadata)
	}
	if !reflect.DeepEqual(back.Spec, wire.Spec) {
		t.Errorf("spec mismatch:\n got %+v\nwant %+v", back.Spec, wire.Spec)
	}
}

func TestTaskConversion(t *testing.T) {
	wire := &gvpb.Task{
		Metadata: &gvpb.Metadata{Id: "task-1", Creator: "gvlt1creator"},
		Spec: &gvpb.TaskSpec{
			Image:          "ubuntu:latest",
			Command:        []string{"echo"},
			Env:            []*gvpb.TaskEnv{{Name: "A", Value: "1"}},
			InputContexts:  []*gvpb.InputContext{{Source: "bafyin", Target: "/in"}},
			OutputContexts: []*gvpb.OutputContext{{Source: "/out", RetentionPeriod: 60}},
			Cpus:           1000,
			Memory:         1 << 30,
			Time:           3600,
			StoreStdout:    true,
		},
		Status: &gvpb.TaskStatus{
			State:           gvpb.TaskStateDone,
			ExitCode:        0,
			AssignedWorkers: []string{"worker-1"},
			Stdout:          "hi",
		},
	}
	task := TaskFromProto(wire)
	if task.Status.State != TaskStateDone {
		t.Errorf("state = %q, want Done", task.Status.State)
	}
	back := task.ToProto()
	if !reflect.DeepEqual(back.Spec, wire.Spec) {
		t.Errorf("spec mismatch:\n got %+v\nwant %+v", back.Spec, wire.Spec)
	}
}

func TestUnknownStatesMapToUnknown(t *testing.T) {
	task := TaskFromProto(&gvpb.Task{Status: &gvpb.TaskStatus{State: gvpb.TaskState(42)}})
	if task.Status.State != TaskStateUnknown {
		t.Errorf("got %q, want Unknown", task.Status.State)
	}

	wf := WorkflowFromProto(&gvpb.Workflow{Status: &gvpb.WorkflowStatus{State: gvpb.WorkflowState(-3)}})
	if wf.Status.State != WorkflowStateUnknown {
		t.Errorf("got %q, want Unknown", wf.Status.State)
	}
}

func TestTerminalStates(t *testing.T) {
	terminal := []TaskState{TaskStateDeclined, TaskStateDone, TaskStateFailed}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
	for _, s := range []TaskState{TaskStatePending, TaskStateRunning, TaskStateUnknown} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestWorkflowConversion(t *testing.T) {
	wire := &gvpb.Workflow{
		Metadata: &gvpb.Metadata{Id: "wf-1"},
		Spec: &gvpb.WorkflowSpec{Stages: []*gvpb.WorkflowStage{
			{Tasks: []*gvpb.TaskSpec{{Image: "prep:1", Cpus: 500}}},
			{Tasks: []*gvpb.TaskSpec{{Image: "crunch:1"}, {Image: "crunch:1"}}},
		}},
		Status: &gvpb.WorkflowStatus{
			State:        gvpb.WorkflowStateRunning,
			CurrentStage: 1,
			Stages: []*gvpb.WorkflowStageStatus{
				{TaskIds: []string{"t1"}, FinishedTasks: 1},
			},
		},
	}
	wf := WorkflowFromProto(wire)
	if len(wf.Spec.Stages) != 2 || len(wf.Spec.Stages[1].Tasks) != 2 {
		t.Fatalf("stages not mapped: %+v", wf.Spec)
	}
	if wf.Status.State != WorkflowStateRunning || wf.Status.CurrentStage != 1 {
		t.Errorf("status not mapped: %+v", wf.Status)
	}
	back := wf.ToProto()
	if !reflect.DeepEqual(back.Spec, wire.Spec) {
		t.Errorf("spec mismatch:\n got %+v\nwant %+v", back.Spec, wire.Spec)
	}
}

func TestPinConversion(t *testing.T) {
	wire := &gvpb.Pin{
		Metadata: &gvpb.Metadata{Id: "pin-1", Name: "dataset"},
		Spec:     &gvpb.PinSpec{Bytes: 10 << 30, Time: 86400, Redundancy: 3, FallbackUrls: []string{"https://m.example"}},
		Status: &gvpb.PinStatus{
			AssignedWorkers: []string{"worker-1"},
			WorkerAcks:      []*gvpb.PinAck{{Worker: "worker-1", BlockHeight: 7, Success: true}},
			Cid:             "bafydataset",
		},
	}
	pin := PinFromProto(wire)
	if pin.Status.Cid != "bafydataset" || len(pin.Status.WorkerAcks) != 1 {
		t.Fatalf("status not mapped: %+v", pin.Status)
	}
	back := pin.ToProto()
	if !reflect.DeepEqual(back.Spec, wire.Spec) {
		t.Errorf("spec mismatch:\n got %+v\nwant %+v", back.Spec, wire.Spec)
	}
}

func TestProofConversion(t *testing.T) {
	wire := &gvpb.Proof{
		Metadata: &gvpb.Metadata{Id: "proof-1"},
		Spec: &gvpb.ProofSpec{
			ProverImage:   "prover:2",
			VerifierImage: "verifier:2",
			ProverCommand: []string{"prove"},
			Cpus:          8000,
			Memory:        16 << 30,
		},
	}
	proof := ProofFromProto(wire)
	if proof.Spec.ProverImage != "prover:2" {
		t.Fatalf("spec not mapped: %+v", proof.Spec)
	}
	back := proof.SpecToProto()
	if !reflect.DeepEqual(back, wire.Spec) {
		t.Errorf("spec mismatch:\n got %+v\nwant %+v", back, wire.Spec)
	}
}
