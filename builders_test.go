package gevulot

import (
	"errors"
	"testing"

	"github.com/gevulot-network/gevulot-go/types"
)

func TestTaskBuilderDefaults(t *testing.T) {
	msg, err := NewTaskBuilder().
		Creator("gvlt1creator").
		Image("ghcr.io/acme/prover:v2").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if msg.Cpus != 1000 {
		t.Errorf("expected default of one core, got %d", msg.Cpus)
	}
	if msg.Memory != 1024*1024*1024 {
		t.Errorf("expected default of one gibibyte, got %d", msg.Memory)
	}
	if msg.Time != 3600 {
		t.Errorf("expected default of one hour, got %d", msg.Time)
	}
	if !msg.StoreStdout || !msg.StoreStderr {
		t.Error("expected stdout and stderr captured by default")
	}
}

func TestTaskBuilderQuantities(t *testing.T) {
	cpus, err := types.ParseQuantity("2cores")
	if err != nil {
		t.Fatal(err)
	}
	mem, err := types.ParseQuantity("2gib")
	if err != nil {
		t.Fatal(err)
	}
	limit, err := types.ParseQuantity("90min")
	if err != nil {
		t.Fatal(err)
	}

	msg, err := NewTaskBuilder().
		Image("img").
		Command("/bin/prove").
		Args("--level", "9").
		Env("RUST_LOG", "debug").
		InputContext("pin://cid1", "/input").
		OutputContext("/output", 86400).
		Cpus(cpus).
		Memory(mem).
		Time(limit).
		Tags("zk").
		Label("team", "research").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if msg.Cpus != 2000 {
		t.Errorf("expected 2000 millicores, got %d", msg.Cpus)
	}
	if msg.Memory != 2*1024*1024*1024 {
		t.Errorf("expected 2 gib, got %d", msg.Memory)
	}
	if msg.Time != 5400 {
		t.Errorf("expected 5400 seconds, got %d", msg.Time)
	}
	if len(msg.Env) != 1 || msg.Env[0].Name != "RUST_LOG" {
		t.Errorf("unexpected env: %+v", msg.Env)
	}
	if len(msg.InputContexts) != 1 || msg.InputContexts[0].Target != "/input" {
		t.Errorf("unexpected input contexts: %+v", msg.InputContexts)
	}
	if len(msg.OutputContexts) != 1 || msg.OutputContexts[0].RetentionPeriod != 86400 {
		t.Errorf("unexpected output contexts: %+v", msg.OutputContexts)
	}
}

func TestTaskBuilderRejectsMissingImage(t *testing.T) {
	_, err := NewTaskBuilder().Creator("gvlt1creator").Build()
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestWorkerBuilderValidation(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := NewWorkerBuilder().Cpus(8000).Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("no resources", func(t *testing.T) {
		_, err := NewWorkerBuilder().Name("node-1").Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("valid", func(t *testing.T) {
		mem, _ := types.ParseQuantity("128gib")
		msg, err := NewWorkerBuilder().
			Name("node-1").
			Cpus(32000).
			Gpus(4000).
			Memory(mem).
			Disk(mem).
			Label("gpu", "a100").
			Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if msg.Cpus != 32000 || msg.Gpus != 4000 {
			t.Errorf("unexpected resources: %+v", msg)
		}
	})
}

func TestPinBuilderValidation(t *testing.T) {
	t.Run("needs cid or fallback", func(t *testing.T) {
		_, err := NewPinBuilder().Bytes(1024).Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("needs size", func(t *testing.T) {
		_, err := NewPinBuilder().Cid("bafy123").Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("fallback urls suffice", func(t *testing.T) {
		size, _ := types.ParseQuantity("1gb")
		msg, err := NewPinBuilder().
			FallbackUrls("https://example.com/data.tar").
			Bytes(size).
			Time(86400).
			Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if msg.Redundancy != 1 {
			t.Errorf("expected default redundancy 1, got %d", msg.Redundancy)
		}
		if msg.Bytes != 1_000_000_000 {
			t.Errorf("expected 1gb in bytes, got %d", msg.Bytes)
		}
	})
}

func TestProofBuilderValidation(t *testing.T) {
	_, err := NewProofBuilder().ProverImage("prover").Build()
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec without a verifier, got %v", err)
	}

	msg, err := NewProofBuilder().
		ProverImage("prover").
		VerifierImage("verifier").
		ProverEnv("LEVEL", "9").
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if msg.Spec.Cpus != 1000 || msg.Spec.Time != 3600 {
		t.Errorf("unexpected defaults: %+v", msg.Spec)
	}
}

func TestWorkflowBuilderValidation(t *testing.T) {
	t.Run("no stages", func(t *testing.T) {
		_, err := NewWorkflowBuilder().Creator("gvlt1creator").Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("stage task missing image", func(t *testing.T) {
		_, err := NewWorkflowBuilder().Stage(NewTaskBuilder().Spec()).Build()
		if !errors.Is(err, ErrInvalidSpec) {
			t.Fatalf("expected ErrInvalidSpec, got %v", err)
		}
	})
	t.Run("valid pipeline", func(t *testing.T) {
		prove := NewTaskBuilder().Image("prover").Spec()
		verify := NewTaskBuilder().Image("verifier").Spec()
		msg, err := NewWorkflowBuilder().Stage(prove).Stage(verify).Build()
		if err != nil {
			t.Fatalf("build failed: %v", err)
		}
		if len(msg.Spec.Stages) != 2 {
			t.Fatalf("expected 2 stages, got %d", len(msg.Spec.Stages))
		}
		if msg.Spec.Stages[0].Tasks[0].Image != "prover" {
			t.Errorf("unexpected first stage: %+v", msg.Spec.Stages[0].Tasks[0])
		}
	})
}
