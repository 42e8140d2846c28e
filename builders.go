package gevulot

import (
	"fmt"

	"github.com/gevulot-network/gevulot-go/gvpb"
	"github.com/gevulot-network/gevulot-go/types"
)

// Builders assemble well-formed creation messages with the network's
// conventional defaults. They check shape only (required fields present,
// resource amounts sane); whether the ledger accepts the message is a
// separate question answered at broadcast time.
//
// Resource setters take types.Quantity, so callers can feed parsed
// human-readable amounts:
//
//	mem, _ := types.ParseQuantity("2gib")
//	msg, err := gevulot.NewTaskBuilder().
//		Image("ghcr.io/acme/prover:v2").
//		Memory(mem).
//		Build()

// TaskBuilder builds a MsgCreateTask. Zero-value defaults are one CPU
// core, one gibibyte of memory, a one hour time limit and captured
// stdout/stderr.
type TaskBuilder struct {
	msg gvpb.MsgCreateTask
}

func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{msg: gvpb.MsgCreateTask{
		Cpus:        1000,
		Memory:      1024 * 1024 * 1024,
		Time:        3600,
		StoreStdout: true,
		StoreStderr: true,
	}}
}

func (b *TaskBuilder) Creator(addr string) *TaskBuilder { b.msg.Creator = addr; return b }
func (b *TaskBuilder) Image(image string) *TaskBuilder  { b.msg.Image = image; return b }

func (b *TaskBuilder) Command(cmd ...string) *TaskBuilder { b.msg.Command = cmd; return b }
func (b *TaskBuilder) Args(args ...string) *TaskBuilder   { b.msg.Args = args; return b }

func (b *TaskBuilder) Env(name, value string) *TaskBuilder {
	b.msg.Env = append(b.msg.Env, &gvpb.TaskEnv{Name: name, Value: value})
	return b
}

func (b *TaskBuilder) InputContext(source, target string) *TaskBuilder {
	b.msg.InputContexts = append(b.msg.InputContexts, &gvpb.InputContext{Source: source, Target: target})
	return b
}

func (b *TaskBuilder) OutputContext(source string, retentionPeriod int64) *TaskBuilder {
	b.msg.OutputContexts = append(b.msg.OutputContexts, &gvpb.OutputContext{Source: source, RetentionPeriod: retentionPeriod})
	return b
}

func (b *TaskBuilder) Cpus(q types.Quantity) *TaskBuilder   { b.msg.Cpus = uint64(q); return b }
func (b *TaskBuilder) Gpus(q types.Quantity) *TaskBuilder   { b.msg.Gpus = uint64(q); return b }
func (b *TaskBuilder) Memory(q types.Quantity) *TaskBuilder { b.msg.Memory = uint64(q); return b }
func (b *TaskBuilder) Time(q types.Quantity) *TaskBuilder   { b.msg.Time = uint64(q); return b }

func (b *TaskBuilder) StoreStdout(v bool) *TaskBuilder { b.msg.StoreStdout = v; return b }
func (b *TaskBuilder) StoreStderr(v bool) *TaskBuilder { b.msg.StoreStderr = v; return b }

func (b *TaskBuilder) Tags(tags ...string) *TaskBuilder { b.msg.Tags = tags; return b }

func (b *TaskBuilder) Label(key, value string) *TaskBuilder {
	b.msg.Labels = append(b.msg.Labels, &gvpb.Label{Key: key, Value: value})
	return b
}

func (b *TaskBuilder) Build() (*gvpb.MsgCreateTask, error) {
	if b.msg.Image == "" {
		return nil, fmt.Errorf("task: image is required: %w", ErrInvalidSpec)
	}
	if b.msg.Time == 0 {
		return nil, fmt.Errorf("task: time limit must be positive: %w", ErrInvalidSpec)
	}
	msg := b.msg
	return &msg, nil
}

// Spec returns the builder's content as a workflow stage task. The
// creator field does not apply there; the workflow's creator governs.
func (b *TaskBuilder) Spec() *gvpb.TaskSpec {
	return &gvpb.TaskSpec{
		Image:          b.msg.Image,
		Command:        b.msg.Command,
		Args:           b.msg.Args,
		Env:            b.msg.Env,
		InputContexts:  b.msg.InputContexts,
		OutputContexts: b.msg.OutputContexts,
		Cpus:           b.msg.Cpus,
		Gpus:           b.msg.Gpus,
		Memory:         b.msg.Memory,
		Time:           b.msg.Time,
		StoreStdout:    b.msg.StoreStdout,
		StoreStderr:    b.msg.StoreStderr,
	}
}

// WorkerBuilder builds a MsgCreateWorker announcing a node's capacity.
type WorkerBuilder struct {
	msg gvpb.MsgCreateWorker
}

func NewWorkerBuilder() *WorkerBuilder { return &WorkerBuilder{} }

func (b *WorkerBuilder) Creator(addr string) *WorkerBuilder { b.msg.Creator = addr; return b }
func (b *WorkerBuilder) Name(name string) *WorkerBuilder    { b.msg.Name = name; return b }

func (b *WorkerBuilder) Description(desc string) *WorkerBuilder {
	b.msg.Description = desc
	return b
}

func (b *WorkerBuilder) Cpus(q types.Quantity) *WorkerBuilder   { b.msg.Cpus = uint64(q); return b }
func (b *WorkerBuilder) Gpus(q types.Quantity) *WorkerBuilder   { b.msg.Gpus = uint64(q); return b }
func (b *WorkerBuilder) Memory(q types.Quantity) *WorkerBuilder { b.msg.Memory = uint64(q); return b }
func (b *WorkerBuilder) Disk(q types.Quantity) *WorkerBuilder   { b.msg.Disk = uint64(q); return b }

func (b *WorkerBuilder) Tags(tags ...string) *WorkerBuilder { b.msg.Tags = tags; return b }

func (b *WorkerBuilder) Label(key, value string) *WorkerBuilder {
	b.msg.Labels = append(b.msg.Labels, &gvpb.Label{Key: key, Value: value})
	return b
}

func (b *WorkerBuilder) Build() (*gvpb.MsgCreateWorker, error) {
	if b.msg.Name == "" {
		return nil, fmt.Errorf("worker: name is required: %w", ErrInvalidSpec)
	}
	if b.msg.Cpus == 0 && b.msg.Gpus == 0 {
		return nil, fmt.Errorf("worker: must advertise cpus or gpus: %w", ErrInvalidSpec)
	}
	msg := b.msg
	return &msg, nil
}

// PinBuilder builds a MsgCreatePin. The default redundancy is a single
// copy. Either a cid or at least one fallback URL must identify the
// data.
type PinBuilder struct {
	msg gvpb.MsgCreatePin
}

func NewPinBuilder() *PinBuilder {
	return &PinBuilder{msg: gvpb.MsgCreatePin{Redundancy: 1}}
}

func (b *PinBuilder) Creator(addr string) *PinBuilder { b.msg.Creator = addr; return b }
func (b *PinBuilder) Cid(cid string) *PinBuilder      { b.msg.Cid = cid; return b }
func (b *PinBuilder) Name(name string) *PinBuilder    { b.msg.Name = name; return b }

func (b *PinBuilder) Description(desc string) *PinBuilder { b.msg.Description = desc; return b }

func (b *PinBuilder) Bytes(q types.Quantity) *PinBuilder { b.msg.Bytes = uint64(q); return b }
func (b *PinBuilder) Time(q types.Quantity) *PinBuilder  { b.msg.Time = uint64(q); return b }

func (b *PinBuilder) Redundancy(n uint64) *PinBuilder { b.msg.Redundancy = n; return b }

func (b *PinBuilder) FallbackUrls(urls ...string) *PinBuilder {
	b.msg.FallbackUrls = urls
	return b
}

func (b *PinBuilder) Tags(tags ...string) *PinBuilder { b.msg.Tags = tags; return b }

func (b *PinBuilder) Label(key, value string) *PinBuilder {
	b.msg.Labels = append(b.msg.Labels, &gvpb.Label{Key: key, Value: value})
	return b
}

func (b *PinBuilder) Build() (*gvpb.MsgCreatePin, error) {
	if b.msg.Cid == "" && len(b.msg.FallbackUrls) == 0 {
		return nil, fmt.Errorf("pin: cid or fallback urls required: %w", ErrInvalidSpec)
	}
	if b.msg.Bytes == 0 {
		return nil, fmt.Errorf("pin: byte size is required: %w", ErrInvalidSpec)
	}
	if b.msg.Redundancy == 0 {
		return nil, fmt.Errorf("pin: redundancy must be positive: %w", ErrInvalidSpec)
	}
	msg := b.msg
	return &msg, nil
}

// ProofBuilder builds a MsgCreateProof pairing a prover image with a
// verifier image. Defaults follow the task builder.
type ProofBuilder struct {
	msg gvpb.MsgCreateProof
}

func NewProofBuilder() *ProofBuilder {
	return &ProofBuilder{msg: gvpb.MsgCreateProof{Spec: &gvpb.ProofSpec{
		Cpus:   1000,
		Memory: 1024 * 1024 * 1024,
		Time:   3600,
	}}}
}

func (b *ProofBuilder) Creator(addr string) *ProofBuilder { b.msg.Creator = addr; return b }

func (b *ProofBuilder) ProverImage(image string) *ProofBuilder {
	b.msg.Spec.ProverImage = image
	return b
}

func (b *ProofBuilder) VerifierImage(image string) *ProofBuilder {
	b.msg.Spec.VerifierImage = image
	return b
}

func (b *ProofBuilder) ProverCommand(cmd ...string) *ProofBuilder {
	b.msg.Spec.ProverCommand = cmd
	return b
}

func (b *ProofBuilder) VerifierCommand(cmd ...string) *ProofBuilder {
	b.msg.Spec.VerifierCommand = cmd
	return b
}

func (b *ProofBuilder) ProverEnv(name, value string) *ProofBuilder {
	b.msg.Spec.ProverEnv = append(b.msg.Spec.ProverEnv, &gvpb.TaskEnv{Name: name, Value: value})
	return b
}

func (b *ProofBuilder) VerifierEnv(name, value string) *ProofBuilder {
	b.msg.Spec.VerifierEnv = append(b.msg.Spec.VerifierEnv, &gvpb.TaskEnv{Name: name, Value: value})
	return b
}

func (b *ProofBuilder) InputContext(source, target string) *ProofBuilder {
	b.msg.Spec.InputContexts = append(b.msg.Spec.InputContexts, &gvpb.InputContext{Source: source, Target: target})
	return b
}

func (b *ProofBuilder) Cpus(q types.Quantity) *ProofBuilder { b.msg.Spec.Cpus = uint64(q); return b }
func (b *ProofBuilder) Gpus(q types.Quantity) *ProofBuilder { b.msg.Spec.Gpus = uint64(q); return b }

func (b *ProofBuilder) Memory(q types.Quantity) *ProofBuilder {
	b.msg.Spec.Memory = uint64(q)
	return b
}

func (b *ProofBuilder) Time(q types.Quantity) *ProofBuilder { b.msg.Spec.Time = uint64(q); return b }

func (b *ProofBuilder) Tags(tags ...string) *ProofBuilder { b.msg.Tags = tags; return b }

func (b *ProofBuilder) Label(key, value string) *ProofBuilder {
	b.msg.Labels = append(b.msg.Labels, &gvpb.Label{Key: key, Value: value})
	return b
}

func (b *ProofBuilder) Build() (*gvpb.MsgCreateProof, error) {
	if b.msg.Spec.ProverImage == "" {
		return nil, fmt.Errorf("proof: prover image is required: %w", ErrInvalidSpec)
	}
	if b.msg.Spec.VerifierImage == "" {
		return nil, fmt.Errorf("proof: verifier image is required: %w", ErrInvalidSpec)
	}
	msg := b.msg
	spec := *b.msg.Spec
	msg.Spec = &spec
	return &msg, nil
}

// WorkflowBuilder builds a MsgCreateWorkflow out of ordered stages.
// Stages run sequentially; tasks within a stage run in parallel.
type WorkflowBuilder struct {
	msg gvpb.MsgCreateWorkflow
}

func NewWorkflowBuilder() *WorkflowBuilder {
	return &WorkflowBuilder{msg: gvpb.MsgCreateWorkflow{Spec: &gvpb.WorkflowSpec{}}}
}

func (b *WorkflowBuilder) Creator(addr string) *WorkflowBuilder { b.msg.Creator = addr; return b }

func (b *WorkflowBuilder) Stage(tasks ...*gvpb.TaskSpec) *WorkflowBuilder {
	b.msg.Spec.Stages = append(b.msg.Spec.Stages, &gvpb.WorkflowStage{Tasks: tasks})
	return b
}

func (b *WorkflowBuilder) Tags(tags ...string) *WorkflowBuilder { b.msg.Tags = tags; return b }

func (b *WorkflowBuilder) Label(key, value string) *WorkflowBuilder {
	b.msg.Labels = append(b.msg.Labels, &gvpb.Label{Key: key, Value: value})
	return b
}

func (b *WorkflowBuilder) Build() (*gvpb.MsgCreateWorkflow, error) {
	if len(b.msg.Spec.Stages) == 0 {
		return nil, fmt.Errorf("workflow: at least one stage is required: %w", ErrInvalidSpec)
	}
	for i, stage := range b.msg.Spec.Stages {
		if len(stage.Tasks) == 0 {
			return nil, fmt.Errorf("workflow: stage %d has no tasks: %w", i, ErrInvalidSpec)
		}
		for _, t := range stage.Tasks {
			if t.Image == "" {
				return nil, fmt.Errorf("workflow: stage %d has a task without an image: %w", i, ErrInvalidSpec)
			}
		}
	}
	msg := b.msg
	spec := *b.msg.Spec
	msg.Spec = &spec
	return &msg, nil
}
