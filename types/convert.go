package types

import "github.com/gevulot-network/gevulot-go/gvpb"

// Conversions between the user-facing models and the wire structs.
// Every populated field survives a round trip. Enum values the client
// does not recognize decode to the Unknown variants; Unknown is never
// encoded back because statuses are authored by the ledger, not the
// client.

func taskStateFromProto(s gvpb.TaskState) TaskState {
	switch s {
	case gvpb.TaskStatePending:
		return TaskStatePending
	case gvpb.TaskStateRunning:
		return TaskStateRunning
	case gvpb.TaskStateDeclined:
		return TaskStateDeclined
	case gvpb.TaskStateDone:
		return TaskStateDone
	case gvpb.TaskStateFailed:
		return TaskStateFailed
	default:
		return TaskStateUnknown
	}
}

func workflowStateFromProto(s gvpb.WorkflowState) WorkflowState {
	switch s {
	case gvpb.WorkflowStatePending:
		return WorkflowStatePending
	case gvpb.WorkflowStateRunning:
		return WorkflowStateRunning
	case gvpb.WorkflowStateDone:
		return WorkflowStateDone
	case gvpb.WorkflowStateFailed:
		return WorkflowStateFailed
	default:
		return WorkflowStateUnknown
	}
}

func metadataFromProto(m *gvpb.Metadata) Metadata {
	if m == nil {
		return Metadata{}
	}
	out := Metadata{
		Id:          m.Id,
		Name:        m.Name,
		Creator:     m.Creator,
		Description: m.Desc,
		Tags:        m.Tags,
		WorkflowRef: m.WorkflowRef,
	}
	for _, l := range m.Labels {
		out.Labels = append(out.Labels, Label{Key: l.Key, Value: l.Value})
	}
	return out
}

func metadataToProto(m Metadata) *gvpb.Metadata {
	out := &gvpb.Metadata{
		Id:          m.Id,
		Name:        m.Name,
		Creator:     m.Creator,
		Desc:        m.Description,
		Tags:        m.Tags,
		WorkflowRef: m.WorkflowRef,
	}
	for _, l := range m.Labels {
		out.Labels = append(out.Labels, &gvpb.Label{Key: l.Key, Value: l.Value})
	}
	return out
}

func envFromProto(env []*gvpb.TaskEnv) []TaskEnv {
	var out []TaskEnv
	for _, e := range env {
		out = append(out, TaskEnv{Name: e.Name, Value: e.Value})
	}
	return out
}

func envToProto(env []TaskEnv) []*gvpb.TaskEnv {
	var out []*gvpb.TaskEnv
	for _, e := range env {
		out = append(out, &gvpb.TaskEnv{Name: e.Name, Value: e.Value})
	}
	return out
}

func inputContextsFromProto(ctxs []*gvpb.InputContext) []InputContext {
	var out []InputContext
	for _, c := range ctxs {
		out = append(out, InputContext{Source: c.Source, Target: c.Target})
	}
	return out
}

func inputContextsToProto(ctxs []InputContext) []*gvpb.InputContext {
	var out []*gvpb.InputContext
	for _, c := range ctxs {
		out = append(out, &gvpb.InputContext{Source: c.Source, Target: c.Target})
	}
	return out
}

// WorkerFromProto maps a wire worker into the user-facing model.
func WorkerFromProto(w *gvpb.Worker) Worker {
	out := Worker{
		Kind:     KindWorker,
		Version:  Version,
		Metadata: metadataFromProto(w.Metadata),
	}
	if w.Spec != nil {
		out.Spec = WorkerSpec{
			Cpus:   Quantity(w.Spec.Cpus),
			Gpus:   Quantity(w.Spec.Gpus),
			Memory: Quantity(w.Spec.Memory),
			Disk:   Quantity(w.Spec.Disk),
		}
	}
	if w.Status != nil {
		out.Status = &WorkerStatus{
			CpusUsed:        w.Status.CpusUsed,
			GpusUsed:        w.Status.GpusUsed,
			MemoryUsed:      w.Status.MemoryUsed,
			DiskUsed:        w.Status.DiskUsed,
			ExitAnnouncedAt: w.Status.ExitAnnouncedAt,
		}
	}
	return out
}

// ToProto maps the worker's client-authored fields back to the wire.
func (w Worker) ToProto() *gvpb.Worker {
	return &gvpb.Worker{
		Metadata: metadataToProto(w.Metadata),
		Spec: &gvpb.WorkerSpec{
			Cpus:   w.Spec.Cpus.Uint64(),
			Gpus:   w.Spec.Gpus.Uint64(),
			Memory: w.Spec.Memory.Uint64(),
			Disk:   w.Spec.Disk.Uint64(),
		},
	}
}

func taskSpecFromProto(s *gvpb.TaskSpec) TaskSpec {
	if s == nil {
		return TaskSpec{}
	}
	out := TaskSpec{
		Image:         s.Image,
		Command:       s.Command,
		Args:          s.Args,
		Env:           envFromProto(s.Env),
		InputContexts: inputContextsFromProto(s.InputContexts),
		Resources: TaskResources{
			Cpus:   Quantity(s.Cpus),
			Gpus:   Quantity(s.Gpus),
			Memory: Quantity(s.Memory),
			Time:   Quantity(s.Time),
		},
		StoreStdout: s.StoreStdout,
		StoreStderr: s.StoreStderr,
		WorkflowRef: s.WorkflowRef,
	}
	for _, c := range s.OutputContexts {
		out.OutputContexts = append(out.OutputContexts, OutputContext{
			Source:          c.Source,
			RetentionPeriod: c.RetentionPeriod,
		})
	}
	return out
}

func taskSpecToProto(s TaskSpec) *gvpb.TaskSpec {
	out := &gvpb.TaskSpec{
		Image:         s.Image,
		Command:       s.Command,
		Args:          s.Args,
		Env:           envToProto(s.Env),
		InputContexts: inputContextsToProto(s.InputContexts),
		Cpus:          s.Resources.Cpus.Uint64(),
		Gpus:          s.Resources.Gpus.Uint64(),
		Memory:        s.Resources.Memory.Uint64(),
		Time:          s.Resources.Time.Uint64(),
		StoreStdout:   s.StoreStdout,
		StoreStderr:   s.StoreStderr,
		WorkflowRef:   s.WorkflowRef,
	}
	for _, c := range s.OutputContexts {
		out.OutputContexts = append(out.OutputContexts, &gvpb.OutputContext{
			Source:          c.Source,
			RetentionPeriod: c.RetentionPeriod,
		})
	}
	return out
}

// TaskFromProto maps a wire task into the user-facing model.
func TaskFromProto(t *gvpb.Task) Task {
	out := Task{
		Kind:     KindTask,
		Version:  Version,
		Metadata: metadataFromProto(t.Metadata),
		Spec:     taskSpecFromProto(t.Spec),
	}
	if t.Status != nil {
		out.Status = &TaskStatus{
			State:           taskStateFromProto(t.Status.State),
			CreatedAt:       t.Status.CreatedAt,
			StartedAt:       t.Status.StartedAt,
			CompletedAt:     t.Status.CompletedAt,
			AssignedWorkers: t.Status.AssignedWorkers,
			ActiveWorker:    t.Status.ActiveWorker,
			ExitCode:        t.Status.ExitCode,
			OutputContexts:  t.Status.OutputContexts,
			Stdout:          t.Status.Stdout,
			Stderr:          t.Status.Stderr,
			Error:           t.Status.Error,
		}
	}
	return out
}

// ToProto maps the task's client-authored fields back to the wire.
func (t Task) ToProto() *gvpb.Task {
	return &gvpb.Task{
		Metadata: metadataToProto(t.Metadata),
		Spec:     taskSpecToProto(t.Spec),
	}
}

// WorkflowFromProto maps a wire workflow into the user-facing model.
func WorkflowFromProto(w *gvpb.Workflow) Workflow {
	out := Workflow{
		Kind:     KindWorkflow,
		Version:  Version,
		Metadata: metadataFromProto(w.Metadata),
	}
	if w.Spec != nil {
		for _, stage := range w.Spec.Stages {
			var s WorkflowStage
			for _, task := range stage.Tasks {
				s.Tasks = append(s.Tasks, taskSpecFromProto(task))
			}
			out.Spec.Stages = append(out.Spec.Stages, s)
		}
	}
	if w.Status != nil {
		status := &WorkflowStatus{
			State:        workflowStateFromProto(w.Status.State),
			CurrentStage: w.Status.CurrentStage,
		}
		for _, stage := range w.Status.Stages {
			status.Stages = append(status.Stages, WorkflowStageStatus{
				TaskIds:       stage.TaskIds,
				FinishedTasks: stage.FinishedTasks,
			})
		}
		out.Status = status
	}
	return out
}

// ToProto maps the workflow's client-authored fields back to the wire.
func (w Workflow) ToProto() *gvpb.Workflow {
	spec := new(gvpb.WorkflowSpec)
	for _, stage := range w.Spec.Stages {
		s := new(gvpb.WorkflowStage)
		for _, task := range stage.Tasks {
			s.Tasks = append(s.Tasks, taskSpecToProto(task))
		}
		spec.Stages = append(spec.Stages, s)
	}
	return &gvpb.Workflow{
		Metadata: metadataToProto(w.Metadata),
		Spec:     spec,
	}
}

// SpecToProto maps only the workflow spec, for MsgCreateWorkflow.
func (w Workflow) SpecToProto() *gvpb.WorkflowSpec {
	return w.ToProto().Spec
}

// ProofFromProto maps a wire proof into the user-facing model.
func ProofFromProto(p *gvpb.Proof) Proof {
	out := Proof{
		Kind:     KindProof,
		Version:  Version,
		Metadata: metadataFromProto(p.Metadata),
	}
	if p.Spec != nil {
		out.Spec = ProofSpec{
			ProverImage:     p.Spec.ProverImage,
			VerifierImage:   p.Spec.VerifierImage,
			ProverCommand:   p.Spec.ProverCommand,
			VerifierCommand: p.Spec.VerifierCommand,
			ProverEnv:       envFromProto(p.Spec.ProverEnv),
			VerifierEnv:     envFromProto(p.Spec.VerifierEnv),
			InputContexts:   inputContextsFromProto(p.Spec.InputContexts),
			Resources: TaskResources{
				Cpus:   Quantity(p.Spec.Cpus),
				Gpus:   Quantity(p.Spec.Gpus),
				Memory: Quantity(p.Spec.Memory),
				Time:   Quantity(p.Spec.Time),
			},
		}
	}
	return out
}

// SpecToProto maps the proof spec to the wire, for MsgCreateProof.
func (p Proof) SpecToProto() *gvpb.ProofSpec {
	return &gvpb.ProofSpec{
		ProverImage:     p.Spec.ProverImage,
		VerifierImage:   p.Spec.VerifierImage,
		ProverCommand:   p.Spec.ProverCommand,
		VerifierCommand: p.Spec.VerifierCommand,
		ProverEnv:       envToProto(p.Spec.ProverEnv),
		VerifierEnv:     envToProto(p.Spec.VerifierEnv),
		InputContexts:   inputContextsToProto(p.Spec.InputContexts),
		Cpus:            p.Spec.Resources.Cpus.Uint64(),
		Gpus:            p.Spec.Resources.Gpus.Uint64(),
		Memory:          p.Spec.Resources.Memory.Uint64(),
		Time:            p.Spec.Resources.Time.Uint64(),
	}
}

// PinFromProto maps a wire pin into the user-facing model.
func PinFromProto(p *gvpb.Pin) Pin {
	out := Pin{
		Kind:     KindPin,
		Version:  Version,
		Metadata: metadataFromProto(p.Metadata),
	}
	if p.Spec != nil {
		out.Spec = PinSpec{
			Bytes:        Quantity(p.Spec.Bytes),
			Time:         Quantity(p.Spec.Time),
			Redundancy:   p.Spec.Redundancy,
			FallbackUrls: p.Spec.FallbackUrls,
		}
	}
	if p.Status != nil {
		status := &PinStatus{
			AssignedWorkers: p.Status.AssignedWorkers,
			Cid:             p.Status.Cid,
		}
		for _, a := range p.Status.WorkerAcks {
			status.WorkerAcks = append(status.WorkerAcks, PinAck{
				Worker:      a.Worker,
				BlockHeight: a.BlockHeight,
				Success:     a.Success,
				Error:       a.Error,
			})
		}
		out.Status = status
	}
	return out
}

// ToProto maps the pin's client-authored fields back to the wire.
func (p Pin) ToProto() *gvpb.Pin {
	return &gvpb.Pin{
		Metadata: metadataToProto(p.Metadata),
		Spec: &gvpb.PinSpec{
			Bytes:        p.Spec.Bytes.Uint64(),
			Time:         p.Spec.Time.Uint64(),
			Redundancy:   p.Spec.Redundancy,
			FallbackUrls: p.Spec.FallbackUrls,
		},
	}
}
