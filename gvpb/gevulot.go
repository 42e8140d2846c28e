package gvpb

import "google.golang.org/protobuf/encoding/protowire"

// Entity messages of the gevulot.gevulot module: workers, tasks,
// workflows, proofs and pins, each split into metadata, a user-supplied
// spec and a ledger-maintained status.

// TaskState mirrors the on-chain task state enum. Values outside the
// known range are preserved as-is so newer ledger versions decode
// without loss.
type TaskState int32

const (
	TaskStatePending  TaskState = 0
	TaskStateRunning  TaskState = 1
	TaskStateDeclined TaskState = 2
	TaskStateDone     TaskState = 3
	TaskStateFailed   TaskState = 4
)

// WorkflowState mirrors the on-chain workflow state enum.
type WorkflowState int32

const (
	WorkflowStatePending WorkflowState = 0
	WorkflowStateRunning WorkflowState = 1
	WorkflowStateDone    WorkflowState = 2
	WorkflowStateFailed  WorkflowState = 3
)

// Label is a key/value pair attached to entity metadata.
type Label struct {
	Key   string
	Value string
}

func (m *Label) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Label) append(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	b = appendString(b, 2, m.Value)
	return b
}

func (m *Label) Unmarshal(data []byte) error {
	*m = Label{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Label", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Key, n, err = consumeString(data, typ)
		case 2:
			m.Value, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Label", err)
		}
		data = data[n:]
	}
	return nil
}

// Metadata is shared by every entity kind.
type Metadata struct {
	Id          string
	Name        string
	Creator     string
	Desc        string
	Tags        []string
	Labels      []*Label
	WorkflowRef string
}

func (m *Metadata) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Metadata) append(b []byte) []byte {
	b = appendString(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Creator)
	b = appendString(b, 4, m.Desc)
	b = appendStrings(b, 5, m.Tags)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 6, l.append(nil))
	}
	b = appendString(b, 7, m.WorkflowRef)
	return b
}

func (m *Metadata) Unmarshal(data []byte) error {
	*m = Metadata{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Metadata", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Id, n, err = consumeString(data, typ)
		case 2:
			m.Name, n, err = consumeString(data, typ)
		case 3:
			m.Creator, n, err = consumeString(data, typ)
		case 4:
			m.Desc, n, err = consumeString(data, typ)
		case 5:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		case 6:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		case 7:
			m.WorkflowRef, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Metadata", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkerSpec declares the resources a worker offers.
type WorkerSpec struct {
	Cpus   uint64
	Gpus   uint64
	Memory uint64
	Disk   uint64
}

func (m *WorkerSpec) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkerSpec) append(b []byte) []byte {
	b = appendUint64(b, 1, m.Cpus)
	b = appendUint64(b, 2, m.Gpus)
	b = appendUint64(b, 3, m.Memory)
	b = appendUint64(b, 4, m.Disk)
	return b
}

func (m *WorkerSpec) Unmarshal(data []byte) error {
	*m = WorkerSpec{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkerSpec", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 2:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 3:
			m.Memory, n, err = consumeUint64(data, typ)
		case 4:
			m.Disk, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkerSpec", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkerStatus tracks current utilization and the announced exit
// height, all maintained by the ledger.
type WorkerStatus struct {
	CpusUsed        uint64
	GpusUsed        uint64
	MemoryUsed      uint64
	DiskUsed        uint64
	ExitAnnouncedAt int64
}

func (m *WorkerStatus) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkerStatus) append(b []byte) []byte {
	b = appendUint64(b, 1, m.CpusUsed)
	b = appendUint64(b, 2, m.GpusUsed)
	b = appendUint64(b, 3, m.MemoryUsed)
	b = appendUint64(b, 4, m.DiskUsed)
	b = appendInt64(b, 5, m.ExitAnnouncedAt)
	return b
}

func (m *WorkerStatus) Unmarshal(data []byte) error {
	*m = WorkerStatus{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkerStatus", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.CpusUsed, n, err = consumeUint64(data, typ)
		case 2:
			m.GpusUsed, n, err = consumeUint64(data, typ)
		case 3:
			m.MemoryUsed, n, err = consumeUint64(data, typ)
		case 4:
			m.DiskUsed, n, err = consumeUint64(data, typ)
		case 5:
			m.ExitAnnouncedAt, n, err = consumeInt64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkerStatus", err)
		}
		data = data[n:]
	}
	return nil
}

// Worker is a registered compute provider.
type Worker struct {
	Metadata *Metadata
	Spec     *WorkerSpec
	Status   *WorkerStatus
}

func (m *Worker) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Worker) append(b []byte) []byte {
	if m.Metadata != nil {
		b = appendEmbedded(b, 1, m.Metadata.append(nil))
	}
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	if m.Status != nil {
		b = appendEmbedded(b, 3, m.Status.append(nil))
	}
	return b
}

func (m *Worker) Unmarshal(data []byte) error {
	*m = Worker{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Worker", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Metadata = new(Metadata)
			n, err = consumeEmbedded(data, typ, m.Metadata)
		case 2:
			m.Spec = new(WorkerSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			m.Status = new(WorkerStatus)
			n, err = consumeEmbedded(data, typ, m.Status)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Worker", err)
		}
		data = data[n:]
	}
	return nil
}

// TaskEnv is one environment variable of a task container.
type TaskEnv struct {
	Name  string
	Value string
}

func (m *TaskEnv) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TaskEnv) append(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Value)
	return b
}

func (m *TaskEnv) Unmarshal(data []byte) error {
	*m = TaskEnv{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TaskEnv", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Name, n, err = consumeString(data, typ)
		case 2:
			m.Value, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TaskEnv", err)
		}
		data = data[n:]
	}
	return nil
}

// InputContext mounts a pinned data source into a task.
type InputContext struct {
	Source string
	Target string
}

func (m *InputContext) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *InputContext) append(b []byte) []byte {
	b = appendString(b, 1, m.Source)
	b = appendString(b, 2, m.Target)
	return b
}

func (m *InputContext) Unmarshal(data []byte) error {
	*m = InputContext{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("InputContext", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Source, n, err = consumeString(data, typ)
		case 2:
			m.Target, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("InputContext", err)
		}
		data = data[n:]
	}
	return nil
}

// OutputContext declares a path whose contents are pinned after the
// task finishes, retained for RetentionPeriod seconds.
type OutputContext struct {
	Source          string
	RetentionPeriod int64
}

func (m *OutputContext) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *OutputContext) append(b []byte) []byte {
	b = appendString(b, 1, m.Source)
	b = appendInt64(b, 2, m.RetentionPeriod)
	return b
}

func (m *OutputContext) Unmarshal(data []byte) error {
	*m = OutputContext{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("OutputContext", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Source, n, err = consumeString(data, typ)
		case 2:
			m.RetentionPeriod, n, err = consumeInt64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("OutputContext", err)
		}
		data = data[n:]
	}
	return nil
}

// TaskSpec is the user-declared shape of a task.
type TaskSpec struct {
	Image          string
	Command        []string
	Args           []string
	Env            []*TaskEnv
	InputContexts  []*InputContext
	OutputContexts []*OutputContext
	Cpus           uint64
	Gpus           uint64
	Memory         uint64
	Time           uint64
	StoreStdout    bool
	StoreStderr    bool
	WorkflowRef    string
}

func (m *TaskSpec) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TaskSpec) append(b []byte) []byte {
	b = appendString(b, 1, m.Image)
	b = appendStrings(b, 2, m.Command)
	b = appendStrings(b, 3, m.Args)
	for _, e := range m.Env {
		b = appendEmbedded(b, 4, e.append(nil))
	}
	for _, c := range m.InputContexts {
		b = appendEmbedded(b, 5, c.append(nil))
	}
	for _, c := range m.OutputContexts {
		b = appendEmbedded(b, 6, c.append(nil))
	}
	b = appendUint64(b, 7, m.Cpus)
	b = appendUint64(b, 8, m.Gpus)
	b = appendUint64(b, 9, m.Memory)
	b = appendUint64(b, 10, m.Time)
	b = appendBool(b, 11, m.StoreStdout)
	b = appendBool(b, 12, m.StoreStderr)
	b = appendString(b, 13, m.WorkflowRef)
	return b
}

func (m *TaskSpec) Unmarshal(data []byte) error {
	*m = TaskSpec{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TaskSpec", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Image, n, err = consumeString(data, typ)
		case 2:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Command = append(m.Command, v)
			}
		case 3:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Args = append(m.Args, v)
			}
		case 4:
			e := new(TaskEnv)
			n, err = consumeEmbedded(data, typ, e)
			if err == nil {
				m.Env = append(m.Env, e)
			}
		case 5:
			c := new(InputContext)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.InputContexts = append(m.InputContexts, c)
			}
		case 6:
			c := new(OutputContext)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.OutputContexts = append(m.OutputContexts, c)
			}
		case 7:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 8:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 9:
			m.Memory, n, err = consumeUint64(data, typ)
		case 10:
			m.Time, n, err = consumeUint64(data, typ)
		case 11:
			m.StoreStdout, n, err = consumeBool(data, typ)
		case 12:
			m.StoreStderr, n, err = consumeBool(data, typ)
		case 13:
			m.WorkflowRef, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TaskSpec", err)
		}
		data = data[n:]
	}
	return nil
}

// TaskStatus is maintained by the ledger as the task progresses.
type TaskStatus struct {
	State           TaskState
	CreatedAt       uint64
	StartedAt       uint64
	CompletedAt     uint64
	AssignedWorkers []string
	ActiveWorker    string
	ExitCode        int64
	OutputContexts  []string
	Stdout          string
	Stderr          string
	Error           string
}

func (m *TaskStatus) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TaskStatus) append(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.State))
	b = appendUint64(b, 2, m.CreatedAt)
	b = appendUint64(b, 3, m.StartedAt)
	b = appendUint64(b, 4, m.CompletedAt)
	b = appendStrings(b, 5, m.AssignedWorkers)
	b = appendString(b, 6, m.ActiveWorker)
	b = appendInt64(b, 7, m.ExitCode)
	b = appendStrings(b, 8, m.OutputContexts)
	b = appendString(b, 9, m.Stdout)
	b = appendString(b, 10, m.Stderr)
	b = appendString(b, 11, m.Error)
	return b
}

func (m *TaskStatus) Unmarshal(data []byte) error {
	*m = TaskStatus{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TaskStatus", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			var v int32
			v, n, err = consumeInt32(data, typ)
			m.State = TaskState(v)
		case 2:
			m.CreatedAt, n, err = consumeUint64(data, typ)
		case 3:
			m.StartedAt, n, err = consumeUint64(data, typ)
		case 4:
			m.CompletedAt, n, err = consumeUint64(data, typ)
		case 5:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.AssignedWorkers = append(m.AssignedWorkers, v)
			}
		case 6:
			m.ActiveWorker, n, err = consumeString(data, typ)
		case 7:
			m.ExitCode, n, err = consumeInt64(data, typ)
		case 8:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.OutputContexts = append(m.OutputContexts, v)
			}
		case 9:
			m.Stdout, n, err = consumeString(data, typ)
		case 10:
			m.Stderr, n, err = consumeString(data, typ)
		case 11:
			m.Error, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TaskStatus", err)
		}
		data = data[n:]
	}
	return nil
}

// Task is a unit of compute scheduled onto a worker.
type Task struct {
	Metadata *Metadata
	Spec     *TaskSpec
	Status   *TaskStatus
}

func (m *Task) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Task) append(b []byte) []byte {
	if m.Metadata != nil {
		b = appendEmbedded(b, 1, m.Metadata.append(nil))
	}
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	if m.Status != nil {
		b = appendEmbedded(b, 3, m.Status.append(nil))
	}
	return b
}

func (m *Task) Unmarshal(data []byte) error {
	*m = Task{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Task", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Metadata = new(Metadata)
			n, err = consumeEmbedded(data, typ, m.Metadata)
		case 2:
			m.Spec = new(TaskSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			m.Status = new(TaskStatus)
			n, err = consumeEmbedded(data, typ, m.Status)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Task", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkflowStage groups the tasks that run concurrently in one stage.
type WorkflowStage struct {
	Tasks []*TaskSpec
}

func (m *WorkflowStage) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkflowStage) append(b []byte) []byte {
	for _, t := range m.Tasks {
		b = appendEmbedded(b, 1, t.append(nil))
	}
	return b
}

func (m *WorkflowStage) Unmarshal(data []byte) error {
	*m = WorkflowStage{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkflowStage", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			t := new(TaskSpec)
			n, err = consumeEmbedded(data, typ, t)
			if err == nil {
				m.Tasks = append(m.Tasks, t)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkflowStage", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkflowSpec is an ordered pipeline of stages.
type WorkflowSpec struct {
	Stages []*WorkflowStage
}

func (m *WorkflowSpec) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkflowSpec) append(b []byte) []byte {
	for _, s := range m.Stages {
		b = appendEmbedded(b, 1, s.append(nil))
	}
	return b
}

func (m *WorkflowSpec) Unmarshal(data []byte) error {
	*m = WorkflowSpec{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkflowSpec", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			s := new(WorkflowStage)
			n, err = consumeEmbedded(data, typ, s)
			if err == nil {
				m.Stages = append(m.Stages, s)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkflowSpec", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkflowStageStatus tracks progress of one stage.
type WorkflowStageStatus struct {
	TaskIds       []string
	FinishedTasks uint64
}

func (m *WorkflowStageStatus) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkflowStageStatus) append(b []byte) []byte {
	b = appendStrings(b, 1, m.TaskIds)
	b = appendUint64(b, 2, m.FinishedTasks)
	return b
}

func (m *WorkflowStageStatus) Unmarshal(data []byte) error {
	*m = WorkflowStageStatus{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkflowStageStatus", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.TaskIds = append(m.TaskIds, v)
			}
		case 2:
			m.FinishedTasks, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkflowStageStatus", err)
		}
		data = data[n:]
	}
	return nil
}

// WorkflowStatus is maintained by the ledger as stages complete.
type WorkflowStatus struct {
	State        WorkflowState
	CurrentStage uint64
	Stages       []*WorkflowStageStatus
}

func (m *WorkflowStatus) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *WorkflowStatus) append(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.State))
	b = appendUint64(b, 2, m.CurrentStage)
	for _, s := range m.Stages {
		b = appendEmbedded(b, 3, s.append(nil))
	}
	return b
}

func (m *WorkflowStatus) Unmarshal(data []byte) error {
	*m = WorkflowStatus{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("WorkflowStatus", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			var v int32
			v, n, err = consumeInt32(data, typ)
			m.State = WorkflowState(v)
		case 2:
			m.CurrentStage, n, err = consumeUint64(data, typ)
		case 3:
			s := new(WorkflowStageStatus)
			n, err = consumeEmbedded(data, typ, s)
			if err == nil {
				m.Stages = append(m.Stages, s)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("WorkflowStatus", err)
		}
		data = data[n:]
	}
	return nil
}

// Workflow is a staged pipeline of tasks.
type Workflow struct {
	Metadata *Metadata
	Spec     *WorkflowSpec
	Status   *WorkflowStatus
}

func (m *Workflow) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Workflow) append(b []byte) []byte {
	if m.Metadata != nil {
		b = appendEmbedded(b, 1, m.Metadata.append(nil))
	}
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	if m.Status != nil {
		b = appendEmbedded(b, 3, m.Status.append(nil))
	}
	return b
}

func (m *Workflow) Unmarshal(data []byte) error {
	*m = Workflow{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Workflow", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Metadata = new(Metadata)
			n, err = consumeEmbedded(data, typ, m.Metadata)
		case 2:
			m.Spec = new(WorkflowSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			m.Status = new(WorkflowStatus)
			n, err = consumeEmbedded(data, typ, m.Status)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Workflow", err)
		}
		data = data[n:]
	}
	return nil
}

// ProofSpec pairs a prover image with the verifier that checks its
// output.
type ProofSpec struct {
	ProverImage     string
	VerifierImage   string
	ProverCommand   []string
	VerifierCommand []string
	ProverEnv       []*TaskEnv
	VerifierEnv     []*TaskEnv
	InputContexts   []*InputContext
	Cpus            uint64
	Gpus            uint64
	Memory          uint64
	Time            uint64
}

func (m *ProofSpec) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *ProofSpec) append(b []byte) []byte {
	b = appendString(b, 1, m.ProverImage)
	b = appendString(b, 2, m.VerifierImage)
	b = appendStrings(b, 3, m.ProverCommand)
	b = appendStrings(b, 4, m.VerifierCommand)
	for _, e := range m.ProverEnv {
		b = appendEmbedded(b, 5, e.append(nil))
	}
	for _, e := range m.VerifierEnv {
		b = appendEmbedded(b, 6, e.append(nil))
	}
	for _, c := range m.InputContexts {
		b = appendEmbedded(b, 7, c.append(nil))
	}
	b = appendUint64(b, 8, m.Cpus)
	b = appendUint64(b, 9, m.Gpus)
	b = appendUint64(b, 10, m.Memory)
	b = appendUint64(b, 11, m.Time)
	return b
}

func (m *ProofSpec) Unmarshal(data []byte) error {
	*m = ProofSpec{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("ProofSpec", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProverImage, n, err = consumeString(data, typ)
		case 2:
			m.VerifierImage, n, err = consumeString(data, typ)
		case 3:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.ProverCommand = append(m.ProverCommand, v)
			}
		case 4:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.VerifierCommand = append(m.VerifierCommand, v)
			}
		case 5:
			e := new(TaskEnv)
			n, err = consumeEmbedded(data, typ, e)
			if err == nil {
				m.ProverEnv = append(m.ProverEnv, e)
			}
		case 6:
			e := new(TaskEnv)
			n, err = consumeEmbedded(data, typ, e)
			if err == nil {
				m.VerifierEnv = append(m.VerifierEnv, e)
			}
		case 7:
			c := new(InputContext)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.InputContexts = append(m.InputContexts, c)
			}
		case 8:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 9:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 10:
			m.Memory, n, err = consumeUint64(data, typ)
		case 11:
			m.Time, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("ProofSpec", err)
		}
		data = data[n:]
	}
	return nil
}

// ProofStatus carries no fields today; the ledger reserves it.
type ProofStatus struct {
	emptyMessage
}

// Proof is a prover/verifier pair registered on the ledger.
type Proof struct {
	Metadata *Metadata
	Spec     *ProofSpec
	Status   *ProofStatus
}

func (m *Proof) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Proof) append(b []byte) []byte {
	if m.Metadata != nil {
		b = appendEmbedded(b, 1, m.Metadata.append(nil))
	}
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	if m.Status != nil {
		b = appendEmbedded(b, 3, nil)
	}
	return b
}

func (m *Proof) Unmarshal(data []byte) error {
	*m = Proof{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Proof", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Metadata = new(Metadata)
			n, err = consumeEmbedded(data, typ, m.Metadata)
		case 2:
			m.Spec = new(ProofSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			m.Status = new(ProofStatus)
			n, err = consumeEmbedded(data, typ, m.Status)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Proof", err)
		}
		data = data[n:]
	}
	return nil
}

// PinSpec declares how much data to pin, for how long, and with what
// redundancy.
type PinSpec struct {
	Bytes        uint64
	Time         uint64
	Redundancy   uint64
	FallbackUrls []string
}

func (m *PinSpec) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *PinSpec) append(b []byte) []byte {
	b = appendUint64(b, 1, m.Bytes)
	b = appendUint64(b, 2, m.Time)
	b = appendUint64(b, 3, m.Redundancy)
	b = appendStrings(b, 4, m.FallbackUrls)
	return b
}

func (m *PinSpec) Unmarshal(data []byte) error {
	*m = PinSpec{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PinSpec", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Bytes, n, err = consumeUint64(data, typ)
		case 2:
			m.Time, n, err = consumeUint64(data, typ)
		case 3:
			m.Redundancy, n, err = consumeUint64(data, typ)
		case 4:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.FallbackUrls = append(m.FallbackUrls, v)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PinSpec", err)
		}
		data = data[n:]
	}
	return nil
}

// PinAck records one worker's acknowledgement of pinned data.
type PinAck struct {
	Worker      string
	BlockHeight int64
	Success     bool
	Error       string
}

func (m *PinAck) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *PinAck) append(b []byte) []byte {
	b = appendString(b, 1, m.Worker)
	b = appendInt64(b, 2, m.BlockHeight)
	b = appendBool(b, 3, m.Success)
	b = appendString(b, 4, m.Error)
	return b
}

func (m *PinAck) Unmarshal(data []byte) error {
	*m = PinAck{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PinAck", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Worker, n, err = consumeString(data, typ)
		case 2:
			m.BlockHeight, n, err = consumeInt64(data, typ)
		case 3:
			m.Success, n, err = consumeBool(data, typ)
		case 4:
			m.Error, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PinAck", err)
		}
		data = data[n:]
	}
	return nil
}

// PinStatus tracks which workers hold the pinned data.
type PinStatus struct {
	AssignedWorkers []string
	WorkerAcks      []*PinAck
	Cid             string
}

func (m *PinStatus) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *PinStatus) append(b []byte) []byte {
	b = appendStrings(b, 1, m.AssignedWorkers)
	for _, a := range m.WorkerAcks {
		b = appendEmbedded(b, 2, a.append(nil))
	}
	b = appendString(b, 3, m.Cid)
	return b
}

func (m *PinStatus) Unmarshal(data []byte) error {
	*m = PinStatus{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PinStatus", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.AssignedWorkers = append(m.AssignedWorkers, v)
			}
		case 2:
			a := new(PinAck)
			n, err = consumeEmbedded(data, typ, a)
			if err == nil {
				m.WorkerAcks = append(m.WorkerAcks, a)
			}
		case 3:
			m.Cid, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PinStatus", err)
		}
		data = data[n:]
	}
	return nil
}

// Pin is a storage commitment addressed by content id.
type Pin struct {
	Metadata *Metadata
	Spec     *PinSpec
	Status   *PinStatus
}

func (m *Pin) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Pin) append(b []byte) []byte {
	if m.Metadata != nil {
		b = appendEmbedded(b, 1, m.Metadata.append(nil))
	}
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	if m.Status != nil {
		b = appendEmbedded(b, 3, m.Status.append(nil))
	}
	return b
}

func (m *Pin) Unmarshal(data []byte) error {
	*m = Pin{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Pin", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Metadata = new(Metadata)
			n, err = consumeEmbedded(data, typ, m.Metadata)
		case 2:
			m.Spec = new(PinSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			m.Status = new(PinStatus)
			n, err = consumeEmbedded(data, typ, m.Status)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Pin", err)
		}
		data = data[n:]
	}
	return nil
}

// Params are the gevulot module parameters.
type Params struct {
	emptyMessage
}
