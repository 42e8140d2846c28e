package types

// Entity kind discriminators used in manifests.
const (
	KindWorker   = "Worker"
	KindTask     = "Task"
	KindWorkflow = "Workflow"
	KindProof    = "Proof"
	KindPin      = "Pin"

	// Version is the manifest schema version this package speaks.
	Version = "v0"
)

// TaskState is the user-facing task lifecycle state. Wire values this
// client does not recognize map to TaskStateUnknown rather than
// failing.
type TaskState string

const (
	TaskStatePending  TaskState = "Pending"
	TaskStateRunning  TaskState = "Running"
	TaskStateDeclined TaskState = "Declined"
	TaskStateDone     TaskState = "Done"
	TaskStateFailed   TaskState = "Failed"
	TaskStateUnknown  TaskState = "Unknown"
)

// Terminal reports whether the state can no longer change.
func (s TaskState) Terminal() bool {
	switch s {
	case TaskStateDeclined, TaskStateDone, TaskStateFailed:
		return true
	}
	return false
}

// WorkflowState is the user-facing workflow lifecycle state.
type WorkflowState string

const (
	WorkflowStatePending WorkflowState = "Pending"
	WorkflowStateRunning WorkflowState = "Running"
	WorkflowStateDone    WorkflowState = "Done"
	WorkflowStateFailed  WorkflowState = "Failed"
	WorkflowStateUnknown WorkflowState = "Unknown"
)

// Label is one key/value pair of entity metadata.
type Label struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Metadata is shared by every entity kind. Id and Creator are assigned
// by the ledger on creation.
type Metadata struct {
	Id          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Creator     string   `json:"creator,omitempty" yaml:"creator,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Labels      []Label  `json:"labels,omitempty" yaml:"labels,omitempty"`
	WorkflowRef string   `json:"workflowRef,omitempty" yaml:"workflowRef,omitempty"`
}

// WorkerSpec declares what a worker offers.
type WorkerSpec struct {
	Cpus   Quantity `json:"cpus" yaml:"cpus"`
	Gpus   Quantity `json:"gpus" yaml:"gpus"`
	Memory Quantity `json:"memory" yaml:"memory"`
	Disk   Quantity `json:"disk" yaml:"disk"`
}

// WorkerStatus reports current utilization.
type WorkerStatus struct {
	CpusUsed        uint64 `json:"cpusUsed" yaml:"cpusUsed"`
	GpusUsed        uint64 `json:"gpusUsed" yaml:"gpusUsed"`
	MemoryUsed      uint64 `json:"memoryUsed" yaml:"memoryUsed"`
	DiskUsed        uint64 `json:"diskUsed" yaml:"diskUsed"`
	ExitAnnouncedAt int64  `json:"exitAnnouncedAt,omitempty" yaml:"exitAnnouncedAt,omitempty"`
}

// Worker is a registered compute provider.
type Worker struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Version  string        `json:"version" yaml:"version"`
	Metadata Metadata      `json:"metadata" yaml:"metadata"`
	Spec     WorkerSpec    `json:"spec" yaml:"spec"`
	Status   *WorkerStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// TaskEnv is one environment variable of a task container.
type TaskEnv struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// InputContext mounts pinned data into the task filesystem.
type InputContext struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// OutputContext pins task output after completion.
type OutputContext struct {
	Source          string `json:"source" yaml:"source"`
	RetentionPeriod int64  `json:"retentionPeriod,omitempty" yaml:"retentionPeriod,omitempty"`
}

// TaskResources is the resource envelope requested for a task.
type TaskResources struct {
	Cpus   Quantity `json:"cpus" yaml:"cpus"`
	Gpus   Quantity `json:"gpus" yaml:"gpus"`
	Memory Quantity `json:"memory" yaml:"memory"`
	Time   Quantity `json:"time" yaml:"time"`
}

// TaskSpec is the user-declared shape of a task.
type TaskSpec struct {
	Image          string          `json:"image" yaml:"image"`
	Command        []string        `json:"command,omitempty" yaml:"command,omitempty"`
	Args           []string        `json:"args,omitempty" yaml:"args,omitempty"`
	Env            []TaskEnv       `json:"env,omitempty" yaml:"env,omitempty"`
	InputContexts  []InputContext  `json:"inputContexts,omitempty" yaml:"inputContexts,omitempty"`
	OutputContexts []OutputContext `json:"outputContexts,omitempty" yaml:"outputContexts,omitempty"`
	Resources      TaskResources   `json:"resources" yaml:"resources"`
	StoreStdout    bool            `json:"storeStdout,omitempty" yaml:"storeStdout,omitempty"`
	StoreStderr    bool            `json:"storeStderr,omitempty" yaml:"storeStderr,omitempty"`
	WorkflowRef    string          `json:"workflowRef,omitempty" yaml:"workflowRef,omitempty"`
}

// TaskStatus is the ledger's view of a task's progress.
type TaskStatus struct {
	State           TaskState `json:"state" yaml:"state"`
	CreatedAt       uint64    `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	StartedAt       uint64    `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	CompletedAt     uint64    `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	AssignedWorkers []string  `json:"assignedWorkers,omitempty" yaml:"assignedWorkers,omitempty"`
	ActiveWorker    string    `json:"activeWorker,omitempty" yaml:"activeWorker,omitempty"`
	ExitCode        int64     `json:"exitCode,omitempty" yaml:"exitCode,omitempty"`
	OutputContexts  []string  `json:"outputContexts,omitempty" yaml:"outputContexts,omitempty"`
	Stdout          string    `json:"stdout,omitempty" yaml:"stdout,omitempty"`
	Stderr          string    `json:"stderr,omitempty" yaml:"stderr,omitempty"`
	Error           string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Task is a unit of compute scheduled onto a worker.
type Task struct {
	Kind     string      `json:"kind" yaml:"kind"`
	Version  string      `json:"version" yaml:"version"`
	Metadata Metadata    `json:"metadata" yaml:"metadata"`
	Spec     TaskSpec    `json:"spec" yaml:"spec"`
	Status   *TaskStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// WorkflowStage groups tasks that run concurrently.
type WorkflowStage struct {
	Tasks []TaskSpec `json:"tasks" yaml:"tasks"`
}

// WorkflowSpec is an ordered pipeline of stages.
type WorkflowSpec struct {
	Stages []WorkflowStage `json:"stages" yaml:"stages"`
}

// WorkflowStageStatus tracks progress of one stage.
type WorkflowStageStatus struct {
	TaskIds       []string `json:"taskIds,omitempty" yaml:"taskIds,omitempty"`
	FinishedTasks uint64   `json:"finishedTasks" yaml:"finishedTasks"`
}

// WorkflowStatus is the ledger's view of workflow progress.
type WorkflowStatus struct {
	State        WorkflowState         `json:"state" yaml:"state"`
	CurrentStage uint64                `json:"currentStage" yaml:"currentStage"`
	Stages       []WorkflowStageStatus `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// Workflow is a staged pipeline of tasks.
type Workflow struct {
	Kind     string          `json:"kind" yaml:"kind"`
	Version  string          `json:"version" yaml:"version"`
	Metadata Metadata        `json:"metadata" yaml:"metadata"`
	Spec     WorkflowSpec    `json:"spec" yaml:"spec"`
	Status   *WorkflowStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// ProofSpec pairs a prover image with its verifier.
type ProofSpec struct {
	ProverImage     string         `json:"proverImage" yaml:"proverImage"`
	VerifierImage   string         `json:"verifierImage" yaml:"verifierImage"`
	ProverCommand   []string       `json:"proverCommand,omitempty" yaml:"proverCommand,omitempty"`
	VerifierCommand []string       `json:"verifierCommand,omitempty" yaml:"verifierCommand,omitempty"`
	ProverEnv       []TaskEnv      `json:"proverEnv,omitempty" yaml:"proverEnv,omitempty"`
	VerifierEnv     []TaskEnv      `json:"verifierEnv,omitempty" yaml:"verifierEnv,omitempty"`
	InputContexts   []InputContext `json:"inputContexts,omitempty" yaml:"inputContexts,omitempty"`
	Resources       TaskResources  `json:"resources" yaml:"resources"`
}

// Proof is a registered prover/verifier pair. Its status is reserved
// by the ledger and currently empty.
type Proof struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Version  string    `json:"version" yaml:"version"`
	Metadata Metadata  `json:"metadata" yaml:"metadata"`
	Spec     ProofSpec `json:"spec" yaml:"spec"`
}

// PinSpec declares how much data to pin, for how long, and with what
// redundancy.
type PinSpec struct {
	Bytes        Quantity `json:"bytes" yaml:"bytes"`
	Time         Quantity `json:"time" yaml:"time"`
	Redundancy   uint64   `json:"redundancy" yaml:"redundancy"`
	FallbackUrls []string `json:"fallbackUrls,omitempty" yaml:"fallbackUrls,omitempty"`
}

// PinAck is one worker's acknowledgement of pinned data.
type PinAck struct {
	Worker      string `json:"worker" yaml:"worker"`
	BlockHeight int64  `json:"blockHeight" yaml:"blockHeight"`
	Success     bool   `json:"success" yaml:"success"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// PinStatus reports which workers hold the pinned data.
type PinStatus struct {
	AssignedWorkers []string `json:"assignedWorkers,omitempty" yaml:"assignedWorkers,omitempty"`
	WorkerAcks      []PinAck `json:"workerAcks,omitempty" yaml:"workerAcks,omitempty"`
	Cid             string   `json:"cid,omitempty" yaml:"cid,omitempty"`
}

// Pin is a storage commitment addressed by content id.
type Pin struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Version  string     `json:"version" yaml:"version"`
	Metadata Metadata   `json:"metadata" yaml:"metadata"`
	Spec     PinSpec    `json:"spec" yaml:"spec"`
	Status   *PinStatus `json:"status,omitempty" yaml:"status,omitempty"`
}
