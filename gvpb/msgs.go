package gvpb

import "google.golang.org/protobuf/encoding/protowire"

// Transaction messages of the gevulot.gevulot module. Every message
// reports its Any type URL through TypeURL so the transaction builder
// can pack it without a registry.

const msgTypePrefix = "/gevulot.gevulot."

// MsgCreateWorker registers a worker with its offered resources.
type MsgCreateWorker struct {
	Creator     string
	Name        string
	Description string
	Cpus        uint64
	Gpus        uint64
	Memory      uint64
	Disk        uint64
	Labels      []*Label
	Tags        []string
}

func (*MsgCreateWorker) TypeURL() string { return msgTypePrefix + "MsgCreateWorker" }

func (m *MsgCreateWorker) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgCreateWorker) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Description)
	b = appendUint64(b, 4, m.Cpus)
	b = appendUint64(b, 5, m.Gpus)
	b = appendUint64(b, 6, m.Memory)
	b = appendUint64(b, 7, m.Disk)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 8, l.append(nil))
	}
	b = appendStrings(b, 9, m.Tags)
	return b
}

func (m *MsgCreateWorker) Unmarshal(data []byte) error {
	*m = MsgCreateWorker{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgCreateWorker", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Name, n, err = consumeString(data, typ)
		case 3:
			m.Description, n, err = consumeString(data, typ)
		case 4:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 5:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 6:
			m.Memory, n, err = consumeUint64(data, typ)
		case 7:
			m.Disk, n, err = consumeUint64(data, typ)
		case 8:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		case 9:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgCreateWorker", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgCreateWorkerResponse returns the assigned worker id.
type MsgCreateWorkerResponse struct {
	Id string
}

func (m *MsgCreateWorkerResponse) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *MsgCreateWorkerResponse) Unmarshal(data []byte) error {
	*m = MsgCreateWorkerResponse{}
	return unmarshalIdOnly("MsgCreateWorkerResponse", data, &m.Id)
}

// MsgUpdateWorker replaces the mutable fields of an existing worker.
type MsgUpdateWorker struct {
	Creator     string
	Id          string
	Name        string
	Description string
	Cpus        uint64
	Gpus        uint64
	Memory      uint64
	Disk        uint64
	Labels      []*Label
	Tags        []string
}

func (*MsgUpdateWorker) TypeURL() string { return msgTypePrefix + "MsgUpdateWorker" }

func (m *MsgUpdateWorker) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgUpdateWorker) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.Id)
	b = appendString(b, 3, m.Name)
	b = appendString(b, 4, m.Description)
	b = appendUint64(b, 5, m.Cpus)
	b = appendUint64(b, 6, m.Gpus)
	b = appendUint64(b, 7, m.Memory)
	b = appendUint64(b, 8, m.Disk)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 9, l.append(nil))
	}
	b = appendStrings(b, 10, m.Tags)
	return b
}

func (m *MsgUpdateWorker) Unmarshal(data []byte) error {
	*m = MsgUpdateWorker{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgUpdateWorker", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Id, n, err = consumeString(data, typ)
		case 3:
			m.Name, n, err = consumeString(data, typ)
		case 4:
			m.Description, n, err = consumeString(data, typ)
		case 5:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 6:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 7:
			m.Memory, n, err = consumeUint64(data, typ)
		case 8:
			m.Disk, n, err = consumeUint64(data, typ)
		case 9:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		case 10:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgUpdateWorker", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgUpdateWorkerResponse is empty.
type MsgUpdateWorkerResponse struct{ emptyMessage }

// MsgDeleteWorker removes a worker owned by Creator.
type MsgDeleteWorker struct {
	Creator string
	Id      string
}

func (*MsgDeleteWorker) TypeURL() string { return msgTypePrefix + "MsgDeleteWorker" }

func (m *MsgDeleteWorker) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgDeleteWorker) Unmarshal(data []byte) error {
	*m = MsgDeleteWorker{}
	return unmarshalTwoStrings("MsgDeleteWorker", data, &m.Creator, &m.Id)
}

// MsgDeleteWorkerResponse is empty.
type MsgDeleteWorkerResponse struct{ emptyMessage }

// MsgAnnounceWorkerExit signals that a worker will stop accepting
// tasks.
type MsgAnnounceWorkerExit struct {
	Creator  string
	WorkerId string
}

func (*MsgAnnounceWorkerExit) TypeURL() string { return msgTypePrefix + "MsgAnnounceWorkerExit" }

func (m *MsgAnnounceWorkerExit) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.WorkerId), nil
}

func (m *MsgAnnounceWorkerExit) Unmarshal(data []byte) error {
	*m = MsgAnnounceWorkerExit{}
	return unmarshalTwoStrings("MsgAnnounceWorkerExit", data, &m.Creator, &m.WorkerId)
}

// MsgAnnounceWorkerExitResponse is empty.
type MsgAnnounceWorkerExitResponse struct{ emptyMessage }

// MsgCreateTask submits a task for scheduling.
type MsgCreateTask struct {
	Creator        string
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
	Tags           []string
	Labels         []*Label
}

func (*MsgCreateTask) TypeURL() string { return msgTypePrefix + "MsgCreateTask" }

func (m *MsgCreateTask) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgCreateTask) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.Image)
	b = appendStrings(b, 3, m.Command)
	b = appendStrings(b, 4, m.Args)
	for _, e := range m.Env {
		b = appendEmbedded(b, 5, e.append(nil))
	}
	for _, c := range m.InputContexts {
		b = appendEmbedded(b, 6, c.append(nil))
	}
	for _, c := range m.OutputContexts {
		b = appendEmbedded(b, 7, c.append(nil))
	}
	b = appendUint64(b, 8, m.Cpus)
	b = appendUint64(b, 9, m.Gpus)
	b = appendUint64(b, 10, m.Memory)
	b = appendUint64(b, 11, m.Time)
	b = appendBool(b, 12, m.StoreStdout)
	b = appendBool(b, 13, m.StoreStderr)
	b = appendStrings(b, 14, m.Tags)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 15, l.append(nil))
	}
	return b
}

func (m *MsgCreateTask) Unmarshal(data []byte) error {
	*m = MsgCreateTask{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgCreateTask", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Image, n, err = consumeString(data, typ)
		case 3:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Command = append(m.Command, v)
			}
		case 4:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Args = append(m.Args, v)
			}
		case 5:
			e := new(TaskEnv)
			n, err = consumeEmbedded(data, typ, e)
			if err == nil {
				m.Env = append(m.Env, e)
			}
		case 6:
			c := new(InputContext)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.InputContexts = append(m.InputContexts, c)
			}
		case 7:
			c := new(OutputContext)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.OutputContexts = append(m.OutputContexts, c)
			}
		case 8:
			m.Cpus, n, err = consumeUint64(data, typ)
		case 9:
			m.Gpus, n, err = consumeUint64(data, typ)
		case 10:
			m.Memory, n, err = consumeUint64(data, typ)
		case 11:
			m.Time, n, err = consumeUint64(data, typ)
		case 12:
			m.StoreStdout, n, err = consumeBool(data, typ)
		case 13:
			m.StoreStderr, n, err = consumeBool(data, typ)
		case 14:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		case 15:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgCreateTask", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgCreateTaskResponse returns the assigned task id.
type MsgCreateTaskResponse struct {
	Id string
}

func (m *MsgCreateTaskResponse) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *MsgCreateTaskResponse) Unmarshal(data []byte) error {
	*m = MsgCreateTaskResponse{}
	return unmarshalIdOnly("MsgCreateTaskResponse", data, &m.Id)
}

// MsgDeleteTask removes a task owned by Creator.
type MsgDeleteTask struct {
	Creator string
	Id      string
}

func (*MsgDeleteTask) TypeURL() string { return msgTypePrefix + "MsgDeleteTask" }

func (m *MsgDeleteTask) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgDeleteTask) Unmarshal(data []byte) error {
	*m = MsgDeleteTask{}
	return unmarshalTwoStrings("MsgDeleteTask", data, &m.Creator, &m.Id)
}

// MsgDeleteTaskResponse is empty.
type MsgDeleteTaskResponse struct{ emptyMessage }

// MsgAcceptTask is sent by a worker taking an assigned task.
type MsgAcceptTask struct {
	Creator  string
	TaskId   string
	WorkerId string
}

func (*MsgAcceptTask) TypeURL() string { return msgTypePrefix + "MsgAcceptTask" }

func (m *MsgAcceptTask) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	b = appendString(b, 2, m.TaskId)
	return appendString(b, 3, m.WorkerId), nil
}

func (m *MsgAcceptTask) Unmarshal(data []byte) error {
	*m = MsgAcceptTask{}
	return unmarshalThreeStrings("MsgAcceptTask", data, &m.Creator, &m.TaskId, &m.WorkerId)
}

// MsgAcceptTaskResponse is empty.
type MsgAcceptTaskResponse struct{ emptyMessage }

// MsgDeclineTask is sent by a worker refusing an assigned task.
type MsgDeclineTask struct {
	Creator  string
	TaskId   string
	WorkerId string
	Error    string
}

func (*MsgDeclineTask) TypeURL() string { return msgTypePrefix + "MsgDeclineTask" }

func (m *MsgDeclineTask) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	b = appendString(b, 2, m.TaskId)
	b = appendString(b, 3, m.WorkerId)
	return appendString(b, 4, m.Error), nil
}

func (m *MsgDeclineTask) Unmarshal(data []byte) error {
	*m = MsgDeclineTask{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgDeclineTask", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.TaskId, n, err = consumeString(data, typ)
		case 3:
			m.WorkerId, n, err = consumeString(data, typ)
		case 4:
			m.Error, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgDeclineTask", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgDeclineTaskResponse is empty.
type MsgDeclineTaskResponse struct{ emptyMessage }

// MsgFinishTask reports a task's terminal result.
type MsgFinishTask struct {
	Creator        string
	TaskId         string
	ExitCode       int64
	Stdout         string
	Stderr         string
	OutputContexts []string
	Error          string
}

func (*MsgFinishTask) TypeURL() string { return msgTypePrefix + "MsgFinishTask" }

func (m *MsgFinishTask) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgFinishTask) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.TaskId)
	b = appendInt64(b, 3, m.ExitCode)
	b = appendString(b, 4, m.Stdout)
	b = appendString(b, 5, m.Stderr)
	b = appendStrings(b, 6, m.OutputContexts)
	b = appendString(b, 7, m.Error)
	return b
}

func (m *MsgFinishTask) Unmarshal(data []byte) error {
	*m = MsgFinishTask{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgFinishTask", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.TaskId, n, err = consumeString(data, typ)
		case 3:
			m.ExitCode, n, err = consumeInt64(data, typ)
		case 4:
			m.Stdout, n, err = consumeString(data, typ)
		case 5:
			m.Stderr, n, err = consumeString(data, typ)
		case 6:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.OutputContexts = append(m.OutputContexts, v)
			}
		case 7:
			m.Error, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgFinishTask", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgFinishTaskResponse is empty.
type MsgFinishTaskResponse struct{ emptyMessage }

// MsgRescheduleTask asks the ledger to schedule a failed task again.
type MsgRescheduleTask struct {
	Creator string
	Id      string
}

func (*MsgRescheduleTask) TypeURL() string { return msgTypePrefix + "MsgRescheduleTask" }

func (m *MsgRescheduleTask) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgRescheduleTask) Unmarshal(data []byte) error {
	*m = MsgRescheduleTask{}
	return unmarshalTwoStrings("MsgRescheduleTask", data, &m.Creator, &m.Id)
}

// MsgRescheduleTaskResponse names the two task ids the reschedule
// produced. Their interpretation belongs to the ledger; the client
// returns them verbatim.
type MsgRescheduleTaskResponse struct {
	PrimaryId   string
	SecondaryId string
}

func (m *MsgRescheduleTaskResponse) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.PrimaryId)
	return appendString(b, 2, m.SecondaryId), nil
}

func (m *MsgRescheduleTaskResponse) Unmarshal(data []byte) error {
	*m = MsgRescheduleTaskResponse{}
	return unmarshalTwoStrings("MsgRescheduleTaskResponse", data, &m.PrimaryId, &m.SecondaryId)
}

// MsgCreateWorkflow submits a staged pipeline.
type MsgCreateWorkflow struct {
	Creator string
	Spec    *WorkflowSpec
	Tags    []string
	Labels  []*Label
}

func (*MsgCreateWorkflow) TypeURL() string { return msgTypePrefix + "MsgCreateWorkflow" }

func (m *MsgCreateWorkflow) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgCreateWorkflow) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	b = appendStrings(b, 3, m.Tags)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 4, l.append(nil))
	}
	return b
}

func (m *MsgCreateWorkflow) Unmarshal(data []byte) error {
	*m = MsgCreateWorkflow{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgCreateWorkflow", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Spec = new(WorkflowSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		case 4:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgCreateWorkflow", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgCreateWorkflowResponse returns the assigned workflow id.
type MsgCreateWorkflowResponse struct {
	Id string
}

func (m *MsgCreateWorkflowResponse) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *MsgCreateWorkflowResponse) Unmarshal(data []byte) error {
	*m = MsgCreateWorkflowResponse{}
	return unmarshalIdOnly("MsgCreateWorkflowResponse", data, &m.Id)
}

// MsgDeleteWorkflow removes a workflow owned by Creator.
type MsgDeleteWorkflow struct {
	Creator string
	Id      string
}

func (*MsgDeleteWorkflow) TypeURL() string { return msgTypePrefix + "MsgDeleteWorkflow" }

func (m *MsgDeleteWorkflow) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgDeleteWorkflow) Unmarshal(data []byte) error {
	*m = MsgDeleteWorkflow{}
	return unmarshalTwoStrings("MsgDeleteWorkflow", data, &m.Creator, &m.Id)
}

// MsgDeleteWorkflowResponse is empty.
type MsgDeleteWorkflowResponse struct{ emptyMessage }

// MsgCreateProof registers a prover/verifier pair.
type MsgCreateProof struct {
	Creator string
	Spec    *ProofSpec
	Tags    []string
	Labels  []*Label
}

func (*MsgCreateProof) TypeURL() string { return msgTypePrefix + "MsgCreateProof" }

func (m *MsgCreateProof) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgCreateProof) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	if m.Spec != nil {
		b = appendEmbedded(b, 2, m.Spec.append(nil))
	}
	b = appendStrings(b, 3, m.Tags)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 4, l.append(nil))
	}
	return b
}

func (m *MsgCreateProof) Unmarshal(data []byte) error {
	*m = MsgCreateProof{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgCreateProof", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Spec = new(ProofSpec)
			n, err = consumeEmbedded(data, typ, m.Spec)
		case 3:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		case 4:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgCreateProof", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgCreateProofResponse returns the assigned proof id.
type MsgCreateProofResponse struct {
	Id string
}

func (m *MsgCreateProofResponse) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *MsgCreateProofResponse) Unmarshal(data []byte) error {
	*m = MsgCreateProofResponse{}
	return unmarshalIdOnly("MsgCreateProofResponse", data, &m.Id)
}

// MsgDeleteProof removes a proof owned by Creator.
type MsgDeleteProof struct {
	Creator string
	Id      string
}

func (*MsgDeleteProof) TypeURL() string { return msgTypePrefix + "MsgDeleteProof" }

func (m *MsgDeleteProof) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgDeleteProof) Unmarshal(data []byte) error {
	*m = MsgDeleteProof{}
	return unmarshalTwoStrings("MsgDeleteProof", data, &m.Creator, &m.Id)
}

// MsgDeleteProofResponse is empty.
type MsgDeleteProofResponse struct{ emptyMessage }

// MsgCreatePin asks the network to store data addressed by Cid.
type MsgCreatePin struct {
	Creator      string
	Cid          string
	Bytes        uint64
	Name         string
	Redundancy   uint64
	Time         uint64
	Description  string
	FallbackUrls []string
	Tags         []string
	Labels       []*Label
}

func (*MsgCreatePin) TypeURL() string { return msgTypePrefix + "MsgCreatePin" }

func (m *MsgCreatePin) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgCreatePin) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.Cid)
	b = appendUint64(b, 3, m.Bytes)
	b = appendString(b, 4, m.Name)
	b = appendUint64(b, 5, m.Redundancy)
	b = appendUint64(b, 6, m.Time)
	b = appendString(b, 7, m.Description)
	b = appendStrings(b, 8, m.FallbackUrls)
	b = appendStrings(b, 9, m.Tags)
	for _, l := range m.Labels {
		b = appendEmbedded(b, 10, l.append(nil))
	}
	return b
}

func (m *MsgCreatePin) Unmarshal(data []byte) error {
	*m = MsgCreatePin{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgCreatePin", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Cid, n, err = consumeString(data, typ)
		case 3:
			m.Bytes, n, err = consumeUint64(data, typ)
		case 4:
			m.Name, n, err = consumeString(data, typ)
		case 5:
			m.Redundancy, n, err = consumeUint64(data, typ)
		case 6:
			m.Time, n, err = consumeUint64(data, typ)
		case 7:
			m.Description, n, err = consumeString(data, typ)
		case 8:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.FallbackUrls = append(m.FallbackUrls, v)
			}
		case 9:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Tags = append(m.Tags, v)
			}
		case 10:
			l := new(Label)
			n, err = consumeEmbedded(data, typ, l)
			if err == nil {
				m.Labels = append(m.Labels, l)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgCreatePin", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgCreatePinResponse returns the assigned pin id.
type MsgCreatePinResponse struct {
	Id string
}

func (m *MsgCreatePinResponse) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *MsgCreatePinResponse) Unmarshal(data []byte) error {
	*m = MsgCreatePinResponse{}
	return unmarshalIdOnly("MsgCreatePinResponse", data, &m.Id)
}

// MsgDeletePin releases a storage commitment.
type MsgDeletePin struct {
	Creator string
	Cid     string
	Id      string
}

func (*MsgDeletePin) TypeURL() string { return msgTypePrefix + "MsgDeletePin" }

func (m *MsgDeletePin) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Creator)
	b = appendString(b, 2, m.Cid)
	return appendString(b, 3, m.Id), nil
}

func (m *MsgDeletePin) Unmarshal(data []byte) error {
	*m = MsgDeletePin{}
	return unmarshalThreeStrings("MsgDeletePin", data, &m.Creator, &m.Cid, &m.Id)
}

// MsgDeletePinResponse is empty.
type MsgDeletePinResponse struct{ emptyMessage }

// MsgAckPin is a worker's acknowledgement that it holds pinned data.
type MsgAckPin struct {
	Creator  string
	Cid      string
	Id       string
	WorkerId string
	Success  bool
	Error    string
}

func (*MsgAckPin) TypeURL() string { return msgTypePrefix + "MsgAckPin" }

func (m *MsgAckPin) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgAckPin) append(b []byte) []byte {
	b = appendString(b, 1, m.Creator)
	b = appendString(b, 2, m.Cid)
	b = appendString(b, 3, m.Id)
	b = appendString(b, 4, m.WorkerId)
	b = appendBool(b, 5, m.Success)
	b = appendString(b, 6, m.Error)
	return b
}

func (m *MsgAckPin) Unmarshal(data []byte) error {
	*m = MsgAckPin{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgAckPin", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Creator, n, err = consumeString(data, typ)
		case 2:
			m.Cid, n, err = consumeString(data, typ)
		case 3:
			m.Id, n, err = consumeString(data, typ)
		case 4:
			m.WorkerId, n, err = consumeString(data, typ)
		case 5:
			m.Success, n, err = consumeBool(data, typ)
		case 6:
			m.Error, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgAckPin", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgAckPinResponse is empty.
type MsgAckPinResponse struct{ emptyMessage }

// MsgSudoDeletePin removes any pin, authority-gated.
type MsgSudoDeletePin struct {
	Authority string
	Cid       string
}

func (*MsgSudoDeletePin) TypeURL() string { return msgTypePrefix + "MsgSudoDeletePin" }

func (m *MsgSudoDeletePin) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	return appendString(b, 2, m.Cid), nil
}

func (m *MsgSudoDeletePin) Unmarshal(data []byte) error {
	*m = MsgSudoDeletePin{}
	return unmarshalTwoStrings("MsgSudoDeletePin", data, &m.Authority, &m.Cid)
}

// MsgSudoDeletePinResponse is empty.
type MsgSudoDeletePinResponse struct{ emptyMessage }

// MsgSudoDeleteWorker removes any worker, authority-gated.
type MsgSudoDeleteWorker struct {
	Authority string
	Id        string
}

func (*MsgSudoDeleteWorker) TypeURL() string { return msgTypePrefix + "MsgSudoDeleteWorker" }

func (m *MsgSudoDeleteWorker) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgSudoDeleteWorker) Unmarshal(data []byte) error {
	*m = MsgSudoDeleteWorker{}
	return unmarshalTwoStrings("MsgSudoDeleteWorker", data, &m.Authority, &m.Id)
}

// MsgSudoDeleteWorkerResponse is empty.
type MsgSudoDeleteWorkerResponse struct{ emptyMessage }

// MsgSudoDeleteTask removes any task, authority-gated.
type MsgSudoDeleteTask struct {
	Authority string
	Id        string
}

func (*MsgSudoDeleteTask) TypeURL() string { return msgTypePrefix + "MsgSudoDeleteTask" }

func (m *MsgSudoDeleteTask) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	return appendString(b, 2, m.Id), nil
}

func (m *MsgSudoDeleteTask) Unmarshal(data []byte) error {
	*m = MsgSudoDeleteTask{}
	return unmarshalTwoStrings("MsgSudoDeleteTask", data, &m.Authority, &m.Id)
}

// MsgSudoDeleteTaskResponse is empty.
type MsgSudoDeleteTaskResponse struct{ emptyMessage }

// MsgSudoFreezeAccount blocks an account from submitting, authority-
// gated.
type MsgSudoFreezeAccount struct {
	Authority string
	Account   string
}

func (*MsgSudoFreezeAccount) TypeURL() string { return msgTypePrefix + "MsgSudoFreezeAccount" }

func (m *MsgSudoFreezeAccount) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	return appendString(b, 2, m.Account), nil
}

func (m *MsgSudoFreezeAccount) Unmarshal(data []byte) error {
	*m = MsgSudoFreezeAccount{}
	return unmarshalTwoStrings("MsgSudoFreezeAccount", data, &m.Authority, &m.Account)
}

// MsgSudoFreezeAccountResponse is empty.
type MsgSudoFreezeAccountResponse struct{ emptyMessage }

// MsgUpdateParams replaces the module parameters, authority-gated.
type MsgUpdateParams struct {
	Authority string
	Params    *Params
}

func (*MsgUpdateParams) TypeURL() string { return msgTypePrefix + "MsgUpdateParams" }

func (m *MsgUpdateParams) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	if m.Params != nil {
		b = appendEmbedded(b, 2, nil)
	}
	return b, nil
}

func (m *MsgUpdateParams) Unmarshal(data []byte) error {
	*m = MsgUpdateParams{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgUpdateParams", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Authority, n, err = consumeString(data, typ)
		case 2:
			m.Params = new(Params)
			n, err = consumeEmbedded(data, typ, m.Params)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgUpdateParams", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgUpdateParamsResponse is empty.
type MsgUpdateParamsResponse struct{ emptyMessage }

// --- small shared decoders -----------------------------------------

func unmarshalIdOnly(name string, data []byte, id *string) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed(name, errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			*id, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed(name, err)
		}
		data = data[n:]
	}
	return nil
}

func unmarshalTwoStrings(name string, data []byte, a, b *string) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed(name, errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			*a, n, err = consumeString(data, typ)
		case 2:
			*b, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed(name, err)
		}
		data = data[n:]
	}
	return nil
}

func unmarshalThreeStrings(name string, data []byte, a, b, c *string) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed(name, errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			*a, n, err = consumeString(data, typ)
		case 2:
			*b, n, err = consumeString(data, typ)
		case 3:
			*c, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed(name, err)
		}
		data = data[n:]
	}
	return nil
}
