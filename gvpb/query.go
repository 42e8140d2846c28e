package gvpb

import "google.golang.org/protobuf/encoding/protowire"

// Query request/response pairs of the gevulot.gevulot module plus the
// shared cosmos pagination messages.

// PageRequest is the cosmos.base.query.v1beta1.PageRequest cursor.
type PageRequest struct {
	Key        []byte
	Offset     uint64
	Limit      uint64
	CountTotal bool
	Reverse    bool
}

func (m *PageRequest) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *PageRequest) append(b []byte) []byte {
	b = appendBytes(b, 1, m.Key)
	b = appendUint64(b, 2, m.Offset)
	b = appendUint64(b, 3, m.Limit)
	b = appendBool(b, 4, m.CountTotal)
	b = appendBool(b, 5, m.Reverse)
	return b
}

func (m *PageRequest) Unmarshal(data []byte) error {
	*m = PageRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PageRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Key, n, err = consumeBytes(data, typ)
		case 2:
			m.Offset, n, err = consumeUint64(data, typ)
		case 3:
			m.Limit, n, err = consumeUint64(data, typ)
		case 4:
			m.CountTotal, n, err = consumeBool(data, typ)
		case 5:
			m.Reverse, n, err = consumeBool(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PageRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// PageResponse is the cosmos.base.query.v1beta1.PageResponse cursor.
// An empty NextKey means the walk is complete.
type PageResponse struct {
	NextKey []byte
	Total   uint64
}

func (m *PageResponse) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *PageResponse) append(b []byte) []byte {
	b = appendBytes(b, 1, m.NextKey)
	b = appendUint64(b, 2, m.Total)
	return b
}

func (m *PageResponse) Unmarshal(data []byte) error {
	*m = PageResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PageResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.NextKey, n, err = consumeBytes(data, typ)
		case 2:
			m.Total, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PageResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryParamsRequest has no fields.
type QueryParamsRequest struct{ emptyMessage }

// QueryParamsResponse carries the module parameters.
type QueryParamsResponse struct {
	Params *Params
}

func (m *QueryParamsResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Params != nil {
		b = appendEmbedded(b, 1, nil)
	}
	return b, nil
}

func (m *QueryParamsResponse) Unmarshal(data []byte) error {
	*m = QueryParamsResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryParamsResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Params = new(Params)
			n, err = consumeEmbedded(data, typ, m.Params)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryParamsResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// --- workers --------------------------------------------------------

type QueryGetWorkerRequest struct {
	Id string
}

func (m *QueryGetWorkerRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *QueryGetWorkerRequest) Unmarshal(data []byte) error {
	*m = QueryGetWorkerRequest{}
	return unmarshalIdOnly("QueryGetWorkerRequest", data, &m.Id)
}

type QueryGetWorkerResponse struct {
	Worker *Worker
}

func (m *QueryGetWorkerResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Worker != nil {
		b = appendEmbedded(b, 1, m.Worker.append(nil))
	}
	return b, nil
}

func (m *QueryGetWorkerResponse) Unmarshal(data []byte) error {
	*m = QueryGetWorkerResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryGetWorkerResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Worker = new(Worker)
			n, err = consumeEmbedded(data, typ, m.Worker)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryGetWorkerResponse", err)
		}
		data = data[n:]
	}
	return nil
}

type QueryAllWorkerRequest struct {
	Pagination *PageRequest
}

func (m *QueryAllWorkerRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Pagination != nil {
		b = appendEmbedded(b, 1, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllWorkerRequest) Unmarshal(data []byte) error {
	*m = QueryAllWorkerRequest{}
	return unmarshalPageOnlyRequest("QueryAllWorkerRequest", data, &m.Pagination)
}

type QueryAllWorkerResponse struct {
	Worker     []*Worker
	Pagination *PageResponse
}

func (m *QueryAllWorkerResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, w := range m.Worker {
		b = appendEmbedded(b, 1, w.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllWorkerResponse) Unmarshal(data []byte) error {
	*m = QueryAllWorkerResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAllWorkerResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			w := new(Worker)
			n, err = consumeEmbedded(data, typ, w)
			if err == nil {
				m.Worker = append(m.Worker, w)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAllWorkerResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// --- tasks ----------------------------------------------------------

type QueryGetTaskRequest struct {
	Id string
}

func (m *QueryGetTaskRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *QueryGetTaskRequest) Unmarshal(data []byte) error {
	*m = QueryGetTaskRequest{}
	return unmarshalIdOnly("QueryGetTaskRequest", data, &m.Id)
}

type QueryGetTaskResponse struct {
	Task *Task
}

func (m *QueryGetTaskResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Task != nil {
		b = appendEmbedded(b, 1, m.Task.append(nil))
	}
	return b, nil
}

func (m *QueryGetTaskResponse) Unmarshal(data []byte) error {
	*m = QueryGetTaskResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryGetTaskResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Task = new(Task)
			n, err = consumeEmbedded(data, typ, m.Task)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryGetTaskResponse", err)
		}
		data = data[n:]
	}
	return nil
}

type QueryAllTaskRequest struct {
	Pagination *PageRequest
}

func (m *QueryAllTaskRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Pagination != nil {
		b = appendEmbedded(b, 1, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllTaskRequest) Unmarshal(data []byte) error {
	*m = QueryAllTaskRequest{}
	return unmarshalPageOnlyRequest("QueryAllTaskRequest", data, &m.Pagination)
}

type QueryAllTaskResponse struct {
	Task       []*Task
	Pagination *PageResponse
}

func (m *QueryAllTaskResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, t := range m.Task {
		b = appendEmbedded(b, 1, t.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllTaskResponse) Unmarshal(data []byte) error {
	*m = QueryAllTaskResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAllTaskResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			t := new(Task)
			n, err = consumeEmbedded(data, typ, t)
			if err == nil {
				m.Task = append(m.Task, t)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAllTaskResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// --- workflows ------------------------------------------------------

type QueryGetWorkflowRequest struct {
	Id string
}

func (m *QueryGetWorkflowRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *QueryGetWorkflowRequest) Unmarshal(data []byte) error {
	*m = QueryGetWorkflowRequest{}
	return unmarshalIdOnly("QueryGetWorkflowRequest", data, &m.Id)
}

type QueryGetWorkflowResponse struct {
	Workflow *Workflow
}

func (m *QueryGetWorkflowResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Workflow != nil {
		b = appendEmbedded(b, 1, m.Workflow.append(nil))
	}
	return b, nil
}

func (m *QueryGetWorkflowResponse) Unmarshal(data []byte) error {
	*m = QueryGetWorkflowResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryGetWorkflowResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Workflow = new(Workflow)
			n, err = consumeEmbedded(data, typ, m.Workflow)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryGetWorkflowResponse", err)
		}
		data = data[n:]
	}
	return nil
}

type QueryAllWorkflowRequest struct {
	Pagination *PageRequest
}

func (m *QueryAllWorkflowRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Pagination != nil {
		b = appendEmbedded(b, 1, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllWorkflowRequest) Unmarshal(data []byte) error {
	*m = QueryAllWorkflowRequest{}
	return unmarshalPageOnlyRequest("QueryAllWorkflowRequest", data, &m.Pagination)
}

type QueryAllWorkflowResponse struct {
	Workflow   []*Workflow
	Pagination *PageResponse
}

func (m *QueryAllWorkflowResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, w := range m.Workflow {
		b = appendEmbedded(b, 1, w.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllWorkflowResponse) Unmarshal(data []byte) error {
	*m = QueryAllWorkflowResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAllWorkflowResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			w := new(Workflow)
			n, err = consumeEmbedded(data, typ, w)
			if err == nil {
				m.Workflow = append(m.Workflow, w)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAllWorkflowResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// --- proofs ---------------------------------------------------------

type QueryGetProofRequest struct {
	Id string
}

func (m *QueryGetProofRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Id), nil
}

func (m *QueryGetProofRequest) Unmarshal(data []byte) error {
	*m = QueryGetProofRequest{}
	return unmarshalIdOnly("QueryGetProofRequest", data, &m.Id)
}

type QueryGetProofResponse struct {
	Proof *Proof
}

func (m *QueryGetProofResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Proof != nil {
		b = appendEmbedded(b, 1, m.Proof.append(nil))
	}
	return b, nil
}

func (m *QueryGetProofResponse) Unmarshal(data []byte) error {
	*m = QueryGetProofResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryGetProofResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Proof = new(Proof)
			n, err = consumeEmbedded(data, typ, m.Proof)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryGetProofResponse", err)
		}
		data = data[n:]
	}
	return nil
}

type QueryAllProofRequest struct {
	Pagination *PageRequest
}

func (m *QueryAllProofRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Pagination != nil {
		b = appendEmbedded(b, 1, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllProofRequest) Unmarshal(data []byte) error {
	*m = QueryAllProofRequest{}
	return unmarshalPageOnlyRequest("QueryAllProofRequest", data, &m.Pagination)
}

type QueryAllProofResponse struct {
	Proof      []*Proof
	Pagination *PageResponse
}

func (m *QueryAllProofResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, p := range m.Proof {
		b = appendEmbedded(b, 1, p.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllProofResponse) Unmarshal(data []byte) error {
	*m = QueryAllProofResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAllProofResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			p := new(Proof)
			n, err = consumeEmbedded(data, typ, p)
			if err == nil {
				m.Proof = append(m.Proof, p)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAllProofResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// --- pins -----------------------------------------------------------

// QueryGetPinRequest addresses a pin by content id.
type QueryGetPinRequest struct {
	Cid string
}

func (m *QueryGetPinRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Cid), nil
}

func (m *QueryGetPinRequest) Unmarshal(data []byte) error {
	*m = QueryGetPinRequest{}
	return unmarshalIdOnly("QueryGetPinRequest", data, &m.Cid)
}

type QueryGetPinResponse struct {
	Pin *Pin
}

func (m *QueryGetPinResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Pin != nil {
		b = appendEmbedded(b, 1, m.Pin.append(nil))
	}
	return b, nil
}

func (m *QueryGetPinResponse) Unmarshal(data []byte) error {
	*m = QueryGetPinResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryGetPinResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Pin = new(Pin)
			n, err = consumeEmbedded(data, typ, m.Pin)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryGetPinResponse", err)
		}
		data = data[n:]
	}
	return nil
}

type QueryAllPinRequest struct {
	Pagination *PageRequest
}

func (m *QueryAllPinRequest) Marshal() ([]byte, error) {
	var b []byte
	if m.Pagination != nil {
		b = appendEmbedded(b, 1, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllPinRequest) Unmarshal(data []byte) error {
	*m = QueryAllPinRequest{}
	return unmarshalPageOnlyRequest("QueryAllPinRequest", data, &m.Pagination)
}

type QueryAllPinResponse struct {
	Pin        []*Pin
	Pagination *PageResponse
}

func (m *QueryAllPinResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, p := range m.Pin {
		b = appendEmbedded(b, 1, p.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryAllPinResponse) Unmarshal(data []byte) error {
	*m = QueryAllPinResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAllPinResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			p := new(Pin)
			n, err = consumeEmbedded(data, typ, p)
			if err == nil {
				m.Pin = append(m.Pin, p)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAllPinResponse", err)
		}
		data = data[n:]
	}
	return nil
}

func unmarshalPageOnlyRequest(name string, data []byte, page **PageRequest) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed(name, errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			*page = new(PageRequest)
			n, err = consumeEmbedded(data, typ, *page)
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
