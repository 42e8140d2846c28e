package gvpb

import "google.golang.org/protobuf/encoding/protowire"

// The cosmos.gov.v1beta1 subset: proposal submission, voting, deposits
// and the read side of each. Proposal timestamps are skipped on decode;
// the client never interprets them.

// Vote options, cosmos.gov.v1beta1.VoteOption.
const (
	VoteOptionYes        int32 = 1
	VoteOptionAbstain    int32 = 2
	VoteOptionNo         int32 = 3
	VoteOptionNoWithVeto int32 = 4
)

// Proposal statuses, cosmos.gov.v1beta1.ProposalStatus.
const (
	ProposalStatusDepositPeriod int32 = 1
	ProposalStatusVotingPeriod  int32 = 2
	ProposalStatusPassed        int32 = 3
	ProposalStatusRejected      int32 = 4
	ProposalStatusFailed        int32 = 5
)

// TallyResult holds the vote counts of a proposal as decimal strings.
type TallyResult struct {
	Yes        string
	Abstain    string
	No         string
	NoWithVeto string
}

func (m *TallyResult) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TallyResult) append(b []byte) []byte {
	b = appendString(b, 1, m.Yes)
	b = appendString(b, 2, m.Abstain)
	b = appendString(b, 3, m.No)
	b = appendString(b, 4, m.NoWithVeto)
	return b
}

func (m *TallyResult) Unmarshal(data []byte) error {
	*m = TallyResult{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TallyResult", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Yes, n, err = consumeString(data, typ)
		case 2:
			m.Abstain, n, err = consumeString(data, typ)
		case 3:
			m.No, n, err = consumeString(data, typ)
		case 4:
			m.NoWithVeto, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TallyResult", err)
		}
		data = data[n:]
	}
	return nil
}

// Proposal is cosmos.gov.v1beta1.Proposal reduced to the fields the
// client reads; the submit/deposit/voting timestamps are skipped.
type Proposal struct {
	ProposalId       uint64
	Content          *Any
	Status           int32
	FinalTallyResult *TallyResult
	TotalDeposit     []*Coin
}

func (m *Proposal) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Proposal) append(b []byte) []byte {
	b = appendUint64(b, 1, m.ProposalId)
	if m.Content != nil {
		b = appendEmbedded(b, 2, m.Content.append(nil))
	}
	b = appendInt32(b, 3, m.Status)
	if m.FinalTallyResult != nil {
		b = appendEmbedded(b, 4, m.FinalTallyResult.append(nil))
	}
	for _, c := range m.TotalDeposit {
		b = appendEmbedded(b, 7, c.append(nil))
	}
	return b
}

func (m *Proposal) Unmarshal(data []byte) error {
	*m = Proposal{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Proposal", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		case 2:
			m.Content = new(Any)
			n, err = consumeEmbedded(data, typ, m.Content)
		case 3:
			m.Status, n, err = consumeInt32(data, typ)
		case 4:
			m.FinalTallyResult = new(TallyResult)
			n, err = consumeEmbedded(data, typ, m.FinalTallyResult)
		case 7:
			c := new(Coin)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.TotalDeposit = append(m.TotalDeposit, c)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Proposal", err)
		}
		data = data[n:]
	}
	return nil
}

// Vote is cosmos.gov.v1beta1.Vote.
type Vote struct {
	ProposalId uint64
	Voter      string
	Option     int32
}

func (m *Vote) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Vote) append(b []byte) []byte {
	b = appendUint64(b, 1, m.ProposalId)
	b = appendString(b, 2, m.Voter)
	b = appendInt32(b, 3, m.Option)
	return b
}

func (m *Vote) Unmarshal(data []byte) error {
	*m = Vote{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Vote", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		case 2:
			m.Voter, n, err = consumeString(data, typ)
		case 3:
			m.Option, n, err = consumeInt32(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Vote", err)
		}
		data = data[n:]
	}
	return nil
}

// Deposit is cosmos.gov.v1beta1.Deposit.
type Deposit struct {
	ProposalId uint64
	Depositor  string
	Amount     []*Coin
}

func (m *Deposit) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Deposit) append(b []byte) []byte {
	b = appendUint64(b, 1, m.ProposalId)
	b = appendString(b, 2, m.Depositor)
	for _, c := range m.Amount {
		b = appendEmbedded(b, 3, c.append(nil))
	}
	return b
}

func (m *Deposit) Unmarshal(data []byte) error {
	*m = Deposit{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Deposit", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		case 2:
			m.Depositor, n, err = consumeString(data, typ)
		case 3:
			c := new(Coin)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.Amount = append(m.Amount, c)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Deposit", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgSubmitProposal is cosmos.gov.v1beta1.MsgSubmitProposal.
type MsgSubmitProposal struct {
	Content        *Any
	InitialDeposit []*Coin
	Proposer       string
}

func (*MsgSubmitProposal) TypeURL() string { return "/cosmos.gov.v1beta1.MsgSubmitProposal" }

func (m *MsgSubmitProposal) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgSubmitProposal) append(b []byte) []byte {
	if m.Content != nil {
		b = appendEmbedded(b, 1, m.Content.append(nil))
	}
	for _, c := range m.InitialDeposit {
		b = appendEmbedded(b, 2, c.append(nil))
	}
	b = appendString(b, 3, m.Proposer)
	return b
}

func (m *MsgSubmitProposal) Unmarshal(data []byte) error {
	*m = MsgSubmitProposal{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgSubmitProposal", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Content = new(Any)
			n, err = consumeEmbedded(data, typ, m.Content)
		case 2:
			c := new(Coin)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.InitialDeposit = append(m.InitialDeposit, c)
			}
		case 3:
			m.Proposer, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgSubmitProposal", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgSubmitProposalResponse returns the assigned proposal id.
type MsgSubmitProposalResponse struct {
	ProposalId uint64
}

func (m *MsgSubmitProposalResponse) Marshal() ([]byte, error) {
	return appendUint64(nil, 1, m.ProposalId), nil
}

func (m *MsgSubmitProposalResponse) Unmarshal(data []byte) error {
	*m = MsgSubmitProposalResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgSubmitProposalResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgSubmitProposalResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgVote is cosmos.gov.v1beta1.MsgVote.
type MsgVote struct {
	ProposalId uint64
	Voter      string
	Option     int32
}

func (*MsgVote) TypeURL() string { return "/cosmos.gov.v1beta1.MsgVote" }

func (m *MsgVote) Marshal() ([]byte, error) {
	b := appendUint64(nil, 1, m.ProposalId)
	b = appendString(b, 2, m.Voter)
	return appendInt32(b, 3, m.Option), nil
}

func (m *MsgVote) Unmarshal(data []byte) error {
	var v Vote
	if err := v.Unmarshal(data); err != nil {
		return malformed("MsgVote", err)
	}
	*m = MsgVote{ProposalId: v.ProposalId, Voter: v.Voter, Option: v.Option}
	return nil
}

// MsgVoteResponse is empty.
type MsgVoteResponse struct{ emptyMessage }

// MsgDeposit is cosmos.gov.v1beta1.MsgDeposit.
type MsgDeposit struct {
	ProposalId uint64
	Depositor  string
	Amount     []*Coin
}

func (*MsgDeposit) TypeURL() string { return "/cosmos.gov.v1beta1.MsgDeposit" }

func (m *MsgDeposit) Marshal() ([]byte, error) {
	b := appendUint64(nil, 1, m.ProposalId)
	b = appendString(b, 2, m.Depositor)
	for _, c := range m.Amount {
		b = appendEmbedded(b, 3, c.append(nil))
	}
	return b, nil
}

func (m *MsgDeposit) Unmarshal(data []byte) error {
	var d Deposit
	if err := d.Unmarshal(data); err != nil {
		return malformed("MsgDeposit", err)
	}
	*m = MsgDeposit{ProposalId: d.ProposalId, Depositor: d.Depositor, Amount: d.Amount}
	return nil
}

// MsgDepositResponse is empty.
type MsgDepositResponse struct{ emptyMessage }

// UpgradePlan is cosmos.upgrade.v1beta1.Plan, reduced to name, height
// and info.
type UpgradePlan struct {
	Name   string
	Height int64
	Info   string
}

func (m *UpgradePlan) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *UpgradePlan) append(b []byte) []byte {
	b = appendString(b, 1, m.Name)
	b = appendInt64(b, 3, m.Height)
	b = appendString(b, 4, m.Info)
	return b
}

func (m *UpgradePlan) Unmarshal(data []byte) error {
	*m = UpgradePlan{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("UpgradePlan", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Name, n, err = consumeString(data, typ)
		case 3:
			m.Height, n, err = consumeInt64(data, typ)
		case 4:
			m.Info, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("UpgradePlan", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgSoftwareUpgrade is cosmos.upgrade.v1beta1.MsgSoftwareUpgrade,
// packed as proposal content.
type MsgSoftwareUpgrade struct {
	Authority string
	Plan      *UpgradePlan
}

func (*MsgSoftwareUpgrade) TypeURL() string { return "/cosmos.upgrade.v1beta1.MsgSoftwareUpgrade" }

func (m *MsgSoftwareUpgrade) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Authority)
	if m.Plan != nil {
		b = appendEmbedded(b, 2, m.Plan.append(nil))
	}
	return b, nil
}

func (m *MsgSoftwareUpgrade) Unmarshal(data []byte) error {
	*m = MsgSoftwareUpgrade{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgSoftwareUpgrade", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Authority, n, err = consumeString(data, typ)
		case 2:
			m.Plan = new(UpgradePlan)
			n, err = consumeEmbedded(data, typ, m.Plan)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("MsgSoftwareUpgrade", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryProposalRequest fetches one proposal by id.
type QueryProposalRequest struct {
	ProposalId uint64
}

func (m *QueryProposalRequest) Marshal() ([]byte, error) {
	return appendUint64(nil, 1, m.ProposalId), nil
}

func (m *QueryProposalRequest) Unmarshal(data []byte) error {
	*m = QueryProposalRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryProposalRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryProposalRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryProposalResponse carries one proposal.
type QueryProposalResponse struct {
	Proposal *Proposal
}

func (m *QueryProposalResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Proposal != nil {
		b = appendEmbedded(b, 1, m.Proposal.append(nil))
	}
	return b, nil
}

func (m *QueryProposalResponse) Unmarshal(data []byte) error {
	*m = QueryProposalResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryProposalResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Proposal = new(Proposal)
			n, err = consumeEmbedded(data, typ, m.Proposal)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryProposalResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryProposalsRequest lists proposals, optionally filtered by
// status, voter or depositor.
type QueryProposalsRequest struct {
	ProposalStatus int32
	Voter          string
	Depositor      string
	Pagination     *PageRequest
}

func (m *QueryProposalsRequest) Marshal() ([]byte, error) {
	b := appendInt32(nil, 1, m.ProposalStatus)
	b = appendString(b, 2, m.Voter)
	b = appendString(b, 3, m.Depositor)
	if m.Pagination != nil {
		b = appendEmbedded(b, 4, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryProposalsRequest) Unmarshal(data []byte) error {
	*m = QueryProposalsRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryProposalsRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalStatus, n, err = consumeInt32(data, typ)
		case 2:
			m.Voter, n, err = consumeString(data, typ)
		case 3:
			m.Depositor, n, err = consumeString(data, typ)
		case 4:
			m.Pagination = new(PageRequest)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryProposalsRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryProposalsResponse is one page of proposals.
type QueryProposalsResponse struct {
	Proposals  []*Proposal
	Pagination *PageResponse
}

func (m *QueryProposalsResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, p := range m.Proposals {
		b = appendEmbedded(b, 1, p.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryProposalsResponse) Unmarshal(data []byte) error {
	*m = QueryProposalsResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryProposalsResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			p := new(Proposal)
			n, err = consumeEmbedded(data, typ, p)
			if err == nil {
				m.Proposals = append(m.Proposals, p)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryProposalsResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryVoteRequest fetches one vote by proposal and voter.
type QueryVoteRequest struct {
	ProposalId uint64
	Voter      string
}

func (m *QueryVoteRequest) Marshal() ([]byte, error) {
	b := appendUint64(nil, 1, m.ProposalId)
	return appendString(b, 2, m.Voter), nil
}

func (m *QueryVoteRequest) Unmarshal(data []byte) error {
	*m = QueryVoteRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryVoteRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		case 2:
			m.Voter, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryVoteRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryVoteResponse carries one vote.
type QueryVoteResponse struct {
	Vote *Vote
}

func (m *QueryVoteResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Vote != nil {
		b = appendEmbedded(b, 1, m.Vote.append(nil))
	}
	return b, nil
}

func (m *QueryVoteResponse) Unmarshal(data []byte) error {
	*m = QueryVoteResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryVoteResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Vote = new(Vote)
			n, err = consumeEmbedded(data, typ, m.Vote)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryVoteResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryTallyResultRequest fetches the running tally of a proposal.
type QueryTallyResultRequest struct {
	ProposalId uint64
}

func (m *QueryTallyResultRequest) Marshal() ([]byte, error) {
	return appendUint64(nil, 1, m.ProposalId), nil
}

func (m *QueryTallyResultRequest) Unmarshal(data []byte) error {
	var r QueryProposalRequest
	if err := r.Unmarshal(data); err != nil {
		return malformed("QueryTallyResultRequest", err)
	}
	m.ProposalId = r.ProposalId
	return nil
}

// QueryTallyResultResponse carries the tally.
type QueryTallyResultResponse struct {
	Tally *TallyResult
}

func (m *QueryTallyResultResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Tally != nil {
		b = appendEmbedded(b, 1, m.Tally.append(nil))
	}
	return b, nil
}

func (m *QueryTallyResultResponse) Unmarshal(data []byte) error {
	*m = QueryTallyResultResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryTallyResultResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Tally = new(TallyResult)
			n, err = consumeEmbedded(data, typ, m.Tally)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryTallyResultResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryDepositsRequest lists the deposits of a proposal.
type QueryDepositsRequest struct {
	ProposalId uint64
	Pagination *PageRequest
}

func (m *QueryDepositsRequest) Marshal() ([]byte, error) {
	b := appendUint64(nil, 1, m.ProposalId)
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryDepositsRequest) Unmarshal(data []byte) error {
	*m = QueryDepositsRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryDepositsRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.ProposalId, n, err = consumeUint64(data, typ)
		case 2:
			m.Pagination = new(PageRequest)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryDepositsRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryDepositsResponse is one page of deposits.
type QueryDepositsResponse struct {
	Deposits   []*Deposit
	Pagination *PageResponse
}

func (m *QueryDepositsResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, d := range m.Deposits {
		b = appendEmbedded(b, 1, d.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *QueryDepositsResponse) Unmarshal(data []byte) error {
	*m = QueryDepositsResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryDepositsResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			d := new(Deposit)
			n, err = consumeEmbedded(data, typ, d)
			if err == nil {
				m.Deposits = append(m.Deposits, d)
			}
		case 2:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryDepositsResponse", err)
		}
		data = data[n:]
	}
	return nil
}
