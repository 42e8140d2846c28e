package gvpb

import "google.golang.org/protobuf/encoding/protowire"

// The subset of cosmos-sdk wire messages the client needs: Any
// packing, the tx envelope and sign doc, auth account lookup, bank
// balance/transfer, broadcast/get-tx/simulate, and the tendermint
// block surface. Only the fields the client reads or writes are
// declared; everything else is skipped on decode.

// SignModeDirect is cosmos.tx.signing.v1beta1.SignMode SIGN_MODE_DIRECT.
const SignModeDirect int32 = 1

// BroadcastModeSync is cosmos.tx.v1beta1.BroadcastMode BROADCAST_MODE_SYNC.
const BroadcastModeSync int32 = 2

// Any is google.protobuf.Any.
type Any struct {
	TypeUrl string
	Value   []byte
}

// PackAny wraps a typed message into an Any.
func PackAny(m TypedMessage) (*Any, error) {
	raw, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	return &Any{TypeUrl: m.TypeURL(), Value: raw}, nil
}

func (m *Any) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Any) append(b []byte) []byte {
	b = appendString(b, 1, m.TypeUrl)
	b = appendBytes(b, 2, m.Value)
	return b
}

func (m *Any) Unmarshal(data []byte) error {
	*m = Any{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Any", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.TypeUrl, n, err = consumeString(data, typ)
		case 2:
			m.Value, n, err = consumeBytes(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Any", err)
		}
		data = data[n:]
	}
	return nil
}

// Coin is cosmos.base.v1beta1.Coin. Amount stays a decimal string on
// the wire.
type Coin struct {
	Denom  string
	Amount string
}

func (m *Coin) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Coin) append(b []byte) []byte {
	b = appendString(b, 1, m.Denom)
	b = appendString(b, 2, m.Amount)
	return b
}

func (m *Coin) Unmarshal(data []byte) error {
	*m = Coin{}
	return unmarshalTwoStrings("Coin", data, &m.Denom, &m.Amount)
}

// Fee is cosmos.tx.v1beta1.Fee.
type Fee struct {
	Amount   []*Coin
	GasLimit uint64
	Payer    string
	Granter  string
}

func (m *Fee) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Fee) append(b []byte) []byte {
	for _, c := range m.Amount {
		b = appendEmbedded(b, 1, c.append(nil))
	}
	b = appendUint64(b, 2, m.GasLimit)
	b = appendString(b, 3, m.Payer)
	b = appendString(b, 4, m.Granter)
	return b
}

func (m *Fee) Unmarshal(data []byte) error {
	*m = Fee{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Fee", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			c := new(Coin)
			n, err = consumeEmbedded(data, typ, c)
			if err == nil {
				m.Amount = append(m.Amount, c)
			}
		case 2:
			m.GasLimit, n, err = consumeUint64(data, typ)
		case 3:
			m.Payer, n, err = consumeString(data, typ)
		case 4:
			m.Granter, n, err = consumeString(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Fee", err)
		}
		data = data[n:]
	}
	return nil
}

// ModeInfoSingle is the single-signer mode descriptor.
type ModeInfoSingle struct {
	Mode int32
}

func (m *ModeInfoSingle) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *ModeInfoSingle) append(b []byte) []byte {
	return appendInt32(b, 1, m.Mode)
}

func (m *ModeInfoSingle) Unmarshal(data []byte) error {
	*m = ModeInfoSingle{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("ModeInfoSingle", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Mode, n, err = consumeInt32(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("ModeInfoSingle", err)
		}
		data = data[n:]
	}
	return nil
}

// ModeInfo is cosmos.tx.v1beta1.ModeInfo; only the single branch is
// supported.
type ModeInfo struct {
	Single *ModeInfoSingle
}

func (m *ModeInfo) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *ModeInfo) append(b []byte) []byte {
	if m.Single != nil {
		b = appendEmbedded(b, 1, m.Single.append(nil))
	}
	return b
}

func (m *ModeInfo) Unmarshal(data []byte) error {
	*m = ModeInfo{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("ModeInfo", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Single = new(ModeInfoSingle)
			n, err = consumeEmbedded(data, typ, m.Single)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("ModeInfo", err)
		}
		data = data[n:]
	}
	return nil
}

// SignerInfo is cosmos.tx.v1beta1.SignerInfo.
type SignerInfo struct {
	PublicKey *Any
	ModeInfo  *ModeInfo
	Sequence  uint64
}

func (m *SignerInfo) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *SignerInfo) append(b []byte) []byte {
	if m.PublicKey != nil {
		b = appendEmbedded(b, 1, m.PublicKey.append(nil))
	}
	if m.ModeInfo != nil {
		b = appendEmbedded(b, 2, m.ModeInfo.append(nil))
	}
	b = appendUint64(b, 3, m.Sequence)
	return b
}

func (m *SignerInfo) Unmarshal(data []byte) error {
	*m = SignerInfo{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("SignerInfo", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.PublicKey = new(Any)
			n, err = consumeEmbedded(data, typ, m.PublicKey)
		case 2:
			m.ModeInfo = new(ModeInfo)
			n, err = consumeEmbedded(data, typ, m.ModeInfo)
		case 3:
			m.Sequence, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("SignerInfo", err)
		}
		data = data[n:]
	}
	return nil
}

// TxBody is cosmos.tx.v1beta1.TxBody.
type TxBody struct {
	Messages      []*Any
	Memo          string
	TimeoutHeight uint64
}

func (m *TxBody) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TxBody) append(b []byte) []byte {
	for _, msg := range m.Messages {
		b = appendEmbedded(b, 1, msg.append(nil))
	}
	b = appendString(b, 2, m.Memo)
	b = appendUint64(b, 3, m.TimeoutHeight)
	return b
}

func (m *TxBody) Unmarshal(data []byte) error {
	*m = TxBody{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TxBody", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			a := new(Any)
			n, err = consumeEmbedded(data, typ, a)
			if err == nil {
				m.Messages = append(m.Messages, a)
			}
		case 2:
			m.Memo, n, err = consumeString(data, typ)
		case 3:
			m.TimeoutHeight, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TxBody", err)
		}
		data = data[n:]
	}
	return nil
}

// AuthInfo is cosmos.tx.v1beta1.AuthInfo.
type AuthInfo struct {
	SignerInfos []*SignerInfo
	Fee         *Fee
}

func (m *AuthInfo) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *AuthInfo) append(b []byte) []byte {
	for _, si := range m.SignerInfos {
		b = appendEmbedded(b, 1, si.append(nil))
	}
	if m.Fee != nil {
		b = appendEmbedded(b, 2, m.Fee.append(nil))
	}
	return b
}

func (m *AuthInfo) Unmarshal(data []byte) error {
	*m = AuthInfo{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("AuthInfo", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			si := new(SignerInfo)
			n, err = consumeEmbedded(data, typ, si)
			if err == nil {
				m.SignerInfos = append(m.SignerInfos, si)
			}
		case 2:
			m.Fee = new(Fee)
			n, err = consumeEmbedded(data, typ, m.Fee)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("AuthInfo", err)
		}
		data = data[n:]
	}
	return nil
}

// SignDoc is cosmos.tx.v1beta1.SignDoc, the exact bytes put under the
// signature.
type SignDoc struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	ChainId       string
	AccountNumber uint64
}

func (m *SignDoc) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *SignDoc) append(b []byte) []byte {
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	b = appendString(b, 3, m.ChainId)
	b = appendUint64(b, 4, m.AccountNumber)
	return b
}

func (m *SignDoc) Unmarshal(data []byte) error {
	*m = SignDoc{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("SignDoc", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.BodyBytes, n, err = consumeBytes(data, typ)
		case 2:
			m.AuthInfoBytes, n, err = consumeBytes(data, typ)
		case 3:
			m.ChainId, n, err = consumeString(data, typ)
		case 4:
			m.AccountNumber, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("SignDoc", err)
		}
		data = data[n:]
	}
	return nil
}

// TxRaw is cosmos.tx.v1beta1.TxRaw, the broadcast envelope.
type TxRaw struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	Signatures    [][]byte
}

func (m *TxRaw) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TxRaw) append(b []byte) []byte {
	b = appendBytes(b, 1, m.BodyBytes)
	b = appendBytes(b, 2, m.AuthInfoBytes)
	b = appendBytesSlice(b, 3, m.Signatures)
	return b
}

func (m *TxRaw) Unmarshal(data []byte) error {
	*m = TxRaw{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TxRaw", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.BodyBytes, n, err = consumeBytes(data, typ)
		case 2:
			m.AuthInfoBytes, n, err = consumeBytes(data, typ)
		case 3:
			var v []byte
			v, n, err = consumeBytes(data, typ)
			if err == nil {
				m.Signatures = append(m.Signatures, v)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TxRaw", err)
		}
		data = data[n:]
	}
	return nil
}

// Tx is cosmos.tx.v1beta1.Tx, the decoded form returned by GetTx.
type Tx struct {
	Body       *TxBody
	AuthInfo   *AuthInfo
	Signatures [][]byte
}

func (m *Tx) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Tx) append(b []byte) []byte {
	if m.Body != nil {
		b = appendEmbedded(b, 1, m.Body.append(nil))
	}
	if m.AuthInfo != nil {
		b = appendEmbedded(b, 2, m.AuthInfo.append(nil))
	}
	b = appendBytesSlice(b, 3, m.Signatures)
	return b
}

func (m *Tx) Unmarshal(data []byte) error {
	*m = Tx{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Tx", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Body = new(TxBody)
			n, err = consumeEmbedded(data, typ, m.Body)
		case 2:
			m.AuthInfo = new(AuthInfo)
			n, err = consumeEmbedded(data, typ, m.AuthInfo)
		case 3:
			var v []byte
			v, n, err = consumeBytes(data, typ)
			if err == nil {
				m.Signatures = append(m.Signatures, v)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Tx", err)
		}
		data = data[n:]
	}
	return nil
}

// PubKeySecp256k1 is cosmos.crypto.secp256k1.PubKey.
type PubKeySecp256k1 struct {
	Key []byte
}

func (*PubKeySecp256k1) TypeURL() string { return "/cosmos.crypto.secp256k1.PubKey" }

func (m *PubKeySecp256k1) Marshal() ([]byte, error) {
	return appendBytes(nil, 1, m.Key), nil
}

func (m *PubKeySecp256k1) Unmarshal(data []byte) error {
	*m = PubKeySecp256k1{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("PubKeySecp256k1", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Key, n, err = consumeBytes(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("PubKeySecp256k1", err)
		}
		data = data[n:]
	}
	return nil
}

// BaseAccount is cosmos.auth.v1beta1.BaseAccount.
type BaseAccount struct {
	Address       string
	PubKey        *Any
	AccountNumber uint64
	Sequence      uint64
}

func (m *BaseAccount) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *BaseAccount) append(b []byte) []byte {
	b = appendString(b, 1, m.Address)
	if m.PubKey != nil {
		b = appendEmbedded(b, 2, m.PubKey.append(nil))
	}
	b = appendUint64(b, 3, m.AccountNumber)
	b = appendUint64(b, 4, m.Sequence)
	return b
}

func (m *BaseAccount) Unmarshal(data []byte) error {
	*m = BaseAccount{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("BaseAccount", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Address, n, err = consumeString(data, typ)
		case 2:
			m.PubKey = new(Any)
			n, err = consumeEmbedded(data, typ, m.PubKey)
		case 3:
			m.AccountNumber, n, err = consumeUint64(data, typ)
		case 4:
			m.Sequence, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("BaseAccount", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryAccountRequest is cosmos.auth.v1beta1.QueryAccountRequest.
type QueryAccountRequest struct {
	Address string
}

func (m *QueryAccountRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Address), nil
}

func (m *QueryAccountRequest) Unmarshal(data []byte) error {
	*m = QueryAccountRequest{}
	return unmarshalIdOnly("QueryAccountRequest", data, &m.Address)
}

// QueryAccountResponse wraps the account as an Any.
type QueryAccountResponse struct {
	Account *Any
}

func (m *QueryAccountResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Account != nil {
		b = appendEmbedded(b, 1, m.Account.append(nil))
	}
	return b, nil
}

func (m *QueryAccountResponse) Unmarshal(data []byte) error {
	*m = QueryAccountResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryAccountResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Account = new(Any)
			n, err = consumeEmbedded(data, typ, m.Account)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryAccountResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// QueryBalanceRequest is cosmos.bank.v1beta1.QueryBalanceRequest.
type QueryBalanceRequest struct {
	Address string
	Denom   string
}

func (m *QueryBalanceRequest) Marshal() ([]byte, error) {
	b := appendString(nil, 1, m.Address)
	return appendString(b, 2, m.Denom), nil
}

func (m *QueryBalanceRequest) Unmarshal(data []byte) error {
	*m = QueryBalanceRequest{}
	return unmarshalTwoStrings("QueryBalanceRequest", data, &m.Address, &m.Denom)
}

// QueryBalanceResponse carries one coin balance.
type QueryBalanceResponse struct {
	Balance *Coin
}

func (m *QueryBalanceResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Balance != nil {
		b = appendEmbedded(b, 1, m.Balance.append(nil))
	}
	return b, nil
}

func (m *QueryBalanceResponse) Unmarshal(data []byte) error {
	*m = QueryBalanceResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("QueryBalanceResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Balance = new(Coin)
			n, err = consumeEmbedded(data, typ, m.Balance)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("QueryBalanceResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgSend is cosmos.bank.v1beta1.MsgSend.
type MsgSend struct {
	FromAddress string
	ToAddress   string
	Amount      []*Coin
}

func (*MsgSend) TypeURL() string { return "/cosmos.bank.v1beta1.MsgSend" }

func (m *MsgSend) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *MsgSend) append(b []byte) []byte {
	b = appendString(b, 1, m.FromAddress)
	b = appendString(b, 2, m.ToAddress)
	for _, c := range m.Amount {
		b = appendEmbedded(b, 3, c.append(nil))
	}
	return b
}

func (m *MsgSend) Unmarshal(data []byte) error {
	*m = MsgSend{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("MsgSend", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.FromAddress, n, err = consumeString(data, typ)
		case 2:
			m.ToAddress, n, err = consumeString(data, typ)
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
			return malformed("MsgSend", err)
		}
		data = data[n:]
	}
	return nil
}

// MsgSendResponse is empty.
type MsgSendResponse struct{ emptyMessage }

// EventAttribute is one key/value of an ABCI event.
type EventAttribute struct {
	Key   string
	Value string
	Index bool
}

func (m *EventAttribute) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *EventAttribute) append(b []byte) []byte {
	b = appendString(b, 1, m.Key)
	b = appendString(b, 2, m.Value)
	b = appendBool(b, 3, m.Index)
	return b
}

func (m *EventAttribute) Unmarshal(data []byte) error {
	*m = EventAttribute{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("EventAttribute", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Key, n, err = consumeString(data, typ)
		case 2:
			m.Value, n, err = consumeString(data, typ)
		case 3:
			m.Index, n, err = consumeBool(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("EventAttribute", err)
		}
		data = data[n:]
	}
	return nil
}

// Event is one typed ABCI event.
type Event struct {
	Type       string
	Attributes []*EventAttribute
}

func (m *Event) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Event) append(b []byte) []byte {
	b = appendString(b, 1, m.Type)
	for _, a := range m.Attributes {
		b = appendEmbedded(b, 2, a.append(nil))
	}
	return b
}

func (m *Event) Unmarshal(data []byte) error {
	*m = Event{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Event", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Type, n, err = consumeString(data, typ)
		case 2:
			a := new(EventAttribute)
			n, err = consumeEmbedded(data, typ, a)
			if err == nil {
				m.Attributes = append(m.Attributes, a)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Event", err)
		}
		data = data[n:]
	}
	return nil
}

// TxResponse is cosmos.base.abci.v1beta1.TxResponse, the ledger's
// verdict on a transaction. Code 0 means committed.
type TxResponse struct {
	Height    int64
	TxHash    string
	Codespace string
	Code      uint32
	Data      string
	RawLog    string
	GasWanted int64
	GasUsed   int64
	Events    []*Event
}

func (m *TxResponse) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TxResponse) append(b []byte) []byte {
	b = appendInt64(b, 1, m.Height)
	b = appendString(b, 2, m.TxHash)
	b = appendString(b, 3, m.Codespace)
	b = appendUint32(b, 4, m.Code)
	b = appendString(b, 5, m.Data)
	b = appendString(b, 6, m.RawLog)
	b = appendInt64(b, 9, m.GasWanted)
	b = appendInt64(b, 10, m.GasUsed)
	for _, e := range m.Events {
		b = appendEmbedded(b, 13, e.append(nil))
	}
	return b
}

func (m *TxResponse) Unmarshal(data []byte) error {
	*m = TxResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TxResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Height, n, err = consumeInt64(data, typ)
		case 2:
			m.TxHash, n, err = consumeString(data, typ)
		case 3:
			m.Codespace, n, err = consumeString(data, typ)
		case 4:
			m.Code, n, err = consumeUint32(data, typ)
		case 5:
			m.Data, n, err = consumeString(data, typ)
		case 6:
			m.RawLog, n, err = consumeString(data, typ)
		case 9:
			m.GasWanted, n, err = consumeInt64(data, typ)
		case 10:
			m.GasUsed, n, err = consumeInt64(data, typ)
		case 13:
			e := new(Event)
			n, err = consumeEmbedded(data, typ, e)
			if err == nil {
				m.Events = append(m.Events, e)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TxResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// TxMsgData is cosmos.base.abci.v1beta1.TxMsgData; MsgResponses holds
// the per-message responses of a committed transaction.
type TxMsgData struct {
	MsgResponses []*Any
}

func (m *TxMsgData) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *TxMsgData) append(b []byte) []byte {
	for _, a := range m.MsgResponses {
		b = appendEmbedded(b, 2, a.append(nil))
	}
	return b
}

func (m *TxMsgData) Unmarshal(data []byte) error {
	*m = TxMsgData{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("TxMsgData", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			a := new(Any)
			n, err = consumeEmbedded(data, typ, a)
			if err == nil {
				m.MsgResponses = append(m.MsgResponses, a)
			}
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("TxMsgData", err)
		}
		data = data[n:]
	}
	return nil
}

// BroadcastTxRequest is cosmos.tx.v1beta1.BroadcastTxRequest.
type BroadcastTxRequest struct {
	TxBytes []byte
	Mode    int32
}

func (m *BroadcastTxRequest) Marshal() ([]byte, error) {
	b := appendBytes(nil, 1, m.TxBytes)
	return appendInt32(b, 2, m.Mode), nil
}

func (m *BroadcastTxRequest) Unmarshal(data []byte) error {
	*m = BroadcastTxRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("BroadcastTxRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.TxBytes, n, err = consumeBytes(data, typ)
		case 2:
			m.Mode, n, err = consumeInt32(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("BroadcastTxRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// BroadcastTxResponse wraps the TxResponse.
type BroadcastTxResponse struct {
	TxResponse *TxResponse
}

func (m *BroadcastTxResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.TxResponse != nil {
		b = appendEmbedded(b, 1, m.TxResponse.append(nil))
	}
	return b, nil
}

func (m *BroadcastTxResponse) Unmarshal(data []byte) error {
	*m = BroadcastTxResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("BroadcastTxResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.TxResponse = new(TxResponse)
			n, err = consumeEmbedded(data, typ, m.TxResponse)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("BroadcastTxResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// GetTxRequest is cosmos.tx.v1beta1.GetTxRequest.
type GetTxRequest struct {
	Hash string
}

func (m *GetTxRequest) Marshal() ([]byte, error) {
	return appendString(nil, 1, m.Hash), nil
}

func (m *GetTxRequest) Unmarshal(data []byte) error {
	*m = GetTxRequest{}
	return unmarshalIdOnly("GetTxRequest", data, &m.Hash)
}

// GetTxResponse pairs the decoded tx with its execution result.
type GetTxResponse struct {
	Tx         *Tx
	TxResponse *TxResponse
}

func (m *GetTxResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Tx != nil {
		b = appendEmbedded(b, 1, m.Tx.append(nil))
	}
	if m.TxResponse != nil {
		b = appendEmbedded(b, 2, m.TxResponse.append(nil))
	}
	return b, nil
}

func (m *GetTxResponse) Unmarshal(data []byte) error {
	*m = GetTxResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetTxResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Tx = new(Tx)
			n, err = consumeEmbedded(data, typ, m.Tx)
		case 2:
			m.TxResponse = new(TxResponse)
			n, err = consumeEmbedded(data, typ, m.TxResponse)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetTxResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// GasInfo is cosmos.base.abci.v1beta1.GasInfo.
type GasInfo struct {
	GasWanted uint64
	GasUsed   uint64
}

func (m *GasInfo) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *GasInfo) append(b []byte) []byte {
	b = appendUint64(b, 1, m.GasWanted)
	b = appendUint64(b, 2, m.GasUsed)
	return b
}

func (m *GasInfo) Unmarshal(data []byte) error {
	*m = GasInfo{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GasInfo", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.GasWanted, n, err = consumeUint64(data, typ)
		case 2:
			m.GasUsed, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GasInfo", err)
		}
		data = data[n:]
	}
	return nil
}

// SimulateRequest is cosmos.tx.v1beta1.SimulateRequest. Field 1 (the
// decoded tx) is deprecated upstream; only tx_bytes is sent.
type SimulateRequest struct {
	TxBytes []byte
}

func (m *SimulateRequest) Marshal() ([]byte, error) {
	return appendBytes(nil, 2, m.TxBytes), nil
}

func (m *SimulateRequest) Unmarshal(data []byte) error {
	*m = SimulateRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("SimulateRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			m.TxBytes, n, err = consumeBytes(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("SimulateRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// SimulateResponse carries the gas estimate.
type SimulateResponse struct {
	GasInfo *GasInfo
}

func (m *SimulateResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.GasInfo != nil {
		b = appendEmbedded(b, 1, m.GasInfo.append(nil))
	}
	return b, nil
}

func (m *SimulateResponse) Unmarshal(data []byte) error {
	*m = SimulateResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("SimulateResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.GasInfo = new(GasInfo)
			n, err = consumeEmbedded(data, typ, m.GasInfo)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("SimulateResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// GetTxsEventRequest is cosmos.tx.v1beta1.GetTxsEventRequest. Events
// holds attribute filters like "tx.height=1234".
type GetTxsEventRequest struct {
	Events     []string
	Pagination *PageRequest
}

func (m *GetTxsEventRequest) Marshal() ([]byte, error) {
	b := appendStrings(nil, 1, m.Events)
	if m.Pagination != nil {
		b = appendEmbedded(b, 2, m.Pagination.append(nil))
	}
	return b, nil
}

func (m *GetTxsEventRequest) Unmarshal(data []byte) error {
	*m = GetTxsEventRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetTxsEventRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			var v string
			v, n, err = consumeString(data, typ)
			if err == nil {
				m.Events = append(m.Events, v)
			}
		case 2:
			m.Pagination = new(PageRequest)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetTxsEventRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// GetTxsEventResponse carries the matching execution results at field
// 2; the decoded txs at field 1 are skipped.
type GetTxsEventResponse struct {
	TxResponses []*TxResponse
	Pagination  *PageResponse
	Total       uint64
}

func (m *GetTxsEventResponse) Marshal() ([]byte, error) {
	var b []byte
	for _, r := range m.TxResponses {
		b = appendEmbedded(b, 2, r.append(nil))
	}
	if m.Pagination != nil {
		b = appendEmbedded(b, 3, m.Pagination.append(nil))
	}
	b = appendUint64(b, 4, m.Total)
	return b, nil
}

func (m *GetTxsEventResponse) Unmarshal(data []byte) error {
	*m = GetTxsEventResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetTxsEventResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			r := new(TxResponse)
			n, err = consumeEmbedded(data, typ, r)
			if err == nil {
				m.TxResponses = append(m.TxResponses, r)
			}
		case 3:
			m.Pagination = new(PageResponse)
			n, err = consumeEmbedded(data, typ, m.Pagination)
		case 4:
			m.Total, n, err = consumeUint64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetTxsEventResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// BlockHeader carries the chain id and height out of a tendermint
// block header; the remaining header fields are skipped.
type BlockHeader struct {
	ChainId string
	Height  int64
}

func (m *BlockHeader) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *BlockHeader) append(b []byte) []byte {
	b = appendString(b, 2, m.ChainId)
	b = appendInt64(b, 3, m.Height)
	return b
}

func (m *BlockHeader) Unmarshal(data []byte) error {
	*m = BlockHeader{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("BlockHeader", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			m.ChainId, n, err = consumeString(data, typ)
		case 3:
			m.Height, n, err = consumeInt64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("BlockHeader", err)
		}
		data = data[n:]
	}
	return nil
}

// Block is the tendermint block, reduced to its header.
type Block struct {
	Header *BlockHeader
}

func (m *Block) Marshal() ([]byte, error) { return m.append(nil), nil }

func (m *Block) append(b []byte) []byte {
	if m.Header != nil {
		b = appendEmbedded(b, 1, m.Header.append(nil))
	}
	return b
}

func (m *Block) Unmarshal(data []byte) error {
	*m = Block{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("Block", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Header = new(BlockHeader)
			n, err = consumeEmbedded(data, typ, m.Header)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("Block", err)
		}
		data = data[n:]
	}
	return nil
}

// GetLatestBlockRequest has no fields.
type GetLatestBlockRequest struct{ emptyMessage }

// GetLatestBlockResponse carries the block at field 2; the block id at
// field 1 is skipped.
type GetLatestBlockResponse struct {
	Block *Block
}

func (m *GetLatestBlockResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Block != nil {
		b = appendEmbedded(b, 2, m.Block.append(nil))
	}
	return b, nil
}

func (m *GetLatestBlockResponse) Unmarshal(data []byte) error {
	*m = GetLatestBlockResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetLatestBlockResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			m.Block = new(Block)
			n, err = consumeEmbedded(data, typ, m.Block)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetLatestBlockResponse", err)
		}
		data = data[n:]
	}
	return nil
}

// GetBlockByHeightRequest is
// cosmos.base.tendermint.v1beta1.GetBlockByHeightRequest.
type GetBlockByHeightRequest struct {
	Height int64
}

func (m *GetBlockByHeightRequest) Marshal() ([]byte, error) {
	return appendInt64(nil, 1, m.Height), nil
}

func (m *GetBlockByHeightRequest) Unmarshal(data []byte) error {
	*m = GetBlockByHeightRequest{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetBlockByHeightRequest", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 1:
			m.Height, n, err = consumeInt64(data, typ)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetBlockByHeightRequest", err)
		}
		data = data[n:]
	}
	return nil
}

// GetBlockByHeightResponse mirrors GetLatestBlockResponse.
type GetBlockByHeightResponse struct {
	Block *Block
}

func (m *GetBlockByHeightResponse) Marshal() ([]byte, error) {
	var b []byte
	if m.Block != nil {
		b = appendEmbedded(b, 2, m.Block.append(nil))
	}
	return b, nil
}

func (m *GetBlockByHeightResponse) Unmarshal(data []byte) error {
	*m = GetBlockByHeightResponse{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return malformed("GetBlockByHeightResponse", errTruncated)
		}
		data = data[n:]
		var err error
		switch num {
		case 2:
			m.Block = new(Block)
			n, err = consumeEmbedded(data, typ, m.Block)
		default:
			n, err = skipField(data, num, typ)
		}
		if err != nil {
			return malformed("GetBlockByHeightResponse", err)
		}
		data = data[n:]
	}
	return nil
}
