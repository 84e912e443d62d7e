package wire

func init() {
	register(MAKEOFFER, func() Message { return &MakeOffer{} })
	register(ACCEPTOFFER, func() Message { return &AcceptOffer{} })
	register(REJECTOFFER, func() Message { return &RejectOffer{} })
	register(CLEAROFFER, func() Message { return &ClearOffer{} })
	register(CLEARTRADEMSG, func() Message { return &ClearTradeMsg{} })
	register(BANKTRADE, func() Message { return &BankTrade{} })
}

type MakeOffer struct {
	GameName string
	Offer    TradeOffer
}

func (m *MakeOffer) Type() MsgType { return MAKEOFFER }
func (m *MakeOffer) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteTradeOffer(m.Offer)
}
func (m *MakeOffer) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Offer = r.ReadTradeOffer()
}

// AcceptOffer settles a player-to-player trade: ToGive moves from
// Offerer to Accepter, ToGet moves the other way.
type AcceptOffer struct {
	GameName string
	Accepter int
	Offerer  int
	ToGive   ResourceSet
	ToGet    ResourceSet
}

func (m *AcceptOffer) Type() MsgType { return ACCEPTOFFER }
func (m *AcceptOffer) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Accepter)
	w.WriteInt(m.Offerer)
	w.WriteResourceSet(m.ToGive)
	w.WriteResourceSet(m.ToGet)
}
func (m *AcceptOffer) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Accepter = r.ReadInt()
	m.Offerer = r.ReadInt()
	m.ToGive = r.ReadResourceSet()
	m.ToGet = r.ReadResourceSet()
}

type RejectOffer struct {
	GameName string
	Seat     int
}

func (m *RejectOffer) Type() MsgType    { return REJECTOFFER }
func (m *RejectOffer) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *RejectOffer) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

type ClearOffer struct {
	GameName string
	Seat     int
}

func (m *ClearOffer) Type() MsgType    { return CLEAROFFER }
func (m *ClearOffer) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *ClearOffer) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

// ClearTradeMsg clears a seat's accept/reject indicators in clients'
// trade panels without touching the offer itself.
type ClearTradeMsg struct {
	GameName string
	Seat     int
}

func (m *ClearTradeMsg) Type() MsgType    { return CLEARTRADEMSG }
func (m *ClearTradeMsg) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *ClearTradeMsg) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

type BankTrade struct {
	GameName string
	Seat     int
	Give     ResourceSet
	Get      ResourceSet
}

func (m *BankTrade) Type() MsgType { return BANKTRADE }
func (m *BankTrade) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteResourceSet(m.Give)
	w.WriteResourceSet(m.Get)
}
func (m *BankTrade) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Give = r.ReadResourceSet()
	m.Get = r.ReadResourceSet()
}
