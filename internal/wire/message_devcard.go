package wire

func init() {
	register(BUYDEVCARDREQUEST, func() Message { return &BuyDevCardRequest{} })
	register(PLAYDEVCARDREQUEST, func() Message { return &PlayDevCardRequest{} })
	register(DEVCARDACTION, func() Message { return &DevCardAction{} })
	register(DEVCARDCOUNT, func() Message { return &DevCardCount{} })
	register(SETPLAYEDDEVCARD, func() Message { return &SetPlayedDevCard{} })
	register(PICKRESOURCES, func() Message { return &PickResources{} })
	register(PICKRESOURCETYPE, func() Message { return &PickResourceType{} })
}

type BuyDevCardRequest struct {
	GameName string
}

func (m *BuyDevCardRequest) Type() MsgType    { return BUYDEVCARDREQUEST }
func (m *BuyDevCardRequest) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *BuyDevCardRequest) decode(r *Reader) { m.GameName = r.ReadString() }

type PlayDevCardRequest struct {
	GameName string
	CardType int
}

func (m *PlayDevCardRequest) Type() MsgType { return PLAYDEVCARDREQUEST }
func (m *PlayDevCardRequest) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.CardType)
}
func (m *PlayDevCardRequest) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.CardType = r.ReadInt()
}

// DevCardAction reports a single inventory change. Action: 1=DRAW
// (bought this turn, unknown type to others), 2=PLAY, 3=ADDOLD,
// 4=ADDNEW — matches the teacher's SOCDevCardAction encoding, which this
// keeps unchanged since it already closes over exactly these four cases.
type DevCardAction struct {
	GameName string
	Seat     int
	Action   int
	CardType int
}

func (m *DevCardAction) Type() MsgType { return DEVCARDACTION }
func (m *DevCardAction) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Action)
	w.WriteInt(m.CardType)
}
func (m *DevCardAction) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Action = r.ReadInt()
	m.CardType = r.ReadInt()
}

type DevCardCount struct {
	GameName string
	Count    int
}

func (m *DevCardCount) Type() MsgType    { return DEVCARDCOUNT }
func (m *DevCardCount) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Count) }
func (m *DevCardCount) decode(r *Reader) { m.GameName = r.ReadString(); m.Count = r.ReadInt() }

type SetPlayedDevCard struct {
	GameName string
	Seat     int
	Played   bool
}

func (m *SetPlayedDevCard) Type() MsgType { return SETPLAYEDDEVCARD }
func (m *SetPlayedDevCard) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteBool(m.Played)
}
func (m *SetPlayedDevCard) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Played = r.ReadBool()
}

// PickResources answers a Year of Plenty / gold-hex pick.
type PickResources struct {
	GameName  string
	Seat      int
	Resources ResourceSet
}

func (m *PickResources) Type() MsgType { return PICKRESOURCES }
func (m *PickResources) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteResourceSet(m.Resources)
}
func (m *PickResources) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Resources = r.ReadResourceSet()
}

// PickResourceType answers a Monopoly pick.
type PickResourceType struct {
	GameName string
	Seat     int
	Resource int
}

func (m *PickResourceType) Type() MsgType { return PICKRESOURCETYPE }
func (m *PickResourceType) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Resource)
}
func (m *PickResourceType) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Resource = r.ReadInt()
}
