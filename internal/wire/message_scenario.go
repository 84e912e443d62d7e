package wire

func init() {
	register(REVEALFOGHEX, func() Message { return &RevealFogHex{} })
	register(PIECEVALUE, func() Message { return &PieceValue{} })
	register(INVENTORYITEMACTION, func() Message { return &InventoryItemAction{} })
	register(SETSPECIALITEM, func() Message { return &SetSpecialItem{} })
	register(SIMPLEREQUEST, func() Message { return &SimpleRequest{} })
	register(SIMPLEACTION, func() Message { return &SimpleAction{} })
	register(SETSHIPROUTECLOSED, func() Message { return &SetShipRouteClosed{} })
	register(SETLASTACTION, func() Message { return &SetLastAction{} })
}

// RevealFogHex uncovers a _SC_FOG hex: its true terrain and number token.
type RevealFogHex struct {
	GameName    string
	Hex         int
	HexType     int
	NumberToken int
}

func (m *RevealFogHex) Type() MsgType { return REVEALFOGHEX }
func (m *RevealFogHex) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Hex)
	w.WriteInt(m.HexType)
	w.WriteInt(m.NumberToken)
}
func (m *RevealFogHex) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Hex = r.ReadInt()
	m.HexType = r.ReadInt()
	m.NumberToken = r.ReadInt()
}

// PieceValue sets a _SC_CLVI village's cloth-trade value, or a
// _SC_PIRI fortress's remaining-strength value.
type PieceValue struct {
	GameName string
	Coord    int
	Value    int
}

func (m *PieceValue) Type() MsgType { return PIECEVALUE }
func (m *PieceValue) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Coord)
	w.WriteInt(m.Value)
}
func (m *PieceValue) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Coord = r.ReadInt()
	m.Value = r.ReadInt()
}

// InventoryItemAction manages _SC_FTRI gift-port and _SC_WOND special
// items. Action: 1=ADD_PLAYABLE, 2=PLAYED, 3=REMOVE.
type InventoryItemAction struct {
	GameName string
	Seat     int
	Action   int
	ItemType int
}

func (m *InventoryItemAction) Type() MsgType { return INVENTORYITEMACTION }
func (m *InventoryItemAction) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Action)
	w.WriteInt(m.ItemType)
}
func (m *InventoryItemAction) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Action = r.ReadInt()
	m.ItemType = r.ReadInt()
}

// SetSpecialItem tracks a keyed, leveled, seat-scoped item (_SC_WOND
// wonder levels, _SC_FTRI trade-port-to-place); TypeKey names the kind.
type SetSpecialItem struct {
	GameName  string
	TypeKey   string
	Seat      int
	ItemCoord int
	ItemLevel int
}

func (m *SetSpecialItem) Type() MsgType { return SETSPECIALITEM }
func (m *SetSpecialItem) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteString(m.TypeKey)
	w.WriteInt(m.Seat)
	w.WriteInt(m.ItemCoord)
	w.WriteInt(m.ItemLevel)
}
func (m *SetSpecialItem) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.TypeKey = r.ReadString()
	m.Seat = r.ReadInt()
	m.ItemCoord = r.ReadInt()
	m.ItemLevel = r.ReadInt()
}

// SimpleRequest and SimpleAction are the scenario extension-point pair:
// a generic seat-scoped request/ack with two free integer parameters,
// used for scenario moves that don't warrant their own message kind
// (e.g. _SC_PIRI fortress-attack request, _SC_CLVI cloth distribution).
type SimpleRequest struct {
	GameName string
	Seat     int
	ReqType  int
	V1       int
	V2       int
}

func (m *SimpleRequest) Type() MsgType { return SIMPLEREQUEST }
func (m *SimpleRequest) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.ReqType)
	w.WriteInt(m.V1)
	w.WriteInt(m.V2)
}
func (m *SimpleRequest) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.ReqType = r.ReadInt()
	m.V1 = r.ReadInt()
	m.V2 = r.ReadInt()
}

type SimpleAction struct {
	GameName string
	Seat     int
	ActType  int
	V1       int
	V2       int
}

func (m *SimpleAction) Type() MsgType { return SIMPLEACTION }
func (m *SimpleAction) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.ActType)
	w.WriteInt(m.V1)
	w.WriteInt(m.V2)
}
func (m *SimpleAction) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.ActType = r.ReadInt()
	m.V1 = r.ReadInt()
	m.V2 = r.ReadInt()
}

// SetShipRouteClosed marks a _SC_PIRI ship edge closed (past the pirate
// fortress line) so it can no longer be extended or rerouted.
type SetShipRouteClosed struct {
	GameName string
	Edge     int
	Closed   bool
}

func (m *SetShipRouteClosed) Type() MsgType { return SETSHIPROUTECLOSED }
func (m *SetShipRouteClosed) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Edge)
	w.WriteBool(m.Closed)
}
func (m *SetShipRouteClosed) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Edge = r.ReadInt()
	m.Closed = r.ReadBool()
}

// SetLastAction records the last game action for replay/undo bookkeeping
// in scenarios that allow one (e.g. _SC_PIRI fortress-attack undo window).
type SetLastAction struct {
	GameName   string
	ActionType int
	P1, P2, P3 int
	RS1, RS2   ResourceSet
}

func (m *SetLastAction) Type() MsgType { return SETLASTACTION }
func (m *SetLastAction) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.ActionType)
	w.WriteInt(m.P1)
	w.WriteInt(m.P2)
	w.WriteInt(m.P3)
	w.WriteResourceSet(m.RS1)
	w.WriteResourceSet(m.RS2)
}
func (m *SetLastAction) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.ActionType = r.ReadInt()
	m.P1 = r.ReadInt()
	m.P2 = r.ReadInt()
	m.P3 = r.ReadInt()
	m.RS1 = r.ReadResourceSet()
	m.RS2 = r.ReadResourceSet()
}
