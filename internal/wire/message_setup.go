package wire

func init() {
	register(STARTGAME, func() Message { return &StartGame{} })
	register(SITDOWN, func() Message { return &SitDown{} })
	register(CHANGEFACE, func() Message { return &ChangeFace{} })
	register(SETSEATLOCK, func() Message { return &SetSeatLock{} })
	register(BOARDLAYOUT, func() Message { return &BoardLayout{} })
	register(BOARDLAYOUT2, func() Message { return &BoardLayout2{} })
	register(POTENTIALSETTLEMENTS, func() Message { return &PotentialSettlements{} })
	register(PLAYERELEMENT, func() Message { return &PlayerElement{} })
	register(PLAYERELEMENTS, func() Message { return &PlayerElements{} })
	register(GAMEELEMENTS, func() Message { return &GameElements{} })
	register(RESOURCECOUNT, func() Message { return &ResourceCount{} })
}

type StartGame struct {
	GameName string
}

func (m *StartGame) Type() MsgType    { return STARTGAME }
func (m *StartGame) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *StartGame) decode(r *Reader) { m.GameName = r.ReadString() }

type SitDown struct {
	GameName string
	Seat     int
	Nickname string
	IsRobot  bool
}

func (m *SitDown) Type() MsgType { return SITDOWN }
func (m *SitDown) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteString(m.Nickname)
	w.WriteBool(m.IsRobot)
}
func (m *SitDown) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Nickname = r.ReadString()
	m.IsRobot = r.ReadBool()
}

type ChangeFace struct {
	GameName string
	Seat     int
	FaceID   int
}

func (m *ChangeFace) Type() MsgType { return CHANGEFACE }
func (m *ChangeFace) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.FaceID)
}
func (m *ChangeFace) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.FaceID = r.ReadInt()
}

type SetSeatLock struct {
	GameName string
	Seat     int
	Locked   bool
}

func (m *SetSeatLock) Type() MsgType { return SETSEATLOCK }
func (m *SetSeatLock) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteBool(m.Locked)
}
func (m *SetSeatLock) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Locked = r.ReadBool()
}

// BoardLayout is the classic-board layout: one token per hex and per
// number-circle, indexed the same way, plus the robber's starting hex.
type BoardLayout struct {
	GameName     string
	HexLayout    []int
	NumberLayout []int
	RobberHex    int
}

func (m *BoardLayout) Type() MsgType { return BOARDLAYOUT }
func (m *BoardLayout) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteIntList(m.HexLayout)
	w.WriteIntList(m.NumberLayout)
	w.WriteInt(m.RobberHex)
}
func (m *BoardLayout) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.HexLayout = r.ReadIntList()
	m.NumberLayout = r.ReadIntList()
	m.RobberHex = r.ReadInt()
}

// BoardLayout2 extends BoardLayout with a port layout and pirate hex,
// for the sea board and scenario boards (§4.C).
type BoardLayout2 struct {
	GameName     string
	HexLayout    []int
	NumberLayout []int
	PortLayout   []int
	RobberHex    int
	PirateHex    int
}

func (m *BoardLayout2) Type() MsgType { return BOARDLAYOUT2 }
func (m *BoardLayout2) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteIntList(m.HexLayout)
	w.WriteIntList(m.NumberLayout)
	w.WriteIntList(m.PortLayout)
	w.WriteInt(m.RobberHex)
	w.WriteInt(m.PirateHex)
}
func (m *BoardLayout2) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.HexLayout = r.ReadIntList()
	m.NumberLayout = r.ReadIntList()
	m.PortLayout = r.ReadIntList()
	m.RobberHex = r.ReadInt()
	m.PirateHex = r.ReadInt()
}

type PotentialSettlements struct {
	GameName string
	Seat     int
	Nodes    []int
}

func (m *PotentialSettlements) Type() MsgType { return POTENTIALSETTLEMENTS }
func (m *PotentialSettlements) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteIntList(m.Nodes)
}
func (m *PotentialSettlements) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Nodes = r.ReadIntList()
}

// PlayerElement action: 0=SET, 1=GAIN, 2=LOSE (matches teacher's
// SOCPlayerElement action enum, carried forward unchanged).
type PlayerElement struct {
	GameName    string
	Seat        int
	Action      int
	ElementType int
	Amount      int
}

func (m *PlayerElement) Type() MsgType { return PLAYERELEMENT }
func (m *PlayerElement) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Action)
	w.WriteInt(m.ElementType)
	w.WriteInt(m.Amount)
}
func (m *PlayerElement) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Action = r.ReadInt()
	m.ElementType = r.ReadInt()
	m.Amount = r.ReadInt()
}

// PlayerElements batches several PlayerElement updates of the same
// action under one message, used by the dice-roll and discard paths.
type PlayerElements struct {
	GameName     string
	Seat         int
	Action       int
	ElementTypes []int
	Amounts      []int
}

func (m *PlayerElements) Type() MsgType { return PLAYERELEMENTS }
func (m *PlayerElements) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Action)
	w.WriteIntList(m.ElementTypes)
	w.WriteIntList(m.Amounts)
}
func (m *PlayerElements) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Action = r.ReadInt()
	m.ElementTypes = r.ReadIntList()
	m.Amounts = r.ReadIntList()
}

// GameElements updates game-wide (not per-seat) counters, e.g. remaining
// dev card count or the round number.
type GameElements struct {
	GameName     string
	ElementTypes []int
	Amounts      []int
}

func (m *GameElements) Type() MsgType { return GAMEELEMENTS }
func (m *GameElements) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteIntList(m.ElementTypes)
	w.WriteIntList(m.Amounts)
}
func (m *GameElements) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.ElementTypes = r.ReadIntList()
	m.Amounts = r.ReadIntList()
}

type ResourceCount struct {
	GameName string
	Seat     int
	Count    int
}

func (m *ResourceCount) Type() MsgType { return RESOURCECOUNT }
func (m *ResourceCount) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Count)
}
func (m *ResourceCount) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Count = r.ReadInt()
}
