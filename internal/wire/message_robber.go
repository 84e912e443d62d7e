package wire

func init() {
	register(MOVEROBBER, func() Message { return &MoveRobber{} })
	register(CHOOSEPLAYERREQUEST, func() Message { return &ChoosePlayerRequest{} })
	register(CHOOSEPLAYER, func() Message { return &ChoosePlayer{} })
	register(REPORTROBBERY, func() Message { return &ReportRobbery{} })
	register(DISCARDREQUEST, func() Message { return &DiscardRequest{} })
	register(DISCARD, func() Message { return &Discard{} })
}

// MoveRobber carries a negative hex coordinate to mean "move the pirate"
// rather than the robber, matching the teacher's single-field convention
// for what is otherwise the same action.
type MoveRobber struct {
	GameName string
	Seat     int
	Hex      int
}

func (m *MoveRobber) Type() MsgType { return MOVEROBBER }
func (m *MoveRobber) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Hex)
}
func (m *MoveRobber) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Hex = r.ReadInt()
}

type ChoosePlayerRequest struct {
	GameName string
	Choices  []int
}

func (m *ChoosePlayerRequest) Type() MsgType { return CHOOSEPLAYERREQUEST }
func (m *ChoosePlayerRequest) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteIntList(m.Choices)
}
func (m *ChoosePlayerRequest) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Choices = r.ReadIntList()
}

type ChoosePlayer struct {
	GameName string
	Seat     int
}

func (m *ChoosePlayer) Type() MsgType    { return CHOOSEPLAYER }
func (m *ChoosePlayer) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *ChoosePlayer) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

// ReportRobbery announces a steal. ResourceType is UNKNOWN when the
// recipient isn't the victim or perpetrator (hidden-info redaction,
// §3's broadcaster concern).
type ReportRobbery struct {
	GameName     string
	Perpetrator  int
	Victim       int
	ResourceType int
	IsGain       bool
}

func (m *ReportRobbery) Type() MsgType { return REPORTROBBERY }
func (m *ReportRobbery) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Perpetrator)
	w.WriteInt(m.Victim)
	w.WriteInt(m.ResourceType)
	w.WriteBool(m.IsGain)
}
func (m *ReportRobbery) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Perpetrator = r.ReadInt()
	m.Victim = r.ReadInt()
	m.ResourceType = r.ReadInt()
	m.IsGain = r.ReadBool()
}

type DiscardRequest struct {
	GameName string
	Count    int
}

func (m *DiscardRequest) Type() MsgType    { return DISCARDREQUEST }
func (m *DiscardRequest) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Count) }
func (m *DiscardRequest) decode(r *Reader) { m.GameName = r.ReadString(); m.Count = r.ReadInt() }

type Discard struct {
	GameName  string
	Seat      int
	Resources ResourceSet
}

func (m *Discard) Type() MsgType { return DISCARD }
func (m *Discard) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteResourceSet(m.Resources)
}
func (m *Discard) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Resources = r.ReadResourceSet()
}
