package wire

func init() {
	register(TURN, func() Message { return &Turn{} })
	register(SETTURN, func() Message { return &SetTurn{} })
	register(FIRSTPLAYER, func() Message { return &FirstPlayer{} })
	register(GAMESTATE, func() Message { return &GameState{} })
	register(ROLLDICEPROMPT, func() Message { return &RollDicePrompt{} })
	register(ROLLDICE, func() Message { return &RollDice{} })
	register(DICERESULT, func() Message { return &DiceResult{} })
	register(DICERESULTRESOURCES, func() Message { return &DiceResultResources{} })
	register(ENDTURN, func() Message { return &EndTurn{} })
}

// Turn announces the new current seat and the state it enters (the
// combined SETTURN+GAMESTATE the teacher's protocol sends as one hop).
type Turn struct {
	GameName string
	Seat     int
	State    int
}

func (m *Turn) Type() MsgType { return TURN }
func (m *Turn) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteInt(m.State)
}
func (m *Turn) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.State = r.ReadInt()
}

type SetTurn struct {
	GameName string
	Seat     int
}

func (m *SetTurn) Type() MsgType    { return SETTURN }
func (m *SetTurn) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *SetTurn) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

type FirstPlayer struct {
	GameName string
	Seat     int
}

func (m *FirstPlayer) Type() MsgType    { return FIRSTPLAYER }
func (m *FirstPlayer) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *FirstPlayer) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

type GameState struct {
	GameName string
	State    int
}

func (m *GameState) Type() MsgType    { return GAMESTATE }
func (m *GameState) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.State) }
func (m *GameState) decode(r *Reader) { m.GameName = r.ReadString(); m.State = r.ReadInt() }

type RollDicePrompt struct {
	GameName string
	Seat     int
}

func (m *RollDicePrompt) Type() MsgType    { return ROLLDICEPROMPT }
func (m *RollDicePrompt) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.Seat) }
func (m *RollDicePrompt) decode(r *Reader) { m.GameName = r.ReadString(); m.Seat = r.ReadInt() }

type RollDice struct {
	GameName string
}

func (m *RollDice) Type() MsgType    { return ROLLDICE }
func (m *RollDice) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *RollDice) decode(r *Reader) { m.GameName = r.ReadString() }

type DiceResult struct {
	GameName string
	DiceA    int
	DiceB    int
}

func (m *DiceResult) Type() MsgType { return DICERESULT }
func (m *DiceResult) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.DiceA)
	w.WriteInt(m.DiceB)
}
func (m *DiceResult) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.DiceA = r.ReadInt()
	m.DiceB = r.ReadInt()
}

// DiceResultResources reports, for a 7-free dice roll, every seat that
// gained resources and their new post-roll totals — the data a client
// needs to animate the gain without a round trip per seat.
type DiceResultResources struct {
	GameName string
	Seats    []int
	Gained   []ResourceSet
	Totals   []ResourceSet
}

func (m *DiceResultResources) Type() MsgType { return DICERESULTRESOURCES }
func (m *DiceResultResources) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteIntList(m.Seats)
	w.WriteInt(len(m.Gained))
	for _, rs := range m.Gained {
		w.WriteResourceSet(rs)
	}
	w.WriteInt(len(m.Totals))
	for _, rs := range m.Totals {
		w.WriteResourceSet(rs)
	}
}
func (m *DiceResultResources) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seats = r.ReadIntList()
	n := r.ReadInt()
	m.Gained = make([]ResourceSet, n)
	for i := range m.Gained {
		m.Gained[i] = r.ReadResourceSet()
	}
	n2 := r.ReadInt()
	m.Totals = make([]ResourceSet, n2)
	for i := range m.Totals {
		m.Totals[i] = r.ReadResourceSet()
	}
}

type EndTurn struct {
	GameName string
}

func (m *EndTurn) Type() MsgType    { return ENDTURN }
func (m *EndTurn) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *EndTurn) decode(r *Reader) { m.GameName = r.ReadString() }
