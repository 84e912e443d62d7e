package wire

func init() {
	register(GAMESERVERTEXT, func() Message { return &GameServerText{} })
	register(GAMETEXTMSG, func() Message { return &GameTextMsg{} })
	register(BCASTTEXTMSG, func() Message { return &BcastTextMsg{} })
	register(GAMESTATS, func() Message { return &GameStats{} })
	register(PLAYERSTATS, func() Message { return &PlayerStats{} })
	register(DECLINEPLAYERREQUEST, func() Message { return &DeclinePlayerRequest{} })
	register(RESETBOARDREQUEST, func() Message { return &ResetBoardRequest{} })
	register(RESETBOARDVOTE, func() Message { return &ResetBoardVote{} })
	register(RESETBOARDAUTH, func() Message { return &ResetBoardAuth{} })
}

// GameServerText is a server-authored line (e.g. "Bob rolled a 7."),
// distinct from GameTextMsg which carries a player's own chat.
type GameServerText struct {
	GameName string
	Text     string
}

func (m *GameServerText) Type() MsgType    { return GAMESERVERTEXT }
func (m *GameServerText) encode(w *Writer) { w.WriteString(m.GameName); w.WriteString(m.Text) }
func (m *GameServerText) decode(r *Reader) { m.GameName = r.ReadString(); m.Text = r.ReadString() }

type GameTextMsg struct {
	GameName string
	Nickname string
	Text     string
}

func (m *GameTextMsg) Type() MsgType { return GAMETEXTMSG }
func (m *GameTextMsg) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteString(m.Nickname)
	w.WriteString(m.Text)
}
func (m *GameTextMsg) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Nickname = r.ReadString()
	m.Text = r.ReadString()
}

// BcastTextMsg is a server-wide announcement, sent to every connected
// session regardless of game membership (e.g. shutdown warning).
type BcastTextMsg struct {
	Text string
}

func (m *BcastTextMsg) Type() MsgType    { return BCASTTEXTMSG }
func (m *BcastTextMsg) encode(w *Writer) { w.WriteString(m.Text) }
func (m *BcastTextMsg) decode(r *Reader) { m.Text = r.ReadString() }

type GameStats struct {
	GameName string
	Scores   []int
}

func (m *GameStats) Type() MsgType    { return GAMESTATS }
func (m *GameStats) encode(w *Writer) { w.WriteString(m.GameName); w.WriteIntList(m.Scores) }
func (m *GameStats) decode(r *Reader) { m.GameName = r.ReadString(); m.Scores = r.ReadIntList() }

// PlayerStats reports per-roll resource-gain counters for one seat
// (dice-roll histogram), used by the post-game summary view.
type PlayerStats struct {
	GameName      string
	Seat          int
	ResourceRolls []int
	TradeCounts   []int
}

func (m *PlayerStats) Type() MsgType { return PLAYERSTATS }
func (m *PlayerStats) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteIntList(m.ResourceRolls)
	w.WriteIntList(m.TradeCounts)
}
func (m *PlayerStats) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.ResourceRolls = r.ReadIntList()
	m.TradeCounts = r.ReadIntList()
}

// DeclinePlayerRequest answers a rejected action with a reason code the
// client can localize, plus a raw text fallback for unrecognized codes.
type DeclinePlayerRequest struct {
	GameName   string
	ReasonCode int
	Text       string
}

func (m *DeclinePlayerRequest) Type() MsgType { return DECLINEPLAYERREQUEST }
func (m *DeclinePlayerRequest) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.ReasonCode)
	w.WriteString(m.Text)
}
func (m *DeclinePlayerRequest) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.ReasonCode = r.ReadInt()
	m.Text = r.ReadString()
}

type ResetBoardRequest struct {
	GameName string
}

func (m *ResetBoardRequest) Type() MsgType    { return RESETBOARDREQUEST }
func (m *ResetBoardRequest) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *ResetBoardRequest) decode(r *Reader) { m.GameName = r.ReadString() }

type ResetBoardVote struct {
	GameName string
	Seat     int
	Yes      bool
}

func (m *ResetBoardVote) Type() MsgType { return RESETBOARDVOTE }
func (m *ResetBoardVote) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.Seat)
	w.WriteBool(m.Yes)
}
func (m *ResetBoardVote) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Seat = r.ReadInt()
	m.Yes = r.ReadBool()
}

type ResetBoardAuth struct {
	GameName string
	Accepted bool
}

func (m *ResetBoardAuth) Type() MsgType    { return RESETBOARDAUTH }
func (m *ResetBoardAuth) encode(w *Writer) { w.WriteString(m.GameName); w.WriteBool(m.Accepted) }
func (m *ResetBoardAuth) decode(r *Reader) { m.GameName = r.ReadString(); m.Accepted = r.ReadBool() }
