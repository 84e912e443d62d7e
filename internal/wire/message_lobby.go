package wire

func init() {
	register(VERSION, func() Message { return &Version{} })
	register(STATUSMESSAGE, func() Message { return &StatusMessage{} })
	register(REJECTCONNECTION, func() Message { return &RejectConnection{} })
	register(SERVERPING, func() Message { return &ServerPing{} })
	register(GAMES, func() Message { return &Games{} })
	register(GAMESWITHOPTIONS, func() Message { return &GamesWithOptions{} })
	register(NEWGAME, func() Message { return &NewGame{} })
	register(NEWGAMEWITHOPTIONS, func() Message { return &NewGameWithOptions{} })
	register(DELETEGAME, func() Message { return &DeleteGame{} })
	register(JOINGAME, func() Message { return &JoinGame{} })
	register(JOINGAMEAUTH, func() Message { return &JoinGameAuth{} })
	register(LEAVEGAME, func() Message { return &LeaveGame{} })
	register(GAMEMEMBERS, func() Message { return &GameMembers{} })
	register(GAMEOPTIONGETDEFAULTS, func() Message { return &GameOptionGetDefaults{} })
	register(GAMEOPTIONINFO, func() Message { return &GameOptionInfo{} })
	register(SCENARIOINFO, func() Message { return &ScenarioInfo{} })
	register(AUTHREQUEST, func() Message { return &AuthRequest{} })
}

// Version is the first handshake message, sent by both peers.
type Version struct {
	VersNum    int
	VersStr    string
	BuildStr   string
	FeatureSet string
	Locale     string
}

func (m *Version) Type() MsgType { return VERSION }
func (m *Version) encode(w *Writer) {
	w.WriteInt(m.VersNum)
	w.WriteString(m.VersStr)
	w.WriteString(m.BuildStr)
	w.WriteString(m.FeatureSet)
	w.WriteString(m.Locale)
}
func (m *Version) decode(r *Reader) {
	m.VersNum = r.ReadInt()
	m.VersStr = r.ReadString()
	m.BuildStr = r.ReadString()
	m.FeatureSet = r.ReadString()
	m.Locale = r.ReadString()
}

// StatusMessage codes: 0=OK/welcome, nonzero = a rejection reason.
type StatusMessage struct {
	Code int
	Text string
}

func (m *StatusMessage) Type() MsgType { return STATUSMESSAGE }
func (m *StatusMessage) encode(w *Writer) {
	w.WriteInt(m.Code)
	w.WriteString(m.Text)
}
func (m *StatusMessage) decode(r *Reader) {
	m.Code = r.ReadInt()
	m.Text = r.ReadString()
}

type RejectConnection struct {
	Text string
}

func (m *RejectConnection) Type() MsgType    { return REJECTCONNECTION }
func (m *RejectConnection) encode(w *Writer) { w.WriteString(m.Text) }
func (m *RejectConnection) decode(r *Reader) { m.Text = r.ReadString() }

type ServerPing struct {
	SleepMillis int
}

func (m *ServerPing) Type() MsgType    { return SERVERPING }
func (m *ServerPing) encode(w *Writer) { w.WriteInt(m.SleepMillis) }
func (m *ServerPing) decode(r *Reader) { m.SleepMillis = r.ReadInt() }

type Games struct {
	Names []string
}

func (m *Games) Type() MsgType    { return GAMES }
func (m *Games) encode(w *Writer) { w.WriteStringList(m.Names) }
func (m *Games) decode(r *Reader) { m.Names = r.ReadStringList() }

// GameInfo pairs a game name with its option string, used by
// GAMESWITHOPTIONS. Option string form matches NewGameWithOptions.Opts.
type GameInfo struct {
	Name string
	Opts string
}

type GamesWithOptions struct {
	Games []GameInfo
}

func (m *GamesWithOptions) Type() MsgType { return GAMESWITHOPTIONS }
func (m *GamesWithOptions) encode(w *Writer) {
	w.WriteInt(len(m.Games))
	for _, g := range m.Games {
		w.WriteString(g.Name)
		w.WriteString(g.Opts)
	}
}
func (m *GamesWithOptions) decode(r *Reader) {
	n := r.ReadInt()
	m.Games = make([]GameInfo, n)
	for i := range m.Games {
		m.Games[i].Name = r.ReadString()
		m.Games[i].Opts = r.ReadString()
	}
}

type NewGame struct {
	GameName string
}

func (m *NewGame) Type() MsgType    { return NEWGAME }
func (m *NewGame) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *NewGame) decode(r *Reader) { m.GameName = r.ReadString() }

// NewGameWithOptions' Opts is a comma-separated "KEY=value" string, per
// §4.H's option-key catalog (e.g. "PL=4,VP=t10,BC=t3").
type NewGameWithOptions struct {
	GameName string
	Opts     string
}

func (m *NewGameWithOptions) Type() MsgType { return NEWGAMEWITHOPTIONS }
func (m *NewGameWithOptions) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteString(m.Opts)
}
func (m *NewGameWithOptions) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Opts = r.ReadString()
}

type DeleteGame struct {
	GameName string
}

func (m *DeleteGame) Type() MsgType    { return DELETEGAME }
func (m *DeleteGame) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *DeleteGame) decode(r *Reader) { m.GameName = r.ReadString() }

type JoinGame struct {
	Nickname string
	Password string
	Host     string
	GameName string
}

func (m *JoinGame) Type() MsgType { return JOINGAME }
func (m *JoinGame) encode(w *Writer) {
	w.WriteString(m.Nickname)
	w.WriteString(m.Password)
	w.WriteString(m.Host)
	w.WriteString(m.GameName)
}
func (m *JoinGame) decode(r *Reader) {
	m.Nickname = r.ReadString()
	m.Password = r.ReadString()
	m.Host = r.ReadString()
	m.GameName = r.ReadString()
}

type JoinGameAuth struct {
	GameName string
}

func (m *JoinGameAuth) Type() MsgType    { return JOINGAMEAUTH }
func (m *JoinGameAuth) encode(w *Writer) { w.WriteString(m.GameName) }
func (m *JoinGameAuth) decode(r *Reader) { m.GameName = r.ReadString() }

type LeaveGame struct {
	GameName string
	Nickname string
}

func (m *LeaveGame) Type() MsgType { return LEAVEGAME }
func (m *LeaveGame) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteString(m.Nickname)
}
func (m *LeaveGame) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Nickname = r.ReadString()
}

type GameMembers struct {
	GameName string
	Members  []string
}

func (m *GameMembers) Type() MsgType { return GAMEMEMBERS }
func (m *GameMembers) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteStringList(m.Members)
}
func (m *GameMembers) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.Members = r.ReadStringList()
}

// GameOptionGetDefaults carries "KEY=value" pairs the client doesn't
// recognize; empty on the client→server leg, populated on the reply.
type GameOptionGetDefaults struct {
	Opts []string
}

func (m *GameOptionGetDefaults) Type() MsgType    { return GAMEOPTIONGETDEFAULTS }
func (m *GameOptionGetDefaults) encode(w *Writer) { w.WriteStringList(m.Opts) }
func (m *GameOptionGetDefaults) decode(r *Reader) { m.Opts = r.ReadStringList() }

// GameOptionInfo describes one catalog entry. Key "-" is the terminator
// the server sends after the last real option, per §4.G step 4.
type GameOptionInfo struct {
	Key         string
	OptType     int // BOOL=1, INT=2, INTBOOL=3, ENUM=4, ENUMBOOL=5, STRING=6
	MinValue    int
	MaxValue    int
	DefaultInt  int
	DefaultBool bool
	DefaultStr  string
	MinVersion  int
}

func (m *GameOptionInfo) Type() MsgType { return GAMEOPTIONINFO }
func (m *GameOptionInfo) encode(w *Writer) {
	w.WriteString(m.Key)
	w.WriteInt(m.OptType)
	w.WriteInt(m.MinValue)
	w.WriteInt(m.MaxValue)
	w.WriteInt(m.DefaultInt)
	w.WriteBool(m.DefaultBool)
	w.WriteString(m.DefaultStr)
	w.WriteInt(m.MinVersion)
}
func (m *GameOptionInfo) decode(r *Reader) {
	m.Key = r.ReadString()
	m.OptType = r.ReadInt()
	m.MinValue = r.ReadInt()
	m.MaxValue = r.ReadInt()
	m.DefaultInt = r.ReadInt()
	m.DefaultBool = r.ReadBool()
	m.DefaultStr = r.ReadString()
	m.MinVersion = r.ReadInt()
}

// ScenarioInfo describes one catalog scenario. Key "-" is the terminator.
type ScenarioInfo struct {
	Key         string
	Name        string
	Description string
	MinVersion  int
}

func (m *ScenarioInfo) Type() MsgType { return SCENARIOINFO }
func (m *ScenarioInfo) encode(w *Writer) {
	w.WriteString(m.Key)
	w.WriteString(m.Name)
	w.WriteString(m.Description)
	w.WriteInt(m.MinVersion)
}
func (m *ScenarioInfo) decode(r *Reader) {
	m.Key = r.ReadString()
	m.Name = r.ReadString()
	m.Description = r.ReadString()
	m.MinVersion = r.ReadInt()
}

// AuthRequest role: 0=player (P), 1=spectator/game-watcher.
// Scheme: password scheme identifier (1 = plaintext-over-framed-transport).
type AuthRequest struct {
	Role     int
	Nickname string
	Scheme   int
	Password string
}

func (m *AuthRequest) Type() MsgType { return AUTHREQUEST }
func (m *AuthRequest) encode(w *Writer) {
	w.WriteInt(m.Role)
	w.WriteString(m.Nickname)
	w.WriteInt(m.Scheme)
	w.WriteString(m.Password)
}
func (m *AuthRequest) decode(r *Reader) {
	m.Role = r.ReadInt()
	m.Nickname = r.ReadString()
	m.Scheme = r.ReadInt()
	m.Password = r.ReadString()
}
