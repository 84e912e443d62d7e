package wire

func init() {
	register(BUILDREQUEST, func() Message { return &BuildRequest{} })
	register(CANCELBUILDREQUEST, func() Message { return &CancelBuildRequest{} })
	register(PUTPIECE, func() Message { return &PutPiece{} })
	register(MOVEPIECE, func() Message { return &MovePiece{} })
	register(UNDOPUTPIECE, func() Message { return &UndoPutPiece{} })
	register(REMOVEPIECE, func() Message { return &RemovePiece{} })
	register(DEBUGFREEPLACE, func() Message { return &DebugFreePlace{} })
}

type BuildRequest struct {
	GameName  string
	PieceType int
}

func (m *BuildRequest) Type() MsgType    { return BUILDREQUEST }
func (m *BuildRequest) encode(w *Writer) { w.WriteString(m.GameName); w.WriteInt(m.PieceType) }
func (m *BuildRequest) decode(r *Reader) { m.GameName = r.ReadString(); m.PieceType = r.ReadInt() }

type CancelBuildRequest struct {
	GameName  string
	PieceType int
}

func (m *CancelBuildRequest) Type() MsgType { return CANCELBUILDREQUEST }
func (m *CancelBuildRequest) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.PieceType)
}
func (m *CancelBuildRequest) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.PieceType = r.ReadInt()
}

type PutPiece struct {
	GameName  string
	PieceType int
	Seat      int
	Coord     int
}

func (m *PutPiece) Type() MsgType { return PUTPIECE }
func (m *PutPiece) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.PieceType)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Coord)
}
func (m *PutPiece) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.PieceType = r.ReadInt()
	m.Seat = r.ReadInt()
	m.Coord = r.ReadInt()
}

// MovePiece relocates a ship along its route (§4.C); only SHIP supports
// this without Fortress capture semantics getting involved.
type MovePiece struct {
	GameName   string
	PieceType  int
	Seat       int
	FromCoord  int
	ToCoord    int
}

func (m *MovePiece) Type() MsgType { return MOVEPIECE }
func (m *MovePiece) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.PieceType)
	w.WriteInt(m.Seat)
	w.WriteInt(m.FromCoord)
	w.WriteInt(m.ToCoord)
}
func (m *MovePiece) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.PieceType = r.ReadInt()
	m.Seat = r.ReadInt()
	m.FromCoord = r.ReadInt()
	m.ToCoord = r.ReadInt()
}

type UndoPutPiece struct {
	GameName  string
	PieceType int
	Seat      int
	Coord     int
}

func (m *UndoPutPiece) Type() MsgType { return UNDOPUTPIECE }
func (m *UndoPutPiece) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.PieceType)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Coord)
}
func (m *UndoPutPiece) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.PieceType = r.ReadInt()
	m.Seat = r.ReadInt()
	m.Coord = r.ReadInt()
}

// RemovePiece removes a piece outright (e.g. a captured Village, or a
// Fortress reduced to nothing by the pirate), with no "undo" semantics.
type RemovePiece struct {
	GameName  string
	PieceType int
	Seat      int
	Coord     int
}

func (m *RemovePiece) Type() MsgType { return REMOVEPIECE }
func (m *RemovePiece) encode(w *Writer) {
	w.WriteString(m.GameName)
	w.WriteInt(m.PieceType)
	w.WriteInt(m.Seat)
	w.WriteInt(m.Coord)
}
func (m *RemovePiece) decode(r *Reader) {
	m.GameName = r.ReadString()
	m.PieceType = r.ReadInt()
	m.Seat = r.ReadInt()
	m.Coord = r.ReadInt()
}

type DebugFreePlace struct {
	GameName string
	On       bool
}

func (m *DebugFreePlace) Type() MsgType    { return DEBUGFREEPLACE }
func (m *DebugFreePlace) encode(w *Writer) { w.WriteString(m.GameName); w.WriteBool(m.On) }
func (m *DebugFreePlace) decode(r *Reader) { m.GameName = r.ReadString(); m.On = r.ReadBool() }
