package handler

import (
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// HandleStartGame lays out the board, seats the random first player,
// and broadcasts everything a freshly joined client needs to render
// turn zero: the layout, the potential settlements, and the turn state.
func HandleStartGame(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.StartGame)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if g.State != game.NewGameState || g.NumSeated() < 2 {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot start this game right now")
		return
	}
	g.StartGame()

	board := g.Board
	robberHex, pirateHex := board.RobberHex, board.PirateHex
	hexLayout := make([]int, board.Grid.NumHexes())
	numberLayout := make([]int, board.Grid.NumHexes())
	for h := range hexLayout {
		hexLayout[h] = int(board.HexTerrain[h])
		numberLayout[h] = board.HexNumber[h]
	}
	d.Bcast.EmitToGame(&wire.BoardLayout2{
		GameName:     m.GameName,
		HexLayout:    hexLayout,
		NumberLayout: numberLayout,
		RobberHex:    robberHex,
		PirateHex:    pirateHex,
	})
	d.Bcast.EmitToGame(&wire.FirstPlayer{GameName: m.GameName, Seat: g.FirstPlayer})
	emitTurn(d, m.GameName)
}

func HandleSitDown(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.SitDown)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat < 0 || m.Seat >= g.Options.MaxPlayers {
		decline(d, sess, m.GameName, ReasonIllegal, "invalid seat")
		return
	}
	if g.Players[m.Seat] != nil || g.SeatLocked[m.Seat] {
		decline(d, sess, m.GameName, ReasonIllegal, "seat unavailable")
		return
	}
	g.SitDown(m.Seat, m.Nickname, m.IsRobot)
	d.Bcast.SetSeat(sess, m.Seat)
	d.Bcast.EmitToGame(&wire.SitDown{GameName: m.GameName, Seat: m.Seat, Nickname: m.Nickname, IsRobot: m.IsRobot})
}

func HandleChangeFace(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.ChangeFace)
	g := d.Game
	g.Lock()
	defer g.Unlock()
	p := g.Players[m.Seat]
	if p == nil || m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	p.FaceID = m.FaceID
	d.Bcast.EmitToGame(m)
}

func HandleSetSeatLock(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.SetSeatLock)
	g := d.Game
	g.Lock()
	defer g.Unlock()
	if g.State != game.NewGameState {
		decline(d, sess, m.GameName, ReasonIllegal, "game already started")
		return
	}
	g.SeatLocked[m.Seat] = m.Locked
	d.Bcast.EmitToGame(m)
}
