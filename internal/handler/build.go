package handler

import (
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// HandlePutPiece routes a placement to the matching Try* by piece type,
// then broadcasts the committed piece and whatever state it produced
// (longest road may have changed hands, or the turn may have advanced
// out of initial placement).
func HandlePutPiece(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.PutPiece)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	var err error
	switch wire.PieceType(m.PieceType) {
	case wire.ROAD:
		err = g.TryBuildRoad(d.Seat, m.Coord)
	case wire.SHIP:
		err = g.TryBuildShip(d.Seat, m.Coord)
	case wire.SETTLEMENT:
		err = g.TryBuildSettlement(d.Seat, m.Coord)
	case wire.CITY:
		err = g.TryBuildCity(d.Seat, m.Coord)
	default:
		err = game.ErrIllegalAction
	}
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot place there")
		return
	}

	d.Bcast.EmitToGame(&wire.PutPiece{GameName: m.GameName, PieceType: m.PieceType, Seat: d.Seat, Coord: m.Coord})
	if lr := g.LongestRoadPlayer; lr >= 0 {
		d.Bcast.EmitToGame(&wire.GameElements{GameName: m.GameName, ElementTypes: []int{0}, Amounts: []int{lr}})
	}
	emitTurn(d, m.GameName)
}

// ElementAskSpecialBuild is the PlayerElement.ElementType used to report
// a special-build request; outside wire.Resource's range so it can never
// be mistaken for a resource-count change.
const ElementAskSpecialBuild = 100

// HandleBuildRequest: piece=-1 is an off-turn seat asking for a
// special-build slot once the current player ends their turn (the 5-6
// player rule, §4.D). Any other PieceType carries no behavior here.
func HandleBuildRequest(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.BuildRequest)
	if m.PieceType != -1 {
		return
	}
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if err := g.TryAskSpecialBuild(d.Seat); err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot ask for special build now")
		return
	}
	d.Bcast.EmitToGame(&wire.PlayerElement{
		GameName: m.GameName, Seat: d.Seat, Action: 1, ElementType: ElementAskSpecialBuild, Amount: 1,
	})
}

func HandleUndoPutPiece(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.UndoPutPiece)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	if err := g.TryUndoPutPiece(d.Seat, wire.PieceType(m.PieceType), m.Coord); err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "nothing to undo")
		return
	}
	d.Bcast.EmitToGame(m)
	emitTurn(d, m.GameName)
}

// HandleMovePiece relocates a ship along its open route; only ships
// support this, so anything else is rejected outright.
func HandleMovePiece(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.MovePiece)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat || wire.PieceType(m.PieceType) != wire.SHIP {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot move that piece")
		return
	}
	piece := g.Board.RoadAt(m.FromCoord)
	if piece == nil || piece.Owner != d.Seat || g.State != game.Play1 || d.Seat != g.CurrentPlayer {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot move that ship")
		return
	}
	if g.Board.RoadAt(m.ToCoord) != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "destination occupied")
		return
	}
	delete(g.Board.Roads, m.FromCoord)
	g.Board.Roads[m.ToCoord] = &game.Piece{Type: wire.SHIP, Owner: d.Seat, Coord: m.ToCoord}
	d.Bcast.EmitToGame(m)
}
