package handler

import (
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

func HandleMoveRobber(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.MoveRobber)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}

	var result game.MoveRobberResult
	var err error
	if m.Hex < 0 {
		result, err = g.TryMovePirate(d.Seat, -m.Hex)
	} else {
		result, err = g.TryMoveRobber(d.Seat, m.Hex)
	}
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot move there")
		return
	}
	d.Bcast.EmitToGame(m)

	switch len(result.Victims) {
	case 0:
		emitTurn(d, m.GameName)
	case 1:
		stealAndReport(d, m.GameName, d.Seat, result.Victims[0])
		emitTurn(d, m.GameName)
	default:
		d.Bcast.EmitToPlayer(d.Seat, &wire.ChoosePlayerRequest{GameName: m.GameName, Choices: result.Victims})
		emitState(d, m.GameName)
	}
}

func HandleChoosePlayer(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.ChoosePlayer)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if d.Seat != g.CurrentPlayer {
		decline(d, sess, m.GameName, ReasonNotYourTurn, "not your turn")
		return
	}
	victim := m.Seat
	stolen, err := g.TryChoosePlayer(d.Seat, victim)
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot rob that player")
		return
	}
	reportRobbery(d, m.GameName, d.Seat, victim, stolen)
	emitTurn(d, m.GameName)
}

// stealAndReport performs the steal once the single-victim case is
// already decided by MoveRobber/MovePirate (no WAITING_FOR_ROB_CHOOSE_PLAYER
// detour needed), and reports it with the resource type hidden from
// everyone except perpetrator and victim.
func stealAndReport(d *Deps, gameName string, perp, victim int) {
	stolen := d.Game.ChoosePlayer(perp, victim)
	reportRobbery(d, gameName, perp, victim, stolen)
}

func reportRobbery(d *Deps, gameName string, perp, victim int, stolen wire.Resource) {
	for _, member := range d.Bcast.Members() {
		rt := stolen
		if member.Seat != perp && member.Seat != victim {
			rt = wire.UNKNOWN
		}
		member.Sess.SendMessage(&wire.ReportRobbery{
			GameName: gameName, Perpetrator: perp, Victim: victim,
			ResourceType: int(rt), IsGain: true,
		})
	}
}

func HandleDiscard(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.Discard)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	if err := g.TryDiscard(d.Seat, m.Resources); err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "invalid discard")
		return
	}
	types, amounts := resourceSetToElements(m.Resources)
	d.Bcast.EmitToGame(&wire.PlayerElements{GameName: m.GameName, Seat: d.Seat, Action: 2, ElementTypes: types, Amounts: amounts})
	emitState(d, m.GameName)
}
