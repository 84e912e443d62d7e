package handler

import (
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// resourceSetToElements flattens a ResourceSet's known (non-UNKNOWN)
// slots into parallel element-type/amount slices for PLAYERELEMENTS.
func resourceSetToElements(rs wire.ResourceSet) ([]int, []int) {
	var types, amounts []int
	for rt := 0; rt < int(wire.UNKNOWN); rt++ {
		if rs[rt] == 0 {
			continue
		}
		types = append(types, rt)
		amounts = append(amounts, rs[rt])
	}
	return types, amounts
}

// allResourceElements reports all five CLAY..WOOD slots of rs in order,
// zeros included — the exact-total form PLAYERELEMENTS(SET, ...) needs.
func allResourceElements(rs wire.ResourceSet) ([]int, []int) {
	types := make([]int, int(wire.UNKNOWN))
	amounts := make([]int, int(wire.UNKNOWN))
	for rt := 0; rt < int(wire.UNKNOWN); rt++ {
		types[rt] = rt
		amounts[rt] = rs[rt]
	}
	return types, amounts
}

func HandleRollDice(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.RollDice)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if d.Seat != g.CurrentPlayer {
		decline(d, sess, m.GameName, ReasonNotYourTurn, "not your turn")
		return
	}
	result, err := g.TryRollDice(d.Seat)
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot roll right now")
		return
	}
	d.Bcast.EmitToGame(&wire.DiceResult{GameName: m.GameName, DiceA: result.A, DiceB: result.B})

	if !result.RobberHit {
		seats := make([]int, 0, len(result.Gains))
		gained := make([]wire.ResourceSet, 0, len(result.Gains))
		totals := make([]wire.ResourceSet, 0, len(result.Gains))
		for seat, rs := range result.Gains {
			seats = append(seats, seat)
			gained = append(gained, rs)
			totals = append(totals, g.Players[seat].Resources)
		}
		if len(seats) > 0 {
			d.Bcast.EmitToGame(&wire.DiceResultResources{
				GameName: m.GameName, Seats: seats, Gained: gained, Totals: totals,
			})
		}
		for i, seat := range seats {
			types, amounts := allResourceElements(totals[i])
			d.Bcast.EmitToPlayer(seat, &wire.PlayerElements{
				GameName: m.GameName, Seat: seat, Action: 0, ElementTypes: types, Amounts: amounts,
			})
		}
		emitState(d, m.GameName)
		return
	}

	emitGameText(d, m.GameName, "A 7 was rolled, players with more than 7 cards must discard.")
	for seat, p := range g.Players {
		if p != nil && p.NeedsToDiscard {
			if victim := d.Bcast.SessionForSeat(seat); victim != nil {
				victim.SendMessage(&wire.DiscardRequest{GameName: m.GameName, Count: p.Resources.Total() / 2})
			}
		}
	}
	emitState(d, m.GameName)
}

func HandleEndTurn(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.EndTurn)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if err := g.TryEndTurn(d.Seat); err != nil {
		decline(d, sess, m.GameName, ReasonNotYourTurn, "cannot end turn now")
		return
	}
	d.Bcast.EmitToGame(&wire.EndTurn{GameName: m.GameName})
	emitTurn(d, m.GameName)
}
