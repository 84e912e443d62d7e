package handler

import (
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

func HandleBuyDevCardRequest(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.BuyDevCardRequest)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if d.Seat != g.CurrentPlayer {
		decline(d, sess, m.GameName, ReasonNotYourTurn, "not your turn")
		return
	}
	cardType, err := g.TryBuyDevCard(d.Seat)
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot buy a card right now")
		return
	}
	for _, member := range d.Bcast.Members() {
		ct := cardType
		if member.Seat != d.Seat {
			ct = wire.DevCardUnknown
		}
		member.Sess.SendMessage(&wire.DevCardAction{GameName: m.GameName, Seat: d.Seat, Action: 1, CardType: int(ct)})
	}
	d.Bcast.EmitToGame(&wire.DevCardCount{GameName: m.GameName, Count: len(g.DevCardDeck)})
}

// HandlePlayDevCardRequest dispatches to the matching Try* by card type,
// then announces the play and whatever it immediately unlocked (the
// new turn state a client needs to know what's being asked of it next).
func HandlePlayDevCardRequest(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.PlayDevCardRequest)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	cardType := wire.DevCardType(m.CardType)
	if d.Seat != g.CurrentPlayer {
		decline(d, sess, m.GameName, ReasonNotYourTurn, "not your turn")
		return
	}
	var err error
	switch cardType {
	case wire.DevCardKnight:
		err = g.TryPlayKnight(d.Seat)
	case wire.DevCardRoadBuilding:
		err = g.TryPlayRoadBuilding(d.Seat)
	case wire.DevCardDiscovery:
		err = g.TryPlayDiscovery(d.Seat)
	case wire.DevCardMonopoly:
		err = g.TryPlayMonopoly(d.Seat)
	default:
		err = game.ErrIllegalAction
	}
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot play that card now")
		return
	}

	d.Bcast.EmitToGame(&wire.DevCardAction{GameName: m.GameName, Seat: d.Seat, Action: 2, CardType: int(cardType)})
	d.Bcast.EmitToGame(&wire.SetPlayedDevCard{GameName: m.GameName, Seat: d.Seat, Played: true})
	if cardType == wire.DevCardKnight {
		if la := g.LargestArmyPlayer; la >= 0 {
			d.Bcast.EmitToGame(&wire.GameElements{GameName: m.GameName, ElementTypes: []int{1}, Amounts: []int{la}})
		}
	}
	emitState(d, m.GameName)
}

// HandlePickResources answers either a Discovery (Year of Plenty) pick
// or a gold-hex pick, distinguished by which state is currently waiting.
func HandlePickResources(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.PickResources)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	var err error
	switch g.State {
	case game.WaitingForDiscovery:
		err = g.TryDoDiscoveryAction(d.Seat, m.Resources)
	case game.WaitingForPickGoldResource, game.StartsWaitingForPickGoldResource:
		err = g.TryPickGoldHexResources(d.Seat, m.Resources)
	default:
		err = game.ErrIllegalAction
	}
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "invalid resource pick")
		return
	}
	types, amounts := resourceSetToElements(m.Resources)
	d.Bcast.EmitToGame(&wire.PlayerElements{GameName: m.GameName, Seat: d.Seat, Action: 1, ElementTypes: types, Amounts: amounts})
	emitTurn(d, m.GameName)
}

func HandlePickResourceType(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.PickResourceType)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat || g.State != game.WaitingForMonopoly {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot monopolize now")
		return
	}
	total, err := g.TryDoMonopolyAction(d.Seat, wire.Resource(m.Resource))
	if err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot monopolize now")
		return
	}
	d.Bcast.EmitToGame(&wire.PlayerElement{GameName: m.GameName, Seat: d.Seat, Action: 1, ElementType: m.Resource, Amount: total})
	emitTurn(d, m.GameName)
}

func HandleGameTextMsg(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.GameTextMsg)
	d.Bcast.EmitToGame(m)
}
