package handler

import (
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/wire"
)

func TestHandleBuyDevCardRequestHidesTypeFromOtherSeats(t *testing.T) {
	g := newTestGame(2)
	g.State = game.Play1
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.ORE] = 1
	g.Players[0].Resources[wire.SHEEP] = 1
	g.Players[0].Resources[wire.WHEAT] = 1
	deckBefore := len(g.DevCardDeck)
	bought := g.DevCardDeck[len(g.DevCardDeck)-1]

	bcast := broadcast.New()
	buyer := newTestMember(1)
	other := newTestMember(2)
	bcast.MemberJoin(buyer.sess, 0, "alice")
	bcast.MemberJoin(other.sess, 1, "bob")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	HandleBuyDevCardRequest(d, buyer.sess, &wire.BuyDevCardRequest{GameName: "g1"})

	buyerAction, ok := buyer.recv(t).(*wire.DevCardAction)
	if !ok {
		t.Fatalf("expected a DevCardAction for the buyer")
	}
	if wire.DevCardType(buyerAction.CardType) != bought {
		t.Fatalf("buyer should see the real card type")
	}

	otherAction, ok := other.recv(t).(*wire.DevCardAction)
	if !ok {
		t.Fatalf("expected a DevCardAction for the other seat")
	}
	if wire.DevCardType(otherAction.CardType) != wire.DevCardUnknown {
		t.Fatalf("other seats must not see which card was bought")
	}

	for _, m := range []*testMember{buyer, other} {
		count, ok := m.recv(t).(*wire.DevCardCount)
		if !ok {
			t.Fatalf("expected a DevCardCount broadcast")
		}
		if count.Count != deckBefore-1 {
			t.Fatalf("DevCardCount = %d, want %d", count.Count, deckBefore-1)
		}
	}
}

func TestHandleBuyDevCardRequestRejectsOffTurn(t *testing.T) {
	g := newTestGame(2)
	g.State = game.Play1
	g.CurrentPlayer = 0

	bcast := broadcast.New()
	member := newTestMember(2)
	bcast.MemberJoin(member.sess, 1, "bob")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 1}

	HandleBuyDevCardRequest(d, member.sess, &wire.BuyDevCardRequest{GameName: "g1"})
	decline, ok := member.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("expected a DeclinePlayerRequest off-turn")
	}
	if decline.ReasonCode != ReasonNotYourTurn {
		t.Fatalf("ReasonCode = %d, want ReasonNotYourTurn", decline.ReasonCode)
	}
}

func TestHandlePickResourceTypeAppliesMonopoly(t *testing.T) {
	g := newTestGame(2)
	g.State = game.WaitingForMonopoly
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.WHEAT] = 0
	g.Players[1].Resources[wire.WHEAT] = 3

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "alice")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	HandlePickResourceType(d, member.sess, &wire.PickResourceType{GameName: "g1", Seat: 0, Resource: int(wire.WHEAT)})

	elem, ok := member.recv(t).(*wire.PlayerElement)
	if !ok {
		t.Fatalf("expected a PlayerElement broadcast")
	}
	if elem.Amount != 3 {
		t.Fatalf("PlayerElement.Amount = %d, want 3 (total monopolized)", elem.Amount)
	}
	if _, ok := member.recv(t).(*wire.Turn); !ok {
		t.Fatalf("expected a Turn broadcast to close out the monopoly")
	}
	if g.Players[0].Resources[wire.WHEAT] != 3 || g.Players[1].Resources[wire.WHEAT] != 0 {
		t.Fatalf("monopoly should have moved every wheat to seat 0")
	}
}

func TestHandlePickResourceTypeRejectsWrongState(t *testing.T) {
	g := newTestGame(1)
	g.State = game.Play1
	g.CurrentPlayer = 0

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "alice")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	HandlePickResourceType(d, member.sess, &wire.PickResourceType{GameName: "g1", Seat: 0, Resource: int(wire.WHEAT)})
	decline, ok := member.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("expected a decline when not waiting for a monopoly pick")
	}
	if decline.ReasonCode != ReasonIllegal {
		t.Fatalf("ReasonCode = %d, want ReasonIllegal", decline.ReasonCode)
	}
}
