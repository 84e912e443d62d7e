package handler

import (
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/wire"
)

func TestHandleBankTradeFourToOne(t *testing.T) {
	g := newTestGame(1)
	g.State = game.Play1
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.WOOD] = 4

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "alice")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	give := wire.ResourceSet{}
	give[wire.WOOD] = 4
	get := wire.ResourceSet{}
	get[wire.ORE] = 1
	HandleBankTrade(d, member.sess, &wire.BankTrade{GameName: "g1", Seat: 0, Give: give, Get: get})

	if _, ok := member.recv(t).(*wire.BankTrade); !ok {
		t.Fatalf("expected a BankTrade echo")
	}
	if g.Players[0].Resources[wire.WOOD] != 0 || g.Players[0].Resources[wire.ORE] != 1 {
		t.Fatalf("bank trade should have swapped 4 wood for 1 ore")
	}
}

func TestHandleBankTradeRejectsBadRate(t *testing.T) {
	g := newTestGame(1)
	g.State = game.Play1
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.WOOD] = 2

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "alice")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	give := wire.ResourceSet{}
	give[wire.WOOD] = 2
	get := wire.ResourceSet{}
	get[wire.ORE] = 1
	HandleBankTrade(d, member.sess, &wire.BankTrade{GameName: "g1", Seat: 0, Give: give, Get: get})

	decline, ok := member.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("a 2-for-1 trade with no port should be rejected")
	}
	if decline.ReasonCode != ReasonNotEnoughResources {
		t.Fatalf("ReasonCode = %d, want ReasonNotEnoughResources", decline.ReasonCode)
	}
}

func TestHandleMakeOfferThenAcceptClearsTheOffer(t *testing.T) {
	g := newTestGame(2)
	g.State = game.Play1
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.WOOD] = 1
	g.Players[1].Resources[wire.CLAY] = 1

	bcast := broadcast.New()
	offerer := newTestMember(1)
	accepter := newTestMember(2)
	bcast.MemberJoin(offerer.sess, 0, "alice")
	bcast.MemberJoin(accepter.sess, 1, "bob")

	give := wire.ResourceSet{}
	give[wire.WOOD] = 1
	get := wire.ResourceSet{}
	get[wire.CLAY] = 1
	offer := wire.TradeOffer{FromSeat: 0, ToMask: []bool{false, true}, Give: give, Get: get}

	dOfferer := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}
	HandleMakeOffer(dOfferer, offerer.sess, &wire.MakeOffer{GameName: "g1", Offer: offer})
	for _, m := range []*testMember{offerer, accepter} {
		if _, ok := m.recv(t).(*wire.MakeOffer); !ok {
			t.Fatalf("expected a MakeOffer broadcast")
		}
	}

	dAccepter := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 1}
	HandleAcceptOffer(dAccepter, accepter.sess, &wire.AcceptOffer{GameName: "g1", Offerer: 0, Accepter: 1})
	for _, m := range []*testMember{offerer, accepter} {
		if _, ok := m.recv(t).(*wire.AcceptOffer); !ok {
			t.Fatalf("expected an AcceptOffer broadcast")
		}
		if clear, ok := m.recv(t).(*wire.ClearOffer); !ok || clear.Seat != 0 {
			t.Fatalf("expected a ClearOffer broadcast for the offerer's seat")
		}
	}

	if g.Players[0].Resources[wire.WOOD] != 0 || g.Players[0].Resources[wire.CLAY] != 1 {
		t.Fatalf("offerer should have traded wood for clay")
	}
	if g.Players[1].Resources[wire.CLAY] != 0 || g.Players[1].Resources[wire.WOOD] != 1 {
		t.Fatalf("accepter should have traded clay for wood")
	}
}

func TestHandleAcceptOfferRejectsWithoutAMatchingOffer(t *testing.T) {
	g := newTestGame(2)
	g.State = game.Play1
	g.CurrentPlayer = 0

	bcast := broadcast.New()
	accepter := newTestMember(2)
	bcast.MemberJoin(accepter.sess, 1, "bob")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 1}

	HandleAcceptOffer(d, accepter.sess, &wire.AcceptOffer{GameName: "g1", Offerer: 0, Accepter: 1})
	decline, ok := accepter.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("expected a decline when no offer is outstanding")
	}
	if decline.ReasonCode != ReasonIllegal {
		t.Fatalf("ReasonCode = %d, want ReasonIllegal", decline.ReasonCode)
	}
}
