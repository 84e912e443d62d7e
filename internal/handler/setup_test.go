package handler

import (
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/wire"
)

func TestHandleSitDownThenStartGameDealsOutTurnZero(t *testing.T) {
	g := game.NewGame("g1", game.DefaultOptions(), 1)
	bcast := broadcast.New()

	alice := newTestMember(1)
	bob := newTestMember(2)
	bcast.MemberJoin(alice.sess, -1, "alice")
	bcast.MemberJoin(bob.sess, -1, "bob")

	dAlice := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: -1}
	HandleSitDown(dAlice, alice.sess, &wire.SitDown{GameName: "g1", Seat: 0, Nickname: "alice"})
	if echoed, ok := alice.recv(t).(*wire.SitDown); !ok || echoed.Seat != 0 {
		t.Fatalf("alice expected her own SitDown echo")
	}
	if echoed, ok := bob.recv(t).(*wire.SitDown); !ok || echoed.Nickname != "alice" {
		t.Fatalf("bob expected alice's SitDown broadcast")
	}

	dBob := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: -1}
	HandleSitDown(dBob, bob.sess, &wire.SitDown{GameName: "g1", Seat: 1, Nickname: "bob"})
	for _, m := range []*testMember{alice, bob} {
		if echoed, ok := m.recv(t).(*wire.SitDown); !ok || echoed.Seat != 1 {
			t.Fatalf("expected bob's SitDown broadcast")
		}
	}

	if g.NumSeated() != 2 {
		t.Fatalf("NumSeated() = %d, want 2", g.NumSeated())
	}

	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}
	HandleStartGame(d, alice.sess, &wire.StartGame{GameName: "g1"})

	for _, m := range []*testMember{alice, bob} {
		layout, ok := m.recv(t).(*wire.BoardLayout2)
		if !ok {
			t.Fatalf("expected a BoardLayout2 broadcast")
		}
		if len(layout.HexLayout) == 0 {
			t.Fatalf("BoardLayout2.HexLayout should not be empty")
		}
		if _, ok := m.recv(t).(*wire.FirstPlayer); !ok {
			t.Fatalf("expected a FirstPlayer broadcast")
		}
		if _, ok := m.recv(t).(*wire.Turn); !ok {
			t.Fatalf("expected a Turn broadcast to close out STARTGAME")
		}
	}

	if g.State != game.Start1A {
		t.Fatalf("State = %v, want START1A", g.State)
	}
	if g.FirstPlayer != 0 && g.FirstPlayer != 1 {
		t.Fatalf("FirstPlayer = %d, want a seated seat", g.FirstPlayer)
	}
}

func TestHandleStartGameRejectsTooFewPlayers(t *testing.T) {
	g := game.NewGame("g1", game.DefaultOptions(), 1)
	bcast := broadcast.New()
	alice := newTestMember(1)
	bcast.MemberJoin(alice.sess, -1, "alice")

	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: -1}
	HandleSitDown(d, alice.sess, &wire.SitDown{GameName: "g1", Seat: 0, Nickname: "alice"})
	alice.recv(t) // drain the SitDown echo

	HandleStartGame(d, alice.sess, &wire.StartGame{GameName: "g1"})
	decline, ok := alice.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("expected a decline with only one seated player")
	}
	if decline.ReasonCode != ReasonIllegal {
		t.Fatalf("ReasonCode = %d, want ReasonIllegal", decline.ReasonCode)
	}
	if g.State != game.NewGameState {
		t.Fatalf("State should remain NEW_GAME after a rejected start")
	}
}
