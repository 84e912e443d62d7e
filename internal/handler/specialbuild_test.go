package handler

import (
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/wire"
)

// TestSpecialBuildDetourBeforeNextPlayersTurn exercises the 6-player
// special-build rule: an off-turn seat asks for a slot, the current
// player ends their turn, the asker gets a detour turn of their own,
// and only once that detour ends does the normal rotation resume.
func TestSpecialBuildDetourBeforeNextPlayersTurn(t *testing.T) {
	g := newTestGame(4)
	g.Options.MaxPlayers = 6
	g.Options.Use6Player = true
	for i := 4; i < 6; i++ {
		g.Players[i] = game.NewPlayer(i)
	}
	g.State = game.Play1
	g.CurrentPlayer = 0
	g.FirstPlayer = 0

	bcast := broadcast.New()
	asker := newTestMember(4)
	bcast.MemberJoin(asker.sess, 3, "asker")
	dAsker := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 3}

	HandleBuildRequest(dAsker, asker.sess, &wire.BuildRequest{GameName: "g1", PieceType: -1})
	elem, ok := asker.recv(t).(*wire.PlayerElement)
	if !ok || elem.ElementType != ElementAskSpecialBuild || elem.Seat != 3 {
		t.Fatalf("expected a PlayerElement reporting seat 3's special-build ask, got %#v", elem)
	}
	if !g.Players[3].AskedSpecialBuild {
		t.Fatalf("seat 3 should be recorded as having asked for special build")
	}

	ender := newTestMember(1)
	bcast.MemberJoin(ender.sess, 0, "current")
	dEnder := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}
	HandleEndTurn(dEnder, ender.sess, &wire.EndTurn{GameName: "g1"})

	for _, m := range []*testMember{asker, ender} {
		if _, ok := m.recv(t).(*wire.EndTurn); !ok {
			t.Fatalf("expected an EndTurn broadcast")
		}
		turn, ok := m.recv(t).(*wire.Turn)
		if !ok {
			t.Fatalf("expected a Turn broadcast")
		}
		if turn.Seat != 3 {
			t.Fatalf("Turn.Seat = %d, want 3 (the special builder)", turn.Seat)
		}
		if game.GameState(turn.State) != game.SpecialBuilding {
			t.Fatalf("Turn.State = %v, want SPECIAL_BUILDING", game.GameState(turn.State))
		}
	}
	if g.State != game.SpecialBuilding || g.CurrentPlayer != 3 {
		t.Fatalf("game should be in SPECIAL_BUILDING with seat 3 current")
	}

	HandleEndTurn(dAsker, asker.sess, &wire.EndTurn{GameName: "g1"})
	for _, m := range []*testMember{asker, ender} {
		m.recv(t) // EndTurn echo
		turn, ok := m.recv(t).(*wire.Turn)
		if !ok {
			t.Fatalf("expected a Turn broadcast closing the detour")
		}
		if turn.Seat != 1 {
			t.Fatalf("Turn.Seat = %d, want 1 (the normal next player)", turn.Seat)
		}
		if game.GameState(turn.State) != game.RollOrCard {
			t.Fatalf("Turn.State = %v, want ROLL_OR_CARD", game.GameState(turn.State))
		}
	}
	if g.State != game.RollOrCard || g.CurrentPlayer != 1 {
		t.Fatalf("game should have resumed the normal rotation at seat 1")
	}
	if g.Players[3].AskedSpecialBuild {
		t.Fatalf("seat 3's special-build flag should be cleared once its detour ends")
	}
}

func TestHandleBuildRequestRejectsCurrentPlayerAsking(t *testing.T) {
	g := newTestGame(2)
	g.Options.SpecialBuildOnly5or6 = true
	g.State = game.Play1
	g.CurrentPlayer = 0

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "alice")
	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}

	HandleBuildRequest(d, member.sess, &wire.BuildRequest{GameName: "g1", PieceType: -1})
	decline, ok := member.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("the current player may not ask for a special-build slot on their own turn")
	}
	if decline.ReasonCode != ReasonIllegal {
		t.Fatalf("ReasonCode = %d, want ReasonIllegal", decline.ReasonCode)
	}
}
