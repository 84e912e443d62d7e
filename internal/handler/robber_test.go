package handler

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// testMember wires one end of a LocalTransport pair into the
// broadcaster as a connected seat, keeping the other end for the test
// to read whatever the handler sent that seat.
type testMember struct {
	sess   *session.Session
	client *session.LocalTransport
}

func newTestMember(id uint64) *testMember {
	a, b := session.NewLocalPair(32)
	sess := session.New(id, a, 32, 32, zap.NewNop())
	sess.Start()
	return &testMember{sess: sess, client: b}
}

func (m *testMember) recv(t *testing.T) wire.Message {
	t.Helper()
	payload, err := m.client.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	msg, err := wire.Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return msg
}

func newTestGame(seats int) *game.Game {
	g := game.NewGame("g1", game.DefaultOptions(), 1)
	g.Board = game.NewClassicBoard(rand.New(rand.NewSource(1)), 0)
	for i := 0; i < seats; i++ {
		g.Players[i] = game.NewPlayer(i)
	}
	return g
}

func TestHandleMoveRobberSingleVictimRedactsResourceForBystanders(t *testing.T) {
	g := newTestGame(3)
	g.State = game.PlacingRobber
	g.CurrentPlayer = 0

	hex := 0
	node := g.Board.Grid.HexNodes(hex)[0]
	g.Board.Pieces[node] = &game.Piece{Type: wire.SETTLEMENT, Owner: 1, Coord: node}
	g.Players[1].Resources[wire.ORE] = 3

	bcast := broadcast.New()
	perp := newTestMember(1)
	victim := newTestMember(2)
	bystander := newTestMember(3)
	bcast.MemberJoin(perp.sess, 0, "perp")
	bcast.MemberJoin(victim.sess, 1, "victim")
	bcast.MemberJoin(bystander.sess, 2, "bystander")

	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}
	msg := &wire.MoveRobber{GameName: "g1", Seat: 0, Hex: hex}

	HandleMoveRobber(d, perp.sess, msg)

	for _, m := range []*testMember{perp, victim, bystander} {
		if echoed, ok := m.recv(t).(*wire.MoveRobber); !ok || echoed.Hex != hex {
			t.Fatalf("expected MoveRobber echo, got %#v", echoed)
		}
	}

	for _, m := range []struct {
		who      *testMember
		wantReal bool
	}{{perp, true}, {victim, true}, {bystander, false}} {
		report, ok := m.who.recv(t).(*wire.ReportRobbery)
		if !ok {
			t.Fatalf("expected ReportRobbery")
		}
		if m.wantReal && report.ResourceType != int(wire.ORE) {
			t.Fatalf("participant should see the real resource type, got %d", report.ResourceType)
		}
		if !m.wantReal && report.ResourceType != int(wire.UNKNOWN) {
			t.Fatalf("bystander should see UNKNOWN, got %d", report.ResourceType)
		}
	}

	for _, m := range []*testMember{perp, victim, bystander} {
		if _, ok := m.recv(t).(*wire.Turn); !ok {
			t.Fatalf("expected a Turn broadcast to close out the robber move")
		}
	}

	if g.Players[0].Resources[wire.ORE] != 1 {
		t.Fatalf("perpetrator should have gained the stolen ore")
	}
	if g.Players[1].Resources[wire.ORE] != 2 {
		t.Fatalf("victim should have lost one ore")
	}
}

func TestHandleDiscardTransitionsOutOfWaitingForDiscards(t *testing.T) {
	g := newTestGame(1)
	g.State = game.WaitingForDiscards
	g.CurrentPlayer = 0
	p := g.Players[0]
	p.NeedsToDiscard = true
	p.Resources[wire.CLAY] = 4
	p.Resources[wire.ORE] = 4

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 0, "solo")

	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 0}
	give := wire.ResourceSet{}
	give[wire.CLAY] = 2
	give[wire.ORE] = 2
	msg := &wire.Discard{GameName: "g1", Seat: 0, Resources: give}

	HandleDiscard(d, member.sess, msg)

	elements, ok := member.recv(t).(*wire.PlayerElements)
	if !ok {
		t.Fatalf("expected a PlayerElements broadcast")
	}
	if elements.Seat != 0 {
		t.Fatalf("PlayerElements.Seat = %d, want 0", elements.Seat)
	}

	state, ok := member.recv(t).(*wire.GameState)
	if !ok {
		t.Fatalf("expected a GameState broadcast")
	}
	if game.GameState(state.State) != game.PlacingRobber {
		t.Fatalf("state = %v, want PLACING_ROBBER (classic board)", game.GameState(state.State))
	}
	if p.Resources[wire.CLAY] != 2 || p.Resources[wire.ORE] != 2 {
		t.Fatalf("discard should have halved the player's clay/ore")
	}
	if p.NeedsToDiscard {
		t.Fatalf("NeedsToDiscard should be cleared after discarding")
	}
}

func TestHandleDiscardRejectsWrongSeat(t *testing.T) {
	g := newTestGame(2)
	g.State = game.WaitingForDiscards
	g.Players[0].NeedsToDiscard = true

	bcast := broadcast.New()
	member := newTestMember(1)
	bcast.MemberJoin(member.sess, 1, "other")

	d := &Deps{Game: g, Bcast: bcast, Log: zap.NewNop(), Seat: 1}
	msg := &wire.Discard{GameName: "g1", Seat: 0, Resources: wire.ResourceSet{}}

	HandleDiscard(d, member.sess, msg)

	decline, ok := member.recv(t).(*wire.DeclinePlayerRequest)
	if !ok {
		t.Fatalf("expected a DeclinePlayerRequest, session is not seat 0")
	}
	if decline.ReasonCode != ReasonNotSeated {
		t.Fatalf("ReasonCode = %d, want ReasonNotSeated", decline.ReasonCode)
	}
}
