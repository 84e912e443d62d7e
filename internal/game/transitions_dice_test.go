package game

import (
	"testing"

	"github.com/catanserver/server/internal/wire"
)

// settleHex places a settlement owned by seat on hex's first node and
// gives that hex the given terrain/number, so a dice total lands
// production on a single, known seat.
func settleHex(g *Game, hex, number int, terrain HexType, seat int) {
	g.Board.HexTerrain[hex] = terrain
	g.Board.HexNumber[hex] = number
	node := g.Board.Grid.HexNodes(hex)[0]
	g.Board.Pieces[node] = &Piece{Type: wire.SETTLEMENT, Owner: seat, Coord: node}
}

// TestApplyDiceTotalSevenGoesStraightToPlacingRobberOnClassicBoard
// guards against the robber getting stuck after a 7: with nobody over
// the discard limit, a classic board must land in PLACING_ROBBER so
// MOVEROBBER is legal immediately.
func TestApplyDiceTotalSevenGoesStraightToPlacingRobberOnClassicBoard(t *testing.T) {
	g := newTestGame(1)
	g.CurrentPlayer = 0

	res := g.applyDiceTotal(3, 4)
	if !res.RobberHit {
		t.Fatalf("total 7 should report RobberHit")
	}
	if g.State != PlacingRobber {
		t.Fatalf("state = %v, want PLACING_ROBBER", g.State)
	}
	if !g.canMoveRobber(0, 0) {
		t.Fatalf("the current player should be able to move the robber right after a 7 with no discards")
	}
}

// TestApplyDiceTotalSevenWithDiscardsThenPlacingRobber exercises the
// full chain: 7 with an over-limit hand enters WAITING_FOR_DISCARDS,
// and once the last discard lands, a classic board reaches
// PLACING_ROBBER rather than the dead WAITING_FOR_ROBBER_OR_PIRATE
// state a classic board never leaves.
func TestApplyDiceTotalSevenWithDiscardsThenPlacingRobber(t *testing.T) {
	g := newTestGame(1)
	g.CurrentPlayer = 0
	g.Players[0].Resources[wire.CLAY] = 8

	g.applyDiceTotal(3, 4)
	if g.State != WaitingForDiscards {
		t.Fatalf("state = %v, want WAITING_FOR_DISCARDS", g.State)
	}

	give := wire.ResourceSet{}
	give[wire.CLAY] = 4
	g.Discard(0, give)
	if g.State != PlacingRobber {
		t.Fatalf("state = %v, want PLACING_ROBBER once discards are resolved", g.State)
	}
	if !g.canMoveRobber(0, 0) {
		t.Fatalf("the current player should be able to move the robber once discards are resolved")
	}
}

// TestApplyDiceTotalSevenWaitsForRobberOrPirateOnSeaBoard checks the
// sea-board carve-out: the robber/pirate choice stays pending instead
// of jumping straight to PLACING_ROBBER.
func TestApplyDiceTotalSevenWaitsForRobberOrPirateOnSeaBoard(t *testing.T) {
	g := newTestGame(1)
	g.Options.SeaBoard = true
	g.CurrentPlayer = 0

	g.applyDiceTotal(3, 4)
	if g.State != WaitingForRobberOrPirate {
		t.Fatalf("state = %v, want WAITING_FOR_ROBBER_OR_PIRATE on a sea board", g.State)
	}
}

// TestApplyDiceTotalGoldHexGatesOnPickingResources makes sure a
// non-7 roll that lands on a gold hex doesn't drop straight to PLAY1
// before the gainer has picked their gold resource.
func TestApplyDiceTotalGoldHexGatesOnPickingResources(t *testing.T) {
	g := newTestGame(1)
	settleHex(g, 0, 8, Gold, 0)

	g.applyDiceTotal(4, 4)
	if g.State != WaitingForPickGoldResource {
		t.Fatalf("state = %v, want WAITING_FOR_PICK_GOLD_RESOURCE", g.State)
	}
	if g.Players[0].NeedsToPickGoldHexN != 1 {
		t.Fatalf("NeedsToPickGoldHexN = %d, want 1", g.Players[0].NeedsToPickGoldHexN)
	}

	pick := wire.ResourceSet{}
	pick[wire.ORE] = 1
	if err := g.TryPickGoldHexResources(0, pick); err != nil {
		t.Fatalf("TryPickGoldHexResources: %v", err)
	}
	if g.State != Play1 {
		t.Fatalf("state = %v, want PLAY1 once the gold pick is resolved", g.State)
	}
	if g.Players[0].Resources[wire.ORE] != 1 {
		t.Fatalf("the picked resource should have been credited")
	}
}

// TestApplyDiceTotalNonGoldProducesNormally is the control case: a
// normal hex on a non-7 roll still ends in PLAY1 directly.
func TestApplyDiceTotalNonGoldProducesNormally(t *testing.T) {
	g := newTestGame(1)
	settleHex(g, 0, 8, Hills, 0)

	g.applyDiceTotal(4, 4)
	if g.State != Play1 {
		t.Fatalf("state = %v, want PLAY1", g.State)
	}
	if g.Players[0].Resources[wire.CLAY] != 1 {
		t.Fatalf("settlement on a clay hex should gain one clay")
	}
}
