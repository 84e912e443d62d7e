package game

import (
	"testing"

	"github.com/catanserver/server/internal/wire"
)

func TestDevCardDeckComposition(t *testing.T) {
	deck := devCardDeck()
	if len(deck) != 25 {
		t.Fatalf("deck size = %d, want 25", len(deck))
	}
	counts := map[wire.DevCardType]int{}
	for _, c := range deck {
		counts[c]++
	}
	if counts[wire.DevCardKnight] != 14 {
		t.Fatalf("knights = %d, want 14", counts[wire.DevCardKnight])
	}
	if counts[wire.DevCardRoadBuilding] != 2 || counts[wire.DevCardDiscovery] != 2 || counts[wire.DevCardMonopoly] != 2 {
		t.Fatalf("expected 2 of each non-knight non-VP card, got %+v", counts)
	}
	for _, vp := range []wire.DevCardType{wire.DevCardCapitol, wire.DevCardUniversity, wire.DevCardTemple, wire.DevCardTower, wire.DevCardMarket} {
		if counts[vp] != 1 {
			t.Fatalf("VP card %v count = %d, want 1", vp, counts[vp])
		}
	}
}

func TestDevCardInventoryNewCardsNotPlayableSameTurn(t *testing.T) {
	inv := NewDevCardInventory()
	inv.Add(wire.CardNew, wire.DevCardKnight)

	if inv.PlayableCountOfType(wire.DevCardKnight) != 0 {
		t.Fatalf("a NEW card must not be playable the turn it was bought")
	}
	if inv.CountOfType(wire.DevCardKnight) != 1 {
		t.Fatalf("CountOfType should still see the NEW card for VP purposes")
	}
	if inv.RemoveOneOfType(wire.DevCardKnight) {
		t.Fatalf("RemoveOneOfType should fail: only a NEW card is held")
	}

	inv.PromoteAllNewToOld()
	if inv.PlayableCountOfType(wire.DevCardKnight) != 1 {
		t.Fatalf("after promotion the card should be playable")
	}
	if !inv.RemoveOneOfType(wire.DevCardKnight) {
		t.Fatalf("RemoveOneOfType should now succeed")
	}
	if inv.Total() != 0 {
		t.Fatalf("inventory should be empty after removing the only card")
	}
}

func TestDevCardInventoryRemovePrefersOldOverKept(t *testing.T) {
	inv := NewDevCardInventory()
	inv.Add(wire.CardKept, wire.DevCardMonopoly)
	inv.Add(wire.CardOld, wire.DevCardMonopoly)

	if !inv.RemoveOneOfType(wire.DevCardMonopoly) {
		t.Fatalf("expected a removable card")
	}
	if inv.counts[wire.CardOld][wire.DevCardMonopoly] != 0 {
		t.Fatalf("OLD copy should have been removed first")
	}
	if inv.counts[wire.CardKept][wire.DevCardMonopoly] != 1 {
		t.Fatalf("KEPT copy should remain untouched")
	}
}

func TestIsVictoryPointCard(t *testing.T) {
	for _, vp := range []wire.DevCardType{wire.DevCardCapitol, wire.DevCardUniversity, wire.DevCardTemple, wire.DevCardTower, wire.DevCardMarket} {
		if !isVictoryPointCard(vp) {
			t.Fatalf("%v should be a VP card", vp)
		}
	}
	for _, nonVP := range []wire.DevCardType{wire.DevCardKnight, wire.DevCardRoadBuilding, wire.DevCardDiscovery, wire.DevCardMonopoly} {
		if isVictoryPointCard(nonVP) {
			t.Fatalf("%v should not be a VP card", nonVP)
		}
	}
}
