package handler

import (
	"reflect"
	"testing"

	"github.com/catanserver/server/internal/wire"
)

// TestAllResourceElementsReportsAllFiveSlotsInOrder pins down the exact
// shape HandleRollDice's per-gainer PLAYERELEMENTS(SET, ...) uses: all
// five CLAY..WOOD slots, in order, zeros included — matching the
// worked dice-roll example (gained [clay,ore,sheep,wheat,wood] =
// [0,1,0,0,0]).
func TestAllResourceElementsReportsAllFiveSlotsInOrder(t *testing.T) {
	rs := wire.ResourceSet{}
	rs[wire.ORE] = 1

	types, amounts := allResourceElements(rs)

	wantTypes := []int{int(wire.CLAY), int(wire.ORE), int(wire.SHEEP), int(wire.WHEAT), int(wire.WOOD)}
	wantAmounts := []int{0, 1, 0, 0, 0}
	if !reflect.DeepEqual(types, wantTypes) {
		t.Fatalf("ElementTypes = %v, want %v", types, wantTypes)
	}
	if !reflect.DeepEqual(amounts, wantAmounts) {
		t.Fatalf("Amounts = %v, want %v", amounts, wantAmounts)
	}
}

func TestAllResourceElementsIgnoresUnknownSlot(t *testing.T) {
	rs := wire.ResourceSet{}
	rs[wire.WOOD] = 2
	rs[wire.UNKNOWN] = 9

	types, amounts := allResourceElements(rs)
	if len(types) != int(wire.UNKNOWN) || len(amounts) != int(wire.UNKNOWN) {
		t.Fatalf("expected exactly the 5 known resource slots, got %d", len(types))
	}
	if amounts[int(wire.WOOD)] != 2 {
		t.Fatalf("WOOD amount = %d, want 2", amounts[int(wire.WOOD)])
	}
}
