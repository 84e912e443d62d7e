package game

import "github.com/catanserver/server/internal/wire"

// DevCardInventory partitions a player's cards by age (NEW cards can't
// be played until promoted on the following TURN) and type.
type DevCardInventory struct {
	counts [3]map[wire.DevCardType]int // indexed by wire.DevCardAge
}

func NewDevCardInventory() *DevCardInventory {
	inv := &DevCardInventory{}
	for i := range inv.counts {
		inv.counts[i] = map[wire.DevCardType]int{}
	}
	return inv
}

func (inv *DevCardInventory) Add(age wire.DevCardAge, t wire.DevCardType) {
	inv.counts[age][t]++
}

// PromoteAllNewToOld runs at the start of the owner's next turn: cards
// bought last turn become playable.
func (inv *DevCardInventory) PromoteAllNewToOld() {
	for t, n := range inv.counts[wire.CardNew] {
		inv.counts[wire.CardOld][t] += n
	}
	inv.counts[wire.CardNew] = map[wire.DevCardType]int{}
}

// RemoveOneOfType removes one playable (OLD or KEPT) card of t, OLD
// preferred. Reports whether a card was available to remove.
func (inv *DevCardInventory) RemoveOneOfType(t wire.DevCardType) bool {
	if inv.counts[wire.CardOld][t] > 0 {
		inv.counts[wire.CardOld][t]--
		return true
	}
	if inv.counts[wire.CardKept][t] > 0 {
		inv.counts[wire.CardKept][t]--
		return true
	}
	return false
}

// CountOfType sums a type across every age, for VP scoring (VP cards
// count as soon as held, regardless of age).
func (inv *DevCardInventory) CountOfType(t wire.DevCardType) int {
	return inv.counts[wire.CardNew][t] + inv.counts[wire.CardOld][t] + inv.counts[wire.CardKept][t]
}

// PlayableCountOfType sums OLD+KEPT only (excludes cards bought this turn).
func (inv *DevCardInventory) PlayableCountOfType(t wire.DevCardType) int {
	return inv.counts[wire.CardOld][t] + inv.counts[wire.CardKept][t]
}

func (inv *DevCardInventory) Total() int {
	sum := 0
	for _, age := range inv.counts {
		for _, n := range age {
			sum += n
		}
	}
	return sum
}

// devCardDeck is the standard 25-card classic deck: 14 knights, 5 VP
// cards (one each of the 5 named VP types), 2 road-building, 2
// discovery, 2 monopoly.
func devCardDeck() []wire.DevCardType {
	deck := make([]wire.DevCardType, 0, 25)
	for i := 0; i < 14; i++ {
		deck = append(deck, wire.DevCardKnight)
	}
	deck = append(deck, wire.DevCardCapitol, wire.DevCardUniversity, wire.DevCardTemple, wire.DevCardTower, wire.DevCardMarket)
	for i := 0; i < 2; i++ {
		deck = append(deck, wire.DevCardRoadBuilding, wire.DevCardDiscovery, wire.DevCardMonopoly)
	}
	return deck
}

func isVictoryPointCard(t wire.DevCardType) bool {
	switch t {
	case wire.DevCardCapitol, wire.DevCardUniversity, wire.DevCardTemple, wire.DevCardTower, wire.DevCardMarket:
		return true
	default:
		return false
	}
}
