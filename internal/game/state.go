package game

import "fmt"

// GameState is the full set of turn/phase states (§4.D).
type GameState int

const (
	NewGameState GameState = iota
	Start1A
	Start1B
	Start2A
	Start2B
	Start3A
	Start3B
	StartsWaitingForPickGoldResource
	RollOrCard
	SendingDiceResultResources
	Play1
	PlacingRoad
	PlacingSettlement
	PlacingCity
	PlacingShip
	PlacingRobber
	PlacingPirate
	PlacingFreeRoad1
	PlacingFreeRoad2
	PlacingInvItem
	WaitingForDiscards
	WaitingForRobberOrPirate
	WaitingForRobChoosePlayer
	WaitingForRobClothOrResource
	WaitingForDiscovery
	WaitingForMonopoly
	WaitingForPickGoldResource
	SpecialBuilding
	AlmostOver
	GameOver
)

var stateNames = map[GameState]string{
	NewGameState:                      "NEW_GAME",
	Start1A:                           "START1A",
	Start1B:                           "START1B",
	Start2A:                           "START2A",
	Start2B:                           "START2B",
	Start3A:                           "START3A",
	Start3B:                           "START3B",
	StartsWaitingForPickGoldResource:  "STARTS_WAITING_FOR_PICK_GOLD_RESOURCE",
	RollOrCard:                        "ROLL_OR_CARD",
	SendingDiceResultResources:        "SENDING_DICE_RESULT_RESOURCES",
	Play1:                             "PLAY1",
	PlacingRoad:                       "PLACING_ROAD",
	PlacingSettlement:                 "PLACING_SETTLEMENT",
	PlacingCity:                       "PLACING_CITY",
	PlacingShip:                       "PLACING_SHIP",
	PlacingRobber:                     "PLACING_ROBBER",
	PlacingPirate:                     "PLACING_PIRATE",
	PlacingFreeRoad1:                  "PLACING_FREE_ROAD1",
	PlacingFreeRoad2:                  "PLACING_FREE_ROAD2",
	PlacingInvItem:                    "PLACING_INV_ITEM",
	WaitingForDiscards:                "WAITING_FOR_DISCARDS",
	WaitingForRobberOrPirate:          "WAITING_FOR_ROBBER_OR_PIRATE",
	WaitingForRobChoosePlayer:         "WAITING_FOR_ROB_CHOOSE_PLAYER",
	WaitingForRobClothOrResource:      "WAITING_FOR_ROB_CLOTH_OR_RESOURCE",
	WaitingForDiscovery:               "WAITING_FOR_DISCOVERY",
	WaitingForMonopoly:                "WAITING_FOR_MONOPOLY",
	WaitingForPickGoldResource:        "WAITING_FOR_PICK_GOLD_RESOURCE",
	SpecialBuilding:                   "SPECIAL_BUILDING",
	AlmostOver:                        "ALMOST_OVER",
	GameOver:                          "GAME_OVER",
}

func (s GameState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// HasCurrentPlayer reports whether a current player is defined in this
// state — false only in pre-game states (§3 invariant).
func (s GameState) HasCurrentPlayer() bool {
	return s != NewGameState
}
