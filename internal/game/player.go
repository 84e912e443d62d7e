package game

import "github.com/catanserver/server/internal/wire"

// pieceAllotment is the starting count of each piece type per seat,
// classic rules (no fortresses/villages — those are board-owned on the
// sea board's _SC_PIRI/_SC_CLVI variants, not player-owned pieces).
var pieceAllotment = map[wire.PieceType]int{
	wire.ROAD:       15,
	wire.SETTLEMENT: 5,
	wire.CITY:       4,
	wire.SHIP:       15,
}

// Player is one seat's full hand of state (§3). Boards and games refer
// to players by seat index, never by pointer, per Design Note 9.2.
type Player struct {
	Seat     int
	Nickname string
	IsRobot  bool
	FaceID   int

	Resources       wire.ResourceSet
	RolledThisTurn  wire.ResourceSet
	DevCards        *DevCardInventory
	PlayedDevCard   bool
	PlayedDevCardsByType map[wire.DevCardType]int

	PiecesRemaining map[wire.PieceType]int
	PiecesPlaced    map[wire.PieceType]int

	Offer *wire.TradeOffer

	NeedsToDiscard       bool
	NeedsToPickGoldHexN  int
	AskedSpecialBuild    bool
	NumKnights           int
	WarshipCount         int // _SC_PIRI
	ClothCount           int // _SC_CLVI
	SpecialVP            int
	ScenarioEventMask    uint64
	UndosRemaining       int
	LastSettlementNode   int
}

func NewPlayer(seat int) *Player {
	p := &Player{
		Seat:                 seat,
		DevCards:             NewDevCardInventory(),
		PlayedDevCardsByType: map[wire.DevCardType]int{},
		PiecesRemaining:      map[wire.PieceType]int{},
		PiecesPlaced:         map[wire.PieceType]int{},
		LastSettlementNode:   -1,
		UndosRemaining:       1,
	}
	for t, n := range pieceAllotment {
		p.PiecesRemaining[t] = n
	}
	return p
}

func (p *Player) HasPieceAvailable(t wire.PieceType) bool {
	return p.PiecesRemaining[t] > 0
}

func (p *Player) TakePiece(t wire.PieceType) {
	p.PiecesRemaining[t]--
	p.PiecesPlaced[t]++
}

func (p *Player) ReturnPiece(t wire.PieceType) {
	p.PiecesRemaining[t]++
	p.PiecesPlaced[t]--
}

// VictoryPoints computes the player's current score. Settlements are
// worth 1, cities 2, VP dev cards 1 each, Longest Road/Largest Army 2
// each (the caller passes whether this seat holds each bonus, since
// that's tracked at the Game level, not per-Player).
func (p *Player) VictoryPoints(hasLongestRoad, hasLargestArmy bool) int {
	vp := p.PiecesPlaced[wire.SETTLEMENT] + 2*p.PiecesPlaced[wire.CITY] + p.SpecialVP
	// VP dev cards are never "played" explicitly (§4.E); they count as
	// soon as held, regardless of age.
	for _, t := range []wire.DevCardType{wire.DevCardCapitol, wire.DevCardUniversity, wire.DevCardTemple, wire.DevCardTower, wire.DevCardMarket} {
		vp += p.DevCards.CountOfType(t)
	}
	if hasLongestRoad {
		vp += 2
	}
	if hasLargestArmy {
		vp += 2
	}
	return vp
}
