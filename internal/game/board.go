package game

import "github.com/catanserver/server/internal/wire"

// HexType tags one hex's terrain.
type HexType int

const (
	Desert HexType = iota
	Hills            // produces CLAY (brick)
	Mountains        // produces ORE
	Pasture          // produces SHEEP
	Fields           // produces WHEAT
	Forest           // produces WOOD
	Gold             // produces a player-picked resource
	Water            // not a land hex; carries ports on the sea board
	Fog              // _SC_FOG: true type hidden until revealed
)

// Resource reports the resource a hex of this type produces, or
// UNKNOWN for hexes that never produce directly (desert, water, fog).
func (h HexType) Resource() wire.Resource {
	switch h {
	case Hills:
		return wire.CLAY
	case Mountains:
		return wire.ORE
	case Pasture:
		return wire.SHEEP
	case Fields:
		return wire.WHEAT
	case Forest:
		return wire.WOOD
	default:
		return wire.UNKNOWN
	}
}

// PortType tags a harbor. Generic trades 3:1 of any resource; a
// resource-specific port trades that resource 2:1.
type PortType int

const (
	NoPort PortType = iota
	PortGeneric
	PortClay
	PortOre
	PortSheep
	PortWheat
	PortWood
)

func (p PortType) Resource() wire.Resource {
	switch p {
	case PortClay:
		return wire.CLAY
	case PortOre:
		return wire.ORE
	case PortSheep:
		return wire.SHEEP
	case PortWheat:
		return wire.WHEAT
	case PortWood:
		return wire.WOOD
	default:
		return wire.UNKNOWN
	}
}

func (p PortType) Rate() int {
	if p == NoPort {
		return 4
	}
	if p == PortGeneric {
		return 3
	}
	return 2
}

// Kind distinguishes the classic fixed board from the variable-size sea
// board (§3's Board model).
type Kind int

const (
	KindClassic Kind = iota
	KindSea
)

// Board holds the grid and every piece of mutable state layered on it.
// All fields are addressed by the HexGrid's stable integer IDs; there
// are no pointers between board and piece (Design Note 9.2).
type Board struct {
	Kind Kind
	Grid *HexGrid

	HexTerrain  []HexType // by hex ID
	HexNumber   []int     // by hex ID, 0 for desert/water; fog hexes keep their token
	HexRevealed []bool    // by hex ID, relevant only for Fog hexes

	Port map[int]PortType // by node ID

	RobberHex int
	PirateHex int // -1 if the board has no pirate (classic board)

	Pieces map[int]*Piece // settlements/cities/villages/fortresses, by node ID
	Roads  map[int]*Piece // roads/ships, by edge ID

	ClothCount map[int]int // _SC_CLVI village cloth remaining, by node ID

	ShipRouteClosed map[int]bool // _SC_PIRI: edge closed past the fortress line
}

// Piece is a placed building, road, ship or scenario structure.
type Piece struct {
	Type  wire.PieceType
	Owner int
	Coord int // node ID for buildings, edge ID for roads/ships
}

func newBoard(kind Kind, grid *HexGrid) *Board {
	n := grid.NumHexes()
	return &Board{
		Kind:            kind,
		Grid:            grid,
		HexTerrain:      make([]HexType, n),
		HexNumber:       make([]int, n),
		HexRevealed:     make([]bool, n),
		Port:            map[int]PortType{},
		PirateHex:       -1,
		Pieces:          map[int]*Piece{},
		Roads:           map[int]*Piece{},
		ClothCount:      map[int]int{},
		ShipRouteClosed: map[int]bool{},
	}
}

// HexesForNumber returns every land hex whose number token matches roll,
// skipping hexes still hidden under fog (they produce nothing until
// revealed, per _SC_FOG semantics).
func (b *Board) HexesForNumber(roll int) []int {
	var out []int
	for h, n := range b.HexNumber {
		if n == roll && b.HexTerrain[h] != Fog && b.HexTerrain[h] != Water && b.HexTerrain[h] != Desert {
			out = append(out, h)
		}
	}
	return out
}

// PieceAt returns the building at node, or nil.
func (b *Board) PieceAt(node int) *Piece { return b.Pieces[node] }

// RoadAt returns the road/ship at edge, or nil.
func (b *Board) RoadAt(edge int) *Piece { return b.Roads[edge] }

// PortAt reports the port (if any) reachable from node.
func (b *Board) PortAt(node int) PortType {
	if p, ok := b.Port[node]; ok {
		return p
	}
	return NoPort
}
