package game

import "math/rand"

// SeaBoardOptions selects which sea-board extras are active, mirroring
// the _SC_* option keys from §4.H.
type SeaBoardOptions struct {
	FogHexes               bool // _SC_FOG
	ClothTradeVillages     bool // _SC_CLVI
	PirateIslandsFortresses bool // _SC_PIRI
	BreakClumps            int  // BC, 0 disables
}

// NewSeaBoard lays out the variable-size board: the same 19-hex land
// core as the classic board, ringed by a band of water hexes carrying
// the ports and (when enabled) a roaming pirate fleet. Real sea-board
// scenario layouts vary hex count by player count and scenario; this
// server keeps one land-core shape and varies only the extras, which
// is enough to exercise every wire message and predicate the scenario
// layer names (see DESIGN.md for the scope call).
func NewSeaBoard(rng *rand.Rand, opts SeaBoardOptions) *Board {
	grid := NewHexGrid(3)
	b := newBoard(KindSea, grid)

	landTerrain := shuffledHexTypes(rng, classicTerrain)
	li := 0
	for h := range b.HexTerrain {
		if hexDistance(grid.hexAt[h]) <= 2 {
			b.HexTerrain[h] = landTerrain[li]
			li++
		} else {
			b.HexTerrain[h] = Water
		}
	}
	b.HexNumber = assignNumbers(b.HexTerrain, classicNumbers, rng)

	if opts.BreakClumps > 0 {
		for hasClump(grid, b.HexTerrain, b.HexNumber, opts.BreakClumps) {
			landTerrain = shuffledHexTypes(rng, classicTerrain)
			li = 0
			for h := range b.HexTerrain {
				if hexDistance(grid.hexAt[h]) <= 2 {
					b.HexTerrain[h] = landTerrain[li]
					li++
				}
			}
			b.HexNumber = assignNumbers(b.HexTerrain, classicNumbers, rng)
		}
	}

	if opts.FogHexes {
		// Cover a handful of non-desert land hexes in fog. The terrain
		// underneath is overwritten, and nothing in the server reveals
		// fog hexes again.
		candidates := make([]int, 0, grid.NumHexes())
		for h, t := range b.HexTerrain {
			if t != Desert && t != Water {
				candidates = append(candidates, h)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		fogCount := len(candidates) / 4
		for i := 0; i < fogCount; i++ {
			b.HexTerrain[candidates[i]] = Fog
		}
	}

	for h, t := range b.HexTerrain {
		if t == Desert {
			b.RobberHex = h
			break
		}
	}

	placeSeaPorts(b, shuffledPorts(rng, classicPorts))

	if opts.PirateIslandsFortresses {
		for h, t := range b.HexTerrain {
			if t == Water {
				b.PirateHex = h
				break
			}
		}
	}

	return b
}

func hexDistance(c cube) int {
	d := (abs(c.x) + abs(c.y) + abs(c.z)) / 2
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// placeSeaPorts attaches ports to edges straddling a land hex and a
// water hex, rather than the grid's outer boundary (which is open sea).
func placeSeaPorts(b *Board, ports []PortType) {
	var candidates []int
	for e := 0; e < b.Grid.NumEdges(); e++ {
		hexes := b.Grid.EdgeHexes(e)
		if len(hexes) != 2 {
			continue
		}
		a, bb := b.HexTerrain[hexes[0]], b.HexTerrain[hexes[1]]
		if (a == Water) != (bb == Water) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return
	}
	stride := len(candidates) / len(ports)
	if stride == 0 {
		stride = 1
	}
	pi := 0
	for i := 0; i < len(candidates) && pi < len(ports); i += stride {
		nodes := b.Grid.EdgeNodes(candidates[i])
		b.Port[nodes[0]] = ports[pi]
		b.Port[nodes[1]] = ports[pi]
		pi++
	}
}
