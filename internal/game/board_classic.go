package game

import "math/rand"

// classicTerrain is the fixed 19-hex multiset of the standard board:
// 3 hills, 3 mountains, 4 pasture, 4 fields, 4 forest, 1 desert.
var classicTerrain = []HexType{
	Hills, Hills, Hills,
	Mountains, Mountains, Mountains,
	Pasture, Pasture, Pasture, Pasture,
	Fields, Fields, Fields, Fields,
	Forest, Forest, Forest, Forest,
	Desert,
}

// classicNumbers is the standard 18-token set for the 18 non-desert hexes.
var classicNumbers = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// classicPorts is the standard 9-harbor set: 4 generic 3:1, one 2:1 per
// resource.
var classicPorts = []PortType{
	PortGeneric, PortGeneric, PortGeneric, PortGeneric,
	PortClay, PortOre, PortSheep, PortWheat, PortWood,
}

// NewClassicBoard lays out the fixed 19-hex classic board. breakClumps,
// when > 0, rejects (and reshuffles) any layout with breakClumps or more
// same-number-producing hexes mutually adjacent, per the BC option
// (§4.D); a scripted scenario rule can replace this with a more
// elaborate reshuffle, but this Go fallback always terminates because
// a uniform-random reshuffle eventually satisfies any clump bound the
// catalog permits.
func NewClassicBoard(rng *rand.Rand, breakClumps int) *Board {
	grid := NewHexGrid(2)
	b := newBoard(KindClassic, grid)

	for {
		terrain := shuffledHexTypes(rng, classicTerrain)
		numbers := assignNumbers(terrain, classicNumbers, rng)
		if breakClumps <= 0 || !hasClump(grid, terrain, numbers, breakClumps) {
			b.HexTerrain = terrain
			b.HexNumber = numbers
			break
		}
	}

	for h, t := range b.HexTerrain {
		if t == Desert {
			b.RobberHex = h
			break
		}
	}

	placePorts(b, shuffledPorts(rng, classicPorts))
	return b
}

func shuffledHexTypes(rng *rand.Rand, src []HexType) []HexType {
	out := make([]HexType, len(src))
	copy(out, src)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func shuffledPorts(rng *rand.Rand, src []PortType) []PortType {
	out := make([]PortType, len(src))
	copy(out, src)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// assignNumbers deals tokens, in shuffled order, onto every non-desert
// hex in terrain order.
func assignNumbers(terrain []HexType, tokens []int, rng *rand.Rand) []int {
	shuffled := make([]int, len(tokens))
	copy(shuffled, tokens)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	out := make([]int, len(terrain))
	ti := 0
	for h, t := range terrain {
		if t == Desert || t == Water || t == Fog {
			out[h] = 0
			continue
		}
		out[h] = shuffled[ti]
		ti++
	}
	return out
}

// hasClump reports whether breakClumps or more mutually-adjacent hexes
// share the same number token (the "clump" the BC option forbids).
func hasClump(grid *HexGrid, terrain []HexType, numbers []int, breakClumps int) bool {
	visited := make([]bool, grid.NumHexes())
	for start := range terrain {
		if visited[start] || numbers[start] == 0 {
			continue
		}
		group := floodSameNumber(grid, numbers, start, visited)
		if len(group) >= breakClumps {
			return true
		}
	}
	return false
}

func floodSameNumber(grid *HexGrid, numbers []int, start int, visited []bool) []int {
	want := numbers[start]
	stack := []int{start}
	visited[start] = true
	var group []int
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, h)
		for dir := 0; dir < 6; dir++ {
			nb := grid.HexNeighbor(h, dir)
			if nb < 0 || visited[nb] {
				continue
			}
			if numbers[nb] == want {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return group
}

// placePorts assigns ports to evenly spaced boundary edges' nodes.
func placePorts(b *Board, ports []PortType) {
	edges := b.Grid.BoundaryEdgesInOrder()
	if len(edges) == 0 {
		return
	}
	stride := len(edges) / len(ports)
	if stride == 0 {
		stride = 1
	}
	pi := 0
	for i := 0; i < len(edges) && pi < len(ports); i += stride {
		nodes := b.Grid.EdgeNodes(edges[i])
		b.Port[nodes[0]] = ports[pi]
		b.Port[nodes[1]] = ports[pi]
		pi++
	}
}
