package game

import "sort"

// cube is a cube hex coordinate (x+y+z == 0), the standard representation
// for a hexagonal grid (see Design Note 9.2: integer coordinates, no
// pointer cycles between board and piece).
type cube struct{ x, y, z int }

// dirs are the 6 unit steps between adjacent hex centers, in order
// around the hex. dirs[i+1]-dirs[i] == dirs[i+2] (mod 6) for every i,
// which is what makes the corner-canonicalization below collision-free.
var dirs = [6]cube{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

func (a cube) add(b cube) cube { return cube{a.x + b.x, a.y + b.y, a.z + b.z} }
func (a cube) scale(k int) cube { return cube{a.x * k, a.y * k, a.z * k} }

// HexGrid is a finite hexagonal grid of a given radius, with hexes,
// nodes (corners) and edges assigned stable integer IDs. It is built
// once per board and is read-only afterward; Board layers game state
// (terrain, tokens, pieces) on top of it by ID.
type HexGrid struct {
	Radius int

	hexID   map[cube]int
	hexAt   []cube
	nodeID  map[cube]int
	nodeAt  []cube
	edgeID  map[[2]int]int // key: sorted node-id pair
	edgeAt  [][2]int

	hexNodes [][6]int // hexID -> 6 node IDs, in dirs order
	hexEdges [][6]int // hexID -> 6 edge IDs, edge i joins hexNodes[i], hexNodes[i+1]
	hexNeighbors [][6]int // hexID -> neighbor hexID or -1

	nodeHexes [][]int
	nodeEdges [][]int
	nodeNodes [][]int

	edgeNodes [][2]int
	edgeHexes [][]int
}

// NewHexGrid builds a hexagon-shaped grid of hexes within cube-distance
// radius of the origin (radius 2 == the 19-hex classic board; radius 3
// adds the surrounding ring used for sea-board ports and fog).
func NewHexGrid(radius int) *HexGrid {
	g := &HexGrid{
		Radius:  radius,
		hexID:   map[cube]int{},
		nodeID:  map[cube]int{},
		edgeID:  map[[2]int]int{},
	}
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			z := -x - y
			if z < -radius || z > radius {
				continue
			}
			c := cube{x, y, z}
			g.hexID[c] = len(g.hexAt)
			g.hexAt = append(g.hexAt, c)
		}
	}
	n := len(g.hexAt)
	g.hexNodes = make([][6]int, n)
	g.hexEdges = make([][6]int, n)
	g.hexNeighbors = make([][6]int, n)

	for h, c := range g.hexAt {
		for i := 0; i < 6; i++ {
			corner := c.scale(3).add(dirs[i]).add(dirs[(i+1)%6])
			id, ok := g.nodeID[corner]
			if !ok {
				id = len(g.nodeAt)
				g.nodeID[corner] = id
				g.nodeAt = append(g.nodeAt, corner)
			}
			g.hexNodes[h][i] = id
		}
		for i := 0; i < 6; i++ {
			nb := c.add(dirs[i])
			if id, ok := g.hexID[nb]; ok {
				g.hexNeighbors[h][i] = id
			} else {
				g.hexNeighbors[h][i] = -1
			}
		}
	}

	g.nodeHexes = make([][]int, len(g.nodeAt))
	for h := range g.hexAt {
		for i := 0; i < 6; i++ {
			nodeID := g.hexNodes[h][i]
			g.nodeHexes[nodeID] = appendUnique(g.nodeHexes[nodeID], h)
		}
	}

	g.nodeEdges = make([][]int, len(g.nodeAt))
	g.nodeNodes = make([][]int, len(g.nodeAt))
	for h := range g.hexAt {
		for i := 0; i < 6; i++ {
			a := g.hexNodes[h][i]
			b := g.hexNodes[h][(i+1)%6]
			key := sortedPair(a, b)
			id, ok := g.edgeID[key]
			if !ok {
				id = len(g.edgeAt)
				g.edgeID[key] = id
				g.edgeAt = append(g.edgeAt, [2]int{a, b})
			}
			g.hexEdges[h][i] = id
		}
	}
	g.edgeNodes = make([][2]int, len(g.edgeAt))
	g.edgeHexes = make([][]int, len(g.edgeAt))
	for id, pair := range g.edgeAt {
		g.edgeNodes[id] = pair
		g.nodeEdges[pair[0]] = appendUnique(g.nodeEdges[pair[0]], id)
		g.nodeEdges[pair[1]] = appendUnique(g.nodeEdges[pair[1]], id)
		g.nodeNodes[pair[0]] = appendUnique(g.nodeNodes[pair[0]], pair[1])
		g.nodeNodes[pair[1]] = appendUnique(g.nodeNodes[pair[1]], pair[0])
	}
	for h := range g.hexAt {
		for i := 0; i < 6; i++ {
			e := g.hexEdges[h][i]
			g.edgeHexes[e] = appendUnique(g.edgeHexes[e], h)
		}
	}

	return g
}

func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

func (g *HexGrid) NumHexes() int { return len(g.hexAt) }
func (g *HexGrid) NumNodes() int { return len(g.nodeAt) }
func (g *HexGrid) NumEdges() int { return len(g.edgeAt) }

func (g *HexGrid) HexNodes(hex int) [6]int  { return g.hexNodes[hex] }
func (g *HexGrid) HexEdges(hex int) [6]int  { return g.hexEdges[hex] }
func (g *HexGrid) EdgeNodes(edge int) [2]int { return g.edgeNodes[edge] }
func (g *HexGrid) NodeHexes(node int) []int { return g.nodeHexes[node] }
func (g *HexGrid) NodeEdges(node int) []int { return g.nodeEdges[node] }
func (g *HexGrid) NodeNodes(node int) []int { return g.nodeNodes[node] }
func (g *HexGrid) EdgeHexes(edge int) []int { return g.edgeHexes[edge] }

// HexNeighbor returns the hex ID adjacent in direction i, or -1 if off
// the grid (used by the break-clumps flood fill).
func (g *HexGrid) HexNeighbor(hex, dir int) int { return g.hexNeighbors[hex][dir] }

// IsBoundaryEdge reports whether edge touches only one hex, i.e. sits on
// the outside rim of the grid (a candidate for a port).
func (g *HexGrid) IsBoundaryEdge(edge int) bool { return len(g.edgeHexes[edge]) == 1 }

// BoundaryEdgesInOrder returns every boundary edge, sorted by the sum of
// the edge's two node IDs; this is a stable order, not a walk around the
// rim.
func (g *HexGrid) BoundaryEdgesInOrder() []int {
	var out []int
	for e := range g.edgeAt {
		if g.IsBoundaryEdge(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ni, nj := g.edgeNodes[out[i]], g.edgeNodes[out[j]]
		return (ni[0]+ni[1]) < (nj[0]+nj[1])
	})
	return out
}
