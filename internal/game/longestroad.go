package game

const minLongestRoad = 5

// recomputeLongestRoad re-derives the longest-road holder from scratch
// after any road/ship placement. The previous holder keeps the bonus on
// a tie (§4.D tie-break rule); a new holder must strictly exceed the
// previous holder's length and reach at least the 5-road minimum.
func (g *Game) recomputeLongestRoad() {
	longest := map[int]int{}
	best, bestSeat := 0, -1
	for seat, p := range g.Players {
		if p == nil {
			continue
		}
		l := g.longestRoadFor(seat)
		longest[seat] = l
		if l > best {
			best = l
			bestSeat = seat
		}
	}
	if best < minLongestRoad {
		g.LongestRoadPlayer = -1
		return
	}
	if g.LongestRoadPlayer != -1 && longest[g.LongestRoadPlayer] == best {
		return // incumbent keeps a tie
	}
	g.LongestRoadPlayer = bestSeat
}

// longestRoadFor finds the longest simple trail through seat's own
// roads/ships, broken at nodes an opponent's building occupies.
func (g *Game) longestRoadFor(seat int) int {
	edges := map[int]bool{}
	for id, r := range g.Board.Roads {
		if r.Owner == seat {
			edges[id] = true
		}
	}
	if len(edges) == 0 {
		return 0
	}
	nodeSet := map[int]bool{}
	for id := range edges {
		for _, n := range g.Board.Grid.EdgeNodes(id) {
			nodeSet[n] = true
		}
	}
	best := 0
	visited := map[int]bool{}
	for n := range nodeSet {
		l := g.dfsRoad(seat, n, edges, visited)
		if l > best {
			best = l
		}
	}
	return best
}

func (g *Game) dfsRoad(seat, node int, edges, visited map[int]bool) int {
	best := 0
	for _, e := range g.Board.Grid.NodeEdges(node) {
		if !edges[e] || visited[e] {
			continue
		}
		nodes := g.Board.Grid.EdgeNodes(e)
		other := nodes[0]
		if other == node {
			other = nodes[1]
		}
		if piece := g.Board.PieceAt(other); piece != nil && piece.Owner != seat {
			continue // blocked by an opponent's settlement/city
		}
		visited[e] = true
		l := 1 + g.dfsRoad(seat, other, edges, visited)
		visited[e] = false
		if l > best {
			best = l
		}
	}
	return best
}

// recomputeLargestArmy mirrors the same incumbent-keeps-ties rule, at
// the fixed 3-knight minimum.
func (g *Game) recomputeLargestArmy() {
	const minArmy = 3
	best, bestSeat := 0, -1
	for seat, p := range g.Players {
		if p == nil {
			continue
		}
		if p.NumKnights > best {
			best = p.NumKnights
			bestSeat = seat
		}
	}
	if best < minArmy {
		g.LargestArmyPlayer = -1
		return
	}
	if g.LargestArmyPlayer != -1 && g.Players[g.LargestArmyPlayer].NumKnights == best {
		return
	}
	g.LargestArmyPlayer = bestSeat
}

// VictoryPointsFor applies the current largest-army/longest-road
// holders to a seat's score.
func (g *Game) VictoryPointsFor(seat int) int {
	p := g.Players[seat]
	if p == nil {
		return 0
	}
	return p.VictoryPoints(g.LongestRoadPlayer == seat, g.LargestArmyPlayer == seat)
}

func (g *Game) CheckWin(seat int) bool {
	return g.VictoryPointsFor(seat) >= g.Options.VictoryPoints
}
