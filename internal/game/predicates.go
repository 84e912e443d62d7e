package game

import "github.com/catanserver/server/internal/wire"

// This file holds the pure "can the current request legally happen right
// now" checks (§4.C). None of them mutate the game; transitions.go calls
// them before committing anything. They assume the caller already holds
// the game's lock.

func (g *Game) canRollDice(seat int) bool {
	return g.State == RollOrCard && g.CurrentPlayer == seat
}

// canAskSpecialBuild checks the 5-6 player special building request
// (§4.D): only off-turn seats may ask, only once per round, only while
// the table is using the 5-6 player rule, and only in PLAY1.
func (g *Game) canAskSpecialBuild(seat int) bool {
	if !g.Options.Use6Player && !g.Options.SpecialBuildOnly5or6 {
		return false
	}
	p := g.Players[seat]
	if p == nil || p.AskedSpecialBuild {
		return false
	}
	if g.State != Play1 || g.CurrentPlayer == seat {
		return false
	}
	return true
}

func (g *Game) canDiscard(seat int, give wire.ResourceSet) bool {
	p := g.Players[seat]
	if p == nil || !p.NeedsToDiscard {
		return false
	}
	if g.State != WaitingForDiscards {
		return false
	}
	want := p.Resources.Total() / 2
	return give.KnownTotal() == want && p.Resources.CanAfford(give)
}

func (g *Game) canChoosePlayer(seat int) bool {
	return g.State == WaitingForRobChoosePlayer && g.CurrentPlayer == seat
}

func (g *Game) canChooseRobClothOrResource(seat int) bool {
	return g.State == WaitingForRobClothOrResource && g.CurrentPlayer == seat
}

func (g *Game) canMoveRobber(seat, hex int) bool {
	if g.CurrentPlayer != seat {
		return false
	}
	if g.State != PlacingRobber {
		return false
	}
	if hex < 0 || hex >= g.Board.Grid.NumHexes() {
		return false
	}
	if g.Board.HexTerrain[hex] == Water {
		return false
	}
	if hex == g.Board.RobberHex && g.Options.RobberCantReturnDesert {
		return false
	}
	return true
}

func (g *Game) canMovePirate(seat, hex int) bool {
	if g.CurrentPlayer != seat || g.State != PlacingPirate {
		return false
	}
	if hex < 0 || hex >= g.Board.Grid.NumHexes() {
		return false
	}
	return g.Board.HexTerrain[hex] == Water
}

// canPlaceShip checks only adjacency and vacancy; the "connects to the
// player's own network" rule is identical to a road's and handled in
// canBuildRoad's shared helper, reused here.
func (g *Game) canPlaceShip(seat, edge int) bool {
	return g.canPlaceRoadOrShip(seat, edge, true)
}

func (g *Game) canBuildRoad(seat, edge int) bool {
	return g.canPlaceRoadOrShip(seat, edge, false)
}

func (g *Game) canPlaceRoadOrShip(seat, edge int, ship bool) bool {
	p := g.Players[seat]
	if p == nil || g.Board == nil {
		return false
	}
	if edge < 0 || edge >= g.Board.Grid.NumEdges() {
		return false
	}
	if g.Board.RoadAt(edge) != nil {
		return false
	}
	pieceType := wire.ROAD
	if ship {
		pieceType = wire.SHIP
	}
	if g.State == Play1 && !p.HasPieceAvailable(pieceType) {
		return false
	}
	if g.Board.ShipRouteClosed[edge] {
		return false
	}
	nodes := g.Board.Grid.EdgeNodes(edge)
	for _, n := range nodes {
		if owner := g.Board.PieceAt(n); owner != nil {
			if owner.Owner == seat {
				return true
			}
			continue // enemy settlement/city blocks extending through it
		}
		for _, e2 := range g.Board.Grid.NodeEdges(n) {
			if e2 == edge {
				continue
			}
			if r := g.Board.RoadAt(e2); r != nil && r.Owner == seat {
				return true
			}
		}
	}
	return false
}

func (g *Game) canBuildSettlement(seat, node int) bool {
	p := g.Players[seat]
	if p == nil || g.Board == nil {
		return false
	}
	if node < 0 || node >= g.Board.Grid.NumNodes() {
		return false
	}
	if g.Board.PieceAt(node) != nil {
		return false
	}
	for _, nb := range g.Board.Grid.NodeNodes(node) {
		if g.Board.PieceAt(nb) != nil {
			return false // distance rule
		}
	}
	if g.State == Play1 {
		if !p.HasPieceAvailable(wire.SETTLEMENT) {
			return false
		}
		if !p.Resources.CanAfford(costSettlement) {
			return false
		}
		connected := false
		for _, e := range g.Board.Grid.NodeEdges(node) {
			if r := g.Board.RoadAt(e); r != nil && r.Owner == seat {
				connected = true
			}
		}
		if !connected {
			return false
		}
	}
	return true
}

func (g *Game) canBuildCity(seat, node int) bool {
	p := g.Players[seat]
	if p == nil {
		return false
	}
	existing := g.Board.PieceAt(node)
	if existing == nil || existing.Owner != seat || existing.Type != wire.SETTLEMENT {
		return false
	}
	if !p.HasPieceAvailable(wire.CITY) {
		return false
	}
	return p.Resources.CanAfford(costCity)
}

func (g *Game) canBuyDevCard(seat int) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	if len(g.DevCardDeck) == 0 {
		return false
	}
	return p.Resources.CanAfford(costDevCard)
}

func (g *Game) canPlayKnight(seat int) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	return !p.PlayedDevCard && p.DevCards.PlayableCountOfType(wire.DevCardKnight) > 0
}

func (g *Game) canPlayRoadBuilding(seat int) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	return !p.PlayedDevCard && p.DevCards.PlayableCountOfType(wire.DevCardRoadBuilding) > 0
}

func (g *Game) canPlayDiscovery(seat int) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	return !p.PlayedDevCard && p.DevCards.PlayableCountOfType(wire.DevCardDiscovery) > 0
}

func (g *Game) canPlayMonopoly(seat int) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	return !p.PlayedDevCard && p.DevCards.PlayableCountOfType(wire.DevCardMonopoly) > 0
}

func (g *Game) canMakeTrade(offerSeat, acceptSeat int) bool {
	if g.Options.NoTrading {
		return false
	}
	if g.CurrentPlayer != offerSeat || g.State != Play1 {
		return false
	}
	offerer := g.Players[offerSeat]
	accepter := g.Players[acceptSeat]
	if offerer == nil || accepter == nil || offerer.Offer == nil {
		return false
	}
	if !offerer.Offer.ToMask[acceptSeat] {
		return false
	}
	if !offerer.Resources.CanAfford(offerer.Offer.Give) {
		return false
	}
	return accepter.Resources.CanAfford(offerer.Offer.Get)
}

func (g *Game) canMakeBankTrade(seat int, give, get wire.ResourceSet) bool {
	p := g.Players[seat]
	if p == nil || g.CurrentPlayer != seat || g.State != Play1 {
		return false
	}
	if !p.Resources.CanAfford(give) {
		return false
	}
	rate := g.bestRateFor(seat, give)
	return give.KnownTotal() == rate*get.KnownTotal()
}

// bestRateFor returns the best (lowest) trading rate the player can use
// across every resource type present in give, taking ports into account.
func (g *Game) bestRateFor(seat int, give wire.ResourceSet) int {
	rate := 4
	for node, piece := range g.Board.Pieces {
		if piece.Owner != seat {
			continue
		}
		port := g.Board.PortAt(node)
		if port == NoPort {
			continue
		}
		if port == PortGeneric {
			if rate > 3 {
				rate = 3
			}
			continue
		}
		if give[port.Resource()] > 0 && rate > port.Rate() {
			rate = port.Rate()
		}
	}
	return rate
}

func (g *Game) canAttackPirateFortress(seat int) bool {
	p := g.Players[seat]
	return p != nil && g.CurrentPlayer == seat && g.State == Play1 && p.WarshipCount > 0
}

func (g *Game) canPickGoldHexResources(seat int, rs wire.ResourceSet) bool {
	p := g.Players[seat]
	if p == nil || p.NeedsToPickGoldHexN <= 0 {
		return false
	}
	return rs.KnownTotal() == p.NeedsToPickGoldHexN
}
