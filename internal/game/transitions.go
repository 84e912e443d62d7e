package game

import "github.com/catanserver/server/internal/wire"

// This file holds the state-mutating half of §4.C: each transition
// assumes its matching predicate already passed and the caller holds
// the game's lock. Transitions return a result struct describing what
// happened so the handler layer (§4.E) can broadcast it; they never
// touch the network themselves.

// RollResult describes the outcome of a dice roll, including the
// production gained per seat (keyed by seat index) before 7-handling.
type RollResult struct {
	A, B     int
	Gains    map[int]wire.ResourceSet
	RobberHit bool // rolled a 7
}

func (g *Game) RollDice(seat int) RollResult {
	a := g.Rng.Intn(6) + 1
	b := g.Rng.Intn(6) + 1
	g.DiceA, g.DiceB = a, b
	return g.applyDiceTotal(a, b)
}

// applyDiceTotal resolves production (or the 7-path) for a given pair
// of die faces, split out of RollDice so the resolution logic can be
// exercised directly with a chosen total instead of depending on g.Rng.
func (g *Game) applyDiceTotal(a, b int) RollResult {
	total := a + b
	res := RollResult{A: a, B: b, Gains: map[int]wire.ResourceSet{}}

	if total == 7 {
		res.RobberHit = true
		for _, p := range g.Players {
			if p == nil {
				continue
			}
			if p.Resources.Total() > 7 {
				p.NeedsToDiscard = true
			}
		}
		g.State = WaitingForDiscards
		if !g.anyPlayerMustDiscard() {
			g.State = g.postDiscardRobberState()
		}
		return res
	}

	for _, hex := range g.Board.HexesForNumber(total) {
		resource := g.Board.HexTerrain[hex].Resource()
		for _, node := range g.Board.Grid.HexNodes(hex) {
			piece := g.Board.PieceAt(node)
			if piece == nil {
				continue
			}
			n := 1
			if piece.Type == wire.CITY {
				n = 2
			}
			p := g.Players[piece.Owner]
			var gain wire.ResourceSet
			if g.Board.HexTerrain[hex] == Gold {
				p.NeedsToPickGoldHexN += n
			} else {
				gain[resource] = n
				p.Resources = p.Resources.Add(gain)
				p.RolledThisTurn = p.RolledThisTurn.Add(gain)
			}
			res.Gains[piece.Owner] = res.Gains[piece.Owner].Add(gain)
		}
	}
	if g.anyPlayerNeedsGold() {
		g.State = WaitingForPickGoldResource
	} else {
		g.State = Play1
	}
	return res
}

// postDiscardRobberState is entered once discards are resolved (or
// skipped, because nobody had to discard): a classic board sends the
// robber straight to PLACING_ROBBER, while a sea board still needs the
// current player to choose robber vs. pirate first.
func (g *Game) postDiscardRobberState() GameState {
	if g.Options.SeaBoard {
		return WaitingForRobberOrPirate
	}
	return PlacingRobber
}

func (g *Game) anyPlayerMustDiscard() bool {
	for _, p := range g.Players {
		if p != nil && p.NeedsToDiscard {
			return true
		}
	}
	return false
}

func (g *Game) Discard(seat int, give wire.ResourceSet) {
	p := g.Players[seat]
	p.Resources = p.Resources.Sub(give)
	p.NeedsToDiscard = false
	if !g.anyPlayerMustDiscard() {
		g.State = g.postDiscardRobberState()
	}
}

// MoveRobberResult reports what moving the robber (or pirate) exposed.
type MoveRobberResult struct {
	Hex      int
	Victims  []int // candidate seats with a building adjacent to hex
}

func (g *Game) MoveRobber(seat, hex int) MoveRobberResult {
	g.Board.RobberHex = hex
	victims := g.adjacentOpponents(seat, hex)
	g.resolveRobberTarget(victims)
	return MoveRobberResult{Hex: hex, Victims: victims}
}

func (g *Game) MovePirate(seat, hex int) MoveRobberResult {
	g.Board.PirateHex = hex
	victims := g.adjacentOpponents(seat, hex)
	g.resolveRobberTarget(victims)
	return MoveRobberResult{Hex: hex, Victims: victims}
}

func (g *Game) adjacentOpponents(seat, hex int) []int {
	seen := map[int]bool{}
	var out []int
	for _, node := range g.Board.Grid.HexNodes(hex) {
		piece := g.Board.PieceAt(node)
		if piece == nil || piece.Owner == seat || seen[piece.Owner] {
			continue
		}
		if g.Players[piece.Owner].Resources.Total() == 0 {
			continue
		}
		seen[piece.Owner] = true
		out = append(out, piece.Owner)
	}
	return out
}

func (g *Game) resolveRobberTarget(victims []int) {
	switch {
	case len(victims) == 0:
		g.State = Play1
	case len(victims) == 1:
		g.State = Play1
	default:
		g.State = WaitingForRobChoosePlayer
	}
}

// ChoosePlayer steals one random known resource from victim for seat,
// returning the stolen type (UNKNOWN if the victim had nothing known,
// per the hidden-info redaction rule in Design Note 9.3).
func (g *Game) ChoosePlayer(seat, victim int) wire.Resource {
	taker := g.Players[seat]
	target := g.Players[victim]
	stolen := g.stealRandomResource(target)
	if stolen != wire.UNKNOWN {
		var one wire.ResourceSet
		one[stolen] = 1
		taker.Resources = taker.Resources.Add(one)
	}
	g.State = Play1
	return stolen
}

func (g *Game) stealRandomResource(target *Player) wire.Resource {
	total := target.Resources.KnownTotal()
	if total == 0 {
		return wire.UNKNOWN
	}
	pick := g.Rng.Intn(total)
	running := 0
	for rt := wire.CLAY; rt < wire.UNKNOWN; rt++ {
		running += target.Resources[rt]
		if pick < running {
			var one wire.ResourceSet
			one[rt] = 1
			target.Resources = target.Resources.Sub(one)
			return rt
		}
	}
	return wire.UNKNOWN
}

func (g *Game) BuyDevCard(seat int) wire.DevCardType {
	p := g.Players[seat]
	p.Resources = p.Resources.Sub(costDevCard)
	t := g.DevCardDeck[len(g.DevCardDeck)-1]
	g.DevCardDeck = g.DevCardDeck[:len(g.DevCardDeck)-1]
	p.DevCards.Add(wire.CardNew, t)
	return t
}

func (g *Game) PlayKnight(seat int) {
	p := g.Players[seat]
	p.DevCards.RemoveOneOfType(wire.DevCardKnight)
	p.PlayedDevCard = true
	p.PlayedDevCardsByType[wire.DevCardKnight]++
	p.NumKnights++
	g.recomputeLargestArmy()
	g.State = PlacingRobber
}

func (g *Game) PlayRoadBuilding(seat int) {
	p := g.Players[seat]
	p.DevCards.RemoveOneOfType(wire.DevCardRoadBuilding)
	p.PlayedDevCard = true
	p.PlayedDevCardsByType[wire.DevCardRoadBuilding]++
	g.State = PlacingFreeRoad1
}

func (g *Game) PlayDiscovery(seat int) {
	p := g.Players[seat]
	p.DevCards.RemoveOneOfType(wire.DevCardDiscovery)
	p.PlayedDevCard = true
	p.PlayedDevCardsByType[wire.DevCardDiscovery]++
	g.State = WaitingForDiscovery
}

func (g *Game) DoDiscoveryAction(seat int, picks wire.ResourceSet) {
	g.Players[seat].Resources = g.Players[seat].Resources.Add(picks)
	g.State = Play1
}

func (g *Game) PlayMonopoly(seat int) {
	p := g.Players[seat]
	p.DevCards.RemoveOneOfType(wire.DevCardMonopoly)
	p.PlayedDevCard = true
	p.PlayedDevCardsByType[wire.DevCardMonopoly]++
	g.State = WaitingForMonopoly
}

// DoMonopolyAction moves every other seat's holding of resource to seat.
func (g *Game) DoMonopolyAction(seat int, resource wire.Resource) int {
	total := 0
	for i, p := range g.Players {
		if p == nil || i == seat {
			continue
		}
		n := p.Resources[resource]
		if n == 0 {
			continue
		}
		var rs wire.ResourceSet
		rs[resource] = n
		p.Resources = p.Resources.Sub(rs)
		total += n
	}
	var gained wire.ResourceSet
	gained[resource] = total
	g.Players[seat].Resources = g.Players[seat].Resources.Add(gained)
	g.State = Play1
	return total
}

func (g *Game) PickGoldHexResources(seat int, rs wire.ResourceSet) {
	p := g.Players[seat]
	p.Resources = p.Resources.Add(rs)
	p.NeedsToPickGoldHexN -= rs.KnownTotal()
	if p.NeedsToPickGoldHexN < 0 {
		p.NeedsToPickGoldHexN = 0
	}
	if !g.anyPlayerNeedsGold() {
		if g.State == StartsWaitingForPickGoldResource {
			g.advanceStartPhase()
		} else {
			g.State = Play1
		}
	}
}

func (g *Game) anyPlayerNeedsGold() bool {
	for _, p := range g.Players {
		if p != nil && p.NeedsToPickGoldHexN > 0 {
			return true
		}
	}
	return false
}

// MakeBankTrade exchanges give for get with the bank at whatever rate
// the predicate already validated.
func (g *Game) MakeBankTrade(seat int, give, get wire.ResourceSet) {
	p := g.Players[seat]
	p.Resources = p.Resources.Sub(give).Add(get)
}

func (g *Game) MakeTrade(offerSeat, acceptSeat int) {
	offerer := g.Players[offerSeat]
	accepter := g.Players[acceptSeat]
	offer := offerer.Offer
	offerer.Resources = offerer.Resources.Sub(offer.Give).Add(offer.Get)
	accepter.Resources = accepter.Resources.Sub(offer.Get).Add(offer.Give)
	offerer.Offer = nil
}

func (g *Game) ClearOffer(seat int) {
	g.Players[seat].Offer = nil
}

// PutPiece commits a building/road placement that canBuild* already
// validated, charging resources only in Play1 and SpecialBuilding
// (initial placement during the Start* states is free).
func (g *Game) PutPiece(seat int, t wire.PieceType, coord int) {
	p := g.Players[seat]
	charge := g.State == Play1 || g.State == SpecialBuilding
	switch t {
	case wire.ROAD, wire.SHIP:
		if charge {
			cost := costRoad
			if t == wire.SHIP {
				cost = costShip
			}
			p.Resources = p.Resources.Sub(cost)
		}
		p.TakePiece(t)
		g.Board.Roads[coord] = &Piece{Type: t, Owner: seat, Coord: coord}
	case wire.SETTLEMENT:
		if charge {
			p.Resources = p.Resources.Sub(costSettlement)
		}
		p.TakePiece(t)
		g.Board.Pieces[coord] = &Piece{Type: t, Owner: seat, Coord: coord}
		p.LastSettlementNode = coord
	case wire.CITY:
		if charge {
			p.Resources = p.Resources.Sub(costCity)
		}
		p.ReturnPiece(wire.SETTLEMENT)
		p.TakePiece(wire.CITY)
		g.Board.Pieces[coord].Type = wire.CITY
	}
	g.recomputeLongestRoad()
	g.recordAction(ActionLogEntry{Type: int(t), P1: seat, P2: coord})

	switch g.State {
	case Start1A, Start1B, Start2A, Start2B, Start3A, Start3B:
		if t == wire.SETTLEMENT {
			g.grantInitialResources(seat, coord)
		}
		if t == wire.ROAD || t == wire.SHIP {
			g.advanceStartPhase()
		}
	case Play1, PlacingRoad, PlacingSettlement, PlacingCity, PlacingShip:
		g.State = Play1
	case SpecialBuilding:
		// Stay in the detour so EndTurn hands off to the next queued
		// builder or resumes the interrupted rotation.
	case PlacingFreeRoad1:
		g.State = PlacingFreeRoad2
	case PlacingFreeRoad2:
		g.State = Play1
	}
}

// grantInitialResources gives resources for the adjacent hexes of a
// settlement placed in Start2A/2B or Start3A/3B; a first-round
// (Start1A/1B) settlement earns nothing.
func (g *Game) grantInitialResources(seat int, node int) {
	if g.State != Start2A && g.State != Start2B && g.State != Start3A && g.State != Start3B {
		return
	}
	p := g.Players[seat]
	for _, hex := range g.Board.Grid.NodeHexes(node) {
		t := g.Board.HexTerrain[hex]
		if t == Water || t == Desert || t == Fog {
			continue
		}
		if t == Gold {
			p.NeedsToPickGoldHexN++
			continue
		}
		var rs wire.ResourceSet
		rs[t.Resource()] = 1
		p.Resources = p.Resources.Add(rs)
	}
}

// advanceStartPhase walks the initial-placement round-robin (§4.D):
// 1A/1B seat order forward, 2A/2B reverse order, and on 5-6 player
// boards 3A/3B forward again, then into RollOrCard for the first player.
func (g *Game) advanceStartPhase() {
	order := g.seatOrder()
	idx := indexOf(order, g.CurrentPlayer)
	last := len(order) - 1

	advance := func(next GameState) {
		if idx < last {
			g.CurrentPlayer = order[idx+1]
		}
		g.State = next
	}
	reverse := func(next GameState) {
		if idx > 0 {
			g.CurrentPlayer = order[idx-1]
		}
		g.State = next
	}

	switch g.State {
	case Start1A:
		advance(Start1B)
	case Start1B:
		if idx == last {
			g.State = Start2A
		} else {
			advance(Start1A)
		}
	case Start2A:
		reverse(Start2B)
	case Start2B:
		if idx == 0 {
			if g.Options.Use6Player {
				g.State = Start3A
			} else {
				g.CurrentPlayer = g.FirstPlayer
				g.RoundCount = 1
				g.State = RollOrCard
			}
		} else {
			reverse(Start2A)
		}
	case Start3A:
		advance(Start3B)
	case Start3B:
		if idx == last {
			g.CurrentPlayer = g.FirstPlayer
			g.RoundCount = 1
			g.State = RollOrCard
		} else {
			advance(Start3A)
		}
	}
	if g.anyPlayerNeedsGold() {
		g.State = StartsWaitingForPickGoldResource
	}
}

func (g *Game) seatOrder() []int {
	var out []int
	for i := 0; i < g.Options.MaxPlayers; i++ {
		if g.Players[i] != nil {
			out = append(out, i)
		}
	}
	return out
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func (g *Game) UndoPutPiece(seat int, t wire.PieceType, coord int) {
	p := g.Players[seat]
	if p.UndosRemaining <= 0 {
		return
	}
	p.UndosRemaining--
	switch t {
	case wire.ROAD, wire.SHIP:
		delete(g.Board.Roads, coord)
		p.ReturnPiece(t)
	case wire.SETTLEMENT:
		delete(g.Board.Pieces, coord)
		p.ReturnPiece(t)
	}
	g.recomputeLongestRoad()
}

func (g *Game) AttackPirateFortress(seat int) {
	p := g.Players[seat]
	p.WarshipCount--
}

// AskSpecialBuild records seat's request for an off-turn special-build
// slot once the current player ends their turn (5-6 player rule, §4.D).
func (g *Game) AskSpecialBuild(seat int) {
	g.Players[seat].AskedSpecialBuild = true
}

// EndTurn ends the current seat's turn. In SPECIAL_BUILDING it advances
// to the next queued special builder, or resumes the interrupted normal
// rotation once the queue is empty. Otherwise it rotates to the next
// seated player in order, detouring through any seats that asked for a
// special-build turn before that player's turn starts.
func (g *Game) EndTurn() {
	if g.State == SpecialBuilding {
		g.endSpecialBuildTurn()
		return
	}

	ending := g.CurrentPlayer
	if p := g.Players[ending]; p != nil {
		p.PlayedDevCard = false
		p.RolledThisTurn = wire.ResourceSet{}
	}
	order := g.seatOrder()
	idx := indexOf(order, ending)
	next := order[(idx+1)%len(order)]

	if queue := g.pendingSpecialBuilders(ending); len(queue) > 0 {
		g.postSpecialBuildSeat = next
		g.CurrentPlayer = queue[0]
		g.SpecialBuildQueue = queue[1:]
		g.State = SpecialBuilding
		return
	}
	g.advanceToSeat(next)
}

// endSpecialBuildTurn closes out one seat's special-build slot and moves
// on to the next queued seat, or resumes the normal rotation.
func (g *Game) endSpecialBuildTurn() {
	if p := g.Players[g.CurrentPlayer]; p != nil {
		p.AskedSpecialBuild = false
	}
	if len(g.SpecialBuildQueue) > 0 {
		g.CurrentPlayer = g.SpecialBuildQueue[0]
		g.SpecialBuildQueue = g.SpecialBuildQueue[1:]
		return
	}
	g.advanceToSeat(g.postSpecialBuildSeat)
}

// pendingSpecialBuilders lists, in seat order starting right after
// `after`, every seat that asked for a special-build turn.
func (g *Game) pendingSpecialBuilders(after int) []int {
	order := g.seatOrder()
	start := indexOf(order, after)
	var out []int
	for i := 1; i < len(order); i++ {
		seat := order[(start+i)%len(order)]
		if p := g.Players[seat]; p != nil && p.AskedSpecialBuild {
			out = append(out, seat)
		}
	}
	return out
}

// advanceToSeat commits seat as the next normal turn: round bookkeeping,
// dev-card promotion, and the ROLL_OR_CARD reset.
func (g *Game) advanceToSeat(seat int) {
	g.CurrentPlayer = seat
	if seat == g.FirstPlayer {
		g.RoundCount++
	}
	g.Players[seat].DevCards.PromoteAllNewToOld()
	g.State = RollOrCard
}
