package game

import (
	"errors"

	"github.com/catanserver/server/internal/wire"
)

// ErrIllegalAction is returned by every Try* method when the matching
// predicate in predicates.go rejects the request. It carries no detail
// beyond "not now" — callers that need a reason code map the request
// kind themselves (§4.E step 3/7: check, then decline with a reason).
var ErrIllegalAction = errors.New("game: action not legal in current state")

// The Try* methods are the handler layer's (§4.E) checked entry points
// for player actions; a few paths (SitDown, StartGame, ClearOffer, and
// ship moves) still reach the game directly. Each pairs a predicate from predicates.go with its transition
// from transitions.go so a caller never forgets to check one. All
// assume the caller already holds the game's lock.

func (g *Game) TryRollDice(seat int) (RollResult, error) {
	if !g.canRollDice(seat) {
		return RollResult{}, ErrIllegalAction
	}
	return g.RollDice(seat), nil
}

func (g *Game) TryDiscard(seat int, give wire.ResourceSet) error {
	if !g.canDiscard(seat, give) {
		return ErrIllegalAction
	}
	g.Discard(seat, give)
	return nil
}

func (g *Game) TryMoveRobber(seat, hex int) (MoveRobberResult, error) {
	if !g.canMoveRobber(seat, hex) {
		return MoveRobberResult{}, ErrIllegalAction
	}
	return g.MoveRobber(seat, hex), nil
}

func (g *Game) TryMovePirate(seat, hex int) (MoveRobberResult, error) {
	if !g.canMovePirate(seat, hex) {
		return MoveRobberResult{}, ErrIllegalAction
	}
	return g.MovePirate(seat, hex), nil
}

func (g *Game) TryChoosePlayer(seat, victim int) (wire.Resource, error) {
	if !g.canChoosePlayer(seat) {
		return wire.UNKNOWN, ErrIllegalAction
	}
	found := false
	for _, v := range g.adjacentOpponents(seat, g.Board.RobberHex) {
		if v == victim {
			found = true
		}
	}
	if !found && g.Board.PirateHex >= 0 {
		for _, v := range g.adjacentOpponents(seat, g.Board.PirateHex) {
			if v == victim {
				found = true
			}
		}
	}
	if !found {
		return wire.UNKNOWN, ErrIllegalAction
	}
	return g.ChoosePlayer(seat, victim), nil
}

func (g *Game) TryBuildRoad(seat, edge int) error {
	if !g.canBuildRoad(seat, edge) {
		return ErrIllegalAction
	}
	g.PutPiece(seat, wire.ROAD, edge)
	return nil
}

func (g *Game) TryBuildShip(seat, edge int) error {
	if !g.canPlaceShip(seat, edge) {
		return ErrIllegalAction
	}
	g.PutPiece(seat, wire.SHIP, edge)
	return nil
}

func (g *Game) TryBuildSettlement(seat, node int) error {
	if !g.canBuildSettlement(seat, node) {
		return ErrIllegalAction
	}
	g.PutPiece(seat, wire.SETTLEMENT, node)
	return nil
}

func (g *Game) TryBuildCity(seat, node int) error {
	if !g.canBuildCity(seat, node) {
		return ErrIllegalAction
	}
	g.PutPiece(seat, wire.CITY, node)
	return nil
}

func (g *Game) TryBuyDevCard(seat int) (wire.DevCardType, error) {
	if !g.canBuyDevCard(seat) {
		return 0, ErrIllegalAction
	}
	return g.BuyDevCard(seat), nil
}

func (g *Game) TryPlayKnight(seat int) error {
	if !g.canPlayKnight(seat) {
		return ErrIllegalAction
	}
	g.PlayKnight(seat)
	return nil
}

func (g *Game) TryPlayRoadBuilding(seat int) error {
	if !g.canPlayRoadBuilding(seat) {
		return ErrIllegalAction
	}
	g.PlayRoadBuilding(seat)
	return nil
}

func (g *Game) TryPlayDiscovery(seat int) error {
	if !g.canPlayDiscovery(seat) {
		return ErrIllegalAction
	}
	g.PlayDiscovery(seat)
	return nil
}

func (g *Game) TryPlayMonopoly(seat int) error {
	if !g.canPlayMonopoly(seat) {
		return ErrIllegalAction
	}
	g.PlayMonopoly(seat)
	return nil
}

func (g *Game) TryDoDiscoveryAction(seat int, picks wire.ResourceSet) error {
	if g.State != WaitingForDiscovery || g.CurrentPlayer != seat || picks.KnownTotal() != 2 {
		return ErrIllegalAction
	}
	g.DoDiscoveryAction(seat, picks)
	return nil
}

func (g *Game) TryDoMonopolyAction(seat int, resource wire.Resource) (int, error) {
	if g.State != WaitingForMonopoly || g.CurrentPlayer != seat {
		return 0, ErrIllegalAction
	}
	return g.DoMonopolyAction(seat, resource), nil
}

func (g *Game) TryPickGoldHexResources(seat int, rs wire.ResourceSet) error {
	if !g.canPickGoldHexResources(seat, rs) {
		return ErrIllegalAction
	}
	g.PickGoldHexResources(seat, rs)
	return nil
}

func (g *Game) TryMakeBankTrade(seat int, give, get wire.ResourceSet) error {
	if !g.canMakeBankTrade(seat, give, get) {
		return ErrIllegalAction
	}
	g.MakeBankTrade(seat, give, get)
	return nil
}

func (g *Game) TrySetOffer(seat int, give, get wire.ResourceSet, toMask []bool) error {
	if g.Options.NoTrading || g.CurrentPlayer != seat || g.State != Play1 {
		return ErrIllegalAction
	}
	g.SetOffer(seat, give, get, toMask)
	return nil
}

func (g *Game) TryAcceptOffer(offerSeat, acceptSeat int) error {
	if !g.canMakeTrade(offerSeat, acceptSeat) {
		return ErrIllegalAction
	}
	g.MakeTrade(offerSeat, acceptSeat)
	return nil
}

func (g *Game) TryAttackPirateFortress(seat int) error {
	if !g.canAttackPirateFortress(seat) {
		return ErrIllegalAction
	}
	g.AttackPirateFortress(seat)
	return nil
}

func (g *Game) TryUndoPutPiece(seat int, t wire.PieceType, coord int) error {
	p := g.Players[seat]
	if p == nil || p.UndosRemaining <= 0 {
		return ErrIllegalAction
	}
	var owner *Piece
	if t == wire.ROAD || t == wire.SHIP {
		owner = g.Board.RoadAt(coord)
	} else {
		owner = g.Board.PieceAt(coord)
	}
	if owner == nil || owner.Owner != seat || owner.Type != t {
		return ErrIllegalAction
	}
	g.UndoPutPiece(seat, t, coord)
	return nil
}

// TryAskSpecialBuild asks for an off-turn build slot once the current
// player's turn ends (5-6 player rule).
func (g *Game) TryAskSpecialBuild(seat int) error {
	if !g.canAskSpecialBuild(seat) {
		return ErrIllegalAction
	}
	g.AskSpecialBuild(seat)
	return nil
}

// TryEndTurn checks that seat may end the turn: the current player, in
// a state where no further mandatory action (discard, robber, dev-card
// resolution) is outstanding.
func (g *Game) TryEndTurn(seat int) error {
	if g.CurrentPlayer != seat {
		return ErrIllegalAction
	}
	if g.State != Play1 && g.State != SpecialBuilding {
		return ErrIllegalAction
	}
	g.EndTurn()
	return nil
}
