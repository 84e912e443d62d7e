package game

import "github.com/catanserver/server/internal/wire"

// SetOffer records seat's outstanding trade proposal, replacing any
// previous one. Validation of affordability happens in canMakeTrade at
// accept time, not here — an offer can be made speculatively before all
// of the offerer's resources are confirmed by other in-flight actions.
func (g *Game) SetOffer(seat int, give, get wire.ResourceSet, toMask []bool) {
	g.Players[seat].Offer = &wire.TradeOffer{
		FromSeat: seat,
		ToMask:   toMask,
		Give:     give,
		Get:      get,
	}
}

func (g *Game) RejectOffer(seat int) {
	// Rejections don't clear the offer — other seats may still accept it;
	// the handler layer only broadcasts the rejection notice.
	_ = seat
}

func (g *Game) ClearAllOffers() {
	for _, p := range g.Players {
		if p != nil {
			p.Offer = nil
		}
	}
}
