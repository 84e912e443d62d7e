package handler

import (
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

func HandleMakeOffer(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.MakeOffer)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Offer.FromSeat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your offer")
		return
	}
	if err := g.TrySetOffer(d.Seat, m.Offer.Give, m.Offer.Get, m.Offer.ToMask); err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "cannot offer a trade right now")
		return
	}
	d.Bcast.EmitToGame(m)
}

func HandleAcceptOffer(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.AcceptOffer)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Accepter != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your acceptance")
		return
	}
	if err := g.TryAcceptOffer(m.Offerer, m.Accepter); err != nil {
		decline(d, sess, m.GameName, ReasonIllegal, "trade no longer available")
		return
	}
	d.Bcast.EmitToGame(m)
	d.Bcast.EmitToGame(&wire.ClearOffer{GameName: m.GameName, Seat: m.Offerer})
}

func HandleRejectOffer(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.RejectOffer)
	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your rejection")
		return
	}
	d.Bcast.EmitToGame(m)
}

func HandleClearOffer(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.ClearOffer)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your offer")
		return
	}
	g.ClearOffer(d.Seat)
	d.Bcast.EmitToGame(m)
}

func HandleBankTrade(d *Deps, sess *session.Session, raw wire.Message) {
	m := raw.(*wire.BankTrade)
	g := d.Game
	g.Lock()
	defer g.Unlock()

	if m.Seat != d.Seat {
		decline(d, sess, m.GameName, ReasonNotSeated, "not your seat")
		return
	}
	if err := g.TryMakeBankTrade(d.Seat, m.Give, m.Get); err != nil {
		decline(d, sess, m.GameName, ReasonNotEnoughResources, "bank won't accept that trade")
		return
	}
	d.Bcast.EmitToGame(m)
}
