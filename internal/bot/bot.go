// Package bot implements a minimal scripted player: Go handles the
// wire protocol and turn-taking, with no real strategy beyond "roll,
// then end the turn" — enough to keep an IsBotsOnly practice game
// moving without a human at every seat.
package bot

import (
	"time"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// Bot drives one seat over a LocalTransport pair; the other end is
// handed to the server's session accept path by the caller.
type Bot struct {
	Nickname string
	sess     *session.Session
	log      *zap.Logger
	gameName string
	seat     int
	closeCh  chan struct{}
}

func New(nickname string, id uint64, transport session.Transport, log *zap.Logger) *Bot {
	sess := session.New(id, transport, 32, 32, log)
	return &Bot{Nickname: nickname, sess: sess, log: log, seat: -1, closeCh: make(chan struct{})}
}

func (b *Bot) Session() *session.Session { return b.sess }

// Run starts the bot's reader/writer and its decision loop. It blocks
// until the session closes.
func (b *Bot) Run(gameName string) {
	b.gameName = gameName
	b.sess.Start()
	b.sess.SendMessage(&wire.Version{VersNum: wire.VersionBase, VersStr: "1.0.00", Locale: "en_US"})

	for {
		select {
		case msg, ok := <-b.sess.InQueue:
			if !ok {
				return
			}
			b.handle(msg)
		case <-b.closeCh:
			return
		}
	}
}

func (b *Bot) Stop() {
	select {
	case <-b.closeCh:
	default:
		close(b.closeCh)
	}
	b.sess.Close()
}

func (b *Bot) handle(msg wire.Message) {
	switch m := msg.(type) {
	case *wire.Version:
		b.sess.SetVersion(m.VersNum)
		b.sess.SendMessage(&wire.AuthRequest{Role: 0, Nickname: b.Nickname, Scheme: 1, Password: "bot"})
	case *wire.GameOptionInfo:
		if m.Key == "-" {
			b.sess.SendMessage(&wire.JoinGame{Nickname: b.Nickname, GameName: b.gameName})
		}
	case *wire.StatusMessage:
		if m.Code == 0 {
			b.sess.SendMessage(&wire.JoinGame{Nickname: b.Nickname, GameName: b.gameName})
		}
	case *wire.JoinGameAuth:
		b.sess.SendMessage(&wire.SitDown{GameName: b.gameName, Seat: b.nextOpenSeat(), Nickname: b.Nickname, IsRobot: true})
	case *wire.SitDown:
		if m.Nickname == b.Nickname {
			b.seat = m.Seat
		}
	case *wire.Turn:
		if m.Seat == b.seat {
			go b.takeTurn()
		}
	}
}

// nextOpenSeat is a placeholder until SITDOWN's reply tells the bot its
// actual seat; 0 only matters when the bot is first to sit.
func (b *Bot) nextOpenSeat() int { return 0 }

// takeTurn runs the bot's entire turn: roll, then immediately end it.
// A short delay keeps a bots-only game from spinning faster than a
// human audience could follow.
func (b *Bot) takeTurn() {
	time.Sleep(300 * time.Millisecond)
	b.sess.SendMessage(&wire.RollDice{GameName: b.gameName})
	time.Sleep(300 * time.Millisecond)
	b.sess.SendMessage(&wire.EndTurn{GameName: b.gameName})
}
