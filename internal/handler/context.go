// Package handler implements the per-message game logic that sits
// between a decoded wire.Message and the game model: resolve the
// sender's seat, check the request is legal right now, mutate the
// game, then broadcast the result to every member.
package handler

import (
	"go.uber.org/zap"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/scenario"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// Deps bundles everything a handler needs for one game's worth of
// message traffic. The server layer builds one per dispatched message,
// looking Game/Bcast up by the message's GameName field.
type Deps struct {
	Game     *game.Game
	Bcast    *broadcast.Broadcaster
	Scenario *scenario.Engine
	Log      *zap.Logger
	Seat     int // sender's seat in Game, or -1 if not seated
}

// decline answers a rejected request with a reason code and falls back
// text, sent only to the requester.
func decline(d *Deps, sess *session.Session, gameName string, code int, text string) {
	sess.SendMessage(&wire.DeclinePlayerRequest{GameName: gameName, ReasonCode: code, Text: text})
}

// Reason codes for DeclinePlayerRequest.
const (
	ReasonNotYourTurn     = 1
	ReasonIllegal         = 2
	ReasonNotEnoughResources = 3
	ReasonNotSeated       = 4
)

func emitState(d *Deps, gameName string) {
	d.Bcast.EmitToGame(&wire.GameState{GameName: gameName, State: int(d.Game.State)})
}

func emitTurn(d *Deps, gameName string) {
	d.Bcast.EmitToGame(&wire.Turn{GameName: gameName, Seat: d.Game.CurrentPlayer, State: int(d.Game.State)})
}

func emitGameText(d *Deps, gameName, text string) {
	d.Bcast.EmitToGame(&wire.GameServerText{GameName: gameName, Text: text})
}

// HandlerFunc is the dispatch signature every registered handler uses.
type HandlerFunc func(d *Deps, sess *session.Session, msg wire.Message)
