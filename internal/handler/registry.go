package handler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// SessionState is where a connection sits in the lobby/game protocol.
// It gates which messages are legal to dispatch right now, the same
// role the lobby handshake and a game's turn state play together.
type SessionState int

const (
	StateHandshake SessionState = iota
	StateAuthenticated
	StateInGame
)

func (s SessionState) String() string {
	switch s {
	case StateHandshake:
		return "Handshake"
	case StateAuthenticated:
		return "Authenticated"
	case StateInGame:
		return "InGame"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

type handlerEntry struct {
	fn            HandlerFunc
	allowedStates map[SessionState]bool
}

// Registry maps a message's wire.MsgType to its handler, restricted to
// the session states it's legal in. One Registry serves every session.
type Registry struct {
	handlers map[wire.MsgType]*handlerEntry
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{handlers: make(map[wire.MsgType]*handlerEntry), log: log}
}

func (reg *Registry) Register(t wire.MsgType, states []SessionState, fn HandlerFunc) {
	allowed := make(map[SessionState]bool, len(states))
	for _, s := range states {
		allowed[s] = true
	}
	reg.handlers[t] = &handlerEntry{fn: fn, allowedStates: allowed}
}

// Dispatch looks up msg's type, checks state, and calls the handler
// under panic recovery so one bad message can't take the game down.
func (reg *Registry) Dispatch(d *Deps, sess *session.Session, state SessionState, msg wire.Message) error {
	entry, ok := reg.handlers[msg.Type()]
	if !ok {
		reg.log.Debug("no handler registered", zap.Stringer("type", msg.Type()))
		return nil
	}
	if !entry.allowedStates[state] {
		reg.log.Warn("message not allowed in current state",
			zap.Stringer("type", msg.Type()), zap.Stringer("state", state))
		return fmt.Errorf("handler: %s not allowed in state %s", msg.Type(), state)
	}
	return reg.safeCall(entry.fn, d, sess, msg)
}

func (reg *Registry) safeCall(fn HandlerFunc, d *Deps, sess *session.Session, msg wire.Message) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			reg.log.Error("handler panic recovered",
				zap.Stringer("type", msg.Type()), zap.Any("panic", rec))
			err = fmt.Errorf("handler: panic handling %s: %v", msg.Type(), rec)
		}
	}()
	fn(d, sess, msg)
	return nil
}

// NewGameRegistry registers every in-game handler. Call once at startup.
func NewGameRegistry(log *zap.Logger) *Registry {
	reg := NewRegistry(log)
	inGame := []SessionState{StateInGame}

	reg.Register(wire.STARTGAME, inGame, HandleStartGame)
	reg.Register(wire.SITDOWN, inGame, HandleSitDown)
	reg.Register(wire.CHANGEFACE, inGame, HandleChangeFace)
	reg.Register(wire.SETSEATLOCK, inGame, HandleSetSeatLock)

	reg.Register(wire.ROLLDICE, inGame, HandleRollDice)
	reg.Register(wire.ENDTURN, inGame, HandleEndTurn)

	reg.Register(wire.PUTPIECE, inGame, HandlePutPiece)
	reg.Register(wire.UNDOPUTPIECE, inGame, HandleUndoPutPiece)
	reg.Register(wire.MOVEPIECE, inGame, HandleMovePiece)
	reg.Register(wire.BUILDREQUEST, inGame, HandleBuildRequest)

	reg.Register(wire.MOVEROBBER, inGame, HandleMoveRobber)
	reg.Register(wire.CHOOSEPLAYER, inGame, HandleChoosePlayer)
	reg.Register(wire.DISCARD, inGame, HandleDiscard)

	reg.Register(wire.MAKEOFFER, inGame, HandleMakeOffer)
	reg.Register(wire.ACCEPTOFFER, inGame, HandleAcceptOffer)
	reg.Register(wire.REJECTOFFER, inGame, HandleRejectOffer)
	reg.Register(wire.CLEAROFFER, inGame, HandleClearOffer)
	reg.Register(wire.BANKTRADE, inGame, HandleBankTrade)

	reg.Register(wire.BUYDEVCARDREQUEST, inGame, HandleBuyDevCardRequest)
	reg.Register(wire.PLAYDEVCARDREQUEST, inGame, HandlePlayDevCardRequest)
	reg.Register(wire.PICKRESOURCES, inGame, HandlePickResources)
	reg.Register(wire.PICKRESOURCETYPE, inGame, HandlePickResourceType)

	reg.Register(wire.GAMETEXTMSG, inGame, HandleGameTextMsg)

	return reg
}
