package server

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/catalog"
	"github.com/catanserver/server/internal/game"
	"github.com/catanserver/server/internal/handler"
	"github.com/catanserver/server/internal/wire"
)

// clientVersion is the minimum VERSION this server accepts; anything
// older fails the handshake outright with REJECTCONNECTION.
const clientVersion = wire.VersionBase

// runSession drives one connection end to end: handshake, auth, lobby
// commands, then in-game message dispatch, until the session closes.
func (s *Server) runSession(sess *sessionHandle) {
	defer s.cleanupSession(sess)

	state := handler.StateHandshake
	for msg := range sess.sess.InQueue {
		if !s.limiters.AllowMessage(sess.sess.ID) {
			continue
		}
		switch state {
		case handler.StateHandshake:
			state = s.handleHandshake(sess, msg)
		case handler.StateAuthenticated:
			state = s.handleLobbyCommand(sess, msg)
		case handler.StateInGame:
			state = s.handleInGame(sess, msg)
		}
	}
}

func (s *Server) handleHandshake(sess *sessionHandle, msg wire.Message) handler.SessionState {
	v, ok := msg.(*wire.Version)
	if !ok {
		return handler.StateHandshake
	}
	sess.sess.SetVersion(v.VersNum)
	sess.sess.SendMessage(&wire.Version{
		VersNum: clientVersion, VersStr: "1.0.00", BuildStr: "catanserver", Locale: "en_US",
	})
	if v.VersNum < clientVersion {
		sess.sess.SendMessage(&wire.RejectConnection{Text: "client version too old"})
		sess.sess.Close()
		return handler.StateHandshake
	}

	for _, o := range catalog.Options {
		sess.sess.SendMessage(optionInfoFor(o))
	}
	sess.sess.SendMessage(&wire.GameOptionInfo{Key: "-"})
	for _, sc := range catalog.Scenarios {
		sess.sess.SendMessage(&wire.ScenarioInfo{Key: sc.Key, Name: sc.Name})
	}
	sess.sess.SendMessage(&wire.ScenarioInfo{Key: "-"})
	return handler.StateAuthenticated
}

func (s *Server) handleLobbyCommand(sess *sessionHandle, msg wire.Message) handler.SessionState {
	switch m := msg.(type) {
	case *wire.AuthRequest:
		if !s.limiters.AllowLogin(sess.remoteAddr) || !s.accounts.Authenticate(m.Nickname, m.Password) {
			sess.sess.SendMessage(&wire.StatusMessage{Code: 1, Text: "invalid nickname or password"})
			return handler.StateAuthenticated
		}
		sess.sess.Nickname = m.Nickname
		sess.sess.SetAuthenticated(true)
		sess.sess.SendMessage(&wire.StatusMessage{Code: 0, Text: "Welcome to catanserver"})
		return handler.StateAuthenticated

	case *wire.NewGame:
		s.createGame(sess, m.GameName, "")
		return handler.StateAuthenticated

	case *wire.NewGameWithOptions:
		s.createGame(sess, m.GameName, m.Opts)
		return handler.StateAuthenticated

	case *wire.JoinGame:
		return s.joinGame(sess, m.GameName)

	case *wire.Games:
		sess.sess.SendMessage(&wire.Games{Names: s.registry.Names()})
		return handler.StateAuthenticated

	case *wire.GamesWithOptions:
		sess.sess.SendMessage(&wire.GamesWithOptions{Games: s.gamesWithOptions()})
		return handler.StateAuthenticated

	case *wire.DeleteGame:
		s.registry.Delete(m.GameName)
		sess.sess.SendMessage(&wire.StatusMessage{Code: 0, Text: "deleted " + m.GameName})
		return handler.StateAuthenticated

	case *wire.LeaveGame:
		// A client still in the lobby has nothing to leave; the in-game
		// LEAVEGAME path (member departure) runs through handleInGame
		// instead, once StateInGame routes it by GameName.
		return handler.StateAuthenticated

	case *wire.GameOptionGetDefaults:
		sess.sess.SendMessage(&wire.GameOptionGetDefaults{Opts: optionDefaultsFor(m.Opts)})
		return handler.StateAuthenticated

	default:
		s.log.Debug("ignoring lobby message", zap.Stringer("type", msg.Type()))
		return handler.StateAuthenticated
	}
}

func (s *Server) createGame(sess *sessionHandle, name, opts string) {
	if !sess.sess.Authenticated() {
		sess.sess.SendMessage(&wire.StatusMessage{Code: 1, Text: "not authenticated"})
		return
	}
	values := catalog.ParseOptionString(opts)
	resolved := game.ResolveOptions(values)
	if sc, ok := catalog.LookupScenario(resolved.ScenarioKey); ok {
		for k, v := range catalog.ParseOptionString(sc.Options) {
			values[k] = v
		}
		resolved = game.ResolveOptions(values)
	}
	_, _, created := s.registry.Create(name, resolved, s.nextSeed())
	if !created {
		sess.sess.SendMessage(&wire.StatusMessage{Code: 1, Text: "a game with that name already exists"})
		return
	}
	sess.sess.SendMessage(&wire.StatusMessage{Code: 0, Text: "created " + name})
}

func (s *Server) joinGame(sess *sessionHandle, name string) handler.SessionState {
	g, b, ok := s.registry.Lookup(name)
	if !ok {
		sess.sess.SendMessage(&wire.StatusMessage{Code: 1, Text: "no such game"})
		return handler.StateAuthenticated
	}
	sess.gameName = name
	b.MemberJoin(sess.sess, -1, sess.sess.Nickname)
	sess.sess.SendMessage(&wire.JoinGameAuth{GameName: name})

	members := make([]string, 0)
	for _, p := range g.Players {
		if p != nil {
			members = append(members, p.Nickname)
		}
	}
	sess.sess.SendMessage(&wire.GameMembers{GameName: name, Members: members})
	return handler.StateInGame
}

func (s *Server) handleInGame(sess *sessionHandle, msg wire.Message) handler.SessionState {
	name := gameNameOf(msg)
	if name == "" || name != sess.gameName {
		return handler.StateInGame
	}
	g, b, ok := s.registry.Lookup(name)
	if !ok {
		return handler.StateInGame
	}

	if lv, isLeave := msg.(*wire.LeaveGame); isLeave {
		b.EmitToGame(lv)
		b.MemberLeave(sess.sess)
		sess.gameName = ""
		return handler.StateAuthenticated
	}

	d := &handler.Deps{
		Game: g, Bcast: b, Scenario: s.scenario, Log: s.log,
		Seat: g.SeatOf(sess.sess.Nickname),
	}
	if err := s.handlers.Dispatch(d, sess.sess, handler.StateInGame, msg); err != nil {
		s.log.Debug("dispatch error", zap.Error(err))
	}
	return handler.StateInGame
}

// optionInfoFor translates one catalog entry into the wire encoding a
// client's option dialog understands.
func optionInfoFor(o catalog.Option) *wire.GameOptionInfo {
	info := &wire.GameOptionInfo{
		Key: o.Key, MinValue: o.Min, MaxValue: o.Max, MinVersion: o.MinVersion,
	}
	switch o.Type {
	case catalog.TypeBool:
		info.OptType = 1
		if b, ok := o.Default.(bool); ok {
			info.DefaultBool = b
		}
	case catalog.TypeInt:
		info.OptType = 2
		if n, ok := o.Default.(int); ok {
			info.DefaultInt = n
		}
	case catalog.TypeEnum:
		info.OptType = 4
		if s, ok := o.Default.(string); ok {
			info.DefaultStr = s
		}
	case catalog.TypeString:
		info.OptType = 6
		if s, ok := o.Default.(string); ok {
			info.DefaultStr = s
		}
	}
	return info
}

// gamesWithOptions lists every live game alongside its current option
// string, reconstructed from the resolved in-memory Options rather than
// stored separately.
func (s *Server) gamesWithOptions() []wire.GameInfo {
	names := s.registry.Names()
	out := make([]wire.GameInfo, 0, len(names))
	for _, name := range names {
		g, _, ok := s.registry.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, wire.GameInfo{Name: name, Opts: optionStringFor(g.Options)})
	}
	return out
}

func optionStringFor(o game.Options) string {
	parts := []string{fmt.Sprintf("PL=%d", o.MaxPlayers), fmt.Sprintf("VP=t%d", o.VictoryPoints)}
	if o.Use6Player {
		parts = append(parts, "PLB=t")
	}
	if o.SeaBoard {
		parts = append(parts, "SBL=t")
	}
	if o.ScenarioKey != "" {
		parts = append(parts, "SC="+o.ScenarioKey)
	}
	return strings.Join(parts, ",")
}

// optionDefaultsFor answers a GAMEOPTIONGETDEFAULTS request: for each
// unrecognized "KEY" the client named, echo back "KEY=default" from the
// catalog so an older client can fill in a value it doesn't understand.
func optionDefaultsFor(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		opt, ok := catalog.Lookup(key)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("%s=%v", key, opt.Default))
	}
	return out
}

// gameNameOf extracts the GameName field carried by every message the
// in-game handler registry dispatches, so the server can route a
// message without knowing its concrete type beyond that.
func gameNameOf(msg wire.Message) string {
	switch m := msg.(type) {
	case *wire.StartGame:
		return m.GameName
	case *wire.SitDown:
		return m.GameName
	case *wire.ChangeFace:
		return m.GameName
	case *wire.SetSeatLock:
		return m.GameName
	case *wire.RollDice:
		return m.GameName
	case *wire.EndTurn:
		return m.GameName
	case *wire.PutPiece:
		return m.GameName
	case *wire.UndoPutPiece:
		return m.GameName
	case *wire.MovePiece:
		return m.GameName
	case *wire.BuildRequest:
		return m.GameName
	case *wire.LeaveGame:
		return m.GameName
	case *wire.MoveRobber:
		return m.GameName
	case *wire.ChoosePlayer:
		return m.GameName
	case *wire.Discard:
		return m.GameName
	case *wire.MakeOffer:
		return m.GameName
	case *wire.AcceptOffer:
		return m.GameName
	case *wire.RejectOffer:
		return m.GameName
	case *wire.ClearOffer:
		return m.GameName
	case *wire.BankTrade:
		return m.GameName
	case *wire.BuyDevCardRequest:
		return m.GameName
	case *wire.PlayDevCardRequest:
		return m.GameName
	case *wire.PickResources:
		return m.GameName
	case *wire.PickResourceType:
		return m.GameName
	case *wire.GameTextMsg:
		return m.GameName
	default:
		return ""
	}
}
