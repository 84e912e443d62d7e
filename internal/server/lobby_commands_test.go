package server

import (
	"testing"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// connectAuthenticated drives one connection through VERSION and
// AUTHREQUEST, leaving it sitting in StateAuthenticated, ready to issue
// lobby commands.
func connectAuthenticated(t *testing.T, s *Server, connID uint64, nickname string) *session.Session {
	t.Helper()
	a, b := session.NewLocalPair(64)
	srv := session.New(connID, a, 64, 64, zap.NewNop())
	srv.Start()
	client := session.New(connID+1000, b, 64, 64, zap.NewNop())
	client.Start()

	sh := &sessionHandle{sess: srv, remoteAddr: "127.0.0.1:test"}
	go s.runSession(sh)

	client.SendMessage(&wire.Version{VersNum: wire.VersionBase, VersStr: "1.0.00"})
	recvUntil[*wire.Version](t, client.InQueue, 5)
	for {
		msg := <-client.InQueue
		if info, ok := msg.(*wire.GameOptionInfo); ok && info.Key == "-" {
			break
		}
	}
	for {
		msg := <-client.InQueue
		if info, ok := msg.(*wire.ScenarioInfo); ok && info.Key == "-" {
			break
		}
	}
	client.SendMessage(&wire.AuthRequest{Nickname: nickname, Password: "secret"})
	status := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if status.Code != 0 {
		t.Fatalf("auth should succeed, got code %d: %s", status.Code, status.Text)
	}
	return client
}

func TestGamesAndGamesWithOptionsListLiveGames(t *testing.T) {
	s := newTestServer(t)
	client := connectAuthenticated(t, s, 10, "alice")

	client.SendMessage(&wire.NewGame{GameName: "g1"})
	recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	client.SendMessage(&wire.NewGameWithOptions{GameName: "g2", Opts: "PL=6,PLB=t"})
	recvUntil[*wire.StatusMessage](t, client.InQueue, 3)

	client.SendMessage(&wire.Games{})
	games := recvUntil[*wire.Games](t, client.InQueue, 3)
	seen := map[string]bool{}
	for _, n := range games.Names {
		seen[n] = true
	}
	if !seen["g1"] || !seen["g2"] {
		t.Fatalf("Games.Names = %v, want both g1 and g2", games.Names)
	}

	client.SendMessage(&wire.GamesWithOptions{})
	withOpts := recvUntil[*wire.GamesWithOptions](t, client.InQueue, 3)
	found := map[string]string{}
	for _, gi := range withOpts.Games {
		found[gi.Name] = gi.Opts
	}
	if _, ok := found["g1"]; !ok {
		t.Fatalf("GamesWithOptions should describe g1, got %v", withOpts.Games)
	}
	if opts, ok := found["g2"]; !ok || opts == "" {
		t.Fatalf("GamesWithOptions should describe g2 with a non-empty option string, got %q", opts)
	}
}

func TestDeleteGameRemovesItFromTheRegistry(t *testing.T) {
	s := newTestServer(t)
	client := connectAuthenticated(t, s, 20, "alice")

	client.SendMessage(&wire.NewGame{GameName: "g1"})
	recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if _, _, ok := s.registry.Lookup("g1"); !ok {
		t.Fatalf("g1 should exist before deletion")
	}

	client.SendMessage(&wire.DeleteGame{GameName: "g1"})
	status := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if status.Code != 0 {
		t.Fatalf("DeleteGame should report success, got code %d: %s", status.Code, status.Text)
	}
	if _, _, ok := s.registry.Lookup("g1"); ok {
		t.Fatalf("g1 should no longer be registered after DeleteGame")
	}
}

func TestLeaveGameInLobbyIsANoOp(t *testing.T) {
	s := newTestServer(t)
	client := connectAuthenticated(t, s, 30, "alice")

	client.SendMessage(&wire.LeaveGame{GameName: "nosuchgame"})
	// The session should remain authenticated and able to issue further
	// lobby commands; a NewGame round-trip proves it didn't get stuck.
	client.SendMessage(&wire.NewGame{GameName: "g1"})
	status := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if status.Code != 0 {
		t.Fatalf("session should still be able to create games after a lobby-state LeaveGame, got code %d: %s", status.Code, status.Text)
	}
}

func TestLeaveGameMidGameReturnsSessionToTheLobby(t *testing.T) {
	s := newTestServer(t)
	client := connectAuthenticated(t, s, 40, "alice")

	client.SendMessage(&wire.NewGame{GameName: "g1"})
	recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	client.SendMessage(&wire.JoinGame{Nickname: "alice", GameName: "g1"})
	recvUntil[*wire.JoinGameAuth](t, client.InQueue, 3)
	recvUntil[*wire.GameMembers](t, client.InQueue, 3)

	_, bcast, ok := s.registry.Lookup("g1")
	if !ok {
		t.Fatalf("g1 should be registered")
	}
	if len(bcast.Members()) != 1 {
		t.Fatalf("expected 1 member in g1 before leaving, got %d", len(bcast.Members()))
	}

	client.SendMessage(&wire.LeaveGame{GameName: "g1", Nickname: "alice"})
	recvUntil[*wire.LeaveGame](t, client.InQueue, 3)

	if len(bcast.Members()) != 0 {
		t.Fatalf("expected 0 members in g1 after leaving, got %d", len(bcast.Members()))
	}

	// Back in the lobby, the session should be able to create another game.
	client.SendMessage(&wire.NewGame{GameName: "g2"})
	status := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if status.Code != 0 {
		t.Fatalf("session should be back in the lobby after leaving g1, got code %d: %s", status.Code, status.Text)
	}
}

func TestGameOptionGetDefaultsRoundTripsKnownKeys(t *testing.T) {
	s := newTestServer(t)
	client := connectAuthenticated(t, s, 50, "alice")

	client.SendMessage(&wire.GameOptionGetDefaults{Opts: []string{"PL", "nosuchkey"}})
	reply := recvUntil[*wire.GameOptionGetDefaults](t, client.InQueue, 3)
	if len(reply.Opts) != 1 || reply.Opts[0] != "PL=4" {
		t.Fatalf("GameOptionGetDefaults reply = %v, want [\"PL=4\"]", reply.Opts)
	}
}
