package server

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/config"
	"github.com/catanserver/server/internal/handler"
	"github.com/catanserver/server/internal/scenario"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := scenario.NewEngine(zap.NewNop())
	if err != nil {
		t.Fatalf("scenario.NewEngine: %v", err)
	}
	t.Cleanup(eng.Close)
	return &Server{
		cfg:      &config.Config{Network: config.NetworkConfig{PingInterval: time.Minute}},
		log:      zap.NewNop(),
		registry: NewGameRegistry(),
		accounts: NewAccountStore(),
		limiters: NewRateLimiters(config.RateLimitConfig{Enabled: false}),
		handlers: handler.NewGameRegistry(zap.NewNop()),
		scenario: eng,
		sessions: map[uint64]*sessionHandle{},
		closeCh:  make(chan struct{}),
	}
}

func recvUntil[T wire.Message](t *testing.T, in <-chan wire.Message, maxMsgs int) T {
	t.Helper()
	for i := 0; i < maxMsgs; i++ {
		select {
		case msg := <-in:
			if typed, ok := msg.(T); ok {
				return typed
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message")
		}
	}
	t.Fatalf("did not see expected message type within %d messages", maxMsgs)
	var zero T
	return zero
}

func TestLobbyHandshakeAuthCreateJoin(t *testing.T) {
	s := newTestServer(t)

	a, b := session.NewLocalPair(64)
	srv := session.New(1, a, 64, 64, zap.NewNop())
	srv.Start()
	client := session.New(100, b, 64, 64, zap.NewNop())
	client.Start()

	sh := &sessionHandle{sess: srv, remoteAddr: "127.0.0.1:1"}
	go s.runSession(sh)

	client.SendMessage(&wire.Version{VersNum: wire.VersionBase, VersStr: "1.0.00"})

	reply := recvUntil[*wire.Version](t, client.InQueue, 5)
	if reply.VersNum != clientVersion {
		t.Fatalf("server Version reply = %d, want %d", reply.VersNum, clientVersion)
	}

	// Drain the option catalog dump down to its terminator.
	for {
		msg := <-client.InQueue
		info, ok := msg.(*wire.GameOptionInfo)
		if ok && info.Key == "-" {
			break
		}
	}
	// Drain the scenario catalog dump down to its terminator.
	for {
		msg := <-client.InQueue
		info, ok := msg.(*wire.ScenarioInfo)
		if ok && info.Key == "-" {
			break
		}
	}

	client.SendMessage(&wire.AuthRequest{Nickname: "alice", Password: "secret"})
	status := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if status.Code != 0 {
		t.Fatalf("auth should succeed on first use, got code %d: %s", status.Code, status.Text)
	}

	client.SendMessage(&wire.NewGame{GameName: "g1"})
	created := recvUntil[*wire.StatusMessage](t, client.InQueue, 3)
	if created.Code != 0 {
		t.Fatalf("NewGame should succeed, got code %d: %s", created.Code, created.Text)
	}

	client.SendMessage(&wire.JoinGame{Nickname: "alice", GameName: "g1"})
	auth := recvUntil[*wire.JoinGameAuth](t, client.InQueue, 3)
	if auth.GameName != "g1" {
		t.Fatalf("JoinGameAuth.GameName = %q, want g1", auth.GameName)
	}
	members := recvUntil[*wire.GameMembers](t, client.InQueue, 3)
	if members.GameName != "g1" {
		t.Fatalf("GameMembers.GameName = %q, want g1", members.GameName)
	}

	if _, _, ok := s.registry.Lookup("g1"); !ok {
		t.Fatalf("game g1 should be registered")
	}
}

func TestLobbyIgnoresAuthBeforeVersionHandshake(t *testing.T) {
	s := newTestServer(t)

	a, b := session.NewLocalPair(64)
	srv := session.New(2, a, 64, 64, zap.NewNop())
	srv.Start()
	client := session.New(101, b, 64, 64, zap.NewNop())
	client.Start()

	sh := &sessionHandle{sess: srv, remoteAddr: "127.0.0.1:2"}
	go s.runSession(sh)

	// An AUTHREQUEST sent before VERSION is ignored by handleHandshake
	// (it only matches *wire.Version), so the session stays stuck in the
	// handshake state and the client sees nothing back.
	client.SendMessage(&wire.AuthRequest{Nickname: "bob", Password: "x"})

	select {
	case msg := <-client.InQueue:
		t.Fatalf("expected no reply before completing the version handshake, got %#v", msg)
	case <-time.After(200 * time.Millisecond):
	}
}
