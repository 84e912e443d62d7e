package server

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/catanserver/server/internal/catalog"
	"github.com/catanserver/server/internal/config"
	"github.com/catanserver/server/internal/handler"
	"github.com/catanserver/server/internal/scenario"
	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// Server is the composition root for one running process: the
// listener, the game registry, auth/rate-limiting, and the handler
// registry that drives every in-game message.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	listener *session.Listener
	registry *GameRegistry
	accounts *AccountStore
	limiters *RateLimiters
	handlers *handler.Registry
	scenario *scenario.Engine

	seedCounter atomic.Int64

	mu       sync.Mutex
	sessions map[uint64]*sessionHandle

	closeCh chan struct{}
	wg      sync.WaitGroup
}

// sessionHandle tracks the lobby/game position of one connected
// session alongside the underlying transport session.
type sessionHandle struct {
	sess       *session.Session
	remoteAddr string
	gameName   string
}

func StartServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	ln, err := session.Listen(cfg.Network.BindAddress, cfg.Network.InQueueSize, cfg.Network.OutQueueSize, log)
	if err != nil {
		return nil, err
	}
	eng, err := scenario.NewEngine(log)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		listener: ln,
		registry: NewGameRegistry(),
		accounts: NewAccountStore(),
		limiters: NewRateLimiters(cfg.RateLimit),
		handlers: handler.NewGameRegistry(log),
		scenario: eng,
		sessions: map[uint64]*sessionHandle{},
		closeCh:  make(chan struct{}),
	}
	s.seedCounter.Store(time.Now().UnixNano())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.listener.AcceptLoop()
	}()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.acceptSessions()
	}()
	return s, nil
}

func (s *Server) acceptSessions() {
	for {
		select {
		case sess, ok := <-s.listener.NewSessions():
			if !ok {
				return
			}
			sh := &sessionHandle{sess: sess}
			s.mu.Lock()
			s.sessions[sess.ID] = sh
			s.mu.Unlock()
			sess.StartPingLoop(s.cfg.Network.PingInterval, func() wire.Message {
				return &wire.ServerPing{SleepMillis: int(s.cfg.Network.PingInterval / time.Millisecond)}
			})
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.runSession(sh)
			}()
		case <-s.closeCh:
			return
		}
	}
}

func (s *Server) cleanupSession(sess *sessionHandle) {
	if sess.gameName != "" {
		if _, b, ok := s.registry.Lookup(sess.gameName); ok {
			b.MemberLeave(sess.sess)
		}
	}
	s.limiters.Forget(sess.sess.ID)
	s.mu.Lock()
	delete(s.sessions, sess.sess.ID)
	s.mu.Unlock()
	sess.sess.Close()
}

// nextSeed hands out a distinct deterministic-enough seed per created
// game without touching time.Now again mid-run.
func (s *Server) nextSeed() int64 {
	return s.seedCounter.Add(1)
}

// RegisterScenario exposes the catalog's runtime scenario registration
// entry point through the server, for an embedder that wants to add a
// custom scenario before accepting connections.
func (s *Server) RegisterScenario(sc catalog.Scenario) {
	catalog.RegisterScenario(sc)
}

func (s *Server) ShutdownServer() {
	close(s.closeCh)
	s.listener.Shutdown()
	s.mu.Lock()
	for _, sh := range s.sessions {
		sh.sess.Close()
	}
	s.mu.Unlock()
	s.scenario.Close()
	s.wg.Wait()
}
