package session

import (
	"net"
	"sync/atomic"

	"go.uber.org/zap"
)

// Listener accepts TCP connections and turns each into a Session,
// grounded on the teacher's internal/net.Server accept loop.
type Listener struct {
	listener net.Listener
	nextID   atomic.Uint64
	newConns chan *Session
	inSize   int
	outSize  int
	log      *zap.Logger
	closeCh  chan struct{}
}

func Listen(bindAddr string, inSize, outSize int, log *zap.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return nil, err
	}
	return &Listener{
		listener: ln,
		newConns: make(chan *Session, 64),
		inSize:   inSize,
		outSize:  outSize,
		log:      log,
		closeCh:  make(chan struct{}),
	}, nil
}

// AcceptLoop runs until Shutdown is called, pushing each accepted
// connection's Session onto NewSessions().
func (l *Listener) AcceptLoop() {
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			select {
			case <-l.closeCh:
				return
			default:
			}
			l.log.Error("accept failed", zap.Error(err))
			continue
		}
		id := l.nextID.Add(1)
		sess := New(id, NewConnTransport(conn), l.inSize, l.outSize, l.log)
		sess.Start()
		l.log.Info("connection accepted", zap.Uint64("session", id), zap.String("remote", conn.RemoteAddr().String()))
		select {
		case l.newConns <- sess:
		default:
			l.log.Warn("accept queue full, rejecting new connection")
			sess.Close()
		}
	}
}

func (l *Listener) NewSessions() <-chan *Session { return l.newConns }

func (l *Listener) Shutdown() {
	close(l.closeCh)
	l.listener.Close()
}

func (l *Listener) Addr() net.Addr { return l.listener.Addr() }
