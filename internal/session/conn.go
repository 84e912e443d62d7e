package session

import (
	"net"
	"time"

	"github.com/catanserver/server/internal/wire"
)

// ConnTransport implements Transport over a real net.Conn.
type ConnTransport struct {
	conn net.Conn
}

func NewConnTransport(conn net.Conn) *ConnTransport {
	return &ConnTransport{conn: conn}
}

func (t *ConnTransport) ReadFrame() ([]byte, error) {
	return wire.ReadFrame(t.conn)
}

func (t *ConnTransport) WriteFrame(payload []byte) error {
	t.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return wire.WriteFrame(t.conn, payload)
}

func (t *ConnTransport) Close() error {
	return t.conn.Close()
}

func (t *ConnTransport) RemoteAddr() string {
	return t.conn.RemoteAddr().String()
}
