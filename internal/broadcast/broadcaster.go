// Package broadcast fans a game's outbound messages out to its members
// (§4.F). It owns no game state — only the member list — and leaves
// per-recipient version fallback to wire.EncodeForVersion via
// session.Session.SendMessage, so callers never have to special-case
// an old client.
package broadcast

import (
	"sync"

	"github.com/catanserver/server/internal/session"
	"github.com/catanserver/server/internal/wire"
)

// Member is one connected participant in a game: a seated player or a
// spectator (Seat == -1).
type Member struct {
	Sess     *session.Session
	Seat     int
	Nickname string
}

// Broadcaster is one game's member registry plus fan-out helpers. The
// zero value is not usable; use New. Safe for concurrent use, though in
// practice all calls happen while the owning Game's lock is held, per
// §5's ordering guarantee.
type Broadcaster struct {
	mu      sync.RWMutex
	members map[uint64]*Member // by Session.ID
}

func New() *Broadcaster {
	return &Broadcaster{members: map[uint64]*Member{}}
}

func (b *Broadcaster) MemberJoin(sess *session.Session, seat int, nickname string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.members[sess.ID] = &Member{Sess: sess, Seat: seat, Nickname: nickname}
}

func (b *Broadcaster) MemberLeave(sess *session.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.members, sess.ID)
}

// SetSeat updates a member's seat, e.g. once SITDOWN commits.
func (b *Broadcaster) SetSeat(sess *session.Session, seat int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.members[sess.ID]; ok {
		m.Seat = seat
	}
}

func (b *Broadcaster) Members() []*Member {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Member, 0, len(b.members))
	for _, m := range b.members {
		out = append(out, m)
	}
	return out
}

func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.members)
}

func (b *Broadcaster) EmitToGame(msg wire.Message) {
	for _, m := range b.Members() {
		m.Sess.SendMessage(msg)
	}
}

func (b *Broadcaster) EmitToGameExcept(msg wire.Message, except *session.Session) {
	for _, m := range b.Members() {
		if except != nil && m.Sess.ID == except.ID {
			continue
		}
		m.Sess.SendMessage(msg)
	}
}

func (b *Broadcaster) EmitToPlayer(seat int, msg wire.Message) {
	for _, m := range b.Members() {
		if m.Seat == seat {
			m.Sess.SendMessage(msg)
		}
	}
}

func (b *Broadcaster) EmitToGameForVersions(minV, maxV int, msg wire.Message) {
	for _, m := range b.Members() {
		v := m.Sess.Version()
		if v >= minV && v <= maxV {
			m.Sess.SendMessage(msg)
		}
	}
}

func (b *Broadcaster) EmitToGameForVersionsExcept(minV, maxV int, except *session.Session, msg wire.Message) {
	for _, m := range b.Members() {
		if except != nil && m.Sess.ID == except.ID {
			continue
		}
		v := m.Sess.Version()
		if v >= minV && v <= maxV {
			m.Sess.SendMessage(msg)
		}
	}
}

// SessionForSeat finds the connected member sitting in seat, if any.
func (b *Broadcaster) SessionForSeat(seat int) *session.Session {
	for _, m := range b.Members() {
		if m.Seat == seat {
			return m.Sess
		}
	}
	return nil
}
