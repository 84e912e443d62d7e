// Package server owns the process-wide game registry and lobby
// protocol: accepting sessions, running the version/auth handshake,
// and routing each session's queued messages to either the lobby
// handlers below or the per-game handler.Registry.
package server

import (
	"sync"

	"github.com/catanserver/server/internal/broadcast"
	"github.com/catanserver/server/internal/game"
)

// gameEntry pairs a Game with the Broadcaster that fans out its traffic.
// The registry's own lock only ever protects the name->entry map itself;
// callers take the Game's own lock before touching its state, never the
// registry's lock and the game's lock at once in the other order.
type gameEntry struct {
	game  *game.Game
	bcast *broadcast.Broadcaster
}

// GameRegistry is the process-wide table of in-progress games. Lock
// ordering: acquire the registry lock to look up or create an entry,
// release it, then acquire the entry's own game lock — never the
// reverse, so one slow game can't stall lookups for every other game.
type GameRegistry struct {
	mu    sync.RWMutex
	games map[string]*gameEntry
}

func NewGameRegistry() *GameRegistry {
	return &GameRegistry{games: map[string]*gameEntry{}}
}

func (r *GameRegistry) Create(name string, opts game.Options, seed int64) (*game.Game, *broadcast.Broadcaster, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.games[name]; exists {
		return nil, nil, false
	}
	g := game.NewGame(name, opts, seed)
	b := broadcast.New()
	r.games[name] = &gameEntry{game: g, bcast: b}
	return g, b, true
}

func (r *GameRegistry) Lookup(name string) (*game.Game, *broadcast.Broadcaster, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[name]
	if !ok {
		return nil, nil, false
	}
	return e.game, e.bcast, true
}

func (r *GameRegistry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, name)
}

// Names lists every live game, for the lobby's GAMES/GAMESWITHOPTIONS
// listing.
func (r *GameRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.games))
	for name := range r.games {
		out = append(out, name)
	}
	return out
}
