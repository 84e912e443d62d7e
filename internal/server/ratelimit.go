package server

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/catanserver/server/internal/config"
)

// RateLimiters holds one token bucket per connected session, keyed by
// session ID, plus a shared login-attempt bucket keyed by remote
// address so a single IP can't hammer AUTHREQUEST.
type RateLimiters struct {
	cfg config.RateLimitConfig

	mu       sync.Mutex
	messages map[uint64]*rate.Limiter
	logins   map[string]*rate.Limiter
}

func NewRateLimiters(cfg config.RateLimitConfig) *RateLimiters {
	return &RateLimiters{
		cfg:      cfg,
		messages: map[uint64]*rate.Limiter{},
		logins:   map[string]*rate.Limiter{},
	}
}

// AllowMessage reports whether sessionID may process another message
// right now, lazily creating its bucket on first use.
func (rl *RateLimiters) AllowMessage(sessionID uint64) bool {
	if !rl.cfg.Enabled {
		return true
	}
	rl.mu.Lock()
	lim, ok := rl.messages[sessionID]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(rl.cfg.MessagesPerSecond), rl.cfg.MessagesPerSecond)
		rl.messages[sessionID] = lim
	}
	rl.mu.Unlock()
	return lim.Allow()
}

func (rl *RateLimiters) AllowLogin(remoteAddr string) bool {
	if !rl.cfg.Enabled {
		return true
	}
	rl.mu.Lock()
	lim, ok := rl.logins[remoteAddr]
	if !ok {
		perSecond := float64(rl.cfg.LoginAttemptsPerMinute) / 60
		lim = rate.NewLimiter(rate.Limit(perSecond), rl.cfg.LoginAttemptsPerMinute)
		rl.logins[remoteAddr] = lim
	}
	rl.mu.Unlock()
	return lim.Allow()
}

func (rl *RateLimiters) Forget(sessionID uint64) {
	rl.mu.Lock()
	delete(rl.messages, sessionID)
	rl.mu.Unlock()
}
