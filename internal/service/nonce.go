package service

import (
	"sync"
	"time"
)

// NonceRetention is how long a redeemed authorization code stays blocked.
// GitHub expires its own codes within minutes, so anything older is dead
// weight and gets swept by housekeeping.
const NonceRetention = 5 * time.Minute

// NonceGuard blocks double-spends of OAuth authorization codes. The callback
// endpoint marks a code used before any network call, so a replayed request
// racing the first one loses deterministically.
//
// State is process-local and intentionally so: a restart forgets everything,
// and GitHub's own single-use enforcement backstops that window.
type NonceGuard struct {
	mu   sync.Mutex
	seen map[string]time.Time

	now func() time.Time
}

func NewNonceGuard() *NonceGuard {
	return &NonceGuard{
		seen: make(map[string]time.Time),
		now:  time.Now,
	}
}

// MarkUsed records the code and reports whether this call was the first to
// claim it. Entries older than NonceRetention no longer count as used.
func (g *NonceGuard) MarkUsed(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if at, ok := g.seen[code]; ok && now.Sub(at) < NonceRetention {
		return false
	}
	g.seen[code] = now
	return true
}

// Seen reports whether the code is currently blocked.
func (g *NonceGuard) Seen(code string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	at, ok := g.seen[code]
	return ok && g.now().Sub(at) < NonceRetention
}

// Sweep drops entries past retention and returns how many were removed.
func (g *NonceGuard) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0
	for code, at := range g.seen {
		if now.Sub(at) >= NonceRetention {
			delete(g.seen, code)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked codes, swept or not.
func (g *NonceGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
