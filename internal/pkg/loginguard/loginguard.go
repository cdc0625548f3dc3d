// Package loginguard throttles repeated failed logins per identity. Counters
// live in a TTL cache; an identity is locked once it crosses the failure
// threshold and unlocks when its counter expires.
package loginguard

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxTracked = 8192

type Guard struct {
	mu          sync.Mutex
	attempts    *expirable.LRU[string, int]
	maxFailures int
}

// New creates a guard allowing maxFailures failed attempts per identity
// within the window.
func New(maxFailures int, window time.Duration) *Guard {
	return &Guard{
		attempts:    expirable.NewLRU[string, int](maxTracked, nil, window),
		maxFailures: maxFailures,
	}
}

// Allowed reports whether the identity may attempt a login.
func (g *Guard) Allowed(identity string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	count, _ := g.attempts.Get(identity)
	return count < g.maxFailures
}

// RecordFailure bumps the failure counter for the identity. The window
// restarts on every failure.
func (g *Guard) RecordFailure(identity string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	count, _ := g.attempts.Get(identity)
	g.attempts.Add(identity, count+1)
}

// Reset clears the counter after a successful login.
func (g *Guard) Reset(identity string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attempts.Remove(identity)
}
