// Package session issues and validates ephemeral admin session tokens.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	userID  int
	expires time.Time
}

// Registry maps opaque bearer tokens to the admin user they belong to.
// Sessions live in memory only; there is no background sweep, expired
// entries are evicted lazily when a validation attempt finds them stale.
type Registry struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Create issues a new token for the given user.
func (r *Registry) Create(userID int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	r.sessions[token] = entry{
		userID:  userID,
		expires: r.now().Add(r.ttl),
	}
	return token
}

// Validate returns the user id bound to a live token. Expired entries
// are removed on the way out; callers treat expired and unknown tokens
// identically.
func (r *Registry) Validate(token string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return 0, false
	}
	if !session.expires.After(r.now()) {
		delete(r.sessions, token)
		return 0, false
	}
	return session.userID, true
}

// Destroy removes a token unconditionally. Destroying an unknown token
// is a no-op, so logout is idempotent.
func (r *Registry) Destroy(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Len reports how many entries are resident, live or stale.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
