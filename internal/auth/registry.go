package auth

import (
	"sync"
	"time"
)

// Registry holds the opaque session tokens of logged-in admins, each with
// an expiry timestamp. Tokens live in process memory only and are lost on
// restart, which is acceptable for a single-admin utility; multi-process
// deployment would need a store-backed registry instead.
//
// Gin serves requests on many goroutines, so access is guarded by a mutex.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]time.Time // token -> expiry
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]time.Time),
	}
}

// Insert registers a token with its expiry timestamp.
func (r *Registry) Insert(token string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = expiresAt
}

// Valid reports whether a token is registered and not expired.
func (r *Registry) Valid(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expiresAt, ok := r.tokens[token]
	return ok && time.Now().Before(expiresAt)
}

// Remove unregisters a token. Removing an unknown token is not an error.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}

// PurgeExpired drops all expired tokens and returns how many were removed.
func (r *Registry) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	purged := 0
	for token, expiresAt := range r.tokens {
		if !now.Before(expiresAt) {
			delete(r.tokens, token)
			purged++
		}
	}
	return purged
}

// Len returns the number of registered tokens, expired or not.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
