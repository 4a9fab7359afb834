package transport

import "sync"

var _ TokenSource = (*TokenStore)(nil)

// TokenStore holds the current bearer credential for the session. The auth
// store writes it on login/logout; the client reads it per request.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the current credential.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the current credential.
func (s *TokenStore) Clear() {
	s.Set("")
}

// Token returns the current credential, or "" when logged out.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
