package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/recruitdesk/recruitdesk/internal/domain"
	"github.com/recruitdesk/recruitdesk/internal/gateway"
	"github.com/recruitdesk/recruitdesk/internal/transport"
)

// AuthStore owns the authenticated session: the identity and the bearer
// credential. Other stores receive the identity explicitly through their
// Bootstrap parameters; nothing reads it from ambient state.
type AuthStore struct {
	auth   gateway.AuthGateway
	tokens *transport.TokenStore
	logger *zap.Logger

	mu            sync.RWMutex
	session       domain.Session
	authenticated bool
}

// NewAuthStore creates the session store. tokens is the credential slot the
// transport client reads from.
func NewAuthStore(auth gateway.AuthGateway, tokens *transport.TokenStore, logger *zap.Logger) *AuthStore {
	return &AuthStore{auth: auth, tokens: tokens, logger: logger}
}

// Login exchanges credentials for a session. Failures propagate to the
// caller; nothing is stored unless the backend accepts the credentials.
func (s *AuthStore) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	session, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("login: %w", err)
	}
	s.install(session)
	s.logger.Info("session established",
		zap.Int64("user_id", session.Identity.UserID),
		zap.Stringer("role", session.Identity.Role),
	)
	return session.Identity, nil
}

// Register creates a candidate account and establishes its session.
func (s *AuthStore) Register(ctx context.Context, req domain.RegisterRequest) (domain.Identity, error) {
	session, err := s.auth.Register(ctx, req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("register: %w", err)
	}
	s.install(session)
	return session.Identity, nil
}

// Logout drops the session and the bearer credential.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	s.authenticated = false
	s.mu.Unlock()
	s.tokens.Clear()
}

// Identity returns the authenticated identity, if any.
func (s *AuthStore) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Identity, s.authenticated
}

// Token returns the current session's bearer token, empty when logged out.
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// Authenticated reports whether a session is established.
func (s *AuthStore) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *AuthStore) install(session domain.Session) {
	s.mu.Lock()
	s.session = session
	s.authenticated = true
	s.mu.Unlock()
	s.tokens.Set(session.Token)
}
