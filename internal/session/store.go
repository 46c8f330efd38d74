// Package session owns the process-wide admin authentication state.
//
// Exactly one Store exists per running client. Its lifecycle is
// Loading → {Authenticated, Unauthenticated} via Initialize (run once),
// Unauthenticated → Authenticated via Login, and Authenticated →
// Unauthenticated via Logout or any backend auth rejection. The invariant
// throughout: a populated session implies the identity holds the admin
// role; an identity failing the check is never retained.
package session

import (
	"context"
	"sync"

	"github.com/vedicvision/vvadmin/internal/api"
	"github.com/vedicvision/vvadmin/internal/errors"
	"github.com/vedicvision/vvadmin/internal/log"
)

// State is the session lifecycle state
type State int

const (
	// StateLoading is the initial state before Initialize completes
	StateLoading State = iota
	// StateUnauthenticated means no admin identity is held
	StateUnauthenticated
	// StateAuthenticated means a verified admin identity is held
	StateAuthenticated
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// CredentialStore holds persisted transport credentials, such as the
// session cookie file
type CredentialStore interface {
	Clear() error
}

// Store holds the admin session and is the only writer of it
type Store struct {
	client *api.Client
	cache  *IdentityCache
	logger *log.Logger
	creds  CredentialStore

	mu          sync.Mutex
	state       State
	user        *api.AdminUser
	initialized bool
}

// NewStore creates a session store in the Loading state and registers it
// as the client's auth-rejected handler, so a 401 on any protected call
// drops the session.
func NewStore(client *api.Client, cache *IdentityCache, logger *log.Logger) *Store {
	s := &Store{
		client: client,
		cache:  cache,
		logger: logger,
		state:  StateLoading,
	}
	client.SetAuthRejectedHandler(s.handleAuthRejected)
	return s
}

// SetCredentialStore registers persisted credentials to wipe whenever the
// session ends: logout, a backend rejection, or a login that fails the
// admin check after the backend already issued a cookie.
func (s *Store) SetCredentialStore(creds CredentialStore) {
	s.creds = creds
}

// Initialize revalidates any previously stored identity against the
// backend. It runs at most once; the Loading state is never re-entered.
// All failure modes, network errors included, fail closed to
// Unauthenticated without surfacing a blocking error.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	s.mu.Unlock()

	hint, err := s.cache.Load()
	if err != nil {
		s.logger.Debug("discarding identity cache", "reason", err.Error())
		_ = s.cache.Clear()
	}
	if hint == nil || err != nil {
		// Nothing stored: no point asking the backend.
		s.setUnauthenticated()
		return
	}

	user, err := s.client.CheckAuth(ctx)
	if err != nil || user == nil || !user.IsAdminRole() {
		if err != nil {
			s.logger.Debug("session revalidation failed", "error", err.Error())
		}
		_ = s.cache.Clear()
		s.setUnauthenticated()
		return
	}

	// Refresh the cache with what the backend confirmed.
	if err := s.cache.Save(user); err != nil {
		s.logger.Warn("cannot refresh identity cache", "error", err.Error())
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()
}

// Login authenticates with the backend. HTTP-level success with an
// identity lacking the admin role is an authorization error; credentials
// are not stored in that case.
func (s *Store) Login(ctx context.Context, email, password string) (*api.AdminUser, error) {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := err.(*api.APIError); ok && apiErr.Message != "" {
			return nil, errors.Wrap(errors.ErrCodeAuthLoginFailed, apiErr.Message, err)
		}
		return nil, errors.Wrap(errors.ErrCodeAuthLoginFailed, "Login failed. Please try again.", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrCodeAuthLoginFailed, "Login failed. Please try again.")
	}

	if !user.IsAdminRole() {
		// The backend accepted the password and set its cookie before the
		// role was checked. Wipe it along with the local state.
		s.clearCredentials()
		s.setUnauthenticated()
		return nil, errors.NewAccessDeniedError()
	}

	if err := s.cache.Save(user); err != nil {
		s.logger.Warn("cannot persist identity", "error", err.Error())
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = user
	s.mu.Unlock()

	return user, nil
}

// Logout notifies the backend, then clears local state unconditionally.
// The backend call is best effort: its failure is logged and swallowed so
// logout can never fail to clear the local session.
func (s *Store) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.Debug("backend logout failed", "error", err.Error())
	}

	_ = s.cache.Clear()
	s.clearCredentials()
	s.setUnauthenticated()
}

// State returns the current lifecycle state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the authenticated admin identity, or nil
func (s *Store) Current() *api.AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a verified admin identity is held
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// CachedHint returns the persisted identity without revalidating it.
// Display only; never a substitute for Initialize.
func (s *Store) CachedHint() *api.AdminUser {
	hint, err := s.cache.Load()
	if err != nil {
		return nil
	}
	return hint
}

// handleAuthRejected drops the session when the backend rejects a
// protected call. Fired by the client once per 401 response.
func (s *Store) handleAuthRejected() {
	s.mu.Lock()
	wasAuthenticated := s.state == StateAuthenticated
	s.mu.Unlock()

	if !wasAuthenticated {
		return
	}

	s.logger.Warn("backend rejected session; logging out locally")
	_ = s.cache.Clear()
	s.clearCredentials()
	s.setUnauthenticated()
}

func (s *Store) clearCredentials() {
	if s.creds == nil {
		return
	}
	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("cannot clear stored credentials", "error", err.Error())
	}
}

func (s *Store) setUnauthenticated() {
	s.mu.Lock()
	s.state = StateUnauthenticated
	s.user = nil
	s.mu.Unlock()
}
