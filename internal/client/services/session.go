package services

import (
	"context"

	"github.com/mwhitfield/stillwaters/internal/client/api"
	"github.com/mwhitfield/stillwaters/internal/client/models"
	"github.com/mwhitfield/stillwaters/internal/client/repositories/state"
	"github.com/mwhitfield/stillwaters/internal/logging"
)

// Status is the session lifecycle state.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
)

// Result is the outcome of a login or signup attempt. Failures are values,
// not errors: Message carries the server's explanation when there is one.
type Result struct {
	OK      bool
	Message string
}

// SessionService owns the session token and the current user.
//
// Invariant: User() is non-nil exactly when Status() is StatusAuthenticated,
// and every operation leaves the session in a settled status (never loading).
type SessionService struct {
	client api.Client
	states state.Repository
	log    logging.Logger

	status Status
	user   *models.User
}

func NewSessionService(client api.Client, states state.Repository, log logging.Logger) *SessionService {
	return &SessionService{
		client: client,
		states: states,
		log:    log.With("component", "session"),
		status: StatusUnauthenticated,
	}
}

func (s *SessionService) Status() Status      { return s.status }
func (s *SessionService) User() *models.User  { return s.user }
func (s *SessionService) IsAuthenticated() bool {
	return s.status == StatusAuthenticated
}

// Restore reads the persisted token and validates it against the server.
// Any failure (absent token, network error, expired session) settles the
// session as unauthenticated with the stored token cleared.
func (s *SessionService) Restore(ctx context.Context) {
	token, err := s.states.Get(ctx, state.TokenKey)
	if err != nil {
		s.log.Warn(ctx, "could not read persisted token", "error", err)
	}
	if token == "" {
		s.status = StatusUnauthenticated
		s.user = nil
		return
	}

	s.status = StatusLoading
	s.client.SetToken(token)
	s.settle(ctx)
}

// Login exchanges credentials for a token. On success the token is persisted
// before the profile fetch settles the session; the result is OK as soon as
// the token is obtained.
func (s *SessionService) Login(ctx context.Context, email, password string) Result {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return Result{OK: false, Message: api.ErrorMessage(err, "Login failed")}
	}
	return s.establish(ctx, token)
}

// Signup creates an account; the contract matches Login.
func (s *SessionService) Signup(ctx context.Context, email, password, displayName string) Result {
	token, err := s.client.Signup(ctx, email, password, displayName)
	if err != nil {
		return Result{OK: false, Message: api.ErrorMessage(err, "Signup failed")}
	}
	return s.establish(ctx, token)
}

// Logout discards all local session state. It is synchronous and performs no
// network call.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.states.Delete(ctx, state.TokenKey); err != nil {
		s.log.Warn(ctx, "could not clear persisted token", "error", err)
	}
	s.client.ClearToken()
	s.status = StatusUnauthenticated
	s.user = nil
}

// UpdateProfile patches the mutable profile fields and replaces the cached
// user on success.
func (s *SessionService) UpdateProfile(ctx context.Context, displayName, preferredBibleVersion string) error {
	user, err := s.client.UpdateProfile(ctx, displayName, preferredBibleVersion)
	if err != nil {
		return err
	}
	if s.status == StatusAuthenticated {
		s.user = user
	}
	return nil
}

func (s *SessionService) establish(ctx context.Context, token string) Result {
	if err := s.states.Set(ctx, state.TokenKey, token); err != nil {
		// the session still works for this process; it just won't survive restart
		s.log.Warn(ctx, "could not persist token", "error", err)
	}
	s.client.SetToken(token)
	s.status = StatusLoading
	s.settle(ctx)
	return Result{OK: true}
}

// settle resolves a loading session: a successful profile fetch makes it
// authenticated, anything else falls back to logout.
func (s *SessionService) settle(ctx context.Context) {
	user, err := s.client.FetchMe(ctx)
	if err != nil {
		s.log.Warn(ctx, "session validation failed", "error", err)
		s.Logout(ctx)
		return
	}
	s.user = user
	s.status = StatusAuthenticated
}
