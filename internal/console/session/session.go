// Package session owns authentication state for the console: the persisted
// token cell, the Unknown → Authenticated/Anonymous state machine, and the
// login/logout entry points. All other components only read the token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/akimenko/userdesk/internal/console/models"
)

// State of the session machine. Unknown lasts only until Init has checked
// the persisted token.
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// ErrNoSession is the programmer-misuse error: the session API was invoked
// on a store that was never wired up. It fails fast instead of no-opping.
var ErrNoSession = errors.New("session store not initialized")

// invalidCredentialsMsg is the user-facing error for any failed login,
// regardless of the underlying cause reported by the server.
const invalidCredentialsMsg = "Invalid email or password"

// TokenStore is the durable token cell (see the state package).
type TokenStore interface {
	Load(ctx context.Context) (token, email string, err error)
	Save(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
}

// LoginAPI is the slice of the API adapter the session store needs.
type LoginAPI interface {
	Login(ctx context.Context, cred models.Credentials) (string, error)
}

// Store is the process-wide session state. Token presence is the sole
// authorization signal; no expiry is checked client-side.
type Store struct {
	api    LoginAPI
	tokens TokenStore

	mu      sync.Mutex
	state   State
	token   string
	email   string
	loading bool
	errMsg  string
}

func New(api LoginAPI, tokens TokenStore) *Store {
	return &Store{api: api, tokens: tokens, state: StateUnknown}
}

func (s *Store) guard() error {
	if s == nil || s.api == nil || s.tokens == nil {
		return ErrNoSession
	}
	return nil
}

// Init reads the persisted token and resolves Unknown into Authenticated
// or Anonymous. This is the only transition not triggered by the user.
func (s *Store) Init(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}

	token, email, err := s.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading persisted session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.email = email
	if token != "" {
		s.state = StateAuthenticated
	} else {
		s.state = StateAnonymous
	}
	return nil
}

// Login exchanges credentials for a token and persists it. On failure the
// state stays Anonymous and Err reports "Invalid email or password". The
// loading flag is released on every exit path.
func (s *Store) Login(ctx context.Context, cred models.Credentials) error {
	if err := s.guard(); err != nil {
		return err
	}

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.api.Login(ctx, cred)
	if err != nil {
		s.mu.Lock()
		s.errMsg = invalidCredentialsMsg
		s.state = StateAnonymous
		s.mu.Unlock()
		return fmt.Errorf("login: %w", err)
	}

	if err := s.tokens.Save(ctx, token, cred.Email); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.email = cred.Email
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted token and returns to Anonymous. There is no
// server call; the token is simply forgotten.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}

	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.state = StateAnonymous
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

// Token returns the current session token ("" when anonymous). It satisfies
// api.TokenSource.
func (s *Store) Token() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Email returns the account the session belongs to.
func (s *Store) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Loading reports whether a login is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last login error message, "" when none.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
