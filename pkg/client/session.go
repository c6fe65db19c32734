package client

import (
	"sync"

	"github.com/linskybing/bootcamp-go/internal/domain/user"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Expired
	LoggedOut
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	case LoggedOut:
		return "logged-out"
	}
	return "unknown"
}

// Session holds the moderator credential. It is the only writer of that
// state; any number of goroutines may read it.
type Session struct {
	mu      sync.RWMutex
	state   State
	token   string
	profile user.User

	hookMu sync.RWMutex
	hook   func(from, to State)
}

func NewSession() *Session {
	return &Session{state: Anonymous}
}

// OnTransition registers fn to run after every state change, outside the
// session lock.
func (s *Session) OnTransition(fn func(from, to State)) {
	s.hookMu.Lock()
	s.hook = fn
	s.hookMu.Unlock()
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the bearer token while authenticated.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return "", false
	}
	return s.token, true
}

// User returns the logged-in profile while authenticated.
func (s *Session) User() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return user.User{}, false
	}
	return s.profile, true
}

// Expire drops the credential after the server rejected it. The session
// passes through Expired and lands on Anonymous.
func (s *Session) Expire() {
	s.drop(Expired)
}

func (s *Session) begin() {
	s.mu.Lock()
	from := s.state
	s.state = Authenticating
	s.token = ""
	s.profile = user.User{}
	s.mu.Unlock()
	s.notify(from, Authenticating)
}

func (s *Session) establish(token string, profile user.User) {
	s.mu.Lock()
	from := s.state
	s.state = Authenticated
	s.token = token
	s.profile = profile
	s.mu.Unlock()
	s.notify(from, Authenticated)
}

// fail returns a failed login attempt to Anonymous.
func (s *Session) fail() {
	s.mu.Lock()
	from := s.state
	s.state = Anonymous
	s.token = ""
	s.profile = user.User{}
	s.mu.Unlock()
	if from != Anonymous {
		s.notify(from, Anonymous)
	}
}

func (s *Session) end() {
	s.drop(LoggedOut)
}

// drop discards an established credential via the given intermediate state.
// It does nothing unless the session is authenticated.
func (s *Session) drop(via State) {
	s.mu.Lock()
	if s.state != Authenticated {
		s.mu.Unlock()
		return
	}
	s.state = Anonymous
	s.token = ""
	s.profile = user.User{}
	s.mu.Unlock()

	s.notify(Authenticated, via)
	s.notify(via, Anonymous)
}

func (s *Session) notify(from, to State) {
	s.hookMu.RLock()
	fn := s.hook
	s.hookMu.RUnlock()
	if fn != nil {
		fn(from, to)
	}
}
