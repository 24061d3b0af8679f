package session

import (
	"errors"
	"sync"
	"time"

	"tableside/internal/domain"
	"tableside/internal/service"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoActiveTable    = errors.New("no table is active for this session")
	ErrNoActiveWizard   = errors.New("no reservation in progress")
	ErrNotAuthenticated = errors.New("session is not signed in")
)

// Session is one client's state: who is signed in, which screen is showing,
// the table cart and the reservation in progress.
type Session struct {
	ID     string
	User   *domain.User
	View   domain.View
	Cart   service.Cart
	Wizard *service.ReservationWizard

	mu       sync.Mutex
	lastSeen time.Time
}

// table returns the restaurant and table the session is ordering for.
func (s *Session) table() (domain.QRMenuView, error) {
	view, ok := s.View.(domain.QRMenuView)
	if !ok {
		return domain.QRMenuView{}, ErrNoActiveTable
	}
	return view, nil
}

// DefaultIdleTTL is how long an untouched session survives.
const DefaultIdleTTL = 2 * time.Hour

// Store keeps sessions in memory. A session idle for longer than IdleTTL is
// gone: Get reports it missing and the next Create drops it.
type Store struct {
	IdleTTL time.Duration
	Now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	ids      service.IDGenerator
}

func NewStore(ids service.IDGenerator) *Store {
	return &Store{
		IdleTTL:  DefaultIdleTTL,
		Now:      time.Now,
		sessions: make(map[string]*Session),
		ids:      ids,
	}
}

func (s *Store) expired(sess *Session, now time.Time) bool {
	return s.IdleTTL > 0 && now.Sub(sess.lastSeen) > s.IdleTTL
}

func (s *Store) Create() *Session {
	now := s.Now()
	sess := &Session{
		ID:       s.ids.NewID(),
		View:     domain.LandingView{},
		Cart:     service.Cart{},
		lastSeen: now,
	}
	s.mu.Lock()
	s.sweep(now)
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// sweep drops idle sessions; callers hold s.mu.
func (s *Store) sweep(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}

// Get returns the session and marks it as active.
func (s *Store) Get(id string) (*Session, error) {
	now := s.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
