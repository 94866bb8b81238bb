package frontend

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unicsmcr/activity_board/board"
	"github.com/unicsmcr/activity_board/observability"
	"github.com/unicsmcr/activity_board/utils"
)

// session is the board of one browser
type session struct {
	controller *board.Controller
	dispatcher *board.Dispatcher
	lastSeen   time.Time
}

// sessionStore keeps a board per browser, dropping boards idle for longer than idleTimeout
type sessionStore struct {
	mu           sync.Mutex
	sessions     map[string]*session
	idleTimeout  time.Duration
	timeProvider utils.TimeProvider
	newSession   func() *session
}

func newSessionStore(idleTimeout time.Duration, timeProvider utils.TimeProvider, newSession func() *session) *sessionStore {
	return &sessionStore{
		sessions:     map[string]*session{},
		idleTimeout:  idleTimeout,
		timeProvider: timeProvider,
		newSession:   newSession,
	}
}

// get returns the live session with the given id and marks it as seen
func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	now := s.timeProvider.Now()
	if s.expired(sess, now) {
		s.drop(id, sess)
		return nil, false
	}

	sess.lastSeen = now
	return sess, true
}

// create starts a new session and drops the expired ones
func (s *sessionStore) create() (string, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeProvider.Now()
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			s.drop(id, sess)
		}
	}

	id := uuid.New().String()
	sess := s.newSession()
	sess.lastSeen = now
	s.sessions[id] = sess
	observability.SetLiveSessions(len(s.sessions))

	return id, sess
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	return s.idleTimeout > 0 && now.Sub(sess.lastSeen) > s.idleTimeout
}

func (s *sessionStore) drop(id string, sess *session) {
	delete(s.sessions, id)
	sess.controller.Close()
	observability.SetLiveSessions(len(s.sessions))
}
