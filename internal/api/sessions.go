package api

import (
	"sync"

	"github.com/google/uuid"

	"go-consult/pkg/memory/history"
)

// session owns one conversation. The mutex covers the history; the
// orchestrator itself is stateless across calls.
type session struct {
	mu      sync.Mutex
	history history.History
}

type sessionCache struct {
	mu  sync.RWMutex
	ids map[uuid.UUID]*session
}

func newSessionCache() *sessionCache {
	return &sessionCache{
		ids: map[uuid.UUID]*session{},
	}
}

func (s *sessionCache) add(id uuid.UUID) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{}
	s.ids[id] = sess
	return sess
}

func (s *sessionCache) get(id uuid.UUID) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.ids[id]
	return sess, ok
}

func (s *sessionCache) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}
