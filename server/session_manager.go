package server

import (
	"sync"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// sessionManager tracks sessions by authentication token and expires the
// ones whose clients stopped talking.
type sessionManager struct {
	sync.RWMutex
	server          *Server
	sessionsByToken map[ua.NodeID]*Session
}

func newSessionManager(server *Server) *sessionManager {
	m := &sessionManager{server: server, sessionsByToken: make(map[ua.NodeID]*Session)}
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.removeExpired()
			case <-m.server.closing:
				return
			}
		}
	}()
	return m
}

// Get returns the session holding the authentication token and touches its
// last-access time.
func (m *sessionManager) Get(authenticationToken ua.NodeID) (*Session, bool) {
	m.RLock()
	defer m.RUnlock()
	s, ok := m.sessionsByToken[authenticationToken]
	if !ok {
		return nil, false
	}
	s.SetLastAccess(time.Now())
	return s, ok
}

// Add registers a session, enforcing the server's session capacity.
func (m *sessionManager) Add(s *Session) error {
	m.Lock()
	defer m.Unlock()
	if max := m.server.maxSessionCount; max > 0 && uint32(len(m.sessionsByToken)) >= max {
		return ua.BadTooManySessions
	}
	m.sessionsByToken[s.authenticationToken] = s
	m.server.logger.Info().
		Str("session", s.sessionName).
		Int("open", len(m.sessionsByToken)).
		Msg("session created")
	return nil
}

// Delete removes the session, detaches its subscriptions, and answers its
// queued publish requests. Detached subscriptions keep running on their own
// lifetime so a TransferSubscriptions can still adopt them.
func (m *sessionManager) Delete(s *Session) {
	m.Lock()
	delete(m.sessionsByToken, s.authenticationToken)
	open := len(m.sessionsByToken)
	m.Unlock()
	m.server.subscriptionManager.detachSession(s)
	s.delete()
	m.server.logger.Info().
		Str("session", s.SessionName()).
		Int("open", open).
		Msg("session deleted")
}

// Len returns the number of live sessions.
func (m *sessionManager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessionsByToken)
}

func (m *sessionManager) removeExpired() {
	m.RLock()
	expired := make([]*Session, 0, 4)
	for _, s := range m.sessionsByToken {
		if s.IsExpired() {
			expired = append(expired, s)
		}
	}
	m.RUnlock()
	for _, s := range expired {
		m.server.logger.Warn().Str("session", s.SessionName()).Msg("session timed out")
		m.Delete(s)
	}
}
