package server

import (
	"sync"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// SubscriptionManager tracks the server's subscriptions by id.
type SubscriptionManager struct {
	sync.RWMutex
	server            *Server
	subscriptionsByID map[uint32]*Subscription
}

// NewSubscriptionManager instantiates a new SubscriptionManager. A
// background sweep deletes expired subscriptions that no publish timer
// cleaned up, such as detached ones whose lifetime ran out.
func NewSubscriptionManager(server *Server) *SubscriptionManager {
	m := &SubscriptionManager{server: server, subscriptionsByID: make(map[uint32]*Subscription)}
	go func(m *SubscriptionManager) {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.checkForExpiredSubscriptions()
			case <-m.server.closing:
				m.deleteAll()
				return
			}
		}
	}(m)
	return m
}

// Get a subscription from the server.
func (m *SubscriptionManager) Get(id uint32) (*Subscription, bool) {
	m.RLock()
	defer m.RUnlock()
	if s, ok := m.subscriptionsByID[id]; ok {
		return s, ok
	}
	return nil, false
}

// Add a subscription to the server.
func (m *SubscriptionManager) Add(s *Subscription) error {
	m.Lock()
	defer m.Unlock()
	if max := m.server.maxSubscriptionCount; max > 0 && uint32(len(m.subscriptionsByID)) >= max {
		return ua.BadTooManySubscriptions
	}
	m.subscriptionsByID[s.id] = s
	m.server.logger.Debug().Uint32("subscription_id", s.id).Msg("subscription created")
	return nil
}

// Delete the subscription from the server.
func (m *SubscriptionManager) Delete(s *Subscription) {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.subscriptionsByID[s.id]; !ok {
		return
	}
	delete(m.subscriptionsByID, s.id)
	m.server.logger.Debug().Uint32("subscription_id", s.id).Msg("subscription deleted")
}

// Len returns the number of subscriptions.
func (m *SubscriptionManager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.subscriptionsByID)
}

// GetBySession returns the subscriptions owned by the session.
func (m *SubscriptionManager) GetBySession(session *Session) []*Subscription {
	m.RLock()
	defer m.RUnlock()
	subs := make([]*Subscription, 0, 4)
	for _, sub := range m.subscriptionsByID {
		if sub.Session() == session {
			subs = append(subs, sub)
		}
	}
	return subs
}

// detachSession unbinds the deleted session's subscriptions. They keep
// aging and remain adoptable by TransferSubscriptions until their
// lifetime runs out.
func (m *SubscriptionManager) detachSession(session *Session) {
	for _, sub := range m.GetBySession(session) {
		sub.detach(session)
	}
}

func (m *SubscriptionManager) checkForExpiredSubscriptions() {
	m.RLock()
	subs := make([]*Subscription, 0, len(m.subscriptionsByID))
	for _, s := range m.subscriptionsByID {
		subs = append(subs, s)
	}
	m.RUnlock()
	for _, s := range subs {
		if s.IsExpired() {
			m.Delete(s)
			s.Delete()
		}
	}
}

func (m *SubscriptionManager) deleteAll() {
	m.Lock()
	subs := make([]*Subscription, 0, len(m.subscriptionsByID))
	for id, s := range m.subscriptionsByID {
		subs = append(subs, s)
		delete(m.subscriptionsByID, id)
	}
	m.Unlock()
	for _, s := range subs {
		s.Delete()
	}
}
