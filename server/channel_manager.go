package server

import (
	"sync"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// channelManager tracks the secure channels accepted by the server and
// sweeps out closed ones.
type channelManager struct {
	sync.RWMutex
	server       *Server
	channelsByID map[uint32]*serverSecureChannel
	reserved     uint32
}

func newChannelManager(server *Server) *channelManager {
	m := &channelManager{server: server, channelsByID: make(map[uint32]*serverSecureChannel)}
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.removeClosed()
			case <-m.server.closing:
				m.abortAll()
				return
			}
		}
	}()
	return m
}

// Get returns the channel with the given id.
func (m *channelManager) Get(id uint32) (*serverSecureChannel, bool) {
	m.RLock()
	defer m.RUnlock()
	if ch, ok := m.channelsByID[id]; ok {
		return ch, ok
	}
	return nil, false
}

// Reserve claims a channel slot before the open handshake runs, so an
// over-capacity client is refused before any security token is issued. The
// slot is consumed by Add or returned by Release.
func (m *channelManager) Reserve() error {
	m.Lock()
	defer m.Unlock()
	if max := m.server.maxChannelCount; max > 0 && uint32(len(m.channelsByID))+m.reserved >= max {
		return ua.BadTCPNotEnoughResources
	}
	m.reserved++
	return nil
}

// Release returns a reserved slot without registering a channel.
func (m *channelManager) Release() {
	m.Lock()
	defer m.Unlock()
	if m.reserved > 0 {
		m.reserved--
	}
}

// Add registers an opened channel, consuming the slot claimed by Reserve.
func (m *channelManager) Add(ch *serverSecureChannel) {
	m.Lock()
	defer m.Unlock()
	if m.reserved > 0 {
		m.reserved--
	}
	m.channelsByID[ch.channelID] = ch
}

// Delete removes the channel from the server.
func (m *channelManager) Delete(ch *serverSecureChannel) {
	m.Lock()
	defer m.Unlock()
	delete(m.channelsByID, ch.channelID)
}

// Len returns the number of registered channels.
func (m *channelManager) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.channelsByID)
}

func (m *channelManager) removeClosed() {
	m.Lock()
	defer m.Unlock()
	for k, ch := range m.channelsByID {
		if ch.isClosed() {
			delete(m.channelsByID, k)
			m.server.logger.Debug().Uint32("channel_id", k).Int("open", len(m.channelsByID)).Msg("removed closed channel")
		}
	}
}

// abortAll aborts every remaining channel when the server shuts down.
func (m *channelManager) abortAll() {
	m.Lock()
	channels := make([]*serverSecureChannel, 0, len(m.channelsByID))
	for _, ch := range m.channelsByID {
		channels = append(channels, ch)
	}
	m.channelsByID = make(map[uint32]*serverSecureChannel)
	m.Unlock()
	for _, ch := range channels {
		ch.Abort(ua.BadServerHalted, "server halted")
	}
}
