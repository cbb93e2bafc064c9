package server

import (
	"sync"
	"time"
)

// Scheduler hands out shared poll groups so that monitored items with the
// same sampling interval ride one ticker.
type Scheduler struct {
	sync.Mutex
	server *Server
	groups map[time.Duration]*PollGroup
}

// NewScheduler instantiates a new Scheduler.
func NewScheduler(server *Server) *Scheduler {
	return &Scheduler{
		server: server,
		groups: make(map[time.Duration]*PollGroup),
	}
}

// GetPollGroup returns the poll group ticking at the given interval,
// starting one when none exists yet.
func (s *Scheduler) GetPollGroup(interval time.Duration) *PollGroup {
	s.Lock()
	defer s.Unlock()
	if min := time.Duration(minSamplingInterval) * time.Millisecond; interval < min {
		interval = min
	}
	if g, ok := s.groups[interval]; ok {
		return g
	}
	g := NewPollGroup(interval, s.server.closing)
	s.groups[interval] = g
	return g
}

// PollListener is polled by a PollGroup at its interval.
type PollListener interface {
	Poll()
}

// PollGroup drives the Poll method of its listeners from one shared
// ticker. The group runs until the cancellation channel closes.
type PollGroup struct {
	sync.Mutex
	cancellationCh chan struct{}
	interval       time.Duration
	listeners      map[PollListener]struct{}
}

// NewPollGroup instantiates a new PollGroup and starts its ticker.
func NewPollGroup(interval time.Duration, cancellationCh chan struct{}) *PollGroup {
	g := &PollGroup{
		cancellationCh: cancellationCh,
		interval:       interval,
		listeners:      map[PollListener]struct{}{},
	}
	go g.run()
	return g
}

func (g *PollGroup) run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()
	for {
		select {
		case <-g.cancellationCh:
			g.Lock()
			for l := range g.listeners {
				delete(g.listeners, l)
			}
			g.Unlock()
			return
		case <-ticker.C:
			g.Lock()
			listeners := make([]PollListener, 0, len(g.listeners))
			for l := range g.listeners {
				listeners = append(listeners, l)
			}
			g.Unlock()
			for _, l := range listeners {
				l.Poll()
			}
		}
	}
}

// Subscribe adds a listener to the group.
func (g *PollGroup) Subscribe(listener PollListener) {
	g.Lock()
	g.listeners[listener] = struct{}{}
	g.Unlock()
}

// Unsubscribe removes a listener from the group.
func (g *PollGroup) Unsubscribe(listener PollListener) {
	g.Lock()
	delete(g.listeners, listener)
	g.Unlock()
}
