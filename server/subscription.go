package server

import (
	"container/list"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

const (
	minPublishingInterval        = 125.0
	maxPublishingInterval        = 60 * 1000.0
	minLifetime                  = 10 * 1000.0
	maxLifetime                  = 60 * 60 * 1000.0
	maxRetransmissionQueueLength = 128
)

var subscriptionID = uint32(0)

// Subscription organizes MonitoredItems and publishes their notifications
// on a periodic timer. A subscription may outlive its session: when the
// owning session is deleted the subscription is detached and keeps aging
// until its lifetime runs out or another session adopts it by transfer.
type Subscription struct {
	sync.RWMutex
	id                         uint32
	publishingInterval         float64
	lifetimeCount              uint32
	maxKeepAliveCount          uint32
	maxNotificationsPerPublish uint32
	publishingEnabled          bool
	priority                   byte
	seqNum                     uint32
	cancelPublishing           chan struct{}
	items                      map[uint32]*MonitoredItem
	keepAliveCounter           uint32
	lifetimeCounter            uint32
	session                    *Session
	manager                    *SubscriptionManager
	retransmissionQueue        *list.List
	isLate                     bool
	resend                     bool
	deleted                    bool
	logger                     zerolog.Logger
}

// NewSubscription instantiates a new Subscription. Requested values are
// revised into the server's bounds; the caller reads the revised fields
// back for the create response and then calls startPublishing.
func NewSubscription(manager *SubscriptionManager, session *Session, publishingInterval float64, lifetimeCount, maxKeepAliveCount, maxNotificationsPerPublish uint32, publishingEnabled bool, priority byte) *Subscription {
	s := &Subscription{
		manager:             manager,
		session:             session,
		id:                  atomic.AddUint32(&subscriptionID, 1),
		publishingEnabled:   publishingEnabled,
		priority:            priority,
		seqNum:              1,
		items:               make(map[uint32]*MonitoredItem),
		retransmissionQueue: list.New(),
	}
	s.setPublishingInterval(publishingInterval)
	s.setMaxKeepAliveCount(maxKeepAliveCount)
	s.setLifetimeCount(lifetimeCount)
	s.setMaxNotificationsPerPublish(maxNotificationsPerPublish)
	// primed so that the first quiet cycle emits a keep-alive.
	s.keepAliveCounter = s.maxKeepAliveCount
	s.logger = manager.server.logger.With().Uint32("subscription_id", s.id).Logger()
	return s
}

// IsExpired reports whether the lifetime countdown has run out.
func (s *Subscription) IsExpired() bool {
	s.RLock()
	ret := s.lifetimeCounter >= s.lifetimeCount
	s.RUnlock()
	return ret
}

// Session returns the owning session, or nil when detached.
func (s *Subscription) Session() *Session {
	s.RLock()
	ret := s.session
	s.RUnlock()
	return ret
}

// Manager returns the owning subscription manager, or nil after delete.
func (s *Subscription) Manager() *SubscriptionManager {
	s.RLock()
	ret := s.manager
	s.RUnlock()
	return ret
}

// Delete stops publishing and releases the subscription's items and
// retransmission queue. Safe to call more than once.
func (s *Subscription) Delete() {
	s.Lock()
	s.deleteImpl()
	s.Unlock()
}

func (s *Subscription) deleteImpl() {
	if s.deleted {
		return
	}
	s.deleted = true
	s.stopPublishing()
	for id, item := range s.items {
		delete(s.items, id)
		item.Delete()
	}
	s.items = nil
	q := s.retransmissionQueue
	for e := q.Front(); e != nil; e = e.Next() {
		q.Remove(e)
		e.Value = nil
	}
	s.retransmissionQueue = nil
	s.session = nil
	s.manager = nil
}

// Items returns a snapshot of the monitored items.
func (s *Subscription) Items() []*MonitoredItem {
	s.RLock()
	ret := make([]*MonitoredItem, 0, len(s.items))
	for _, v := range s.items {
		ret = append(ret, v)
	}
	s.RUnlock()
	return ret
}

// FindItem returns the monitored item with the given id.
func (s *Subscription) FindItem(id uint32) (*MonitoredItem, bool) {
	s.RLock()
	item, ok := s.items[id]
	s.RUnlock()
	return item, ok
}

// AppendItem adds a monitored item to the subscription.
func (s *Subscription) AppendItem(item *MonitoredItem) bool {
	s.Lock()
	ret := false
	if !s.deleted {
		if _, ok := s.items[item.id]; !ok {
			s.items[item.id] = item
			ret = true
		}
	}
	s.Unlock()
	return ret
}

// DeleteItem removes the monitored item with the given id.
func (s *Subscription) DeleteItem(id uint32) bool {
	s.Lock()
	ret := false
	if item, ok := s.items[id]; ok {
		delete(s.items, id)
		item.Delete()
		ret = true
	}
	s.Unlock()
	return ret
}

// touch resets the lifetime countdown. Every service that names the
// subscription counts as client activity.
func (s *Subscription) touch() {
	s.Lock()
	s.lifetimeCounter = 0
	s.Unlock()
}

// SetPublishingMode enables or disables publishing and resets the
// lifetime countdown.
func (s *Subscription) SetPublishingMode(publishingEnabled bool) {
	s.Lock()
	s.publishingEnabled = publishingEnabled
	s.lifetimeCounter = 0
	s.Unlock()
}

// Modify revises the subscription's timing parameters and restarts the
// publish timer at the new interval.
func (s *Subscription) Modify(publishingInterval float64, lifetimeCount, maxKeepAliveCount, maxNotificationsPerPublish uint32, priority byte) {
	s.Lock()
	s.stopPublishing()
	s.setPublishingInterval(publishingInterval)
	s.setMaxKeepAliveCount(maxKeepAliveCount)
	s.setLifetimeCount(lifetimeCount)
	s.setMaxNotificationsPerPublish(maxNotificationsPerPublish)
	s.priority = priority
	s.lifetimeCounter = 0
	s.startPublishing()
	s.Unlock()
}

// transfer reassigns the subscription to the calling session and returns
// the sequence numbers still available for republish. The previous owner,
// if any, is told the subscription moved.
func (s *Subscription) transfer(target *Session, sendInitialValues bool) []uint32 {
	s.Lock()
	old := s.session
	s.session = target
	if sendInitialValues {
		s.resend = true
	}
	s.lifetimeCounter = 0
	s.isLate = false
	avail := s.availableSequenceNumbers()
	id := s.id
	var nm ua.NotificationMessage
	notify := old != nil && old != target
	if notify {
		nm = ua.NotificationMessage{
			SequenceNumber:   s.seqNum,
			PublishTime:      time.Now(),
			NotificationData: []ua.ExtensionObject{ua.StatusChangeNotification{Status: ua.GoodSubscriptionTransferred}},
		}
		s.advanceSeqNum()
	}
	s.Unlock()
	if notify {
		old.addStateChange(id, nm)
	}
	return avail
}

// detach drops the subscription's session binding when the given session
// is deleted. The subscription keeps aging and remains adoptable by
// TransferSubscriptions until its lifetime runs out.
func (s *Subscription) detach(sess *Session) {
	s.Lock()
	if s.session == sess {
		s.session = nil
		s.isLate = false
	}
	s.Unlock()
}

func (s *Subscription) setPublishingInterval(publishingInterval float64) {
	if math.IsNaN(publishingInterval) {
		publishingInterval = minPublishingInterval
	}
	if publishingInterval < minPublishingInterval {
		publishingInterval = minPublishingInterval
	}
	if publishingInterval > maxPublishingInterval {
		publishingInterval = maxPublishingInterval
	}
	s.publishingInterval = publishingInterval
}

func (s *Subscription) setMaxKeepAliveCount(maxKeepAliveCount uint32) {
	if maxKeepAliveCount == 0 {
		maxKeepAliveCount = 3
	}
	keepAliveInterval := float64(maxKeepAliveCount) * s.publishingInterval
	// keep alive interval cannot be longer than the max subscription lifetime.
	if keepAliveInterval > maxLifetime {
		maxKeepAliveCount = uint32(maxLifetime / s.publishingInterval)
		if maxKeepAliveCount < math.MaxUint32 {
			if math.Mod(maxLifetime, s.publishingInterval) != 0 {
				maxKeepAliveCount++
			}
		}
		keepAliveInterval = float64(maxKeepAliveCount) * s.publishingInterval
	}
	// the time between publishes cannot exceed the max publishing interval.
	if keepAliveInterval > maxPublishingInterval {
		maxKeepAliveCount = uint32(maxPublishingInterval / s.publishingInterval)
		if maxKeepAliveCount < math.MaxUint32 {
			if math.Mod(maxPublishingInterval, s.publishingInterval) != 0 {
				maxKeepAliveCount++
			}
		}
	}
	s.maxKeepAliveCount = maxKeepAliveCount
}

func (s *Subscription) setLifetimeCount(lifetimeCount uint32) {
	lifetimeInterval := float64(lifetimeCount) * s.publishingInterval
	// lifetime cannot be longer than the max subscription lifetime.
	if lifetimeInterval > maxLifetime {
		lifetimeCount = uint32(maxLifetime / s.publishingInterval)
		if lifetimeCount < math.MaxUint32 {
			if math.Mod(maxLifetime, s.publishingInterval) != 0 {
				lifetimeCount++
			}
		}
	}
	// the lifetime must be at least three times the keepalive.
	if s.maxKeepAliveCount < math.MaxUint32/3 {
		if s.maxKeepAliveCount*3 > lifetimeCount {
			lifetimeCount = s.maxKeepAliveCount * 3
		}
		lifetimeInterval = float64(lifetimeCount) * s.publishingInterval
	} else {
		lifetimeCount = math.MaxUint32
		lifetimeInterval = math.MaxFloat64
	}
	// apply the minimum.
	if minLifetime > s.publishingInterval && minLifetime > lifetimeInterval {
		lifetimeCount = uint32(minLifetime / s.publishingInterval)
		if lifetimeCount < math.MaxUint32 {
			if math.Mod(minLifetime, s.publishingInterval) != 0 {
				lifetimeCount++
			}
		}
	}
	s.lifetimeCount = lifetimeCount
}

func (s *Subscription) setMaxNotificationsPerPublish(maxNotificationsPerPublish uint32) {
	if maxNotificationsPerPublish > 0 {
		s.maxNotificationsPerPublish = maxNotificationsPerPublish
		return
	}
	s.maxNotificationsPerPublish = math.MaxInt32
}

// acknowledge removes the notification with the given sequence number
// from the retransmission queue.
func (s *Subscription) acknowledge(seqNum uint32) bool {
	s.Lock()
	defer s.Unlock()
	if s.deleted {
		return false
	}
	q := s.retransmissionQueue
	for e := q.Front(); e != nil; e = e.Next() {
		if nm, ok := e.Value.(ua.NotificationMessage); ok && nm.SequenceNumber == seqNum {
			q.Remove(e)
			e.Value = nil
			return true
		}
	}
	return false
}

// republish takes the notification with the given sequence number off the
// retransmission queue and resets the lifetime countdown.
func (s *Subscription) republish(retransmitSequenceNumber uint32) (ua.NotificationMessage, bool) {
	s.Lock()
	defer s.Unlock()
	if s.deleted {
		return ua.NotificationMessage{}, false
	}
	s.lifetimeCounter = 0
	q := s.retransmissionQueue
	for e := q.Front(); e != nil; e = e.Next() {
		if nm, ok := e.Value.(ua.NotificationMessage); ok && nm.SequenceNumber == retransmitSequenceNumber {
			q.Remove(e)
			e.Value = nil
			return nm, true
		}
	}
	return ua.NotificationMessage{}, false
}

func (s *Subscription) startPublishing() {
	s.cancelPublishing = make(chan struct{})

	go func(done chan struct{}, interval time.Duration) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case t := <-ticker.C:
				if s.publishTick(t.UTC()) {
					if m := s.Manager(); m != nil {
						m.Delete(s)
					}
					s.Delete()
					return
				}
			}
		}
	}(s.cancelPublishing, time.Duration(int64(s.publishingInterval))*time.Millisecond)
}

func (s *Subscription) stopPublishing() {
	if s.cancelPublishing != nil {
		close(s.cancelPublishing)
		s.cancelPublishing = nil
	}
}

// publishTick runs one publishing cycle. Pending notifications or a due
// keep-alive consume the session's oldest publish slot; a cycle that sends
// nothing ages the lifetime countdown. Returns true once the countdown
// runs out, after which the caller must delete the subscription.
func (s *Subscription) publishTick(now time.Time) bool {
	s.Lock()
	defer s.Unlock()
	if s.deleted {
		return false
	}

	notificationsAvailable := false
	if s.publishingEnabled {
		resend := s.resend
		s.resend = false
		for _, item := range s.items {
			if item.notificationsAvailable(now, false, resend) {
				notificationsAvailable = true
			}
		}
	}
	sess := s.session

	switch {
	case notificationsAvailable:
		if sess != nil {
			op, ok, err := sess.removePublishRequest()
			if err != nil {
				s.logger.Debug().Err(err).Msg("completing stale publish request failed")
			}
			if ok {
				s.writeNotifications(op.ch, op.requestID, op.req, op.results, now)
				return false
			}
			s.isLate = true
		}
	case s.publishingEnabled:
		s.keepAliveCounter++
		if s.keepAliveCounter < s.maxKeepAliveCount {
			break
		}
		if sess != nil {
			op, ok, err := sess.removePublishRequest()
			if err != nil {
				s.logger.Debug().Err(err).Msg("completing stale publish request failed")
			}
			if ok {
				s.writeKeepAlive(op.ch, op.requestID, op.req, op.results)
				return false
			}
			s.isLate = true
		}
	}

	// nothing was sent this cycle.
	s.lifetimeCounter++
	if s.lifetimeCounter < s.lifetimeCount {
		return false
	}
	s.expire(sess)
	return true
}

// handleLatePublishRequest answers an arriving PublishRequest directly
// when the subscription owes the client data or a keep-alive. Reports
// whether the request was consumed.
func (s *Subscription) handleLatePublishRequest(ch *serverSecureChannel, requestid uint32, req *ua.PublishRequest, results []ua.StatusCode) bool {
	s.Lock()
	defer s.Unlock()
	if s.deleted || !s.isLate {
		return false
	}
	now := time.Now()
	notificationsAvailable := false
	if s.publishingEnabled {
		for _, item := range s.items {
			if item.notificationsAvailable(now, true, false) {
				notificationsAvailable = true
			}
		}
	}
	switch {
	case notificationsAvailable:
		s.writeNotifications(ch, requestid, req, results, now)
		return true
	case s.publishingEnabled && s.keepAliveCounter >= s.maxKeepAliveCount:
		s.writeKeepAlive(ch, requestid, req, results)
		return true
	}
	return false
}

// resendData arranges for every monitored item to report its current
// value on the next publishing cycle.
func (s *Subscription) resendData() {
	s.Lock()
	s.resend = true
	s.Unlock()
}

// writeNotifications drains up to maxNotificationsPerPublish queued values
// from the reporting items into a NotificationMessage, keeps a copy for
// republish, and completes the publish request. Callers hold the lock.
func (s *Subscription) writeNotifications(ch *serverSecureChannel, requestid uint32, req *ua.PublishRequest, results []ua.StatusCode, now time.Time) {
	more := false
	maxN := int(s.maxNotificationsPerPublish)
	mins := make([]ua.MonitoredItemNotification, 0, 4)
	for _, item := range s.items {
		if !item.reporting() {
			continue
		}
		values, more1 := item.notifications(maxN)
		for _, dv := range values {
			mins = append(mins, ua.MonitoredItemNotification{ClientHandle: item.ClientHandle(), Value: dv})
		}
		more = more || more1
		maxN -= len(values)
	}
	nd := make([]ua.ExtensionObject, 0, 1)
	if len(mins) > 0 {
		nd = append(nd, ua.DataChangeNotification{MonitoredItems: mins})
	}
	nm := ua.NotificationMessage{
		SequenceNumber:   s.seqNum,
		PublishTime:      now,
		NotificationData: nd,
	}
	q := s.retransmissionQueue
	for e := q.Front(); e != nil && q.Len() >= maxRetransmissionQueueLength; e = e.Next() {
		q.Remove(e)
		e.Value = nil
	}
	q.PushBack(nm)
	err := ch.Write(
		&ua.PublishResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			SubscriptionID:           s.id,
			AvailableSequenceNumbers: s.availableSequenceNumbers(),
			MoreNotifications:        more,
			NotificationMessage:      nm,
			Results:                  results,
			DiagnosticInfos:          nil,
		},
		requestid,
	)
	if err != nil {
		s.logger.Debug().Err(err).Msg("writing publish response failed")
	}
	s.advanceSeqNum()
	s.keepAliveCounter = 0
	s.lifetimeCounter = 0
	s.isLate = more
}

// writeKeepAlive completes the publish request with an empty notification
// message. The sequence number is shown but not consumed. Callers hold
// the lock.
func (s *Subscription) writeKeepAlive(ch *serverSecureChannel, requestid uint32, req *ua.PublishRequest, results []ua.StatusCode) {
	err := ch.Write(
		&ua.PublishResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			SubscriptionID:           s.id,
			AvailableSequenceNumbers: s.availableSequenceNumbers(),
			MoreNotifications:        false,
			NotificationMessage: ua.NotificationMessage{
				SequenceNumber:   s.seqNum,
				PublishTime:      time.Now(),
				NotificationData: nil,
			},
			Results:         results,
			DiagnosticInfos: nil,
		},
		requestid,
	)
	if err != nil {
		s.logger.Debug().Err(err).Msg("writing keep-alive failed")
	}
	s.keepAliveCounter = 0
	s.lifetimeCounter = 0
	s.isLate = false
}

// expire tells the owning session the subscription timed out, answering a
// pending publish request directly when one is queued. Callers hold the
// lock.
func (s *Subscription) expire(sess *Session) {
	s.logger.Debug().Msg("subscription lifetime expired")
	nm := ua.NotificationMessage{
		SequenceNumber:   s.seqNum,
		PublishTime:      time.Now(),
		NotificationData: []ua.ExtensionObject{ua.StatusChangeNotification{Status: ua.BadTimeout}},
	}
	s.advanceSeqNum()
	if sess == nil {
		return
	}
	op, ok, err := sess.removePublishRequest()
	if err != nil {
		s.logger.Debug().Err(err).Msg("completing stale publish request failed")
	}
	if !ok {
		sess.addStateChange(s.id, nm)
		return
	}
	err = op.ch.Write(
		&ua.PublishResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: op.req.RequestHandle,
			},
			SubscriptionID:           s.id,
			AvailableSequenceNumbers: []uint32{},
			MoreNotifications:        false,
			NotificationMessage:      nm,
			Results:                  op.results,
			DiagnosticInfos:          nil,
		},
		op.requestID,
	)
	if err != nil {
		s.logger.Debug().Err(err).Msg("writing status change failed")
	}
}

// availableSequenceNumbers lists the unacknowledged notifications still
// held for republish. Callers hold the lock.
func (s *Subscription) availableSequenceNumbers() []uint32 {
	avail := make([]uint32, 0, 4)
	for e := s.retransmissionQueue.Front(); e != nil; e = e.Next() {
		if nm, ok := e.Value.(ua.NotificationMessage); ok {
			avail = append(avail, nm.SequenceNumber)
		}
	}
	return avail
}

func (s *Subscription) advanceSeqNum() {
	if s.seqNum != math.MaxUint32 {
		s.seqNum++
	} else {
		s.seqNum = 1
	}
}
