package server

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

func newBareSubscription(publishingEnabled bool, publishingInterval float64, lifetimeCount, maxKeepAliveCount uint32) (*Subscription, *Session) {
	srv := &Server{logger: zerolog.Nop()}
	m := &SubscriptionManager{server: srv, subscriptionsByID: make(map[uint32]*Subscription)}
	sess := newSession(srv, "test", time.Minute, ua.ApplicationDescription{}, "", "",
		ua.ByteString(""), ua.ByteString(""), ua.SecurityPolicyURINone, ua.MessageSecurityModeNone)
	sub := NewSubscription(m, sess, publishingInterval, lifetimeCount, maxKeepAliveCount, 0, publishingEnabled, 0)
	return sub, sess
}

func TestSubscriptionRevisesBounds(t *testing.T) {
	// requested values below the floors come back revised
	sub, _ := newBareSubscription(true, 1, 1, 0)
	if sub.publishingInterval != 125 {
		t.Errorf("publishing interval revised to %v, want 125", sub.publishingInterval)
	}
	if sub.maxKeepAliveCount != 3 {
		t.Errorf("max keep alive revised to %d, want 3", sub.maxKeepAliveCount)
	}
	// the lifetime floor is ten seconds worth of cycles
	if want := uint32(10000 / 125); sub.lifetimeCount != want {
		t.Errorf("lifetime revised to %d, want %d", sub.lifetimeCount, want)
	}

	// reasonable values pass through, except that the lifetime must be at
	// least three keep-alive periods
	sub, _ = newBareSubscription(true, 1000, 12, 10)
	if sub.publishingInterval != 1000 {
		t.Errorf("publishing interval revised to %v, want 1000", sub.publishingInterval)
	}
	if sub.maxKeepAliveCount != 10 {
		t.Errorf("max keep alive revised to %d, want 10", sub.maxKeepAliveCount)
	}
	if sub.lifetimeCount != 30 {
		t.Errorf("lifetime revised to %d, want 30", sub.lifetimeCount)
	}
}

func TestSubscriptionKeepAliveDueOnFirstQuietCycle(t *testing.T) {
	sub, _ := newBareSubscription(true, 125, 600, 5)
	if sub.keepAliveCounter != sub.maxKeepAliveCount {
		t.Fatalf("keep alive counter starts at %d, want %d", sub.keepAliveCounter, sub.maxKeepAliveCount)
	}
	// with no publish request queued the subscription goes late at once
	if sub.publishTick(time.Now().UTC()) {
		t.Fatal("first cycle must not expire the subscription")
	}
	sub.RLock()
	defer sub.RUnlock()
	if !sub.isLate {
		t.Error("a due keep-alive with no publish request queued must mark the subscription late")
	}
	if sub.lifetimeCounter != 1 {
		t.Errorf("lifetime counter = %d after one unanswered cycle, want 1", sub.lifetimeCounter)
	}
}

func TestSubscriptionExpiryNotifiesSession(t *testing.T) {
	// publishing disabled: every cycle ages the lifetime countdown
	sub, sess := newBareSubscription(false, 125, 1, 1)
	now := time.Now().UTC()
	ticks := 0
	for ; ticks < int(sub.lifetimeCount)+1; ticks++ {
		if sub.publishTick(now) {
			break
		}
		now = now.Add(125 * time.Millisecond)
	}
	if ticks != int(sub.lifetimeCount)-1 {
		t.Fatalf("expired after %d cycles, want %d", ticks+1, sub.lifetimeCount)
	}
	if !sub.IsExpired() {
		t.Error("IsExpired must report true after the countdown runs out")
	}

	// with no publish request pending the session hears of it through the
	// state change queue
	select {
	case op := <-sess.stateChanges:
		if op.subscriptionID != sub.id {
			t.Errorf("state change for subscription %d, want %d", op.subscriptionID, sub.id)
		}
		scn, ok := op.message.NotificationData[0].(ua.StatusChangeNotification)
		if !ok {
			t.Fatalf("expected a status change, got %T", op.message.NotificationData[0])
		}
		if scn.Status != ua.BadTimeout {
			t.Errorf("status change = %v, want BadTimeout", scn.Status)
		}
	default:
		t.Fatal("no state change queued for the session")
	}
}

func TestSubscriptionRetransmissionQueue(t *testing.T) {
	sub, _ := newBareSubscription(true, 125, 600, 3)
	sub.retransmissionQueue.PushBack(ua.NotificationMessage{SequenceNumber: 1})
	sub.retransmissionQueue.PushBack(ua.NotificationMessage{SequenceNumber: 2})

	sub.Lock()
	avail := sub.availableSequenceNumbers()
	sub.Unlock()
	if len(avail) != 2 || avail[0] != 1 || avail[1] != 2 {
		t.Fatalf("available sequence numbers = %v, want [1 2]", avail)
	}

	if !sub.acknowledge(1) {
		t.Error("acknowledging a held sequence number must succeed")
	}
	if sub.acknowledge(1) {
		t.Error("acknowledging the same sequence number twice must fail")
	}

	sub.Lock()
	sub.lifetimeCounter = 5
	sub.Unlock()
	nm, ok := sub.republish(2)
	if !ok || nm.SequenceNumber != 2 {
		t.Fatalf("republish(2) = %v, %v", nm, ok)
	}
	sub.RLock()
	if sub.lifetimeCounter != 0 {
		t.Error("republish must reset the lifetime countdown")
	}
	sub.RUnlock()
	if _, ok := sub.republish(2); ok {
		t.Error("republish must remove the message it replays")
	}
}

func TestSubscriptionSequenceNumberWrap(t *testing.T) {
	sub, _ := newBareSubscription(true, 125, 600, 3)
	if sub.seqNum != 1 {
		t.Fatalf("initial sequence number = %d, want 1", sub.seqNum)
	}
	sub.seqNum = 0xFFFFFFFF
	sub.advanceSeqNum()
	if sub.seqNum != 1 {
		t.Errorf("sequence number after wrap = %d, want 1", sub.seqNum)
	}
}
