package server

import (
	"bytes"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

func TestSessionManagerSweepExpiresIdleSession(t *testing.T) {
	srv := &Server{
		logger:                zerolog.Nop(),
		maxBufferSize:         defaultBufferSize,
		maxMessageSize:        defaultMaxMessageSize,
		maxChunkCount:         defaultMaxChunkCount,
		maxPublishRequestWait: time.Minute,
	}
	srv.subscriptionManager = &SubscriptionManager{server: srv, subscriptionsByID: make(map[uint32]*Subscription)}
	m := &sessionManager{server: srv, sessionsByToken: make(map[ua.NodeID]*Session)}

	s := newSession(srv, "idle", 50*time.Millisecond, ua.ApplicationDescription{}, "", "",
		ua.ByteString(""), ua.ByteString(""), ua.SecurityPolicyURINone, ua.MessageSecurityModeNone)
	if err := m.Add(s); err != nil {
		t.Fatal(err)
	}
	sub := NewSubscription(srv.subscriptionManager, s, 1000, 600, 3, 0, true, 0)
	if err := srv.subscriptionManager.Add(sub); err != nil {
		t.Fatal(err)
	}

	// a plaintext channel over a pipe carries the queued publish request
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()
	ch := newServerSecureChannel(srv, serverConn, false)
	ch.securityMode = ua.MessageSecurityModeNone
	ch.sendingToken = &channelToken{tokenID: 1, createdAt: time.Now(), lifetime: time.Hour}

	req := &ua.PublishRequest{RequestHeader: ua.RequestHeader{RequestHandle: 7, TimeoutHint: 60000}}
	if err := s.addPublishRequest(ch, 99, req, nil); err != nil {
		t.Fatal(err)
	}

	faults := make(chan *ua.ServiceFault, 1)
	go func() {
		hdr := make([]byte, 8)
		if _, err := io.ReadFull(clientConn, hdr); err != nil {
			t.Error(err)
			faults <- nil
			return
		}
		frame := make([]byte, binary.LittleEndian.Uint32(hdr[4:8]))
		copy(frame, hdr)
		if _, err := io.ReadFull(clientConn, frame[8:]); err != nil {
			t.Error(err)
			faults <- nil
			return
		}
		// skip the message and security headers, then type id and body
		dec := ua.NewBinaryDecoder(bytes.NewReader(frame[24:]), ch)
		var nid ua.NodeID
		if err := dec.ReadNodeID(&nid); err != nil {
			t.Error(err)
			faults <- nil
			return
		}
		if nid != ua.ObjectIDServiceFaultEncodingDefaultBinary {
			t.Errorf("queued publish answered with type id %v, want a service fault", nid)
		}
		var fault ua.ServiceFault
		if err := dec.Decode(&fault); err != nil {
			t.Error(err)
			faults <- nil
			return
		}
		faults <- &fault
	}()

	s.SetLastAccess(time.Now().Add(-time.Minute))
	m.removeExpired()

	if m.Len() != 0 {
		t.Fatalf("sweep left %d session(s)", m.Len())
	}
	if _, ok := m.Get(s.authenticationToken); ok {
		t.Fatal("expired session still resolvable by token")
	}
	if sub.Session() != nil {
		t.Error("subscription still attached to the expired session")
	}

	select {
	case fault := <-faults:
		if fault == nil {
			t.Fatal("queued publish request was not answered")
		}
		if fault.ServiceResult != ua.BadSessionClosed {
			t.Errorf("queued publish answered with %v, want BadSessionClosed", fault.ServiceResult)
		}
		if fault.RequestHandle != 7 {
			t.Errorf("fault request handle = %d, want 7", fault.RequestHandle)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("queued publish request was not answered")
	}

	// deleting again is a no-op: nothing further is written to the channel
	m.Delete(s)
	clientConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, err := clientConn.Read(make([]byte, 1)); err == nil {
		t.Fatal("second delete wrote to the channel")
	}
}
