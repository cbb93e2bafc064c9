package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uaforge/uaserve/ua"
)

// publishOp is a queued PublishRequest waiting for a subscription to
// produce a notification. The deadline is the receive time plus the
// request's TimeoutHint clamped by the server's maximum publish wait.
type publishOp struct {
	ch        *serverSecureChannel
	requestID uint32
	req       *ua.PublishRequest
	results   []ua.StatusCode
	deadline  time.Time
}

// stateChangeOp carries a status-change notification from a subscription
// that no longer has a way to answer a publish itself, such as one that
// timed out or was transferred away.
type stateChangeOp struct {
	subscriptionID uint32
	message        ua.NotificationMessage
}

// Session holds the state of one client session: identity, nonces, the
// channel binding, and the queue of pending publish requests shared by the
// session's subscriptions.
type Session struct {
	sync.RWMutex
	server                  *Server
	sessionID               ua.NodeID
	sessionName             string
	authenticationToken     ua.NodeID
	timeout                 time.Duration
	userIdentity            any
	sessionNonce            ua.ByteString
	clientNonce             ua.ByteString
	clientCertificate       ua.ByteString
	securityPolicyURI       string
	securityMode            ua.MessageSecurityMode
	lastAccess              time.Time
	publishRequests         chan *publishOp
	stateChanges            chan *stateChangeOp
	channelID               uint32
	activated               bool
	deleted                 bool
	clientDescription       ua.ApplicationDescription
	serverURI               string
	endpointURL             string
	localeIDs               []string
	timeCreated             time.Time
	requestCount            uint32
	errorCount              uint32
	clientUserID            string
	authenticationMechanism string
}

// newSession creates a session in the created-but-not-activated state. The
// session id is a GUID and the authentication token an opaque nonce; the
// channel binding stays zero until the first ActivateSession.
func newSession(server *Server, sessionName string, timeout time.Duration, clientDescription ua.ApplicationDescription, serverURI, endpointURL string, clientNonce, clientCertificate ua.ByteString, securityPolicyURI string, securityMode ua.MessageSecurityMode) *Session {
	return &Session{
		server:              server,
		sessionID:           ua.NewNodeIDGUID(1, uuid.New()),
		sessionName:         sessionName,
		authenticationToken: ua.NewNodeIDOpaque(0, ua.ByteString(getNextNonce(nonceLength))),
		timeout:             timeout,
		sessionNonce:        ua.ByteString(getNextNonce(nonceLength)),
		clientNonce:         clientNonce,
		clientCertificate:   clientCertificate,
		securityPolicyURI:   securityPolicyURI,
		securityMode:        securityMode,
		lastAccess:          time.Now(),
		publishRequests:     make(chan *publishOp, 64),
		stateChanges:        make(chan *stateChangeOp, 64),
		clientDescription:   clientDescription,
		serverURI:           serverURI,
		endpointURL:         endpointURL,
		localeIDs:           []string{"en-US"},
		timeCreated:         time.Now(),
	}
}

// IsExpired reports whether the session has gone unused longer than its
// revised timeout.
func (s *Session) IsExpired() bool {
	s.RLock()
	defer s.RUnlock()
	return time.Now().After(s.lastAccess.Add(s.timeout))
}

// delete clears the session state and answers any queued publish requests
// with BadSessionClosed. Attached subscriptions are detached by the caller,
// never destroyed here.
func (s *Session) delete() {
	s.Lock()
	if s.deleted {
		s.Unlock()
		return
	}
	s.deleted = true
	s.activated = false
	s.userIdentity = nil
	s.sessionNonce = ua.ByteString("")
	s.Unlock()
	for {
		select {
		case op := <-s.publishRequests:
			op.ch.Write(
				&ua.ServiceFault{
					ResponseHeader: ua.ResponseHeader{
						Timestamp:     time.Now(),
						RequestHandle: op.req.RequestHandle,
						ServiceResult: ua.BadSessionClosed,
					},
				},
				op.requestID,
			)
		default:
			return
		}
	}
}

func (s *Session) Server() *Server {
	s.RLock()
	defer s.RUnlock()
	return s.server
}

func (s *Session) SessionID() ua.NodeID {
	s.RLock()
	defer s.RUnlock()
	return s.sessionID
}

func (s *Session) SessionName() string {
	s.RLock()
	defer s.RUnlock()
	return s.sessionName
}

func (s *Session) AuthenticationToken() ua.NodeID {
	s.RLock()
	defer s.RUnlock()
	return s.authenticationToken
}

func (s *Session) Timeout() time.Duration {
	s.RLock()
	defer s.RUnlock()
	return s.timeout
}

func (s *Session) UserIdentity() any {
	s.RLock()
	defer s.RUnlock()
	return s.userIdentity
}

func (s *Session) SetUserIdentity(value any) {
	s.Lock()
	defer s.Unlock()
	s.userIdentity = value
	switch ui := value.(type) {
	case ua.IssuedIdentity:
		s.clientUserID = "<issued>"
		s.authenticationMechanism = "Issued"
	case ua.X509Identity:
		s.clientUserID = "<certificate>"
		s.authenticationMechanism = "X509"
	case ua.UserNameIdentity:
		s.clientUserID = ui.UserName
		s.authenticationMechanism = "UserName"
	default:
		s.clientUserID = "<anonymous>"
		s.authenticationMechanism = "Anonymous"
	}
}

// ClientUserID returns the identity recorded by the last activation, in a
// form suitable for diagnostics.
func (s *Session) ClientUserID() string {
	s.RLock()
	defer s.RUnlock()
	return s.clientUserID
}

// AuthenticationMechanism returns the kind of identity token presented by
// the last activation.
func (s *Session) AuthenticationMechanism() string {
	s.RLock()
	defer s.RUnlock()
	return s.authenticationMechanism
}

func (s *Session) SessionNonce() ua.ByteString {
	s.RLock()
	defer s.RUnlock()
	return s.sessionNonce
}

func (s *Session) SetSessionNonce(value ua.ByteString) {
	s.Lock()
	defer s.Unlock()
	s.sessionNonce = value
}

func (s *Session) ClientNonce() ua.ByteString {
	s.RLock()
	defer s.RUnlock()
	return s.clientNonce
}

func (s *Session) ClientCertificate() ua.ByteString {
	s.RLock()
	defer s.RUnlock()
	return s.clientCertificate
}

func (s *Session) SecurityPolicyURI() string {
	s.RLock()
	defer s.RUnlock()
	return s.securityPolicyURI
}

func (s *Session) SecurityMode() ua.MessageSecurityMode {
	s.RLock()
	defer s.RUnlock()
	return s.securityMode
}

func (s *Session) LastAccess() time.Time {
	s.RLock()
	defer s.RUnlock()
	return s.lastAccess
}

func (s *Session) SetLastAccess(value time.Time) {
	s.Lock()
	defer s.Unlock()
	s.lastAccess = value
}

func (s *Session) SecureChannelID() uint32 {
	s.RLock()
	defer s.RUnlock()
	return s.channelID
}

// SetSecureChannelID binds the session to a channel. ActivateSession may
// rebind a session that lost its transport to a fresh channel.
func (s *Session) SetSecureChannelID(value uint32) {
	s.Lock()
	defer s.Unlock()
	s.channelID = value
}

func (s *Session) Activated() bool {
	s.RLock()
	defer s.RUnlock()
	return s.activated
}

func (s *Session) setActivated() {
	s.Lock()
	defer s.Unlock()
	s.activated = true
}

func (s *Session) LocaleIDs() []string {
	s.RLock()
	defer s.RUnlock()
	return s.localeIDs
}

func (s *Session) SetLocaleIDs(value []string) {
	s.Lock()
	defer s.Unlock()
	if len(value) > 0 {
		s.localeIDs = value
	}
}

func (s *Session) TimeCreated() time.Time {
	s.RLock()
	defer s.RUnlock()
	return s.timeCreated
}

func (s *Session) RequestCount() uint32 {
	s.RLock()
	defer s.RUnlock()
	return s.requestCount
}

func (s *Session) ErrorCount() uint32 {
	s.RLock()
	defer s.RUnlock()
	return s.errorCount
}

func (s *Session) incrementRequestCount() {
	s.Lock()
	defer s.Unlock()
	s.requestCount++
}

func (s *Session) incrementErrorCount() {
	s.Lock()
	defer s.Unlock()
	s.errorCount++
}

// addPublishRequest queues a publish request for the session's
// subscriptions. When the queue is full the oldest pending request is
// completed with BadTooManyPublishRequests to make room.
func (s *Session) addPublishRequest(ch *serverSecureChannel, requestid uint32, req *ua.PublishRequest, results []ua.StatusCode) error {
	s.RLock()
	deleted := s.deleted
	s.RUnlock()
	if deleted {
		return ua.BadSessionClosed
	}
	wait := s.server.maxPublishRequestWait
	hint := time.Duration(req.TimeoutHint) * time.Millisecond
	if hint == 0 || hint > wait {
		hint = wait
	}
	op := &publishOp{ch, requestid, req, results, time.Now().Add(hint)}
	for {
		select {
		case s.publishRequests <- op:
			return nil
		default:
			old := <-s.publishRequests
			err := old.ch.Write(
				&ua.ServiceFault{
					ResponseHeader: ua.ResponseHeader{
						Timestamp:     time.Now(),
						RequestHandle: old.req.RequestHandle,
						ServiceResult: ua.BadTooManyPublishRequests,
					},
				},
				old.requestID,
			)
			if err != nil {
				return err
			}
		}
	}
}

// removePublishRequest dequeues the next pending publish request. Requests
// whose deadline already passed are completed with BadTimeout and skipped.
// ok is false when no usable request is queued.
func (s *Session) removePublishRequest() (op *publishOp, ok bool, err error) {
	for {
		select {
		case op := <-s.publishRequests:
			if time.Now().After(op.deadline) {
				err := op.ch.Write(
					&ua.ServiceFault{
						ResponseHeader: ua.ResponseHeader{
							Timestamp:     time.Now(),
							RequestHandle: op.req.RequestHandle,
							ServiceResult: ua.BadTimeout,
						},
					},
					op.requestID,
				)
				if err != nil {
					return nil, false, err
				}
				continue
			}
			return op, true, nil
		default:
			return nil, false, nil
		}
	}
}

// addStateChange queues a status-change notification to be returned by the
// session's next publish. The queue is bounded; when full the notification
// is dropped.
func (s *Session) addStateChange(subscriptionID uint32, message ua.NotificationMessage) {
	select {
	case s.stateChanges <- &stateChangeOp{subscriptionID, message}:
	default:
	}
}
