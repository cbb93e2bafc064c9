package server

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

const (
	// protocolVersion is the version of the binary protocol that this
	// library supports.
	protocolVersion uint32 = 0
	// defaultBufferSize is the default size of the send and receive buffers.
	defaultBufferSize = 64 * 1024
	// defaultMaxMessageSize is the limit on the size of messages that may be accepted.
	defaultMaxMessageSize uint32 = 64 * 1024 * 1024
	// defaultMaxChunkCount is the limit on the number of message chunks that may be accepted.
	defaultMaxChunkCount uint32 = 4 * 1024
	// defaultMaxWorkerThreads is the default number of worker threads that may be created.
	defaultMaxWorkerThreads int = 4
	// nonceLength is the length of the server nonces, in bytes.
	nonceLength = 32
)

const (
	// defaultMinSessionTimeout is the minimum number of milliseconds that a
	// session may be unused before being closed by the server. (10 sec)
	defaultMinSessionTimeout float64 = 10 * 1000
	// defaultMaxSessionTimeout is the maximum number of milliseconds that a
	// session may be unused before being closed by the server. (60 min)
	defaultMaxSessionTimeout float64 = 3600 * 1000
	// defaultMaxPublishRequestWait bounds how long a queued publish request
	// may sit unanswered before it is answered with BadTimeout.
	defaultMaxPublishRequestWait = 60 * time.Second
)

const (
	// minTokenLifetime is the shortest security token lifetime granted.
	minTokenLifetime = 60 * time.Second
	// maxTokenLifetime is the longest security token lifetime granted.
	maxTokenLifetime = time.Hour
	// defaultTokenLifetime is granted when the client requests no lifetime.
	defaultTokenLifetime = 20 * time.Minute
)

// Server implements the server-side protocol engine: it accepts connections,
// negotiates secure channels, tracks sessions and subscriptions, and routes
// decoded service requests to handlers. The address space behind Read, Write
// and the delegated services is supplied by a NodeService.
type Server struct {
	sync.RWMutex
	localDescription    ua.ApplicationDescription
	certPath            string
	keyPath             string
	endpointURL         string
	endpoints           []ua.EndpointDescription
	closing             chan struct{}
	state               ua.ServerState
	secondsTillShutdown uint32
	shutdownReason      ua.LocalizedText
	startTime           time.Time

	logger zerolog.Logger
	trace  bool

	localCertificate []byte
	localPrivateKey  *rsa.PrivateKey

	maxBufferSize           uint32
	maxMessageSize          uint32
	maxChunkCount           uint32
	maxChannelCount         uint32
	maxSessionCount         uint32
	maxSubscriptionCount    uint32
	maxOperationsPerRequest uint32
	maxWorkerThreads        int
	minSessionTimeout       float64
	maxSessionTimeout       float64
	maxPublishRequestWait   time.Duration

	serverDiagnostics       bool
	allowSecurityPolicyNone bool

	trustedCertsPath                   string
	suppressCertificateTimeInvalid     bool
	suppressCertificateChainIncomplete bool

	nodeService                    NodeService
	anonymousIdentityAuthenticator AnonymousIdentityAuthenticator
	userNameIdentityAuthenticator  UserNameIdentityAuthenticator
	x509IdentityAuthenticator      X509IdentityAuthenticator
	issuedIdentityAuthenticator    IssuedIdentityAuthenticator

	workerPool          *workerpool.WorkerPool
	channelManager      *channelManager
	sessionManager      *sessionManager
	subscriptionManager *SubscriptionManager
	scheduler           *Scheduler
}

// New returns a new instance of the Server. The certificate and key paths
// may be empty when only the None security policy is enabled.
func New(localDescription ua.ApplicationDescription, certPath, keyPath, endpointURL string, options ...Option) (*Server, error) {
	srv := &Server{
		localDescription:      localDescription,
		certPath:              certPath,
		keyPath:               keyPath,
		endpointURL:           endpointURL,
		closing:               make(chan struct{}),
		state:                 ua.ServerStateUnknown,
		startTime:             time.Now(),
		logger:                zerolog.New(os.Stderr).With().Timestamp().Logger(),
		maxBufferSize:         defaultBufferSize,
		maxMessageSize:        defaultMaxMessageSize,
		maxChunkCount:         defaultMaxChunkCount,
		maxWorkerThreads:      defaultMaxWorkerThreads,
		minSessionTimeout:     defaultMinSessionTimeout,
		maxSessionTimeout:     defaultMaxSessionTimeout,
		maxPublishRequestWait: defaultMaxPublishRequestWait,
		nodeService:           nilNodeService{},
	}
	for _, opt := range options {
		if err := opt(srv); err != nil {
			return nil, err
		}
	}
	if srv.certPath != "" || srv.keyPath != "" {
		cert, key, err := loadCertificateAndKey(srv.certPath, srv.keyPath)
		if err != nil {
			return nil, err
		}
		srv.localCertificate = cert
		srv.localPrivateKey = key
	}
	srv.endpoints = srv.buildEndpointDescriptions()
	srv.workerPool = workerpool.New(srv.maxWorkerThreads)
	srv.channelManager = newChannelManager(srv)
	srv.sessionManager = newSessionManager(srv)
	srv.subscriptionManager = NewSubscriptionManager(srv)
	srv.scheduler = NewScheduler(srv)
	return srv, nil
}

// LocalDescription returns the application description of the local server.
func (srv *Server) LocalDescription() ua.ApplicationDescription {
	srv.RLock()
	defer srv.RUnlock()
	return srv.localDescription
}

// LocalCertificate returns the DER-encoded certificate of the local server.
func (srv *Server) LocalCertificate() []byte {
	srv.RLock()
	defer srv.RUnlock()
	return srv.localCertificate
}

// LocalPrivateKey returns the private key of the local server.
func (srv *Server) LocalPrivateKey() *rsa.PrivateKey {
	srv.RLock()
	defer srv.RUnlock()
	return srv.localPrivateKey
}

// EndpointURL returns the endpoint url that the server offers.
func (srv *Server) EndpointURL() string {
	srv.RLock()
	defer srv.RUnlock()
	return srv.endpointURL
}

// Endpoints returns the endpoint descriptions that the server offers.
func (srv *Server) Endpoints() []ua.EndpointDescription {
	srv.RLock()
	defer srv.RUnlock()
	return srv.endpoints
}

// NamespaceURIs returns the namespace table of the server.
func (srv *Server) NamespaceURIs() []string {
	srv.RLock()
	defer srv.RUnlock()
	return []string{"http://opcfoundation.org/UA/", srv.localDescription.ApplicationURI}
}

// Closing returns a channel that is closed when the server is closing.
func (srv *Server) Closing() <-chan struct{} {
	srv.RLock()
	defer srv.RUnlock()
	return srv.closing
}

// State returns the run state of the server.
func (srv *Server) State() ua.ServerState {
	srv.RLock()
	defer srv.RUnlock()
	return srv.state
}

// SecondsTillShutdown returns the shutdown countdown during Close.
func (srv *Server) SecondsTillShutdown() uint32 {
	srv.RLock()
	defer srv.RUnlock()
	return srv.secondsTillShutdown
}

// ShutdownReason returns why the server is shutting down.
func (srv *Server) ShutdownReason() ua.LocalizedText {
	srv.RLock()
	defer srv.RUnlock()
	return srv.shutdownReason
}

// StartTime returns when the server was created.
func (srv *Server) StartTime() time.Time {
	srv.RLock()
	defer srv.RUnlock()
	return srv.startTime
}

// WorkerPool returns the pool that runs the request handlers.
func (srv *Server) WorkerPool() *workerpool.WorkerPool {
	srv.RLock()
	defer srv.RUnlock()
	return srv.workerPool
}

// hasEndpoint reports whether an endpoint with the given security policy and
// mode is offered.
func (srv *Server) hasEndpoint(securityPolicyURI string, securityMode ua.MessageSecurityMode) bool {
	_, ok := srv.endpointFor(securityPolicyURI, securityMode)
	return ok
}

// endpointFor returns the offered endpoint matching the given security
// policy and mode.
func (srv *Server) endpointFor(securityPolicyURI string, securityMode ua.MessageSecurityMode) (ua.EndpointDescription, bool) {
	for _, ep := range srv.Endpoints() {
		if ep.SecurityPolicyURI == securityPolicyURI && ep.SecurityMode == securityMode {
			return ep, true
		}
	}
	return ua.EndpointDescription{}, false
}

// readValue reads the current value of one attribute on behalf of the
// sampler.
func (srv *Server) readValue(ctx context.Context, itemToMonitor ua.ReadValueID) ua.DataValue {
	req := &ua.ReadRequest{
		NodesToRead:        []ua.ReadValueID{itemToMonitor},
		TimestampsToReturn: ua.TimestampsToReturnBoth,
	}
	res := srv.nodeService.Read(ctx, req)
	if res == nil || len(res.Results) == 0 {
		return ua.NewDataValue(nil, ua.BadInternalError, time.Now(), 0, time.Now(), 0)
	}
	return res.Results[0]
}

// ListenAndServe listens on the port of the endpoint url and accepts secure
// channel connections until Close. It blocks and, after a clean Close,
// returns BadServerHalted.
func (srv *Server) ListenAndServe() error {
	srv.Lock()
	if srv.state != ua.ServerStateUnknown {
		srv.Unlock()
		return ua.BadInternalError
	}
	baseURL, err := url.Parse(srv.endpointURL)
	if err != nil {
		srv.Unlock()
		return ua.BadTCPEndpointURLInvalid
	}
	ln, err := net.Listen("tcp", ":"+baseURL.Port())
	if err != nil {
		srv.Unlock()
		return ua.BadResourceUnavailable
	}
	srv.state = ua.ServerStateRunning
	srv.Unlock()

	srv.logger.Info().Str("endpoint_url", srv.endpointURL).Msg("listening")

	go func() {
		<-srv.closing
		ln.Close()
	}()
	if srv.serverDiagnostics {
		go srv.diagnosticsLoop()
	}

	var wg sync.WaitGroup
	err = srv.serve(ln, &wg)
	wg.Wait()
	srv.workerPool.StopWait()
	return err
}

// Close stops the server. It announces the shutdown, drains for three
// seconds so connected clients can observe it, then signals every channel
// watcher and the managers to abort.
func (srv *Server) Close() error {
	srv.Lock()
	if srv.state != ua.ServerStateRunning {
		srv.Unlock()
		return ua.BadInternalError
	}
	srv.state = ua.ServerStateShutdown
	srv.shutdownReason = ua.NewLocalizedText("Closing", "")
	srv.Unlock()

	for i := uint32(3); i > 0; i-- {
		srv.Lock()
		srv.secondsTillShutdown = i
		srv.Unlock()
		time.Sleep(time.Second)
	}
	srv.Lock()
	srv.secondsTillShutdown = 0
	srv.Unlock()

	close(srv.closing)
	return nil
}

// serve accepts connections until the listener closes. Temporary accept
// errors back off from 5ms, doubling up to 1s.
func (srv *Server) serve(ln net.Listener, wg *sync.WaitGroup) error {
	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if srv.State() != ua.ServerStateRunning {
				return ua.BadServerHalted
			}
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if delay == 0 {
					delay = 5 * time.Millisecond
				} else {
					delay *= 2
				}
				if max := time.Second; delay > max {
					delay = max
				}
				srv.logger.Warn().Err(err).Dur("retry_in", delay).Msg("temporary accept error")
				time.Sleep(delay)
				continue
			}
			return ua.BadTCPInternalError
		}
		delay = 0
		wg.Add(1)
		go srv.handleConnection(conn, wg)
	}
}

// handleConnection runs the lifetime of one secure channel: handshake and
// open, registration, the request worker, then teardown.
func (srv *Server) handleConnection(conn net.Conn, wg *sync.WaitGroup) {
	ch := newServerSecureChannel(srv, conn, srv.trace)
	defer func() {
		srv.channelManager.Delete(ch)
		ch.release()
		conn.Close()
		wg.Done()
	}()

	if err := srv.channelManager.Reserve(); err != nil {
		ch.Abort(ua.BadTCPNotEnoughResources, "")
		return
	}
	if err := ch.Open(); err != nil {
		srv.channelManager.Release()
		if code, ok := err.(ua.StatusCode); ok {
			ch.Abort(code, "")
			return
		}
		ch.Abort(ua.BadSecureChannelClosed, "")
		return
	}
	srv.channelManager.Add(ch)

	// Close the channel when the server closes, release the watcher when
	// the worker returns.
	closing := make(chan struct{})
	defer close(closing)
	go func() {
		select {
		case <-srv.closing:
			ch.Close()
		case <-closing:
		}
	}()

	srv.requestWorker(ch)
}

// diagnosticsLoop periodically logs arena sizes until the server closes.
func (srv *Server) diagnosticsLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			srv.logger.Info().
				Int("channels", srv.channelManager.Len()).
				Int("sessions", srv.sessionManager.Len()).
				Int("subscriptions", srv.subscriptionManager.Len()).
				Msg("server diagnostics")
		case <-srv.closing:
			return
		}
	}
}

// buildEndpointDescriptions lists the offered endpoints: optionally a None
// endpoint for discovery and open traffic, then Sign and SignAndEncrypt
// endpoints for every supported policy when a certificate is configured.
func (srv *Server) buildEndpointDescriptions() []ua.EndpointDescription {
	eds := []ua.EndpointDescription{}
	if srv.allowSecurityPolicyNone {
		eds = append(eds, ua.EndpointDescription{
			EndpointURL:         srv.endpointURL,
			Server:              srv.localDescription,
			ServerCertificate:   ua.ByteString(srv.localCertificate),
			SecurityMode:        ua.MessageSecurityModeNone,
			SecurityPolicyURI:   ua.SecurityPolicyURINone,
			TransportProfileURI: ua.TransportProfileURIUaTcpTransport,
			SecurityLevel:       byte(len(eds)),
			UserIdentityTokens:  srv.userTokenPolicies(ua.SecurityPolicyURIBasic256Sha256, len(eds)),
		})
	}
	if len(srv.localCertificate) == 0 {
		return eds
	}
	uris := []string{
		ua.SecurityPolicyURIBasic128Rsa15,
		ua.SecurityPolicyURIBasic256,
		ua.SecurityPolicyURIBasic256Sha256,
		ua.SecurityPolicyURIAes128Sha256RsaOaep,
		ua.SecurityPolicyURIAes256Sha256RsaPss,
	}
	for _, mode := range []ua.MessageSecurityMode{ua.MessageSecurityModeSign, ua.MessageSecurityModeSignAndEncrypt} {
		for _, uri := range uris {
			eds = append(eds, ua.EndpointDescription{
				EndpointURL:         srv.endpointURL,
				Server:              srv.localDescription,
				ServerCertificate:   ua.ByteString(srv.localCertificate),
				SecurityMode:        mode,
				SecurityPolicyURI:   uri,
				TransportProfileURI: ua.TransportProfileURIUaTcpTransport,
				SecurityLevel:       byte(len(eds)),
				UserIdentityTokens:  srv.userTokenPolicies(uri, len(eds)),
			})
		}
	}
	return eds
}

// userTokenPolicies lists the identity token policies for one endpoint.
// Anonymous tokens carry no secret so they always ride the None policy;
// username and issued token secrets are encrypted with the given policy.
func (srv *Server) userTokenPolicies(secretPolicyURI string, level int) []ua.UserTokenPolicy {
	toks := []ua.UserTokenPolicy{}
	if srv.anonymousIdentityAuthenticator != nil {
		toks = append(toks, ua.UserTokenPolicy{
			PolicyID:          fmt.Sprintf("%s_%d", ua.UserTokenTypeAnonymous, level),
			TokenType:         ua.UserTokenTypeAnonymous,
			SecurityPolicyURI: ua.SecurityPolicyURINone,
		})
	}
	if srv.userNameIdentityAuthenticator != nil {
		toks = append(toks, ua.UserTokenPolicy{
			PolicyID:          fmt.Sprintf("%s_%d", ua.UserTokenTypeUserName, level),
			TokenType:         ua.UserTokenTypeUserName,
			SecurityPolicyURI: secretPolicyURI,
		})
	}
	if srv.x509IdentityAuthenticator != nil {
		toks = append(toks, ua.UserTokenPolicy{
			PolicyID:          fmt.Sprintf("%s_%d", ua.UserTokenTypeCertificate, level),
			TokenType:         ua.UserTokenTypeCertificate,
			SecurityPolicyURI: secretPolicyURI,
		})
	}
	if srv.issuedIdentityAuthenticator != nil {
		toks = append(toks, ua.UserTokenPolicy{
			PolicyID:          fmt.Sprintf("%s_%d", ua.UserTokenTypeIssuedToken, level),
			TokenType:         ua.UserTokenTypeIssuedToken,
			SecurityPolicyURI: secretPolicyURI,
		})
	}
	return toks
}
