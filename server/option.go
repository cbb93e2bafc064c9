package server

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

// Option is a function that configures the server.
type Option func(srv *Server) error

// WithLogger sets the logger used by the server and its channels.
// (default: stderr with timestamps)
func WithLogger(logger zerolog.Logger) Option {
	return func(srv *Server) error {
		srv.logger = logger
		return nil
	}
}

// WithTrace logs all requests and responses at debug level. (default: false)
func WithTrace() Option {
	return func(srv *Server) error {
		srv.trace = true
		return nil
	}
}

// WithMaxChannelCount sets the number of secure channels that may be open.
// Zero means no limit. (default: no limit)
func WithMaxChannelCount(value uint32) Option {
	return func(srv *Server) error {
		srv.maxChannelCount = value
		return nil
	}
}

// WithMaxSessionCount sets the number of sessions that may be active.
// Zero means no limit. (default: no limit)
func WithMaxSessionCount(value uint32) Option {
	return func(srv *Server) error {
		srv.maxSessionCount = value
		return nil
	}
}

// WithMaxSubscriptionCount sets the number of subscriptions that may be
// active. Zero means no limit. (default: no limit)
func WithMaxSubscriptionCount(value uint32) Option {
	return func(srv *Server) error {
		srv.maxSubscriptionCount = value
		return nil
	}
}

// WithMaxBufferSize sets the size of the send and receive buffers offered
// during the handshake. (default: 64Kb)
func WithMaxBufferSize(value uint32) Option {
	return func(srv *Server) error {
		srv.maxBufferSize = value
		return nil
	}
}

// WithMaxMessageSize sets the limit on the size of messages that may be
// accepted. (default: 64Mb)
func WithMaxMessageSize(value uint32) Option {
	return func(srv *Server) error {
		srv.maxMessageSize = value
		return nil
	}
}

// WithMaxChunkCount sets the limit on the number of message chunks that may
// be accepted. (default: 4096)
func WithMaxChunkCount(value uint32) Option {
	return func(srv *Server) error {
		srv.maxChunkCount = value
		return nil
	}
}

// WithMaxOperationsPerRequest sets the limit on the number of operations in
// one request. Zero means no limit. (default: no limit)
func WithMaxOperationsPerRequest(value uint32) Option {
	return func(srv *Server) error {
		srv.maxOperationsPerRequest = value
		return nil
	}
}

// WithMaxWorkerThreads sets the number of worker threads that may be
// created. (default: 4)
func WithMaxWorkerThreads(value int) Option {
	return func(srv *Server) error {
		srv.maxWorkerThreads = value
		return nil
	}
}

// WithSessionTimeouts sets the bounds that a requested session timeout is
// clamped into. (default: 10s, 1h)
func WithSessionTimeouts(min, max time.Duration) Option {
	return func(srv *Server) error {
		srv.minSessionTimeout = float64(min.Milliseconds())
		srv.maxSessionTimeout = float64(max.Milliseconds())
		return nil
	}
}

// WithMaxPublishRequestWait sets the upper bound on how long a queued
// publish request may wait before being answered with BadTimeout.
// (default: 1m)
func WithMaxPublishRequestWait(value time.Duration) Option {
	return func(srv *Server) error {
		srv.maxPublishRequestWait = value
		return nil
	}
}

// WithNodeService sets the address space behind Read, Write and the
// delegated services. (default: every node unknown)
func WithNodeService(value NodeService) Option {
	return func(srv *Server) error {
		srv.nodeService = value
		return nil
	}
}

// WithServerDiagnostics sets whether to periodically log the sizes of the
// channel, session and subscription arenas. (default: false)
func WithServerDiagnostics(value bool) Option {
	return func(srv *Server) error {
		srv.serverDiagnostics = value
		return nil
	}
}

// WithSecurityPolicyNone sets whether to offer an endpoint with no message
// security. (default: false)
func WithSecurityPolicyNone(value bool) Option {
	return func(srv *Server) error {
		srv.allowSecurityPolicyNone = value
		return nil
	}
}

// WithAnonymousIdentity sets whether to allow anonymous identity.
// (default: false)
func WithAnonymousIdentity(value bool) Option {
	return func(srv *Server) error {
		if value {
			srv.anonymousIdentityAuthenticator = AuthenticateAnonymousIdentityFunc(
				func(userIdentity ua.AnonymousIdentity, applicationURI string, endpointURL string) error {
					return nil
				})
		} else {
			srv.anonymousIdentityAuthenticator = nil
		}
		return nil
	}
}

// WithAnonymousIdentityAuthenticator sets the authenticator for
// AnonymousIdentity. (default: none)
func WithAnonymousIdentityAuthenticator(authenticator AnonymousIdentityAuthenticator) Option {
	return func(srv *Server) error {
		srv.anonymousIdentityAuthenticator = authenticator
		return nil
	}
}

// WithAuthenticateAnonymousIdentityFunc sets the function to authenticate
// AnonymousIdentity. (default: none)
func WithAuthenticateAnonymousIdentityFunc(f AuthenticateAnonymousIdentityFunc) Option {
	return func(srv *Server) error {
		srv.anonymousIdentityAuthenticator = f
		return nil
	}
}

// WithUserNameIdentityAuthenticator sets the authenticator for
// UserNameIdentity. (default: none)
func WithUserNameIdentityAuthenticator(authenticator UserNameIdentityAuthenticator) Option {
	return func(srv *Server) error {
		srv.userNameIdentityAuthenticator = authenticator
		return nil
	}
}

// WithAuthenticateUserNameIdentityFunc sets the function to authenticate
// UserNameIdentity. (default: none)
func WithAuthenticateUserNameIdentityFunc(f AuthenticateUserNameIdentityFunc) Option {
	return func(srv *Server) error {
		srv.userNameIdentityAuthenticator = f
		return nil
	}
}

// WithX509IdentityAuthenticator sets the authenticator for X509Identity.
// (default: none)
func WithX509IdentityAuthenticator(authenticator X509IdentityAuthenticator) Option {
	return func(srv *Server) error {
		srv.x509IdentityAuthenticator = authenticator
		return nil
	}
}

// WithAuthenticateX509IdentityFunc sets the function to authenticate
// X509Identity. (default: none)
func WithAuthenticateX509IdentityFunc(f AuthenticateX509IdentityFunc) Option {
	return func(srv *Server) error {
		srv.x509IdentityAuthenticator = f
		return nil
	}
}

// WithIssuedIdentityAuthenticator sets the authenticator for IssuedIdentity.
// (default: none)
func WithIssuedIdentityAuthenticator(authenticator IssuedIdentityAuthenticator) Option {
	return func(srv *Server) error {
		srv.issuedIdentityAuthenticator = authenticator
		return nil
	}
}

// WithAuthenticateIssuedIdentityFunc sets the function to authenticate
// IssuedIdentity. (default: none)
func WithAuthenticateIssuedIdentityFunc(f AuthenticateIssuedIdentityFunc) Option {
	return func(srv *Server) error {
		srv.issuedIdentityAuthenticator = f
		return nil
	}
}

// WithTrustedCertificatesPath sets the file path of the trusted client
// certificates, in PEM or DER format. (default: no trust list, clients with
// certificates are rejected unless verification is skipped)
func WithTrustedCertificatesPath(path string) Option {
	return func(srv *Server) error {
		srv.trustedCertsPath = path
		return nil
	}
}

// WithInsecureSkipVerify skips verification of the client certificate.
// (default: client certificate is verified)
func WithInsecureSkipVerify() Option {
	return func(srv *Server) error {
		srv.suppressCertificateTimeInvalid = true
		srv.suppressCertificateChainIncomplete = true
		return nil
	}
}
