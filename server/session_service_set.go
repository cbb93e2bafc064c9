package server

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/binary"
	"io"
	"net/url"
	"time"

	"github.com/djherbis/buffer"

	"github.com/uaforge/uaserve/ua"
)

// sessionSignatureAlgorithm returns the signature uri a policy uses for the
// application signatures exchanged by CreateSession and ActivateSession.
func sessionSignatureAlgorithm(policyURI string) string {
	switch policyURI {
	case ua.SecurityPolicyURIBasic128Rsa15, ua.SecurityPolicyURIBasic256:
		return ua.RsaSha1Signature
	case ua.SecurityPolicyURIBasic256Sha256, ua.SecurityPolicyURIAes128Sha256RsaOaep:
		return ua.RsaSha256Signature
	case ua.SecurityPolicyURIAes256Sha256RsaPss:
		return ua.RsaPssSha256Signature
	}
	return ""
}

// identityKeyWrapAlgorithm returns the encryption uri a client must use for
// the secret of an identity token under the policy.
func identityKeyWrapAlgorithm(policyURI string) string {
	switch policyURI {
	case ua.SecurityPolicyURIBasic128Rsa15:
		return ua.RsaV15KeyWrap
	case ua.SecurityPolicyURIBasic256, ua.SecurityPolicyURIBasic256Sha256, ua.SecurityPolicyURIAes128Sha256RsaOaep:
		return ua.RsaOaepKeyWrap
	case ua.SecurityPolicyURIAes256Sha256RsaPss:
		return ua.RsaOaepSha256KeyWrap
	}
	return ""
}

// findTokenPolicy returns the endpoint token policy matching type and id.
func findTokenPolicy(policies []ua.UserTokenPolicy, tokenType ua.UserTokenType, policyID string) (ua.UserTokenPolicy, bool) {
	for _, t := range policies {
		if t.TokenType == tokenType && t.PolicyID == policyID {
			return t, true
		}
	}
	return ua.UserTokenPolicy{}, false
}

// decryptIdentitySecret recovers the secret of an encrypted identity token:
// block-wise RSA decrypt of the cipher text, a uint32 length prefix, then
// the secret with the 32-byte server nonce appended. Returns Good and the
// secret with the nonce stripped.
func (srv *Server) decryptIdentitySecret(secPolicy ua.SecurityPolicy, cipherBytes []byte) ([]byte, ua.StatusCode) {
	blockSize := srv.localPrivateKey.Size()
	if len(cipherBytes) == 0 || len(cipherBytes)%blockSize != 0 {
		return nil, ua.BadIdentityTokenInvalid
	}
	plainBuf := buffer.NewPartitionAt(bufferPool)
	defer plainBuf.Reset()
	cipherText := make([]byte, blockSize)
	for i := 0; i < len(cipherBytes); i += blockSize {
		copy(cipherText, cipherBytes[i:])
		plainText, err := secPolicy.RSADecrypt(srv.localPrivateKey, cipherText)
		if err != nil {
			return nil, ua.BadIdentityTokenInvalid
		}
		if _, err := plainBuf.Write(plainText); err != nil {
			return nil, ua.BadIdentityTokenInvalid
		}
	}
	var plainLength uint32
	if err := binary.Read(plainBuf, binary.LittleEndian, &plainLength); err != nil {
		return nil, ua.BadIdentityTokenInvalid
	}
	if plainLength < nonceLength || plainLength > nonceLength+64 {
		return nil, ua.BadIdentityTokenRejected
	}
	secret := make([]byte, plainLength-nonceLength)
	if _, err := io.ReadFull(plainBuf, secret); err != nil {
		return nil, ua.BadIdentityTokenInvalid
	}
	return secret, ua.Good
}

// handleCreateSession creates a session in the created-but-not-activated
// state and returns the server's nonce, signature and endpoint table.
func (srv *Server) handleCreateSession(ch *serverSecureChannel, requestid uint32, req *ua.CreateSessionRequest) error {
	if ch.IsDiscoveryOnly() {
		ch.Abort(ua.BadSecurityPolicyRejected, "")
		return nil
	}

	// the requested endpoint must name a host the server certificate is
	// valid for
	if cert := srv.LocalCertificate(); len(cert) > 0 {
		valid := false
		if crt, err := x509.ParseCertificate(cert); err == nil {
			if u, err := url.Parse(req.EndpointURL); err == nil {
				if err := crt.VerifyHostname(u.Hostname()); err == nil {
					valid = true
				}
			}
		}
		if !valid {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadCertificateHostNameInvalid)
		}
	}

	if ch.SecurityPolicyURI() != ua.SecurityPolicyURINone {
		// the client certificate must carry the claimed application uri
		crt, err := x509.ParseCertificate([]byte(req.ClientCertificate))
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadCertificateInvalid)
		}
		valid := false
		for _, u := range crt.URIs {
			if u.String() == req.ClientDescription.ApplicationURI {
				valid = true
				break
			}
		}
		if !valid {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadCertificateURIInvalid)
		}
		if len(req.ClientNonce) < nonceLength {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadNonceInvalid)
		}
	}

	// sign the client certificate and nonce so the client can prove it is
	// talking to the key holder
	var serverSignature ua.SignatureData
	if ch.SecurityPolicyURI() != ua.SecurityPolicyURINone {
		data := make([]byte, 0, len(req.ClientCertificate)+len(req.ClientNonce))
		data = append(data, []byte(req.ClientCertificate)...)
		data = append(data, []byte(req.ClientNonce)...)
		sig, err := ch.securityPolicy.RSASign(srv.localPrivateKey, data)
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadSecurityChecksFailed)
		}
		serverSignature = ua.SignatureData{
			Signature: ua.ByteString(sig),
			Algorithm: sessionSignatureAlgorithm(ch.SecurityPolicyURI()),
		}
	}

	sessionName := req.SessionName
	if len(sessionName) == 0 {
		sessionName = req.ClientDescription.ApplicationURI
	}

	revisedTimeout := req.RequestedSessionTimeout
	if revisedTimeout > srv.maxSessionTimeout {
		revisedTimeout = srv.maxSessionTimeout
	} else if revisedTimeout < srv.minSessionTimeout {
		revisedTimeout = srv.minSessionTimeout
	}

	session := newSession(
		srv,
		sessionName,
		time.Duration(revisedTimeout)*time.Millisecond,
		req.ClientDescription,
		req.ServerURI,
		req.EndpointURL,
		req.ClientNonce,
		req.ClientCertificate,
		ch.SecurityPolicyURI(),
		ch.SecurityMode(),
	)
	if err := srv.sessionManager.Add(session); err != nil {
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadTooManySessions)
	}

	return ch.Write(
		&ua.CreateSessionResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			SessionID:             session.SessionID(),
			AuthenticationToken:   session.AuthenticationToken(),
			RevisedSessionTimeout: revisedTimeout,
			ServerNonce:           session.SessionNonce(),
			ServerCertificate:     ua.ByteString(srv.LocalCertificate()),
			ServerEndpoints:       srv.Endpoints(),
			ServerSignature:       serverSignature,
			MaxRequestMessageSize: srv.maxMessageSize,
		},
		requestid,
	)
}

// handleActivateSession verifies the client signature and identity token,
// binds the session to the channel and activates it. A session created on a
// closed channel may reattach here, but only over a channel with the same
// security configuration.
func (srv *Server) handleActivateSession(ch *serverSecureChannel, requestid uint32, req *ua.ActivateSessionRequest) error {
	if ch.IsDiscoveryOnly() {
		ch.Abort(ua.BadSecurityPolicyRejected, "")
		return nil
	}
	session, ok := srv.sessionManager.Get(req.AuthenticationToken)
	if !ok {
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadSessionIDInvalid)
	}
	if session.SecurityPolicyURI() != ch.SecurityPolicyURI() || session.SecurityMode() != ch.SecurityMode() {
		session.incrementErrorCount()
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadSecurityPolicyRejected)
	}

	// the client proves key possession by signing the server certificate
	// and session nonce
	if ch.SecurityPolicyURI() != ua.SecurityPolicyURINone {
		data := make([]byte, 0, len(srv.LocalCertificate())+len(session.SessionNonce()))
		data = append(data, srv.LocalCertificate()...)
		data = append(data, []byte(session.SessionNonce())...)
		if err := ch.securityPolicy.RSAVerify(ch.RemotePublicKey(), data, []byte(req.ClientSignature.Signature)); err != nil {
			session.incrementErrorCount()
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadApplicationSignatureInvalid)
		}
	}

	ep, ok := srv.endpointFor(ch.SecurityPolicyURI(), ch.SecurityMode())
	if !ok {
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
	}

	// validate the identity token against the endpoint's token policies
	var userIdentity any
	switch token := req.UserIdentityToken.(type) {

	case ua.AnonymousIdentityToken:
		if _, ok := findTokenPolicy(ep.UserIdentityTokens, ua.UserTokenTypeAnonymous, token.PolicyID); !ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		userIdentity = ua.AnonymousIdentity{}

	case ua.UserNameIdentityToken:
		tokenPolicy, ok := findTokenPolicy(ep.UserIdentityTokens, ua.UserTokenTypeUserName, token.PolicyID)
		if !ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		if len(token.UserName) == 0 {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		secPolicyURI := tokenPolicy.SecurityPolicyURI
		if secPolicyURI == "" {
			secPolicyURI = ch.SecurityPolicyURI()
		}
		if secPolicyURI == ua.SecurityPolicyURINone {
			userIdentity = ua.UserNameIdentity{UserName: token.UserName, Password: string(token.Password)}
			break
		}
		if token.EncryptionAlgorithm != identityKeyWrapAlgorithm(secPolicyURI) {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		secPolicy, err := ua.SecurityPolicyForURI(secPolicyURI)
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		password, code := srv.decryptIdentitySecret(secPolicy, []byte(token.Password))
		if code != ua.Good {
			return srv.serviceFault(ch, requestid, req.RequestHandle, code)
		}
		userIdentity = ua.UserNameIdentity{UserName: token.UserName, Password: string(password)}

	case ua.X509IdentityToken:
		tokenPolicy, ok := findTokenPolicy(ep.UserIdentityTokens, ua.UserTokenTypeCertificate, token.PolicyID)
		if !ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		crt, err := x509.ParseCertificate([]byte(token.CertificateData))
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		pub, ok := crt.PublicKey.(*rsa.PublicKey)
		if !ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		secPolicyURI := tokenPolicy.SecurityPolicyURI
		if secPolicyURI == "" {
			secPolicyURI = ch.SecurityPolicyURI()
		}
		secPolicy, err := ua.SecurityPolicyForURI(secPolicyURI)
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		data := make([]byte, 0, len(srv.LocalCertificate())+len(session.SessionNonce()))
		data = append(data, srv.LocalCertificate()...)
		data = append(data, []byte(session.SessionNonce())...)
		if err := secPolicy.RSAVerify(pub, data, []byte(req.UserTokenSignature.Signature)); err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenRejected)
		}
		userIdentity = ua.X509Identity{Certificate: token.CertificateData}

	case ua.IssuedIdentityToken:
		tokenPolicy, ok := findTokenPolicy(ep.UserIdentityTokens, ua.UserTokenTypeIssuedToken, token.PolicyID)
		if !ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		if len(token.TokenData) == 0 {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		secPolicyURI := tokenPolicy.SecurityPolicyURI
		if secPolicyURI == "" {
			secPolicyURI = ch.SecurityPolicyURI()
		}
		if secPolicyURI == ua.SecurityPolicyURINone || token.EncryptionAlgorithm == "" {
			userIdentity = ua.IssuedIdentity{TokenData: token.TokenData}
			break
		}
		if token.EncryptionAlgorithm != identityKeyWrapAlgorithm(secPolicyURI) {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		secPolicy, err := ua.SecurityPolicyForURI(secPolicyURI)
		if err != nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
		}
		tokenData, code := srv.decryptIdentitySecret(secPolicy, []byte(token.TokenData))
		if code != ua.Good {
			return srv.serviceFault(ch, requestid, req.RequestHandle, code)
		}
		userIdentity = ua.IssuedIdentity{TokenData: ua.ByteString(tokenData)}

	default:
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenInvalid)
	}

	// hand the identity to the configured authenticator
	var authErr error
	switch id := userIdentity.(type) {
	case ua.AnonymousIdentity:
		if srv.anonymousIdentityAuthenticator == nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenRejected)
		}
		authErr = srv.anonymousIdentityAuthenticator.AuthenticateAnonymousIdentity(id, session.clientDescription.ApplicationURI, session.endpointURL)
	case ua.UserNameIdentity:
		if srv.userNameIdentityAuthenticator == nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenRejected)
		}
		authErr = srv.userNameIdentityAuthenticator.AuthenticateUserNameIdentity(id, session.clientDescription.ApplicationURI, session.endpointURL)
	case ua.X509Identity:
		if srv.x509IdentityAuthenticator == nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenRejected)
		}
		authErr = srv.x509IdentityAuthenticator.AuthenticateX509Identity(id, session.clientDescription.ApplicationURI, session.endpointURL)
	case ua.IssuedIdentity:
		if srv.issuedIdentityAuthenticator == nil {
			return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadIdentityTokenRejected)
		}
		authErr = srv.issuedIdentityAuthenticator.AuthenticateIssuedIdentity(id, session.clientDescription.ApplicationURI, session.endpointURL)
	}
	if authErr != nil {
		session.incrementErrorCount()
		if code, ok := authErr.(ua.StatusCode); ok {
			return srv.serviceFault(ch, requestid, req.RequestHandle, code)
		}
		return srv.serviceFault(ch, requestid, req.RequestHandle, ua.BadUserAccessDenied)
	}

	session.SetUserIdentity(userIdentity)
	session.SetSessionNonce(ua.ByteString(getNextNonce(nonceLength)))
	session.SetSecureChannelID(ch.ChannelID())
	session.SetLocaleIDs(req.LocaleIDs)
	session.setActivated()

	return ch.Write(
		&ua.ActivateSessionResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
			ServerNonce: session.SessionNonce(),
		},
		requestid,
	)
}

// handleCloseSession removes the session. Its subscriptions either die with
// it or detach for a later TransferSubscriptions.
func (srv *Server) handleCloseSession(ch *serverSecureChannel, requestid uint32, req *ua.CloseSessionRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	if req.DeleteSubscriptions {
		for _, s := range srv.subscriptionManager.GetBySession(session) {
			srv.subscriptionManager.Delete(s)
			s.Delete()
		}
	}
	srv.sessionManager.Delete(session)
	return ch.Write(
		&ua.CloseSessionResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
		},
		requestid,
	)
}

// handleCancel acknowledges the request. Requests are handled as they
// arrive, so there is never anything left to cancel.
func (srv *Server) handleCancel(ch *serverSecureChannel, requestid uint32, req *ua.CancelRequest) error {
	session, err := srv.sessionFromRequest(ch, requestid, req)
	if session == nil {
		return err
	}
	return ch.Write(
		&ua.CancelResponse{
			ResponseHeader: ua.ResponseHeader{
				Timestamp:     time.Now(),
				RequestHandle: req.RequestHandle,
			},
		},
		requestid,
	)
}
