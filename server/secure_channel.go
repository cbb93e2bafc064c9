package server

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/binary"
	"hash"
	"io"
	"math"
	mathrand "math/rand"
	"net"
	"reflect"
	"sync"
	"time"

	"github.com/djherbis/buffer"
	"github.com/rs/zerolog"

	"github.com/uaforge/uaserve/ua"
)

const handshakeTimeout = 10 * time.Second

var (
	channelIDLock sync.Mutex
	channelID     = mathrand.Uint32()
)

// getNextServerChannelID gets next channel id in sequence, skipping zero.
func getNextServerChannelID() uint32 {
	channelIDLock.Lock()
	defer channelIDLock.Unlock()
	if channelID == math.MaxUint32 {
		channelID = 0
	}
	channelID++
	return channelID
}

// serverSecureChannel implements the server side of a secure channel: one
// transport connection, the Hello/Acknowledge handshake, the
// OpenSecureChannel exchange with its two-slot token state, and the chunked,
// optionally signed and encrypted message stream.
type serverSecureChannel struct {
	sync.RWMutex
	srv       *Server
	conn      net.Conn
	channelID uint32
	ck        *chunker
	logger    zerolog.Logger
	trace     bool

	receivingSemaphore sync.Mutex
	sendingSemaphore   sync.Mutex

	receiveBuffer    []byte
	sendBuffer       []byte
	encryptionBuffer []byte

	securityPolicyURI string
	securityPolicy    ua.SecurityPolicy
	securityMode      ua.MessageSecurityMode
	discoveryOnly     bool

	localCertificate            []byte
	localPrivateKey             *rsa.PrivateKey
	remoteCertificate           []byte
	remoteCertificateThumbprint []byte
	remotePublicKey             *rsa.PublicKey

	asymLocalKeySize              int
	asymRemoteKeySize             int
	asymLocalPlainTextBlockSize   int
	asymRemotePlainTextBlockSize  int
	asymLocalCipherTextBlockSize  int
	asymRemoteCipherTextBlockSize int
	asymLocalSignatureSize        int
	asymRemoteSignatureSize       int

	tokenLock                  sync.RWMutex
	tokens                     tokenSet
	lastTokenID                uint32
	receivingToken             *channelToken
	sendingToken               *channelToken
	symSignHMAC                hash.Hash
	symVerifyHMAC              hash.Hash
	symEncryptingBlockCipher   cipher.Block
	symDecryptingBlockCipher   cipher.Block
	localInitializationVector  []byte
	remoteInitializationVector []byte

	closed   bool
	closedCh chan struct{}
}

// newServerSecureChannel initializes a new instance of the secure channel
// for the accepted connection.
func newServerSecureChannel(srv *Server, conn net.Conn, trace bool) *serverSecureChannel {
	id := getNextServerChannelID()
	ch := &serverSecureChannel{
		srv:              srv,
		conn:             conn,
		channelID:        id,
		ck:               newChunker(srv.maxBufferSize, srv.maxBufferSize, srv.maxMessageSize, srv.maxChunkCount),
		logger:           srv.logger.With().Uint32("channel_id", id).Logger(),
		trace:            trace,
		localCertificate: srv.localCertificate,
		localPrivateKey:  srv.localPrivateKey,
		receiveBuffer:    *(bytesPool.Get().(*[]byte)),
		sendBuffer:       *(bytesPool.Get().(*[]byte)),
		encryptionBuffer: *(bytesPool.Get().(*[]byte)),
		closedCh:         make(chan struct{}),
	}
	return ch
}

// ChannelID returns the channel id assigned at accept time.
func (ch *serverSecureChannel) ChannelID() uint32 {
	ch.RLock()
	defer ch.RUnlock()
	return ch.channelID
}

// SecurityMode returns the message security mode negotiated for the channel.
func (ch *serverSecureChannel) SecurityMode() ua.MessageSecurityMode {
	ch.RLock()
	defer ch.RUnlock()
	return ch.securityMode
}

// SecurityPolicyURI returns the security policy negotiated for the channel.
func (ch *serverSecureChannel) SecurityPolicyURI() string {
	ch.RLock()
	defer ch.RUnlock()
	return ch.securityPolicyURI
}

// LocalCertificate returns the server certificate in DER form.
func (ch *serverSecureChannel) LocalCertificate() []byte {
	return ch.localCertificate
}

// LocalPrivateKey returns the server private key.
func (ch *serverSecureChannel) LocalPrivateKey() *rsa.PrivateKey {
	return ch.localPrivateKey
}

// RemoteCertificate returns the client certificate in DER form.
func (ch *serverSecureChannel) RemoteCertificate() []byte {
	ch.RLock()
	defer ch.RUnlock()
	return ch.remoteCertificate
}

// RemotePublicKey returns the RSA public key of the client certificate, or
// nil on an unsecured channel.
func (ch *serverSecureChannel) RemotePublicKey() *rsa.PublicKey {
	ch.RLock()
	defer ch.RUnlock()
	return ch.remotePublicKey
}

// IsDiscoveryOnly reports whether the channel was opened with the None
// policy without a matching endpoint, which restricts it to the discovery
// services.
func (ch *serverSecureChannel) IsDiscoveryOnly() bool {
	ch.RLock()
	defer ch.RUnlock()
	return ch.discoveryOnly
}

// NamespaceURIs returns the table used when encoding and decoding
// ExpandedNodeIDs on the channel.
func (ch *serverSecureChannel) NamespaceURIs() []string {
	return ch.srv.NamespaceURIs()
}

// Open runs the transport and security handshake: Hello/Acknowledge, then
// the first OpenSecureChannelRequest, which must be of type Issue. Errors
// are ua.StatusCode values suitable for an ERR frame.
func (ch *serverSecureChannel) Open() error {
	ch.conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	if err := ch.handshake(); err != nil {
		return err
	}

	req, requestid, err := ch.readRequest()
	if err != nil {
		return err
	}
	opn, ok := req.(*ua.OpenSecureChannelRequest)
	if !ok {
		return ua.BadDecodingError
	}
	if err := ch.open(requestid, opn); err != nil {
		return err
	}
	ch.conn.SetReadDeadline(time.Time{})
	return nil
}

// handshake reads the client Hello, clamps the transport limits and answers
// with an Acknowledge.
func (ch *serverSecureChannel) handshake() error {
	count, err := ch.read(ch.receiveBuffer)
	if err != nil {
		return ua.BadDecodingError
	}
	var stream = bytes.NewReader(ch.receiveBuffer[:count])
	var decoder = ua.NewBinaryDecoder(stream, ch)

	var messageType, messageLength uint32
	if err := decoder.ReadUInt32(&messageType); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadUInt32(&messageLength); err != nil {
		return ua.BadDecodingError
	}
	if messageType != ua.MessageTypeHello || count != int(messageLength) {
		return ua.BadDecodingError
	}

	var remoteProtocolVersion, remoteReceiveBufferSize, remoteSendBufferSize, remoteMaxMessageSize, remoteMaxChunkCount uint32
	var remoteEndpointURL string
	if err := decoder.ReadUInt32(&remoteProtocolVersion); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadUInt32(&remoteReceiveBufferSize); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadUInt32(&remoteSendBufferSize); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadUInt32(&remoteMaxMessageSize); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadUInt32(&remoteMaxChunkCount); err != nil {
		return ua.BadDecodingError
	}
	if err := decoder.ReadString(&remoteEndpointURL); err != nil {
		return ua.BadDecodingError
	}
	if remoteProtocolVersion < protocolVersion {
		return ua.BadProtocolVersionUnsupported
	}

	ch.ck.negotiate(remoteReceiveBufferSize, remoteSendBufferSize, remoteMaxMessageSize, remoteMaxChunkCount)

	var writer = ua.NewWriter(ch.sendBuffer)
	var encoder = ua.NewBinaryEncoder(writer, ch)
	encoder.WriteUInt32(ua.MessageTypeAck)
	encoder.WriteUInt32(28)
	encoder.WriteUInt32(protocolVersion)
	encoder.WriteUInt32(ch.ck.receiveBufferSize)
	encoder.WriteUInt32(ch.ck.sendBufferSize)
	encoder.WriteUInt32(ch.ck.maxMessageSize)
	encoder.WriteUInt32(ch.ck.maxChunkCount)
	if _, err := ch.write(writer.Bytes()); err != nil {
		return ua.BadSecureChannelClosed
	}
	return nil
}

// open validates the first OpenSecureChannelRequest and issues the initial
// security token.
func (ch *serverSecureChannel) open(requestid uint32, req *ua.OpenSecureChannelRequest) error {
	if req.RequestType != ua.SecurityTokenRequestTypeIssue {
		return ua.BadSecurityChecksFailed
	}
	switch req.SecurityMode {
	case ua.MessageSecurityModeNone:
		if ch.securityPolicyURI != ua.SecurityPolicyURINone {
			return ua.BadSecurityModeRejected
		}
	case ua.MessageSecurityModeSign, ua.MessageSecurityModeSignAndEncrypt:
		if ch.securityPolicyURI == ua.SecurityPolicyURINone {
			return ua.BadSecurityModeRejected
		}
		if len(req.ClientNonce) < ch.securityPolicy.NonceSize() {
			return ua.BadNonceInvalid
		}
		crt, err := x509.ParseCertificate(ch.RemoteCertificate())
		if err != nil {
			return ua.BadCertificateInvalid
		}
		if err := validateClientCertificate(crt, ch.srv.trustedCertsPath,
			ch.srv.suppressCertificateTimeInvalid, ch.srv.suppressCertificateChainIncomplete); err != nil {
			ch.logger.Error().Err(err).Msg("client certificate rejected")
			return err
		}
	default:
		return ua.BadSecurityModeRejected
	}

	if !ch.srv.hasEndpoint(ch.securityPolicyURI, req.SecurityMode) {
		if ch.securityPolicyURI != ua.SecurityPolicyURINone {
			return ua.BadSecurityPolicyRejected
		}
		// A None channel without a matching endpoint serves discovery only.
		ch.Lock()
		ch.discoveryOnly = true
		ch.Unlock()
	}

	ch.Lock()
	ch.securityMode = req.SecurityMode
	ch.Unlock()

	token := ch.mintToken(req.RequestedLifetime, []byte(req.ClientNonce))
	ch.tokenLock.Lock()
	ch.tokens.install(token)
	ch.tokenLock.Unlock()

	res := &ua.OpenSecureChannelResponse{
		ResponseHeader: ua.ResponseHeader{
			Timestamp:     time.Now(),
			RequestHandle: req.RequestHandle,
		},
		ServerProtocolVersion: protocolVersion,
		SecurityToken: ua.ChannelSecurityToken{
			ChannelID:       ch.channelID,
			TokenID:         token.tokenID,
			CreatedAt:       token.createdAt,
			RevisedLifetime: uint32(token.lifetime / time.Millisecond),
		},
		ServerNonce: ua.ByteString(token.localNonce),
	}
	if err := ch.Write(res, requestid); err != nil {
		return ua.BadSecureChannelClosed
	}
	ch.logger.Info().
		Str("policy", ch.securityPolicyURI).
		Str("mode", ch.securityMode.String()).
		Str("remote", ch.conn.RemoteAddr().String()).
		Msg("secure channel opened")
	return nil
}

// handleOpenSecureChannel renews the security token. A second Issue is a
// protocol violation and renewing after the current token expired requires
// a fresh channel.
func (ch *serverSecureChannel) handleOpenSecureChannel(requestid uint32, req *ua.OpenSecureChannelRequest) error {
	if req.RequestType == ua.SecurityTokenRequestTypeIssue {
		return ua.BadSecurityChecksFailed
	}
	ch.tokenLock.Lock()
	current := ch.tokens.current
	if current == nil || current.expired(time.Now()) {
		ch.tokenLock.Unlock()
		return ua.BadSecureChannelIDInvalid
	}
	token := ch.mintToken(req.RequestedLifetime, []byte(req.ClientNonce))
	ch.tokens.install(token)
	ch.tokenLock.Unlock()

	res := &ua.OpenSecureChannelResponse{
		ResponseHeader: ua.ResponseHeader{
			Timestamp:     time.Now(),
			RequestHandle: req.RequestHandle,
		},
		ServerProtocolVersion: protocolVersion,
		SecurityToken: ua.ChannelSecurityToken{
			ChannelID:       ch.channelID,
			TokenID:         token.tokenID,
			CreatedAt:       token.createdAt,
			RevisedLifetime: uint32(token.lifetime / time.Millisecond),
		},
		ServerNonce: ua.ByteString(token.localNonce),
	}
	err := ch.Write(res, requestid)
	if err == nil {
		ch.logger.Debug().Uint32("token_id", token.tokenID).Msg("security token renewed")
	}
	return err
}

// mintToken issues the next security token and derives its key material.
// The requested lifetime is clamped into [minTokenLifetime, maxTokenLifetime].
func (ch *serverSecureChannel) mintToken(requestedLifetime uint32, remoteNonce []byte) *channelToken {
	lifetime := time.Duration(requestedLifetime) * time.Millisecond
	if lifetime == 0 {
		lifetime = defaultTokenLifetime
	}
	if lifetime < minTokenLifetime {
		lifetime = minTokenLifetime
	}
	if lifetime > maxTokenLifetime {
		lifetime = maxTokenLifetime
	}
	t := &channelToken{
		tokenID:     ch.getNextTokenID(),
		createdAt:   time.Now(),
		lifetime:    lifetime,
		remoteNonce: remoteNonce,
	}
	if ch.securityMode != ua.MessageSecurityModeNone {
		t.localNonce = getNextNonce(ch.securityPolicy.NonceSize())
		t.deriveKeys(ch.securityPolicy)
	} else {
		t.localNonce = []byte{}
	}
	return t
}

// getNextTokenID gets next token id in sequence, skipping zero.
func (ch *serverSecureChannel) getNextTokenID() uint32 {
	if ch.lastTokenID == math.MaxUint32 {
		ch.lastTokenID = 0
	}
	ch.lastTokenID++
	return ch.lastTokenID
}

// Abort writes an ERR frame carrying the reason and closes the channel.
func (ch *serverSecureChannel) Abort(reason ua.StatusCode, message string) error {
	ch.sendingSemaphore.Lock()
	var writer = ua.NewWriter(ch.sendBuffer)
	var encoder = ua.NewBinaryEncoder(writer, ch)
	encoder.WriteUInt32(ua.MessageTypeError)
	encoder.WriteUInt32(uint32(16 + len(message)))
	encoder.WriteUInt32(uint32(reason))
	encoder.WriteString(message)
	ch.write(writer.Bytes())
	ch.sendingSemaphore.Unlock()
	ch.logger.Error().Str("status", reason.Error()).Msg("secure channel aborted")
	return ch.Close()
}

// Close closes the transport connection. It is idempotent and never
// destroys sessions; they detach and remain reattachable until their own
// timeout.
func (ch *serverSecureChannel) Close() error {
	ch.Lock()
	if ch.closed {
		ch.Unlock()
		return nil
	}
	ch.closed = true
	close(ch.closedCh)
	ch.Unlock()
	ch.conn.Close()
	ch.logger.Info().Msg("secure channel closed")
	return nil
}

func (ch *serverSecureChannel) isClosed() bool {
	ch.RLock()
	defer ch.RUnlock()
	return ch.closed
}

// release returns the pooled buffers. Callers must ensure the read and
// write loops have exited.
func (ch *serverSecureChannel) release() {
	bytesPool.Put(&ch.receiveBuffer)
	bytesPool.Put(&ch.sendBuffer)
	bytesPool.Put(&ch.encryptionBuffer)
}

// Write encodes and sends the service response with the given request id.
func (ch *serverSecureChannel) Write(res ua.ServiceResponse, id uint32) error {
	if ch.trace {
		ch.logger.Debug().
			Str("service", reflect.TypeOf(res).Elem().Name()).
			Uint32("request_handle", res.Header().RequestHandle).
			Str("status", res.Header().ServiceResult.Error()).
			Msg("send")
	}
	switch res := res.(type) {
	case *ua.OpenSecureChannelResponse:
		return ch.sendOpenSecureChannelResponse(res, id)
	default:
		return ch.sendServiceResponse(res, id)
	}
}

// sendOpenSecureChannelResponse sends the response to an open or renew
// request using asymmetric security.
func (ch *serverSecureChannel) sendOpenSecureChannelResponse(res *ua.OpenSecureChannelResponse, id uint32) error {
	ch.sendingSemaphore.Lock()
	defer ch.sendingSemaphore.Unlock()
	var bodyStream = buffer.NewPartitionAt(bufferPool)
	defer bodyStream.Reset()
	var bodyEncoder = ua.NewBinaryEncoder(bodyStream, ch)

	if err := bodyEncoder.WriteNodeID(ua.ObjectIDOpenSecureChannelResponseEncodingDefaultBinary); err != nil {
		return ua.BadEncodingError
	}
	if err := bodyEncoder.Encode(res); err != nil {
		return ua.BadEncodingError
	}
	if err := ch.ck.checkResponseSize(bodyStream.Len()); err != nil {
		return err
	}

	secured := ch.securityMode != ua.MessageSecurityModeNone

	var chunkCount int
	var bodyCount = int(bodyStream.Len())
	for bodyCount > 0 {
		chunkCount++
		if err := ch.ck.acceptChunkCount(chunkCount); err != nil {
			return err
		}

		var plainHeaderSize int
		var plan chunkPlan
		if secured {
			plainHeaderSize = 16 + len(ch.securityPolicyURI) + 28 + len(ch.localCertificate)
			plan = ch.ck.planAsymmetricChunk(bodyCount, plainHeaderSize, ch.asymLocalSignatureSize, ch.asymRemotePlainTextBlockSize, ch.asymRemoteCipherTextBlockSize)
		} else {
			plainHeaderSize = 16 + len(ch.securityPolicyURI) + 8
			plan = ch.ck.planPlainChunk(bodyCount, plainHeaderSize, 0)
		}

		var stream = ua.NewWriter(ch.sendBuffer)
		var encoder = ua.NewBinaryEncoder(stream, ch)

		// message header
		encoder.WriteUInt32(ua.MessageTypeOpenFinal)
		encoder.WriteUInt32(uint32(plan.chunkSize))
		encoder.WriteUInt32(ch.channelID)

		// asymmetric security header
		encoder.WriteString(ch.securityPolicyURI)
		if secured {
			encoder.WriteByteArray(ch.localCertificate)
			thumbprint := sha1.Sum(ch.remoteCertificate)
			encoder.WriteByteArray(thumbprint[:])
		} else {
			encoder.WriteByteArray(nil)
			encoder.WriteByteArray(nil)
		}
		if plainHeaderSize != stream.Len() {
			return ua.BadEncodingError
		}

		// sequence header
		encoder.WriteUInt32(ch.ck.nextSequenceNumber())
		encoder.WriteUInt32(id)

		// body
		if _, err := io.CopyN(stream, bodyStream, int64(plan.bodySize)); err != nil {
			return err
		}
		bodyCount -= plan.bodySize

		// padding
		if secured {
			paddingByte := byte(plan.paddingSize & 0xFF)
			encoder.WriteByte(paddingByte)
			for i := 0; i < plan.paddingSize; i++ {
				encoder.WriteByte(paddingByte)
			}
			if plan.paddingHeaderSize == 2 {
				encoder.WriteByte(byte((plan.paddingSize >> 8) & 0xFF))
			}
		}

		if bodyCount > 0 {
			return ua.BadEncodingError
		}

		if !secured {
			if stream.Len() != plan.chunkSize {
				return ua.BadEncodingError
			}
			if _, err := ch.write(stream.Bytes()); err != nil {
				return err
			}
			continue
		}

		// sign
		signature, err := ch.securityPolicy.RSASign(ch.localPrivateKey, stream.Bytes())
		if err != nil {
			return err
		}
		if len(signature) != ch.asymLocalSignatureSize {
			return ua.BadEncodingError
		}
		if _, err := stream.Write(signature); err != nil {
			return err
		}

		// encrypt with the remote public key, block by block
		plaintextLen := stream.Len()
		copy(ch.encryptionBuffer, stream.Bytes()[:plainHeaderSize])
		plainText := make([]byte, ch.asymRemotePlainTextBlockSize)
		jj := plainHeaderSize
		for ii := plainHeaderSize; ii < plaintextLen; ii += ch.asymRemotePlainTextBlockSize {
			copy(plainText, stream.Bytes()[ii:])
			cipherText, err := ch.securityPolicy.RSAEncrypt(ch.remotePublicKey, plainText)
			if err != nil {
				return err
			}
			if len(cipherText) != ch.asymRemoteCipherTextBlockSize {
				return ua.BadEncodingError
			}
			copy(ch.encryptionBuffer[jj:], cipherText)
			jj += ch.asymRemoteCipherTextBlockSize
		}
		if jj != plan.chunkSize {
			return ua.BadEncodingError
		}
		if _, err := ch.write(ch.encryptionBuffer[:plan.chunkSize]); err != nil {
			return err
		}
	}
	return nil
}

// sendServiceResponse encodes the response body, splits it into MSGC/MSGF
// chunks sized by the chunker, and signs/encrypts each chunk under the
// current security token.
func (ch *serverSecureChannel) sendServiceResponse(response ua.ServiceResponse, id uint32) error {
	ch.sendingSemaphore.Lock()
	defer ch.sendingSemaphore.Unlock()
	var bodyStream = buffer.NewPartitionAt(bufferPool)
	defer bodyStream.Reset()
	var bodyEncoder = ua.NewBinaryEncoder(bodyStream, ch)

	encodingID, ok := ua.FindBinaryEncodingIDForType(reflect.TypeOf(response).Elem())
	if !ok {
		return ua.BadEncodingError
	}
	if err := bodyEncoder.WriteNodeID(encodingID.NodeID); err != nil {
		return ua.BadEncodingError
	}
	if err := bodyEncoder.Encode(response); err != nil {
		return ua.BadEncodingError
	}
	if err := ch.ck.checkResponseSize(bodyStream.Len()); err != nil {
		return err
	}

	// snapshot the sending security state
	ch.tokenLock.RLock()
	token := ch.sendingToken
	signHMAC := ch.symSignHMAC
	encryptingCipher := ch.symEncryptingBlockCipher
	localIV := ch.localInitializationVector
	ch.tokenLock.RUnlock()
	if token == nil {
		return ua.BadSecureChannelTokenUnknown
	}

	mode := ch.SecurityMode()
	signatureSize := 0
	if mode != ua.MessageSecurityModeNone {
		signatureSize = ch.securityPolicy.SymSignatureSize()
	}

	var chunkCount int
	var bodyCount = int(bodyStream.Len())
	for bodyCount > 0 {
		chunkCount++
		if err := ch.ck.acceptChunkCount(chunkCount); err != nil {
			return err
		}

		const plainHeaderSize = 16
		var plan chunkPlan
		if mode == ua.MessageSecurityModeSignAndEncrypt {
			plan = ch.ck.planSymmetricChunk(bodyCount, plainHeaderSize, signatureSize, ch.securityPolicy.SymEncryptionBlockSize())
		} else {
			plan = ch.ck.planPlainChunk(bodyCount, plainHeaderSize, signatureSize)
		}

		var stream = ua.NewWriter(ch.sendBuffer)
		var encoder = ua.NewBinaryEncoder(stream, ch)

		// message header
		if bodyCount > plan.bodySize {
			encoder.WriteUInt32(ua.MessageTypeChunk)
		} else {
			encoder.WriteUInt32(ua.MessageTypeFinal)
		}
		encoder.WriteUInt32(uint32(plan.chunkSize))
		encoder.WriteUInt32(ch.channelID)

		// symmetric security header
		encoder.WriteUInt32(token.tokenID)
		if plainHeaderSize != stream.Len() {
			return ua.BadEncodingError
		}

		// sequence header
		encoder.WriteUInt32(ch.ck.nextSequenceNumber())
		encoder.WriteUInt32(id)

		// body
		if _, err := io.CopyN(stream, bodyStream, int64(plan.bodySize)); err != nil {
			return err
		}
		bodyCount -= plan.bodySize

		// padding
		if mode == ua.MessageSecurityModeSignAndEncrypt {
			paddingByte := byte(plan.paddingSize & 0xFF)
			encoder.WriteByte(paddingByte)
			for i := 0; i < plan.paddingSize; i++ {
				encoder.WriteByte(paddingByte)
			}
			if plan.paddingHeaderSize == 2 {
				encoder.WriteByte(byte((plan.paddingSize >> 8) & 0xFF))
			}
		}

		// sign
		if mode != ua.MessageSecurityModeNone {
			signature := symSign(signHMAC, stream.Bytes())
			if _, err := stream.Write(signature); err != nil {
				return err
			}
		}

		// encrypt
		if mode == ua.MessageSecurityModeSignAndEncrypt {
			symEncryptor := cipher.NewCBCEncrypter(encryptingCipher, localIV)
			symEncryptor.CryptBlocks(stream.Bytes()[plainHeaderSize:], stream.Bytes()[plainHeaderSize:])
		}

		if _, err := ch.write(stream.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// readRequest receives the next service request from the transport channel.
// Unknown service types are answered inline with a ServiceFault; aborted
// assemblies are discarded; both make the loop continue with the next
// message.
func (ch *serverSecureChannel) readRequest() (ua.ServiceRequest, uint32, error) {
	ch.receivingSemaphore.Lock()
	defer ch.receivingSemaphore.Unlock()
	for {
		req, id, err := ch.readMessage()
		if err != nil {
			return nil, 0, err
		}
		if req == nil {
			continue
		}
		return req, id, nil
	}
}

func (ch *serverSecureChannel) readMessage() (ua.ServiceRequest, uint32, error) {
	var id uint32
	var plainHeaderSize int
	var paddingHeaderSize int
	var bodySize int
	var paddingSize int
	var channelID uint32
	var tokenID uint32
	var bodyStream = buffer.NewPartitionAt(bufferPool)
	defer bodyStream.Reset()
	var bodyDecoder = ua.NewBinaryDecoder(bodyStream, ch)

	// read and assemble chunks
	var chunkCount int
	var isFinal bool

	for !isFinal {
		chunkCount++
		if err := ch.ck.acceptChunkCount(chunkCount); err != nil {
			return nil, 0, err
		}

		count, err := ch.read(ch.receiveBuffer)
		if err != nil || count == 0 {
			return nil, 0, ua.BadSecureChannelClosed
		}

		var stream = bytes.NewReader(ch.receiveBuffer[0:count])
		var decoder = ua.NewBinaryDecoder(stream, ch)

		var messageType uint32
		if err := decoder.ReadUInt32(&messageType); err != nil {
			return nil, 0, ua.BadDecodingError
		}
		var messageLength uint32
		if err := decoder.ReadUInt32(&messageLength); err != nil {
			return nil, 0, ua.BadDecodingError
		}
		if count != int(messageLength) {
			return nil, 0, ua.BadDecodingError
		}

		switch messageType {
		case ua.MessageTypeChunk, ua.MessageTypeFinal, ua.MessageTypeCloseFinal:
			// message header
			if err := decoder.ReadUInt32(&channelID); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if channelID != ch.channelID {
				return nil, 0, ua.BadTCPSecureChannelUnknown
			}

			// symmetric security header
			if err := decoder.ReadUInt32(&tokenID); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			verifyHMAC, decryptingCipher, remoteIV, err := ch.activateToken(tokenID)
			if err != nil {
				return nil, 0, err
			}

			plainHeaderSize = 16

			// decrypt
			if ch.securityMode == ua.MessageSecurityModeSignAndEncrypt {
				span := ch.receiveBuffer[plainHeaderSize:count]
				if len(span)%decryptingCipher.BlockSize() != 0 {
					return nil, 0, ua.BadSecurityChecksFailed
				}
				symDecryptor := cipher.NewCBCDecrypter(decryptingCipher, remoteIV)
				symDecryptor.CryptBlocks(span, span)
			}

			// verify
			if ch.securityMode != ua.MessageSecurityModeNone {
				sigEnd := int(messageLength)
				sigStart := sigEnd - ch.securityPolicy.SymSignatureSize()
				if sigStart < plainHeaderSize {
					return nil, 0, ua.BadSecurityChecksFailed
				}
				if err := symVerify(verifyHMAC, ch.receiveBuffer[:sigStart], ch.receiveBuffer[sigStart:sigEnd]); err != nil {
					return nil, 0, err
				}
			}

			// sequence header
			var sequenceNumber uint32
			if err := decoder.ReadUInt32(&sequenceNumber); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if err := ch.ck.acceptSequenceNumber(sequenceNumber); err != nil {
				return nil, 0, err
			}
			var requestID uint32
			if err := decoder.ReadUInt32(&requestID); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if chunkCount == 1 {
				id = requestID
			} else if requestID != id {
				return nil, 0, ua.BadSequenceNumberInvalid
			}

			// body
			signatureSize := 0
			if ch.securityMode != ua.MessageSecurityModeNone {
				signatureSize = ch.securityPolicy.SymSignatureSize()
			}
			if ch.securityMode == ua.MessageSecurityModeSignAndEncrypt {
				if ch.securityPolicy.SymEncryptionBlockSize() > 256 {
					paddingHeaderSize = 2
					start := int(messageLength) - signatureSize - paddingHeaderSize
					paddingSize = int(binary.LittleEndian.Uint16(ch.receiveBuffer[start : start+2]))
				} else {
					paddingHeaderSize = 1
					start := int(messageLength) - signatureSize - paddingHeaderSize
					paddingSize = int(ch.receiveBuffer[start])
				}
				bodySize = int(messageLength) - plainHeaderSize - sequenceHeaderSize - paddingSize - paddingHeaderSize - signatureSize
			} else {
				bodySize = int(messageLength) - plainHeaderSize - sequenceHeaderSize - signatureSize
			}
			if bodySize < 0 {
				return nil, 0, ua.BadDecodingError
			}

			m := plainHeaderSize + sequenceHeaderSize
			n := m + bodySize
			if _, err := bodyStream.Write(ch.receiveBuffer[m:n]); err != nil {
				return nil, 0, err
			}
			if err := ch.ck.acceptMessageSize(bodyStream.Len()); err != nil {
				return nil, 0, err
			}
			isFinal = messageType != ua.MessageTypeChunk

		case ua.MessageTypeOpenFinal:
			// message header
			if err := decoder.ReadUInt32(&channelID); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			// asymmetric security header
			var securityPolicyURI string
			if err := decoder.ReadString(&securityPolicyURI); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if err := decoder.ReadByteArray(&ch.remoteCertificate); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if err := decoder.ReadByteArray(&ch.remoteCertificateThumbprint); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			plainHeaderSize = count - stream.Len()

			if err := ch.setSecurityPolicy(securityPolicyURI); err != nil {
				return nil, 0, err
			}
			secured := ch.securityPolicyURI != ua.SecurityPolicyURINone

			// decrypt with the local private key, block by block
			if secured {
				cipherText := make([]byte, ch.asymLocalCipherTextBlockSize)
				jj := plainHeaderSize
				for ii := plainHeaderSize; ii < int(messageLength); ii += ch.asymLocalCipherTextBlockSize {
					copy(cipherText, ch.receiveBuffer[ii:])
					plainText, err := ch.securityPolicy.RSADecrypt(ch.localPrivateKey, cipherText)
					if err != nil {
						return nil, 0, ua.BadSecurityChecksFailed
					}
					if len(plainText) != ch.asymLocalPlainTextBlockSize {
						return nil, 0, ua.BadSecurityChecksFailed
					}
					copy(ch.receiveBuffer[jj:], plainText)
					jj += ch.asymLocalPlainTextBlockSize
				}
				messageLength = uint32(jj) // shorter after decryption
			}

			// verify with the remote public key
			if secured {
				sigEnd := int(messageLength)
				sigStart := sigEnd - ch.asymRemoteSignatureSize
				if sigStart < plainHeaderSize {
					return nil, 0, ua.BadSecurityChecksFailed
				}
				if err := ch.securityPolicy.RSAVerify(ch.remotePublicKey, ch.receiveBuffer[:sigStart], ch.receiveBuffer[sigStart:sigEnd]); err != nil {
					return nil, 0, ua.BadSecurityChecksFailed
				}
			}

			// sequence header
			var sequenceNumber uint32
			if err := decoder.ReadUInt32(&sequenceNumber); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if err := ch.ck.acceptSequenceNumber(sequenceNumber); err != nil {
				return nil, 0, err
			}
			var requestID uint32
			if err := decoder.ReadUInt32(&requestID); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			if chunkCount == 1 {
				id = requestID
			} else if requestID != id {
				return nil, 0, ua.BadSequenceNumberInvalid
			}

			// body
			if secured {
				if ch.asymLocalCipherTextBlockSize > 256 {
					paddingHeaderSize = 2
					start := int(messageLength) - ch.asymRemoteSignatureSize - paddingHeaderSize
					paddingSize = int(binary.LittleEndian.Uint16(ch.receiveBuffer[start : start+2]))
				} else {
					paddingHeaderSize = 1
					start := int(messageLength) - ch.asymRemoteSignatureSize - paddingHeaderSize
					paddingSize = int(ch.receiveBuffer[start])
				}
				bodySize = int(messageLength) - plainHeaderSize - sequenceHeaderSize - paddingSize - paddingHeaderSize - ch.asymRemoteSignatureSize
			} else {
				bodySize = int(messageLength) - plainHeaderSize - sequenceHeaderSize - ch.asymRemoteSignatureSize
			}
			if bodySize < 0 {
				return nil, 0, ua.BadDecodingError
			}

			m := plainHeaderSize + sequenceHeaderSize
			n := m + bodySize
			if _, err := bodyStream.Write(ch.receiveBuffer[m:n]); err != nil {
				return nil, 0, err
			}
			if err := ch.ck.acceptMessageSize(bodyStream.Len()); err != nil {
				return nil, 0, err
			}
			isFinal = true

		case ua.MessageTypeAbort:
			var statusCode uint32
			if err := decoder.ReadUInt32(&statusCode); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			var reason string
			if err := decoder.ReadString(&reason); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			ch.logger.Warn().
				Str("status", ua.StatusCode(statusCode).Error()).
				Str("reason", reason).
				Msg("client aborted message assembly")
			return nil, 0, nil

		case ua.MessageTypeError:
			var statusCode uint32
			if err := decoder.ReadUInt32(&statusCode); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			var reason string
			if err := decoder.ReadString(&reason); err != nil {
				return nil, 0, ua.BadDecodingError
			}
			ch.logger.Error().
				Str("status", ua.StatusCode(statusCode).Error()).
				Str("reason", reason).
				Msg("client sent error message")
			return nil, 0, ua.StatusCode(statusCode)

		default:
			return nil, 0, ua.BadTCPMessageTypeInvalid
		}
	}

	// decode the assembled body
	var nodeID ua.NodeID
	if err := bodyDecoder.ReadNodeID(&nodeID); err != nil {
		return nil, 0, ua.BadDecodingError
	}
	typ, ok := ua.FindTypeForBinaryEncodingID(ua.NewExpandedNodeID(nodeID))
	if !ok {
		// Answer requests of unknown type without killing the channel.
		var header ua.RequestHeader
		if err := bodyDecoder.Decode(&header); err != nil {
			return nil, 0, ua.BadDecodingError
		}
		ch.Write(
			&ua.ServiceFault{
				ResponseHeader: ua.ResponseHeader{
					Timestamp:     time.Now(),
					RequestHandle: header.RequestHandle,
					ServiceResult: ua.BadServiceUnsupported,
				},
			},
			id,
		)
		return nil, 0, nil
	}
	temp := reflect.New(typ).Interface()
	if err := bodyDecoder.Decode(temp); err != nil {
		return nil, 0, ua.BadDecodingError
	}
	req, ok := temp.(ua.ServiceRequest)
	if !ok {
		return nil, 0, ua.BadDecodingError
	}

	if ch.trace {
		ch.logger.Debug().
			Str("service", reflect.TypeOf(req).Elem().Name()).
			Uint32("request_handle", req.Header().RequestHandle).
			Msg("receive")
	}
	return req, id, nil
}

// activateToken resolves the security token asserted by a received chunk
// and, when the client switches to a newly issued token, installs the fresh
// key material for both directions.
func (ch *serverSecureChannel) activateToken(tokenID uint32) (hash.Hash, cipher.Block, []byte, error) {
	ch.tokenLock.Lock()
	defer ch.tokenLock.Unlock()
	token, err := ch.tokens.lookup(tokenID, time.Now())
	if err != nil {
		return nil, nil, nil, err
	}
	if ch.receivingToken != token {
		if ch.securityMode != ua.MessageSecurityModeNone {
			ch.symVerifyHMAC = ch.securityPolicy.SymHMACFactory(token.remoteSigningKey)
			ch.symSignHMAC = ch.securityPolicy.SymHMACFactory(token.localSigningKey)
			ch.remoteInitializationVector = token.remoteInitializationVector
			ch.localInitializationVector = token.localInitializationVector
			if ch.securityMode == ua.MessageSecurityModeSignAndEncrypt {
				decrypting, err := aes.NewCipher(token.remoteEncryptingKey)
				if err != nil {
					return nil, nil, nil, ua.BadSecurityChecksFailed
				}
				encrypting, err := aes.NewCipher(token.localEncryptingKey)
				if err != nil {
					return nil, nil, nil, ua.BadSecurityChecksFailed
				}
				ch.symDecryptingBlockCipher = decrypting
				ch.symEncryptingBlockCipher = encrypting
			}
		}
		ch.receivingToken = token
		ch.sendingToken = token
	}
	return ch.symVerifyHMAC, ch.symDecryptingBlockCipher, ch.remoteInitializationVector, nil
}

// setSecurityPolicy installs the security policy asserted by an OPN chunk
// and computes the asymmetric block sizes from the certificates.
func (ch *serverSecureChannel) setSecurityPolicy(securityPolicyURI string) error {
	if ch.securityPolicy != nil && ch.securityPolicyURI == securityPolicyURI {
		return nil
	}
	policy, err := ua.SecurityPolicyForURI(securityPolicyURI)
	if err != nil {
		return err
	}
	if securityPolicyURI != ua.SecurityPolicyURINone {
		if len(ch.localCertificate) == 0 || ch.localPrivateKey == nil {
			return ua.BadSecurityChecksFailed
		}
		if len(ch.remoteCertificate) > 0 {
			if crt, err := x509.ParseCertificate(ch.remoteCertificate); err == nil {
				ch.remotePublicKey, _ = crt.PublicKey.(*rsa.PublicKey)
			}
		}
		if ch.remotePublicKey == nil {
			return ua.BadCertificateInvalid
		}
		padding := policy.RSAPaddingSize()
		ch.asymLocalKeySize = ch.localPrivateKey.Size()
		ch.asymRemoteKeySize = ch.remotePublicKey.Size()
		ch.asymLocalPlainTextBlockSize = ch.asymLocalKeySize - padding
		ch.asymRemotePlainTextBlockSize = ch.asymRemoteKeySize - padding
		ch.asymLocalSignatureSize = ch.asymLocalKeySize
		ch.asymRemoteSignatureSize = ch.asymRemoteKeySize
		ch.asymLocalCipherTextBlockSize = ch.asymLocalKeySize
		ch.asymRemoteCipherTextBlockSize = ch.asymRemoteKeySize
	}
	ch.securityPolicy = policy
	ch.securityPolicyURI = securityPolicyURI
	return nil
}

// read receives one complete message into p: the 8 byte message header
// first, then the remaining messageSize−8 bytes.
func (ch *serverSecureChannel) read(p []byte) (int, error) {
	if len(p) < 8 {
		return 0, ua.BadTCPInternalError
	}
	if _, err := io.ReadFull(ch.conn, p[:8]); err != nil {
		return 0, err
	}
	messageLength := int(binary.LittleEndian.Uint32(p[4:8]))
	if messageLength < 8 {
		return 0, ua.BadDecodingError
	}
	if messageLength > len(p) {
		return 0, ua.BadTCPMessageTooLarge
	}
	if _, err := io.ReadFull(ch.conn, p[8:messageLength]); err != nil {
		return 0, err
	}
	return messageLength, nil
}

// write sends the buffer to the transport.
func (ch *serverSecureChannel) write(p []byte) (int, error) {
	return ch.conn.Write(p)
}

// symSign computes the HMAC of b.
func symSign(mac hash.Hash, b []byte) []byte {
	mac.Reset()
	mac.Write(b)
	return mac.Sum(nil)
}

// symVerify checks the HMAC of b against the received signature.
func symVerify(mac hash.Hash, b, signature []byte) error {
	mac.Reset()
	mac.Write(b)
	if !hmac.Equal(mac.Sum(nil), signature) {
		return ua.BadSecurityChecksFailed
	}
	return nil
}
