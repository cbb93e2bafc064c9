package server

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"hash"
	"time"

	"github.com/uaforge/uaserve/ua"
)

// channelToken is one issued security token together with the symmetric key
// material derived from the nonces exchanged when it was minted.
type channelToken struct {
	tokenID   uint32
	createdAt time.Time
	lifetime  time.Duration

	localNonce  []byte
	remoteNonce []byte

	localSigningKey            []byte
	localEncryptingKey         []byte
	localInitializationVector  []byte
	remoteSigningKey           []byte
	remoteEncryptingKey        []byte
	remoteInitializationVector []byte
}

func (t *channelToken) expiresAt() time.Time {
	return t.createdAt.Add(t.lifetime)
}

func (t *channelToken) expired(now time.Time) bool {
	return now.After(t.expiresAt())
}

// deriveKeys fills in the symmetric key material for both directions.
// Remote keys verify and decrypt what the client sends; local keys sign and
// encrypt what the server sends. Each side's keys are derived from the other
// side's nonce as the PRF secret, so both ends compute identical tables.
func (t *channelToken) deriveKeys(policy ua.SecurityPolicy) {
	sigKeySize := policy.SymSignatureKeySize()
	encKeySize := policy.SymEncryptionKeySize()
	blockSize := policy.SymEncryptionBlockSize()
	size := sigKeySize + encKeySize + blockSize

	remoteKey := calculatePSHA(t.localNonce, t.remoteNonce, size, policy.PolicyURI())
	t.remoteSigningKey = remoteKey[:sigKeySize]
	t.remoteEncryptingKey = remoteKey[sigKeySize : sigKeySize+encKeySize]
	t.remoteInitializationVector = remoteKey[sigKeySize+encKeySize:]

	localKey := calculatePSHA(t.remoteNonce, t.localNonce, size, policy.PolicyURI())
	t.localSigningKey = localKey[:sigKeySize]
	t.localEncryptingKey = localKey[sigKeySize : sigKeySize+encKeySize]
	t.localInitializationVector = localKey[sigKeySize+encKeySize:]
}

// tokenSet holds the current security token and the one it superseded. The
// previous token stays acceptable for incoming messages until its own
// lifetime runs out, so requests in flight survive a renewal.
type tokenSet struct {
	current  *channelToken
	previous *channelToken
}

// install makes t the current token, demoting the former current token.
func (s *tokenSet) install(t *channelToken) {
	s.previous = s.current
	s.current = t
}

// lookup resolves a token id asserted by a received chunk.
func (s *tokenSet) lookup(tokenID uint32, now time.Time) (*channelToken, error) {
	if t := s.current; t != nil && t.tokenID == tokenID {
		return t, nil
	}
	if t := s.previous; t != nil && t.tokenID == tokenID && !t.expired(now) {
		return t, nil
	}
	return nil, ua.BadSecureChannelTokenUnknown
}

// getNextNonce gets next random nonce of requested length.
func getNextNonce(length int) []byte {
	var nonce = make([]byte, length)
	rand.Read(nonce)
	return nonce
}

// calculatePSHA calculates the pseudo random function defined for the
// security policy. Basic128Rsa15 and Basic256 use P_SHA1, the rest P_SHA256.
func calculatePSHA(secret, seed []byte, sizeBytes int, securityPolicyURI string) []byte {
	var mac hash.Hash
	switch securityPolicyURI {
	case ua.SecurityPolicyURIBasic128Rsa15, ua.SecurityPolicyURIBasic256:
		mac = hmac.New(sha1.New, secret)

	default:
		mac = hmac.New(sha256.New, secret)
	}
	size := mac.Size()
	output := make([]byte, sizeBytes)
	a := seed
	iterations := (sizeBytes + size - 1) / size
	for i := 0; i < iterations; i++ {
		mac.Reset()
		mac.Write(a)
		buf := mac.Sum(nil)
		a = buf
		mac.Reset()
		mac.Write(a)
		mac.Write(seed)
		buf2 := mac.Sum(nil)
		m := size * i
		n := sizeBytes - m
		if n > size {
			n = size
		}
		copy(output[m:m+n], buf2)
	}

	return output
}
