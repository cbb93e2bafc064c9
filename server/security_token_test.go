package server

import (
	"bytes"
	"testing"
	"time"

	"github.com/uaforge/uaserve/ua"
)

func TestDeriveKeysBothSidesAgree(t *testing.T) {
	for _, uri := range []string{
		ua.SecurityPolicyURIBasic128Rsa15,
		ua.SecurityPolicyURIBasic256,
		ua.SecurityPolicyURIBasic256Sha256,
		ua.SecurityPolicyURIAes128Sha256RsaOaep,
		ua.SecurityPolicyURIAes256Sha256RsaPss,
	} {
		policy, err := ua.SecurityPolicyForURI(uri)
		if err != nil {
			t.Fatalf("%s: %v", uri, err)
		}
		serverToken := &channelToken{
			localNonce:  getNextNonce(policy.NonceSize()),
			remoteNonce: getNextNonce(policy.NonceSize()),
		}
		serverToken.deriveKeys(policy)

		// the client sees the same nonces with local and remote swapped
		clientToken := &channelToken{
			localNonce:  serverToken.remoteNonce,
			remoteNonce: serverToken.localNonce,
		}
		clientToken.deriveKeys(policy)

		if !bytes.Equal(serverToken.localSigningKey, clientToken.remoteSigningKey) {
			t.Errorf("%s: server signing key does not match the client's view", uri)
		}
		if !bytes.Equal(serverToken.remoteEncryptingKey, clientToken.localEncryptingKey) {
			t.Errorf("%s: client encrypting key does not match the server's view", uri)
		}
		if !bytes.Equal(serverToken.localInitializationVector, clientToken.remoteInitializationVector) {
			t.Errorf("%s: initialization vectors disagree", uri)
		}
		if len(serverToken.localSigningKey) != policy.SymSignatureKeySize() {
			t.Errorf("%s: signing key length = %d, want %d", uri, len(serverToken.localSigningKey), policy.SymSignatureKeySize())
		}
	}
}

func TestCalculatePSHAHashSelection(t *testing.T) {
	secret := []byte("secret")
	seed := []byte("seed")

	sha1Out := calculatePSHA(secret, seed, 40, ua.SecurityPolicyURIBasic256)
	sha256Out := calculatePSHA(secret, seed, 40, ua.SecurityPolicyURIBasic256Sha256)
	if bytes.Equal(sha1Out, sha256Out) {
		t.Error("P_SHA1 and P_SHA256 produced identical output")
	}

	// same policy family shares the hash
	if !bytes.Equal(sha1Out, calculatePSHA(secret, seed, 40, ua.SecurityPolicyURIBasic128Rsa15)) {
		t.Error("Basic128Rsa15 and Basic256 disagree on P_SHA1")
	}
	if !bytes.Equal(sha256Out, calculatePSHA(secret, seed, 40, ua.SecurityPolicyURIAes128Sha256RsaOaep)) {
		t.Error("Basic256Sha256 and Aes128Sha256RsaOaep disagree on P_SHA256")
	}
}

func TestCalculatePSHADeterministicAndSized(t *testing.T) {
	secret := []byte("secret")
	seed := []byte("seed")
	for _, size := range []int{1, 16, 32, 40, 100} {
		a := calculatePSHA(secret, seed, size, ua.SecurityPolicyURIBasic256Sha256)
		b := calculatePSHA(secret, seed, size, ua.SecurityPolicyURIBasic256Sha256)
		if len(a) != size {
			t.Errorf("size %d: got %d bytes", size, len(a))
		}
		if !bytes.Equal(a, b) {
			t.Errorf("size %d: not deterministic", size)
		}
	}
}

func TestTokenSetAcceptsPreviousUntilExpiry(t *testing.T) {
	now := time.Now()
	old := &channelToken{tokenID: 1, createdAt: now, lifetime: time.Minute}
	renewed := &channelToken{tokenID: 2, createdAt: now, lifetime: time.Minute}

	var s tokenSet
	s.install(old)
	s.install(renewed)

	if tok, err := s.lookup(2, now); err != nil || tok != renewed {
		t.Fatalf("current token lookup: %v", err)
	}
	if tok, err := s.lookup(1, now); err != nil || tok != old {
		t.Fatalf("previous token lookup during overlap: %v", err)
	}
	if _, err := s.lookup(1, now.Add(2*time.Minute)); err != ua.BadSecureChannelTokenUnknown {
		t.Fatalf("expired previous token, err = %v", err)
	}
	if _, err := s.lookup(3, now); err != ua.BadSecureChannelTokenUnknown {
		t.Fatalf("unknown token id, err = %v", err)
	}
}

func TestTokenSetInstallDropsOlderTokens(t *testing.T) {
	now := time.Now()
	var s tokenSet
	s.install(&channelToken{tokenID: 1, createdAt: now, lifetime: time.Hour})
	s.install(&channelToken{tokenID: 2, createdAt: now, lifetime: time.Hour})
	s.install(&channelToken{tokenID: 3, createdAt: now, lifetime: time.Hour})

	if _, err := s.lookup(1, now); err != ua.BadSecureChannelTokenUnknown {
		t.Fatalf("twice-superseded token still accepted, err = %v", err)
	}
}
