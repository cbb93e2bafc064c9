package server

import (
	"bytes"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/pkg/errors"

	"github.com/uaforge/uaserve/ua"
)

// loadCertificateAndKey reads the server's PEM-encoded certificate and RSA
// private key pair from disk.
func loadCertificateAndKey(certPath, keyPath string) ([]byte, *rsa.PrivateKey, error) {
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "loading certificate and key")
	}
	key, ok := cert.PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, nil, errors.Errorf("private key in %s is not RSA", keyPath)
	}
	return cert.Certificate[0], key, nil
}

// validateClientCertificate verifies the client certificate against the
// trusted certificates file. The file may hold PEM blocks or concatenated
// DER certificates; self-signed entries become roots, the rest
// intermediates. Unlike the tls defaults, an absent or empty trust file
// means nothing is trusted.
func validateClientCertificate(certificate *x509.Certificate, trustedCertsPath string, suppressTimeInvalid, suppressChainIncomplete bool) error {
	if certificate == nil {
		return ua.BadCertificateInvalid
	}
	intermediates := x509.NewCertPool()
	roots := x509.NewCertPool()
	if buf, err := os.ReadFile(trustedCertsPath); err == nil {
		for len(buf) > 0 {
			var block *pem.Block
			block, buf = pem.Decode(buf)
			if block == nil {
				// not PEM, try concatenated DER
				if crts, err := x509.ParseCertificates(buf); err == nil {
					for _, crt := range crts {
						addTrusted(crt, roots, intermediates)
					}
				}
				break
			}
			if block.Type != "CERTIFICATE" || len(block.Headers) != 0 {
				continue
			}
			crt, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				continue
			}
			addTrusted(crt, roots, intermediates)
		}
	}

	opts := x509.VerifyOptions{
		Intermediates: intermediates,
		Roots:         roots,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	}
	if suppressTimeInvalid {
		opts.CurrentTime = certificate.NotAfter
	}
	if suppressChainIncomplete {
		opts.Roots.AddCert(certificate)
	}

	if _, err := certificate.Verify(opts); err != nil {
		switch e := err.(type) {
		case x509.CertificateInvalidError:
			switch e.Reason {
			case x509.Expired:
				return ua.BadCertificateTimeInvalid
			case x509.IncompatibleUsage:
				return ua.BadCertificateUseNotAllowed
			default:
				return ua.BadSecurityChecksFailed
			}
		case x509.UnknownAuthorityError:
			return ua.BadCertificateUntrusted
		default:
			return ua.BadSecurityChecksFailed
		}
	}
	return nil
}

// addTrusted sorts one trusted certificate into the verifier pools.
func addTrusted(crt *x509.Certificate, roots, intermediates *x509.CertPool) {
	if bytes.Equal(crt.RawIssuer, crt.RawSubject) {
		roots.AddCert(crt)
		return
	}
	intermediates.AddCert(crt)
}
