// Copyright 2025 UAForge Authors. All rights reserved.

// uaserve runs a demonstration OPC UA server with a simulated address space.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"flag"
	"fmt"
	"math/big"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/uaforge/uaserve/server"
	"github.com/uaforge/uaserve/ua"
)

func main() {
	configFile := flag.String("config", "uaserve.yaml", "path to the configuration file")
	validate := flag.Bool("validate", false, "validate the configuration and exit")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *validate {
		return
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if err := ensurePKI(cfg); err != nil {
		log.Fatal().Err(err).Msg("create pki")
	}

	sim := NewSimulator()
	defer sim.Close()

	srv, err := newServer(cfg, sim)
	if err != nil {
		log.Fatal().Err(err).Msg("create server")
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		log.Info().Msg("stopping server")
		srv.Close()
	}()

	log.Info().
		Str("name", srv.LocalDescription().ApplicationName.Text).
		Str("endpoint", srv.EndpointURL()).
		Msg("starting server")
	if err := srv.ListenAndServe(); err != ua.BadServerHalted {
		log.Error().Err(err).Msg("server stopped")
	}
}

func newServer(cfg *Config, svc server.NodeService) (*server.Server, error) {
	host, _ := os.Hostname()
	applicationURI := fmt.Sprintf("urn:%s:%s", host, cfg.Server.Name)

	opts := []server.Option{
		server.WithLogger(log.Logger),
		server.WithNodeService(svc),
		server.WithSecurityPolicyNone(cfg.Security.AllowNone),
		server.WithAnonymousIdentity(cfg.Security.AllowAnonymous),
	}
	if cfg.Log.Trace {
		opts = append(opts, server.WithTrace())
	}
	if cfg.Security.SkipVerify {
		opts = append(opts, server.WithInsecureSkipVerify())
	} else if cfg.Security.TrustedCertsFile != "" {
		opts = append(opts, server.WithTrustedCertificatesPath(cfg.Security.TrustedCertsFile))
	}
	if cfg.Limits.MaxChannels > 0 {
		opts = append(opts, server.WithMaxChannelCount(cfg.Limits.MaxChannels))
	}
	if cfg.Limits.MaxSessions > 0 {
		opts = append(opts, server.WithMaxSessionCount(cfg.Limits.MaxSessions))
	}
	if cfg.Limits.MaxSubscriptions > 0 {
		opts = append(opts, server.WithMaxSubscriptionCount(cfg.Limits.MaxSubscriptions))
	}
	if cfg.Limits.MaxWorkers > 0 {
		opts = append(opts, server.WithMaxWorkerThreads(cfg.Limits.MaxWorkers))
	}
	if cfg.Limits.MinSessionTimeout > 0 && cfg.Limits.MaxSessionTimeout > 0 {
		opts = append(opts, server.WithSessionTimeouts(cfg.Limits.MinSessionTimeout, cfg.Limits.MaxSessionTimeout))
	}
	if cfg.Limits.MaxPublishRequestWait > 0 {
		opts = append(opts, server.WithMaxPublishRequestWait(cfg.Limits.MaxPublishRequestWait))
	}
	if len(cfg.Users) > 0 {
		users := map[string][]byte{}
		for _, u := range cfg.Users {
			users[u.UserName] = []byte(u.PasswordHash)
		}
		opts = append(opts, server.WithAuthenticateUserNameIdentityFunc(
			func(userIdentity ua.UserNameIdentity, applicationURI string, endpointURL string) error {
				hash, ok := users[userIdentity.UserName]
				if !ok {
					return ua.BadUserAccessDenied
				}
				if bcrypt.CompareHashAndPassword(hash, []byte(userIdentity.Password)) != nil {
					return ua.BadUserAccessDenied
				}
				return nil
			}))
	}
	if cfg.JWT.Secret != "" {
		opts = append(opts, server.WithIssuedIdentityAuthenticator(&server.JWTIssuedTokenAuthenticator{
			Key:      []byte(cfg.JWT.Secret),
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		}))
	}

	return server.New(
		ua.ApplicationDescription{
			ApplicationURI:  applicationURI,
			ProductURI:      "http://github.com/uaforge/uaserve",
			ApplicationName: ua.NewLocalizedText(cfg.Server.Name, "en"),
			ApplicationType: ua.ApplicationTypeServer,
		},
		cfg.Server.CertFile,
		cfg.Server.KeyFile,
		cfg.Server.EndpointURL,
		opts...,
	)
}

// ensurePKI creates the server certificate and key when missing.
func ensurePKI(cfg *Config) error {
	if _, err := os.Stat(cfg.Server.CertFile); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Server.CertFile), 0755); err != nil {
		return err
	}
	return createNewCertificate(cfg.Server.Name, cfg.Server.CertFile, cfg.Server.KeyFile)
}

func createNewCertificate(appName, certFile, keyFile string) error {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return errors.Wrap(err, "generating key")
	}

	host, _ := os.Hostname()
	applicationURI, _ := url.Parse(fmt.Sprintf("urn:%s:%s", host, appName))
	serialNumber, _ := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	subjectKeyHash := sha1.New()
	subjectKeyHash.Write(key.PublicKey.N.Bytes())
	subjectKeyID := subjectKeyHash.Sum(nil)

	template := x509.Certificate{
		SerialNumber:          serialNumber,
		Subject:               pkix.Name{CommonName: appName},
		SubjectKeyId:          subjectKeyID,
		AuthorityKeyId:        subjectKeyID,
		NotBefore:             time.Now(),
		NotAfter:              time.Now().AddDate(1, 0, 0),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageContentCommitment | x509.KeyUsageKeyEncipherment | x509.KeyUsageDataEncipherment | x509.KeyUsageCertSign,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{host},
		URIs:                  []*url.URL{applicationURI},
	}

	rawcrt, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return errors.Wrap(err, "creating certificate")
	}

	crt, err := os.Create(certFile)
	if err != nil {
		return err
	}
	defer crt.Close()
	if err := pem.Encode(crt, &pem.Block{Type: "CERTIFICATE", Bytes: rawcrt}); err != nil {
		return err
	}

	kf, err := os.OpenFile(keyFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer kf.Close()
	return pem.Encode(kf, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
}
