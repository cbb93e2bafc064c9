// Copyright 2025 UAForge Authors. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration of the demo server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	Limits   LimitsConfig   `yaml:"limits"`
	Users    []UserConfig   `yaml:"users"`
	JWT      JWTConfig      `yaml:"jwt"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig names the application and where it listens.
type ServerConfig struct {
	Name        string `yaml:"name"`
	EndpointURL string `yaml:"endpoint_url"`
	CertFile    string `yaml:"cert_file"`
	KeyFile     string `yaml:"key_file"`
}

// SecurityConfig selects the offered endpoints and identities.
type SecurityConfig struct {
	AllowNone        bool   `yaml:"allow_none"`
	AllowAnonymous   bool   `yaml:"allow_anonymous"`
	TrustedCertsFile string `yaml:"trusted_certs_file"`
	SkipVerify       bool   `yaml:"skip_verify"`
}

// LimitsConfig bounds the server's resources. Zero keeps the default.
type LimitsConfig struct {
	MaxChannels           uint32        `yaml:"max_channels"`
	MaxSessions           uint32        `yaml:"max_sessions"`
	MaxSubscriptions      uint32        `yaml:"max_subscriptions"`
	MaxWorkers            int           `yaml:"max_workers"`
	MinSessionTimeout     time.Duration `yaml:"min_session_timeout"`
	MaxSessionTimeout     time.Duration `yaml:"max_session_timeout"`
	MaxPublishRequestWait time.Duration `yaml:"max_publish_request_wait"`
}

// UserConfig is one entry of the username identity table. Passwords are
// bcrypt hashes.
type UserConfig struct {
	UserName     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// JWTConfig enables issued-token identities signed with a shared secret.
type JWTConfig struct {
	Secret   string `yaml:"secret"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
	Trace bool   `yaml:"trace"`
}

// LoadConfig reads the YAML file and applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Name:        "uaserve",
			EndpointURL: "opc.tcp://localhost:46010",
			CertFile:    "./pki/server.crt",
			KeyFile:     "./pki/server.key",
		},
		Security: SecurityConfig{AllowNone: true, AllowAnonymous: true},
		Log:      LogConfig{Level: "info"},
	}
	buf, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// no file: run on defaults
	case err != nil:
		return nil, errors.Wrap(err, "reading config")
	default:
		if err := yaml.Unmarshal(buf, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config")
		}
	}
	if v := os.Getenv("UASERVE_ENDPOINT_URL"); v != "" {
		cfg.Server.EndpointURL = v
	}
	if v := os.Getenv("UASERVE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}
