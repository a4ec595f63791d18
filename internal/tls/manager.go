package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	"github.com/caddyserver/certmagic"
)

// Manager handles certificate provisioning for the wizard's domain.
// Unlike a multi-tenant host, the wizard serves exactly one domain.
type Manager struct {
	cfg       *Config
	certmagic *certmagic.Config
}

// NewManager creates a new TLS manager
func NewManager(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Create certmagic config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return &certmagic.Default, nil
		},
	})

	magicCfg := certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
	})

	// Configure ACME issuer
	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	magicCfg.Issuers = []certmagic.Issuer{
		certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
			CA:     ca,
			Email:  cfg.Email,
			Agreed: true,
		}),
	}

	m := &Manager{
		cfg:       cfg,
		certmagic: magicCfg,
	}

	log.Printf("TLS: managing certificate for %s", cfg.Domain)
	if err := magicCfg.ManageAsync(context.Background(), []string{cfg.Domain}); err != nil {
		return nil, fmt.Errorf("failed to manage domain: %w", err)
	}

	return m, nil
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}
