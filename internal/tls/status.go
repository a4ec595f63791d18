package tls

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"time"
)

// CertificateStatus represents the status of the managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// GetCertificateStatus returns the status of the wizard domain's
// certificate, or nil when none has been provisioned yet.
func (m *Manager) GetCertificateStatus() (*CertificateStatus, error) {
	domain := m.cfg.Domain

	// Certmagic stores certs in: {certDir}/certificates/{ca}/{domain}/{domain}.crt
	// Try both staging and production CA paths
	certPath := ""
	prodPath := filepath.Join(m.cfg.CertDir, "certificates", "acme-v02.api.letsencrypt.org-directory", domain, domain+".crt")
	if _, err := os.Stat(prodPath); err == nil {
		certPath = prodPath
	} else {
		stagingPath := filepath.Join(m.cfg.CertDir, "certificates", "acme-staging-v02.api.letsencrypt.org-directory", domain, domain+".crt")
		if _, err := os.Stat(stagingPath); err == nil {
			certPath = stagingPath
		}
	}

	if certPath == "" {
		// Not yet provisioned
		return nil, nil
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, nil
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, nil
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, nil
	}

	return &CertificateStatus{
		Domain:          domain,
		Issuer:          cert.Issuer.CommonName,
		NotBefore:       cert.NotBefore,
		NotAfter:        cert.NotAfter,
		DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
	}, nil
}
