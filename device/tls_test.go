package device

import (
	"crypto/tls"
	"testing"
)

func TestTLSConfig_Validate(t *testing.T) {
	var nilCfg *TLSConfig
	if err := nilCfg.Validate(); err != nil {
		t.Errorf("nil config must validate, got %v", err)
	}
	ok := &TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}
	if err := ok.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	half := &TLSConfig{CertFile: "cert.pem"}
	if err := half.Validate(); err == nil {
		t.Error("expected error when cert_file is set without key_file")
	}
}

func TestTLSConfig_Build(t *testing.T) {
	var nilCfg *TLSConfig
	if cfg, err := nilCfg.Build(); err != nil || cfg != nil {
		t.Errorf("nil config should build to nil, got %v/%v", cfg, err)
	}

	empty := &TLSConfig{}
	if cfg, err := empty.Build(); err != nil || cfg != nil {
		t.Errorf("empty config should build to nil, got %v/%v", cfg, err)
	}

	skip := &TLSConfig{SkipVerify: true}
	cfg, err := skip.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil || !cfg.InsecureSkipVerify {
		t.Errorf("skip-verify not applied: %+v", cfg)
	}
	if cfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("min version = %d, want TLS 1.2 default", cfg.MinVersion)
	}

	missingCA := &TLSConfig{CAFile: "no-such-file.pem"}
	if _, err := missingCA.Build(); err == nil {
		t.Error("expected error for missing ca file")
	}
}
