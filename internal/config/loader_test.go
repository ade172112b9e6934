package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	"travel-duration-service/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tds.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("TDS_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Defaults()
	want.ORS.APIKey = "key"
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("ORS_API_KEY", "  ")
	t.Setenv("TDS_CONFIG", filepath.Join(t.TempDir(), "missing.yml"))

	_, err := Load()
	var cerr *domain.ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Key != "ORS_API_KEY" {
		t.Fatalf("key = %q, want ORS_API_KEY", cerr.Key)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	t.Setenv("ORS_API_KEY", "key")
	t.Setenv("TDS_CONFIG", writeConfig(t, `
ors:
  base_url: http://localhost:8081
transit:
  limit: 3
http:
  timeout: 2s
rail:
  invalid_candidates: strict
`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ORS.BaseURL != "http://localhost:8081" {
		t.Errorf("ors base_url = %q", cfg.ORS.BaseURL)
	}
	if cfg.Transit.BaseURL != Defaults().Transit.BaseURL {
		t.Errorf("transit base_url = %q, want default", cfg.Transit.BaseURL)
	}
	if cfg.Transit.Limit != 3 {
		t.Errorf("limit = %d, want 3", cfg.Transit.Limit)
	}
	if cfg.HTTP.Timeout != 2*time.Second {
		t.Errorf("timeout = %v, want 2s", cfg.HTTP.Timeout)
	}
	if cfg.Rail.InvalidCandidates != "strict" {
		t.Errorf("invalid_candidates = %q, want strict", cfg.Rail.InvalidCandidates)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "limit too large", body: "transit:\n  limit: 50\n"},
		{name: "unknown policy", body: "rail:\n  invalid_candidates: maybe\n"},
		{name: "bad url", body: "ors:\n  base_url: not a url\n"},
		{name: "bad yaml", body: "transit: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ORS_API_KEY", "key")
			t.Setenv("TDS_CONFIG", writeConfig(t, tc.body))

			_, err := Load()
			var cerr *domain.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("TDS_TEST_VALUE", "")
	if got := Get("TDS_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("Get empty = %q, want fallback", got)
	}

	t.Setenv("TDS_TEST_VALUE", "set")
	if got := Get("TDS_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("Get set = %q, want set", got)
	}
}
