package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{
		"APP_PORT", "APP_ENV", "MP_ROUTE_PREFIX", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK",
		"WEBHOOK_DEDUP_TTL", "KAFKA_BROKERS", "EVENT_JOURNAL_ENABLED",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.RoutePrefix != "/api/mp" {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if cfg.Dedup.TTL != 24*time.Hour || cfg.Journal.Enabled || cfg.Kafka.Enabled() {
		t.Fatalf("optional sinks must be disabled by default: %+v %+v %+v", cfg.Dedup, cfg.Journal, cfg.Kafka)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-abc")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("WEBHOOK_DEDUP_TTL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.MercadoPago.AccessToken != "TEST-abc" || !cfg.MercadoPago.Mock {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" || !cfg.Kafka.Enabled() {
		t.Fatalf("unexpected brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Dedup.TTL != 90*time.Minute {
		t.Fatalf("unexpected ttl %v", cfg.Dedup.TTL)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WEBHOOK_DEDUP_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected ttl error")
	}
}

func TestIntegration_Catalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `products:
  - id: Pro
    title: Pro Plan
    unit_price: 1500
    category_id: services
plans:
  - id: monthly
    reason: Monthly membership
    transaction_amount: 500
    frequency: 1
    frequency_type: months
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cfg := &Config{MercadoPago: MercadoPagoConfig{AccessToken: "TEST-abc", BaseURL: "https://shop.test", CatalogFile: path}}
	out, err := cfg.Integration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p, ok := out.Products["Pro"]; !ok || p.UnitPrice != 1500 || p.CategoryID != "services" {
		t.Fatalf("unexpected products %+v", out.Products)
	}
	if p, ok := out.Plans["monthly"]; !ok || p.FrequencyType != "months" || p.Frequency != 1 {
		t.Fatalf("unexpected plans %+v", out.Plans)
	}
	if out.AccessToken != "TEST-abc" || out.BaseURL != "https://shop.test" {
		t.Fatalf("unexpected integration config %+v", out)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `plans:
  - id: weekly
    reason: Weekly
    transaction_amount: 10
    frequency: 1
    frequency_type: weeks
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadCatalog(path); err == nil {
		t.Fatalf("expected invalid frequency type error")
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
